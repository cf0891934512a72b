package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/skhanzad/libralite/libralite/internal/model"
)

func (h *Handler) ListApplications(c echo.Context) error {
	status := model.ApplicationStatus(c.QueryParam("status"))
	switch status {
	case "", model.ApplicationPending, model.ApplicationApproved, model.ApplicationRejected:
	default:
		return echo.NewHTTPError(http.StatusBadRequest, errors.New("status is invalid"))
	}
	apps, err := h.svc.ListApplications(c.Request().Context(), status)
	if err != nil {
		return h.fail(c, "ListApplications", err)
	}
	return c.JSON(http.StatusOK, apps)
}

func (h *Handler) ApproveApplication(c echo.Context) error {
	member, err := h.svc.ApproveApplication(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.fail(c, "ApproveApplication", err)
	}
	return c.JSON(http.StatusOK, member)
}

func (h *Handler) RejectApplication(c echo.Context) error {
	app, err := h.svc.RejectApplication(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.fail(c, "RejectApplication", err)
	}
	return c.JSON(http.StatusOK, app)
}

func (h *Handler) ListMembers(c echo.Context) error {
	members, err := h.svc.ListMembers(c.Request().Context())
	if err != nil {
		return h.fail(c, "ListMembers", err)
	}
	return c.JSON(http.StatusOK, members)
}

// GetStats godoc
// @Summary daily checkouts, popular items and new members
// @Tags admin
// @Produce json
// @Param days query int false "window in days, default 7"
// @Success 200 {object} model.Stats
// @Router /api/v1/admin/stats [get]
func (h *Handler) GetStats(c echo.Context) error {
	var days int
	if daysParam := c.QueryParam("days"); daysParam != "" {
		var err error
		if days, err = strconv.Atoi(daysParam); err != nil || days < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, errors.New("days is invalid"))
		}
	}
	stats, err := h.svc.GetStats(c.Request().Context(), days)
	if err != nil {
		return h.fail(c, "GetStats", err)
	}
	return c.JSON(http.StatusOK, stats)
}
