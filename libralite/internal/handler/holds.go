package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/skhanzad/libralite/libralite/internal/model"
)

// PlaceHold godoc
// @Summary join the hold queue of an unavailable item
// @Tags holds
// @Accept json
// @Produce json
// @Param request body model.PlaceHoldRequest true "hold"
// @Success 201 {object} model.Hold
// @Failure 400 {object} echo.HTTPError
// @Failure 404 {object} echo.HTTPError
// @Router /api/v1/holds [post]
func (h *Handler) PlaceHold(c echo.Context) error {
	var req model.PlaceHoldRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	hold, err := h.svc.PlaceHold(c.Request().Context(), req)
	if err != nil {
		return h.fail(c, "PlaceHold", err)
	}
	return c.JSON(http.StatusCreated, hold)
}

func (h *Handler) ListHolds(c echo.Context) error {
	filter := model.HoldFilter{
		ItemID:            c.QueryParam("itemId"),
		LibraryCardNumber: c.QueryParam("libraryCardNumber"),
	}
	for _, param := range c.QueryParams()["status"] {
		for _, st := range strings.Split(param, ",") {
			status := model.HoldStatus(strings.TrimSpace(st))
			switch status {
			case model.HoldActive, model.HoldReady, model.HoldFulfilled, model.HoldCancelled, model.HoldExpired:
				filter.Statuses = append(filter.Statuses, status)
			case "":
			default:
				return echo.NewHTTPError(http.StatusBadRequest, errors.New("status is invalid"))
			}
		}
	}
	holds, err := h.svc.ListHolds(c.Request().Context(), filter)
	if err != nil {
		return h.fail(c, "ListHolds", err)
	}
	return c.JSON(http.StatusOK, holds)
}

func (h *Handler) GetHold(c echo.Context) error {
	hold, err := h.svc.GetHold(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.fail(c, "GetHold", err)
	}
	return c.JSON(http.StatusOK, hold)
}

func (h *Handler) UpdateHoldStatus(c echo.Context) error {
	var req model.UpdateHoldStatusRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	hold, err := h.svc.UpdateHoldStatus(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		return h.fail(c, "UpdateHoldStatus", err)
	}
	return c.JSON(http.StatusOK, hold)
}

func (h *Handler) CancelHold(c echo.Context) error {
	hold, err := h.svc.CancelHold(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.fail(c, "CancelHold", err)
	}
	return c.JSON(http.StatusOK, hold)
}

func (h *Handler) RecalculateQueuePositions(c echo.Context) error {
	holds, err := h.svc.RecalculateQueuePositions(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.fail(c, "RecalculateQueuePositions", err)
	}
	return c.JSON(http.StatusOK, holds)
}

func (h *Handler) GetQueuePosition(c echo.Context) error {
	pos, err := h.svc.GetQueuePosition(c.Request().Context(), c.Param("id"), c.Param("holdId"))
	if err != nil {
		return h.fail(c, "GetQueuePosition", err)
	}
	if pos == nil {
		return echo.NewHTTPError(http.StatusNotFound, "hold is not waiting in this item's queue")
	}
	return c.JSON(http.StatusOK, map[string]int{"position": *pos})
}

// PromoteNextHold godoc
// @Summary move the next hold of an item to the hold shelf
// @Tags hold-shelf
// @Accept json
// @Produce json
// @Param request body model.PromoteRequest true "item"
// @Success 201 {object} model.HoldShelfEntry
// @Failure 400 {object} echo.HTTPError
// @Failure 404 {object} echo.HTTPError
// @Router /api/v1/hold-shelf [post]
func (h *Handler) PromoteNextHold(c echo.Context) error {
	var req model.PromoteRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	entry, err := h.svc.PromoteNextHold(c.Request().Context(), req.ItemID)
	if err != nil {
		return h.fail(c, "PromoteNextHold", err)
	}
	return c.JSON(http.StatusCreated, entry)
}

func (h *Handler) ListHoldShelf(c echo.Context) error {
	entries, err := h.svc.ListHoldShelf(c.Request().Context(), c.QueryParam("libraryCardNumber"))
	if err != nil {
		return h.fail(c, "ListHoldShelf", err)
	}
	return c.JSON(http.StatusOK, entries)
}

func (h *Handler) ExpireHoldShelf(c echo.Context) error {
	n, err := h.svc.CheckExpiredHoldShelfItems(c.Request().Context())
	if err != nil {
		return h.fail(c, "CheckExpiredHoldShelfItems", err)
	}
	return c.JSON(http.StatusOK, model.ExpireResult{Expired: n})
}
