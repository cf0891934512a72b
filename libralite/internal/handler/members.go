package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/skhanzad/libralite/libralite/internal/model"
	"github.com/skhanzad/libralite/pkg/auth"
)

// SubmitApplication godoc
// @Summary submit a membership application
// @Tags members
// @Accept json
// @Produce json
// @Param request body model.ApplicationRequest true "applicant"
// @Success 201 {object} model.Application
// @Failure 400 {object} errs.ValidationErrorResponse
// @Router /api/v1/members/apply [post]
func (h *Handler) SubmitApplication(c echo.Context) error {
	var req model.ApplicationRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	app, err := h.svc.SubmitApplication(c.Request().Context(), req)
	if err != nil {
		return h.fail(c, "SubmitApplication", err)
	}
	return c.JSON(http.StatusCreated, app)
}

func (h *Handler) GetApplication(c echo.Context) error {
	app, err := h.svc.GetApplication(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.fail(c, "GetApplication", err)
	}
	return c.JSON(http.StatusOK, app)
}

// Login godoc
// @Summary authenticate a member by card number and PIN
// @Tags members
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "credentials"
// @Success 200 {object} model.LoginResponse
// @Failure 401 {object} echo.HTTPError
// @Failure 429 {object} echo.HTTPError
// @Router /api/v1/members/login [post]
func (h *Handler) Login(c echo.Context) error {
	var req model.LoginRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	resp, err := h.svc.AuthenticateMember(c.Request().Context(), req)
	if err != nil {
		return h.fail(c, "AuthenticateMember", err)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) Me(c echo.Context) error {
	ctx := c.Request().Context()
	card, ok := auth.CardNumberFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "JwtAccessDenied")
	}
	member, err := h.svc.GetMember(ctx, card)
	if err != nil {
		return h.fail(c, "GetMember", err)
	}
	return c.JSON(http.StatusOK, member)
}

func (h *Handler) GetMemberLoans(c echo.Context) error {
	loans, err := h.svc.GetMemberLoans(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.fail(c, "GetMemberLoans", err)
	}
	return c.JSON(http.StatusOK, loans)
}

func (h *Handler) GetMemberFines(c echo.Context) error {
	fines, err := h.svc.GetMemberFines(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.fail(c, "GetMemberFines", err)
	}
	return c.JSON(http.StatusOK, fines)
}

// GetMemberAccount godoc
// @Summary open loans, pending fines and the outstanding total
// @Tags members
// @Produce json
// @Param id path string true "library card number"
// @Success 200 {object} model.MemberAccount
// @Failure 404 {object} echo.HTTPError
// @Router /api/v1/members/{id}/account [get]
func (h *Handler) GetMemberAccount(c echo.Context) error {
	acc, err := h.svc.GetMemberAccount(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.fail(c, "GetMemberAccount", err)
	}
	return c.JSON(http.StatusOK, acc)
}
