package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/skhanzad/libralite/libralite/internal/model"
)

// Checkout godoc
// @Summary check an item out to a member
// @Tags loans
// @Accept json
// @Produce json
// @Param request body model.CheckoutRequest true "member and item"
// @Success 201 {object} model.Loan
// @Failure 400 {object} echo.HTTPError
// @Failure 404 {object} echo.HTTPError
// @Router /api/v1/loans/checkout [post]
func (h *Handler) Checkout(c echo.Context) error {
	var req model.CheckoutRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	loan, err := h.svc.CheckoutItem(c.Request().Context(), req)
	if err != nil {
		return h.fail(c, "CheckoutItem", err)
	}
	return c.JSON(http.StatusCreated, loan)
}

func (h *Handler) Checkin(c echo.Context) error {
	var req model.CheckinRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	res, err := h.svc.CheckinItem(c.Request().Context(), req)
	if err != nil {
		return h.fail(c, "CheckinItem", err)
	}
	return c.JSON(http.StatusOK, res)
}
