package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/skhanzad/libralite/libralite/internal/model"
)

func (h *Handler) CreateItem(c echo.Context) error {
	var req model.CreateItemRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	item, err := h.svc.CreateItem(c.Request().Context(), req)
	if err != nil {
		return h.fail(c, "CreateItem", err)
	}
	return c.JSON(http.StatusCreated, item)
}

func (h *Handler) GetItem(c echo.Context) error {
	item, err := h.svc.GetItem(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.fail(c, "GetItem", err)
	}
	return c.JSON(http.StatusOK, item)
}

// ListItems godoc
// @Summary search the catalog
// @Tags items
// @Produce json
// @Param search query string false "title, author or isbn fragment"
// @Param itemType query string false "book, dvd, magazine or other"
// @Param available query bool false "only available or unavailable items"
// @Param page query int false "page, 1-based"
// @Param size query int false "page size"
// @Success 200 {object} model.ListItems
// @Router /api/v1/items [get]
func (h *Handler) ListItems(c echo.Context) error {
	filter := model.ItemFilter{
		Search:   c.QueryParam("search"),
		ItemType: model.ItemType(c.QueryParam("itemType")),
	}
	var err error
	if pageParam := c.QueryParam("page"); pageParam != "" {
		if filter.Page, err = strconv.Atoi(pageParam); err != nil || filter.Page < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, errors.New("page is invalid"))
		}
	}
	if sizeParam := c.QueryParam("size"); sizeParam != "" {
		if filter.Size, err = strconv.Atoi(sizeParam); err != nil || filter.Size < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, errors.New("size is invalid"))
		}
	}
	if availableParam := c.QueryParam("available"); availableParam != "" {
		available, err := strconv.ParseBool(availableParam)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, errors.New("available is invalid"))
		}
		filter.Available = &available
	}

	items, err := h.svc.ListItems(c.Request().Context(), filter)
	if err != nil {
		return h.fail(c, "ListItems", err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) UpdateItem(c echo.Context) error {
	var req model.UpdateItemRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	item, err := h.svc.UpdateItem(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return h.fail(c, "UpdateItem", err)
	}
	return c.JSON(http.StatusOK, item)
}

// ReturnItem godoc
// @Summary return an item and pass it to the next hold
// @Tags items
// @Produce json
// @Param id path string true "item id"
// @Success 200 {object} model.ReturnResult
// @Failure 400 {object} echo.HTTPError
// @Failure 404 {object} echo.HTTPError
// @Router /api/v1/items/{id}/return [post]
func (h *Handler) ReturnItem(c echo.Context) error {
	res, err := h.svc.ReturnItem(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.fail(c, "ReturnItem", err)
	}
	return c.JSON(http.StatusOK, res)
}
