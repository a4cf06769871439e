package warehouse

import (
	"net/http"

	"logistics/validation"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	InterfaceService InterfaceService
}

func NewWarehousesHandler(InterfaceService InterfaceService) *Handler {
	return &Handler{InterfaceService}
}

// CreateWarehouseHandler godoc
// @Summary Register a warehouse.
// @Tags Warehouse
// @Accept json
// @Produce json
// @Param request body CreateWarehouseRequest true "Warehouse request"
// @Success 200 {object} WarehouseResponse "Warehouse"
// @Failure 400 {string} string "Invalid request"
// @Router /warehouses [post]
// @Security ApiKeyAuth
func (h *Handler) CreateWarehouseHandler(c echo.Context) error {
	var request CreateWarehouseRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}
	if err := validation.Validate(request); err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	result, err := h.InterfaceService.CreateWarehouseService(c.Request().Context(), request)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}

func (h *Handler) UpdateWarehouseHandler(c echo.Context) error {
	var request UpdateWarehouseRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}
	if err := validation.Validate(request); err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	result, err := h.InterfaceService.UpdateWarehouseService(c.Request().Context(), request)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}

func (h *Handler) DeleteWarehouseHandler(c echo.Context) error {
	id, err := validation.ParseStringToInt64(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	if err := h.InterfaceService.DeleteWarehouseService(c.Request().Context(), id); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) GetWarehousesHandler(c echo.Context) error {
	result, err := h.InterfaceService.GetWarehousesService(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}
