package truck

import (
	"net/http"
	"strconv"

	"logistics/validation"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	InterfaceService InterfaceService
}

func NewTrucksHandler(InterfaceService InterfaceService) *Handler {
	return &Handler{InterfaceService}
}

// CreateTruckHandler godoc
// @Summary Register a truck.
// @Tags Truck
// @Accept json
// @Produce json
// @Param request body CreateTruckRequest true "Truck request"
// @Success 200 {object} TruckResponse "Truck"
// @Failure 400 {string} string "Invalid request"
// @Failure 409 {string} string "Duplicate license plate"
// @Router /trucks [post]
// @Security ApiKeyAuth
func (h *Handler) CreateTruckHandler(c echo.Context) error {
	var request CreateTruckRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}
	if err := validation.Validate(request); err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	result, err := h.InterfaceService.CreateTruckService(c.Request().Context(), request)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}

func (h *Handler) UpdateTruckHandler(c echo.Context) error {
	var request UpdateTruckRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}
	if err := validation.Validate(request); err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	result, err := h.InterfaceService.UpdateTruckService(c.Request().Context(), request)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}

func (h *Handler) DeleteTruckHandler(c echo.Context) error {
	id, err := validation.ParseStringToInt64(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	if err := h.InterfaceService.DeleteTruckService(c.Request().Context(), id); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) GetTrucksHandler(c echo.Context) error {
	result, err := h.InterfaceService.GetTrucksService(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}

// GetEligibleTrucksHandler godoc
// @Summary List trucks able to carry a container.
// @Tags Truck
// @Produce json
// @Param weight query number true "Container weight in kg"
// @Param volume query number true "Container volume in m3"
// @Param available query boolean false "Require availability"
// @Success 200 {array} TruckResponse "Eligible trucks"
// @Router /trucks/eligible [get]
func (h *Handler) GetEligibleTrucksHandler(c echo.Context) error {
	weight, err := validation.ParseStringToFloat64(c.QueryParam("weight"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}
	volume, err := validation.ParseStringToFloat64(c.QueryParam("volume"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}
	onlyAvailable, _ := strconv.ParseBool(c.QueryParam("available"))

	result, err := h.InterfaceService.FindByCapacitiesService(c.Request().Context(), weight, volume, onlyAvailable)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}
