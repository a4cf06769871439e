package tariff

import (
	"net/http"

	"logistics/validation"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	InterfaceService InterfaceService
}

func NewTariffsHandler(InterfaceService InterfaceService) *Handler {
	return &Handler{InterfaceService}
}

// CreateTariffHandler godoc
// @Summary Create a tariff band.
// @Description Registers a volume-indexed tariff band.
// @Tags Tariff
// @Accept json
// @Produce json
// @Param request body CreateTariffRequest true "Tariff band request"
// @Success 200 {object} TariffResponse "Tariff band"
// @Failure 400 {string} string "Invalid request"
// @Failure 409 {string} string "Overlapping band"
// @Router /tariffs [post]
// @Security ApiKeyAuth
func (h *Handler) CreateTariffHandler(c echo.Context) error {
	var request CreateTariffRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}
	if err := validation.Validate(request); err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	result, err := h.InterfaceService.CreateTariffService(c.Request().Context(), request)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}

func (h *Handler) GetTariffsHandler(c echo.Context) error {
	result, err := h.InterfaceService.GetTariffsService(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}

func (h *Handler) DeleteTariffHandler(c echo.Context) error {
	id, err := validation.ParseStringToInt64(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	if err := h.InterfaceService.DeleteTariffService(c.Request().Context(), id); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// GetBandHandler godoc
// @Summary Find the tariff band for a volume.
// @Tags Tariff
// @Produce json
// @Param volume query number true "Container volume in m3"
// @Success 200 {object} TariffResponse "Matching band"
// @Failure 409 {string} string "No band contains the volume"
// @Router /tariffs/band [get]
func (h *Handler) GetBandHandler(c echo.Context) error {
	volume, err := validation.ParseStringToFloat64(c.QueryParam("volume"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	result, err := h.InterfaceService.SelectBandService(c.Request().Context(), volume)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}
