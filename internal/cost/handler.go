package cost

import (
	"net/http"

	"logistics/internal/get_token"
	"logistics/validation"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	InterfaceService InterfaceService
}

func NewCostsHandler(InterfaceService InterfaceService) *Handler {
	return &Handler{InterfaceService}
}

// GetEstimateHandler godoc
// @Summary Estimate the cost of a route.
// @Description Prices every segment against the fleet average of capacity-eligible trucks.
// @Tags Cost
// @Produce json
// @Param id path int true "Route id"
// @Success 200 {object} CostBreakdown "Estimated breakdown"
// @Failure 404 {string} string "Route not found"
// @Failure 422 {string} string "No eligible vehicles"
// @Router /routes/{id}/estimate [get]
// @Security ApiKeyAuth
func (h *Handler) GetEstimateHandler(c echo.Context) error {
	id, err := validation.ParseStringToInt64(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	result, err := h.InterfaceService.EstimateCostService(c.Request().Context(), id, get_token.GetPayloadToken(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}

// FinalizeHandler godoc
// @Summary Finalize the cost of a route.
// @Description Prices each segment with its assigned truck and records the final breakdown.
// @Tags Cost
// @Produce json
// @Param id path int true "Route id"
// @Success 200 {object} CostBreakdown "Final breakdown"
// @Failure 404 {string} string "Route not found"
// @Router /routes/{id}/finalize [post]
// @Security ApiKeyAuth
func (h *Handler) FinalizeHandler(c echo.Context) error {
	id, err := validation.ParseStringToInt64(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	result, err := h.InterfaceService.FinalizeCostService(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}

// ExportReportHandler godoc
// @Summary Export the finalized cost report.
// @Description Uploads the final breakdown as a JSON document and returns its URL.
// @Tags Cost
// @Produce json
// @Param id path int true "Route id"
// @Success 200 {object} ReportResponse "Report location"
// @Failure 422 {string} string "Route not finalized"
// @Router /routes/{id}/report [post]
// @Security ApiKeyAuth
func (h *Handler) ExportReportHandler(c echo.Context) error {
	id, err := validation.ParseStringToInt64(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	result, err := h.InterfaceService.ExportReportService(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}
