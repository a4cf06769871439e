package route

import (
	"net/http"

	"logistics/internal/get_token"
	"logistics/validation"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	InterfaceService InterfaceService
}

func NewRoutesHandler(InterfaceService InterfaceService) *Handler {
	return &Handler{InterfaceService}
}

// CreateRouteHandler godoc
// @Summary Create a route for a transport request.
// @Description Builds the ordered segment chain through the given warehouses and resolves each leg's distance.
// @Tags Route
// @Accept json
// @Produce json
// @Param request body CreateRouteRequest true "Route request"
// @Success 200 {object} RouteSummaryResponse "Route with segments"
// @Failure 400 {string} string "Invalid request"
// @Failure 409 {string} string "No tariff band for the volume"
// @Router /routes [post]
// @Security ApiKeyAuth
func (h *Handler) CreateRouteHandler(c echo.Context) error {
	var request CreateRouteRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}
	if err := validation.Validate(request); err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	data := CreateRouteDTO{
		CreateRouteRequest: request,
		Payload:            get_token.GetPayloadToken(c),
	}

	result, err := h.InterfaceService.CreateRouteService(c.Request().Context(), data)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}

func (h *Handler) GetRouteHandler(c echo.Context) error {
	id, err := validation.ParseStringToInt64(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	result, err := h.InterfaceService.GetRouteService(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}

// AssignTruckHandler godoc
// @Summary Assign a truck to a segment.
// @Description Validates capacity and availability, then moves the segment to ASSIGNED.
// @Tags Route
// @Accept json
// @Produce json
// @Param id path int true "Segment id"
// @Param request body AssignTruckRequest true "Truck assignment"
// @Success 200 {object} SegmentResponse "Updated segment"
// @Failure 404 {string} string "Segment or truck not found"
// @Failure 422 {string} string "Capacity insufficient"
// @Router /segments/{id}/assign [post]
// @Security ApiKeyAuth
func (h *Handler) AssignTruckHandler(c echo.Context) error {
	segmentID, err := validation.ParseStringToInt64(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	var request AssignTruckRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}
	if err := validation.Validate(request); err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	data := AssignTruckDTO{
		SegmentID: segmentID,
		TruckID:   request.TruckID,
		Payload:   get_token.GetPayloadToken(c),
	}

	result, err := h.InterfaceService.AssignTruckService(c.Request().Context(), data)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}

func (h *Handler) StartSegmentHandler(c echo.Context) error {
	segmentID, err := validation.ParseStringToInt64(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	result, err := h.InterfaceService.StartSegmentService(c.Request().Context(), segmentID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}

func (h *Handler) FinishSegmentHandler(c echo.Context) error {
	segmentID, err := validation.ParseStringToInt64(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	result, err := h.InterfaceService.FinishSegmentService(c.Request().Context(), segmentID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}
