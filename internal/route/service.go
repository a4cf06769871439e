package route

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"time"

	db "logistics/db/sqlc"
	"logistics/infra/apperr"
	"logistics/internal/tariff"
	"logistics/internal/truck"
	"logistics/internal/warehouse"
	"logistics/pkg/requests"
	"logistics/pkg/routing"
	"logistics/validation"

	"go.uber.org/zap"
)

// ContainerInfoProvider is the slice of the transport-request peer service
// the route flows need.
type ContainerInfoProvider interface {
	GetContainerByRequestID(ctx context.Context, bearerToken string, requestID int64) (requests.ContainerInfo, error)
}

type InterfaceService interface {
	CreateRouteService(ctx context.Context, data CreateRouteDTO) (RouteSummaryResponse, error)
	GetRouteService(ctx context.Context, id int64) (RouteSummaryResponse, error)
	AssignTruckService(ctx context.Context, data AssignTruckDTO) (SegmentResponse, error)
	StartSegmentService(ctx context.Context, segmentID int64) (SegmentResponse, error)
	FinishSegmentService(ctx context.Context, segmentID int64) (SegmentResponse, error)
}

type Service struct {
	InterfaceService InterfaceRepository
	TariffService    tariff.InterfaceService
	WarehouseService warehouse.InterfaceService
	TruckService     truck.InterfaceService
	RoutingProvider  routing.Provider
	RequestsClient   ContainerInfoProvider
	Logger           *zap.Logger
}

func NewRoutesService(
	InterfaceService InterfaceRepository,
	tariffService tariff.InterfaceService,
	warehouseService warehouse.InterfaceService,
	truckService truck.InterfaceService,
	routingProvider routing.Provider,
	requestsClient ContainerInfoProvider,
	logger *zap.Logger,
) *Service {
	return &Service{
		InterfaceService: InterfaceService,
		TariffService:    tariffService,
		WarehouseService: warehouseService,
		TruckService:     truckService,
		RoutingProvider:  routingProvider,
		RequestsClient:   requestsClient,
		Logger:           logger,
	}
}

func (s *Service) CreateRouteService(ctx context.Context, data CreateRouteDTO) (RouteSummaryResponse, error) {
	request := data.CreateRouteRequest

	if !validation.IsValidLatitude(request.Origin.Latitude) || !validation.IsValidLongitude(request.Origin.Longitude) ||
		!validation.IsValidLatitude(request.Destination.Latitude) || !validation.IsValidLongitude(request.Destination.Longitude) {
		return RouteSummaryResponse{}, apperr.Precondition("origin and destination coordinates are required")
	}

	// The tariff is frozen on the route at creation; later band changes
	// never touch existing routes.
	band, err := s.TariffService.SelectBandService(ctx, request.ContainerVolume)
	if err != nil {
		return RouteSummaryResponse{}, err
	}

	waypoints, err := s.WarehouseService.GetWarehousesInOrderService(ctx, request.WarehouseIDs)
	if err != nil {
		return RouteSummaryResponse{}, err
	}

	plans := BuildSegmentChain(request.Origin, request.Destination, waypoints)

	segmentArgs := make([]db.CreateSegmentParams, 0, len(plans))
	for _, plan := range plans {
		resolved := s.resolveSegment(ctx, plan.Origin, plan.Destination)
		segmentArgs = append(segmentArgs, db.CreateSegmentParams{
			Position:               plan.Position,
			SegmentType:            string(plan.Type),
			State:                  string(SegmentStateEstimated),
			OriginWarehouseID:      plan.OriginWarehouseID,
			DestinationWarehouseID: plan.DestinationWarehouseID,
			OriginLat:              plan.Origin.Latitude,
			OriginLon:              plan.Origin.Longitude,
			DestinationLat:         plan.Destination.Latitude,
			DestinationLon:         plan.Destination.Longitude,
			DistanceKm:             resolved.DistanceKm,
			DurationSeconds:        resolved.DurationSeconds,
			DwellCost:              plan.DwellCost,
		})
	}

	routeArg := db.CreateRouteParams{
		RequestID:       request.RequestID,
		OriginLat:       request.Origin.Latitude,
		OriginLon:       request.Origin.Longitude,
		DestinationLat:  request.Destination.Latitude,
		DestinationLon:  request.Destination.Longitude,
		ContainerVolume: request.ContainerVolume,
		TariffID:        band.ID,
		SegmentCount:    int32(len(plans)),
		DepotCount:      int32(len(waypoints)),
	}

	created, segments, err := s.InterfaceService.CreateRouteWithSegments(ctx, routeArg, segmentArgs)
	if err != nil {
		return RouteSummaryResponse{}, err
	}

	response := RouteSummaryResponse{}
	response.ParseFromRouteObject(created, segments)

	return response, nil
}

// resolveSegment asks the routing engine for the leg; any failure degrades
// to the planar approximation (degrees times 111 km) with unknown
// duration. Creation never fails because the engine is unreachable.
func (s *Service) resolveSegment(ctx context.Context, origin, destination Point) routing.Result {
	resolved, err := s.RoutingProvider.Resolve(ctx, origin.Latitude, origin.Longitude, destination.Latitude, destination.Longitude)
	if err == nil {
		return resolved
	}

	s.Logger.Warn("routing engine unavailable, using planar fallback",
		zap.Float64("origin_lat", origin.Latitude),
		zap.Float64("origin_lon", origin.Longitude),
		zap.Float64("destination_lat", destination.Latitude),
		zap.Float64("destination_lon", destination.Longitude),
		zap.Error(err),
	)

	deltaLat := destination.Latitude - origin.Latitude
	deltaLon := destination.Longitude - origin.Longitude
	distance := math.Sqrt(deltaLat*deltaLat+deltaLon*deltaLon) * 111

	return routing.Result{
		DistanceKm:      math.Round(distance*100) / 100,
		DurationSeconds: 0,
	}
}

func (s *Service) GetRouteService(ctx context.Context, id int64) (RouteSummaryResponse, error) {
	found, err := s.InterfaceService.GetRouteByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return RouteSummaryResponse{}, apperr.NotFound("route not found")
	}
	if err != nil {
		return RouteSummaryResponse{}, err
	}

	segments, err := s.InterfaceService.ListSegmentsByRoute(ctx, id)
	if err != nil {
		return RouteSummaryResponse{}, err
	}

	response := RouteSummaryResponse{}
	response.ParseFromRouteObject(found, segments)

	return response, nil
}

// AssignTruckService runs the ESTIMATED -> ASSIGNED transition. Capacity
// is validated against the container every time, also on re-assignment;
// on any failure the segment keeps its current state and truck.
func (s *Service) AssignTruckService(ctx context.Context, data AssignTruckDTO) (SegmentResponse, error) {
	segment, err := s.InterfaceService.GetSegmentByID(ctx, data.SegmentID)
	if errors.Is(err, sql.ErrNoRows) {
		return SegmentResponse{}, apperr.NotFound("segment not found")
	}
	if err != nil {
		return SegmentResponse{}, err
	}

	if !CanTransition(SegmentState(segment.State), SegmentStateAssigned) {
		return SegmentResponse{}, apperr.Precondition(fmt.Sprintf(
			"invalid segment state transition: %s -> %s", segment.State, SegmentStateAssigned))
	}

	found, err := s.InterfaceService.GetRouteByID(ctx, segment.RouteID)
	if err != nil {
		return SegmentResponse{}, err
	}

	container, err := s.RequestsClient.GetContainerByRequestID(ctx, data.Payload.Token, found.RequestID)
	if err != nil {
		return SegmentResponse{}, apperr.Upstream("container information unavailable", err)
	}

	assignee, err := s.TruckService.GetTruckService(ctx, data.TruckID)
	if err != nil {
		return SegmentResponse{}, err
	}

	if !assignee.Available {
		return SegmentResponse{}, apperr.Precondition("truck is not available")
	}
	if assignee.WeightCapacityKg < container.WeightKg || assignee.VolumeCapacityM3 < container.VolumeM3 {
		return SegmentResponse{}, apperr.CapacityInsufficient("truck capacity insufficient for container")
	}

	updated, err := s.InterfaceService.UpdateSegmentTruck(ctx, db.UpdateSegmentTruckParams{
		ID:      segment.ID,
		TruckID: sql.NullInt64{Int64: assignee.ID, Valid: true},
		State:   string(SegmentStateAssigned),
	})
	if err != nil {
		return SegmentResponse{}, err
	}

	response := SegmentResponse{}
	response.ParseFromSegmentObject(updated)

	return response, nil
}

func (s *Service) StartSegmentService(ctx context.Context, segmentID int64) (SegmentResponse, error) {
	segment, err := s.InterfaceService.GetSegmentByID(ctx, segmentID)
	if errors.Is(err, sql.ErrNoRows) {
		return SegmentResponse{}, apperr.NotFound("segment not found")
	}
	if err != nil {
		return SegmentResponse{}, err
	}

	if !CanTransition(SegmentState(segment.State), SegmentStateInProgress) {
		return SegmentResponse{}, apperr.Precondition(fmt.Sprintf(
			"invalid segment state transition: %s -> %s", segment.State, SegmentStateInProgress))
	}

	updated, err := s.InterfaceService.UpdateSegmentStart(ctx, db.UpdateSegmentStartParams{
		ID:        segment.ID,
		State:     string(SegmentStateInProgress),
		StartedAt: sql.NullTime{Time: time.Now().UTC(), Valid: true},
	})
	if err != nil {
		return SegmentResponse{}, err
	}

	response := SegmentResponse{}
	response.ParseFromSegmentObject(updated)

	return response, nil
}

func (s *Service) FinishSegmentService(ctx context.Context, segmentID int64) (SegmentResponse, error) {
	segment, err := s.InterfaceService.GetSegmentByID(ctx, segmentID)
	if errors.Is(err, sql.ErrNoRows) {
		return SegmentResponse{}, apperr.NotFound("segment not found")
	}
	if err != nil {
		return SegmentResponse{}, err
	}

	if !CanTransition(SegmentState(segment.State), SegmentStateFinished) {
		return SegmentResponse{}, apperr.Precondition(fmt.Sprintf(
			"invalid segment state transition: %s -> %s", segment.State, SegmentStateFinished))
	}

	updated, err := s.InterfaceService.UpdateSegmentFinish(ctx, db.UpdateSegmentFinishParams{
		ID:         segment.ID,
		State:      string(SegmentStateFinished),
		FinishedAt: sql.NullTime{Time: time.Now().UTC(), Valid: true},
	})
	if err != nil {
		return SegmentResponse{}, err
	}

	response := SegmentResponse{}
	response.ParseFromSegmentObject(updated)

	return response, nil
}
