package route

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	db "logistics/db/sqlc"
	"logistics/infra/apperr"
	"logistics/internal/get_token"
	"logistics/internal/tariff"
	"logistics/internal/truck"
	"logistics/internal/warehouse"
	"logistics/pkg/requests"
	"logistics/pkg/routing"

	"go.uber.org/zap"
)

type fakeRepository struct {
	routes   map[int64]db.Route
	segments map[int64]db.Segment
	nextID   int64
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		routes:   map[int64]db.Route{},
		segments: map[int64]db.Segment{},
		nextID:   1,
	}
}

func (f *fakeRepository) CreateRouteWithSegments(_ context.Context, routeArg db.CreateRouteParams, segmentArgs []db.CreateSegmentParams) (db.Route, []db.Segment, error) {
	created := db.Route{
		ID:              f.nextID,
		RequestID:       routeArg.RequestID,
		OriginLat:       routeArg.OriginLat,
		OriginLon:       routeArg.OriginLon,
		DestinationLat:  routeArg.DestinationLat,
		DestinationLon:  routeArg.DestinationLon,
		ContainerVolume: routeArg.ContainerVolume,
		TariffID:        routeArg.TariffID,
		SegmentCount:    routeArg.SegmentCount,
		DepotCount:      routeArg.DepotCount,
		Version:         1,
	}
	f.nextID++
	f.routes[created.ID] = created

	segments := make([]db.Segment, 0, len(segmentArgs))
	for _, arg := range segmentArgs {
		segment := db.Segment{
			ID:                     f.nextID,
			RouteID:                created.ID,
			Position:               arg.Position,
			SegmentType:            arg.SegmentType,
			State:                  arg.State,
			OriginWarehouseID:      arg.OriginWarehouseID,
			DestinationWarehouseID: arg.DestinationWarehouseID,
			OriginLat:              arg.OriginLat,
			OriginLon:              arg.OriginLon,
			DestinationLat:         arg.DestinationLat,
			DestinationLon:         arg.DestinationLon,
			DistanceKm:             arg.DistanceKm,
			DurationSeconds:        arg.DurationSeconds,
			DwellCost:              arg.DwellCost,
		}
		f.nextID++
		f.segments[segment.ID] = segment
		segments = append(segments, segment)
	}
	return created, segments, nil
}

func (f *fakeRepository) GetRouteByID(_ context.Context, id int64) (db.Route, error) {
	found, ok := f.routes[id]
	if !ok {
		return db.Route{}, sql.ErrNoRows
	}
	return found, nil
}

func (f *fakeRepository) ListSegmentsByRoute(_ context.Context, routeID int64) ([]db.Segment, error) {
	var result []db.Segment
	for _, segment := range f.segments {
		if segment.RouteID == routeID {
			result = append(result, segment)
		}
	}
	return result, nil
}

func (f *fakeRepository) GetSegmentByID(_ context.Context, id int64) (db.Segment, error) {
	segment, ok := f.segments[id]
	if !ok {
		return db.Segment{}, sql.ErrNoRows
	}
	return segment, nil
}

func (f *fakeRepository) UpdateSegmentTruck(_ context.Context, arg db.UpdateSegmentTruckParams) (db.Segment, error) {
	segment := f.segments[arg.ID]
	segment.TruckID = arg.TruckID
	segment.State = arg.State
	f.segments[arg.ID] = segment
	return segment, nil
}

func (f *fakeRepository) UpdateSegmentStart(_ context.Context, arg db.UpdateSegmentStartParams) (db.Segment, error) {
	segment := f.segments[arg.ID]
	segment.State = arg.State
	segment.StartedAt = arg.StartedAt
	f.segments[arg.ID] = segment
	return segment, nil
}

func (f *fakeRepository) UpdateSegmentFinish(_ context.Context, arg db.UpdateSegmentFinishParams) (db.Segment, error) {
	segment := f.segments[arg.ID]
	segment.State = arg.State
	segment.FinishedAt = arg.FinishedAt
	f.segments[arg.ID] = segment
	return segment, nil
}

type fakeTariffService struct {
	band tariff.TariffResponse
}

func (f *fakeTariffService) CreateTariffService(context.Context, tariff.CreateTariffRequest) (tariff.TariffResponse, error) {
	return tariff.TariffResponse{}, nil
}

func (f *fakeTariffService) GetTariffsService(context.Context) ([]tariff.TariffResponse, error) {
	return nil, nil
}

func (f *fakeTariffService) DeleteTariffService(context.Context, int64) error {
	return nil
}

func (f *fakeTariffService) SelectBandService(context.Context, float64) (tariff.TariffResponse, error) {
	return f.band, nil
}

type fakeWarehouseService struct {
	warehouses []warehouse.WarehouseResponse
}

func (f *fakeWarehouseService) CreateWarehouseService(context.Context, warehouse.CreateWarehouseRequest) (warehouse.WarehouseResponse, error) {
	return warehouse.WarehouseResponse{}, nil
}

func (f *fakeWarehouseService) UpdateWarehouseService(context.Context, warehouse.UpdateWarehouseRequest) (warehouse.WarehouseResponse, error) {
	return warehouse.WarehouseResponse{}, nil
}

func (f *fakeWarehouseService) DeleteWarehouseService(context.Context, int64) error {
	return nil
}

func (f *fakeWarehouseService) GetWarehousesService(context.Context) ([]warehouse.WarehouseResponse, error) {
	return f.warehouses, nil
}

func (f *fakeWarehouseService) GetWarehousesInOrderService(_ context.Context, ids []int64) ([]warehouse.WarehouseResponse, error) {
	var ordered []warehouse.WarehouseResponse
	for _, id := range ids {
		for _, candidate := range f.warehouses {
			if candidate.ID == id {
				ordered = append(ordered, candidate)
			}
		}
	}
	return ordered, nil
}

type fakeTruckService struct {
	trucks map[int64]truck.TruckResponse
}

func (f *fakeTruckService) CreateTruckService(context.Context, truck.CreateTruckRequest) (truck.TruckResponse, error) {
	return truck.TruckResponse{}, nil
}

func (f *fakeTruckService) UpdateTruckService(context.Context, truck.UpdateTruckRequest) (truck.TruckResponse, error) {
	return truck.TruckResponse{}, nil
}

func (f *fakeTruckService) DeleteTruckService(context.Context, int64) error {
	return nil
}

func (f *fakeTruckService) GetTruckService(_ context.Context, id int64) (truck.TruckResponse, error) {
	found, ok := f.trucks[id]
	if !ok {
		return truck.TruckResponse{}, apperr.NotFound("truck not found")
	}
	return found, nil
}

func (f *fakeTruckService) GetTrucksService(context.Context) ([]truck.TruckResponse, error) {
	return nil, nil
}

func (f *fakeTruckService) FindByCapacitiesService(_ context.Context, weightKg, volumeM3 float64, onlyAvailable bool) ([]truck.TruckResponse, error) {
	var eligible []truck.TruckResponse
	for _, candidate := range f.trucks {
		if candidate.WeightCapacityKg < weightKg || candidate.VolumeCapacityM3 < volumeM3 {
			continue
		}
		if onlyAvailable && !candidate.Available {
			continue
		}
		eligible = append(eligible, candidate)
	}
	return eligible, nil
}

type fakeRoutingProvider struct {
	result routing.Result
	err    error
}

func (f *fakeRoutingProvider) Resolve(context.Context, float64, float64, float64, float64) (routing.Result, error) {
	return f.result, f.err
}

type fakeContainerProvider struct {
	container requests.ContainerInfo
	err       error
}

func (f *fakeContainerProvider) GetContainerByRequestID(context.Context, string, int64) (requests.ContainerInfo, error) {
	return f.container, f.err
}

func newTestService(repo *fakeRepository, provider routing.Provider, trucks map[int64]truck.TruckResponse, container requests.ContainerInfo) *Service {
	return NewRoutesService(
		repo,
		&fakeTariffService{band: tariff.TariffResponse{ID: 1, VolumeMin: 0, VolumeMax: 100, ManagementFee: 400, FuelPriceLiter: 5.5}},
		&fakeWarehouseService{warehouses: []warehouse.WarehouseResponse{
			{ID: 10, Latitude: -23.20, Longitude: -45.90, DwellCostDay: 120, DwellDays: 2},
		}},
		&fakeTruckService{trucks: trucks},
		provider,
		&fakeContainerProvider{container: container},
		zap.NewNop(),
	)
}

func TestCreateRouteUsesRoutingEngine(t *testing.T) {
	repo := newFakeRepository()
	provider := &fakeRoutingProvider{result: routing.Result{DistanceKm: 431.5, DurationSeconds: 19800}}
	service := newTestService(repo, provider, nil, requests.ContainerInfo{})

	result, err := service.CreateRouteService(context.Background(), CreateRouteDTO{
		CreateRouteRequest: CreateRouteRequest{
			RequestID:       7,
			Origin:          Point{Latitude: -23.55, Longitude: -46.63},
			Destination:     Point{Latitude: -22.90, Longitude: -43.17},
			ContainerVolume: 45,
		},
	})
	if err != nil {
		t.Fatalf("CreateRouteService: %v", err)
	}

	if len(result.Segments) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(result.Segments))
	}
	if result.Segments[0].DistanceKm != 431.5 {
		t.Fatalf("distance = %.2f, want 431.5", result.Segments[0].DistanceKm)
	}
	if result.Segments[0].DurationSeconds != 19800 {
		t.Fatalf("duration = %d, want 19800", result.Segments[0].DurationSeconds)
	}
	if result.Segments[0].State != SegmentStateEstimated {
		t.Fatalf("new segment must be ESTIMATED, got %s", result.Segments[0].State)
	}
}

func TestCreateRoutePlanarFallback(t *testing.T) {
	repo := newFakeRepository()
	provider := &fakeRoutingProvider{err: errors.New("connection refused")}
	service := newTestService(repo, provider, nil, requests.ContainerInfo{})

	result, err := service.CreateRouteService(context.Background(), CreateRouteDTO{
		CreateRouteRequest: CreateRouteRequest{
			RequestID:       7,
			Origin:          Point{Latitude: 0, Longitude: 0},
			Destination:     Point{Latitude: 0, Longitude: 1},
			ContainerVolume: 45,
		},
	})
	if err != nil {
		t.Fatalf("CreateRouteService must not fail when the engine is down: %v", err)
	}

	if result.Segments[0].DistanceKm != 111 {
		t.Fatalf("fallback distance = %.2f, want 111", result.Segments[0].DistanceKm)
	}
	if result.Segments[0].DurationSeconds != 0 {
		t.Fatalf("fallback duration must be 0, got %d", result.Segments[0].DurationSeconds)
	}
}

func TestCreateRouteZeroDistanceWhenSameCoordinates(t *testing.T) {
	repo := newFakeRepository()
	provider := &fakeRoutingProvider{err: errors.New("connection refused")}
	service := newTestService(repo, provider, nil, requests.ContainerInfo{})

	result, err := service.CreateRouteService(context.Background(), CreateRouteDTO{
		CreateRouteRequest: CreateRouteRequest{
			RequestID:       7,
			Origin:          Point{Latitude: 10, Longitude: 20},
			Destination:     Point{Latitude: 10, Longitude: 20},
			ContainerVolume: 45,
		},
	})
	if err != nil {
		t.Fatalf("CreateRouteService: %v", err)
	}
	if result.Segments[0].DistanceKm != 0 {
		t.Fatalf("identical coordinates must yield distance 0, got %.2f", result.Segments[0].DistanceKm)
	}
}

func TestCreateRouteRejectsInvalidCoordinates(t *testing.T) {
	repo := newFakeRepository()
	service := newTestService(repo, &fakeRoutingProvider{}, nil, requests.ContainerInfo{})

	_, err := service.CreateRouteService(context.Background(), CreateRouteDTO{
		CreateRouteRequest: CreateRouteRequest{
			RequestID:       7,
			Origin:          Point{Latitude: 95, Longitude: 0},
			Destination:     Point{Latitude: 10, Longitude: 20},
			ContainerVolume: 45,
		},
	})
	if err == nil {
		t.Fatalf("expected latitude 95 to be rejected")
	}
}

func seedAssignableSegment(repo *fakeRepository, state SegmentState) int64 {
	repo.routes[100] = db.Route{ID: 100, RequestID: 7, TariffID: 1, Version: 1}
	repo.segments[200] = db.Segment{
		ID:         200,
		RouteID:    100,
		Position:   0,
		State:      string(state),
		DistanceKm: 150,
	}
	return 200
}

func TestAssignTruckMovesSegmentToAssigned(t *testing.T) {
	repo := newFakeRepository()
	segmentID := seedAssignableSegment(repo, SegmentStateEstimated)
	trucks := map[int64]truck.TruckResponse{
		1: {ID: 1, WeightCapacityKg: 20000, VolumeCapacityM3: 60, Available: true},
	}
	service := newTestService(repo, &fakeRoutingProvider{}, trucks, requests.ContainerInfo{WeightKg: 12000, VolumeM3: 45})

	result, err := service.AssignTruckService(context.Background(), AssignTruckDTO{
		SegmentID: segmentID,
		TruckID:   1,
		Payload:   get_token.PayloadDTO{Token: "token"},
	})
	if err != nil {
		t.Fatalf("AssignTruckService: %v", err)
	}

	if result.State != SegmentStateAssigned {
		t.Fatalf("expected ASSIGNED, got %s", result.State)
	}
	if result.TruckID == nil || *result.TruckID != 1 {
		t.Fatalf("expected truck 1 on the segment")
	}
}

func TestAssignTruckCapacityInsufficientLeavesSegmentUntouched(t *testing.T) {
	repo := newFakeRepository()
	segmentID := seedAssignableSegment(repo, SegmentStateEstimated)
	trucks := map[int64]truck.TruckResponse{
		1: {ID: 1, WeightCapacityKg: 8000, VolumeCapacityM3: 30, Available: true},
	}
	service := newTestService(repo, &fakeRoutingProvider{}, trucks, requests.ContainerInfo{WeightKg: 12000, VolumeM3: 45})

	_, err := service.AssignTruckService(context.Background(), AssignTruckDTO{
		SegmentID: segmentID,
		TruckID:   1,
		Payload:   get_token.PayloadDTO{Token: "token"},
	})
	if err == nil {
		t.Fatalf("expected capacity rejection")
	}
	var domainErr *apperr.Error
	if !errors.As(err, &domainErr) || domainErr.Kind != apperr.KindCapacity {
		t.Fatalf("expected capacity insufficient, got %v", err)
	}

	segment := repo.segments[segmentID]
	if segment.State != string(SegmentStateEstimated) {
		t.Fatalf("failed assignment must not change state, got %s", segment.State)
	}
	if segment.TruckID.Valid {
		t.Fatalf("failed assignment must not set a truck")
	}
}

func TestAssignTruckReassignmentOverwrites(t *testing.T) {
	repo := newFakeRepository()
	segmentID := seedAssignableSegment(repo, SegmentStateAssigned)
	previous := repo.segments[segmentID]
	previous.TruckID = sql.NullInt64{Int64: 1, Valid: true}
	repo.segments[segmentID] = previous

	trucks := map[int64]truck.TruckResponse{
		1: {ID: 1, WeightCapacityKg: 20000, VolumeCapacityM3: 60, Available: true},
		2: {ID: 2, WeightCapacityKg: 25000, VolumeCapacityM3: 70, Available: true},
	}
	service := newTestService(repo, &fakeRoutingProvider{}, trucks, requests.ContainerInfo{WeightKg: 12000, VolumeM3: 45})

	result, err := service.AssignTruckService(context.Background(), AssignTruckDTO{
		SegmentID: segmentID,
		TruckID:   2,
		Payload:   get_token.PayloadDTO{Token: "token"},
	})
	if err != nil {
		t.Fatalf("AssignTruckService: %v", err)
	}
	if result.TruckID == nil || *result.TruckID != 2 {
		t.Fatalf("reassignment must overwrite the previous truck")
	}
	if result.State != SegmentStateAssigned {
		t.Fatalf("reassigned segment stays ASSIGNED, got %s", result.State)
	}
}

func TestAssignTruckRejectsUnavailableTruck(t *testing.T) {
	repo := newFakeRepository()
	segmentID := seedAssignableSegment(repo, SegmentStateEstimated)
	trucks := map[int64]truck.TruckResponse{
		1: {ID: 1, WeightCapacityKg: 20000, VolumeCapacityM3: 60, Available: false},
	}
	service := newTestService(repo, &fakeRoutingProvider{}, trucks, requests.ContainerInfo{WeightKg: 12000, VolumeM3: 45})

	_, err := service.AssignTruckService(context.Background(), AssignTruckDTO{
		SegmentID: segmentID,
		TruckID:   1,
		Payload:   get_token.PayloadDTO{Token: "token"},
	})
	if err == nil {
		t.Fatalf("expected unavailable truck to be rejected")
	}
}

func TestAssignTruckRejectsFinishedSegment(t *testing.T) {
	repo := newFakeRepository()
	segmentID := seedAssignableSegment(repo, SegmentStateFinished)
	trucks := map[int64]truck.TruckResponse{
		1: {ID: 1, WeightCapacityKg: 20000, VolumeCapacityM3: 60, Available: true},
	}
	service := newTestService(repo, &fakeRoutingProvider{}, trucks, requests.ContainerInfo{WeightKg: 12000, VolumeM3: 45})

	_, err := service.AssignTruckService(context.Background(), AssignTruckDTO{
		SegmentID: segmentID,
		TruckID:   1,
		Payload:   get_token.PayloadDTO{Token: "token"},
	})
	if err == nil {
		t.Fatalf("expected transition from FINISHED to be rejected")
	}
}

func TestStartSegmentRequiresAssignedState(t *testing.T) {
	repo := newFakeRepository()
	segmentID := seedAssignableSegment(repo, SegmentStateEstimated)
	service := newTestService(repo, &fakeRoutingProvider{}, nil, requests.ContainerInfo{})

	if _, err := service.StartSegmentService(context.Background(), segmentID); err == nil {
		t.Fatalf("expected ESTIMATED -> IN_PROGRESS to be rejected")
	}
}

func TestStartAndFinishSegment(t *testing.T) {
	repo := newFakeRepository()
	segmentID := seedAssignableSegment(repo, SegmentStateAssigned)
	service := newTestService(repo, &fakeRoutingProvider{}, nil, requests.ContainerInfo{})

	started, err := service.StartSegmentService(context.Background(), segmentID)
	if err != nil {
		t.Fatalf("StartSegmentService: %v", err)
	}
	if started.State != SegmentStateInProgress || started.StartedAt == nil {
		t.Fatalf("expected IN_PROGRESS with start timestamp")
	}

	finished, err := service.FinishSegmentService(context.Background(), segmentID)
	if err != nil {
		t.Fatalf("FinishSegmentService: %v", err)
	}
	if finished.State != SegmentStateFinished || finished.FinishedAt == nil {
		t.Fatalf("expected FINISHED with finish timestamp")
	}
}
