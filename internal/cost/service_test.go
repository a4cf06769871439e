package cost

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	db "logistics/db/sqlc"
	"logistics/infra/apperr"
	"logistics/internal/get_token"
	"logistics/internal/truck"
	"logistics/pkg/requests"

	"github.com/sqlc-dev/pqtype"
	"go.uber.org/zap"
)

type fakeRepository struct {
	route            db.Route
	routeMissing     bool
	segments         []db.Segment
	tariff           db.Tariff
	trucks           map[int64]db.Truck
	approximateCosts map[int64]float64
	realCosts        map[int64]float64
	conflictOnWrite  bool
}

func (f *fakeRepository) GetRouteByID(context.Context, int64) (db.Route, error) {
	if f.routeMissing {
		return db.Route{}, sql.ErrNoRows
	}
	return f.route, nil
}

func (f *fakeRepository) GetTariffByID(context.Context, int64) (db.Tariff, error) {
	return f.tariff, nil
}

func (f *fakeRepository) GetTruckByID(_ context.Context, id int64) (db.Truck, error) {
	found, ok := f.trucks[id]
	if !ok {
		return db.Truck{}, sql.ErrNoRows
	}
	return found, nil
}

func (f *fakeRepository) ListSegmentsByRoute(context.Context, int64) ([]db.Segment, error) {
	return f.segments, nil
}

func (f *fakeRepository) PersistEstimate(_ context.Context, routeArg db.UpdateRouteEstimateParams, segmentArgs []db.UpdateSegmentApproximateCostParams) (db.Route, error) {
	if f.conflictOnWrite || routeArg.Version != f.route.Version {
		return db.Route{}, sql.ErrNoRows
	}
	f.route.EstimatedCost = sql.NullFloat64{Float64: routeArg.EstimatedCost, Valid: true}
	f.route.EstimatedBreakdown = routeArg.EstimatedBreakdown
	if f.approximateCosts == nil {
		f.approximateCosts = map[int64]float64{}
	}
	for _, arg := range segmentArgs {
		f.approximateCosts[arg.ID] = arg.ApproximateCost.Float64
	}
	return f.route, nil
}

func (f *fakeRepository) PersistFinal(_ context.Context, routeArg db.UpdateRouteFinalParams, segmentArgs []db.UpdateSegmentRealCostParams) (db.Route, error) {
	if f.conflictOnWrite || routeArg.Version != f.route.Version {
		return db.Route{}, sql.ErrNoRows
	}
	f.route.FinalCost = sql.NullFloat64{Float64: routeArg.FinalCost, Valid: true}
	f.route.FinalBreakdown = routeArg.FinalBreakdown
	if f.realCosts == nil {
		f.realCosts = map[int64]float64{}
	}
	for _, arg := range segmentArgs {
		f.realCosts[arg.ID] = arg.RealCost.Float64
	}
	return f.route, nil
}

type fakeTruckService struct {
	eligible []truck.TruckResponse
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

func (f *fakeTruckService) GetTruckService(context.Context, int64) (truck.TruckResponse, error) {
	return truck.TruckResponse{}, nil
}

func (f *fakeTruckService) GetTrucksService(context.Context) ([]truck.TruckResponse, error) {
	return nil, nil
}

func (f *fakeTruckService) FindByCapacitiesService(context.Context, float64, float64, bool) ([]truck.TruckResponse, error) {
	return f.eligible, nil
}

type fakeContainerProvider struct {
	err error
}

func (f *fakeContainerProvider) GetContainerByRequestID(context.Context, string, int64) (requests.ContainerInfo, error) {
	return requests.ContainerInfo{WeightKg: 12000, VolumeM3: 45}, f.err
}

type fakeUploader struct {
	uploadedName string
	uploadedBody []byte
}

func (f *fakeUploader) UploadFile(fileBytes []byte, fileName, _ string) (string, error) {
	f.uploadedName = fileName
	f.uploadedBody = fileBytes
	return "https://bucket.s3.amazonaws.com/" + fileName, nil
}

func newTestService(repo *fakeRepository, eligible []truck.TruckResponse) (*Service, *fakeUploader) {
	uploader := &fakeUploader{}
	service := NewCostsService(
		repo,
		&fakeTruckService{eligible: eligible},
		&fakeContainerProvider{},
		uploader,
		zap.NewNop(),
	)
	return service, uploader
}

func baseRepository() *fakeRepository {
	return &fakeRepository{
		route: db.Route{ID: 1, RequestID: 7, TariffID: 2, Version: 1},
		tariff: db.Tariff{
			ID:             2,
			VolumeMin:      40,
			VolumeMax:      70,
			ManagementFee:  400,
			FuelPriceLiter: 5.5,
		},
		segments: []db.Segment{
			{ID: 10, RouteID: 1, Position: 0, DistanceKm: 100, DurationSeconds: 5400, DwellCost: 0},
			{ID: 11, RouteID: 1, Position: 1, DistanceKm: 50, DurationSeconds: 2700, DwellCost: 240},
		},
	}
}

func twoTruckPool() []truck.TruckResponse {
	return []truck.TruckResponse{
		{ID: 1, CostPerKm: 1.5, FuelConsumption: 30},
		{ID: 2, CostPerKm: 2.5, FuelConsumption: 40},
	}
}

func TestEstimateUsesFleetAverages(t *testing.T) {
	repo := baseRepository()
	service, _ := newTestService(repo, twoTruckPool())

	breakdown, err := service.EstimateCostService(context.Background(), 1, get_token.PayloadDTO{Token: "token"})
	if err != nil {
		t.Fatalf("EstimateCostService: %v", err)
	}

	if !breakdown.Estimate {
		t.Fatalf("estimate breakdown must be flagged as estimate")
	}
	if breakdown.EligibleTruckCount != 2 {
		t.Fatalf("expected 2 eligible trucks, got %d", breakdown.EligibleTruckCount)
	}

	// Pool means: cost 2.00 per km, consumption 35 L per 100 km.
	first := breakdown.Segments[0]
	if first.VehicleCost != 200 {
		t.Fatalf("segment 0 vehicle cost = %.2f, want 200.00", first.VehicleCost)
	}
	if first.FuelCost != 192.5 {
		t.Fatalf("segment 0 fuel cost = %.2f, want 192.50", first.FuelCost)
	}
	if first.ManagementCost != 400 {
		t.Fatalf("segment 0 management cost = %.2f, want 400.00", first.ManagementCost)
	}
	if first.Total != 792.5 {
		t.Fatalf("segment 0 total = %.2f, want 792.50", first.Total)
	}

	second := breakdown.Segments[1]
	if second.VehicleCost != 100 || second.FuelCost != 96.25 || second.DwellCost != 240 {
		t.Fatalf("segment 1 components = %.2f/%.2f/%.2f, want 100.00/96.25/240.00",
			second.VehicleCost, second.FuelCost, second.DwellCost)
	}
	if second.Total != 836.25 {
		t.Fatalf("segment 1 total = %.2f, want 836.25", second.Total)
	}

	if breakdown.GrandTotal != 1628.75 {
		t.Fatalf("grand total = %.2f, want 1628.75", breakdown.GrandTotal)
	}
	componentSum := breakdown.ManagementTotal + breakdown.VehicleTotal + breakdown.FuelTotal + breakdown.DwellTotal
	if componentSum != breakdown.GrandTotal {
		t.Fatalf("component totals %.2f do not add up to grand total %.2f", componentSum, breakdown.GrandTotal)
	}
	if breakdown.DurationHours != 2.25 {
		t.Fatalf("duration hours = %.2f, want 2.25", breakdown.DurationHours)
	}
}

func TestEstimateSingleTruckSingleSegment(t *testing.T) {
	repo := &fakeRepository{
		route: db.Route{ID: 1, RequestID: 7, TariffID: 2, Version: 1},
		tariff: db.Tariff{
			ID:             2,
			VolumeMin:      0,
			VolumeMax:      20,
			ManagementFee:  400,
			FuelPriceLiter: 250,
		},
		segments: []db.Segment{
			{ID: 10, RouteID: 1, Position: 0, DistanceKm: 100},
		},
	}
	service, _ := newTestService(repo, []truck.TruckResponse{
		{ID: 1, CostPerKm: 150, FuelConsumption: 18.5},
	})

	breakdown, err := service.EstimateCostService(context.Background(), 1, get_token.PayloadDTO{Token: "token"})
	if err != nil {
		t.Fatalf("EstimateCostService: %v", err)
	}

	// 400 + 100*150 + (100*0.185)*250
	if breakdown.GrandTotal != 20025 {
		t.Fatalf("grand total = %.2f, want 20025.00", breakdown.GrandTotal)
	}
	if repo.approximateCosts[10] != 20025 {
		t.Fatalf("persisted approximate cost = %.2f, want 20025.00", repo.approximateCosts[10])
	}
}

func TestEstimateIsRepeatable(t *testing.T) {
	repo := baseRepository()
	service, _ := newTestService(repo, twoTruckPool())

	first, err := service.EstimateCostService(context.Background(), 1, get_token.PayloadDTO{Token: "token"})
	if err != nil {
		t.Fatalf("first estimate: %v", err)
	}
	second, err := service.EstimateCostService(context.Background(), 1, get_token.PayloadDTO{Token: "token"})
	if err != nil {
		t.Fatalf("second estimate: %v", err)
	}
	if first.GrandTotal != second.GrandTotal {
		t.Fatalf("repeated estimate diverged: %.2f vs %.2f", first.GrandTotal, second.GrandTotal)
	}
}

func TestEstimateNoEligibleTrucks(t *testing.T) {
	repo := baseRepository()
	service, _ := newTestService(repo, nil)

	_, err := service.EstimateCostService(context.Background(), 1, get_token.PayloadDTO{Token: "token"})
	var domainErr *apperr.Error
	if !errors.As(err, &domainErr) || domainErr.Kind != apperr.KindPrecondition {
		t.Fatalf("expected precondition violation, got %v", err)
	}
}

func TestEstimateNoSegments(t *testing.T) {
	repo := baseRepository()
	repo.segments = nil
	service, _ := newTestService(repo, twoTruckPool())

	_, err := service.EstimateCostService(context.Background(), 1, get_token.PayloadDTO{Token: "token"})
	if err == nil {
		t.Fatalf("expected error for a route without segments")
	}
}

func TestEstimateRouteNotFound(t *testing.T) {
	repo := baseRepository()
	repo.routeMissing = true
	service, _ := newTestService(repo, twoTruckPool())

	_, err := service.EstimateCostService(context.Background(), 99, get_token.PayloadDTO{Token: "token"})
	var domainErr *apperr.Error
	if !errors.As(err, &domainErr) || domainErr.Kind != apperr.KindNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestEstimateContainerServiceDown(t *testing.T) {
	repo := baseRepository()
	uploader := &fakeUploader{}
	service := NewCostsService(
		repo,
		&fakeTruckService{eligible: twoTruckPool()},
		&fakeContainerProvider{err: errors.New("connection refused")},
		uploader,
		zap.NewNop(),
	)

	_, err := service.EstimateCostService(context.Background(), 1, get_token.PayloadDTO{Token: "token"})
	var domainErr *apperr.Error
	if !errors.As(err, &domainErr) || domainErr.Kind != apperr.KindUpstream {
		t.Fatalf("expected upstream unavailable, got %v", err)
	}
}

func TestEstimateVersionConflict(t *testing.T) {
	repo := baseRepository()
	repo.conflictOnWrite = true
	service, _ := newTestService(repo, twoTruckPool())

	_, err := service.EstimateCostService(context.Background(), 1, get_token.PayloadDTO{Token: "token"})
	var domainErr *apperr.Error
	if !errors.As(err, &domainErr) || domainErr.Kind != apperr.KindConflict {
		t.Fatalf("expected conflict, got %v", err)
	}

	// The losing recalculation must leave no partial state behind.
	if len(repo.approximateCosts) != 0 {
		t.Fatalf("conflicting estimate persisted segment costs: %v", repo.approximateCosts)
	}
	if repo.route.EstimatedCost.Valid {
		t.Fatalf("conflicting estimate persisted the route cache")
	}
}

func TestFinalizeVersionConflict(t *testing.T) {
	repo := baseRepository()
	repo.conflictOnWrite = true
	service, _ := newTestService(repo, nil)

	_, err := service.FinalizeCostService(context.Background(), 1)
	var domainErr *apperr.Error
	if !errors.As(err, &domainErr) || domainErr.Kind != apperr.KindConflict {
		t.Fatalf("expected conflict, got %v", err)
	}
	if len(repo.realCosts) != 0 {
		t.Fatalf("conflicting finalization persisted segment costs: %v", repo.realCosts)
	}
}

func TestFinalizePricesAssignedTrucks(t *testing.T) {
	started := time.Date(2026, 8, 1, 8, 0, 0, 0, time.UTC)
	repo := baseRepository()
	repo.trucks = map[int64]db.Truck{
		3: {ID: 3, CostPerKm: 2.4, FuelConsumption: 40},
	}
	repo.segments = []db.Segment{
		{
			ID: 10, RouteID: 1, Position: 0, DistanceKm: 100, DwellCost: 0,
			TruckID:    sql.NullInt64{Int64: 3, Valid: true},
			StartedAt:  sql.NullTime{Time: started, Valid: true},
			FinishedAt: sql.NullTime{Time: started.Add(90 * time.Minute), Valid: true},
		},
		{ID: 11, RouteID: 1, Position: 1, DistanceKm: 50, DwellCost: 240},
	}
	service, _ := newTestService(repo, nil)

	breakdown, err := service.FinalizeCostService(context.Background(), 1)
	if err != nil {
		t.Fatalf("FinalizeCostService: %v", err)
	}

	if breakdown.Estimate {
		t.Fatalf("final breakdown must not be flagged as estimate")
	}

	first := breakdown.Segments[0]
	if first.VehicleCost != 240 {
		t.Fatalf("segment 0 vehicle cost = %.2f, want 240.00", first.VehicleCost)
	}
	if first.FuelCost != 220 {
		t.Fatalf("segment 0 fuel cost = %.2f, want 220.00", first.FuelCost)
	}

	// Segment without a truck only carries management and dwell.
	second := breakdown.Segments[1]
	if second.VehicleCost != 0 || second.FuelCost != 0 {
		t.Fatalf("truckless segment must have no vehicle or fuel cost")
	}
	if second.Total != 640 {
		t.Fatalf("truckless segment total = %.2f, want 640.00", second.Total)
	}

	if breakdown.DurationHours != 1.5 {
		t.Fatalf("duration hours = %.2f, want 1.5 from recorded timestamps", breakdown.DurationHours)
	}

	if repo.realCosts[10] != first.Total || repo.realCosts[11] != second.Total {
		t.Fatalf("real costs must be persisted per segment")
	}
}

func TestExportReportRequiresFinalizedRoute(t *testing.T) {
	repo := baseRepository()
	service, _ := newTestService(repo, nil)

	_, err := service.ExportReportService(context.Background(), 1)
	var domainErr *apperr.Error
	if !errors.As(err, &domainErr) || domainErr.Kind != apperr.KindPrecondition {
		t.Fatalf("expected precondition violation, got %v", err)
	}
}

func TestExportReportUploadsFinalBreakdown(t *testing.T) {
	repo := baseRepository()
	repo.route.FinalBreakdown = pqtype.NullRawMessage{RawMessage: []byte(`{"route_id":1}`), Valid: true}
	service, uploader := newTestService(repo, nil)

	report, err := service.ExportReportService(context.Background(), 1)
	if err != nil {
		t.Fatalf("ExportReportService: %v", err)
	}

	if report.URL == "" {
		t.Fatalf("expected a report URL")
	}
	if string(uploader.uploadedBody) != `{"route_id":1}` {
		t.Fatalf("uploaded body does not match the stored breakdown")
	}
	if uploader.uploadedName == "" {
		t.Fatalf("expected a generated object name")
	}
}
