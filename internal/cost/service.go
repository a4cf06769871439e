package cost

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	db "logistics/db/sqlc"
	"logistics/infra/apperr"
	"logistics/internal/get_token"
	"logistics/internal/truck"
	"logistics/pkg/requests"

	"github.com/google/uuid"
	"github.com/sqlc-dev/pqtype"
	"go.uber.org/zap"
)

type ContainerInfoProvider interface {
	GetContainerByRequestID(ctx context.Context, bearerToken string, requestID int64) (requests.ContainerInfo, error)
}

type ReportUploader interface {
	UploadFile(fileBytes []byte, fileName, contentType string) (string, error)
}

type InterfaceService interface {
	EstimateCostService(ctx context.Context, routeID int64, payload get_token.PayloadDTO) (CostBreakdown, error)
	FinalizeCostService(ctx context.Context, routeID int64) (CostBreakdown, error)
	ExportReportService(ctx context.Context, routeID int64) (ReportResponse, error)
}

type Service struct {
	InterfaceService InterfaceRepository
	TruckService     truck.InterfaceService
	RequestsClient   ContainerInfoProvider
	Uploader         ReportUploader
	Logger           *zap.Logger
}

func NewCostsService(
	InterfaceService InterfaceRepository,
	truckService truck.InterfaceService,
	requestsClient ContainerInfoProvider,
	uploader ReportUploader,
	logger *zap.Logger,
) *Service {
	return &Service{
		InterfaceService: InterfaceService,
		TruckService:     truckService,
		RequestsClient:   requestsClient,
		Uploader:         uploader,
		Logger:           logger,
	}
}

// EstimateCostService projects the route cost before any truck is
// assigned, using fleet averages over every capacity-eligible truck in
// the pool, available or not.
func (s *Service) EstimateCostService(ctx context.Context, routeID int64, payload get_token.PayloadDTO) (CostBreakdown, error) {
	found, segments, band, err := s.loadRoute(ctx, routeID)
	if err != nil {
		return CostBreakdown{}, err
	}

	container, err := s.RequestsClient.GetContainerByRequestID(ctx, payload.Token, found.RequestID)
	if err != nil {
		return CostBreakdown{}, apperr.Upstream("container information unavailable", err)
	}

	eligible, err := s.TruckService.FindByCapacitiesService(ctx, container.WeightKg, container.VolumeM3, false)
	if err != nil {
		return CostBreakdown{}, err
	}
	if len(eligible) == 0 {
		return CostBreakdown{}, apperr.Precondition("no eligible vehicles for container")
	}

	var sumCostPerKm, sumConsumption float64
	for _, candidate := range eligible {
		sumCostPerKm += candidate.CostPerKm
		sumConsumption += candidate.FuelConsumption
	}
	meanCostPerKm := round2(sumCostPerKm / float64(len(eligible)))
	meanConsumption := round2(sumConsumption / float64(len(eligible)))

	breakdown := CostBreakdown{
		RouteID:            found.ID,
		Estimate:           true,
		EligibleTruckCount: len(eligible),
		GeneratedAt:        time.Now().UTC(),
	}

	var totalDurationSeconds int64
	segmentArgs := make([]db.UpdateSegmentApproximateCostParams, 0, len(segments))
	for _, segment := range segments {
		segmentCost := SegmentCost{
			SegmentID:      segment.ID,
			Position:       segment.Position,
			DistanceKm:     segment.DistanceKm,
			ManagementCost: round2(band.ManagementFee),
			VehicleCost:    round2(segment.DistanceKm * meanCostPerKm),
			FuelCost:       round2(segment.DistanceKm * meanConsumption / 100 * band.FuelPriceLiter),
			DwellCost:      round2(segment.DwellCost),
		}
		segmentCost.Total = round2(segmentCost.ManagementCost + segmentCost.VehicleCost + segmentCost.FuelCost + segmentCost.DwellCost)

		segmentArgs = append(segmentArgs, db.UpdateSegmentApproximateCostParams{
			ID:              segment.ID,
			ApproximateCost: sql.NullFloat64{Float64: segmentCost.Total, Valid: true},
		})

		breakdown.Segments = append(breakdown.Segments, segmentCost)
		breakdown.ManagementTotal += segmentCost.ManagementCost
		breakdown.VehicleTotal += segmentCost.VehicleCost
		breakdown.FuelTotal += segmentCost.FuelCost
		breakdown.DwellTotal += segmentCost.DwellCost
		breakdown.GrandTotal += segmentCost.Total
		breakdown.TotalDistanceKm += segment.DistanceKm
		totalDurationSeconds += segment.DurationSeconds
	}
	breakdown.roundTotals()
	breakdown.DurationHours = round2(float64(totalDurationSeconds) / 3600)

	if err := s.persistEstimate(ctx, found, breakdown, segmentArgs); err != nil {
		return CostBreakdown{}, err
	}

	return breakdown, nil
}

// FinalizeCostService prices each segment with the truck actually
// assigned to it. Segments without a truck keep their management and
// dwell components only. Duration is the recorded elapsed time per
// segment, not the routing engine's projection.
func (s *Service) FinalizeCostService(ctx context.Context, routeID int64) (CostBreakdown, error) {
	found, segments, band, err := s.loadRoute(ctx, routeID)
	if err != nil {
		return CostBreakdown{}, err
	}

	breakdown := CostBreakdown{
		RouteID:     found.ID,
		Estimate:    false,
		GeneratedAt: time.Now().UTC(),
	}

	var totalElapsedSeconds int64
	segmentArgs := make([]db.UpdateSegmentRealCostParams, 0, len(segments))
	for _, segment := range segments {
		segmentCost := SegmentCost{
			SegmentID:      segment.ID,
			Position:       segment.Position,
			DistanceKm:     segment.DistanceKm,
			ManagementCost: round2(band.ManagementFee),
			DwellCost:      round2(segment.DwellCost),
		}

		if segment.TruckID.Valid {
			assigned, err := s.InterfaceService.GetTruckByID(ctx, segment.TruckID.Int64)
			if errors.Is(err, sql.ErrNoRows) {
				return CostBreakdown{}, apperr.NotFound(fmt.Sprintf("truck %d not found", segment.TruckID.Int64))
			}
			if err != nil {
				return CostBreakdown{}, err
			}
			segmentCost.VehicleCost = round2(segment.DistanceKm * assigned.CostPerKm)
			segmentCost.FuelCost = round2(segment.DistanceKm * assigned.FuelConsumption / 100 * band.FuelPriceLiter)
		}

		segmentCost.Total = round2(segmentCost.ManagementCost + segmentCost.VehicleCost + segmentCost.FuelCost + segmentCost.DwellCost)

		segmentArgs = append(segmentArgs, db.UpdateSegmentRealCostParams{
			ID:       segment.ID,
			RealCost: sql.NullFloat64{Float64: segmentCost.Total, Valid: true},
		})

		breakdown.Segments = append(breakdown.Segments, segmentCost)
		breakdown.ManagementTotal += segmentCost.ManagementCost
		breakdown.VehicleTotal += segmentCost.VehicleCost
		breakdown.FuelTotal += segmentCost.FuelCost
		breakdown.DwellTotal += segmentCost.DwellCost
		breakdown.GrandTotal += segmentCost.Total
		breakdown.TotalDistanceKm += segment.DistanceKm
		totalElapsedSeconds += elapsedSeconds(segment)
	}
	breakdown.roundTotals()
	breakdown.DurationHours = round2(float64(totalElapsedSeconds) / 3600)

	if err := s.persistFinal(ctx, found, breakdown, segmentArgs); err != nil {
		return CostBreakdown{}, err
	}

	return breakdown, nil
}

func (s *Service) ExportReportService(ctx context.Context, routeID int64) (ReportResponse, error) {
	found, err := s.InterfaceService.GetRouteByID(ctx, routeID)
	if errors.Is(err, sql.ErrNoRows) {
		return ReportResponse{}, apperr.NotFound("route not found")
	}
	if err != nil {
		return ReportResponse{}, err
	}

	if !found.FinalBreakdown.Valid {
		return ReportResponse{}, apperr.Precondition("route cost has not been finalized")
	}

	fileName := fmt.Sprintf("reports/route-%d-%s.json", found.ID, uuid.New().String())
	url, err := s.Uploader.UploadFile(found.FinalBreakdown.RawMessage, fileName, "application/json")
	if err != nil {
		return ReportResponse{}, apperr.Upstream("report upload failed", err)
	}

	s.Logger.Info("cost report exported",
		zap.Int64("route_id", found.ID),
		zap.String("file", fileName),
	)

	return ReportResponse{RouteID: found.ID, URL: url}, nil
}

func (s *Service) loadRoute(ctx context.Context, routeID int64) (db.Route, []db.Segment, db.Tariff, error) {
	found, err := s.InterfaceService.GetRouteByID(ctx, routeID)
	if errors.Is(err, sql.ErrNoRows) {
		return db.Route{}, nil, db.Tariff{}, apperr.NotFound("route not found")
	}
	if err != nil {
		return db.Route{}, nil, db.Tariff{}, err
	}

	segments, err := s.InterfaceService.ListSegmentsByRoute(ctx, routeID)
	if err != nil {
		return db.Route{}, nil, db.Tariff{}, err
	}
	if len(segments) == 0 {
		return db.Route{}, nil, db.Tariff{}, apperr.Precondition("route has no segments assigned")
	}

	band, err := s.InterfaceService.GetTariffByID(ctx, found.TariffID)
	if errors.Is(err, sql.ErrNoRows) {
		return db.Route{}, nil, db.Tariff{}, apperr.Precondition("route tariff no longer exists")
	}
	if err != nil {
		return db.Route{}, nil, db.Tariff{}, err
	}

	return found, segments, band, nil
}

// persistEstimate commits the segment costs and the route's estimate
// cache atomically. Version check serializes concurrent recalculation on
// the same route; a stale write surfaces as a conflict with no segment
// cost written.
func (s *Service) persistEstimate(ctx context.Context, found db.Route, breakdown CostBreakdown, segmentArgs []db.UpdateSegmentApproximateCostParams) error {
	payload, err := json.Marshal(breakdown)
	if err != nil {
		return err
	}

	_, err = s.InterfaceService.PersistEstimate(ctx, db.UpdateRouteEstimateParams{
		ID:                 found.ID,
		EstimatedCost:      breakdown.GrandTotal,
		EstimatedBreakdown: pqtype.NullRawMessage{RawMessage: payload, Valid: true},
		Version:            found.Version,
	}, segmentArgs)
	if errors.Is(err, sql.ErrNoRows) {
		return apperr.Conflict("route was modified concurrently, retry the estimate")
	}
	return err
}

func (s *Service) persistFinal(ctx context.Context, found db.Route, breakdown CostBreakdown, segmentArgs []db.UpdateSegmentRealCostParams) error {
	payload, err := json.Marshal(breakdown)
	if err != nil {
		return err
	}

	_, err = s.InterfaceService.PersistFinal(ctx, db.UpdateRouteFinalParams{
		ID:             found.ID,
		FinalCost:      breakdown.GrandTotal,
		FinalBreakdown: pqtype.NullRawMessage{RawMessage: payload, Valid: true},
		Version:        found.Version,
	}, segmentArgs)
	if errors.Is(err, sql.ErrNoRows) {
		return apperr.Conflict("route was modified concurrently, retry the finalization")
	}
	return err
}

func (b *CostBreakdown) roundTotals() {
	b.ManagementTotal = round2(b.ManagementTotal)
	b.VehicleTotal = round2(b.VehicleTotal)
	b.FuelTotal = round2(b.FuelTotal)
	b.DwellTotal = round2(b.DwellTotal)
	b.GrandTotal = round2(b.GrandTotal)
	b.TotalDistanceKm = round2(b.TotalDistanceKm)
}

func elapsedSeconds(segment db.Segment) int64 {
	if !segment.StartedAt.Valid || !segment.FinishedAt.Valid {
		return 0
	}
	return int64(segment.FinishedAt.Time.Sub(segment.StartedAt.Time).Seconds())
}
