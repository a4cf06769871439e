package cost

import (
	"time"

	"github.com/shopspring/decimal"
)

// SegmentCost is one leg's share of a breakdown, decomposed into the four
// cost components.
type SegmentCost struct {
	SegmentID      int64   `json:"segment_id"`
	Position       int32   `json:"position"`
	DistanceKm     float64 `json:"distance_km"`
	ManagementCost float64 `json:"management_cost"`
	VehicleCost    float64 `json:"vehicle_cost"`
	FuelCost       float64 `json:"fuel_cost"`
	DwellCost      float64 `json:"dwell_cost"`
	Total          float64 `json:"total"`
}

// CostBreakdown is the single canonical shape for both projections; the
// Estimate flag is the only structural difference between them.
type CostBreakdown struct {
	RouteID            int64         `json:"route_id"`
	Estimate           bool          `json:"estimate"`
	ManagementTotal    float64       `json:"management_total"`
	VehicleTotal       float64       `json:"vehicle_total"`
	FuelTotal          float64       `json:"fuel_total"`
	DwellTotal         float64       `json:"dwell_total"`
	GrandTotal         float64       `json:"grand_total"`
	TotalDistanceKm    float64       `json:"total_distance_km"`
	DurationHours      float64       `json:"duration_hours"`
	EligibleTruckCount int           `json:"eligible_truck_count,omitempty"`
	Segments           []SegmentCost `json:"segments"`
	GeneratedAt        time.Time     `json:"generated_at"`
}

type ReportResponse struct {
	RouteID int64  `json:"route_id"`
	URL     string `json:"url"`
}

// round2 rounds half-up at the cent level; float accumulation alone
// drifts on long routes.
func round2(value float64) float64 {
	rounded, _ := decimal.NewFromFloat(value).Round(2).Float64()
	return rounded
}
