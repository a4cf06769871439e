package route

import (
	"database/sql"

	"logistics/internal/warehouse"
)

// SegmentType is determined by the leg's position in the chain, never by
// the caller.
type SegmentType string

const (
	SegmentTypeOriginToDestination SegmentType = "ORIGIN_TO_DESTINATION"
	SegmentTypeOriginToDepot       SegmentType = "ORIGIN_TO_DEPOT"
	SegmentTypeDepotToDepot        SegmentType = "DEPOT_TO_DEPOT"
	SegmentTypeDepotToDestination  SegmentType = "DEPOT_TO_DESTINATION"
)

type Point struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// SegmentPlan is one leg of the chain before distance resolution and
// persistence.
type SegmentPlan struct {
	Position               int32
	Type                   SegmentType
	Origin                 Point
	Destination            Point
	OriginWarehouseID      sql.NullInt64
	DestinationWarehouseID sql.NullInt64
	DwellCost              float64
}

// BuildSegmentChain materializes the ordered legs of a route. With no
// waypoints the chain is a single origin->destination leg; otherwise
// origin->w[0], w[i]->w[i+1] and w[last]->destination terminate the chain.
// A leg departing from a warehouse carries that warehouse's dwell cost
// (dwell cost per day times planned dwell days).
func BuildSegmentChain(origin, destination Point, waypoints []warehouse.WarehouseResponse) []SegmentPlan {
	if len(waypoints) == 0 {
		return []SegmentPlan{{
			Position:    0,
			Type:        SegmentTypeOriginToDestination,
			Origin:      origin,
			Destination: destination,
		}}
	}

	plans := make([]SegmentPlan, 0, len(waypoints)+1)

	first := waypoints[0]
	plans = append(plans, SegmentPlan{
		Position:               0,
		Type:                   SegmentTypeOriginToDepot,
		Origin:                 origin,
		Destination:            Point{Latitude: first.Latitude, Longitude: first.Longitude},
		DestinationWarehouseID: sql.NullInt64{Int64: first.ID, Valid: true},
	})

	for i := 0; i < len(waypoints)-1; i++ {
		from := waypoints[i]
		to := waypoints[i+1]
		plans = append(plans, SegmentPlan{
			Position:               int32(i + 1),
			Type:                   SegmentTypeDepotToDepot,
			Origin:                 Point{Latitude: from.Latitude, Longitude: from.Longitude},
			Destination:            Point{Latitude: to.Latitude, Longitude: to.Longitude},
			OriginWarehouseID:      sql.NullInt64{Int64: from.ID, Valid: true},
			DestinationWarehouseID: sql.NullInt64{Int64: to.ID, Valid: true},
			DwellCost:              from.DwellCostDay * float64(from.DwellDays),
		})
	}

	last := waypoints[len(waypoints)-1]
	plans = append(plans, SegmentPlan{
		Position:          int32(len(waypoints)),
		Type:              SegmentTypeDepotToDestination,
		Origin:            Point{Latitude: last.Latitude, Longitude: last.Longitude},
		Destination:       destination,
		OriginWarehouseID: sql.NullInt64{Int64: last.ID, Valid: true},
		DwellCost:         last.DwellCostDay * float64(last.DwellDays),
	})

	return plans
}
