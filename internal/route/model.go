package route

import (
	"time"

	db "logistics/db/sqlc"
	"logistics/internal/get_token"
)

type CreateRouteRequest struct {
	RequestID       int64   `json:"request_id" validate:"required"`
	Origin          Point   `json:"origin"`
	Destination     Point   `json:"destination"`
	WarehouseIDs    []int64 `json:"warehouse_ids"`
	ContainerVolume float64 `json:"container_volume" validate:"gt=0"`
}

type CreateRouteDTO struct {
	CreateRouteRequest CreateRouteRequest
	Payload            get_token.PayloadDTO
}

type AssignTruckRequest struct {
	TruckID int64 `json:"truck_id" validate:"required"`
}

type AssignTruckDTO struct {
	SegmentID int64
	TruckID   int64
	Payload   get_token.PayloadDTO
}

type SegmentResponse struct {
	ID                     int64        `json:"id"`
	RouteID                int64        `json:"route_id"`
	Position               int32        `json:"position"`
	Type                   SegmentType  `json:"type"`
	State                  SegmentState `json:"state"`
	Origin                 Point        `json:"origin"`
	Destination            Point        `json:"destination"`
	OriginWarehouseID      *int64       `json:"origin_warehouse_id,omitempty"`
	DestinationWarehouseID *int64       `json:"destination_warehouse_id,omitempty"`
	DistanceKm             float64      `json:"distance_km"`
	DurationSeconds        int64        `json:"duration_seconds"`
	DwellCost              float64      `json:"dwell_cost"`
	ApproximateCost        *float64     `json:"approximate_cost,omitempty"`
	RealCost               *float64     `json:"real_cost,omitempty"`
	TruckID                *int64       `json:"truck_id,omitempty"`
	StartedAt              *time.Time   `json:"started_at,omitempty"`
	FinishedAt             *time.Time   `json:"finished_at,omitempty"`
}

type RouteSummaryResponse struct {
	ID              int64             `json:"id"`
	RequestID       int64             `json:"request_id"`
	Origin          Point             `json:"origin"`
	Destination     Point             `json:"destination"`
	ContainerVolume float64           `json:"container_volume"`
	TariffID        int64             `json:"tariff_id"`
	SegmentCount    int32             `json:"segment_count"`
	DepotCount      int32             `json:"depot_count"`
	TotalDistanceKm float64           `json:"total_distance_km"`
	EstimatedCost   *float64          `json:"estimated_cost,omitempty"`
	FinalCost       *float64          `json:"final_cost,omitempty"`
	Segments        []SegmentResponse `json:"segments"`
	CreatedAt       time.Time         `json:"created_at"`
}

func (p *SegmentResponse) ParseFromSegmentObject(result db.Segment) {
	p.ID = result.ID
	p.RouteID = result.RouteID
	p.Position = result.Position
	p.Type = SegmentType(result.SegmentType)
	p.State = SegmentState(result.State)
	p.Origin = Point{Latitude: result.OriginLat, Longitude: result.OriginLon}
	p.Destination = Point{Latitude: result.DestinationLat, Longitude: result.DestinationLon}
	p.DistanceKm = result.DistanceKm
	p.DurationSeconds = result.DurationSeconds
	p.DwellCost = result.DwellCost
	if result.OriginWarehouseID.Valid {
		p.OriginWarehouseID = &result.OriginWarehouseID.Int64
	}
	if result.DestinationWarehouseID.Valid {
		p.DestinationWarehouseID = &result.DestinationWarehouseID.Int64
	}
	if result.ApproximateCost.Valid {
		p.ApproximateCost = &result.ApproximateCost.Float64
	}
	if result.RealCost.Valid {
		p.RealCost = &result.RealCost.Float64
	}
	if result.TruckID.Valid {
		p.TruckID = &result.TruckID.Int64
	}
	if result.StartedAt.Valid {
		p.StartedAt = &result.StartedAt.Time
	}
	if result.FinishedAt.Valid {
		p.FinishedAt = &result.FinishedAt.Time
	}
}

func (p *RouteSummaryResponse) ParseFromRouteObject(result db.Route, segments []db.Segment) {
	p.ID = result.ID
	p.RequestID = result.RequestID
	p.Origin = Point{Latitude: result.OriginLat, Longitude: result.OriginLon}
	p.Destination = Point{Latitude: result.DestinationLat, Longitude: result.DestinationLon}
	p.ContainerVolume = result.ContainerVolume
	p.TariffID = result.TariffID
	p.SegmentCount = result.SegmentCount
	p.DepotCount = result.DepotCount
	p.CreatedAt = result.CreatedAt
	if result.EstimatedCost.Valid {
		p.EstimatedCost = &result.EstimatedCost.Float64
	}
	if result.FinalCost.Valid {
		p.FinalCost = &result.FinalCost.Float64
	}

	p.Segments = make([]SegmentResponse, 0, len(segments))
	for _, segment := range segments {
		response := SegmentResponse{}
		response.ParseFromSegmentObject(segment)
		p.TotalDistanceKm += response.DistanceKm
		p.Segments = append(p.Segments, response)
	}
}
