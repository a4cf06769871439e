package warehouse

import (
	db "logistics/db/sqlc"
	"time"
)

type CreateWarehouseRequest struct {
	Name         string  `json:"name" validate:"required"`
	Latitude     float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude    float64 `json:"longitude" validate:"gte=-180,lte=180"`
	DwellCostDay float64 `json:"dwell_cost_day" validate:"gte=0"`
	DwellDays    int32   `json:"dwell_days" validate:"gte=0"`
}

type UpdateWarehouseRequest struct {
	ID           int64   `json:"id" validate:"required"`
	Name         string  `json:"name" validate:"required"`
	Latitude     float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude    float64 `json:"longitude" validate:"gte=-180,lte=180"`
	DwellCostDay float64 `json:"dwell_cost_day" validate:"gte=0"`
	DwellDays    int32   `json:"dwell_days" validate:"gte=0"`
}

type WarehouseResponse struct {
	ID           int64      `json:"id"`
	Name         string     `json:"name"`
	Latitude     float64    `json:"latitude"`
	Longitude    float64    `json:"longitude"`
	DwellCostDay float64    `json:"dwell_cost_day"`
	DwellDays    int32      `json:"dwell_days"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

func (p *CreateWarehouseRequest) ParseCreateToWarehouse() db.CreateWarehouseParams {
	return db.CreateWarehouseParams{
		Name:         p.Name,
		Latitude:     p.Latitude,
		Longitude:    p.Longitude,
		DwellCostDay: p.DwellCostDay,
		DwellDays:    p.DwellDays,
	}
}

func (p *UpdateWarehouseRequest) ParseUpdateToWarehouse() db.UpdateWarehouseParams {
	return db.UpdateWarehouseParams{
		ID:           p.ID,
		Name:         p.Name,
		Latitude:     p.Latitude,
		Longitude:    p.Longitude,
		DwellCostDay: p.DwellCostDay,
		DwellDays:    p.DwellDays,
	}
}

func (p *WarehouseResponse) ParseFromWarehouseObject(result db.Warehouse) {
	p.ID = result.ID
	p.Name = result.Name
	p.Latitude = result.Latitude
	p.Longitude = result.Longitude
	p.DwellCostDay = result.DwellCostDay
	p.DwellDays = result.DwellDays
	p.CreatedAt = result.CreatedAt
	if result.UpdatedAt.Valid {
		p.UpdatedAt = &result.UpdatedAt.Time
	}
}
