package truck

import (
	db "logistics/db/sqlc"
	"time"
)

type CreateTruckRequest struct {
	LicensePlate     string  `json:"license_plate" validate:"required"`
	WeightCapacityKg float64 `json:"weight_capacity_kg" validate:"gt=0"`
	VolumeCapacityM3 float64 `json:"volume_capacity_m3" validate:"gt=0"`
	CostPerKm        float64 `json:"cost_per_km" validate:"gte=0"`
	FuelConsumption  float64 `json:"fuel_consumption" validate:"gte=0"`
	Available        bool    `json:"available"`
}

type UpdateTruckRequest struct {
	ID               int64   `json:"id" validate:"required"`
	LicensePlate     string  `json:"license_plate" validate:"required"`
	WeightCapacityKg float64 `json:"weight_capacity_kg" validate:"gt=0"`
	VolumeCapacityM3 float64 `json:"volume_capacity_m3" validate:"gt=0"`
	CostPerKm        float64 `json:"cost_per_km" validate:"gte=0"`
	FuelConsumption  float64 `json:"fuel_consumption" validate:"gte=0"`
	Available        bool    `json:"available"`
}

type TruckResponse struct {
	ID               int64      `json:"id"`
	LicensePlate     string     `json:"license_plate"`
	WeightCapacityKg float64    `json:"weight_capacity_kg"`
	VolumeCapacityM3 float64    `json:"volume_capacity_m3"`
	CostPerKm        float64    `json:"cost_per_km"`
	FuelConsumption  float64    `json:"fuel_consumption"`
	Available        bool       `json:"available"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        *time.Time `json:"updated_at,omitempty"`
}

func (p *CreateTruckRequest) ParseCreateToTruck() db.CreateTruckParams {
	return db.CreateTruckParams{
		LicensePlate:     p.LicensePlate,
		WeightCapacityKg: p.WeightCapacityKg,
		VolumeCapacityM3: p.VolumeCapacityM3,
		CostPerKm:        p.CostPerKm,
		FuelConsumption:  p.FuelConsumption,
		Available:        p.Available,
	}
}

func (p *UpdateTruckRequest) ParseUpdateToTruck() db.UpdateTruckParams {
	return db.UpdateTruckParams{
		ID:               p.ID,
		LicensePlate:     p.LicensePlate,
		WeightCapacityKg: p.WeightCapacityKg,
		VolumeCapacityM3: p.VolumeCapacityM3,
		CostPerKm:        p.CostPerKm,
		FuelConsumption:  p.FuelConsumption,
		Available:        p.Available,
	}
}

func (p *TruckResponse) ParseFromTruckObject(result db.Truck) {
	p.ID = result.ID
	p.LicensePlate = result.LicensePlate
	p.WeightCapacityKg = result.WeightCapacityKg
	p.VolumeCapacityM3 = result.VolumeCapacityM3
	p.CostPerKm = result.CostPerKm
	p.FuelConsumption = result.FuelConsumption
	p.Available = result.Available
	p.CreatedAt = result.CreatedAt
	if result.UpdatedAt.Valid {
		p.UpdatedAt = &result.UpdatedAt.Time
	}
}
