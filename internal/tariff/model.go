package tariff

import (
	db "logistics/db/sqlc"
	"time"
)

type CreateTariffRequest struct {
	VolumeMin      float64 `json:"volume_min" validate:"gte=0"`
	VolumeMax      float64 `json:"volume_max" validate:"gt=0"`
	ManagementFee  float64 `json:"management_fee" validate:"gte=0"`
	FuelPriceLiter float64 `json:"fuel_price_liter" validate:"gte=0"`
}

type TariffResponse struct {
	ID             int64      `json:"id"`
	VolumeMin      float64    `json:"volume_min"`
	VolumeMax      float64    `json:"volume_max"`
	ManagementFee  float64    `json:"management_fee"`
	FuelPriceLiter float64    `json:"fuel_price_liter"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty"`
}

func (p *CreateTariffRequest) ParseCreateToTariff() db.CreateTariffParams {
	return db.CreateTariffParams{
		VolumeMin:      p.VolumeMin,
		VolumeMax:      p.VolumeMax,
		ManagementFee:  p.ManagementFee,
		FuelPriceLiter: p.FuelPriceLiter,
	}
}

func (p *TariffResponse) ParseFromTariffObject(result db.Tariff) {
	p.ID = result.ID
	p.VolumeMin = result.VolumeMin
	p.VolumeMax = result.VolumeMax
	p.ManagementFee = result.ManagementFee
	p.FuelPriceLiter = result.FuelPriceLiter
	p.CreatedAt = result.CreatedAt
	if result.UpdatedAt.Valid {
		p.UpdatedAt = &result.UpdatedAt.Time
	}
}
