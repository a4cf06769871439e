package tariff

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"logistics/infra/apperr"
)

type InterfaceService interface {
	CreateTariffService(ctx context.Context, data CreateTariffRequest) (TariffResponse, error)
	GetTariffsService(ctx context.Context) ([]TariffResponse, error)
	DeleteTariffService(ctx context.Context, id int64) error
	SelectBandService(ctx context.Context, volume float64) (TariffResponse, error)
}

type Service struct {
	InterfaceService InterfaceRepository
}

func NewTariffsService(InterfaceService InterfaceRepository) *Service {
	return &Service{InterfaceService}
}

func (s *Service) CreateTariffService(ctx context.Context, data CreateTariffRequest) (TariffResponse, error) {
	if data.VolumeMin >= data.VolumeMax {
		return TariffResponse{}, apperr.Precondition("volume_min must be lower than volume_max")
	}

	bands, err := s.InterfaceService.ListTariffs(ctx)
	if err != nil {
		return TariffResponse{}, err
	}
	for _, band := range bands {
		if data.VolumeMin < band.VolumeMax && band.VolumeMin < data.VolumeMax {
			return TariffResponse{}, apperr.Duplicate(fmt.Sprintf(
				"tariff band [%.2f, %.2f) overlaps existing band [%.2f, %.2f)",
				data.VolumeMin, data.VolumeMax, band.VolumeMin, band.VolumeMax))
		}
	}

	result, err := s.InterfaceService.CreateTariff(ctx, data.ParseCreateToTariff())
	if err != nil {
		return TariffResponse{}, err
	}

	createTariffService := TariffResponse{}
	createTariffService.ParseFromTariffObject(result)

	return createTariffService, nil
}

func (s *Service) GetTariffsService(ctx context.Context) ([]TariffResponse, error) {
	result, err := s.InterfaceService.ListTariffs(ctx)
	if err != nil {
		return []TariffResponse{}, err
	}

	var getAllTariffs []TariffResponse
	for _, band := range result {
		getTariffResponse := TariffResponse{}
		getTariffResponse.ParseFromTariffObject(band)
		getAllTariffs = append(getAllTariffs, getTariffResponse)
	}

	return getAllTariffs, nil
}

func (s *Service) DeleteTariffService(ctx context.Context, id int64) error {
	_, err := s.InterfaceService.GetTariffByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return apperr.NotFound("tariff not found")
	}
	if err != nil {
		return err
	}

	return s.InterfaceService.DeleteTariff(ctx, id)
}

// SelectBandService picks the band whose range contains the volume. Bands
// are half-open [min, max) except the highest one, which also accepts its
// upper bound. A volume outside every band is a configuration error.
func (s *Service) SelectBandService(ctx context.Context, volume float64) (TariffResponse, error) {
	if volume <= 0 {
		return TariffResponse{}, apperr.Precondition("container volume must be positive")
	}

	bands, err := s.InterfaceService.ListTariffs(ctx)
	if err != nil {
		return TariffResponse{}, err
	}

	var ceiling float64
	for _, band := range bands {
		if band.VolumeMax > ceiling {
			ceiling = band.VolumeMax
		}
	}

	for _, band := range bands {
		if volume < band.VolumeMin {
			continue
		}
		if volume < band.VolumeMax || (band.VolumeMax == ceiling && volume == ceiling) {
			response := TariffResponse{}
			response.ParseFromTariffObject(band)
			return response, nil
		}
	}

	return TariffResponse{}, apperr.Precondition(fmt.Sprintf("no tariff band contains volume %.2f", volume))
}
