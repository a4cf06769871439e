package truck

import (
	"context"
	"database/sql"
	"errors"

	"logistics/infra/apperr"
)

type InterfaceService interface {
	CreateTruckService(ctx context.Context, data CreateTruckRequest) (TruckResponse, error)
	UpdateTruckService(ctx context.Context, data UpdateTruckRequest) (TruckResponse, error)
	DeleteTruckService(ctx context.Context, id int64) error
	GetTruckService(ctx context.Context, id int64) (TruckResponse, error)
	GetTrucksService(ctx context.Context) ([]TruckResponse, error)
	FindByCapacitiesService(ctx context.Context, weightKg, volumeM3 float64, onlyAvailable bool) ([]TruckResponse, error)
}

type Service struct {
	InterfaceService InterfaceRepository
}

func NewTrucksService(InterfaceService InterfaceRepository) *Service {
	return &Service{InterfaceService}
}

func (s *Service) CreateTruckService(ctx context.Context, data CreateTruckRequest) (TruckResponse, error) {
	_, err := s.InterfaceService.GetTruckByLicensePlate(ctx, data.LicensePlate)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return TruckResponse{}, err
	}
	if err == nil {
		return TruckResponse{}, apperr.Duplicate("a truck with this license plate already exists")
	}

	result, err := s.InterfaceService.CreateTruck(ctx, data.ParseCreateToTruck())
	if err != nil {
		return TruckResponse{}, err
	}

	createTruckService := TruckResponse{}
	createTruckService.ParseFromTruckObject(result)

	return createTruckService, nil
}

func (s *Service) UpdateTruckService(ctx context.Context, data UpdateTruckRequest) (TruckResponse, error) {
	_, err := s.InterfaceService.GetTruckByID(ctx, data.ID)
	if errors.Is(err, sql.ErrNoRows) {
		return TruckResponse{}, apperr.NotFound("truck not found")
	}
	if err != nil {
		return TruckResponse{}, err
	}

	existing, err := s.InterfaceService.GetTruckByLicensePlate(ctx, data.LicensePlate)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return TruckResponse{}, err
	}
	if err == nil && existing.ID != data.ID {
		return TruckResponse{}, apperr.Duplicate("a truck with this license plate already exists")
	}

	result, err := s.InterfaceService.UpdateTruck(ctx, data.ParseUpdateToTruck())
	if err != nil {
		return TruckResponse{}, err
	}

	updateTruckService := TruckResponse{}
	updateTruckService.ParseFromTruckObject(result)

	return updateTruckService, nil
}

func (s *Service) DeleteTruckService(ctx context.Context, id int64) error {
	_, err := s.InterfaceService.GetTruckByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return apperr.NotFound("truck not found")
	}
	if err != nil {
		return err
	}

	return s.InterfaceService.DeleteTruck(ctx, id)
}

func (s *Service) GetTruckService(ctx context.Context, id int64) (TruckResponse, error) {
	result, err := s.InterfaceService.GetTruckByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return TruckResponse{}, apperr.NotFound("truck not found")
	}
	if err != nil {
		return TruckResponse{}, err
	}

	getTruckResponse := TruckResponse{}
	getTruckResponse.ParseFromTruckObject(result)

	return getTruckResponse, nil
}

func (s *Service) GetTrucksService(ctx context.Context) ([]TruckResponse, error) {
	result, err := s.InterfaceService.ListTrucks(ctx)
	if err != nil {
		return []TruckResponse{}, err
	}

	var getAllTrucks []TruckResponse
	for _, row := range result {
		getTruckResponse := TruckResponse{}
		getTruckResponse.ParseFromTruckObject(row)
		getAllTrucks = append(getAllTrucks, getTruckResponse)
	}

	return getAllTrucks, nil
}

// FindByCapacitiesService filters the pool down to trucks that can carry
// the container. The estimator uses the capacity-only mode; assignment
// additionally requires the truck to be available.
func (s *Service) FindByCapacitiesService(ctx context.Context, weightKg, volumeM3 float64, onlyAvailable bool) ([]TruckResponse, error) {
	result, err := s.InterfaceService.ListTrucks(ctx)
	if err != nil {
		return nil, err
	}

	var eligible []TruckResponse
	for _, row := range result {
		if row.WeightCapacityKg < weightKg || row.VolumeCapacityM3 < volumeM3 {
			continue
		}
		if onlyAvailable && !row.Available {
			continue
		}
		response := TruckResponse{}
		response.ParseFromTruckObject(row)
		eligible = append(eligible, response)
	}

	return eligible, nil
}
