package warehouse

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"logistics/infra/apperr"
)

type InterfaceService interface {
	CreateWarehouseService(ctx context.Context, data CreateWarehouseRequest) (WarehouseResponse, error)
	UpdateWarehouseService(ctx context.Context, data UpdateWarehouseRequest) (WarehouseResponse, error)
	DeleteWarehouseService(ctx context.Context, id int64) error
	GetWarehousesService(ctx context.Context) ([]WarehouseResponse, error)
	GetWarehousesInOrderService(ctx context.Context, ids []int64) ([]WarehouseResponse, error)
}

type Service struct {
	InterfaceService InterfaceRepository
}

func NewWarehousesService(InterfaceService InterfaceRepository) *Service {
	return &Service{InterfaceService}
}

func (s *Service) CreateWarehouseService(ctx context.Context, data CreateWarehouseRequest) (WarehouseResponse, error) {
	result, err := s.InterfaceService.CreateWarehouse(ctx, data.ParseCreateToWarehouse())
	if err != nil {
		return WarehouseResponse{}, err
	}

	createWarehouseService := WarehouseResponse{}
	createWarehouseService.ParseFromWarehouseObject(result)

	return createWarehouseService, nil
}

func (s *Service) UpdateWarehouseService(ctx context.Context, data UpdateWarehouseRequest) (WarehouseResponse, error) {
	_, err := s.InterfaceService.GetWarehouseByID(ctx, data.ID)
	if errors.Is(err, sql.ErrNoRows) {
		return WarehouseResponse{}, apperr.NotFound("warehouse not found")
	}
	if err != nil {
		return WarehouseResponse{}, err
	}

	result, err := s.InterfaceService.UpdateWarehouse(ctx, data.ParseUpdateToWarehouse())
	if err != nil {
		return WarehouseResponse{}, err
	}

	updateWarehouseService := WarehouseResponse{}
	updateWarehouseService.ParseFromWarehouseObject(result)

	return updateWarehouseService, nil
}

func (s *Service) DeleteWarehouseService(ctx context.Context, id int64) error {
	_, err := s.InterfaceService.GetWarehouseByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return apperr.NotFound("warehouse not found")
	}
	if err != nil {
		return err
	}

	return s.InterfaceService.DeleteWarehouse(ctx, id)
}

func (s *Service) GetWarehousesService(ctx context.Context) ([]WarehouseResponse, error) {
	result, err := s.InterfaceService.ListWarehouses(ctx)
	if err != nil {
		return []WarehouseResponse{}, err
	}

	var getAllWarehouses []WarehouseResponse
	for _, row := range result {
		getWarehouseResponse := WarehouseResponse{}
		getWarehouseResponse.ParseFromWarehouseObject(row)
		getAllWarehouses = append(getAllWarehouses, getWarehouseResponse)
	}

	return getAllWarehouses, nil
}

// GetWarehousesInOrderService resolves waypoint ids preserving the given
// order, duplicates included. A missing id fails the whole lookup.
func (s *Service) GetWarehousesInOrderService(ctx context.Context, ids []int64) ([]WarehouseResponse, error) {
	if len(ids) == 0 {
		return []WarehouseResponse{}, nil
	}

	rows, err := s.InterfaceService.GetWarehousesByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[int64]WarehouseResponse, len(rows))
	for _, row := range rows {
		response := WarehouseResponse{}
		response.ParseFromWarehouseObject(row)
		byID[row.ID] = response
	}

	ordered := make([]WarehouseResponse, 0, len(ids))
	for _, id := range ids {
		found, ok := byID[id]
		if !ok {
			return nil, apperr.NotFound(fmt.Sprintf("warehouse %d not found", id))
		}
		ordered = append(ordered, found)
	}

	return ordered, nil
}
