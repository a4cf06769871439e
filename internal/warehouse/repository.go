package warehouse

import (
	"context"
	"database/sql"
	db "logistics/db/sqlc"
)

type InterfaceRepository interface {
	CreateWarehouse(ctx context.Context, arg db.CreateWarehouseParams) (db.Warehouse, error)
	UpdateWarehouse(ctx context.Context, arg db.UpdateWarehouseParams) (db.Warehouse, error)
	DeleteWarehouse(ctx context.Context, id int64) error
	GetWarehouseByID(ctx context.Context, id int64) (db.Warehouse, error)
	GetWarehousesByIDs(ctx context.Context, ids []int64) ([]db.Warehouse, error)
	ListWarehouses(ctx context.Context) ([]db.Warehouse, error)
}

type Repository struct {
	Conn    *sql.DB
	Queries *db.Queries
}

func NewWarehousesRepository(Conn *sql.DB) *Repository {
	return &Repository{
		Conn:    Conn,
		Queries: db.New(Conn),
	}
}

func (r *Repository) CreateWarehouse(ctx context.Context, arg db.CreateWarehouseParams) (db.Warehouse, error) {
	return r.Queries.CreateWarehouse(ctx, arg)
}

func (r *Repository) UpdateWarehouse(ctx context.Context, arg db.UpdateWarehouseParams) (db.Warehouse, error) {
	return r.Queries.UpdateWarehouse(ctx, arg)
}

func (r *Repository) DeleteWarehouse(ctx context.Context, id int64) error {
	return r.Queries.DeleteWarehouse(ctx, id)
}

func (r *Repository) GetWarehouseByID(ctx context.Context, id int64) (db.Warehouse, error) {
	return r.Queries.GetWarehouseByID(ctx, id)
}

func (r *Repository) GetWarehousesByIDs(ctx context.Context, ids []int64) ([]db.Warehouse, error) {
	return r.Queries.GetWarehousesByIDs(ctx, ids)
}

func (r *Repository) ListWarehouses(ctx context.Context) ([]db.Warehouse, error) {
	return r.Queries.ListWarehouses(ctx)
}
