package truck

import (
	"context"
	"database/sql"
	db "logistics/db/sqlc"
)

type InterfaceRepository interface {
	CreateTruck(ctx context.Context, arg db.CreateTruckParams) (db.Truck, error)
	UpdateTruck(ctx context.Context, arg db.UpdateTruckParams) (db.Truck, error)
	DeleteTruck(ctx context.Context, id int64) error
	GetTruckByID(ctx context.Context, id int64) (db.Truck, error)
	GetTruckByLicensePlate(ctx context.Context, licensePlate string) (db.Truck, error)
	ListTrucks(ctx context.Context) ([]db.Truck, error)
}

type Repository struct {
	Conn    *sql.DB
	Queries *db.Queries
}

func NewTrucksRepository(Conn *sql.DB) *Repository {
	return &Repository{
		Conn:    Conn,
		Queries: db.New(Conn),
	}
}

func (r *Repository) CreateTruck(ctx context.Context, arg db.CreateTruckParams) (db.Truck, error) {
	return r.Queries.CreateTruck(ctx, arg)
}

func (r *Repository) UpdateTruck(ctx context.Context, arg db.UpdateTruckParams) (db.Truck, error) {
	return r.Queries.UpdateTruck(ctx, arg)
}

func (r *Repository) DeleteTruck(ctx context.Context, id int64) error {
	return r.Queries.DeleteTruck(ctx, id)
}

func (r *Repository) GetTruckByID(ctx context.Context, id int64) (db.Truck, error) {
	return r.Queries.GetTruckByID(ctx, id)
}

func (r *Repository) GetTruckByLicensePlate(ctx context.Context, licensePlate string) (db.Truck, error) {
	return r.Queries.GetTruckByLicensePlate(ctx, licensePlate)
}

func (r *Repository) ListTrucks(ctx context.Context) ([]db.Truck, error) {
	return r.Queries.ListTrucks(ctx)
}
