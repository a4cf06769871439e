package tariff

import (
	"context"
	"database/sql"
	db "logistics/db/sqlc"
)

type InterfaceRepository interface {
	CreateTariff(ctx context.Context, arg db.CreateTariffParams) (db.Tariff, error)
	ListTariffs(ctx context.Context) ([]db.Tariff, error)
	GetTariffByID(ctx context.Context, id int64) (db.Tariff, error)
	DeleteTariff(ctx context.Context, id int64) error
}

type Repository struct {
	Conn    *sql.DB
	Queries *db.Queries
}

func NewTariffsRepository(Conn *sql.DB) *Repository {
	return &Repository{
		Conn:    Conn,
		Queries: db.New(Conn),
	}
}

func (r *Repository) CreateTariff(ctx context.Context, arg db.CreateTariffParams) (db.Tariff, error) {
	return r.Queries.CreateTariff(ctx, arg)
}

func (r *Repository) ListTariffs(ctx context.Context) ([]db.Tariff, error) {
	return r.Queries.ListTariffs(ctx)
}

func (r *Repository) GetTariffByID(ctx context.Context, id int64) (db.Tariff, error) {
	return r.Queries.GetTariffByID(ctx, id)
}

func (r *Repository) DeleteTariff(ctx context.Context, id int64) error {
	return r.Queries.DeleteTariff(ctx, id)
}
