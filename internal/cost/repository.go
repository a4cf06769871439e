package cost

import (
	"context"
	"database/sql"
	db "logistics/db/sqlc"
)

type InterfaceRepository interface {
	GetRouteByID(ctx context.Context, id int64) (db.Route, error)
	GetTariffByID(ctx context.Context, id int64) (db.Tariff, error)
	GetTruckByID(ctx context.Context, id int64) (db.Truck, error)
	ListSegmentsByRoute(ctx context.Context, routeID int64) ([]db.Segment, error)
	PersistEstimate(ctx context.Context, routeArg db.UpdateRouteEstimateParams, segmentArgs []db.UpdateSegmentApproximateCostParams) (db.Route, error)
	PersistFinal(ctx context.Context, routeArg db.UpdateRouteFinalParams, segmentArgs []db.UpdateSegmentRealCostParams) (db.Route, error)
}

type Repository struct {
	Conn    *sql.DB
	Queries *db.Queries
}

func NewCostsRepository(Conn *sql.DB) *Repository {
	return &Repository{
		Conn:    Conn,
		Queries: db.New(Conn),
	}
}

func (r *Repository) GetRouteByID(ctx context.Context, id int64) (db.Route, error) {
	return r.Queries.GetRouteByID(ctx, id)
}

func (r *Repository) GetTariffByID(ctx context.Context, id int64) (db.Tariff, error) {
	return r.Queries.GetTariffByID(ctx, id)
}

func (r *Repository) GetTruckByID(ctx context.Context, id int64) (db.Truck, error) {
	return r.Queries.GetTruckByID(ctx, id)
}

func (r *Repository) ListSegmentsByRoute(ctx context.Context, routeID int64) ([]db.Segment, error) {
	return r.Queries.ListSegmentsByRoute(ctx, routeID)
}

// PersistEstimate writes the route's estimate cache and every segment's
// approximate cost in one transaction. The version-checked route update
// runs first, so a stale write rolls back before any segment is touched.
func (r *Repository) PersistEstimate(ctx context.Context, routeArg db.UpdateRouteEstimateParams, segmentArgs []db.UpdateSegmentApproximateCostParams) (db.Route, error) {
	tx, err := r.Conn.BeginTx(ctx, nil)
	if err != nil {
		return db.Route{}, err
	}
	defer tx.Rollback()

	queries := r.Queries.WithTx(tx)

	updated, err := queries.UpdateRouteEstimate(ctx, routeArg)
	if err != nil {
		return db.Route{}, err
	}

	for _, arg := range segmentArgs {
		if err := queries.UpdateSegmentApproximateCost(ctx, arg); err != nil {
			return db.Route{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return db.Route{}, err
	}

	return updated, nil
}

// PersistFinal is the finalization counterpart of PersistEstimate.
func (r *Repository) PersistFinal(ctx context.Context, routeArg db.UpdateRouteFinalParams, segmentArgs []db.UpdateSegmentRealCostParams) (db.Route, error) {
	tx, err := r.Conn.BeginTx(ctx, nil)
	if err != nil {
		return db.Route{}, err
	}
	defer tx.Rollback()

	queries := r.Queries.WithTx(tx)

	updated, err := queries.UpdateRouteFinal(ctx, routeArg)
	if err != nil {
		return db.Route{}, err
	}

	for _, arg := range segmentArgs {
		if err := queries.UpdateSegmentRealCost(ctx, arg); err != nil {
			return db.Route{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return db.Route{}, err
	}

	return updated, nil
}
