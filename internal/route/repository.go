package route

import (
	"context"
	"database/sql"
	db "logistics/db/sqlc"
)

type InterfaceRepository interface {
	CreateRouteWithSegments(ctx context.Context, routeArg db.CreateRouteParams, segmentArgs []db.CreateSegmentParams) (db.Route, []db.Segment, error)
	GetRouteByID(ctx context.Context, id int64) (db.Route, error)
	ListSegmentsByRoute(ctx context.Context, routeID int64) ([]db.Segment, error)
	GetSegmentByID(ctx context.Context, id int64) (db.Segment, error)
	UpdateSegmentTruck(ctx context.Context, arg db.UpdateSegmentTruckParams) (db.Segment, error)
	UpdateSegmentStart(ctx context.Context, arg db.UpdateSegmentStartParams) (db.Segment, error)
	UpdateSegmentFinish(ctx context.Context, arg db.UpdateSegmentFinishParams) (db.Segment, error)
}

type Repository struct {
	Conn    *sql.DB
	Queries *db.Queries
}

func NewRoutesRepository(Conn *sql.DB) *Repository {
	return &Repository{
		Conn:    Conn,
		Queries: db.New(Conn),
	}
}

// CreateRouteWithSegments persists the route and its full segment chain in
// one transaction; a route with a partial chain is never visible.
func (r *Repository) CreateRouteWithSegments(ctx context.Context, routeArg db.CreateRouteParams, segmentArgs []db.CreateSegmentParams) (db.Route, []db.Segment, error) {
	tx, err := r.Conn.BeginTx(ctx, nil)
	if err != nil {
		return db.Route{}, nil, err
	}
	defer tx.Rollback()

	queries := r.Queries.WithTx(tx)

	created, err := queries.CreateRoute(ctx, routeArg)
	if err != nil {
		return db.Route{}, nil, err
	}

	segments := make([]db.Segment, 0, len(segmentArgs))
	for _, arg := range segmentArgs {
		arg.RouteID = created.ID
		segment, err := queries.CreateSegment(ctx, arg)
		if err != nil {
			return db.Route{}, nil, err
		}
		segments = append(segments, segment)
	}

	if err := tx.Commit(); err != nil {
		return db.Route{}, nil, err
	}

	return created, segments, nil
}

func (r *Repository) GetRouteByID(ctx context.Context, id int64) (db.Route, error) {
	return r.Queries.GetRouteByID(ctx, id)
}

func (r *Repository) ListSegmentsByRoute(ctx context.Context, routeID int64) ([]db.Segment, error) {
	return r.Queries.ListSegmentsByRoute(ctx, routeID)
}

func (r *Repository) GetSegmentByID(ctx context.Context, id int64) (db.Segment, error) {
	return r.Queries.GetSegmentByID(ctx, id)
}

func (r *Repository) UpdateSegmentTruck(ctx context.Context, arg db.UpdateSegmentTruckParams) (db.Segment, error) {
	return r.Queries.UpdateSegmentTruck(ctx, arg)
}

func (r *Repository) UpdateSegmentStart(ctx context.Context, arg db.UpdateSegmentStartParams) (db.Segment, error) {
	return r.Queries.UpdateSegmentStart(ctx, arg)
}

func (r *Repository) UpdateSegmentFinish(ctx context.Context, arg db.UpdateSegmentFinishParams) (db.Segment, error) {
	return r.Queries.UpdateSegmentFinish(ctx, arg)
}
