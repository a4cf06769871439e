// Package routing resolves road distance and travel time between two
// coordinates through an external routing engine.
package routing

import (
	"context"
)

type Result struct {
	DistanceKm      float64 `json:"distance_km"`
	DurationSeconds int64   `json:"duration_seconds"`
}

type Provider interface {
	Resolve(ctx context.Context, originLat, originLon, destLat, destLon float64) (Result, error)
}
