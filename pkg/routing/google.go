package routing

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"googlemaps.github.io/maps"
)

// GoogleClient resolves segments through the Google Directions API. Used
// when ROUTING_PROVIDER=google; OSRM stays the default.
type GoogleClient struct {
	client *maps.Client
}

func NewGoogleClient(apiKey string) (*GoogleClient, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}
	return &GoogleClient{client: client}, nil
}

func (g *GoogleClient) Resolve(ctx context.Context, originLat, originLon, destLat, destLon float64) (Result, error) {
	routeRequest := &maps.DirectionsRequest{
		Origin:       fmt.Sprintf("%f,%f", originLat, originLon),
		Destination:  fmt.Sprintf("%f,%f", destLat, destLon),
		Mode:         maps.TravelModeDriving,
		Alternatives: true,
	}

	routes, _, err := g.client.Directions(ctx, routeRequest)
	if err != nil {
		return Result{}, err
	}
	if len(routes) == 0 {
		return Result{}, errors.New("google returned no routes")
	}

	bestMeters := 0
	bestDuration := time.Duration(math.MaxInt64)
	for _, route := range routes {
		var totalMeters int
		var totalDuration time.Duration
		for _, leg := range route.Legs {
			totalMeters += leg.Distance.Meters
			totalDuration += leg.Duration
		}
		if totalDuration < bestDuration {
			bestDuration = totalDuration
			bestMeters = totalMeters
		}
	}

	return Result{
		DistanceKm:      math.Round(float64(bestMeters)/1000*100) / 100,
		DurationSeconds: int64(bestDuration.Seconds()),
	}, nil
}
