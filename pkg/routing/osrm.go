package routing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"time"
)

type OsrmClient struct {
	BaseURL    string
	HttpClient *http.Client
}

func NewOsrmClient(baseURL string) *OsrmClient {
	return &OsrmClient{
		BaseURL: baseURL,
		HttpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

type osrmResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		Distance float64 `json:"distance"`
		Duration float64 `json:"duration"`
	} `json:"routes"`
}

// Resolve asks OSRM for driving alternatives and keeps the fastest one.
func (o *OsrmClient) Resolve(ctx context.Context, originLat, originLon, destLat, destLon float64) (Result, error) {
	url := fmt.Sprintf("%s/route/v1/driving/%f,%f;%f,%f?alternatives=true&overview=false",
		o.BaseURL, originLon, originLat, destLon, destLat)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Result{}, err
	}

	resp, err := o.HttpClient.Do(req)
	if err != nil {
		return Result{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Result{}, fmt.Errorf("osrm returned status %d", resp.StatusCode)
	}

	var body osrmResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Result{}, err
	}

	if body.Code != "Ok" || len(body.Routes) == 0 {
		return Result{}, errors.New("osrm returned no routes")
	}

	best := body.Routes[0]
	for _, route := range body.Routes[1:] {
		if route.Duration < best.Duration {
			best = route
		}
	}

	return Result{
		DistanceKm:      math.Round(best.Distance/1000*100) / 100,
		DurationSeconds: int64(best.Duration),
	}, nil
}
