// Package requests is the HTTP client for the transport-request peer
// service, which owns container data.
package requests

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

type Client struct {
	BaseURL    string
	HttpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		HttpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

type ContainerInfo struct {
	WeightKg float64 `json:"weight_kg"`
	VolumeM3 float64 `json:"volume_m3"`
}

// GetContainerByRequestID fetches the container attached to a transport
// request. The caller's bearer token travels as an explicit argument.
func (c *Client) GetContainerByRequestID(ctx context.Context, bearerToken string, requestID int64) (ContainerInfo, error) {
	url := fmt.Sprintf("%s/requests/%d/container", c.BaseURL, requestID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return ContainerInfo{}, err
	}
	req.Header.Set("Authorization", "Bearer "+bearerToken)

	resp, err := c.HttpClient.Do(req)
	if err != nil {
		return ContainerInfo{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ContainerInfo{}, fmt.Errorf("requests service returned status %d", resp.StatusCode)
	}

	var info ContainerInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return ContainerInfo{}, err
	}

	return info, nil
}
