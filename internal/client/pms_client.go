package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// PriceUpdate is one price-update request for the property management
// system: one room type, one channel, one date range, the full occupancy
// ladder. The remote side overwrites whatever was there before.
type PriceUpdate struct {
	PropertyID  string `json:"property_id"`
	RoomTypeID  string `json:"room_type_id"`
	ChannelCode string `json:"channel_code"`
	// StartDate and EndDate are inclusive ISO calendar dates (YYYY-MM-DD)
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	MinNights int    `json:"min_nights"`
	// OccupancyPrices maps occupancy level to the nightly price in PLN
	OccupancyPrices map[int]int `json:"occupancy_prices"`
}

// AvailabilityRequest asks for per-day availability of one room type
type AvailabilityRequest struct {
	PropertyID string
	RoomTypeID string
	StartDate  string
	EndDate    string
}

// AvailabilityDay is one day of the availability feed
type AvailabilityDay struct {
	Date      string `json:"date"`
	Available bool   `json:"available"`
}

// PMSClient talks to the external property management system
type PMSClient interface {
	// PushPrices transmits one price update; the remote write is
	// destructive and is never retried here
	PushPrices(ctx context.Context, update *PriceUpdate) error

	// FetchAvailability returns per-day availability flags for a room type
	FetchAvailability(ctx context.Context, req *AvailabilityRequest) ([]AvailabilityDay, error)
}

// HTTPPMSClient implements PMSClient over the PMS HTTP API
type HTTPPMSClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewHTTPPMSClient creates a new HTTP PMS client
func NewHTTPPMSClient(baseURL, apiKey string, timeout time.Duration) *HTTPPMSClient {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &HTTPPMSClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// PushPrices sends one price update to the PMS
func (c *HTTPPMSClient) PushPrices(ctx context.Context, update *PriceUpdate) error {
	body, err := json.Marshal(update)
	if err != nil {
		return fmt.Errorf("failed to encode price update: %w", err)
	}

	endpoint := fmt.Sprintf("%s/api/v2/properties/%s/prices", c.baseURL, update.PropertyID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to push prices: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("pms returned status %d", resp.StatusCode)
	}

	var apiResponse struct {
		Success bool   `json:"success"`
		Error   string `json:"error,omitempty"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&apiResponse); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	if !apiResponse.Success {
		return fmt.Errorf("pms error: %s", apiResponse.Error)
	}
	return nil
}

// FetchAvailability reads the per-day availability feed from the PMS
func (c *HTTPPMSClient) FetchAvailability(ctx context.Context, availReq *AvailabilityRequest) ([]AvailabilityDay, error) {
	endpoint := fmt.Sprintf("%s/api/v2/properties/%s/availability", c.baseURL, availReq.PropertyID)
	query := url.Values{}
	query.Set("room_type_id", availReq.RoomTypeID)
	query.Set("start_date", availReq.StartDate)
	query.Set("end_date", availReq.EndDate)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch availability: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("pms returned status %d", resp.StatusCode)
	}

	var apiResponse struct {
		Success bool              `json:"success"`
		Data    []AvailabilityDay `json:"data"`
		Error   string            `json:"error,omitempty"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&apiResponse); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if !apiResponse.Success {
		return nil, fmt.Errorf("pms error: %s", apiResponse.Error)
	}
	return apiResponse.Data, nil
}

func (c *HTTPPMSClient) setHeaders(req *http.Request) {
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	req.Header.Set("Content-Type", "application/json")
}

// NoOpPMSClient is used in tests and when no PMS is configured
type NoOpPMSClient struct{}

// NewNoOpPMSClient creates a new no-op PMS client
func NewNoOpPMSClient() *NoOpPMSClient {
	return &NoOpPMSClient{}
}

// PushPrices accepts and drops the update
func (c *NoOpPMSClient) PushPrices(ctx context.Context, update *PriceUpdate) error {
	return nil
}

// FetchAvailability returns an empty feed
func (c *NoOpPMSClient) FetchAvailability(ctx context.Context, req *AvailabilityRequest) ([]AvailabilityDay, error) {
	return nil, nil
}
