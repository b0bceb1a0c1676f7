package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestHTTPPMSClient_PushPrices(t *testing.T) {
	var gotPath, gotAuth string
	var gotUpdate PriceUpdate

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotUpdate); err != nil {
			t.Errorf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{"success": true})
	}))
	defer server.Close()

	c := NewHTTPPMSClient(server.URL, "test-key", 5*time.Second)
	update := &PriceUpdate{
		PropertyID:  "prop-1",
		RoomTypeID:  "rt-2",
		ChannelCode: "booking",
		StartDate:   "2026-07-01",
		EndDate:     "2026-08-31",
		MinNights:   3,
		OccupancyPrices: map[int]int{
			1: 170,
			2: 200,
		},
	}

	if err := c.PushPrices(context.Background(), update); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotPath != "/api/v2/properties/prop-1/prices" {
		t.Errorf("unexpected path %s", gotPath)
	}
	if gotAuth != "Bearer test-key" {
		t.Errorf("unexpected auth header %s", gotAuth)
	}
	if gotUpdate.ChannelCode != "booking" || gotUpdate.MinNights != 3 {
		t.Errorf("unexpected payload %+v", gotUpdate)
	}
	if gotUpdate.OccupancyPrices[2] != 200 {
		t.Errorf("ladder not transmitted: %+v", gotUpdate.OccupancyPrices)
	}
}

func TestHTTPPMSClient_PushPrices_RemoteError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"success": false, "error": "room type unknown"})
	}))
	defer server.Close()

	c := NewHTTPPMSClient(server.URL, "", 5*time.Second)
	err := c.PushPrices(context.Background(), &PriceUpdate{PropertyID: "prop-1"})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "room type unknown") {
		t.Errorf("expected the remote message to surface, got %v", err)
	}
}

func TestHTTPPMSClient_PushPrices_BadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	c := NewHTTPPMSClient(server.URL, "", 5*time.Second)
	if err := c.PushPrices(context.Background(), &PriceUpdate{PropertyID: "prop-1"}); err == nil {
		t.Fatal("expected error on non-2xx status")
	}
}

func TestHTTPPMSClient_FetchAvailability(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("room_type_id") != "rt-2" {
			t.Errorf("missing room_type_id, query %s", r.URL.RawQuery)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data": []AvailabilityDay{
				{Date: "2026-07-01", Available: false},
				{Date: "2026-07-02", Available: true},
			},
		})
	}))
	defer server.Close()

	c := NewHTTPPMSClient(server.URL, "", 5*time.Second)
	days, err := c.FetchAvailability(context.Background(), &AvailabilityRequest{
		PropertyID: "prop-1",
		RoomTypeID: "rt-2",
		StartDate:  "2026-07-01",
		EndDate:    "2026-07-02",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(days) != 2 {
		t.Fatalf("expected 2 days, got %d", len(days))
	}
	if days[0].Available || !days[1].Available {
		t.Errorf("unexpected flags %+v", days)
	}
}
