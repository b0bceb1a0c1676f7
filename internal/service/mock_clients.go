package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jakubodys-twoje-pokoje/TP-Cenniki-sub000/internal/client"
	"github.com/jakubodys-twoje-pokoje/TP-Cenniki-sub000/internal/events"
)

// ErrMockFailure is returned when a mock collaborator is configured to fail
var ErrMockFailure = errors.New("mock failure")

// MockPMSClient is a mock implementation of client.PMSClient
type MockPMSClient struct {
	mu           sync.RWMutex
	ShouldFail   bool
	FailureError error

	// Pushed records every price update received, in order
	Pushed []*client.PriceUpdate
	// Availability maps room type id to the days returned for it
	Availability map[string][]client.AvailabilityDay
}

// NewMockPMSClient creates a new mock PMS client
func NewMockPMSClient() *MockPMSClient {
	return &MockPMSClient{
		Availability: make(map[string][]client.AvailabilityDay),
	}
}

// PushPrices records the update or fails when configured to
func (m *MockPMSClient) PushPrices(ctx context.Context, update *client.PriceUpdate) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.ShouldFail {
		if m.FailureError != nil {
			return m.FailureError
		}
		return ErrMockFailure
	}
	m.Pushed = append(m.Pushed, update)
	return nil
}

// FetchAvailability returns the configured days for the room type
func (m *MockPMSClient) FetchAvailability(ctx context.Context, req *client.AvailabilityRequest) ([]client.AvailabilityDay, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.ShouldFail {
		if m.FailureError != nil {
			return nil, m.FailureError
		}
		return nil, ErrMockFailure
	}
	days, ok := m.Availability[req.RoomTypeID]
	if !ok {
		return nil, fmt.Errorf("no availability configured for room type %s", req.RoomTypeID)
	}
	return days, nil
}

// MockAuditPublisher is a mock implementation of events.AuditPublisher
type MockAuditPublisher struct {
	mu     sync.Mutex
	Events []*events.PushAuditEvent
}

// NewMockAuditPublisher creates a new mock audit publisher
func NewMockAuditPublisher() *MockAuditPublisher {
	return &MockAuditPublisher{}
}

// PublishPushResult records the event
func (m *MockAuditPublisher) PublishPushResult(ctx context.Context, event *events.PushAuditEvent) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Events = append(m.Events, event)
}

// Close is a no-op
func (m *MockAuditPublisher) Close() {}

// MockCache is a mock implementation of OccupancyCache
type MockCache struct {
	mu         sync.RWMutex
	ShouldFail bool
	values     map[string]string
}

// NewMockCache creates a new mock cache
func NewMockCache() *MockCache {
	return &MockCache{values: make(map[string]string)}
}

// Get returns the cached value or an error on a miss
func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.ShouldFail {
		return "", ErrMockFailure
	}
	value, ok := m.values[key]
	if !ok {
		return "", errors.New("cache miss")
	}
	return value, nil
}

// Set stores the value, ignoring the TTL
func (m *MockCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.ShouldFail {
		return ErrMockFailure
	}
	m.values[key] = fmt.Sprintf("%v", value)
	return nil
}
