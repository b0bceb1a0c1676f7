package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/jakubodys-twoje-pokoje/TP-Cenniki-sub000/internal/domain"
)

// MemoryPropertyRepository keeps properties in memory. Used by tests and
// when the service runs without a database.
type MemoryPropertyRepository struct {
	mu         sync.RWMutex
	properties map[string]*domain.Property
}

// NewMemoryPropertyRepository creates an empty in-memory repository
func NewMemoryPropertyRepository() *MemoryPropertyRepository {
	return &MemoryPropertyRepository{
		properties: make(map[string]*domain.Property),
	}
}

// Create inserts a new property
func (r *MemoryPropertyRepository) Create(ctx context.Context, property *domain.Property) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.properties[property.ID]; exists {
		return fmt.Errorf("property %s already exists", property.ID)
	}
	r.properties[property.ID] = clone(property)
	return nil
}

// GetByID returns the property or nil when it does not exist
func (r *MemoryPropertyRepository) GetByID(ctx context.Context, id string) (*domain.Property, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	property, ok := r.properties[id]
	if !ok {
		return nil, nil
	}
	return clone(property), nil
}

// List returns all properties ordered by creation time
func (r *MemoryPropertyRepository) List(ctx context.Context) ([]*domain.Property, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	properties := make([]*domain.Property, 0, len(r.properties))
	for _, property := range r.properties {
		properties = append(properties, clone(property))
	}
	sort.Slice(properties, func(i, j int) bool {
		return properties[i].CreatedAt.Before(properties[j].CreatedAt)
	})
	return properties, nil
}

// Update overwrites the stored configuration
func (r *MemoryPropertyRepository) Update(ctx context.Context, property *domain.Property) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.properties[property.ID]; !exists {
		return fmt.Errorf("property %s not found", property.ID)
	}
	property.UpdatedAt = time.Now()
	r.properties[property.ID] = clone(property)
	return nil
}

// Delete removes a property
func (r *MemoryPropertyRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.properties[id]; !exists {
		return fmt.Errorf("property %s not found", id)
	}
	delete(r.properties, id)
	return nil
}

// clone gives callers their own copy so nobody mutates the stored aggregate
// behind the lock
func clone(p *domain.Property) *domain.Property {
	copied := *p
	copied.Profiles = append([]domain.Profile(nil), p.Profiles...)
	copied.Config.Rooms = append([]domain.Room(nil), p.Config.Rooms...)
	copied.Config.Seasons = append([]domain.Season(nil), p.Config.Seasons...)
	copied.Config.Channels = append([]domain.Channel(nil), p.Config.Channels...)
	return &copied
}
