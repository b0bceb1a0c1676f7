package repository

import (
	"context"

	"github.com/jakubodys-twoje-pokoje/TP-Cenniki-sub000/internal/domain"
)

// PropertyRepository persists property configuration. Only configuration is
// stored; computed prices never are.
type PropertyRepository interface {
	// Create inserts a new property
	Create(ctx context.Context, property *domain.Property) error

	// GetByID returns the property or nil when it does not exist
	GetByID(ctx context.Context, id string) (*domain.Property, error)

	// List returns all properties ordered by creation time
	List(ctx context.Context) ([]*domain.Property, error)

	// Update overwrites the stored configuration
	Update(ctx context.Context, property *domain.Property) error

	// Delete removes a property
	Delete(ctx context.Context, id string) error
}
