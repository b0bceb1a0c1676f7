package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jakubodys-twoje-pokoje/TP-Cenniki-sub000/internal/domain"
)

// propertyDocument is the JSONB payload of one properties row. Rooms,
// seasons, channels and profiles evolve together, so they travel as one
// document instead of a table per entity.
type propertyDocument struct {
	Config   domain.PropertyConfig `json:"config"`
	Profiles []domain.Profile      `json:"profiles,omitempty"`
}

// PostgresPropertyRepository implements PropertyRepository using PostgreSQL
type PostgresPropertyRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresPropertyRepository creates a new PostgresPropertyRepository
func NewPostgresPropertyRepository(pool *pgxpool.Pool) *PostgresPropertyRepository {
	return &PostgresPropertyRepository{pool: pool}
}

const propertyColumns = `id, name, COALESCE(pms_property_id, '') as pms_property_id, document, created_at, updated_at`

func (r *PostgresPropertyRepository) scanProperty(row pgx.Row) (*domain.Property, error) {
	property := &domain.Property{}
	var document []byte
	err := row.Scan(
		&property.ID,
		&property.Name,
		&property.PMSPropertyID,
		&document,
		&property.CreatedAt,
		&property.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	var doc propertyDocument
	if err := json.Unmarshal(document, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode property document %s: %w", property.ID, err)
	}
	property.Config = doc.Config
	property.Profiles = doc.Profiles
	return property, nil
}

func encodeDocument(property *domain.Property) ([]byte, error) {
	return json.Marshal(propertyDocument{
		Config:   property.Config,
		Profiles: property.Profiles,
	})
}

// Create inserts a new property
func (r *PostgresPropertyRepository) Create(ctx context.Context, property *domain.Property) error {
	document, err := encodeDocument(property)
	if err != nil {
		return fmt.Errorf("failed to encode property document: %w", err)
	}

	query := `
		INSERT INTO properties (id, name, pms_property_id, document, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err = r.pool.Exec(ctx, query,
		property.ID,
		property.Name,
		property.PMSPropertyID,
		document,
		property.CreatedAt,
		property.UpdatedAt,
	)
	return err
}

// GetByID retrieves a property by ID
func (r *PostgresPropertyRepository) GetByID(ctx context.Context, id string) (*domain.Property, error) {
	query := `SELECT ` + propertyColumns + ` FROM properties WHERE id = $1`
	return r.scanProperty(r.pool.QueryRow(ctx, query, id))
}

// List returns all properties ordered by creation time
func (r *PostgresPropertyRepository) List(ctx context.Context) ([]*domain.Property, error) {
	query := `SELECT ` + propertyColumns + ` FROM properties ORDER BY created_at`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var properties []*domain.Property
	for rows.Next() {
		property, err := r.scanProperty(rows)
		if err != nil {
			return nil, err
		}
		properties = append(properties, property)
	}
	return properties, rows.Err()
}

// Update overwrites the stored configuration
func (r *PostgresPropertyRepository) Update(ctx context.Context, property *domain.Property) error {
	document, err := encodeDocument(property)
	if err != nil {
		return fmt.Errorf("failed to encode property document: %w", err)
	}

	property.UpdatedAt = time.Now()
	query := `
		UPDATE properties
		SET name = $2, pms_property_id = $3, document = $4, updated_at = $5
		WHERE id = $1
	`
	tag, err := r.pool.Exec(ctx, query,
		property.ID,
		property.Name,
		property.PMSPropertyID,
		document,
		property.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("property %s not found", property.ID)
	}
	return nil
}

// Delete removes a property
func (r *PostgresPropertyRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM properties WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("property %s not found", id)
	}
	return nil
}
