package service

import (
	"context"

	"github.com/jakubodys-twoje-pokoje/TP-Cenniki-sub000/internal/domain"
	"github.com/jakubodys-twoje-pokoje/TP-Cenniki-sub000/internal/dto"
)

// PropertyService manages property configurations and their profiles
type PropertyService interface {
	CreateProperty(ctx context.Context, req *dto.CreatePropertyRequest) (*domain.Property, error)
	GetProperty(ctx context.Context, id string) (*domain.Property, error)
	ListProperties(ctx context.Context) ([]*domain.Property, error)
	UpdateProperty(ctx context.Context, id string, req *dto.UpdatePropertyRequest) (*domain.Property, error)
	DeleteProperty(ctx context.Context, id string) error
	SaveProfile(ctx context.Context, propertyID string, req *dto.SaveProfileRequest) (*domain.Profile, error)
	DeleteProfile(ctx context.Context, propertyID, profileID string) error
}

// PricingService computes price grids and ladders from stored configurations
type PricingService interface {
	Grid(ctx context.Context, propertyID string, req *dto.GridRequest) (*dto.GridResponse, error)
	Ladder(ctx context.Context, propertyID string, req *dto.LadderRequest) (*dto.LadderResponse, error)
}

// PushService transmits computed prices to the property management system
type PushService interface {
	PushPrices(ctx context.Context, propertyID string, req *dto.PushPricesRequest) (*dto.PushPricesResponse, error)
}

// OccupancyService reads how booked a property is over a date range
type OccupancyService interface {
	Occupancy(ctx context.Context, propertyID string, req *dto.OccupancyRequest) (*dto.OccupancyResponse, error)
}
