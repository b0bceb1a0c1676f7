package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jakubodys-twoje-pokoje/TP-Cenniki-sub000/internal/domain"
	"github.com/jakubodys-twoje-pokoje/TP-Cenniki-sub000/internal/dto"
	"github.com/jakubodys-twoje-pokoje/TP-Cenniki-sub000/internal/pricing"
	"github.com/jakubodys-twoje-pokoje/TP-Cenniki-sub000/internal/repository"
	"github.com/jakubodys-twoje-pokoje/TP-Cenniki-sub000/pkg/logger"
)

// propertyService implements the PropertyService interface
type propertyService struct {
	propertyRepo repository.PropertyRepository
}

// NewPropertyService creates a new PropertyService
func NewPropertyService(propertyRepo repository.PropertyRepository) PropertyService {
	return &propertyService{propertyRepo: propertyRepo}
}

// CreateProperty creates a new property. A supplied configuration must
// validate before anything is stored.
func (s *propertyService) CreateProperty(ctx context.Context, req *dto.CreatePropertyRequest) (*domain.Property, error) {
	if req.Name == "" {
		return nil, domain.ErrPropertyNameRequired
	}

	property := domain.NewProperty(req.Name, req.PMSPropertyID)
	if req.Config != nil {
		if err := pricing.ValidateConfig(req.Config); err != nil {
			return nil, err
		}
		property.Config = *req.Config
	}

	if err := s.propertyRepo.Create(ctx, property); err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "property created",
		zap.String("property_id", property.ID),
		zap.String("name", property.Name))
	return property, nil
}

// GetProperty retrieves a property by ID
func (s *propertyService) GetProperty(ctx context.Context, id string) (*domain.Property, error) {
	property, err := s.propertyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, ErrPropertyNotFound
	}
	return property, nil
}

// ListProperties lists all properties
func (s *propertyService) ListProperties(ctx context.Context) ([]*domain.Property, error) {
	return s.propertyRepo.List(ctx)
}

// UpdateProperty replaces the live configuration of a property. The new
// configuration must validate as a whole; a rejected update leaves the
// stored configuration untouched.
func (s *propertyService) UpdateProperty(ctx context.Context, id string, req *dto.UpdatePropertyRequest) (*domain.Property, error) {
	property, err := s.propertyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, ErrPropertyNotFound
	}

	if err := pricing.ValidateConfig(&req.Config); err != nil {
		return nil, err
	}

	if req.Name != "" {
		property.Name = req.Name
	}
	property.Config = req.Config

	if err := s.propertyRepo.Update(ctx, property); err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "property configuration updated",
		zap.String("property_id", property.ID),
		zap.Int("rooms", len(property.Config.Rooms)),
		zap.Int("seasons", len(property.Config.Seasons)),
		zap.Int("channels", len(property.Config.Channels)))
	return property, nil
}

// DeleteProperty removes a property
func (s *propertyService) DeleteProperty(ctx context.Context, id string) error {
	property, err := s.propertyRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if property == nil {
		return ErrPropertyNotFound
	}
	return s.propertyRepo.Delete(ctx, id)
}

// SaveProfile snapshots the current live configuration under a name so it
// can be priced against later without touching the live configuration
func (s *propertyService) SaveProfile(ctx context.Context, propertyID string, req *dto.SaveProfileRequest) (*domain.Profile, error) {
	property, err := s.propertyRepo.GetByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, ErrPropertyNotFound
	}

	profile := domain.Profile{
		ID:     uuid.New().String(),
		Name:   req.Name,
		Config: property.Config,
	}
	property.Profiles = append(property.Profiles, profile)

	if err := s.propertyRepo.Update(ctx, property); err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "profile saved",
		zap.String("property_id", propertyID),
		zap.String("profile_id", profile.ID),
		zap.String("name", profile.Name))
	return &profile, nil
}

// DeleteProfile removes a stored snapshot
func (s *propertyService) DeleteProfile(ctx context.Context, propertyID, profileID string) error {
	property, err := s.propertyRepo.GetByID(ctx, propertyID)
	if err != nil {
		return err
	}
	if property == nil {
		return ErrPropertyNotFound
	}

	kept := property.Profiles[:0]
	found := false
	for _, profile := range property.Profiles {
		if profile.ID == profileID {
			found = true
			continue
		}
		kept = append(kept, profile)
	}
	if !found {
		return domain.ErrProfileNotFound
	}
	property.Profiles = kept

	return s.propertyRepo.Update(ctx, property)
}
