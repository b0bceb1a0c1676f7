package service

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/jakubodys-twoje-pokoje/TP-Cenniki-sub000/internal/dto"
	"github.com/jakubodys-twoje-pokoje/TP-Cenniki-sub000/internal/pricing"
	"github.com/jakubodys-twoje-pokoje/TP-Cenniki-sub000/internal/repository"
	"github.com/jakubodys-twoje-pokoje/TP-Cenniki-sub000/pkg/logger"
	"github.com/jakubodys-twoje-pokoje/TP-Cenniki-sub000/pkg/telemetry"
)

// Currency is the only currency the engine prices in
const Currency = "PLN"

// pricingService implements the PricingService interface
type pricingService struct {
	propertyRepo repository.PropertyRepository
	gridCounter  *telemetry.Counter
	gridDuration *telemetry.Histogram
}

// NewPricingService creates a new PricingService
func NewPricingService(propertyRepo repository.PropertyRepository) PricingService {
	gridCounter, err := telemetry.NewCounter(telemetry.MetricOpts{
		Name:        "cenniki.grid.computed",
		Description: "Number of pricing grids computed",
		Unit:        "{grid}",
	})
	if err != nil {
		logger.Warn("failed to create grid counter", zap.Error(err))
	}
	gridDuration, err := telemetry.NewHistogram(telemetry.MetricOpts{
		Name:        "cenniki.grid.duration",
		Description: "Time spent computing a pricing grid",
		Unit:        "ms",
	})
	if err != nil {
		logger.Warn("failed to create grid histogram", zap.Error(err))
	}
	return &pricingService{
		propertyRepo: propertyRepo,
		gridCounter:  gridCounter,
		gridDuration: gridDuration,
	}
}

// Grid computes the full pricing grid for a property. With no occupancy
// given every room is priced at its own maximum occupancy.
func (s *pricingService) Grid(ctx context.Context, propertyID string, req *dto.GridRequest) (*dto.GridResponse, error) {
	ctx, span := telemetry.StartSpan(ctx, "pricing.Grid")
	defer span.End()
	start := time.Now()

	property, err := s.propertyRepo.GetByID(ctx, propertyID)
	if err != nil {
		telemetry.SetSpanError(ctx, err)
		return nil, err
	}
	if property == nil {
		return nil, ErrPropertyNotFound
	}

	cfg, err := property.ConfigFor(req.ProfileID)
	if err != nil {
		return nil, err
	}

	mode := pricing.RoomMaxOccupancy()
	if req.Occupancy > 0 {
		mode = pricing.FixedOccupancy(req.Occupancy)
	}
	rows := pricing.BuildGrid(cfg.Rooms, cfg.Seasons, cfg.Channels, cfg.Settings, mode)

	if s.gridCounter != nil {
		s.gridCounter.Inc(ctx, attribute.String("property_id", propertyID))
	}
	if s.gridDuration != nil {
		s.gridDuration.Record(ctx, float64(time.Since(start).Milliseconds()))
	}
	logger.DebugCtx(ctx, "pricing grid computed",
		zap.String("property_id", propertyID),
		zap.String("profile_id", req.ProfileID),
		zap.Int("rows", len(rows)))

	return &dto.GridResponse{
		PropertyID: propertyID,
		ProfileID:  req.ProfileID,
		Currency:   Currency,
		Rows:       rows,
	}, nil
}

// Ladder prices one room in one season at every occupancy from one up to
// the room's maximum
func (s *pricingService) Ladder(ctx context.Context, propertyID string, req *dto.LadderRequest) (*dto.LadderResponse, error) {
	ctx, span := telemetry.StartSpan(ctx, "pricing.Ladder")
	defer span.End()

	property, err := s.propertyRepo.GetByID(ctx, propertyID)
	if err != nil {
		telemetry.SetSpanError(ctx, err)
		return nil, err
	}
	if property == nil {
		return nil, ErrPropertyNotFound
	}

	cfg, err := property.ConfigFor(req.ProfileID)
	if err != nil {
		return nil, err
	}
	room := cfg.RoomByID(req.RoomID)
	if room == nil {
		return nil, ErrRoomNotFound
	}
	season := cfg.SeasonByID(req.SeasonID)
	if season == nil {
		return nil, ErrSeasonNotFound
	}

	rows := pricing.Ladder(room, season, cfg.Channels, cfg.Settings)

	return &dto.LadderResponse{
		PropertyID: propertyID,
		RoomID:     req.RoomID,
		SeasonID:   req.SeasonID,
		Currency:   Currency,
		Rows:       rows,
	}, nil
}
