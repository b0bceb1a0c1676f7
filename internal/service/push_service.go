package service

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/jakubodys-twoje-pokoje/TP-Cenniki-sub000/internal/client"
	"github.com/jakubodys-twoje-pokoje/TP-Cenniki-sub000/internal/domain"
	"github.com/jakubodys-twoje-pokoje/TP-Cenniki-sub000/internal/dto"
	"github.com/jakubodys-twoje-pokoje/TP-Cenniki-sub000/internal/events"
	"github.com/jakubodys-twoje-pokoje/TP-Cenniki-sub000/internal/pricing"
	"github.com/jakubodys-twoje-pokoje/TP-Cenniki-sub000/internal/repository"
	"github.com/jakubodys-twoje-pokoje/TP-Cenniki-sub000/pkg/logger"
	"github.com/jakubodys-twoje-pokoje/TP-Cenniki-sub000/pkg/telemetry"
)

const dateLayout = "2006-01-02"

// pushService implements the PushService interface
type pushService struct {
	propertyRepo repository.PropertyRepository
	pmsClient    client.PMSClient
	audit        events.AuditPublisher
	pushCounter  *telemetry.Counter
}

// NewPushService creates a new PushService
func NewPushService(propertyRepo repository.PropertyRepository, pmsClient client.PMSClient, audit events.AuditPublisher) PushService {
	pushCounter, err := telemetry.NewCounter(telemetry.MetricOpts{
		Name:        "cenniki.push.attempts",
		Description: "Price push attempts by outcome",
		Unit:        "{attempt}",
	})
	if err != nil {
		logger.Warn("failed to create push counter", zap.Error(err))
	}
	return &pushService{
		propertyRepo: propertyRepo,
		pmsClient:    pmsClient,
		audit:        audit,
		pushCounter:  pushCounter,
	}
}

// PushPrices computes the per-occupancy list prices for one room and season
// and transmits them to the PMS, one update per channel. The remote write is
// destructive and happens only on this explicit request; channels fail
// independently and every attempt is audited.
func (s *pushService) PushPrices(ctx context.Context, propertyID string, req *dto.PushPricesRequest) (*dto.PushPricesResponse, error) {
	property, err := s.propertyRepo.GetByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, ErrPropertyNotFound
	}
	if property.PMSPropertyID == "" {
		return nil, ErrPMSNotLinked
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

	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: start_date %q", ErrInvalidDateRange, req.StartDate)
	}
	end, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("%w: end_date %q", ErrInvalidDateRange, req.EndDate)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("%w: end_date before start_date", ErrInvalidDateRange)
	}

	channels := s.resolveChannels(cfg, req.ChannelIDs)
	ladder := pricing.Ladder(room, season, cfg.Channels, cfg.Settings)
	attemptedAt := time.Now()

	results := make([]dto.PushChannelResult, 0, len(channels))
	for _, target := range channels {
		result := s.pushChannel(ctx, property, room, season, target, ladder, req)
		results = append(results, result)

		if s.pushCounter != nil {
			outcome := "failure"
			if result.Success {
				outcome = "success"
			}
			s.pushCounter.Inc(ctx,
				attribute.String("outcome", outcome),
				attribute.String("channel_id", result.ChannelID))
		}

		s.audit.PublishPushResult(ctx, &events.PushAuditEvent{
			PropertyID:  propertyID,
			RoomID:      room.ID,
			ChannelID:   result.ChannelID,
			StartDate:   req.StartDate,
			EndDate:     req.EndDate,
			MinNights:   season.MinNights,
			Success:     result.Success,
			Error:       result.Error,
			AttemptedAt: attemptedAt,
		})
	}

	return &dto.PushPricesResponse{
		PropertyID:  propertyID,
		RoomID:      room.ID,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		MinNights:   season.MinNights,
		Results:     results,
		AttemptedAt: attemptedAt,
	}, nil
}

// resolveChannels picks the push targets: the requested ids in request
// order, or every configured channel when none were named. Unknown ids
// become placeholder targets so the caller sees a per-channel error
// instead of a rejected request.
func (s *pushService) resolveChannels(cfg *domain.PropertyConfig, ids []string) []*domain.Channel {
	if len(ids) == 0 {
		channels := make([]*domain.Channel, len(cfg.Channels))
		for i := range cfg.Channels {
			channels[i] = &cfg.Channels[i]
		}
		return channels
	}
	channels := make([]*domain.Channel, 0, len(ids))
	for _, id := range ids {
		if ch := cfg.ChannelByID(id); ch != nil {
			channels = append(channels, ch)
		} else {
			channels = append(channels, &domain.Channel{ID: id})
		}
	}
	return channels
}

func (s *pushService) pushChannel(ctx context.Context, property *domain.Property, room *domain.Room, season *domain.Season, channel *domain.Channel, ladder []pricing.PricingRow, req *dto.PushPricesRequest) dto.PushChannelResult {
	result := dto.PushChannelResult{
		ChannelID:   channel.ID,
		ChannelName: channel.Name,
	}
	if channel.Name == "" {
		result.Error = "unknown channel"
		return result
	}

	prices := make(map[int]int, len(ladder))
	for _, row := range ladder {
		calc, ok := row.Channels[channel.ID]
		if !ok || calc == nil {
			result.Error = "channel missing from pricing grid"
			return result
		}
		if !calc.Valid {
			result.Error = calc.Error
			return result
		}
		prices[row.Occupancy] = calc.ListPrice
	}

	update := &client.PriceUpdate{
		PropertyID:      property.PMSPropertyID,
		RoomTypeID:      room.ID,
		ChannelCode:     channel.ID,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		MinNights:       season.MinNights,
		OccupancyPrices: prices,
	}
	if err := s.pmsClient.PushPrices(ctx, update); err != nil {
		logger.WarnCtx(ctx, "price push failed",
			zap.String("property_id", property.ID),
			zap.String("room_id", room.ID),
			zap.String("channel_id", channel.ID),
			zap.Error(err))
		result.Error = err.Error()
		return result
	}

	result.Success = true
	result.Prices = prices
	logger.InfoCtx(ctx, "prices pushed",
		zap.String("property_id", property.ID),
		zap.String("room_id", room.ID),
		zap.String("channel_id", channel.ID),
		zap.Int("occupancies", len(prices)))
	return result
}
