package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/jakubodys-twoje-pokoje/TP-Cenniki-sub000/internal/client"
	"github.com/jakubodys-twoje-pokoje/TP-Cenniki-sub000/internal/domain"
	"github.com/jakubodys-twoje-pokoje/TP-Cenniki-sub000/internal/dto"
	"github.com/jakubodys-twoje-pokoje/TP-Cenniki-sub000/internal/repository"
	"github.com/jakubodys-twoje-pokoje/TP-Cenniki-sub000/pkg/logger"
	"github.com/jakubodys-twoje-pokoje/TP-Cenniki-sub000/pkg/telemetry"
)

// OccupancyCache stores computed occupancy summaries for a short time so
// repeated dashboard reads do not hammer the PMS
type OccupancyCache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}

// occupancyService implements the OccupancyService interface
type occupancyService struct {
	propertyRepo repository.PropertyRepository
	pmsClient    client.PMSClient
	cache        OccupancyCache
	cacheTTL     time.Duration
	cacheCounter *telemetry.Counter
}

// NewOccupancyService creates a new OccupancyService. Cache may be nil,
// in which case every read goes to the PMS.
func NewOccupancyService(propertyRepo repository.PropertyRepository, pmsClient client.PMSClient, cache OccupancyCache, cacheTTL time.Duration) OccupancyService {
	cacheCounter, err := telemetry.NewCounter(telemetry.MetricOpts{
		Name:        "cenniki.occupancy.cache",
		Description: "Occupancy cache lookups by result",
		Unit:        "{lookup}",
	})
	if err != nil {
		logger.Warn("failed to create occupancy cache counter", zap.Error(err))
	}
	return &occupancyService{
		propertyRepo: propertyRepo,
		pmsClient:    pmsClient,
		cache:        cache,
		cacheTTL:     cacheTTL,
		cacheCounter: cacheCounter,
	}
}

func (s *occupancyService) countCache(ctx context.Context, hit bool) {
	if s.cacheCounter == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	s.cacheCounter.Inc(ctx, attribute.String("result", result))
}

// Occupancy reports the booked share of room-nights over a date range,
// aggregated across every room of the property
func (s *occupancyService) Occupancy(ctx context.Context, propertyID string, req *dto.OccupancyRequest) (*dto.OccupancyResponse, error) {
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

	rooms := property.Config.Rooms
	if req.RoomID != "" {
		room := property.Config.RoomByID(req.RoomID)
		if room == nil {
			return nil, ErrRoomNotFound
		}
		rooms = []domain.Room{*room}
	}

	cacheKey := fmt.Sprintf("occupancy:%s:%s:%s:%s", propertyID, req.RoomID, req.StartDate, req.EndDate)
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, cacheKey); err == nil && cached != "" {
			var resp dto.OccupancyResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				resp.FromCache = true
				s.countCache(ctx, true)
				return &resp, nil
			}
		}
		s.countCache(ctx, false)
	}

	totalNights := 0
	bookedNights := 0
	for i := range rooms {
		room := &rooms[i]
		days, err := s.pmsClient.FetchAvailability(ctx, &client.AvailabilityRequest{
			PropertyID: property.PMSPropertyID,
			RoomTypeID: room.ID,
			StartDate:  req.StartDate,
			EndDate:    req.EndDate,
		})
		if err != nil {
			return nil, fmt.Errorf("fetch availability for room %s: %w", room.ID, err)
		}

		units := room.UnitCount
		if units < 1 {
			units = 1
		}
		totalNights += len(days) * units
		for _, day := range days {
			if !day.Available {
				bookedNights += units
			}
		}
	}

	resp := &dto.OccupancyResponse{
		PropertyID:   propertyID,
		RoomID:       req.RoomID,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		TotalNights:  totalNights,
		BookedNights: bookedNights,
	}
	if totalNights > 0 {
		resp.OccupancyPercent = int(math.Round(float64(bookedNights) / float64(totalNights) * 100))
	}

	if s.cache != nil {
		payload, err := json.Marshal(resp)
		if err == nil {
			if err := s.cache.Set(ctx, cacheKey, string(payload), s.cacheTTL); err != nil {
				logger.WarnCtx(ctx, "failed to cache occupancy", zap.Error(err))
			}
		}
	}
	return resp, nil
}
