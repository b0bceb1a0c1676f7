package pricing

import (
	"fmt"

	"github.com/jakubodys-twoje-pokoje/TP-Cenniki-sub000/internal/domain"
)

// ValidateRoom checks the structural invariants of a room configuration
func ValidateRoom(room *domain.Room) error {
	if room.MaxOccupancy < 1 {
		return fmt.Errorf("room %s: %w", room.ID, ErrInvalidMaxOccupancy)
	}
	return nil
}

// ValidateSeason checks the structural invariants of a season configuration.
// The engine itself takes the multiplier as given; rejecting a non-positive
// one here keeps it from ever reaching a calculation.
func ValidateSeason(season *domain.Season) error {
	if season.Multiplier <= 0 {
		return fmt.Errorf("season %s: %w", season.ID, ErrInvalidMultiplier)
	}
	if season.EndDate.Before(season.StartDate) {
		return fmt.Errorf("season %s: end date precedes start date", season.ID)
	}
	return nil
}

// ValidateChannel rejects any channel whose discount stack and commission
// could consume the entire list price, for the base stack and for every
// season override. Percentages outside 0-100 are rejected outright.
func ValidateChannel(channel *domain.Channel, seasonIDs []string) error {
	if channel.CommissionPercent < 0 || channel.CommissionPercent > 100 {
		return fmt.Errorf("channel %s commission: %w", channel.ID, ErrInvalidPercent)
	}
	for kind, d := range channel.Discounts {
		if d.Percent < 0 || d.Percent > 100 {
			return fmt.Errorf("channel %s discount %s: %w", channel.ID, kind, ErrInvalidPercent)
		}
	}
	for seasonID, overrides := range channel.SeasonDiscounts {
		for kind, d := range overrides {
			if d.Percent < 0 || d.Percent > 100 {
				return fmt.Errorf("channel %s season %s discount %s: %w", channel.ID, seasonID, kind, ErrInvalidPercent)
			}
		}
	}

	// Probe the waterfall seasonless and for every season so an override
	// can never sneak a non-positive retained factor past validation.
	if err := probeRetainedFactor(channel, ""); err != nil {
		return err
	}
	for _, seasonID := range seasonIDs {
		if err := probeRetainedFactor(channel, seasonID); err != nil {
			return err
		}
	}
	return nil
}

// ValidateConfig validates a whole property configuration; the first broken
// invariant is reported
func ValidateConfig(cfg *domain.PropertyConfig) error {
	for i := range cfg.Rooms {
		if err := ValidateRoom(&cfg.Rooms[i]); err != nil {
			return err
		}
	}
	for i := range cfg.Seasons {
		if err := ValidateSeason(&cfg.Seasons[i]); err != nil {
			return err
		}
	}
	seasonIDs := cfg.SeasonIDs()
	for i := range cfg.Channels {
		if err := ValidateChannel(&cfg.Channels[i], seasonIDs); err != nil {
			return err
		}
	}
	return nil
}

func probeRetainedFactor(channel *domain.Channel, seasonID string) error {
	total := channel.CommissionPercent
	factor := 1 - channel.CommissionPercent/100
	for _, kind := range domain.DiscountKinds() {
		pct := channel.DiscountPercentFor(kind, seasonID)
		total += pct
		factor *= 1 - pct/100
	}
	if total >= 100 || factor <= 0 {
		if seasonID == "" {
			return fmt.Errorf("channel %s: %w", channel.ID, ErrInvalidChannelConfig)
		}
		return fmt.Errorf("channel %s season %s: %w", channel.ID, seasonID, ErrInvalidChannelConfig)
	}
	return nil
}
