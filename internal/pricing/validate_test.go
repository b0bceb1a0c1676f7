package pricing

import (
	"errors"
	"testing"

	"github.com/jakubodys-twoje-pokoje/TP-Cenniki-sub000/internal/domain"
)

func TestValidateRoom(t *testing.T) {
	if err := ValidateRoom(&domain.Room{ID: "r1", MaxOccupancy: 1}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	err := ValidateRoom(&domain.Room{ID: "r1", MaxOccupancy: 0})
	if !errors.Is(err, ErrInvalidMaxOccupancy) {
		t.Errorf("expected ErrInvalidMaxOccupancy, got %v", err)
	}
}

func TestValidateSeason(t *testing.T) {
	tests := []struct {
		name       string
		multiplier float64
		wantErr    error
	}{
		{name: "typical multiplier", multiplier: 1.2},
		{name: "zero multiplier", multiplier: 0, wantErr: ErrInvalidMultiplier},
		{name: "negative multiplier", multiplier: -0.5, wantErr: ErrInvalidMultiplier},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSeason(&domain.Season{ID: "s1", Multiplier: tt.multiplier})
			if tt.wantErr == nil && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestValidateChannel(t *testing.T) {
	tests := []struct {
		name    string
		channel domain.Channel
		wantErr error
	}{
		{
			name: "healthy ota stack",
			channel: domain.Channel{
				ID: "booking", CommissionPercent: 20,
				Discounts: map[domain.DiscountKind]domain.Discount{
					domain.DiscountMobile: {Percent: 10, Enabled: true},
					domain.DiscountGenius: {Percent: 10, Enabled: true},
				},
			},
		},
		{
			name:    "degenerate direct channel",
			channel: domain.Channel{ID: "direct"},
		},
		{
			name: "retained factor hits zero",
			channel: domain.Channel{
				ID: "broken", CommissionPercent: 60,
				Discounts: map[domain.DiscountKind]domain.Discount{
					domain.DiscountMobile: {Percent: 50, Enabled: true},
				},
			},
			wantErr: ErrInvalidChannelConfig,
		},
		{
			name: "commission out of range",
			channel: domain.Channel{
				ID: "broken", CommissionPercent: 120,
			},
			wantErr: ErrInvalidPercent,
		},
		{
			name: "discount percent out of range",
			channel: domain.Channel{
				ID: "broken",
				Discounts: map[domain.DiscountKind]domain.Discount{
					domain.DiscountMobile: {Percent: -5, Enabled: true},
				},
			},
			wantErr: ErrInvalidPercent,
		},
		{
			name: "season override breaks the stack",
			channel: domain.Channel{
				ID: "booking", CommissionPercent: 20,
				Discounts: map[domain.DiscountKind]domain.Discount{
					domain.DiscountMobile: {Percent: 10, Enabled: true},
				},
				SeasonDiscounts: map[string]map[domain.DiscountKind]domain.Discount{
					"summer": {
						domain.DiscountMobile: {Percent: 100, Enabled: true},
					},
				},
			},
			wantErr: ErrInvalidChannelConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateChannel(&tt.channel, []string{"summer", "winter"})
			if tt.wantErr == nil && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestValidateConfig(t *testing.T) {
	cfg := testConfig()
	if err := ValidateConfig(&cfg); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	cfg.Seasons[0].Multiplier = 0
	if err := ValidateConfig(&cfg); !errors.Is(err, ErrInvalidMultiplier) {
		t.Errorf("expected ErrInvalidMultiplier, got %v", err)
	}
}
