package service

import (
	"context"
	"testing"

	"github.com/jakubodys-twoje-pokoje/TP-Cenniki-sub000/internal/domain"
	"github.com/jakubodys-twoje-pokoje/TP-Cenniki-sub000/internal/repository"
)

func testPropertyConfig() domain.PropertyConfig {
	return domain.PropertyConfig{
		Rooms: []domain.Room{
			{ID: "r1", Name: "Dwójka", MaxOccupancy: 2, UnitCount: 1, BasePricePeak: 200},
			{ID: "r2", Name: "Czwórka", MaxOccupancy: 4, UnitCount: 2, BasePricePeak: 400},
		},
		Seasons: []domain.Season{
			{ID: "summer", Name: "Lato", Multiplier: 1.0, MinNights: 3, ObpEnabled: true},
			{ID: "winter", Name: "Zima", Multiplier: 0.8, MinNights: 2, ObpEnabled: true},
		},
		Channels: []domain.Channel{
			{ID: "direct", Name: "Strona własna"},
			{
				ID: "booking", Name: "Booking.com", CommissionPercent: 20,
				Discounts: map[domain.DiscountKind]domain.Discount{
					domain.DiscountMobile: {Percent: 10, Enabled: true},
				},
			},
		},
		Settings: domain.GlobalSettings{
			DefaultObp: 30,
			ObpEnabled: true,
		},
	}
}

// seedProperty stores a configured property and returns it together with
// the repository it lives in
func seedProperty(t *testing.T) (*repository.MemoryPropertyRepository, *domain.Property) {
	t.Helper()

	repo := repository.NewMemoryPropertyRepository()
	property := domain.NewProperty("Willa Bałtyk", "pms-100")
	property.Config = testPropertyConfig()
	if err := repo.Create(context.Background(), property); err != nil {
		t.Fatalf("seed property: %v", err)
	}
	return repo, property
}
