package pricing

import (
	"testing"

	"github.com/jakubodys-twoje-pokoje/TP-Cenniki-sub000/internal/domain"
)

func floatPtr(v float64) *float64 {
	return &v
}

func testSettings() domain.GlobalSettings {
	return domain.GlobalSettings{
		DefaultObp:            30,
		ObpEnabled:            true,
		MealPlanEnabled:       false,
		DefaultBreakfastPrice: 50,
		DefaultFullBoardPrice: 100,
	}
}

func testSeason(multiplier float64) domain.Season {
	return domain.Season{
		ID:         "summer",
		Name:       "Lato",
		Multiplier: multiplier,
		ObpEnabled: true,
	}
}

func TestDirectPrice(t *testing.T) {
	tests := []struct {
		name      string
		room      domain.Room
		season    domain.Season
		occupancy int
		settings  domain.GlobalSettings
		want      int
	}{
		{
			name:      "full occupancy no deduction",
			room:      domain.Room{ID: "r1", MaxOccupancy: 2, BasePricePeak: 200},
			season:    testSeason(1.0),
			occupancy: 2,
			settings:  testSettings(),
			want:      200,
		},
		{
			name:      "one missing guest deducts default obp",
			room:      domain.Room{ID: "r1", MaxOccupancy: 2, BasePricePeak: 200},
			season:    testSeason(1.0),
			occupancy: 1,
			settings:  testSettings(),
			want:      170,
		},
		{
			name:      "multiplier scales before deduction",
			room:      domain.Room{ID: "r1", MaxOccupancy: 2, BasePricePeak: 200},
			season:    testSeason(1.5),
			occupancy: 1,
			settings:  testSettings(),
			want:      270,
		},
		{
			name: "season base price override wins over peak",
			room: domain.Room{
				ID: "r1", MaxOccupancy: 2, BasePricePeak: 200,
				SeasonBasePrices: map[string]float64{"summer": 300},
			},
			season:    testSeason(1.0),
			occupancy: 2,
			settings:  testSettings(),
			want:      300,
		},
		{
			name: "room obp override wins over default",
			room: domain.Room{
				ID: "r1", MaxOccupancy: 3, BasePricePeak: 300,
				ObpPerPerson: floatPtr(40),
			},
			season:    testSeason(1.0),
			occupancy: 1,
			settings:  testSettings(),
			want:      220,
		},
		{
			name:      "season obp override wins over default",
			room:      domain.Room{ID: "r1", MaxOccupancy: 2, BasePricePeak: 200},
			season:    domain.Season{ID: "summer", Multiplier: 1.0, ObpEnabled: true, ObpPerPerson: floatPtr(20)},
			occupancy: 1,
			settings:  testSettings(),
			want:      180,
		},
		{
			name: "occupancy floor shrinks the deduction",
			room: domain.Room{
				ID: "r1", MaxOccupancy: 4, BasePricePeak: 400,
				MinObpOccupancy: 3,
			},
			season:    testSeason(1.0),
			occupancy: 1,
			settings:  testSettings(),
			// effective occupancy is max(1, 3) = 3, so only one guest is missing
			want: 370,
		},
		{
			name:      "global obp switch off",
			room:      domain.Room{ID: "r1", MaxOccupancy: 2, BasePricePeak: 200},
			season:    testSeason(1.0),
			occupancy: 1,
			settings: domain.GlobalSettings{
				DefaultObp: 30, ObpEnabled: false,
			},
			want: 200,
		},
		{
			name:      "season obp switch off",
			room:      domain.Room{ID: "r1", MaxOccupancy: 2, BasePricePeak: 200},
			season:    domain.Season{ID: "summer", Multiplier: 1.0, ObpEnabled: false},
			occupancy: 1,
			settings:  testSettings(),
			want:      200,
		},
		{
			name: "room disables obp for the season",
			room: domain.Room{
				ID: "r1", MaxOccupancy: 2, BasePricePeak: 200,
				ObpSeasons: map[string]bool{"summer": false},
			},
			season:    testSeason(1.0),
			occupancy: 1,
			settings:  testSettings(),
			want:      200,
		},
		{
			name: "room disables obp for one occupancy level",
			room: domain.Room{
				ID: "r1", MaxOccupancy: 2, BasePricePeak: 200,
				ObpOccupancies: map[int]bool{1: false},
			},
			season:    testSeason(1.0),
			occupancy: 1,
			settings:  testSettings(),
			want:      200,
		},
		{
			name: "breakfast added per present guest",
			room: domain.Room{
				ID: "r1", MaxOccupancy: 2, BasePricePeak: 200,
				MealOptions: map[string]domain.MealOption{"summer": domain.MealOptionBreakfast},
			},
			season:    testSeason(1.0),
			occupancy: 2,
			settings: domain.GlobalSettings{
				DefaultObp: 30, ObpEnabled: true, MealPlanEnabled: true,
				DefaultBreakfastPrice: 50, DefaultFullBoardPrice: 100,
			},
			want: 300,
		},
		{
			name: "room specific full board price",
			room: domain.Room{
				ID: "r1", MaxOccupancy: 2, BasePricePeak: 200,
				MealOptions:    map[string]domain.MealOption{"summer": domain.MealOptionFull},
				FullBoardPrice: floatPtr(80),
			},
			season:    testSeason(1.0),
			occupancy: 2,
			settings: domain.GlobalSettings{
				DefaultObp: 30, ObpEnabled: true, MealPlanEnabled: true,
				DefaultBreakfastPrice: 50, DefaultFullBoardPrice: 100,
			},
			want: 360,
		},
		{
			name: "meal ignored while feature is off",
			room: domain.Room{
				ID: "r1", MaxOccupancy: 2, BasePricePeak: 200,
				MealOptions: map[string]domain.MealOption{"summer": domain.MealOptionBreakfast},
			},
			season:    testSeason(1.0),
			occupancy: 2,
			settings:  testSettings(),
			want:      200,
		},
		{
			name:      "floor catches over-deducted price",
			room:      domain.Room{ID: "r1", MaxOccupancy: 6, BasePricePeak: 120},
			season:    testSeason(1.0),
			occupancy: 1,
			settings:  testSettings(),
			// 120 - 5*30 would be negative
			want: MinDirectPrice,
		},
		{
			name:      "fractional result rounds up",
			room:      domain.Room{ID: "r1", MaxOccupancy: 2, BasePricePeak: 133},
			season:    testSeason(1.1),
			occupancy: 2,
			settings:  testSettings(),
			// 133 * 1.1 = 146.3
			want: 147,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DirectPrice(&tt.room, &tt.season, tt.occupancy, tt.settings)
			if got != tt.want {
				t.Errorf("DirectPrice() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDirectPrice_MonotonicInOccupancy(t *testing.T) {
	room := domain.Room{ID: "r1", MaxOccupancy: 6, BasePricePeak: 500}
	season := testSeason(1.2)
	settings := testSettings()

	prev := 0
	for occupancy := 1; occupancy <= room.MaxOccupancy; occupancy++ {
		price := DirectPrice(&room, &season, occupancy, settings)
		if price < prev {
			t.Fatalf("price dropped from %d to %d at occupancy %d", prev, price, occupancy)
		}
		if price < MinDirectPrice {
			t.Fatalf("price %d below floor at occupancy %d", price, occupancy)
		}
		prev = price
	}
}
