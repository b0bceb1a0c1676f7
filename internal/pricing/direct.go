package pricing

import (
	"math"

	"github.com/jakubodys-twoje-pokoje/TP-Cenniki-sub000/internal/domain"
)

// MinDirectPrice is the sanity floor for any computed nightly price (PLN).
// It keeps misconfigured rooms from publishing zero or negative prices; it is
// not a business rule.
const MinDirectPrice = 50

// DirectPrice computes the owner's net asking price for one room, season and
// occupancy: seasonal base price times the season multiplier, minus the
// occupancy-based deduction for every missing guest, plus the meal plan for
// every present guest. The result is floored at MinDirectPrice and ceiled to
// a whole PLN.
func DirectPrice(room *domain.Room, season *domain.Season, occupancy int, settings domain.GlobalSettings) int {
	price := room.BasePriceFor(season.ID) * season.Multiplier

	if obpActive(room, season, occupancy, settings) {
		// The occupancy floor can shrink the deduction when it exceeds the
		// actual occupancy; that asymmetry is intentional.
		effective := occupancy
		if min := room.MinObpOccupancy; min >= 1 && effective < min {
			effective = min
		}
		if missing := room.MaxOccupancy - effective; missing > 0 {
			price -= float64(missing) * obpPerPerson(room, season, settings)
		}
	}

	if settings.MealPlanEnabled {
		if opt := room.MealOptionFor(season.ID); opt != domain.MealOptionNone {
			price += room.MealPriceFor(opt, settings) * float64(occupancy)
		}
	}

	if price < MinDirectPrice {
		price = MinDirectPrice
	}
	return int(math.Ceil(price))
}

// obpActive resolves the OBP switch chain: global flag, season flag, the
// room's per-season toggle and its per-occupancy eligibility
func obpActive(room *domain.Room, season *domain.Season, occupancy int, settings domain.GlobalSettings) bool {
	return settings.ObpEnabled &&
		season.ObpEnabled &&
		room.ObpActiveFor(season.ID) &&
		room.ObpEligibleAt(occupancy)
}

// obpPerPerson resolves the per-missing-person deduction: room override,
// then season override, then the property default
func obpPerPerson(room *domain.Room, season *domain.Season, settings domain.GlobalSettings) float64 {
	if room.ObpPerPerson != nil {
		return *room.ObpPerPerson
	}
	if season.ObpPerPerson != nil {
		return *season.ObpPerPerson
	}
	return settings.DefaultObp
}
