package domain

// Room represents one bookable unit type of a property
type Room struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	MaxOccupancy int    `json:"max_occupancy"`
	UnitCount    int    `json:"unit_count"`

	// BasePricePeak is the owner's asking price at peak season for a full room (PLN)
	BasePricePeak float64 `json:"base_price_peak"`
	// SeasonBasePrices overrides BasePricePeak per season id
	SeasonBasePrices map[string]float64 `json:"season_base_prices,omitempty"`

	// MealOptions maps season id to the meal plan sold with the room that season
	MealOptions map[string]MealOption `json:"meal_options,omitempty"`
	// BreakfastPrice and FullBoardPrice are per-person per-night room-specific
	// meal prices; nil means use the property default
	BreakfastPrice *float64 `json:"breakfast_price,omitempty"`
	FullBoardPrice *float64 `json:"full_board_price,omitempty"`

	// ObpPerPerson overrides the per-missing-person deduction for this room
	ObpPerPerson *float64 `json:"obp_per_person,omitempty"`
	// MinObpOccupancy floors the effective occupancy used for the OBP
	// deduction; 0 means no floor
	MinObpOccupancy int `json:"min_obp_occupancy,omitempty"`
	// ObpSeasons toggles OBP per season for this room; an absent season id
	// means OBP stays active
	ObpSeasons map[string]bool `json:"obp_seasons,omitempty"`
	// ObpOccupancies toggles OBP per occupancy level; an absent level means
	// the deduction applies
	ObpOccupancies map[int]bool `json:"obp_occupancies,omitempty"`
}

// BasePriceFor returns the room's base price for a season, falling back to the
// peak price when the season has no override
func (r *Room) BasePriceFor(seasonID string) float64 {
	if p, ok := r.SeasonBasePrices[seasonID]; ok {
		return p
	}
	return r.BasePricePeak
}

// MealOptionFor returns the meal plan sold with the room for a season,
// defaulting to none
func (r *Room) MealOptionFor(seasonID string) MealOption {
	if opt, ok := r.MealOptions[seasonID]; ok && opt != "" {
		return opt
	}
	return MealOptionNone
}

// MealPriceFor resolves the per-person price of a meal option: room override
// first, then the property default
func (r *Room) MealPriceFor(opt MealOption, settings GlobalSettings) float64 {
	switch opt {
	case MealOptionBreakfast:
		if r.BreakfastPrice != nil {
			return *r.BreakfastPrice
		}
		return settings.DefaultBreakfastPrice
	case MealOptionFull:
		if r.FullBoardPrice != nil {
			return *r.FullBoardPrice
		}
		return settings.DefaultFullBoardPrice
	default:
		return 0
	}
}

// ObpActiveFor reports whether this room takes the OBP deduction in a season
func (r *Room) ObpActiveFor(seasonID string) bool {
	if active, ok := r.ObpSeasons[seasonID]; ok {
		return active
	}
	return true
}

// ObpEligibleAt reports whether the OBP deduction applies at a given occupancy
func (r *Room) ObpEligibleAt(occupancy int) bool {
	if eligible, ok := r.ObpOccupancies[occupancy]; ok {
		return eligible
	}
	return true
}
