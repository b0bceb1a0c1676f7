package domain

import "time"

// Season represents a pricing period of the calendar year
type Season struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	// StartDate and EndDate bound the season inclusively. Overlap between
	// seasons is a configuration concern, not validated here.
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	// Multiplier scales room base prices for this season (typically 0.5-2.0)
	Multiplier float64 `json:"multiplier"`
	MinNights  int     `json:"min_nights"`
	// ObpEnabled toggles occupancy-based pricing for this season
	ObpEnabled bool `json:"obp_enabled"`
	// ObpPerPerson overrides the property-wide deduction for this season
	ObpPerPerson *float64 `json:"obp_per_person,omitempty"`
}

// Contains reports whether a date falls inside the season (inclusive bounds)
func (s *Season) Contains(t time.Time) bool {
	day := t.Truncate(24 * time.Hour)
	return !day.Before(s.StartDate.Truncate(24*time.Hour)) &&
		!day.After(s.EndDate.Truncate(24*time.Hour))
}
