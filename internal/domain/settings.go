package domain

// MealOption represents the meal plan offered with a room for a season
type MealOption string

// Meal plan options
const (
	MealOptionNone      MealOption = "none"
	MealOptionBreakfast MealOption = "breakfast"
	MealOptionFull      MealOption = "full"
)

// GlobalSettings holds property-wide pricing defaults. It is passed explicitly
// to every calculation; the engine keeps no ambient configuration state.
type GlobalSettings struct {
	// DefaultObp is the per-missing-person deduction used when neither the
	// room nor the season overrides it (PLN).
	DefaultObp float64 `json:"default_obp"`
	// ObpEnabled is the property-wide occupancy-based-pricing switch.
	ObpEnabled bool `json:"obp_enabled"`
	// MealPlanEnabled toggles the meal plan feature for the whole property.
	MealPlanEnabled bool `json:"meal_plan_enabled"`
	// DefaultBreakfastPrice is the per-person breakfast price used when the
	// room does not set its own (PLN).
	DefaultBreakfastPrice float64 `json:"default_breakfast_price"`
	// DefaultFullBoardPrice is the per-person full board price used when the
	// room does not set its own (PLN).
	DefaultFullBoardPrice float64 `json:"default_full_board_price"`
}

// DefaultGlobalSettings returns the settings a freshly created property starts with
func DefaultGlobalSettings() GlobalSettings {
	return GlobalSettings{
		DefaultObp:            30,
		ObpEnabled:            true,
		MealPlanEnabled:       false,
		DefaultBreakfastPrice: 50,
		DefaultFullBoardPrice: 100,
	}
}
