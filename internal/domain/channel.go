package domain

// DiscountKind identifies one of the named discounts a channel can run
type DiscountKind string

// Discount kinds. DiscountKinds returns them in the canonical evaluation order.
const (
	DiscountMobile      DiscountKind = "mobile"
	DiscountGenius      DiscountKind = "genius"
	DiscountSeasonal    DiscountKind = "seasonal"
	DiscountFirstMinute DiscountKind = "firstMinute"
	DiscountLastMinute  DiscountKind = "lastMinute"
)

// DiscountKinds returns every discount kind in canonical order
func DiscountKinds() []DiscountKind {
	return []DiscountKind{
		DiscountMobile,
		DiscountGenius,
		DiscountSeasonal,
		DiscountFirstMinute,
		DiscountLastMinute,
	}
}

// Discount is one entry of a channel's discount stack
type Discount struct {
	Percent float64 `json:"percent"`
	Enabled bool    `json:"enabled"`
}

// Channel represents a sales channel (direct booking or an OTA)
type Channel struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	// CommissionPercent is the channel's cut of the sold price (0-100)
	CommissionPercent float64 `json:"commission_percent"`
	// Discounts is the channel's base discount stack
	Discounts map[DiscountKind]Discount `json:"discounts,omitempty"`
	// SeasonDiscounts overrides single discounts per season id. An entry that
	// exists but is disabled switches that discount off for the season.
	SeasonDiscounts map[string]map[DiscountKind]Discount `json:"season_discounts,omitempty"`
	// Color is used by dashboards only, never by calculations
	Color string `json:"color,omitempty"`
}

// DiscountPercentFor resolves the effective percentage of one discount kind
// for a season: season override when present, else the base stack entry,
// else 0. Disabled entries resolve to 0.
func (c *Channel) DiscountPercentFor(kind DiscountKind, seasonID string) float64 {
	if overrides, ok := c.SeasonDiscounts[seasonID]; ok {
		if d, ok := overrides[kind]; ok {
			if d.Enabled {
				return d.Percent
			}
			return 0
		}
	}
	if d, ok := c.Discounts[kind]; ok && d.Enabled {
		return d.Percent
	}
	return 0
}
