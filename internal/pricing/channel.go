package pricing

import (
	"fmt"
	"math"

	"github.com/jakubodys-twoje-pokoje/TP-Cenniki-sub000/internal/domain"
)

// Breakdown keys of a ChannelCalculation. First and last minute discounts are
// reported as one combined "other" position.
const (
	BreakdownMobile   = "mobile"
	BreakdownGenius   = "genius"
	BreakdownSeasonal = "seasonal"
	BreakdownOther    = "other"
)

// BreakdownKeys returns the breakdown positions in the canonical order the
// discounts are peeled off the list price
func BreakdownKeys() []string {
	return []string{BreakdownMobile, BreakdownGenius, BreakdownSeasonal, BreakdownOther}
}

// Prepay-in-full advisory discount tiers (percent)
const (
	PIF5Percent  = 5
	PIF10Percent = 10
)

// ChannelCalculation is the full channel economics for one direct price:
// the back-solved list price, the realized discount and commission amounts
// recomputed forward from it, and the advisory prepay-in-full overlays.
// It is derived data, recomputed on every request and never persisted.
type ChannelCalculation struct {
	ChannelID string `json:"channel_id"`
	// Valid is false when the channel configuration cannot retain a positive
	// fraction of the list price; all numeric fields are zero then.
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`

	// ListPrice is the price the channel must display so the owner still
	// nets at least the direct price (PLN, rounded up)
	ListPrice int `json:"list_price"`
	// DiscountAmounts holds the per-position discount in PLN, each computed
	// on the price left after the prior positions
	DiscountAmounts map[string]float64 `json:"discount_amounts"`
	// DiscountPercents holds the effective per-position percentages
	DiscountPercents map[string]float64 `json:"discount_percents"`
	Commission       float64            `json:"commission"`
	EstimatedNet     float64            `json:"estimated_net"`
	// IsProfitable allows one PLN of rounding slack against the direct price
	IsProfitable bool `json:"is_profitable"`

	// Prepay-in-full overlays: the list price with the extra tier stacked
	// into the waterfall, and the net the owner would see if the tier were
	// granted on the standard list price. Advisory only.
	PIF5        int     `json:"pif5"`
	PIF10       int     `json:"pif10"`
	PIF5Direct  float64 `json:"pif5_direct"`
	PIF10Direct float64 `json:"pif10_direct"`
}

// ChannelPrice reverse-solves the list price a channel must display for the
// owner to net directPrice after the channel's discount stack and commission,
// then forward-computes the realized figures from the rounded list price.
// A configuration whose summed discount percentages plus commission reach
// 100, or whose retained fraction is not strictly positive, yields
// ErrInvalidChannelConfig, never a numeric result.
func ChannelPrice(directPrice int, channel *domain.Channel, seasonID string) (*ChannelCalculation, error) {
	mobile := channel.DiscountPercentFor(domain.DiscountMobile, seasonID)
	genius := channel.DiscountPercentFor(domain.DiscountGenius, seasonID)
	seasonal := channel.DiscountPercentFor(domain.DiscountSeasonal, seasonID)
	firstMinute := channel.DiscountPercentFor(domain.DiscountFirstMinute, seasonID)
	lastMinute := channel.DiscountPercentFor(domain.DiscountLastMinute, seasonID)

	totalPercent := mobile + genius + seasonal + firstMinute + lastMinute + channel.CommissionPercent
	if totalPercent >= 100 {
		return nil, fmt.Errorf("channel %s: %w", channel.ID, ErrInvalidChannelConfig)
	}

	discountFactor := (1 - mobile/100) *
		(1 - genius/100) *
		(1 - seasonal/100) *
		(1 - firstMinute/100) *
		(1 - lastMinute/100)
	commissionFactor := 1 - channel.CommissionPercent/100
	retained := discountFactor * commissionFactor
	if retained <= 0 {
		return nil, fmt.Errorf("channel %s: %w", channel.ID, ErrInvalidChannelConfig)
	}

	listPrice := ceilPrice(float64(directPrice) / retained)

	// Realized figures come from the rounded list price so the displayed
	// breakdown always reconstructs what the guest actually sees.
	soldPrice := float64(listPrice) * discountFactor
	commission := soldPrice * channel.CommissionPercent / 100
	estimatedNet := soldPrice - commission

	// Sequential breakdown: each position is taken off the price left after
	// the positions before it, so the amounts sum to the total discount.
	otherPercent := (1 - (1-firstMinute/100)*(1-lastMinute/100)) * 100
	amounts := make(map[string]float64, 4)
	percents := map[string]float64{
		BreakdownMobile:   mobile,
		BreakdownGenius:   genius,
		BreakdownSeasonal: seasonal,
		BreakdownOther:    otherPercent,
	}
	remaining := 1.0
	for _, key := range BreakdownKeys() {
		pct := percents[key]
		amounts[key] = float64(listPrice) * remaining * pct / 100
		remaining *= 1 - pct/100
	}

	calc := &ChannelCalculation{
		ChannelID:        channel.ID,
		Valid:            true,
		ListPrice:        listPrice,
		DiscountAmounts:  amounts,
		DiscountPercents: percents,
		Commission:       commission,
		EstimatedNet:     estimatedNet,
		IsProfitable:     estimatedNet >= float64(directPrice)-1,
		PIF5:             ceilPrice(float64(directPrice) / (retained * (1 - PIF5Percent/100.0))),
		PIF10:            ceilPrice(float64(directPrice) / (retained * (1 - PIF10Percent/100.0))),
		PIF5Direct:       soldPrice * (1 - PIF5Percent/100.0) * commissionFactor,
		PIF10Direct:      soldPrice * (1 - PIF10Percent/100.0) * commissionFactor,
	}
	return calc, nil
}

// invalidCalculation is what a grid cell carries when its channel
// configuration cannot be solved; the rest of the grid is unaffected
func invalidCalculation(channelID string, err error) *ChannelCalculation {
	return &ChannelCalculation{
		ChannelID: channelID,
		Valid:     false,
		Error:     err.Error(),
	}
}

// ceilPrice rounds a raw price up to a whole PLN. The tiny epsilon keeps
// binary float noise from pushing an exact integer quotient one PLN up.
func ceilPrice(raw float64) int {
	return int(math.Ceil(raw - 1e-9))
}
