package pricing

import "errors"

// Engine errors
var (
	// ErrInvalidChannelConfig is returned when a channel's combined discounts
	// and commission leave nothing of the list price, so no finite list price
	// can satisfy the owner's net.
	ErrInvalidChannelConfig = errors.New("combined discounts and commission reach 100% of the list price")
	// ErrInvalidMultiplier is returned by configuration validation for a
	// non-positive season multiplier.
	ErrInvalidMultiplier = errors.New("season multiplier must be positive")
	// ErrInvalidMaxOccupancy is returned by configuration validation for a
	// room with max occupancy below 1.
	ErrInvalidMaxOccupancy = errors.New("room max occupancy must be at least 1")
	// ErrInvalidPercent is returned for discount or commission percentages
	// outside 0-100.
	ErrInvalidPercent = errors.New("percentage must be between 0 and 100")
)
