package dto

import (
	"github.com/jakubodys-twoje-pokoje/TP-Cenniki-sub000/internal/pricing"
)

// GridRequest holds query parameters for the pricing grid
type GridRequest struct {
	ProfileID string `form:"profile_id"`
	Occupancy int    `form:"occupancy"`
}

// LadderRequest holds query parameters for the per-occupancy price ladder
type LadderRequest struct {
	RoomID    string `form:"room_id" binding:"required"`
	SeasonID  string `form:"season_id" binding:"required"`
	ProfileID string `form:"profile_id"`
}

// GridResponse carries the computed pricing grid
type GridResponse struct {
	PropertyID string               `json:"property_id"`
	ProfileID  string               `json:"profile_id,omitempty"`
	Currency   string               `json:"currency"`
	Rows       []pricing.PricingRow `json:"rows"`
}

// LadderResponse carries one room/season priced at every occupancy
type LadderResponse struct {
	PropertyID string               `json:"property_id"`
	RoomID     string               `json:"room_id"`
	SeasonID   string               `json:"season_id"`
	Currency   string               `json:"currency"`
	Rows       []pricing.PricingRow `json:"rows"`
}
