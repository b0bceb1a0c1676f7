package dto

import "time"

// PushPricesRequest asks the service to push prices for one room and date
// range into the property management system
type PushPricesRequest struct {
	RoomID     string   `json:"room_id" binding:"required"`
	SeasonID   string   `json:"season_id" binding:"required"`
	ChannelIDs []string `json:"channel_ids,omitempty"`
	StartDate  string   `json:"start_date" binding:"required"`
	EndDate    string   `json:"end_date" binding:"required"`
	ProfileID  string   `json:"profile_id,omitempty"`
}

// PushChannelResult reports the outcome for one channel of a push request
type PushChannelResult struct {
	ChannelID   string      `json:"channel_id"`
	ChannelName string      `json:"channel_name"`
	Success     bool        `json:"success"`
	Error       string      `json:"error,omitempty"`
	Prices      map[int]int `json:"prices,omitempty"`
}

// PushPricesResponse summarizes a completed push
type PushPricesResponse struct {
	PropertyID  string              `json:"property_id"`
	RoomID      string              `json:"room_id"`
	StartDate   string              `json:"start_date"`
	EndDate     string              `json:"end_date"`
	MinNights   int                 `json:"min_nights"`
	Results     []PushChannelResult `json:"results"`
	AttemptedAt time.Time           `json:"attempted_at"`
}
