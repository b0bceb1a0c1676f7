package dto

// OccupancyRequest holds query parameters for the occupancy read. RoomID
// narrows the read to one room type; empty means the whole property.
type OccupancyRequest struct {
	StartDate string `form:"start_date" binding:"required"`
	EndDate   string `form:"end_date" binding:"required"`
	RoomID    string `form:"room_id"`
}

// OccupancyResponse reports how full the property is over a date range
type OccupancyResponse struct {
	PropertyID       string `json:"property_id"`
	RoomID           string `json:"room_id,omitempty"`
	StartDate        string `json:"start_date"`
	EndDate          string `json:"end_date"`
	TotalNights      int    `json:"total_nights"`
	BookedNights     int    `json:"booked_nights"`
	OccupancyPercent int    `json:"occupancy_percent"`
	FromCache        bool   `json:"from_cache"`
}
