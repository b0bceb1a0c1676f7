package dto

import (
	"time"

	"github.com/jakubodys-twoje-pokoje/TP-Cenniki-sub000/internal/domain"
)

// CreatePropertyRequest represents a request to create a property
type CreatePropertyRequest struct {
	Name          string                `json:"name" binding:"required"`
	PMSPropertyID string                `json:"pms_property_id,omitempty"`
	Config        *domain.PropertyConfig `json:"config,omitempty"`
}

// UpdatePropertyRequest replaces the live pricing configuration of a property
type UpdatePropertyRequest struct {
	Name   string                `json:"name,omitempty"`
	Config domain.PropertyConfig `json:"config" binding:"required"`
}

// SaveProfileRequest stores a named configuration snapshot
type SaveProfileRequest struct {
	Name string `json:"name" binding:"required"`
}

// PropertyResponse represents a property with its full configuration
type PropertyResponse struct {
	ID            string                `json:"id"`
	Name          string                `json:"name"`
	PMSPropertyID string                `json:"pms_property_id,omitempty"`
	Config        domain.PropertyConfig `json:"config"`
	Profiles      []ProfileSummary      `json:"profiles"`
	CreatedAt     time.Time             `json:"created_at"`
	UpdatedAt     time.Time             `json:"updated_at"`
}

// PropertySummary is the list view without the configuration payload
type PropertySummary struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	PMSPropertyID string    `json:"pms_property_id,omitempty"`
	RoomCount     int       `json:"room_count"`
	SeasonCount   int       `json:"season_count"`
	ChannelCount  int       `json:"channel_count"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ProfileSummary identifies a stored configuration snapshot
type ProfileSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ToPropertyResponse converts a domain property to its response representation
func ToPropertyResponse(p *domain.Property) *PropertyResponse {
	profiles := make([]ProfileSummary, 0, len(p.Profiles))
	for _, profile := range p.Profiles {
		profiles = append(profiles, ProfileSummary{ID: profile.ID, Name: profile.Name})
	}
	return &PropertyResponse{
		ID:            p.ID,
		Name:          p.Name,
		PMSPropertyID: p.PMSPropertyID,
		Config:        p.Config,
		Profiles:      profiles,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

// ToPropertySummary converts a domain property to its list representation
func ToPropertySummary(p *domain.Property) *PropertySummary {
	return &PropertySummary{
		ID:            p.ID,
		Name:          p.Name,
		PMSPropertyID: p.PMSPropertyID,
		RoomCount:     len(p.Config.Rooms),
		SeasonCount:   len(p.Config.Seasons),
		ChannelCount:  len(p.Config.Channels),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
