package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Property errors
var (
	ErrPropertyNameRequired = errors.New("property name is required")
	ErrProfileNotFound      = errors.New("profile not found")
)

// PropertyConfig groups everything the pricing engine needs for one property:
// rooms, seasons, channels and global settings. It is supplied in full on
// every calculation; derived prices are never stored back.
type PropertyConfig struct {
	Rooms    []Room         `json:"rooms"`
	Seasons  []Season       `json:"seasons"`
	Channels []Channel      `json:"channels"`
	Settings GlobalSettings `json:"settings"`
}

// RoomByID returns the room with the given id, or nil
func (c *PropertyConfig) RoomByID(id string) *Room {
	for i := range c.Rooms {
		if c.Rooms[i].ID == id {
			return &c.Rooms[i]
		}
	}
	return nil
}

// SeasonByID returns the season with the given id, or nil
func (c *PropertyConfig) SeasonByID(id string) *Season {
	for i := range c.Seasons {
		if c.Seasons[i].ID == id {
			return &c.Seasons[i]
		}
	}
	return nil
}

// ChannelByID returns the channel with the given id, or nil
func (c *PropertyConfig) ChannelByID(id string) *Channel {
	for i := range c.Channels {
		if c.Channels[i].ID == id {
			return &c.Channels[i]
		}
	}
	return nil
}

// SeasonIDs returns the ids of all seasons in input order
func (c *PropertyConfig) SeasonIDs() []string {
	ids := make([]string, len(c.Seasons))
	for i, s := range c.Seasons {
		ids[i] = s.ID
	}
	return ids
}

// Profile is a named alternative configuration inside one property, used to
// prepare price lists without touching the live one
type Profile struct {
	ID     string         `json:"id"`
	Name   string         `json:"name"`
	Config PropertyConfig `json:"config"`
}

// Property is the aggregate owning all pricing configuration
type Property struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	// PMSPropertyID identifies this property in the external property
	// management system used for price pushes and availability reads
	PMSPropertyID string    `json:"pms_property_id,omitempty"`
	Config        PropertyConfig `json:"config"`
	Profiles      []Profile      `json:"profiles,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// NewProperty creates a property with default settings and no rooms yet.
// The name is not checked here; the service layer rejects empty names
// before constructing anything.
func NewProperty(name, pmsPropertyID string) *Property {
	now := time.Now()
	return &Property{
		ID:            uuid.New().String(),
		Name:          name,
		PMSPropertyID: pmsPropertyID,
		Config: PropertyConfig{
			Settings: DefaultGlobalSettings(),
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ConfigFor resolves the configuration to price against: the named profile
// when profileID is set, the live configuration otherwise
func (p *Property) ConfigFor(profileID string) (*PropertyConfig, error) {
	if profileID == "" {
		return &p.Config, nil
	}
	for i := range p.Profiles {
		if p.Profiles[i].ID == profileID {
			return &p.Profiles[i].Config, nil
		}
	}
	return nil, ErrProfileNotFound
}

// ProfileByID returns the profile with the given id, or nil
func (p *Property) ProfileByID(id string) *Profile {
	for i := range p.Profiles {
		if p.Profiles[i].ID == id {
			return &p.Profiles[i]
		}
	}
	return nil
}
