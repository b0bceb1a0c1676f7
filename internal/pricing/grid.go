package pricing

import (
	"github.com/jakubodys-twoje-pokoje/TP-Cenniki-sub000/internal/domain"
)

// OccupancyMode selects the occupancy a grid is computed at: every room's own
// maximum, or a fixed guest count clamped to each room's maximum.
type OccupancyMode struct {
	fixed int
}

// RoomMaxOccupancy prices every room at its own maximum occupancy
func RoomMaxOccupancy() OccupancyMode {
	return OccupancyMode{}
}

// FixedOccupancy prices every room at n guests, clamped to the room maximum
func FixedOccupancy(n int) OccupancyMode {
	return OccupancyMode{fixed: n}
}

// For resolves the effective occupancy for one room
func (m OccupancyMode) For(room *domain.Room) int {
	if m.fixed < 1 || m.fixed > room.MaxOccupancy {
		return room.MaxOccupancy
	}
	return m.fixed
}

// PricingRow is one (room, season, occupancy) line of the grid: the direct
// price plus every channel's back-solved economics. Rows are pure derived
// data and are recomputed on every request.
type PricingRow struct {
	RoomID     string `json:"room_id"`
	RoomName   string `json:"room_name"`
	SeasonID   string `json:"season_id"`
	SeasonName string `json:"season_name"`
	Occupancy  int    `json:"occupancy"`
	// DirectPrice is the owner's net asking price (PLN)
	DirectPrice int `json:"direct_price"`
	// Channels maps channel id to that channel's calculation; invalid channel
	// configurations mark their own cell and never suppress the others
	Channels map[string]*ChannelCalculation `json:"channels"`
}

// BuildGrid computes one PricingRow per (room, season) pair, room-major and
// season-minor, preserving input order. The transform is deterministic and
// side-effect free: identical inputs produce identical rows.
func BuildGrid(rooms []domain.Room, seasons []domain.Season, channels []domain.Channel, settings domain.GlobalSettings, occ OccupancyMode) []PricingRow {
	rows := make([]PricingRow, 0, len(rooms)*len(seasons))
	for i := range rooms {
		room := &rooms[i]
		occupancy := occ.For(room)
		for j := range seasons {
			rows = append(rows, buildRow(room, &seasons[j], occupancy, channels, settings))
		}
	}
	return rows
}

// Ladder computes one PricingRow per occupancy level from 1 to the room's
// maximum for a single room and season, as consumed by manual calculators
// and the price push
func Ladder(room *domain.Room, season *domain.Season, channels []domain.Channel, settings domain.GlobalSettings) []PricingRow {
	rows := make([]PricingRow, 0, room.MaxOccupancy)
	for occupancy := 1; occupancy <= room.MaxOccupancy; occupancy++ {
		rows = append(rows, buildRow(room, season, occupancy, channels, settings))
	}
	return rows
}

func buildRow(room *domain.Room, season *domain.Season, occupancy int, channels []domain.Channel, settings domain.GlobalSettings) PricingRow {
	direct := DirectPrice(room, season, occupancy, settings)
	row := PricingRow{
		RoomID:      room.ID,
		RoomName:    room.Name,
		SeasonID:    season.ID,
		SeasonName:  season.Name,
		Occupancy:   occupancy,
		DirectPrice: direct,
		Channels:    make(map[string]*ChannelCalculation, len(channels)),
	}
	for k := range channels {
		channel := &channels[k]
		calc, err := ChannelPrice(direct, channel, season.ID)
		if err != nil {
			row.Channels[channel.ID] = invalidCalculation(channel.ID, err)
			continue
		}
		row.Channels[channel.ID] = calc
	}
	return row
}
