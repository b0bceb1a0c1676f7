package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/jakubodys-twoje-pokoje/TP-Cenniki-sub000/internal/domain"
	"github.com/jakubodys-twoje-pokoje/TP-Cenniki-sub000/internal/pricing"
)

func TestWriteGridCSV(t *testing.T) {
	rooms := []domain.Room{{ID: "r1", Name: "Dwójka", MaxOccupancy: 2, BasePricePeak: 200}}
	seasons := []domain.Season{{ID: "summer", Name: "Lato", Multiplier: 1.0, ObpEnabled: true}}
	channels := []domain.Channel{
		{ID: "direct", Name: "Strona własna"},
		{
			ID: "booking", Name: "Booking.com", CommissionPercent: 20,
			Discounts: map[domain.DiscountKind]domain.Discount{
				domain.DiscountMobile: {Percent: 10, Enabled: true},
			},
		},
	}
	settings := domain.GlobalSettings{DefaultObp: 30, ObpEnabled: true}
	rows := pricing.BuildGrid(rooms, seasons, channels, settings, pricing.RoomMaxOccupancy())

	var buf bytes.Buffer
	if err := WriteGridCSV(&buf, rows, channels); err != nil {
		t.Fatalf("WriteGridCSV() error = %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("re-reading CSV: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want header plus one row", len(records))
	}

	header := records[0]
	if header[0] != "room" || header[4] != "Strona własna list" || header[7] != "Booking.com list" {
		t.Errorf("unexpected header: %v", header)
	}

	row := records[1]
	if row[0] != "Dwójka" || row[1] != "Lato" || row[2] != "2" || row[3] != "200" {
		t.Errorf("unexpected row prefix: %v", row[:4])
	}
	// booking list price back-solved through 10% mobile and 20% commission
	if row[7] != "278" {
		t.Errorf("booking list price = %q, want 278", row[7])
	}
	if row[9] != "true" {
		t.Errorf("booking profitable = %q, want true", row[9])
	}
}

func TestWriteGridCSV_InvalidChannelCellIsBlank(t *testing.T) {
	rooms := []domain.Room{{ID: "r1", Name: "Dwójka", MaxOccupancy: 2, BasePricePeak: 200}}
	seasons := []domain.Season{{ID: "summer", Name: "Lato", Multiplier: 1.0}}
	channels := []domain.Channel{{ID: "broken", Name: "Zepsuty", CommissionPercent: 100}}
	rows := pricing.BuildGrid(rooms, seasons, channels, domain.GlobalSettings{}, pricing.RoomMaxOccupancy())

	var buf bytes.Buffer
	if err := WriteGridCSV(&buf, rows, channels); err != nil {
		t.Fatalf("WriteGridCSV() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if !strings.HasSuffix(lines[1], ",,,") && !strings.HasSuffix(lines[1], ",,") {
		t.Errorf("invalid channel cells not blank: %q", lines[1])
	}
}
