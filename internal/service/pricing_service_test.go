package service

import (
	"context"
	"errors"
	"testing"

	"github.com/jakubodys-twoje-pokoje/TP-Cenniki-sub000/internal/domain"
	"github.com/jakubodys-twoje-pokoje/TP-Cenniki-sub000/internal/dto"
	"github.com/jakubodys-twoje-pokoje/TP-Cenniki-sub000/internal/repository"
)

func TestPricingService_Grid(t *testing.T) {
	repo, property := seedProperty(t)
	svc := NewPricingService(repo)

	resp, err := svc.Grid(context.Background(), property.ID, &dto.GridRequest{})
	if err != nil {
		t.Fatalf("Grid() error = %v", err)
	}
	if resp.Currency != "PLN" {
		t.Errorf("Currency = %q, want PLN", resp.Currency)
	}
	if len(resp.Rows) != 4 {
		t.Fatalf("Grid() returned %d rows, want 4 (2 rooms x 2 seasons)", len(resp.Rows))
	}

	// r1 in summer at its maximum of 2: 200 direct, booking back-solved
	// through 10% mobile and 20% commission
	row := resp.Rows[0]
	if row.RoomID != "r1" || row.SeasonID != "summer" || row.Occupancy != 2 {
		t.Fatalf("first row = (%s, %s, occ %d), want (r1, summer, 2)", row.RoomID, row.SeasonID, row.Occupancy)
	}
	if row.DirectPrice != 200 {
		t.Errorf("DirectPrice = %d, want 200", row.DirectPrice)
	}
	if got := row.Channels["booking"].ListPrice; got != 278 {
		t.Errorf("booking ListPrice = %d, want 278", got)
	}
	if got := row.Channels["direct"].ListPrice; got != 200 {
		t.Errorf("direct ListPrice = %d, want 200", got)
	}
}

func TestPricingService_GridFixedOccupancy(t *testing.T) {
	repo, property := seedProperty(t)
	svc := NewPricingService(repo)

	resp, err := svc.Grid(context.Background(), property.ID, &dto.GridRequest{Occupancy: 1})
	if err != nil {
		t.Fatalf("Grid() error = %v", err)
	}

	// one person in a two-person room drops 30 PLN
	if got := resp.Rows[0].DirectPrice; got != 170 {
		t.Errorf("DirectPrice at occupancy 1 = %d, want 170", got)
	}
	if got := resp.Rows[0].Channels["booking"].ListPrice; got != 237 {
		t.Errorf("booking ListPrice at occupancy 1 = %d, want 237", got)
	}
}

func TestPricingService_GridAgainstProfile(t *testing.T) {
	repo, property := seedProperty(t)
	ctx := context.Background()

	// snapshot, then double the live base price
	properties := NewPropertyService(repo)
	profile, err := properties.SaveProfile(ctx, property.ID, &dto.SaveProfileRequest{Name: "Przed podwyżką"})
	if err != nil {
		t.Fatalf("SaveProfile() error = %v", err)
	}
	next := testPropertyConfig()
	next.Rooms[0].BasePricePeak = 400
	if _, err := properties.UpdateProperty(ctx, property.ID, &dto.UpdatePropertyRequest{Config: next}); err != nil {
		t.Fatalf("UpdateProperty() error = %v", err)
	}

	svc := NewPricingService(repo)
	live, err := svc.Grid(ctx, property.ID, &dto.GridRequest{})
	if err != nil {
		t.Fatalf("Grid() error = %v", err)
	}
	snapshot, err := svc.Grid(ctx, property.ID, &dto.GridRequest{ProfileID: profile.ID})
	if err != nil {
		t.Fatalf("Grid() with profile error = %v", err)
	}

	if live.Rows[0].DirectPrice != 400 {
		t.Errorf("live DirectPrice = %d, want 400", live.Rows[0].DirectPrice)
	}
	if snapshot.Rows[0].DirectPrice != 200 {
		t.Errorf("profile DirectPrice = %d, want 200 from the snapshot", snapshot.Rows[0].DirectPrice)
	}
}

func TestPricingService_GridUnknownProfile(t *testing.T) {
	repo, property := seedProperty(t)
	svc := NewPricingService(repo)

	_, err := svc.Grid(context.Background(), property.ID, &dto.GridRequest{ProfileID: "missing"})
	if !errors.Is(err, domain.ErrProfileNotFound) {
		t.Errorf("Grid() error = %v, want ErrProfileNotFound", err)
	}
}

func TestPricingService_GridMissingProperty(t *testing.T) {
	svc := NewPricingService(repository.NewMemoryPropertyRepository())

	_, err := svc.Grid(context.Background(), "missing", &dto.GridRequest{})
	if !errors.Is(err, ErrPropertyNotFound) {
		t.Errorf("Grid() error = %v, want ErrPropertyNotFound", err)
	}
}

func TestPricingService_Ladder(t *testing.T) {
	repo, property := seedProperty(t)
	svc := NewPricingService(repo)

	resp, err := svc.Ladder(context.Background(), property.ID, &dto.LadderRequest{
		RoomID:   "r2",
		SeasonID: "summer",
	})
	if err != nil {
		t.Fatalf("Ladder() error = %v", err)
	}
	if len(resp.Rows) != 4 {
		t.Fatalf("Ladder() returned %d rows, want 4", len(resp.Rows))
	}
	for i, row := range resp.Rows {
		if row.Occupancy != i+1 {
			t.Errorf("row %d occupancy = %d, want %d", i, row.Occupancy, i+1)
		}
	}
	// 400 base, 30 PLN off per missing person
	if resp.Rows[3].DirectPrice != 400 || resp.Rows[0].DirectPrice != 310 {
		t.Errorf("ladder direct prices = %d..%d, want 310..400",
			resp.Rows[0].DirectPrice, resp.Rows[3].DirectPrice)
	}
}

func TestPricingService_LadderUnknownRoom(t *testing.T) {
	repo, property := seedProperty(t)
	svc := NewPricingService(repo)

	_, err := svc.Ladder(context.Background(), property.ID, &dto.LadderRequest{
		RoomID:   "missing",
		SeasonID: "summer",
	})
	if !errors.Is(err, ErrRoomNotFound) {
		t.Errorf("Ladder() error = %v, want ErrRoomNotFound", err)
	}
}
