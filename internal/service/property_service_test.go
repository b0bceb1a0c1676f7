package service

import (
	"context"
	"errors"
	"testing"

	"github.com/jakubodys-twoje-pokoje/TP-Cenniki-sub000/internal/domain"
	"github.com/jakubodys-twoje-pokoje/TP-Cenniki-sub000/internal/dto"
	"github.com/jakubodys-twoje-pokoje/TP-Cenniki-sub000/internal/pricing"
	"github.com/jakubodys-twoje-pokoje/TP-Cenniki-sub000/internal/repository"
)

func TestPropertyService_CreateAndGet(t *testing.T) {
	repo := repository.NewMemoryPropertyRepository()
	svc := NewPropertyService(repo)
	ctx := context.Background()

	cfg := testPropertyConfig()
	created, err := svc.CreateProperty(ctx, &dto.CreatePropertyRequest{
		Name:          "Willa Bałtyk",
		PMSPropertyID: "pms-100",
		Config:        &cfg,
	})
	if err != nil {
		t.Fatalf("CreateProperty() error = %v", err)
	}
	if created.ID == "" {
		t.Error("created property has no id")
	}

	got, err := svc.GetProperty(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetProperty() error = %v", err)
	}
	if got.Name != "Willa Bałtyk" || len(got.Config.Rooms) != 2 {
		t.Errorf("got name %q with %d rooms, want Willa Bałtyk with 2 rooms", got.Name, len(got.Config.Rooms))
	}
}

func TestPropertyService_CreateRequiresName(t *testing.T) {
	svc := NewPropertyService(repository.NewMemoryPropertyRepository())

	_, err := svc.CreateProperty(context.Background(), &dto.CreatePropertyRequest{})
	if !errors.Is(err, domain.ErrPropertyNameRequired) {
		t.Errorf("CreateProperty() error = %v, want ErrPropertyNameRequired", err)
	}
}

func TestPropertyService_CreateRejectsInvalidConfig(t *testing.T) {
	svc := NewPropertyService(repository.NewMemoryPropertyRepository())

	cfg := testPropertyConfig()
	cfg.Seasons[0].Multiplier = 0

	_, err := svc.CreateProperty(context.Background(), &dto.CreatePropertyRequest{
		Name:   "Willa Bałtyk",
		Config: &cfg,
	})
	if !errors.Is(err, pricing.ErrInvalidMultiplier) {
		t.Errorf("CreateProperty() error = %v, want ErrInvalidMultiplier", err)
	}
}

func TestPropertyService_GetMissing(t *testing.T) {
	svc := NewPropertyService(repository.NewMemoryPropertyRepository())

	_, err := svc.GetProperty(context.Background(), "missing")
	if !errors.Is(err, ErrPropertyNotFound) {
		t.Errorf("GetProperty() error = %v, want ErrPropertyNotFound", err)
	}
}

func TestPropertyService_UpdateRejectedConfigLeavesStoredState(t *testing.T) {
	repo, property := seedProperty(t)
	svc := NewPropertyService(repo)
	ctx := context.Background()

	bad := testPropertyConfig()
	bad.Rooms[0].MaxOccupancy = 0

	_, err := svc.UpdateProperty(ctx, property.ID, &dto.UpdatePropertyRequest{Config: bad})
	if !errors.Is(err, pricing.ErrInvalidMaxOccupancy) {
		t.Fatalf("UpdateProperty() error = %v, want ErrInvalidMaxOccupancy", err)
	}

	stored, err := svc.GetProperty(ctx, property.ID)
	if err != nil {
		t.Fatalf("GetProperty() error = %v", err)
	}
	if stored.Config.Rooms[0].MaxOccupancy != 2 {
		t.Errorf("stored MaxOccupancy = %d, rejected update mutated the property", stored.Config.Rooms[0].MaxOccupancy)
	}
}

func TestPropertyService_UpdateReplacesConfig(t *testing.T) {
	repo, property := seedProperty(t)
	svc := NewPropertyService(repo)
	ctx := context.Background()

	next := testPropertyConfig()
	next.Rooms = next.Rooms[:1]

	updated, err := svc.UpdateProperty(ctx, property.ID, &dto.UpdatePropertyRequest{
		Name:   "Willa Bałtyk 2",
		Config: next,
	})
	if err != nil {
		t.Fatalf("UpdateProperty() error = %v", err)
	}
	if updated.Name != "Willa Bałtyk 2" || len(updated.Config.Rooms) != 1 {
		t.Errorf("update not applied: name %q, %d rooms", updated.Name, len(updated.Config.Rooms))
	}
}

func TestPropertyService_SaveProfileSnapshotsLiveConfig(t *testing.T) {
	repo, property := seedProperty(t)
	svc := NewPropertyService(repo)
	ctx := context.Background()

	profile, err := svc.SaveProfile(ctx, property.ID, &dto.SaveProfileRequest{Name: "Sezon 2026"})
	if err != nil {
		t.Fatalf("SaveProfile() error = %v", err)
	}

	// mutate the live config afterwards; the snapshot must keep both rooms
	next := testPropertyConfig()
	next.Rooms = next.Rooms[:1]
	if _, err := svc.UpdateProperty(ctx, property.ID, &dto.UpdatePropertyRequest{Config: next}); err != nil {
		t.Fatalf("UpdateProperty() error = %v", err)
	}

	stored, err := svc.GetProperty(ctx, property.ID)
	if err != nil {
		t.Fatalf("GetProperty() error = %v", err)
	}
	snapshot := stored.ProfileByID(profile.ID)
	if snapshot == nil {
		t.Fatal("saved profile not found on property")
	}
	if len(snapshot.Config.Rooms) != 2 {
		t.Errorf("profile has %d rooms, want the 2 from the time of the snapshot", len(snapshot.Config.Rooms))
	}
	if len(stored.Config.Rooms) != 1 {
		t.Errorf("live config has %d rooms, want 1", len(stored.Config.Rooms))
	}
}

func TestPropertyService_DeleteProfile(t *testing.T) {
	repo, property := seedProperty(t)
	svc := NewPropertyService(repo)
	ctx := context.Background()

	profile, err := svc.SaveProfile(ctx, property.ID, &dto.SaveProfileRequest{Name: "Zima 2026"})
	if err != nil {
		t.Fatalf("SaveProfile() error = %v", err)
	}

	if err := svc.DeleteProfile(ctx, property.ID, profile.ID); err != nil {
		t.Fatalf("DeleteProfile() error = %v", err)
	}
	if err := svc.DeleteProfile(ctx, property.ID, profile.ID); !errors.Is(err, domain.ErrProfileNotFound) {
		t.Errorf("second DeleteProfile() error = %v, want ErrProfileNotFound", err)
	}
}
