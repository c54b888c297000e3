package tracker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

func TestPinUnpinRoundTrip(t *testing.T) {
	ctx := context.Background()

	trackerRepo := newMemTrackerRepo()
	categoryRepo := newMemCategoryRepo("Health", "Pinned")

	tracker := entity.NewTracker("Run", "🏃", 5, entity.NewSchedule(time.Monday), "Health")
	_ = trackerRepo.Create(ctx, tracker, "Health")

	pin := NewPinTrackerUseCase(trackerRepo, "Pinned")
	unpin := NewUnpinTrackerUseCase(trackerRepo, categoryRepo)

	pinned, err := pin.Execute(ctx, PinTrackerInput{TrackerID: tracker.ID})
	if err != nil {
		t.Fatalf("pin failed: %v", err)
	}
	if !pinned.Tracker.IsPinned {
		t.Error("expected tracker to be pinned")
	}
	if pinned.Tracker.OriginalCategory != "Health" {
		t.Errorf("pinning must keep the original category, got %q", pinned.Tracker.OriginalCategory)
	}
	if trackerRepo.containers[tracker.ID] != "Pinned" {
		t.Errorf("expected container Pinned, got %q", trackerRepo.containers[tracker.ID])
	}

	unpinned, err := unpin.Execute(ctx, UnpinTrackerInput{TrackerID: tracker.ID})
	if err != nil {
		t.Fatalf("unpin failed: %v", err)
	}
	if unpinned.Tracker.IsPinned {
		t.Error("expected tracker to be unpinned")
	}
	if trackerRepo.containers[tracker.ID] != "Health" {
		t.Errorf("expected tracker back in Health, got %q", trackerRepo.containers[tracker.ID])
	}
}

func TestPinTrackerIdempotent(t *testing.T) {
	ctx := context.Background()

	trackerRepo := newMemTrackerRepo()
	tracker := entity.NewTracker("Run", "🏃", 5, entity.NewSchedule(time.Monday), "Health")
	tracker.IsPinned = true
	_ = trackerRepo.Create(ctx, tracker, "Pinned")

	uc := NewPinTrackerUseCase(trackerRepo, "Pinned")

	output, err := uc.Execute(ctx, PinTrackerInput{TrackerID: tracker.ID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !output.Tracker.IsPinned {
		t.Error("tracker should stay pinned")
	}
	if trackerRepo.containers[tracker.ID] != "Pinned" {
		t.Errorf("container should stay Pinned, got %q", trackerRepo.containers[tracker.ID])
	}
}

func TestUnpinTrackerIdempotent(t *testing.T) {
	ctx := context.Background()

	trackerRepo := newMemTrackerRepo()
	categoryRepo := newMemCategoryRepo("Health")
	tracker := entity.NewTracker("Run", "🏃", 5, entity.NewSchedule(time.Monday), "Health")
	_ = trackerRepo.Create(ctx, tracker, "Health")

	uc := NewUnpinTrackerUseCase(trackerRepo, categoryRepo)

	output, err := uc.Execute(ctx, UnpinTrackerInput{TrackerID: tracker.ID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.Tracker.IsPinned {
		t.Error("tracker should stay unpinned")
	}
}

func TestUnpinTrackerMissingOriginalCategory(t *testing.T) {
	ctx := context.Background()

	trackerRepo := newMemTrackerRepo()
	categoryRepo := newMemCategoryRepo("Pinned")

	tracker := entity.NewTracker("Run", "🏃", 5, entity.NewSchedule(time.Monday), "Health")
	tracker.IsPinned = true
	_ = trackerRepo.Create(ctx, tracker, "Pinned")

	uc := NewUnpinTrackerUseCase(trackerRepo, categoryRepo)

	_, err := uc.Execute(ctx, UnpinTrackerInput{TrackerID: tracker.ID})
	if !errors.Is(err, domainerror.ErrCategoryNotFound) {
		t.Errorf("expected category-not-found error, got %v", err)
	}

	// The tracker must remain pinned rather than being dropped.
	stored, _ := trackerRepo.FindByID(ctx, tracker.ID)
	if !stored.IsPinned {
		t.Error("failed unpin must leave the tracker pinned")
	}
}

func TestPinTrackerNotFound(t *testing.T) {
	uc := NewPinTrackerUseCase(newMemTrackerRepo(), "Pinned")

	_, err := uc.Execute(context.Background(), PinTrackerInput{TrackerID: uuid.New()})
	if !errors.Is(err, domainerror.ErrTrackerNotFound) {
		t.Errorf("expected tracker-not-found error, got %v", err)
	}
}
