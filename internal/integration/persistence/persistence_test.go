package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
	"github.com/habit-tracker/backend/internal/integration/persistence/model"
)

// newTestDB opens a fresh in-memory sqlite store per test.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	// A single connection keeps the in-memory database alive.
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&model.CategoryModel{},
		&model.TrackerModel{},
		&model.RecordModel{},
		&model.SettingModel{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func TestCategoryRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("round trip and ordering", func(t *testing.T) {
		repo := NewCategoryRepository(newTestDB(t))

		for _, name := range []string{"Leisure", "Health", "Work"} {
			if err := repo.Create(ctx, entity.NewCategory(name)); err != nil {
				t.Fatalf("create %q: %v", name, err)
			}
		}

		all, err := repo.FindAll(ctx)
		if err != nil {
			t.Fatalf("find all: %v", err)
		}
		want := []string{"Health", "Leisure", "Work"}
		if len(all) != len(want) {
			t.Fatalf("expected %d categories, got %d", len(want), len(all))
		}
		for i, name := range want {
			if all[i].Name != name {
				t.Errorf("position %d: expected %q, got %q", i, name, all[i].Name)
			}
		}

		exists, err := repo.ExistsByName(ctx, "Health")
		if err != nil || !exists {
			t.Errorf("expected Health to exist, got %v %v", exists, err)
		}
	})

	t.Run("find by name misses map to not found", func(t *testing.T) {
		repo := NewCategoryRepository(newTestDB(t))

		_, err := repo.FindByName(ctx, "Missing")
		if !errors.Is(err, domainerror.ErrCategoryNotFound) {
			t.Errorf("expected not-found error, got %v", err)
		}
	})

	t.Run("rename updates tracker membership columns", func(t *testing.T) {
		db := newTestDB(t)
		categoryRepo := NewCategoryRepository(db)
		trackerRepo := NewTrackerRepository(db)

		if err := categoryRepo.Create(ctx, entity.NewCategory("Pinned")); err != nil {
			t.Fatalf("create: %v", err)
		}
		tracker := entity.NewTracker("Run", "🏃", 5, entity.NewSchedule(time.Monday), "Pinned")
		if err := trackerRepo.Create(ctx, tracker, "Pinned"); err != nil {
			t.Fatalf("create tracker: %v", err)
		}

		if err := categoryRepo.Rename(ctx, "Pinned", "Angeheftet"); err != nil {
			t.Fatalf("rename: %v", err)
		}

		stored, err := trackerRepo.FindByID(ctx, tracker.ID)
		if err != nil {
			t.Fatalf("find tracker: %v", err)
		}
		if stored.OriginalCategory != "Angeheftet" {
			t.Errorf("expected tracker moved to the renamed category, got %q", stored.OriginalCategory)
		}

		if exists, _ := categoryRepo.ExistsByName(ctx, "Pinned"); exists {
			t.Error("old category name must be gone")
		}
	})

	t.Run("rename of a missing category fails", func(t *testing.T) {
		repo := NewCategoryRepository(newTestDB(t))

		err := repo.Rename(ctx, "Missing", "Other")
		if !errors.Is(err, domainerror.ErrCategoryNotFound) {
			t.Errorf("expected not-found error, got %v", err)
		}
	})
}

func TestTrackerRepository(t *testing.T) {
	ctx := context.Background()

	seed := func(t *testing.T) (*gorm.DB, *entity.Tracker) {
		db := newTestDB(t)
		if err := NewCategoryRepository(db).Create(ctx, entity.NewCategory("Health")); err != nil {
			t.Fatalf("create category: %v", err)
		}
		tracker := entity.NewTracker("Run", "🏃", 5, entity.NewSchedule(time.Monday, time.Friday), "Health")
		if err := NewTrackerRepository(db).Create(ctx, tracker, "Health"); err != nil {
			t.Fatalf("create tracker: %v", err)
		}
		return db, tracker
	}

	t.Run("round trip preserves the schedule", func(t *testing.T) {
		db, tracker := seed(t)
		repo := NewTrackerRepository(db)

		stored, err := repo.FindByID(ctx, tracker.ID)
		if err != nil {
			t.Fatalf("find: %v", err)
		}
		if len(stored.Schedule) != 2 || stored.Schedule[0] != time.Monday || stored.Schedule[1] != time.Friday {
			t.Errorf("expected schedule [Monday Friday], got %v", stored.Schedule)
		}
		if stored.Name != "Run" || stored.Emoji != "🏃" || stored.Color != 5 {
			t.Errorf("scalar fields did not survive the round trip: %+v", stored)
		}
	})

	t.Run("update does not change the container", func(t *testing.T) {
		db, tracker := seed(t)
		repo := NewTrackerRepository(db)

		tracker.Name = "Evening run"
		if err := repo.Update(ctx, tracker); err != nil {
			t.Fatalf("update: %v", err)
		}

		var container string
		if err := db.Model(&model.TrackerModel{}).
			Where("id = ?", tracker.ID).
			Pluck("category_name", &container).Error; err != nil {
			t.Fatalf("pluck: %v", err)
		}
		if container != "Health" {
			t.Errorf("expected container Health, got %q", container)
		}
	})

	t.Run("update and move reassigns the container", func(t *testing.T) {
		db, tracker := seed(t)
		repo := NewTrackerRepository(db)

		tracker.IsPinned = true
		if err := repo.UpdateAndMove(ctx, tracker, "Pinned"); err != nil {
			t.Fatalf("move: %v", err)
		}

		var container string
		if err := db.Model(&model.TrackerModel{}).
			Where("id = ?", tracker.ID).
			Pluck("category_name", &container).Error; err != nil {
			t.Fatalf("pluck: %v", err)
		}
		if container != "Pinned" {
			t.Errorf("expected container Pinned, got %q", container)
		}

		stored, _ := repo.FindByID(ctx, tracker.ID)
		if !stored.IsPinned {
			t.Error("expected pin state persisted")
		}
		if stored.OriginalCategory != "Health" {
			t.Errorf("original category must survive the move, got %q", stored.OriginalCategory)
		}
	})

	t.Run("updates of missing trackers fail", func(t *testing.T) {
		db, _ := seed(t)
		repo := NewTrackerRepository(db)

		ghost := entity.NewTracker("Ghost", "👻", 1, entity.NewSchedule(time.Monday), "Health")
		if err := repo.Update(ctx, ghost); !errors.Is(err, domainerror.ErrTrackerNotFound) {
			t.Errorf("expected not-found error, got %v", err)
		}
	})

	t.Run("delete cascades records in one transaction", func(t *testing.T) {
		db, tracker := seed(t)
		trackerRepo := NewTrackerRepository(db)
		recordRepo := NewRecordRepository(db)

		day := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
		_ = recordRepo.Create(ctx, tracker.ID, day)
		_ = recordRepo.Create(ctx, tracker.ID, day.AddDate(0, 0, 7))

		survivor := entity.NewTracker("Read", "📚", 2, entity.NewSchedule(time.Tuesday), "Health")
		if err := trackerRepo.Create(ctx, survivor, "Health"); err != nil {
			t.Fatalf("create survivor: %v", err)
		}
		_ = recordRepo.Create(ctx, survivor.ID, day)

		if err := trackerRepo.DeleteWithRecords(ctx, tracker.ID); err != nil {
			t.Fatalf("delete: %v", err)
		}
		if _, err := trackerRepo.FindByID(ctx, tracker.ID); !errors.Is(err, domainerror.ErrTrackerNotFound) {
			t.Errorf("expected not-found after delete, got %v", err)
		}
		if count, _ := recordRepo.Count(ctx, tracker.ID); count != 0 {
			t.Errorf("expected cascaded records gone, got %d", count)
		}
		if count, _ := recordRepo.Count(ctx, survivor.ID); count != 1 {
			t.Errorf("expected survivor's records intact, got %d", count)
		}
	})

	t.Run("deleting a missing tracker fails", func(t *testing.T) {
		db, _ := seed(t)
		repo := NewTrackerRepository(db)

		if err := repo.DeleteWithRecords(ctx, uuid.New()); !errors.Is(err, domainerror.ErrTrackerNotFound) {
			t.Errorf("expected not-found error, got %v", err)
		}
	})
}

func TestRecordRepository(t *testing.T) {
	ctx := context.Background()
	day := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	t.Run("toggle flips and reports the new state", func(t *testing.T) {
		repo := NewRecordRepository(newTestDB(t))
		trackerID := uuid.New()

		on, err := repo.Toggle(ctx, trackerID, day)
		if err != nil || !on {
			t.Fatalf("expected first toggle on, got %v %v", on, err)
		}
		off, err := repo.Toggle(ctx, trackerID, day)
		if err != nil || off {
			t.Fatalf("expected second toggle off, got %v %v", off, err)
		}
		if exists, _ := repo.Exists(ctx, trackerID, day); exists {
			t.Error("expected no record after toggling off")
		}
	})

	t.Run("day granularity ignores the time of day", func(t *testing.T) {
		repo := NewRecordRepository(newTestDB(t))
		trackerID := uuid.New()

		morning := time.Date(2024, 3, 15, 8, 30, 0, 0, time.UTC)
		evening := time.Date(2024, 3, 15, 21, 0, 0, 0, time.UTC)

		if err := repo.Create(ctx, trackerID, morning); err != nil {
			t.Fatalf("create: %v", err)
		}
		if exists, _ := repo.Exists(ctx, trackerID, evening); !exists {
			t.Error("expected the evening instant to hit the same day record")
		}
	})

	t.Run("duplicate day insert violates the unique index", func(t *testing.T) {
		repo := NewRecordRepository(newTestDB(t))
		trackerID := uuid.New()

		if err := repo.Create(ctx, trackerID, day); err != nil {
			t.Fatalf("create: %v", err)
		}
		if err := repo.Create(ctx, trackerID, day); err == nil {
			t.Error("expected a uniqueness violation on the second insert")
		}
	})

	t.Run("counts are scoped per tracker", func(t *testing.T) {
		repo := NewRecordRepository(newTestDB(t))
		a, b := uuid.New(), uuid.New()

		_ = repo.Create(ctx, a, day)
		_ = repo.Create(ctx, a, day.AddDate(0, 0, -1))
		_ = repo.Create(ctx, b, day)

		if count, _ := repo.Count(ctx, a); count != 2 {
			t.Errorf("expected 2 records for a, got %d", count)
		}
		if total, _ := repo.CountAll(ctx); total != 3 {
			t.Errorf("expected 3 records in total, got %d", total)
		}
	})

}

func TestSettingRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("absent keys read as empty", func(t *testing.T) {
		repo := NewSettingRepository(newTestDB(t))

		value, err := repo.Get(ctx, "missing")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if value != "" {
			t.Errorf("expected empty value, got %q", value)
		}
	})

	t.Run("set overwrites previous values", func(t *testing.T) {
		repo := NewSettingRepository(newTestDB(t))

		if err := repo.Set(ctx, "pinned_category_name", "Pinned"); err != nil {
			t.Fatalf("set: %v", err)
		}
		if err := repo.Set(ctx, "pinned_category_name", "Angeheftet"); err != nil {
			t.Fatalf("overwrite: %v", err)
		}

		value, err := repo.Get(ctx, "pinned_category_name")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if value != "Angeheftet" {
			t.Errorf("expected overwritten value, got %q", value)
		}
	})
}
