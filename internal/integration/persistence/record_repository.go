package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
	"github.com/habit-tracker/backend/internal/integration/persistence/model"
)

// recordRepository implements the adapter.RecordRepository interface.
type recordRepository struct {
	db *gorm.DB
}

// NewRecordRepository creates a new completion record repository instance.
func NewRecordRepository(db *gorm.DB) adapter.RecordRepository {
	return &recordRepository{
		db: db,
	}
}

// Create stores a completion record for the tracker and day.
func (r *recordRepository) Create(ctx context.Context, trackerID uuid.UUID, date time.Time) error {
	recordModel := model.RecordFromEntity(entity.NewTrackerRecord(trackerID, date))
	result := r.db.WithContext(ctx).Create(recordModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes the completion record for the tracker and day.
func (r *recordRepository) Delete(ctx context.Context, trackerID uuid.UUID, date time.Time) error {
	result := r.db.WithContext(ctx).
		Where("tracker_id = ? AND completion_date = ?", trackerID, entity.DayOf(date)).
		Delete(&model.RecordModel{})
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Exists checks whether a completion record exists for the pair.
func (r *recordRepository) Exists(ctx context.Context, trackerID uuid.UUID, date time.Time) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.RecordModel{}).
		Where("tracker_id = ? AND completion_date = ?", trackerID, entity.DayOf(date)).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// Toggle flips the completion state inside one transaction so the
// check-then-act sequence cannot interleave with another writer. It
// returns the new state.
func (r *recordRepository) Toggle(ctx context.Context, trackerID uuid.UUID, date time.Time) (bool, error) {
	day := entity.DayOf(date)
	var completed bool

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.RecordModel
		result := tx.Where("tracker_id = ? AND completion_date = ?", trackerID, day).First(&existing)
		if result.Error == nil {
			completed = false
			return tx.Delete(&existing).Error
		}
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return result.Error
		}

		completed = true
		recordModel := model.RecordFromEntity(entity.NewTrackerRecord(trackerID, day))
		return tx.Create(recordModel).Error
	})
	if err != nil {
		return false, err
	}
	return completed, nil
}

// Count returns the number of records ever created for the tracker.
func (r *recordRepository) Count(ctx context.Context, trackerID uuid.UUID) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.RecordModel{}).
		Where("tracker_id = ?", trackerID).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

// CountAll returns the total number of completion records.
func (r *recordRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.RecordModel{}).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}
