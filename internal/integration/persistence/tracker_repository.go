package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
	"github.com/habit-tracker/backend/internal/integration/persistence/model"
)

// trackerRepository implements the adapter.TrackerRepository interface.
type trackerRepository struct {
	db *gorm.DB
}

// NewTrackerRepository creates a new tracker repository instance.
func NewTrackerRepository(db *gorm.DB) adapter.TrackerRepository {
	return &trackerRepository{
		db: db,
	}
}

// Create persists a new tracker under the named category.
func (r *trackerRepository) Create(ctx context.Context, tracker *entity.Tracker, categoryName string) error {
	trackerModel := model.TrackerFromEntity(tracker, categoryName)
	result := r.db.WithContext(ctx).Create(trackerModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a tracker by its identifier.
func (r *trackerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Tracker, error) {
	var trackerModel model.TrackerModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&trackerModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTrackerNotFound
		}
		return nil, result.Error
	}
	return trackerModel.ToEntity(), nil
}

// FindAll retrieves every tracker ordered by name ascending.
func (r *trackerRepository) FindAll(ctx context.Context) ([]*entity.Tracker, error) {
	var trackerModels []model.TrackerModel
	result := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&trackerModels)
	if result.Error != nil {
		return nil, result.Error
	}

	trackers := make([]*entity.Tracker, len(trackerModels))
	for i, tm := range trackerModels {
		trackers[i] = tm.ToEntity()
	}
	return trackers, nil
}

// Update persists scalar fields and pin state. The container column is
// left untouched.
func (r *trackerRepository) Update(ctx context.Context, tracker *entity.Tracker) error {
	return r.applyUpdate(ctx, tracker, nil)
}

// UpdateAndMove persists the tracker and reassigns its container in a
// single atomic update.
func (r *trackerRepository) UpdateAndMove(ctx context.Context, tracker *entity.Tracker, categoryName string) error {
	return r.applyUpdate(ctx, tracker, &categoryName)
}

func (r *trackerRepository) applyUpdate(ctx context.Context, tracker *entity.Tracker, categoryName *string) error {
	trackerModel := model.TrackerFromEntity(tracker, "")

	columns := map[string]any{
		"name":              trackerModel.Name,
		"emoji":             trackerModel.Emoji,
		"color":             trackerModel.Color,
		"schedule":          trackerModel.Schedule,
		"is_pinned":         trackerModel.IsPinned,
		"original_category": trackerModel.OriginalCategory,
		"updated_at":        trackerModel.UpdatedAt,
	}
	if categoryName != nil {
		columns["category_name"] = *categoryName
	}

	result := r.db.WithContext(ctx).
		Model(&model.TrackerModel{}).
		Where("id = ?", tracker.ID).
		Updates(columns)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrTrackerNotFound
	}
	return nil
}

// DeleteWithRecords removes the tracker and its completion records.
// Both deletes run in one transaction so a failure never leaves a
// tracker without its history or orphaned records behind.
func (r *trackerRepository) DeleteWithRecords(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tracker_id = ?", id).Delete(&model.RecordModel{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&model.TrackerModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrTrackerNotFound
		}
		return nil
	})
}
