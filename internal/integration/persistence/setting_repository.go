package persistence

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/integration/persistence/model"
)

// settingRepository implements the adapter.SettingRepository interface.
type settingRepository struct {
	db *gorm.DB
}

// NewSettingRepository creates a new setting repository instance.
func NewSettingRepository(db *gorm.DB) adapter.SettingRepository {
	return &settingRepository{
		db: db,
	}
}

// Get returns the value for a key, or "" when the key is absent.
func (r *settingRepository) Get(ctx context.Context, key string) (string, error) {
	var settingModel model.SettingModel
	result := r.db.WithContext(ctx).Where("key = ?", key).First(&settingModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", result.Error
	}
	return settingModel.Value, nil
}

// Set stores the value for a key, overwriting any previous value.
func (r *settingRepository) Set(ctx context.Context, key, value string) error {
	settingModel := model.SettingModel{
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now().UTC(),
	}
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&settingModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
