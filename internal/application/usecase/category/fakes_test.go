package category

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

type memCategoryRepo struct {
	categories map[string]*entity.Category
	renames    [][2]string
	existsErr  error
}

func newMemCategoryRepo(names ...string) *memCategoryRepo {
	repo := &memCategoryRepo{categories: make(map[string]*entity.Category)}
	for _, name := range names {
		repo.categories[name] = entity.NewCategory(name)
	}
	return repo
}

func (r *memCategoryRepo) Create(_ context.Context, category *entity.Category) error {
	r.categories[category.Name] = category
	return nil
}

func (r *memCategoryRepo) FindByName(_ context.Context, name string) (*entity.Category, error) {
	category, ok := r.categories[name]
	if !ok {
		return nil, domainerror.ErrCategoryNotFound
	}
	return category, nil
}

func (r *memCategoryRepo) FindAll(_ context.Context) ([]*entity.Category, error) {
	all := make([]*entity.Category, 0, len(r.categories))
	for _, category := range r.categories {
		all = append(all, category)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return all, nil
}

func (r *memCategoryRepo) Rename(_ context.Context, oldName, newName string) error {
	category, ok := r.categories[oldName]
	if !ok {
		return domainerror.ErrCategoryNotFound
	}
	delete(r.categories, oldName)
	category.Name = newName
	r.categories[newName] = category
	r.renames = append(r.renames, [2]string{oldName, newName})
	return nil
}

func (r *memCategoryRepo) ExistsByName(_ context.Context, name string) (bool, error) {
	if r.existsErr != nil {
		return false, r.existsErr
	}
	_, ok := r.categories[name]
	return ok, nil
}

type memTrackerRepo struct {
	trackers []*entity.Tracker
}

func (r *memTrackerRepo) Create(_ context.Context, tracker *entity.Tracker, _ string) error {
	r.trackers = append(r.trackers, tracker)
	return nil
}

func (r *memTrackerRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Tracker, error) {
	for _, tracker := range r.trackers {
		if tracker.ID == id {
			return tracker, nil
		}
	}
	return nil, domainerror.ErrTrackerNotFound
}

func (r *memTrackerRepo) FindAll(_ context.Context) ([]*entity.Tracker, error) {
	return r.trackers, nil
}

func (r *memTrackerRepo) Update(_ context.Context, _ *entity.Tracker) error {
	return nil
}

func (r *memTrackerRepo) UpdateAndMove(_ context.Context, _ *entity.Tracker, _ string) error {
	return nil
}

func (r *memTrackerRepo) DeleteWithRecords(_ context.Context, _ uuid.UUID) error {
	return nil
}

type memSettingRepo struct {
	values map[string]string
}

func newMemSettingRepo() *memSettingRepo {
	return &memSettingRepo{values: make(map[string]string)}
}

func (r *memSettingRepo) Get(_ context.Context, key string) (string, error) {
	return r.values[key], nil
}

func (r *memSettingRepo) Set(_ context.Context, key, value string) error {
	r.values[key] = value
	return nil
}
