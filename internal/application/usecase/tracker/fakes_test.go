package tracker

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

// In-memory doubles for the persistence adapters.

type memTrackerRepo struct {
	trackers   map[uuid.UUID]*entity.Tracker
	containers map[uuid.UUID]string

	// records, when set, is cascaded by DeleteWithRecords the way the
	// real repository cascades inside one transaction.
	records   *memRecordRepo
	deleteErr error
}

func newMemTrackerRepo() *memTrackerRepo {
	return &memTrackerRepo{
		trackers:   make(map[uuid.UUID]*entity.Tracker),
		containers: make(map[uuid.UUID]string),
	}
}

func (r *memTrackerRepo) Create(_ context.Context, tracker *entity.Tracker, categoryName string) error {
	r.trackers[tracker.ID] = tracker
	r.containers[tracker.ID] = categoryName
	return nil
}

func (r *memTrackerRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Tracker, error) {
	tracker, ok := r.trackers[id]
	if !ok {
		return nil, domainerror.ErrTrackerNotFound
	}
	copied := *tracker
	return &copied, nil
}

func (r *memTrackerRepo) FindAll(_ context.Context) ([]*entity.Tracker, error) {
	all := make([]*entity.Tracker, 0, len(r.trackers))
	for _, tracker := range r.trackers {
		copied := *tracker
		all = append(all, &copied)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return all, nil
}

func (r *memTrackerRepo) Update(_ context.Context, tracker *entity.Tracker) error {
	if _, ok := r.trackers[tracker.ID]; !ok {
		return domainerror.ErrTrackerNotFound
	}
	copied := *tracker
	r.trackers[tracker.ID] = &copied
	return nil
}

func (r *memTrackerRepo) UpdateAndMove(_ context.Context, tracker *entity.Tracker, categoryName string) error {
	if _, ok := r.trackers[tracker.ID]; !ok {
		return domainerror.ErrTrackerNotFound
	}
	copied := *tracker
	r.trackers[tracker.ID] = &copied
	r.containers[tracker.ID] = categoryName
	return nil
}

func (r *memTrackerRepo) DeleteWithRecords(_ context.Context, id uuid.UUID) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	if _, ok := r.trackers[id]; !ok {
		return domainerror.ErrTrackerNotFound
	}
	delete(r.trackers, id)
	delete(r.containers, id)
	if r.records != nil {
		delete(r.records.records, id)
	}
	return nil
}

type memCategoryRepo struct {
	categories map[string]*entity.Category
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
	return nil
}

func (r *memCategoryRepo) ExistsByName(_ context.Context, name string) (bool, error) {
	_, ok := r.categories[name]
	return ok, nil
}

type memRecordRepo struct {
	records map[uuid.UUID]map[time.Time]bool
}

func newMemRecordRepo() *memRecordRepo {
	return &memRecordRepo{records: make(map[uuid.UUID]map[time.Time]bool)}
}

func (r *memRecordRepo) days(trackerID uuid.UUID) map[time.Time]bool {
	if r.records[trackerID] == nil {
		r.records[trackerID] = make(map[time.Time]bool)
	}
	return r.records[trackerID]
}

func (r *memRecordRepo) Create(_ context.Context, trackerID uuid.UUID, date time.Time) error {
	r.days(trackerID)[entity.DayOf(date)] = true
	return nil
}

func (r *memRecordRepo) Delete(_ context.Context, trackerID uuid.UUID, date time.Time) error {
	delete(r.days(trackerID), entity.DayOf(date))
	return nil
}

func (r *memRecordRepo) Exists(_ context.Context, trackerID uuid.UUID, date time.Time) (bool, error) {
	return r.days(trackerID)[entity.DayOf(date)], nil
}

func (r *memRecordRepo) Toggle(_ context.Context, trackerID uuid.UUID, date time.Time) (bool, error) {
	day := entity.DayOf(date)
	days := r.days(trackerID)
	if days[day] {
		delete(days, day)
		return false, nil
	}
	days[day] = true
	return true, nil
}

func (r *memRecordRepo) Count(_ context.Context, trackerID uuid.UUID) (int64, error) {
	return int64(len(r.days(trackerID))), nil
}

func (r *memRecordRepo) CountAll(_ context.Context) (int64, error) {
	var total int64
	for _, days := range r.records {
		total += int64(len(days))
	}
	return total, nil
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

type memStatsCache struct {
	total         int64
	present       bool
	invalidations int
}

func (c *memStatsCache) GetCompletedTotal(_ context.Context) (int64, bool, error) {
	return c.total, c.present, nil
}

func (c *memStatsCache) SetCompletedTotal(_ context.Context, total int64) error {
	c.total = total
	c.present = true
	return nil
}

func (c *memStatsCache) Invalidate(_ context.Context) error {
	c.present = false
	c.invalidations++
	return nil
}
