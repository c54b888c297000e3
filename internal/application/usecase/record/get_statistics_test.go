package record

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestGetStatisticsUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("counts every record across trackers", func(t *testing.T) {
		recordRepo := newMemRecordRepo()
		a, b := uuid.New(), uuid.New()
		_ = recordRepo.Create(ctx, a, time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC))
		_ = recordRepo.Create(ctx, a, time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC))
		_ = recordRepo.Create(ctx, b, time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC))

		uc := NewGetStatisticsUseCase(recordRepo, nil)

		output, err := uc.Execute(ctx, GetStatisticsInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.CompletedTotal != 3 {
			t.Errorf("expected 3 completions, got %d", output.CompletedTotal)
		}
	})

	t.Run("cache hit skips the store", func(t *testing.T) {
		recordRepo := newMemRecordRepo()
		cache := &memStatsCache{total: 42, present: true}

		uc := NewGetStatisticsUseCase(recordRepo, cache)

		output, err := uc.Execute(ctx, GetStatisticsInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.CompletedTotal != 42 {
			t.Errorf("expected cached total 42, got %d", output.CompletedTotal)
		}
	})

	t.Run("cache miss populates the cache", func(t *testing.T) {
		recordRepo := newMemRecordRepo()
		_ = recordRepo.Create(ctx, uuid.New(), time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC))
		cache := &memStatsCache{}

		uc := NewGetStatisticsUseCase(recordRepo, cache)

		output, err := uc.Execute(ctx, GetStatisticsInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.CompletedTotal != 1 {
			t.Errorf("expected total 1, got %d", output.CompletedTotal)
		}
		if cache.sets != 1 || cache.total != 1 {
			t.Errorf("expected cache populated with 1, got sets=%d total=%d", cache.sets, cache.total)
		}
	})
}
