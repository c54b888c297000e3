package record

import (
	"context"
	"log/slog"

	"github.com/habit-tracker/backend/internal/application/adapter"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

// GetStatisticsInput represents the input for reading statistics.
type GetStatisticsInput struct{}

// GetStatisticsOutput represents the derived completion statistics.
type GetStatisticsOutput struct {
	// CompletedTotal is the number of completion records across all
	// trackers and dates.
	CompletedTotal int64
}

// GetStatisticsUseCase derives completion statistics from the ledger,
// consulting the cache first when one is configured.
type GetStatisticsUseCase struct {
	recordRepo adapter.RecordRepository
	statsCache adapter.StatsCache
}

// NewGetStatisticsUseCase creates a new GetStatisticsUseCase instance.
func NewGetStatisticsUseCase(recordRepo adapter.RecordRepository, statsCache adapter.StatsCache) *GetStatisticsUseCase {
	return &GetStatisticsUseCase{
		recordRepo: recordRepo,
		statsCache: statsCache,
	}
}

// Execute returns the completed-total statistic.
func (uc *GetStatisticsUseCase) Execute(ctx context.Context, _ GetStatisticsInput) (*GetStatisticsOutput, error) {
	if uc.statsCache != nil {
		total, ok, err := uc.statsCache.GetCompletedTotal(ctx)
		if err != nil {
			slog.Warn("Statistics cache read failed, falling back to store", "error", err)
		} else if ok {
			return &GetStatisticsOutput{CompletedTotal: total}, nil
		}
	}

	total, err := uc.recordRepo.CountAll(ctx)
	if err != nil {
		return nil, domainerror.NewRecordError(domainerror.ErrCodeRecordStorage, "failed to count completion records", err)
	}

	if uc.statsCache != nil {
		if err := uc.statsCache.SetCompletedTotal(ctx, total); err != nil {
			slog.Warn("Statistics cache write failed", "error", err)
		}
	}

	return &GetStatisticsOutput{CompletedTotal: total}, nil
}
