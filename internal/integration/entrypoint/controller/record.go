package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/habit-tracker/backend/internal/application/usecase/record"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
	"github.com/habit-tracker/backend/internal/integration/entrypoint/dto"
)

// RecordController handles completion ledger endpoints.
type RecordController struct {
	toggleUseCase     *record.ToggleRecordUseCase
	statisticsUseCase *record.GetStatisticsUseCase
}

// NewRecordController creates a new record controller instance.
func NewRecordController(
	toggleUseCase *record.ToggleRecordUseCase,
	statisticsUseCase *record.GetStatisticsUseCase,
) *RecordController {
	return &RecordController{
		toggleUseCase:     toggleUseCase,
		statisticsUseCase: statisticsUseCase,
	}
}

// Toggle handles POST /trackers/:id/records/toggle requests.
func (c *RecordController) Toggle(ctx *gin.Context) {
	trackerID, ok := parseTrackerID(ctx)
	if !ok {
		return
	}

	var req dto.ToggleRecordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format, expected YYYY-MM-DD",
		})
		return
	}

	output, err := c.toggleUseCase.Execute(ctx.Request.Context(), record.ToggleRecordInput{
		TrackerID: trackerID,
		Date:      date,
	})
	if err != nil {
		handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToggleRecordResponse{
		IsCompleted:   output.IsCompleted,
		CompletedDays: output.CompletedDays,
	})
}

// Statistics handles GET /statistics requests.
func (c *RecordController) Statistics(ctx *gin.Context) {
	output, err := c.statisticsUseCase.Execute(ctx.Request.Context(), record.GetStatisticsInput{})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve statistics",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.StatisticsResponse{
		CompletedTotal: output.CompletedTotal,
	})
}

// handleRecordError maps ledger errors to HTTP responses.
func handleRecordError(ctx *gin.Context, err error) {
	var recErr *domainerror.RecordError
	if errors.As(err, &recErr) {
		status := http.StatusInternalServerError
		if recErr.Code == domainerror.ErrCodeRecordInFuture {
			status = http.StatusUnprocessableEntity
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: recErr.Message,
			Code:  string(recErr.Code),
		})
		return
	}

	handleTrackerError(ctx, err)
}
