package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/usecase/tracker"
	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
	"github.com/habit-tracker/backend/internal/domain/valueobject"
	"github.com/habit-tracker/backend/internal/integration/entrypoint/dto"
)

// TrackerController handles tracker endpoints.
type TrackerController struct {
	listUseCase   *tracker.ListTrackersUseCase
	createUseCase *tracker.CreateTrackerUseCase
	updateUseCase *tracker.UpdateTrackerUseCase
	deleteUseCase *tracker.DeleteTrackerUseCase
	pinUseCase    *tracker.PinTrackerUseCase
	unpinUseCase  *tracker.UnpinTrackerUseCase
}

// NewTrackerController creates a new tracker controller instance.
func NewTrackerController(
	listUseCase *tracker.ListTrackersUseCase,
	createUseCase *tracker.CreateTrackerUseCase,
	updateUseCase *tracker.UpdateTrackerUseCase,
	deleteUseCase *tracker.DeleteTrackerUseCase,
	pinUseCase *tracker.PinTrackerUseCase,
	unpinUseCase *tracker.UnpinTrackerUseCase,
) *TrackerController {
	return &TrackerController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
		pinUseCase:    pinUseCase,
		unpinUseCase:  unpinUseCase,
	}
}

// List handles GET /trackers requests: the visible list for a date,
// status filter and optional search text.
func (c *TrackerController) List(ctx *gin.Context) {
	input := tracker.ListTrackersInput{
		Filter: valueobject.TrackerFilter(ctx.DefaultQuery("filter", string(valueobject.FilterAll))),
		Search: ctx.Query("search"),
	}

	if dateStr := ctx.Query("date"); dateStr != "" {
		date, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid date format, expected YYYY-MM-DD",
			})
			return
		}
		input.Date = date
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleTrackerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToListTrackersResponse(output))
}

// Create handles POST /trackers requests.
func (c *TrackerController) Create(ctx *gin.Context) {
	var req dto.CreateTrackerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := tracker.CreateTrackerInput{
		Name:         req.Name,
		Emoji:        req.Emoji,
		Color:        entity.Color(req.Color),
		Schedule:     dto.ToWeekdays(req.Schedule),
		IsHabit:      req.IsHabit,
		CategoryName: req.Category,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleTrackerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTrackerResponse(output.Tracker))
}

// Update handles PATCH /trackers/:id requests.
func (c *TrackerController) Update(ctx *gin.Context) {
	trackerID, ok := parseTrackerID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateTrackerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := tracker.UpdateTrackerInput{
		TrackerID:    trackerID,
		Name:         req.Name,
		Emoji:        req.Emoji,
		Color:        entity.Color(req.Color),
		Schedule:     dto.ToWeekdays(req.Schedule),
		CategoryName: req.Category,
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleTrackerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTrackerResponse(output.Tracker))
}

// Delete handles DELETE /trackers/:id requests.
func (c *TrackerController) Delete(ctx *gin.Context) {
	trackerID, ok := parseTrackerID(ctx)
	if !ok {
		return
	}

	_, err := c.deleteUseCase.Execute(ctx.Request.Context(), tracker.DeleteTrackerInput{
		TrackerID: trackerID,
	})
	if err != nil {
		handleTrackerError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Pin handles POST /trackers/:id/pin requests.
func (c *TrackerController) Pin(ctx *gin.Context) {
	trackerID, ok := parseTrackerID(ctx)
	if !ok {
		return
	}

	output, err := c.pinUseCase.Execute(ctx.Request.Context(), tracker.PinTrackerInput{
		TrackerID: trackerID,
	})
	if err != nil {
		handleTrackerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTrackerResponse(output.Tracker))
}

// Unpin handles POST /trackers/:id/unpin requests.
func (c *TrackerController) Unpin(ctx *gin.Context) {
	trackerID, ok := parseTrackerID(ctx)
	if !ok {
		return
	}

	output, err := c.unpinUseCase.Execute(ctx.Request.Context(), tracker.UnpinTrackerInput{
		TrackerID: trackerID,
	})
	if err != nil {
		handleTrackerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTrackerResponse(output.Tracker))
}

// parseTrackerID parses the :id path parameter, answering the request
// itself on failure.
func parseTrackerID(ctx *gin.Context) (uuid.UUID, bool) {
	trackerID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid tracker ID format",
		})
		return uuid.Nil, false
	}
	return trackerID, true
}

// handleTrackerError maps tracker and category errors to HTTP responses.
func handleTrackerError(ctx *gin.Context, err error) {
	var trkErr *domainerror.TrackerError
	if errors.As(err, &trkErr) {
		ctx.JSON(statusCodeForTrackerError(trkErr.Code), dto.ErrorResponse{
			Error: trkErr.Message,
			Code:  string(trkErr.Code),
		})
		return
	}

	var catErr *domainerror.CategoryError
	if errors.As(err, &catErr) {
		ctx.JSON(statusCodeForCategoryError(catErr.Code), dto.ErrorResponse{
			Error: catErr.Message,
			Code:  string(catErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// statusCodeForTrackerError maps tracker error codes to HTTP status codes.
func statusCodeForTrackerError(code domainerror.TrackerErrorCode) int {
	switch code {
	case domainerror.ErrCodeTrackerNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeTrackerNameEmpty,
		domainerror.ErrCodeTrackerEmojiMissing,
		domainerror.ErrCodeTrackerColorInvalid,
		domainerror.ErrCodeTrackerScheduleEmpty,
		domainerror.ErrCodeInvalidFilter:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
