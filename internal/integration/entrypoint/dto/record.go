package dto

// ToggleRecordRequest represents the request body for toggling completion.
type ToggleRecordRequest struct {
	Date string `json:"date" binding:"required"`
}

// ToggleRecordResponse represents the response of toggling completion.
type ToggleRecordResponse struct {
	IsCompleted   bool  `json:"is_completed"`
	CompletedDays int64 `json:"completed_days"`
}

// StatisticsResponse represents the derived completion statistics.
type StatisticsResponse struct {
	CompletedTotal int64 `json:"completed_total"`
}
