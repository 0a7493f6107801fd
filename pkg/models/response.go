package models

import "time"

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Uptime    time.Duration     `json:"uptime"`
	Checks    map[string]string `json:"checks,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	RequestID string    `json:"request_id"`
	Timestamp time.Time `json:"timestamp"`
}

// HireResponse reports a completed hire and the fee charged for it.
type HireResponse struct {
	Employee Employee `json:"employee"`
	Cost     int      `json:"cost"`
}

// InterviewResponse wraps an interview outcome together with the updated
// posting so callers never need a follow-up read.
type InterviewResponse struct {
	Result  InterviewResult `json:"result"`
	Posting JobPosting      `json:"posting"`
}

// AutoAssignResponse reports the bulk assignment outcome.
type AutoAssignResponse struct {
	Assigned   int         `json:"assigned"`
	Complaints []Complaint `json:"complaints"`
}

// MarketStats summarizes the current talent-market pool.
type MarketStats struct {
	TotalCount           int              `json:"total_count"`
	AverageSalary        int              `json:"average_salary"`
	AverageSkillLevel    float64          `json:"average_skill_level"`
	AverageExperience    int              `json:"average_experience"`
	PositionDistribution map[Position]int `json:"position_distribution"`
}

// ComplaintStats summarizes ticket load for the current month.
type ComplaintStats struct {
	TotalPending       int `json:"total_pending"`
	TotalInProgress    int `json:"total_in_progress"`
	CompletedThisMonth int `json:"completed_this_month"`
	NewThisMonth       int `json:"new_this_month"`
}
