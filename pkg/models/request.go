package models

// CreatePostingRequest is the payload for publishing a new job posting.
type CreatePostingRequest struct {
	Position      string `json:"position" validate:"required,oneof=programmer designer artist sound_engineer support_agent"`
	MinSkillLevel int    `json:"min_skill_level" validate:"required,min=1,max=5"`
	SalaryMin     int    `json:"salary_min" validate:"required,min=1"`
	SalaryMax     int    `json:"salary_max" validate:"required,gtefield=SalaryMin"`
}

// InterviewRequest selects the interview mode for an applicant. The player
// mode requires a decision; the hr mode scores automatically.
type InterviewRequest struct {
	Mode     string `json:"mode" validate:"required,oneof=player hr"`
	Decision *bool  `json:"decision,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

// AssignComplaintRequest assigns a support agent to a ticket.
type AssignComplaintRequest struct {
	EmployeeID int `json:"employee_id" validate:"required,min=1"`
}

// AddProductRequest registers a product with the company catalog.
type AddProductRequest struct {
	Name          string `json:"name" validate:"required"`
	BusinessModel string `json:"business_model" validate:"required,oneof=single_player online"`
	Released      bool   `json:"released"`
}

// AdvanceRequest moves the simulation clock forward by a number of days.
type AdvanceRequest struct {
	Days int `json:"days" validate:"omitempty,min=1,max=360"`
}
