package models

// ComplaintType categorizes a support ticket. SERVER and PAYMENT only occur
// for online products.
type ComplaintType string

const (
	ComplaintBug     ComplaintType = "BUG"
	ComplaintBalance ComplaintType = "BALANCE"
	ComplaintContent ComplaintType = "CONTENT"
	ComplaintServer  ComplaintType = "SERVER"
	ComplaintPayment ComplaintType = "PAYMENT"
	ComplaintOther   ComplaintType = "OTHER"
)

// ComplaintSeverity grades a ticket. Each severity maps to a configured
// workload, SLA threshold and daily breach penalty.
type ComplaintSeverity string

const (
	SeverityLow    ComplaintSeverity = "LOW"
	SeverityMedium ComplaintSeverity = "MEDIUM"
	SeverityHigh   ComplaintSeverity = "HIGH"
)

// Rank orders severities for assignment priority, highest first.
func (s ComplaintSeverity) Rank() int {
	switch s {
	case SeverityHigh:
		return 2
	case SeverityMedium:
		return 1
	default:
		return 0
	}
}

// ComplaintStatus is the processing state of a ticket.
type ComplaintStatus string

const (
	ComplaintPending    ComplaintStatus = "PENDING"
	ComplaintInProgress ComplaintStatus = "IN_PROGRESS"
	ComplaintCompleted  ComplaintStatus = "COMPLETED"
)

// Complaint is a support ticket raised against a released product. Progress
// never exceeds Workload; status is COMPLETED iff Progress == Workload.
type Complaint struct {
	ID          string            `json:"id"`
	ProductID   string            `json:"product_id"`
	ProductName string            `json:"product_name"`
	Type        ComplaintType     `json:"type"`
	Severity    ComplaintSeverity `json:"severity"`
	Workload    int               `json:"workload"`
	Progress    int               `json:"progress"`
	AssignedTo  *int              `json:"assigned_to,omitempty"`
	Status      ComplaintStatus   `json:"status"`
	CreatedOn   GameDate          `json:"created_on"`
	CompletedOn *GameDate         `json:"completed_on,omitempty"`
}

// AgeDays returns how many days the ticket has existed as of now.
func (c Complaint) AgeDays(now GameDate) int {
	return now.DaysSince(c.CreatedOn)
}

// ProgressPercent returns completion as an integer percentage.
func (c Complaint) ProgressPercent() int {
	if c.Workload <= 0 {
		return 100
	}
	return c.Progress * 100 / c.Workload
}
