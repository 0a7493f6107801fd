package models

// PostingStatus is the lifecycle state of a job posting.
type PostingStatus string

const (
	PostingActive PostingStatus = "ACTIVE"
	PostingPaused PostingStatus = "PAUSED"
	PostingClosed PostingStatus = "CLOSED"
	// PostingFilled is reserved for future auto-fill logic; no transition
	// currently produces it.
	PostingFilled PostingStatus = "FILLED"
)

// ApplicantStatus is the per-applicant pipeline state.
type ApplicantStatus string

const (
	ApplicantPending  ApplicantStatus = "PENDING"
	ApplicantAccepted ApplicantStatus = "ACCEPTED"
	ApplicantRejected ApplicantStatus = "REJECTED"
	ApplicantHired    ApplicantStatus = "HIRED"
	// Reserved for multi-step interview flows; never entered today.
	ApplicantReviewing    ApplicantStatus = "REVIEWING"
	ApplicantInterviewing ApplicantStatus = "INTERVIEWING"
)

// JobPosting is an employer-created opening that collects applicants over
// time. Applicants accumulate and are never replaced.
type JobPosting struct {
	ID            string         `json:"id"`
	Position      Position       `json:"position"`
	RequiredSkill SkillKind      `json:"required_skill"`
	MinSkillLevel int            `json:"min_skill_level"`
	SalaryMin     int            `json:"salary_min"`
	SalaryMax     int            `json:"salary_max"`
	Status        PostingStatus  `json:"status"`
	PostedOn      GameDate       `json:"posted_on"`
	Applicants    []JobApplicant `json:"applicants"`
}

// AverageSalary returns the midpoint of the posting's salary band.
func (p JobPosting) AverageSalary() int {
	return (p.SalaryMin + p.SalaryMax) / 2
}

// PendingApplicants counts applicants still awaiting an interview.
func (p JobPosting) PendingApplicants() int {
	n := 0
	for _, a := range p.Applicants {
		if a.Status == ApplicantPending {
			n++
		}
	}
	return n
}

// Applicant returns the applicant with the given id, if present.
func (p JobPosting) Applicant(id string) (JobApplicant, bool) {
	for _, a := range p.Applicants {
		if a.ID == id {
			return a, true
		}
	}
	return JobApplicant{}, false
}

// JobApplicant is a candidate attached to one posting, with its own status
// independent of the candidate record.
type JobApplicant struct {
	ID             string          `json:"id"`
	Candidate      TalentCandidate `json:"candidate"`
	AppliedOn      GameDate        `json:"applied_on"`
	Status         ApplicantStatus `json:"status"`
	InterviewScore *int            `json:"interview_score,omitempty"`
	InterviewNotes string          `json:"interview_notes,omitempty"`
}

// InterviewType distinguishes who ran an interview.
type InterviewType string

const (
	InterviewPlayer InterviewType = "PLAYER"
	InterviewHR     InterviewType = "HR"
)

// InterviewResult is the ephemeral outcome of one interview. It is folded
// into the applicant's stored score, notes and status.
type InterviewResult struct {
	ApplicantID string        `json:"applicant_id"`
	Type        InterviewType `json:"type"`
	Score       int           `json:"score"`
	Passed      bool          `json:"passed"`
	Notes       string        `json:"notes"`
}
