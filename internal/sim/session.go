package sim

import (
	"fmt"
	"math/rand"
	"sync"

	"studioops/internal/config"
	"studioops/internal/postings"
	"studioops/internal/recruit"
	"studioops/internal/support"
	"studioops/internal/talent"
	"studioops/pkg/models"
	"studioops/pkg/utils"
)

// Session owns the entire simulation state: calendar, funds, fans, roster,
// products, complaints and the open talent market. All mutation goes
// through the session mutex; the engine packages themselves stay
// stateless apart from the posting store.
type Session struct {
	mu sync.Mutex

	cfg *config.Config
	rng *rand.Rand

	date       models.GameDate
	funds      int64
	fans       int64
	employees  []models.Employee
	products   []models.Product
	complaints []models.Complaint
	market     []models.TalentCandidate

	generator *talent.Generator
	pricer    *recruit.Pricer
	pipeline  *postings.Pipeline
	ops       *support.Operations
	store     postings.Store
}

// NewSession boots a fresh simulation from configuration. The market is
// seeded immediately so a new company can hire on day one.
func NewSession(cfg *config.Config) *Session {
	rng := utils.NewSeededRNG(cfg.Simulation.Seed)
	generator := talent.NewGenerator(cfg, rng)
	store := postings.NewMemoryStore()

	s := &Session{
		cfg:       cfg,
		rng:       rng,
		date:      models.GameDate{Year: cfg.Simulation.StartYear, Month: 1, Day: 1},
		funds:     cfg.Simulation.StartMoney,
		fans:      cfg.Simulation.StartFans,
		generator: generator,
		pricer:    recruit.NewPricer(cfg),
		pipeline:  postings.NewPipeline(cfg, rng, store, generator),
		ops:       support.NewOperations(cfg, rng),
		store:     store,
	}
	s.market = generator.Generate(cfg.Simulation.MarketSize, nil)
	return s
}

// CompanyState is a read-only snapshot of the company for API consumers.
type CompanyState struct {
	Date      models.GameDate  `json:"date"`
	Funds     int64            `json:"funds"`
	Fans      int64            `json:"fans"`
	Employees int              `json:"employees"`
	Capacity  int              `json:"capacity"`
	Products  []models.Product `json:"products"`
}

// DayReport summarizes one simulated day.
type DayReport struct {
	Date                models.GameDate `json:"date"`
	NewApplicants       int             `json:"new_applicants"`
	NewComplaints       int             `json:"new_complaints"`
	CompletedComplaints int             `json:"completed_complaints"`
	FanLoss             int             `json:"fan_loss"`
	MonthRolled         bool            `json:"month_rolled"`
}

// Company returns the current company snapshot.
func (s *Session) Company() CompanyState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return CompanyState{
		Date:      s.date,
		Funds:     s.funds,
		Fans:      s.fans,
		Employees: len(s.employees),
		Capacity:  s.pricer.Capacity(s.funds),
		Products:  append([]models.Product(nil), s.products...),
	}
}

// Date returns the current in-game date.
func (s *Session) Date() models.GameDate {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.date
}

// Employees returns a copy of the roster.
func (s *Session) Employees() []models.Employee {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Employee(nil), s.employees...)
}

// Complaints returns a copy of the ticket list.
func (s *Session) Complaints() []models.Complaint {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Complaint(nil), s.complaints...)
}

// ComplaintStatistics summarizes the current ticket queue.
func (s *Session) ComplaintStatistics() models.ComplaintStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ops.Statistics(s.complaints, s.date)
}

// Market returns the open candidate pool.
func (s *Session) Market() []models.TalentCandidate {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.TalentCandidate(nil), s.market...)
}

// RefreshMarket regenerates the candidate pool, keeping names disjoint
// from the current roster.
func (s *Session) RefreshMarket() []models.TalentCandidate {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.market = s.generator.Generate(s.cfg.Simulation.MarketSize, s.reservedNamesLocked())
	return append([]models.TalentCandidate(nil), s.market...)
}

// QuoteFee itemizes the recruitment fee for a market candidate without
// committing to the hire.
func (s *Session) QuoteFee(candidateID string) (recruit.FeeBreakdown, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	candidate, _, err := s.marketCandidateLocked(candidateID)
	if err != nil {
		return recruit.FeeBreakdown{}, err
	}
	return s.pricer.Breakdown(candidate), nil
}

// HireFromMarket hires a market candidate: the recruitment fee is deducted,
// the employee joins the roster and the candidate leaves the pool.
func (s *Session) HireFromMarket(candidateID string) (models.Employee, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	candidate, idx, err := s.marketCandidateLocked(candidateID)
	if err != nil {
		return models.Employee{}, 0, err
	}

	outcome, err := s.pricer.Hire(candidate, s.funds, s.employees)
	if err != nil {
		return models.Employee{}, 0, err
	}

	s.applyHireLocked(outcome)
	s.market = append(s.market[:idx], s.market[idx+1:]...)
	return outcome.Employee, outcome.Cost, nil
}

func (s *Session) marketCandidateLocked(candidateID string) (models.TalentCandidate, int, error) {
	for i, c := range s.market {
		if c.ID == candidateID {
			return c, i, nil
		}
	}
	return models.TalentCandidate{}, 0, utils.NewNotFoundError(fmt.Sprintf("candidate %s", candidateID))
}

func (s *Session) applyHireLocked(outcome recruit.HireOutcome) {
	s.employees = append(s.employees, outcome.Employee)
	s.funds -= int64(outcome.Cost)
}

// PostingsSnapshot copies the posting store for external persistence.
func (s *Session) PostingsSnapshot() []models.JobPosting {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Snapshot()
}

// RestorePostings replaces the posting store contents, e.g. when loading a
// saved game.
func (s *Session) RestorePostings(saved []models.JobPosting) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.store.Restore(saved)
}

// CreatePosting opens a new job posting dated today.
func (s *Session) CreatePosting(position models.Position, minSkillLevel, salaryMin, salaryMax int) (models.JobPosting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pipeline.Create(position, minSkillLevel, salaryMin, salaryMax, s.date)
}

// Posting returns one posting.
func (s *Session) Posting(id string) (models.JobPosting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pipeline.Get(id)
}

// Postings returns all postings.
func (s *Session) Postings() []models.JobPosting {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pipeline.List()
}

// PausePosting suspends an active posting.
func (s *Session) PausePosting(id string) (models.JobPosting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pipeline.Pause(id)
}

// ResumePosting reactivates a paused posting.
func (s *Session) ResumePosting(id string) (models.JobPosting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pipeline.Resume(id)
}

// ClosePosting terminally closes a posting.
func (s *Session) ClosePosting(id string) (models.JobPosting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pipeline.Close(id)
}

// PlayerInterview records a manual interview decision.
func (s *Session) PlayerInterview(postingID, applicantID string, accept bool, notes string) (models.InterviewResult, models.JobPosting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pipeline.PlayerInterview(postingID, applicantID, accept, notes)
}

// HRInterview runs the automated interview.
func (s *Session) HRInterview(postingID, applicantID string) (models.InterviewResult, models.JobPosting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pipeline.HRInterview(postingID, applicantID)
}

// HireApplicant hires an accepted applicant off a posting. The same
// affordability and capacity gate applies as for market hires, so both
// hiring paths charge the recruitment fee.
func (s *Session) HireApplicant(postingID, applicantID string) (models.Employee, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	posting, err := s.pipeline.Get(postingID)
	if err != nil {
		return models.Employee{}, 0, err
	}
	applicant, ok := posting.Applicant(applicantID)
	if !ok {
		return models.Employee{}, 0, utils.NewNotFoundError(fmt.Sprintf("applicant %s", applicantID))
	}

	outcome, err := s.pricer.Hire(applicant.Candidate, s.funds, s.employees)
	if err != nil {
		return models.Employee{}, 0, err
	}

	// The pipeline enforces the ACCEPTED requirement; nothing has been
	// charged yet if it refuses.
	if _, _, err := s.pipeline.HireApplicant(postingID, applicantID); err != nil {
		return models.Employee{}, 0, err
	}

	s.applyHireLocked(outcome)
	return outcome.Employee, outcome.Cost, nil
}

// AssignComplaint manually assigns a ticket to a support agent.
func (s *Session) AssignComplaint(complaintID string, employeeID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated, err := s.ops.Assign(s.complaints, complaintID, employeeID, s.employees)
	if err != nil {
		return err
	}
	s.complaints = updated
	return nil
}

// UnassignComplaint takes a ticket off its agent.
func (s *Session) UnassignComplaint(complaintID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated, err := s.ops.Unassign(s.complaints, complaintID)
	if err != nil {
		return err
	}
	s.complaints = updated
	return nil
}

// AutoAssignComplaints distributes all unassigned pending tickets across
// the support staff and returns how many were assigned.
func (s *Session) AutoAssignComplaints() (int, []models.Complaint) {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated, assigned := s.ops.AutoAssign(s.complaints, s.employees)
	s.complaints = updated
	return assigned, append([]models.Complaint(nil), s.complaints...)
}

// DismissEmployee removes an employee from the roster. Their tickets are
// recovered on the next daily pass rather than eagerly.
func (s *Session) DismissEmployee(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, e := range s.employees {
		if e.ID == id {
			s.employees = append(s.employees[:i], s.employees[i+1:]...)
			return nil
		}
	}
	return utils.NewNotFoundError(fmt.Sprintf("employee %d", id))
}

// AddProduct registers a product. Released products start attracting
// complaints on the next month boundary.
func (s *Session) AddProduct(name string, businessModel models.BusinessModel, released bool) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !businessModel.Valid() {
		return models.Product{}, utils.NewValidationError(fmt.Sprintf("unknown business model %q", businessModel))
	}

	product := models.Product{
		ID:            utils.NewEntityID("prod"),
		Name:          name,
		BusinessModel: businessModel,
		Released:      released,
	}
	s.products = append(s.products, product)
	return product, nil
}

// AdvanceDay runs one day of simulation: applicants arrive, the daily
// complaint trickle rolls, assigned tickets progress, SLA penalties accrue,
// and on a month boundary the monthly complaint wave fires and old tickets
// are pruned.
func (s *Session) AdvanceDay() DayReport {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.advanceDayLocked()
}

func (s *Session) advanceDayLocked() DayReport {
	next := s.date.NextDay()
	report := DayReport{Date: next}

	report.NewApplicants = s.pipeline.GenerateApplicants(next, 1, s.reservedNamesLocked())

	trickle := s.ops.GenerateDaily(s.products, next)
	s.complaints = append(s.complaints, trickle...)
	report.NewComplaints += len(trickle)

	var completed int
	s.complaints, completed = s.ops.ProcessDaily(s.complaints, s.employees, next)
	report.CompletedComplaints = completed

	report.FanLoss = s.ops.DailyOverdueLoss(s.complaints, next)
	s.fans -= int64(report.FanLoss)
	if s.fans < 0 {
		s.fans = 0
	}

	if !next.SameMonth(s.date) {
		report.MonthRolled = true
		wave := s.ops.GenerateMonthly(s.products, next)
		s.complaints = append(s.complaints, wave...)
		report.NewComplaints += len(wave)
		s.complaints = s.ops.Cleanup(s.complaints, next)
	}

	s.date = next
	return report
}

// AdvanceMonth runs days until the month rolls over and returns the
// per-day reports.
func (s *Session) AdvanceMonth() []DayReport {
	s.mu.Lock()
	defer s.mu.Unlock()

	var reports []DayReport
	for {
		report := s.advanceDayLocked()
		reports = append(reports, report)
		if report.MonthRolled {
			return reports
		}
	}
}

// AdvanceDays runs n consecutive days.
func (s *Session) AdvanceDays(n int) []DayReport {
	s.mu.Lock()
	defer s.mu.Unlock()

	reports := make([]DayReport, 0, n)
	for i := 0; i < n; i++ {
		reports = append(reports, s.advanceDayLocked())
	}
	return reports
}

// reservedNamesLocked collects every name new candidates must avoid:
// the roster plus the open market pool. Posting applicants are excluded
// by the pipeline itself.
func (s *Session) reservedNamesLocked() []string {
	names := make([]string, 0, len(s.employees)+len(s.market))
	for _, e := range s.employees {
		names = append(names, e.Name)
	}
	for _, c := range s.market {
		names = append(names, c.Name)
	}
	return names
}
