package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studioops/internal/config"
	"studioops/pkg/models"
	"studioops/pkg/utils"
)

func testSession(t *testing.T, seed int64) *Session {
	t.Helper()
	cfg, err := config.LoadConfig("")
	require.NoError(t, err)
	cfg.Simulation.Seed = seed
	return NewSession(cfg)
}

func TestNewSessionSeedsMarket(t *testing.T) {
	s := testSession(t, 42)

	market := s.Market()
	assert.Len(t, market, 20)

	company := s.Company()
	assert.Equal(t, int64(100000), company.Funds)
	assert.Equal(t, int64(1000), company.Fans)
	assert.Equal(t, models.GameDate{Year: 2020, Month: 1, Day: 1}, company.Date)
	assert.Equal(t, 0, company.Employees)
}

func TestHireFromMarket(t *testing.T) {
	s := testSession(t, 42)

	candidate := s.Market()[0]
	employee, cost, err := s.HireFromMarket(candidate.ID)
	require.NoError(t, err)

	assert.Equal(t, candidate.Name, employee.Name)
	assert.Equal(t, 1, employee.ID)
	assert.Greater(t, cost, 0)

	company := s.Company()
	assert.Equal(t, int64(100000)-int64(cost), company.Funds)
	assert.Equal(t, 1, company.Employees)

	// Candidate leaves the pool and cannot be hired twice.
	assert.Len(t, s.Market(), 19)
	_, _, err = s.HireFromMarket(candidate.ID)
	assert.True(t, utils.HasReason(err, utils.ReasonNotFound))
}

func TestQuoteFeeMatchesHireCost(t *testing.T) {
	s := testSession(t, 7)
	candidate := s.Market()[0]

	breakdown, err := s.QuoteFee(candidate.ID)
	require.NoError(t, err)

	_, cost, err := s.HireFromMarket(candidate.ID)
	require.NoError(t, err)
	assert.Equal(t, breakdown.Fee, cost)
}

func TestRefreshMarketAvoidsRosterNames(t *testing.T) {
	s := testSession(t, 7)

	candidate := s.Market()[0]
	_, _, err := s.HireFromMarket(candidate.ID)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		for _, c := range s.RefreshMarket() {
			assert.NotEqual(t, candidate.Name, c.Name)
		}
	}
}

func TestHireApplicantChargesFee(t *testing.T) {
	s := testSession(t, 42)

	posting, err := s.CreatePosting(models.PositionProgrammer, 1, 20000, 24000)
	require.NoError(t, err)

	// Max-attractiveness posting: applicants arrive every day.
	for i := 0; i < 30; i++ {
		s.AdvanceDay()
	}
	got, err := s.Posting(posting.ID)
	require.NoError(t, err)
	require.NotEmpty(t, got.Applicants)

	applicant := got.Applicants[0]

	// Hiring before an interview is rejected and charges nothing.
	fundsBefore := s.Company().Funds
	_, _, err = s.HireApplicant(posting.ID, applicant.ID)
	assert.True(t, utils.HasReason(err, utils.ReasonInvalidState))
	assert.Equal(t, fundsBefore, s.Company().Funds)

	_, _, err = s.PlayerInterview(posting.ID, applicant.ID, true, "")
	require.NoError(t, err)

	employee, cost, err := s.HireApplicant(posting.ID, applicant.ID)
	require.NoError(t, err)
	assert.Equal(t, applicant.Candidate.Name, employee.Name)
	assert.Greater(t, cost, 0)
	assert.Equal(t, fundsBefore-int64(cost), s.Company().Funds)
	assert.Equal(t, 1, s.Company().Employees)

	// The applicant is HIRED now; a second hire fails without charging.
	fundsBefore = s.Company().Funds
	_, _, err = s.HireApplicant(posting.ID, applicant.ID)
	assert.True(t, utils.HasReason(err, utils.ReasonInvalidState))
	assert.Equal(t, fundsBefore, s.Company().Funds)
}

func TestAdvanceDayCalendar(t *testing.T) {
	s := testSession(t, 1)

	report := s.AdvanceDay()
	assert.Equal(t, models.GameDate{Year: 2020, Month: 1, Day: 2}, report.Date)
	assert.False(t, report.MonthRolled)
	assert.Equal(t, report.Date, s.Date())
}

func TestAdvanceMonthStopsAtBoundary(t *testing.T) {
	s := testSession(t, 1)

	reports := s.AdvanceMonth()
	require.Len(t, reports, 30)
	assert.True(t, reports[len(reports)-1].MonthRolled)
	assert.Equal(t, models.GameDate{Year: 2020, Month: 2, Day: 1}, s.Date())

	// A mid-month start still only runs to the next boundary.
	s.AdvanceDays(10)
	reports = s.AdvanceMonth()
	assert.Len(t, reports, 20)
	assert.Equal(t, models.GameDate{Year: 2020, Month: 3, Day: 1}, s.Date())
}

func TestMonthRollGeneratesComplaints(t *testing.T) {
	s := testSession(t, 42)

	_, err := s.AddProduct("Launch Title", models.BusinessOnline, true)
	require.NoError(t, err)

	// 12 month boundaries at 50% per month make zero complaints
	// vanishingly unlikely.
	for i := 0; i < 12; i++ {
		s.AdvanceMonth()
	}
	assert.NotEmpty(t, s.Complaints())
}

func TestOverdueComplaintsCostFans(t *testing.T) {
	s := testSession(t, 42)

	// Inject an already-overdue HIGH ticket with no support staff.
	s.mu.Lock()
	s.complaints = append(s.complaints, models.Complaint{
		ID: "cmpl_hot", ProductID: "prod_x", ProductName: "X",
		Type: models.ComplaintServer, Severity: models.SeverityHigh,
		Workload: 350, Status: models.ComplaintPending,
		CreatedOn: models.GameDate{Year: 2019, Month: 12, Day: 1},
	})
	s.mu.Unlock()

	fansBefore := s.Company().Fans
	report := s.AdvanceDay()
	assert.Equal(t, 50, report.FanLoss)
	assert.Equal(t, fansBefore-50, s.Company().Fans)
}

func TestDismissEmployee(t *testing.T) {
	s := testSession(t, 42)

	candidate := s.Market()[0]
	employee, _, err := s.HireFromMarket(candidate.ID)
	require.NoError(t, err)

	require.NoError(t, s.DismissEmployee(employee.ID))
	assert.Equal(t, 0, s.Company().Employees)

	err = s.DismissEmployee(employee.ID)
	assert.True(t, utils.HasReason(err, utils.ReasonNotFound))
}

func TestAddProductValidation(t *testing.T) {
	s := testSession(t, 1)

	product, err := s.AddProduct("Indie Hit", models.BusinessSinglePlayer, true)
	require.NoError(t, err)
	assert.True(t, product.Released)

	_, err = s.AddProduct("Bad", "subscription", true)
	assert.True(t, utils.HasReason(err, utils.ReasonValidation))
}

func TestComplaintAssignmentFlow(t *testing.T) {
	s := testSession(t, 42)

	// Find and hire a support agent from the market, refreshing until one
	// shows up.
	var agent models.Employee
	for tries := 0; tries < 50; tries++ {
		for _, c := range s.Market() {
			if c.Position == models.PositionSupportAgent {
				hired, _, err := s.HireFromMarket(c.ID)
				require.NoError(t, err)
				agent = hired
				break
			}
		}
		if agent.ID != 0 {
			break
		}
		s.RefreshMarket()
	}
	require.NotZero(t, agent.ID, "market should eventually offer a support agent")

	s.mu.Lock()
	s.complaints = append(s.complaints, models.Complaint{
		ID: "cmpl_1", Severity: models.SeverityLow, Workload: 80,
		Status: models.ComplaintPending, CreatedOn: s.date,
	})
	s.mu.Unlock()

	require.NoError(t, s.AssignComplaint("cmpl_1", agent.ID))
	stats := s.ComplaintStatistics()
	assert.Equal(t, 1, stats.TotalInProgress)

	// Daily processing drives the ticket to completion.
	for i := 0; i < 5; i++ {
		s.AdvanceDay()
	}
	stats = s.ComplaintStatistics()
	assert.Equal(t, 0, stats.TotalInProgress)
	assert.Equal(t, 1, stats.CompletedThisMonth)
}

func TestAutoAssignThroughSession(t *testing.T) {
	s := testSession(t, 42)

	s.mu.Lock()
	s.employees = append(s.employees, models.Employee{
		ID: 1, Name: "Desk", Position: models.PositionSupportAgent,
		Skills: models.SkillSet{Service: 3}, Salary: 5000,
	})
	s.complaints = append(s.complaints,
		models.Complaint{ID: "cmpl_a", Severity: models.SeverityHigh, Workload: 350, Status: models.ComplaintPending, CreatedOn: s.date},
		models.Complaint{ID: "cmpl_b", Severity: models.SeverityLow, Workload: 80, Status: models.ComplaintPending, CreatedOn: s.date},
	)
	s.mu.Unlock()

	assigned, complaints := s.AutoAssignComplaints()
	assert.Equal(t, 2, assigned)
	for _, c := range complaints {
		assert.Equal(t, models.ComplaintInProgress, c.Status)
	}
}
