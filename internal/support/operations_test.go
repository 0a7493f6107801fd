package support

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studioops/internal/config"
	"studioops/pkg/models"
	"studioops/pkg/utils"
)

func testOps(t *testing.T, seed int64) *Operations {
	t.Helper()
	cfg, err := config.LoadConfig("")
	require.NoError(t, err)
	return NewOperations(cfg, utils.NewSeededRNG(seed))
}

func supportAgent(id, skill int) models.Employee {
	return models.Employee{
		ID:       id,
		Name:     "Agent",
		Position: models.PositionSupportAgent,
		Skills:   models.SkillSet{Service: skill},
	}
}

func intPtr(v int) *int { return &v }

func datePtr(d models.GameDate) *models.GameDate { return &d }

func TestGenerateMonthlyOnlyReleasedProducts(t *testing.T) {
	ops := testOps(t, 1)

	products := []models.Product{
		{ID: "prod_1", Name: "Shelved", BusinessModel: models.BusinessOnline, Released: false},
	}

	for i := 0; i < 50; i++ {
		assert.Empty(t, ops.GenerateMonthly(products, models.GameDate{Year: 2020, Month: 1, Day: 1}))
	}
}

func TestGenerateMonthlyBounds(t *testing.T) {
	ops := testOps(t, 2)

	products := []models.Product{
		{ID: "prod_1", Name: "MMO", BusinessModel: models.BusinessOnline, Released: true},
	}
	date := models.GameDate{Year: 2020, Month: 3, Day: 1}

	sawComplaints := false
	for i := 0; i < 100; i++ {
		generated := ops.GenerateMonthly(products, date)
		assert.LessOrEqual(t, len(generated), 2)
		for _, c := range generated {
			sawComplaints = true
			assert.Equal(t, "prod_1", c.ProductID)
			assert.Equal(t, models.ComplaintPending, c.Status)
			assert.Nil(t, c.AssignedTo)
			assert.Equal(t, 0, c.Progress)
			assert.Greater(t, c.Workload, 0)
			assert.Equal(t, date, c.CreatedOn)
		}
	}
	assert.True(t, sawComplaints, "100 months at 50% should yield complaints")
}

func TestComplaintTypesRespectBusinessModel(t *testing.T) {
	ops := testOps(t, 3)
	date := models.GameDate{Year: 2020, Month: 1, Day: 1}

	single := []models.Product{{ID: "p", Name: "Solo", BusinessModel: models.BusinessSinglePlayer, Released: true}}
	for i := 0; i < 200; i++ {
		for _, c := range ops.GenerateMonthly(single, date) {
			assert.NotEqual(t, models.ComplaintServer, c.Type)
			assert.NotEqual(t, models.ComplaintPayment, c.Type)
		}
	}

	online := []models.Product{{ID: "p", Name: "Live", BusinessModel: models.BusinessOnline, Released: true}}
	types := map[models.ComplaintType]int{}
	for i := 0; i < 400; i++ {
		for _, c := range ops.GenerateMonthly(online, date) {
			types[c.Type]++
		}
	}
	assert.Greater(t, types[models.ComplaintServer]+types[models.ComplaintPayment], 0,
		"online products should see server or payment complaints over 400 months")
}

func TestGenerateDailyAtMostOne(t *testing.T) {
	ops := testOps(t, 4)

	products := []models.Product{
		{ID: "p1", Name: "A", BusinessModel: models.BusinessOnline, Released: true},
		{ID: "p2", Name: "B", BusinessModel: models.BusinessOnline, Released: true},
		{ID: "p3", Name: "C", BusinessModel: models.BusinessOnline, Released: true},
	}

	for i := 0; i < 2000; i++ {
		generated := ops.GenerateDaily(products, models.GameDate{Year: 2020, Month: 1, Day: 1})
		assert.LessOrEqual(t, len(generated), 1)
	}
}

func TestTrickleMultiplierBands(t *testing.T) {
	tests := []struct {
		released int
		want     float64
	}{
		{1, 0.8},
		{5, 0.8},
		{6, 0.5},
		{10, 0.5},
		{11, 0.3},
		{20, 0.3},
		{21, 0.2},
		{40, 0.2},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, trickleMultiplier(tt.released), "released %d", tt.released)
	}
}

func TestGenerateDailyDampedByCatalogSize(t *testing.T) {
	ops := testOps(t, 9)

	products := make([]models.Product, 25)
	for i := range products {
		products[i] = models.Product{
			ID:            utils.NewEntityID("prod"),
			Name:          "P",
			BusinessModel: models.BusinessOnline,
			Released:      true,
		}
	}

	// 25 released products sit in the deepest band, so each draws
	// 0.01 * 0.2 per day and a ticket appears on roughly 4.9% of days.
	days := 20000
	hits := 0
	for i := 0; i < days; i++ {
		if len(ops.GenerateDaily(products, models.GameDate{Year: 2020, Month: 1, Day: 1})) > 0 {
			hits++
		}
	}
	assert.InDelta(t, 0.049, float64(hits)/float64(days), 0.015)
}

func TestGenerateDailyReachesEveryProduct(t *testing.T) {
	ops := testOps(t, 2)

	products := []models.Product{
		{ID: "p1", Name: "A", BusinessModel: models.BusinessOnline, Released: true},
		{ID: "p2", Name: "B", BusinessModel: models.BusinessOnline, Released: true},
		{ID: "p3", Name: "C", BusinessModel: models.BusinessOnline, Released: true},
	}

	seen := map[string]int{}
	for i := 0; i < 50000; i++ {
		for _, c := range ops.GenerateDaily(products, models.GameDate{Year: 2020, Month: 1, Day: 1}) {
			seen[c.ProductID]++
		}
	}
	for _, p := range products {
		assert.Greater(t, seen[p.ID], 0, "product %s never drew a ticket", p.ID)
	}
}

func TestDailyProgressScalesWithSkill(t *testing.T) {
	ops := testOps(t, 1)

	tests := []struct {
		skill int
		want  int
	}{
		{1, 60},
		{2, 78},
		{3, 102},
		{4, 132},
		{5, 168},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ops.DailyProgress(supportAgent(1, tt.skill)), "skill %d", tt.skill)
	}
}

func TestProcessDailyCompletesAndClamps(t *testing.T) {
	ops := testOps(t, 1)
	roster := []models.Employee{supportAgent(1, 5)} // 168/day

	complaints := []models.Complaint{{
		ID: "cmpl_1", Severity: models.SeverityMedium, Workload: 200,
		Progress: 100, AssignedTo: intPtr(1), Status: models.ComplaintInProgress,
		CreatedOn: models.GameDate{Year: 2020, Month: 1, Day: 1},
	}}

	date := models.GameDate{Year: 2020, Month: 1, Day: 5}
	updated, completed := ops.ProcessDaily(complaints, roster, date)

	assert.Equal(t, 1, completed)
	c := updated[0]
	assert.Equal(t, models.ComplaintCompleted, c.Status)
	assert.Equal(t, c.Workload, c.Progress, "progress must clamp to workload")
	require.NotNil(t, c.CompletedOn)
	assert.Equal(t, date, *c.CompletedOn)

	// Original slice stays untouched.
	assert.Equal(t, 100, complaints[0].Progress)
}

func TestProcessDailyUnassignsMissingAgent(t *testing.T) {
	ops := testOps(t, 1)

	complaints := []models.Complaint{
		{
			ID: "cmpl_started", Severity: models.SeverityLow, Workload: 80,
			Progress: 30, AssignedTo: intPtr(99), Status: models.ComplaintInProgress,
		},
		{
			ID: "cmpl_untouched", Severity: models.SeverityLow, Workload: 80,
			Progress: 0, AssignedTo: intPtr(99), Status: models.ComplaintInProgress,
		},
	}

	updated, completed := ops.ProcessDaily(complaints, nil, models.GameDate{Year: 2020, Month: 1, Day: 2})
	assert.Equal(t, 0, completed)

	assert.Nil(t, updated[0].AssignedTo)
	assert.Equal(t, models.ComplaintInProgress, updated[0].Status)
	assert.Nil(t, updated[1].AssignedTo)
	assert.Equal(t, models.ComplaintPending, updated[1].Status)
}

func TestDailyOverdueLoss(t *testing.T) {
	ops := testOps(t, 1)
	start := models.GameDate{Year: 2020, Month: 1, Day: 1}

	complaints := []models.Complaint{
		// HIGH SLA is 8 days: overdue at age 9.
		{ID: "c1", Severity: models.SeverityHigh, Workload: 350, Status: models.ComplaintPending, CreatedOn: start},
		// LOW SLA is 15 days: not overdue yet.
		{ID: "c2", Severity: models.SeverityLow, Workload: 80, Status: models.ComplaintPending, CreatedOn: start},
		// Completed tickets never accrue.
		{ID: "c3", Severity: models.SeverityHigh, Workload: 350, Status: models.ComplaintCompleted, CreatedOn: start},
	}

	day9 := models.GameDate{Year: 2020, Month: 1, Day: 10}
	assert.Equal(t, 50, ops.DailyOverdueLoss(complaints, day9))

	// At exactly the SLA boundary nothing is due.
	day8 := models.GameDate{Year: 2020, Month: 1, Day: 9}
	assert.Equal(t, 0, ops.DailyOverdueLoss(complaints, day8))
}

func TestAccruedLossSixQualifyingDays(t *testing.T) {
	ops := testOps(t, 1)

	// HIGH ticket aged 14 days against an 8-day SLA: six qualifying days.
	c := models.Complaint{
		ID: "c1", Severity: models.SeverityHigh, Workload: 350,
		Status:    models.ComplaintPending,
		CreatedOn: models.GameDate{Year: 2020, Month: 1, Day: 1},
	}
	now := models.GameDate{Year: 2020, Month: 1, Day: 15}

	assert.Equal(t, 6*50, ops.AccruedLoss(c, now))
}

func TestCleanupRetention(t *testing.T) {
	ops := testOps(t, 1)
	now := models.GameDate{Year: 2020, Month: 6, Day: 15}

	var complaints []models.Complaint
	// 45 completed last month, 5 active.
	for i := 0; i < 45; i++ {
		complaints = append(complaints, models.Complaint{
			ID: utils.NewEntityID("cmpl"), Severity: models.SeverityLow, Workload: 80, Progress: 80,
			Status:      models.ComplaintCompleted,
			CreatedOn:   models.GameDate{Year: 2020, Month: 5, Day: 1},
			CompletedOn: datePtr(models.GameDate{Year: 2020, Month: 5, Day: 1 + i%29}),
		})
	}
	for i := 0; i < 5; i++ {
		complaints = append(complaints, models.Complaint{
			ID: utils.NewEntityID("cmpl"), Severity: models.SeverityLow, Workload: 80,
			Status:    models.ComplaintPending,
			CreatedOn: models.GameDate{Year: 2020, Month: 6, Day: 10},
		})
	}

	kept := ops.Cleanup(complaints, now)

	// 5 active plus the 30 most recent old completions.
	assert.Len(t, kept, 35)

	active, completed := 0, 0
	for _, c := range kept {
		if c.Status == models.ComplaintCompleted {
			completed++
		} else {
			active++
		}
	}
	assert.Equal(t, 5, active)
	assert.Equal(t, 30, completed)
}

func TestCleanupKeepsCurrentMonthCompletions(t *testing.T) {
	ops := testOps(t, 1)
	now := models.GameDate{Year: 2020, Month: 6, Day: 30}

	var complaints []models.Complaint
	for i := 0; i < 40; i++ {
		complaints = append(complaints, models.Complaint{
			ID: utils.NewEntityID("cmpl"), Severity: models.SeverityLow, Workload: 80, Progress: 80,
			Status:      models.ComplaintCompleted,
			CreatedOn:   models.GameDate{Year: 2020, Month: 6, Day: 1},
			CompletedOn: datePtr(models.GameDate{Year: 2020, Month: 6, Day: 1 + i%29}),
		})
	}

	// Same-month completions are all retained even past the cap.
	assert.Len(t, ops.Cleanup(complaints, now), 40)
}

func TestStatistics(t *testing.T) {
	ops := testOps(t, 1)
	now := models.GameDate{Year: 2020, Month: 6, Day: 20}

	complaints := []models.Complaint{
		{ID: "c1", Status: models.ComplaintPending, CreatedOn: models.GameDate{Year: 2020, Month: 6, Day: 5}},
		{ID: "c2", Status: models.ComplaintInProgress, CreatedOn: models.GameDate{Year: 2020, Month: 5, Day: 5}},
		{ID: "c3", Status: models.ComplaintCompleted,
			CreatedOn:   models.GameDate{Year: 2020, Month: 6, Day: 1},
			CompletedOn: datePtr(models.GameDate{Year: 2020, Month: 6, Day: 10})},
		{ID: "c4", Status: models.ComplaintCompleted,
			CreatedOn:   models.GameDate{Year: 2020, Month: 4, Day: 1},
			CompletedOn: datePtr(models.GameDate{Year: 2020, Month: 4, Day: 20})},
	}

	stats := ops.Statistics(complaints, now)
	assert.Equal(t, 1, stats.TotalPending)
	assert.Equal(t, 1, stats.TotalInProgress)
	assert.Equal(t, 1, stats.CompletedThisMonth)
	assert.Equal(t, 2, stats.NewThisMonth)
}
