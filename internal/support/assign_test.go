package support

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studioops/pkg/models"
	"studioops/pkg/utils"
)

func TestSupportAgentsFiltersAndRanks(t *testing.T) {
	roster := []models.Employee{
		{ID: 1, Position: models.PositionProgrammer, Skills: models.SkillSet{Development: 5}},
		supportAgent(2, 2),
		supportAgent(3, 5),
		{ID: 4, Position: models.PositionArtist, Skills: models.SkillSet{Art: 4}},
		supportAgent(5, 3),
	}

	agents := SupportAgents(roster)
	require.Len(t, agents, 3)
	assert.Equal(t, 3, agents[0].ID)
	assert.Equal(t, 5, agents[1].ID)
	assert.Equal(t, 2, agents[2].ID)
}

func TestAssignManual(t *testing.T) {
	ops := testOps(t, 1)
	roster := []models.Employee{
		supportAgent(1, 3),
		{ID: 2, Position: models.PositionProgrammer, Skills: models.SkillSet{Development: 5}},
	}
	complaints := []models.Complaint{{
		ID: "cmpl_1", Severity: models.SeverityLow, Workload: 80,
		Status: models.ComplaintPending,
	}}

	updated, err := ops.Assign(complaints, "cmpl_1", 1, roster)
	require.NoError(t, err)
	require.NotNil(t, updated[0].AssignedTo)
	assert.Equal(t, 1, *updated[0].AssignedTo)
	assert.Equal(t, models.ComplaintInProgress, updated[0].Status)

	// Unknown employee.
	_, err = ops.Assign(complaints, "cmpl_1", 99, roster)
	assert.True(t, utils.HasReason(err, utils.ReasonNotFound))

	// Non-support staff cannot take tickets.
	_, err = ops.Assign(complaints, "cmpl_1", 2, roster)
	assert.True(t, utils.HasReason(err, utils.ReasonInvalidState))

	// Unknown complaint.
	_, err = ops.Assign(complaints, "cmpl_missing", 1, roster)
	assert.True(t, utils.HasReason(err, utils.ReasonNotFound))
}

func TestUnassign(t *testing.T) {
	ops := testOps(t, 1)

	complaints := []models.Complaint{
		{ID: "cmpl_fresh", Workload: 80, Progress: 0, AssignedTo: intPtr(1), Status: models.ComplaintInProgress},
		{ID: "cmpl_started", Workload: 80, Progress: 40, AssignedTo: intPtr(1), Status: models.ComplaintInProgress},
	}

	updated, err := ops.Unassign(complaints, "cmpl_fresh")
	require.NoError(t, err)
	assert.Nil(t, updated[0].AssignedTo)
	assert.Equal(t, models.ComplaintPending, updated[0].Status)

	updated, err = ops.Unassign(complaints, "cmpl_started")
	require.NoError(t, err)
	assert.Nil(t, updated[1].AssignedTo)
	assert.Equal(t, models.ComplaintInProgress, updated[1].Status)

	_, err = ops.Unassign(complaints, "cmpl_missing")
	assert.True(t, utils.HasReason(err, utils.ReasonNotFound))
}

func TestAutoAssignNoAgents(t *testing.T) {
	ops := testOps(t, 1)
	roster := []models.Employee{
		{ID: 1, Position: models.PositionProgrammer, Skills: models.SkillSet{Development: 5}},
	}
	complaints := []models.Complaint{{ID: "cmpl_1", Status: models.ComplaintPending, Workload: 80}}

	updated, assigned := ops.AutoAssign(complaints, roster)
	assert.Equal(t, 0, assigned)
	assert.Nil(t, updated[0].AssignedTo)
}

func TestAutoAssignHighSeverityGetsBestAgent(t *testing.T) {
	ops := testOps(t, 1)
	roster := []models.Employee{supportAgent(1, 2), supportAgent(2, 5)}

	complaints := []models.Complaint{
		{ID: "cmpl_low", Severity: models.SeverityLow, Workload: 80, Status: models.ComplaintPending,
			CreatedOn: models.GameDate{Year: 2020, Month: 1, Day: 1}},
		{ID: "cmpl_high", Severity: models.SeverityHigh, Workload: 350, Status: models.ComplaintPending,
			CreatedOn: models.GameDate{Year: 2020, Month: 1, Day: 3}},
	}

	updated, assigned := ops.AutoAssign(complaints, roster)
	assert.Equal(t, 2, assigned)

	byID := map[string]models.Complaint{}
	for _, c := range updated {
		byID[c.ID] = c
	}

	// HIGH is served first and lands on the skill-5 agent.
	require.NotNil(t, byID["cmpl_high"].AssignedTo)
	assert.Equal(t, 2, *byID["cmpl_high"].AssignedTo)
	// LOW then goes to the now least-loaded skill-2 agent.
	require.NotNil(t, byID["cmpl_low"].AssignedTo)
	assert.Equal(t, 1, *byID["cmpl_low"].AssignedTo)
}

func TestAutoAssignHighFallsBackWhenSaturated(t *testing.T) {
	ops := testOps(t, 1)
	roster := []models.Employee{supportAgent(1, 2), supportAgent(2, 5)}

	complaints := []models.Complaint{
		// Saturate the skill-5 agent past the 1000-unit threshold.
		{ID: "cmpl_sat", Severity: models.SeverityHigh, Workload: 1200, Progress: 0,
			AssignedTo: intPtr(2), Status: models.ComplaintInProgress},
		{ID: "cmpl_new", Severity: models.SeverityHigh, Workload: 350, Status: models.ComplaintPending},
	}

	updated, assigned := ops.AutoAssign(complaints, roster)
	assert.Equal(t, 1, assigned)

	for _, c := range updated {
		if c.ID == "cmpl_new" {
			require.NotNil(t, c.AssignedTo)
			assert.Equal(t, 1, *c.AssignedTo, "saturated best agent is skipped for the next skilled one")
		}
	}
}

func TestAutoAssignMediumPrefersSkilledLeastLoaded(t *testing.T) {
	ops := testOps(t, 1)
	roster := []models.Employee{supportAgent(1, 1), supportAgent(2, 3), supportAgent(3, 4)}

	complaints := []models.Complaint{
		// Preload the skill-4 agent so the skill-3 agent is least loaded
		// among qualified ones.
		{ID: "cmpl_busy", Severity: models.SeverityMedium, Workload: 200, Progress: 0,
			AssignedTo: intPtr(3), Status: models.ComplaintInProgress},
		{ID: "cmpl_new", Severity: models.SeverityMedium, Workload: 200, Status: models.ComplaintPending},
	}

	updated, _ := ops.AutoAssign(complaints, roster)
	for _, c := range updated {
		if c.ID == "cmpl_new" {
			require.NotNil(t, c.AssignedTo)
			assert.Equal(t, 2, *c.AssignedTo)
		}
	}
}

func TestAutoAssignOrdersBySeverityThenAge(t *testing.T) {
	ops := testOps(t, 1)
	roster := []models.Employee{supportAgent(1, 3)}

	complaints := []models.Complaint{
		{ID: "cmpl_low_old", Severity: models.SeverityLow, Workload: 80, Status: models.ComplaintPending,
			CreatedOn: models.GameDate{Year: 2020, Month: 1, Day: 1}},
		{ID: "cmpl_high_new", Severity: models.SeverityHigh, Workload: 350, Status: models.ComplaintPending,
			CreatedOn: models.GameDate{Year: 2020, Month: 1, Day: 20}},
		{ID: "cmpl_high_old", Severity: models.SeverityHigh, Workload: 350, Status: models.ComplaintPending,
			CreatedOn: models.GameDate{Year: 2020, Month: 1, Day: 10}},
	}

	updated, assigned := ops.AutoAssign(complaints, roster)
	assert.Equal(t, 3, assigned)
	for _, c := range updated {
		assert.Equal(t, models.ComplaintInProgress, c.Status)
		require.NotNil(t, c.AssignedTo)
	}
}
