package talent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studioops/pkg/models"
)

func marketFixture() []models.TalentCandidate {
	return []models.TalentCandidate{
		{
			ID: "cand_1", Name: "Mia Chen", Position: models.PositionProgrammer,
			Skills:         models.SkillSet{Development: 5},
			ExpectedSalary: 15000, ExperienceYears: 12,
		},
		{
			ID: "cand_2", Name: "Leo Zhang", Position: models.PositionDesigner,
			Skills:         models.SkillSet{Design: 3},
			ExpectedSalary: 6200, ExperienceYears: 4,
		},
		{
			ID: "cand_3", Name: "Ava Liu", Position: models.PositionSupportAgent,
			Skills:         models.SkillSet{Service: 4},
			ExpectedSalary: 9300, ExperienceYears: 8,
		},
	}
}

func TestFilterByCriteria(t *testing.T) {
	pool := marketFixture()

	tests := []struct {
		name     string
		criteria FilterCriteria
		wantIDs  []string
	}{
		{"no constraints", FilterCriteria{}, []string{"cand_1", "cand_2", "cand_3"}},
		{"by position", FilterCriteria{Positions: []models.Position{models.PositionDesigner}}, []string{"cand_2"}},
		{"by min skill", FilterCriteria{MinSkillLevel: 4}, []string{"cand_1", "cand_3"}},
		{"by salary band", FilterCriteria{MinSalary: 6000, MaxSalary: 10000}, []string{"cand_2", "cand_3"}},
		{"by experience", FilterCriteria{MinExperience: 5, MaxExperience: 10}, []string{"cand_3"}},
		{"by name query", FilterCriteria{Query: "mia"}, []string{"cand_1"}},
		{"by position query", FilterCriteria{Query: "designer"}, []string{"cand_2"}},
		{"no matches", FilterCriteria{MinSalary: 100000}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(pool, tt.criteria)
			ids := make([]string, 0, len(got))
			for _, c := range got {
				ids = append(ids, c.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestSortBySkillHighestFirst(t *testing.T) {
	sorted := SortBySkill(marketFixture())

	require.Len(t, sorted, 3)
	assert.Equal(t, "cand_1", sorted[0].ID)
	assert.Equal(t, "cand_3", sorted[1].ID)
	assert.Equal(t, "cand_2", sorted[2].ID)
}

func TestSortBySalaryLowestFirst(t *testing.T) {
	sorted := SortBySalary(marketFixture())

	require.Len(t, sorted, 3)
	assert.Equal(t, "cand_2", sorted[0].ID)
	assert.Equal(t, "cand_3", sorted[1].ID)
	assert.Equal(t, "cand_1", sorted[2].ID)
}

func TestStats(t *testing.T) {
	stats := Stats(marketFixture())

	assert.Equal(t, 3, stats.TotalCount)
	assert.Equal(t, (15000+6200+9300)/3, stats.AverageSalary)
	assert.InDelta(t, 4.0, stats.AverageSkillLevel, 0.01)
	assert.Equal(t, 8, stats.AverageExperience)
	assert.Equal(t, 1, stats.PositionDistribution[models.PositionProgrammer])
}

func TestStatsEmptyPool(t *testing.T) {
	stats := Stats(nil)

	assert.Equal(t, 0, stats.TotalCount)
	assert.Equal(t, 0, stats.AverageSalary)
	assert.NotNil(t, stats.PositionDistribution)
}
