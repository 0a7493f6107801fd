package talent

import (
	"sort"
	"strings"

	"studioops/pkg/models"
)

// FilterCriteria narrows a candidate list. Zero values mean "no constraint".
type FilterCriteria struct {
	Query         string            `json:"query"`
	Positions     []models.Position `json:"positions"`
	MinSalary     int               `json:"min_salary"`
	MaxSalary     int               `json:"max_salary"`
	MinExperience int               `json:"min_experience"`
	MaxExperience int               `json:"max_experience"`
	MinSkillLevel int               `json:"min_skill_level"`
}

// Filter returns the candidates matching every criterion.
func Filter(candidates []models.TalentCandidate, criteria FilterCriteria) []models.TalentCandidate {
	matched := make([]models.TalentCandidate, 0, len(candidates))

	for _, c := range candidates {
		if criteria.Query != "" {
			q := strings.ToLower(criteria.Query)
			if !strings.Contains(strings.ToLower(c.Name), q) &&
				!strings.Contains(strings.ToLower(string(c.Position)), q) {
				continue
			}
		}

		if len(criteria.Positions) > 0 && !containsPosition(criteria.Positions, c.Position) {
			continue
		}

		if criteria.MinSalary > 0 && c.ExpectedSalary < criteria.MinSalary {
			continue
		}
		if criteria.MaxSalary > 0 && c.ExpectedSalary > criteria.MaxSalary {
			continue
		}

		if criteria.MinExperience > 0 && c.ExperienceYears < criteria.MinExperience {
			continue
		}
		if criteria.MaxExperience > 0 && c.ExperienceYears > criteria.MaxExperience {
			continue
		}

		if criteria.MinSkillLevel > 0 && c.PrimarySkillLevel() < criteria.MinSkillLevel {
			continue
		}

		matched = append(matched, c)
	}

	return matched
}

// SortBySkill orders candidates by primary skill level, highest first.
// Equal levels fall back to name order so the result is stable for callers.
func SortBySkill(candidates []models.TalentCandidate) []models.TalentCandidate {
	sorted := append([]models.TalentCandidate(nil), candidates...)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i].PrimarySkillLevel(), sorted[j].PrimarySkillLevel()
		if a != b {
			return a > b
		}
		return sorted[i].Name < sorted[j].Name
	})
	return sorted
}

// SortBySalary orders candidates by expected salary, lowest first.
func SortBySalary(candidates []models.TalentCandidate) []models.TalentCandidate {
	sorted := append([]models.TalentCandidate(nil), candidates...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ExpectedSalary < sorted[j].ExpectedSalary
	})
	return sorted
}

// Stats summarizes the current pool.
func Stats(candidates []models.TalentCandidate) models.MarketStats {
	stats := models.MarketStats{
		TotalCount:           len(candidates),
		PositionDistribution: make(map[models.Position]int),
	}

	if len(candidates) == 0 {
		return stats
	}

	var salarySum, skillSum, expSum int
	for _, c := range candidates {
		salarySum += c.ExpectedSalary
		skillSum += c.PrimarySkillLevel()
		expSum += c.ExperienceYears
		stats.PositionDistribution[c.Position]++
	}

	stats.AverageSalary = salarySum / len(candidates)
	stats.AverageSkillLevel = float64(skillSum) / float64(len(candidates))
	stats.AverageExperience = expSum / len(candidates)
	return stats
}

func containsPosition(positions []models.Position, p models.Position) bool {
	for _, candidate := range positions {
		if candidate == p {
			return true
		}
	}
	return false
}
