package models

// TalentCandidate is a generated, not-yet-hired job seeker. Candidates are
// immutable once generated and are consumed exactly once by a hire.
type TalentCandidate struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Position        Position `json:"position"`
	Skills          SkillSet `json:"skills"`
	ExpectedSalary  int      `json:"expected_salary"`
	ExperienceYears int      `json:"experience_years"`
}

// MaxSkillLevel returns the highest skill level of the candidate.
func (c TalentCandidate) MaxSkillLevel() int {
	return c.Skills.Max()
}

// PrimarySkillLevel returns the level of the candidate's position skill.
func (c TalentCandidate) PrimarySkillLevel() int {
	return c.Skills.Level(c.Position.SkillKind())
}

// ToEmployee converts the candidate into an employee with the given roster id.
// The expected salary becomes the contract salary.
func (c TalentCandidate) ToEmployee(id int) Employee {
	return Employee{
		ID:       id,
		Name:     c.Name,
		Position: c.Position,
		Skills:   c.Skills,
		Salary:   c.ExpectedSalary,
	}
}
