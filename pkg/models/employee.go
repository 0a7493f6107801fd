package models

// SkillKind identifies one of the five studio competencies.
type SkillKind string

const (
	SkillDevelopment SkillKind = "development"
	SkillDesign      SkillKind = "design"
	SkillArt         SkillKind = "art"
	SkillMusic       SkillKind = "music"
	SkillService     SkillKind = "service"
)

// Position is the closed set of studio professions. Each position carries
// exactly one exclusive skill kind, so skill dispatch is never string-matched.
type Position string

const (
	PositionProgrammer    Position = "programmer"
	PositionDesigner      Position = "designer"
	PositionArtist        Position = "artist"
	PositionSoundEngineer Position = "sound_engineer"
	PositionSupportAgent  Position = "support_agent"
)

// AllPositions lists every valid position in a stable order.
var AllPositions = []Position{
	PositionProgrammer,
	PositionDesigner,
	PositionArtist,
	PositionSoundEngineer,
	PositionSupportAgent,
}

var positionSkills = map[Position]SkillKind{
	PositionProgrammer:    SkillDevelopment,
	PositionDesigner:      SkillDesign,
	PositionArtist:        SkillArt,
	PositionSoundEngineer: SkillMusic,
	PositionSupportAgent:  SkillService,
}

// SkillKind returns the exclusive skill for the position.
func (p Position) SkillKind() SkillKind {
	if kind, ok := positionSkills[p]; ok {
		return kind
	}
	return SkillDevelopment
}

// Valid reports whether p is a known position.
func (p Position) Valid() bool {
	_, ok := positionSkills[p]
	return ok
}

// Skill level bounds shared by candidates and employees.
const (
	MinSkillLevel = 0
	MaxSkillLevel = 5
)

// ClampSkillLevel limits a level to the valid [0,5] range.
func ClampSkillLevel(level int) int {
	if level < MinSkillLevel {
		return MinSkillLevel
	}
	if level > MaxSkillLevel {
		return MaxSkillLevel
	}
	return level
}

// SkillSet holds the five competency levels of a person, each 0-5.
type SkillSet struct {
	Development int `json:"development"`
	Design      int `json:"design"`
	Art         int `json:"art"`
	Music       int `json:"music"`
	Service     int `json:"service"`
}

// Level returns the level for a skill kind.
func (s SkillSet) Level(kind SkillKind) int {
	switch kind {
	case SkillDevelopment:
		return s.Development
	case SkillDesign:
		return s.Design
	case SkillArt:
		return s.Art
	case SkillMusic:
		return s.Music
	case SkillService:
		return s.Service
	}
	return 0
}

// WithLevel returns a copy of the set with one skill replaced.
func (s SkillSet) WithLevel(kind SkillKind, level int) SkillSet {
	level = ClampSkillLevel(level)
	switch kind {
	case SkillDevelopment:
		s.Development = level
	case SkillDesign:
		s.Design = level
	case SkillArt:
		s.Art = level
	case SkillMusic:
		s.Music = level
	case SkillService:
		s.Service = level
	}
	return s
}

// Max returns the highest level across the five skills.
func (s SkillSet) Max() int {
	max := s.Development
	for _, v := range []int{s.Design, s.Art, s.Music, s.Service} {
		if v > max {
			max = v
		}
	}
	return max
}

// Total returns the sum of all five skill levels.
func (s SkillSet) Total() int {
	return s.Development + s.Design + s.Art + s.Music + s.Service
}

// Employee is a hired staff member. Generated employees have exactly one
// non-zero skill, but manually created rosters may violate that, so
// consumers must not assume exclusivity.
type Employee struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Position Position `json:"position"`
	Skills   SkillSet `json:"skills"`
	Salary   int      `json:"salary"`
}

// PrimarySkillLevel returns the level of the employee's position skill.
func (e Employee) PrimarySkillLevel() int {
	return e.Skills.Level(e.Position.SkillKind())
}
