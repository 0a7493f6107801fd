package talent

import (
	"fmt"
	"math/rand"

	"studioops/internal/config"
	"studioops/pkg/models"
	"studioops/pkg/utils"
)

// Generator produces synthetic job-seeker records. Every candidate gets a
// profession-exclusive skill, a salary expectation derived from the skill
// tier, and an experience range matching that tier. Generation never fails:
// once the name pool is exhausted it degrades to suffixed names.
type Generator struct {
	cfg *config.Config
	rng *rand.Rand
}

// NewGenerator creates a candidate generator backed by the given RNG.
func NewGenerator(cfg *config.Config, rng *rand.Rand) *Generator {
	return &Generator{cfg: cfg, rng: rng}
}

// Generate produces count candidates for the open market. Positions are
// drawn uniformly, the exclusive skill lands in the configured pool band
// and all other skills stay zero. Names are pairwise distinct and disjoint
// from existingNames.
func (g *Generator) Generate(count int, existingNames []string) []models.TalentCandidate {
	taken := nameSet(existingNames)
	candidates := make([]models.TalentCandidate, 0, count)

	for i := 0; i < count; i++ {
		position := models.AllPositions[g.rng.Intn(len(models.AllPositions))]
		level := g.cfg.Talent.PoolSkillMin + g.rng.Intn(g.cfg.Talent.PoolSkillMax-g.cfg.Talent.PoolSkillMin+1)

		name := g.nextName(taken)
		taken[name] = struct{}{}

		candidates = append(candidates, models.TalentCandidate{
			ID:              utils.NewEntityID("cand"),
			Name:            name,
			Position:        position,
			Skills:          models.SkillSet{}.WithLevel(position.SkillKind(), level),
			ExpectedSalary:  g.poolSalary(level),
			ExperienceYears: g.experienceFor(level),
		})
	}

	return candidates
}

// GenerateForPosition produces one applicant tailored to a job posting.
// The exclusive skill is pinned to minSkillLevel and the salary expectation
// blends the skill tier base with the posting's band midpoint, clamped to
// the band.
func (g *Generator) GenerateForPosition(position models.Position, minSkillLevel, salaryMin, salaryMax int, existingNames []string) models.TalentCandidate {
	taken := nameSet(existingNames)
	level := models.ClampSkillLevel(minSkillLevel)

	name := g.nextName(taken)

	return models.TalentCandidate{
		ID:              utils.NewEntityID("cand"),
		Name:            name,
		Position:        position,
		Skills:          models.SkillSet{}.WithLevel(position.SkillKind(), level),
		ExpectedSalary:  g.targetedSalary(level, salaryMin, salaryMax),
		ExperienceYears: g.experienceFor(level),
	}
}

// poolSalary is tier base plus uniform noise from the configured band.
func (g *Generator) poolSalary(level int) int {
	base := g.tierBase(level)
	noiseSpan := g.cfg.Talent.SalaryNoiseMax - g.cfg.Talent.SalaryNoiseMin
	return base + g.cfg.Talent.SalaryNoiseMin + g.rng.Intn(noiseSpan)
}

// targetedSalary blends the tier base with the band midpoint and clamps
// the result into [salaryMin, salaryMax].
func (g *Generator) targetedSalary(level, salaryMin, salaryMax int) int {
	base := float64(g.tierBase(level))
	mid := float64(salaryMin+salaryMax) / 2
	w := g.cfg.Talent.TierBlendWeight
	blended := int(w*base + (1-w)*mid)
	return utils.ClampInt(blended, salaryMin, salaryMax)
}

func (g *Generator) tierBase(level int) int {
	if base, ok := g.cfg.Talent.SalaryBase[level]; ok {
		return base
	}
	return g.cfg.Talent.SalaryBase[1]
}

func (g *Generator) experienceFor(level int) int {
	r, ok := g.cfg.Talent.ExperienceRange[level]
	if !ok || r.Max <= r.Min {
		return 0
	}
	return r.Min + g.rng.Intn(r.Max-r.Min)
}

// nextName returns the first unused pool name in order; once the pool is
// exhausted it picks a random pool name and appends an increasing numeric
// suffix until an unused name is found.
func (g *Generator) nextName(taken map[string]struct{}) string {
	for _, name := range namePool {
		if _, used := taken[name]; !used {
			return name
		}
	}

	base := namePool[g.rng.Intn(len(namePool))]
	for suffix := 2; ; suffix++ {
		name := fmt.Sprintf("%s %d", base, suffix)
		if _, used := taken[name]; !used {
			return name
		}
	}
}

func nameSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}
