package postings

import (
	"fmt"
	"math"
	"math/rand"

	"studioops/internal/config"
	"studioops/internal/talent"
	"studioops/pkg/models"
	"studioops/pkg/utils"
)

// Interview scoring weights for the automated HR mode.
const (
	hrSkillWeight      = 8  // per skill level, 0-40
	hrExperienceCap    = 30 // years counted toward the experience score
	hrSalaryFitWeight  = 20
	hrRandomBonusSpan  = 11 // uniform 0-10
	playerScoreDivider = 70 // accepted scores land in [70,100), rejected in [30,70)
)

// Pipeline manages job postings from creation through applicant arrival,
// interviews and hiring. State lives in an injected Store so the caller
// decides ownership and persistence.
type Pipeline struct {
	cfg       *config.Config
	rng       *rand.Rand
	store     Store
	generator *talent.Generator
}

// NewPipeline creates a posting pipeline on top of the given store.
func NewPipeline(cfg *config.Config, rng *rand.Rand, store Store, generator *talent.Generator) *Pipeline {
	return &Pipeline{cfg: cfg, rng: rng, store: store, generator: generator}
}

// Create opens a new ACTIVE posting for the position. The required skill is
// derived from the position so postings can never ask for a mismatched
// competency.
func (p *Pipeline) Create(position models.Position, minSkillLevel, salaryMin, salaryMax int, date models.GameDate) (models.JobPosting, error) {
	if !position.Valid() {
		return models.JobPosting{}, utils.NewValidationError(fmt.Sprintf("unknown position %q", position))
	}
	if salaryMax < salaryMin {
		return models.JobPosting{}, utils.NewValidationError("salary_max must not be below salary_min")
	}

	posting := models.JobPosting{
		ID:            utils.NewEntityID("post"),
		Position:      position,
		RequiredSkill: position.SkillKind(),
		MinSkillLevel: models.ClampSkillLevel(minSkillLevel),
		SalaryMin:     salaryMin,
		SalaryMax:     salaryMax,
		Status:        models.PostingActive,
		PostedOn:      date,
	}
	p.store.Put(posting)
	return posting, nil
}

// Get returns one posting.
func (p *Pipeline) Get(id string) (models.JobPosting, error) {
	posting, ok := p.store.Get(id)
	if !ok {
		return models.JobPosting{}, utils.NewNotFoundError(fmt.Sprintf("posting %s", id))
	}
	return posting, nil
}

// List returns all postings in creation order.
func (p *Pipeline) List() []models.JobPosting {
	return p.store.List()
}

// Active returns the postings currently accepting applicants.
func (p *Pipeline) Active() []models.JobPosting {
	var active []models.JobPosting
	for _, posting := range p.store.List() {
		if posting.Status == models.PostingActive {
			active = append(active, posting)
		}
	}
	return active
}

// Pause suspends an ACTIVE posting.
func (p *Pipeline) Pause(id string) (models.JobPosting, error) {
	return p.transition(id, models.PostingPaused, models.PostingActive)
}

// Resume reactivates a PAUSED posting.
func (p *Pipeline) Resume(id string) (models.JobPosting, error) {
	return p.transition(id, models.PostingActive, models.PostingPaused)
}

// Close terminally closes a posting. Both ACTIVE and PAUSED postings can be
// closed; CLOSED is terminal.
func (p *Pipeline) Close(id string) (models.JobPosting, error) {
	return p.transition(id, models.PostingClosed, models.PostingActive, models.PostingPaused)
}

func (p *Pipeline) transition(id string, to models.PostingStatus, from ...models.PostingStatus) (models.JobPosting, error) {
	posting, ok := p.store.Get(id)
	if !ok {
		return models.JobPosting{}, utils.NewNotFoundError(fmt.Sprintf("posting %s", id))
	}

	allowed := false
	for _, status := range from {
		if posting.Status == status {
			allowed = true
			break
		}
	}
	if !allowed {
		return models.JobPosting{}, utils.NewInvalidStateError(
			fmt.Sprintf("posting %s is %s, cannot move to %s", id, posting.Status, to))
	}

	posting.Status = to
	p.store.Put(posting)
	return posting, nil
}

// GenerateApplicants runs one applicant-arrival tick over every ACTIVE
// posting. Each posting draws a Bernoulli trial with probability
// attractiveness * daysElapsed; on success 1-3 targeted candidates apply.
// reservedNames keeps new applicant names disjoint from the roster; names
// already attached to any posting are excluded automatically. Returns the
// number of new applicants.
func (p *Pipeline) GenerateApplicants(date models.GameDate, daysElapsed int, reservedNames []string) int {
	taken := append([]string(nil), reservedNames...)
	for _, posting := range p.store.List() {
		for _, a := range posting.Applicants {
			taken = append(taken, a.Candidate.Name)
		}
	}

	arrived := 0
	for _, posting := range p.store.List() {
		if posting.Status != models.PostingActive {
			continue
		}

		chance := attractiveness(posting) * float64(daysElapsed)
		if p.rng.Float64() >= chance {
			continue
		}

		count := p.rng.Intn(p.cfg.Postings.MaxApplicantsPerArrival) + 1
		for i := 0; i < count; i++ {
			candidate := p.generator.GenerateForPosition(
				posting.Position, posting.MinSkillLevel,
				posting.SalaryMin, posting.SalaryMax, taken)
			taken = append(taken, candidate.Name)

			posting.Applicants = append(posting.Applicants, models.JobApplicant{
				ID:        utils.NewEntityID("appl"),
				Candidate: candidate,
				AppliedOn: date,
				Status:    models.ApplicantPending,
			})
			arrived++
		}
		p.store.Put(posting)
	}
	return arrived
}

// attractiveness blends how well the posting pays against how much it
// demands. Result is in (0, 1].
func attractiveness(posting models.JobPosting) float64 {
	return (salaryScore(posting.AverageSalary()) + skillScore(posting.MinSkillLevel)) / 2
}

func salaryScore(avgSalary int) float64 {
	switch {
	case avgSalary >= 20000:
		return 1.0
	case avgSalary >= 15000:
		return 0.8
	case avgSalary >= 10000:
		return 0.6
	case avgSalary >= 5000:
		return 0.4
	default:
		return 0.2
	}
}

func skillScore(minSkillLevel int) float64 {
	return float64(6-minSkillLevel) / 5
}

// PlayerInterview records a manual accept/reject decision. The score is
// cosmetic: a random value consistent with the decision.
func (p *Pipeline) PlayerInterview(postingID, applicantID string, accept bool, notes string) (models.InterviewResult, models.JobPosting, error) {
	posting, applicant, idx, err := p.pendingApplicant(postingID, applicantID)
	if err != nil {
		return models.InterviewResult{}, models.JobPosting{}, err
	}

	var score int
	status := models.ApplicantRejected
	if accept {
		score = playerScoreDivider + p.rng.Intn(100-playerScoreDivider)
		status = models.ApplicantAccepted
	} else {
		score = 30 + p.rng.Intn(playerScoreDivider-30)
	}

	result := models.InterviewResult{
		ApplicantID: applicantID,
		Type:        models.InterviewPlayer,
		Score:       score,
		Passed:      accept,
		Notes:       notes,
	}

	applicant.Status = status
	applicant.InterviewScore = &score
	applicant.InterviewNotes = notes
	posting.Applicants[idx] = applicant
	p.store.Put(posting)
	return result, posting, nil
}

// HRInterview runs the automated scoring pass over one applicant. The score
// combines required-skill level, capped experience, salary fit against the
// band midpoint and a small random bonus; passing is decided against the
// configured threshold.
func (p *Pipeline) HRInterview(postingID, applicantID string) (models.InterviewResult, models.JobPosting, error) {
	posting, applicant, idx, err := p.pendingApplicant(postingID, applicantID)
	if err != nil {
		return models.InterviewResult{}, models.JobPosting{}, err
	}

	score := p.hrScore(posting, applicant.Candidate)
	passed := score >= p.cfg.Postings.PassScore

	result := models.InterviewResult{
		ApplicantID: applicantID,
		Type:        models.InterviewHR,
		Score:       score,
		Passed:      passed,
		Notes:       hrNotes(score),
	}

	if passed {
		applicant.Status = models.ApplicantAccepted
	} else {
		applicant.Status = models.ApplicantRejected
	}
	applicant.InterviewScore = &score
	applicant.InterviewNotes = result.Notes
	posting.Applicants[idx] = applicant
	p.store.Put(posting)
	return result, posting, nil
}

func (p *Pipeline) hrScore(posting models.JobPosting, candidate models.TalentCandidate) int {
	skill := candidate.Skills.Level(posting.RequiredSkill) * hrSkillWeight

	years := candidate.ExperienceYears
	if years > hrExperienceCap {
		years = hrExperienceCap
	}

	mid := float64(posting.AverageSalary())
	salaryFit := 0
	if mid > 0 {
		fit := hrSalaryFitWeight * (1 - math.Abs(float64(candidate.ExpectedSalary)-mid)/mid)
		if fit > 0 {
			salaryFit = int(fit)
		}
	}

	score := skill + years + salaryFit + p.rng.Intn(hrRandomBonusSpan)
	return utils.ClampInt(score, 0, 100)
}

func hrNotes(score int) string {
	switch {
	case score >= 80:
		return "Excellent match, strong hire recommendation"
	case score >= 70:
		return "Qualified, recommend proceeding"
	case score >= 60:
		return "Meets the baseline, acceptable hire"
	default:
		return "Below hiring bar, recommend rejection"
	}
}

func (p *Pipeline) pendingApplicant(postingID, applicantID string) (models.JobPosting, models.JobApplicant, int, error) {
	posting, ok := p.store.Get(postingID)
	if !ok {
		return models.JobPosting{}, models.JobApplicant{}, 0, utils.NewNotFoundError(fmt.Sprintf("posting %s", postingID))
	}

	for i, a := range posting.Applicants {
		if a.ID != applicantID {
			continue
		}
		if a.Status != models.ApplicantPending {
			return models.JobPosting{}, models.JobApplicant{}, 0, utils.NewInvalidStateError(
				fmt.Sprintf("applicant %s is %s, interview requires PENDING", applicantID, a.Status))
		}
		return posting, a, i, nil
	}
	return models.JobPosting{}, models.JobApplicant{}, 0, utils.NewNotFoundError(fmt.Sprintf("applicant %s", applicantID))
}

// HireApplicant marks an ACCEPTED applicant as HIRED and returns the
// embedded candidate. No money moves at this layer; the caller charges the
// recruitment fee and appends the employee.
func (p *Pipeline) HireApplicant(postingID, applicantID string) (models.TalentCandidate, models.JobPosting, error) {
	posting, ok := p.store.Get(postingID)
	if !ok {
		return models.TalentCandidate{}, models.JobPosting{}, utils.NewNotFoundError(fmt.Sprintf("posting %s", postingID))
	}

	for i, a := range posting.Applicants {
		if a.ID != applicantID {
			continue
		}
		if a.Status != models.ApplicantAccepted {
			return models.TalentCandidate{}, models.JobPosting{}, utils.NewInvalidStateError(
				fmt.Sprintf("applicant %s is %s, hiring requires ACCEPTED", applicantID, a.Status))
		}

		a.Status = models.ApplicantHired
		posting.Applicants[i] = a
		p.store.Put(posting)
		return a.Candidate, posting, nil
	}
	return models.TalentCandidate{}, models.JobPosting{}, utils.NewNotFoundError(fmt.Sprintf("applicant %s", applicantID))
}

// PendingApplicants counts PENDING applicants across ACTIVE postings.
func (p *Pipeline) PendingApplicants() int {
	total := 0
	for _, posting := range p.store.List() {
		if posting.Status != models.PostingActive {
			continue
		}
		total += posting.PendingApplicants()
	}
	return total
}
