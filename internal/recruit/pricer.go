package recruit

import (
	"fmt"

	"studioops/internal/config"
	"studioops/pkg/models"
	"studioops/pkg/utils"
)

// Pricer quotes recruitment fees and enforces the hiring gate. It keeps no
// state of its own: every decision is a pure function of the candidate, the
// company funds and the current roster, so callers can quote without
// committing.
type Pricer struct {
	cfg *config.Config
}

// NewPricer creates a recruitment pricer.
func NewPricer(cfg *config.Config) *Pricer {
	return &Pricer{cfg: cfg}
}

// FeeBreakdown itemizes how a recruitment fee was computed.
type FeeBreakdown struct {
	ExpectedSalary  int     `json:"expected_salary"`
	BaseMultiplier  float64 `json:"base_multiplier"`
	SkillMultiplier float64 `json:"skill_multiplier"`
	RawFee          int     `json:"raw_fee"`
	Fee             int     `json:"fee"`
	Clamped         bool    `json:"clamped"`
}

// HireOutcome is the result of a successful hire decision.
type HireOutcome struct {
	Employee models.Employee `json:"employee"`
	Cost     int             `json:"cost"`
}

// Fee computes the one-time recruitment fee for a candidate. The fee scales
// with the expected salary and the candidate's primary skill level, clamped
// to the configured floor and ceiling.
func (p *Pricer) Fee(candidate models.TalentCandidate) int {
	return p.Breakdown(candidate).Fee
}

// Breakdown returns the fee together with its computation steps.
func (p *Pricer) Breakdown(candidate models.TalentCandidate) FeeBreakdown {
	skillMult := p.skillMultiplier(candidate.MaxSkillLevel())
	raw := int(float64(candidate.ExpectedSalary) * p.cfg.Recruitment.FeeMultiplier * skillMult)
	fee := utils.ClampInt(raw, p.cfg.Recruitment.MinFee, p.cfg.Recruitment.MaxFee)

	return FeeBreakdown{
		ExpectedSalary:  candidate.ExpectedSalary,
		BaseMultiplier:  p.cfg.Recruitment.FeeMultiplier,
		SkillMultiplier: skillMult,
		RawFee:          raw,
		Fee:             fee,
		Clamped:         fee != raw,
	}
}

// CanAfford reports whether funds cover the candidate's recruitment fee.
func (p *Pricer) CanAfford(candidate models.TalentCandidate, funds int64) bool {
	return funds >= int64(p.Fee(candidate))
}

// Capacity returns the roster cap for the given funds. Richer companies
// unlock higher tiers; tiers are checked top-down so overlapping thresholds
// resolve to the largest cap.
func (p *Pricer) Capacity(funds int64) int {
	capacity := p.cfg.Recruitment.BaseCapacity
	for _, tier := range p.cfg.Recruitment.CapacityTiers {
		if funds >= tier.MinFunds && tier.Capacity > capacity {
			capacity = tier.Capacity
		}
	}
	return capacity
}

// Hire decides whether the candidate can be hired given funds and the
// current roster. It mutates nothing: on success the caller owns appending
// the employee and deducting the cost. The new employee id is one past the
// highest id on the roster.
func (p *Pricer) Hire(candidate models.TalentCandidate, funds int64, roster []models.Employee) (HireOutcome, error) {
	fee := p.Fee(candidate)

	if funds < int64(fee) {
		return HireOutcome{}, utils.NewInsufficientFundsError(
			fmt.Sprintf("recruitment fee %d exceeds available funds %d", fee, funds))
	}

	if len(roster) >= p.Capacity(funds) {
		return HireOutcome{}, utils.NewRosterFullError(
			fmt.Sprintf("roster has %d of %d seats filled", len(roster), p.Capacity(funds)))
	}

	return HireOutcome{
		Employee: candidate.ToEmployee(nextEmployeeID(roster)),
		Cost:     fee,
	}, nil
}

func (p *Pricer) skillMultiplier(level int) float64 {
	if mult, ok := p.cfg.Recruitment.SkillMultipliers[level]; ok {
		return mult
	}
	return 1.0
}

func nextEmployeeID(roster []models.Employee) int {
	max := 0
	for _, e := range roster {
		if e.ID > max {
			max = e.ID
		}
	}
	return max + 1
}
