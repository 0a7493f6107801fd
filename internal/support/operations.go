package support

import (
	"math/rand"
	"sort"

	"studioops/internal/config"
	"studioops/pkg/models"
	"studioops/pkg/utils"
)

// typeWeight is one slot of a weighted complaint-type table.
type typeWeight struct {
	kind   models.ComplaintType
	weight int
}

// Complaint type distributions per business model. Online products attract
// server and payment tickets; single-player products do not.
var (
	onlineTypeWeights = []typeWeight{
		{models.ComplaintBug, 25},
		{models.ComplaintBalance, 20},
		{models.ComplaintContent, 20},
		{models.ComplaintServer, 15},
		{models.ComplaintPayment, 10},
		{models.ComplaintOther, 10},
	}
	singlePlayerTypeWeights = []typeWeight{
		{models.ComplaintBug, 35},
		{models.ComplaintBalance, 30},
		{models.ComplaintContent, 30},
		{models.ComplaintOther, 5},
	}
)

// Operations implements complaint generation, assignment, daily processing
// and retention. It holds no ticket state: every call takes the current
// complaint list and returns the updated one, so the caller stays the
// single owner of game state.
type Operations struct {
	cfg *config.Config
	rng *rand.Rand
}

// NewOperations creates the complaint operations engine.
func NewOperations(cfg *config.Config, rng *rand.Rand) *Operations {
	return &Operations{cfg: cfg, rng: rng}
}

// GenerateMonthly rolls the month-start complaint wave. Each released
// product draws a Bernoulli trial keyed by its business model; a hit
// produces one or two new tickets. Generation never fails.
func (o *Operations) GenerateMonthly(products []models.Product, date models.GameDate) []models.Complaint {
	var generated []models.Complaint
	for _, product := range products {
		if !product.Released {
			continue
		}

		chance := o.cfg.Support.MonthlyProbability[string(product.BusinessModel)]
		if o.rng.Float64() >= chance {
			continue
		}

		count := o.rng.Intn(o.cfg.Support.MaxMonthlyPerGame) + 1
		for i := 0; i < count; i++ {
			generated = append(generated, o.newComplaint(product, date))
		}
	}
	return generated
}

// GenerateDaily rolls the low-rate daily trickle. Every released product
// draws its own trial, with the per-product chance damped as the released
// catalog grows; when several products hit on the same day, one of them is
// picked at random so at most one ticket is created per day.
func (o *Operations) GenerateDaily(products []models.Product, date models.GameDate) []models.Complaint {
	var released []models.Product
	for _, product := range products {
		if product.Released {
			released = append(released, product)
		}
	}
	if len(released) == 0 {
		return nil
	}

	mult := trickleMultiplier(len(released))
	var hits []models.Product
	for _, product := range released {
		chance := o.cfg.Support.DailyProbability[string(product.BusinessModel)] * mult
		if o.rng.Float64() < chance {
			hits = append(hits, product)
		}
	}
	if len(hits) == 0 {
		return nil
	}

	pick := hits[o.rng.Intn(len(hits))]
	return []models.Complaint{o.newComplaint(pick, date)}
}

func trickleMultiplier(releasedCount int) float64 {
	switch {
	case releasedCount <= 5:
		return 0.8
	case releasedCount <= 10:
		return 0.5
	case releasedCount <= 20:
		return 0.3
	default:
		return 0.2
	}
}

func (o *Operations) newComplaint(product models.Product, date models.GameDate) models.Complaint {
	severity := o.rollSeverity()
	profile := o.cfg.SeverityProfileFor(string(severity))

	return models.Complaint{
		ID:          utils.NewEntityID("cmpl"),
		ProductID:   product.ID,
		ProductName: product.Name,
		Type:        o.rollType(product.BusinessModel),
		Severity:    severity,
		Workload:    profile.Workload,
		Status:      models.ComplaintPending,
		CreatedOn:   date,
	}
}

func (o *Operations) rollSeverity() models.ComplaintSeverity {
	roll := o.rng.Intn(100)
	switch {
	case roll < 50:
		return models.SeverityLow
	case roll < 85:
		return models.SeverityMedium
	default:
		return models.SeverityHigh
	}
}

func (o *Operations) rollType(model models.BusinessModel) models.ComplaintType {
	weights := singlePlayerTypeWeights
	if model == models.BusinessOnline {
		weights = onlineTypeWeights
	}

	total := 0
	for _, w := range weights {
		total += w.weight
	}

	roll := o.rng.Intn(total)
	for _, w := range weights {
		if roll < w.weight {
			return w.kind
		}
		roll -= w.weight
	}
	return models.ComplaintOther
}

// DailyProgress returns how many workload units the agent clears per day,
// scaled by their service skill.
func (o *Operations) DailyProgress(agent models.Employee) int {
	level := agent.Skills.Level(models.SkillService)
	mult, ok := o.cfg.Support.SkillMultipliers[level]
	if !ok {
		mult = 1.0
	}
	return int(float64(o.cfg.Support.BaseDailyProgress) * mult)
}

// ProcessDaily advances every assigned, non-completed ticket by its agent's
// daily progress. Tickets whose agent left the roster are unassigned
// instead of erroring. Returns the updated list and the number of tickets
// completed this pass.
func (o *Operations) ProcessDaily(complaints []models.Complaint, roster []models.Employee, date models.GameDate) ([]models.Complaint, int) {
	byID := make(map[int]models.Employee, len(roster))
	for _, e := range roster {
		byID[e.ID] = e
	}

	updated := append([]models.Complaint(nil), complaints...)
	completed := 0
	for i, c := range updated {
		if c.Status == models.ComplaintCompleted || c.AssignedTo == nil {
			continue
		}

		agent, ok := byID[*c.AssignedTo]
		if !ok {
			updated[i] = unassigned(c)
			continue
		}

		c.Progress += o.DailyProgress(agent)
		if c.Progress >= c.Workload {
			c.Progress = c.Workload
			c.Status = models.ComplaintCompleted
			done := date
			c.CompletedOn = &done
			completed++
		}
		updated[i] = c
	}
	return updated, completed
}

// DailyOverdueLoss sums today's SLA breach penalties: every non-completed
// ticket older than its severity's SLA threshold costs that severity's
// daily penalty once per tick.
func (o *Operations) DailyOverdueLoss(complaints []models.Complaint, date models.GameDate) int {
	loss := 0
	for _, c := range complaints {
		if c.Status == models.ComplaintCompleted {
			continue
		}
		profile := o.cfg.SeverityProfileFor(string(c.Severity))
		if c.AgeDays(date) > profile.SLADays {
			loss += profile.DailyPenalty
		}
	}
	return loss
}

// AccruedLoss returns the total penalty a single ticket has accumulated by
// date: one daily penalty per day past its SLA threshold.
func (o *Operations) AccruedLoss(c models.Complaint, date models.GameDate) int {
	profile := o.cfg.SeverityProfileFor(string(c.Severity))
	overdue := c.AgeDays(date) - profile.SLADays
	if overdue <= 0 {
		return 0
	}
	return overdue * profile.DailyPenalty
}

// Cleanup prunes the ticket list after a processing pass. Active tickets
// are capped at the configured maximum (newest kept); completed tickets
// from the current month all survive, while older completions keep only
// the most recent configured number.
func (o *Operations) Cleanup(complaints []models.Complaint, date models.GameDate) []models.Complaint {
	var active, completedThisMonth, completedOlder []models.Complaint
	for _, c := range complaints {
		switch {
		case c.Status != models.ComplaintCompleted:
			active = append(active, c)
		case c.CompletedOn != nil && c.CompletedOn.SameMonth(date):
			completedThisMonth = append(completedThisMonth, c)
		default:
			completedOlder = append(completedOlder, c)
		}
	}

	if len(active) > o.cfg.Support.MaxActive {
		sort.SliceStable(active, func(i, j int) bool {
			return active[j].CreatedOn.Before(active[i].CreatedOn)
		})
		active = active[:o.cfg.Support.MaxActive]
	}

	sort.SliceStable(completedOlder, func(i, j int) bool {
		a, b := completedOlder[i], completedOlder[j]
		if a.CompletedOn == nil || b.CompletedOn == nil {
			return b.CompletedOn == nil
		}
		return b.CompletedOn.Before(*a.CompletedOn)
	})
	if len(completedOlder) > o.cfg.Support.RetainCompleted {
		completedOlder = completedOlder[:o.cfg.Support.RetainCompleted]
	}

	kept := make([]models.Complaint, 0, len(active)+len(completedThisMonth)+len(completedOlder))
	kept = append(kept, active...)
	kept = append(kept, completedThisMonth...)
	kept = append(kept, completedOlder...)
	return kept
}

// Statistics summarizes the ticket queue for the given month.
func (o *Operations) Statistics(complaints []models.Complaint, date models.GameDate) models.ComplaintStats {
	var stats models.ComplaintStats
	for _, c := range complaints {
		switch c.Status {
		case models.ComplaintPending:
			stats.TotalPending++
		case models.ComplaintInProgress:
			stats.TotalInProgress++
		case models.ComplaintCompleted:
			if c.CompletedOn != nil && c.CompletedOn.SameMonth(date) {
				stats.CompletedThisMonth++
			}
		}
		if c.CreatedOn.SameMonth(date) {
			stats.NewThisMonth++
		}
	}
	return stats
}

func unassigned(c models.Complaint) models.Complaint {
	c.AssignedTo = nil
	if c.Progress > 0 {
		c.Status = models.ComplaintInProgress
	} else {
		c.Status = models.ComplaintPending
	}
	return c
}
