package support

import (
	"fmt"
	"sort"

	"studioops/pkg/models"
	"studioops/pkg/utils"
)

// SupportAgents filters the roster to support staff, ranked by descending
// service skill.
func SupportAgents(roster []models.Employee) []models.Employee {
	var agents []models.Employee
	for _, e := range roster {
		if e.Position == models.PositionSupportAgent {
			agents = append(agents, e)
		}
	}
	sort.SliceStable(agents, func(i, j int) bool {
		return agents[i].Skills.Level(models.SkillService) > agents[j].Skills.Level(models.SkillService)
	})
	return agents
}

// Assign manually puts one ticket on an agent's desk. The employee must
// exist and hold the support role; the ticket flips to IN_PROGRESS.
func (o *Operations) Assign(complaints []models.Complaint, complaintID string, employeeID int, roster []models.Employee) ([]models.Complaint, error) {
	var agent *models.Employee
	for i := range roster {
		if roster[i].ID == employeeID {
			agent = &roster[i]
			break
		}
	}
	if agent == nil {
		return nil, utils.NewNotFoundError(fmt.Sprintf("employee %d", employeeID))
	}
	if agent.Position != models.PositionSupportAgent {
		return nil, utils.NewInvalidStateError(
			fmt.Sprintf("employee %d is a %s, complaints require a support agent", employeeID, agent.Position))
	}

	updated := append([]models.Complaint(nil), complaints...)
	for i, c := range updated {
		if c.ID != complaintID {
			continue
		}
		if c.Status == models.ComplaintCompleted {
			return nil, utils.NewInvalidStateError(fmt.Sprintf("complaint %s is already completed", complaintID))
		}
		c.AssignedTo = &employeeID
		c.Status = models.ComplaintInProgress
		updated[i] = c
		return updated, nil
	}
	return nil, utils.NewNotFoundError(fmt.Sprintf("complaint %s", complaintID))
}

// Unassign takes a ticket off its agent. Status reverts to IN_PROGRESS when
// work was already done, otherwise PENDING.
func (o *Operations) Unassign(complaints []models.Complaint, complaintID string) ([]models.Complaint, error) {
	updated := append([]models.Complaint(nil), complaints...)
	for i, c := range updated {
		if c.ID != complaintID {
			continue
		}
		if c.Status == models.ComplaintCompleted {
			return nil, utils.NewInvalidStateError(fmt.Sprintf("complaint %s is already completed", complaintID))
		}
		updated[i] = unassigned(c)
		return updated, nil
	}
	return nil, utils.NewNotFoundError(fmt.Sprintf("complaint %s", complaintID))
}

// AutoAssign distributes every unassigned PENDING ticket across the support
// staff in one greedy pass. Tickets are served HIGH severity first, oldest
// first; agents carry a running workload of their open tickets so one agent
// never absorbs the whole queue. Returns the updated list and how many
// tickets were assigned.
func (o *Operations) AutoAssign(complaints []models.Complaint, roster []models.Employee) ([]models.Complaint, int) {
	agents := SupportAgents(roster)
	if len(agents) == 0 {
		return complaints, 0
	}

	// Remaining workload per agent over their open tickets.
	load := make(map[int]int, len(agents))
	for _, a := range agents {
		load[a.ID] = 0
	}
	for _, c := range complaints {
		if c.Status == models.ComplaintCompleted || c.AssignedTo == nil {
			continue
		}
		if _, ok := load[*c.AssignedTo]; ok {
			load[*c.AssignedTo] += c.Workload - c.Progress
		}
	}

	updated := append([]models.Complaint(nil), complaints...)

	queue := make([]int, 0, len(updated))
	for i, c := range updated {
		if c.Status == models.ComplaintPending && c.AssignedTo == nil {
			queue = append(queue, i)
		}
	}
	sort.SliceStable(queue, func(a, b int) bool {
		ca, cb := updated[queue[a]], updated[queue[b]]
		if ca.Severity.Rank() != cb.Severity.Rank() {
			return ca.Severity.Rank() > cb.Severity.Rank()
		}
		return ca.CreatedOn.Before(cb.CreatedOn)
	})

	assigned := 0
	for _, idx := range queue {
		c := updated[idx]
		agent := o.pickAgent(c.Severity, agents, load)

		agentID := agent.ID
		c.AssignedTo = &agentID
		c.Status = models.ComplaintInProgress
		updated[idx] = c

		load[agent.ID] += c.Workload - c.Progress
		assigned++
	}
	return updated, assigned
}

// pickAgent applies the severity-specific selection rule. agents is already
// sorted by descending skill.
func (o *Operations) pickAgent(severity models.ComplaintSeverity, agents []models.Employee, load map[int]int) models.Employee {
	switch severity {
	case models.SeverityHigh:
		// Highest skill still below saturation, else least loaded.
		for _, a := range agents {
			if load[a.ID] < o.cfg.Support.SaturationWorkload {
				return a
			}
		}
		return leastLoaded(agents, load)
	case models.SeverityMedium:
		var qualified []models.Employee
		for _, a := range agents {
			if a.Skills.Level(models.SkillService) >= 2 {
				qualified = append(qualified, a)
			}
		}
		if len(qualified) > 0 {
			return leastLoaded(qualified, load)
		}
		return leastLoaded(agents, load)
	default:
		return leastLoaded(agents, load)
	}
}

func leastLoaded(agents []models.Employee, load map[int]int) models.Employee {
	best := agents[0]
	for _, a := range agents[1:] {
		if load[a.ID] < load[best.ID] {
			best = a
		}
	}
	return best
}
