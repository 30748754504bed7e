package analytics

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"financeai/internal/models"
)

// GoalProgress describes how far an open goal is from its target.
type GoalProgress struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	TargetAmount  float64    `json:"target_amount"`
	CurrentAmount float64    `json:"current_amount"`
	Remaining     float64    `json:"remaining"`
	Progress      float64    `json:"progress"`
	Deadline      *time.Time `json:"deadline"`
	DaysRemaining *int       `json:"days_remaining"`
}

// SavingsProgress summarizes all incomplete goals.
type SavingsProgress struct {
	HasGoals    bool           `json:"has_goals"`
	Message     string         `json:"message,omitempty"`
	Goals       []GoalProgress `json:"goals,omitempty"`
	TotalTarget float64        `json:"total_target"`
	TotalSaved  float64        `json:"total_saved"`
}

// TrackSavings reports progress on goals that are not yet completed.
func TrackSavings(goals []models.SavingsGoal, now time.Time) SavingsProgress {
	var out []GoalProgress
	totalTarget, totalSaved := decimal.Zero, decimal.Zero

	for _, g := range goals {
		if g.Completed {
			continue
		}
		target, current := amountOf(g.TargetAmount), amountOf(g.CurrentAmount)
		totalTarget = totalTarget.Add(target)
		totalSaved = totalSaved.Add(current)

		out = append(out, GoalProgress{
			ID:            g.ID,
			Name:          g.Name,
			TargetAmount:  g.TargetAmount,
			CurrentAmount: g.CurrentAmount,
			Remaining:     Money(target.Sub(current)),
			Progress:      Percent(current, target),
			Deadline:      g.Deadline,
			DaysRemaining: DaysUntil(g.Deadline, now),
		})
	}

	if len(out) == 0 {
		return SavingsProgress{HasGoals: false, Message: "No savings goals set yet"}
	}

	return SavingsProgress{
		HasGoals:    true,
		Goals:       out,
		TotalTarget: Money(totalTarget),
		TotalSaved:  Money(totalSaved),
	}
}

// DaysUntil returns the whole days from now until deadline, floored, so an
// overdue deadline is negative. It returns nil without a deadline.
func DaysUntil(deadline *time.Time, now time.Time) *int {
	if deadline == nil {
		return nil
	}
	days := int(math.Floor(deadline.Sub(now).Hours() / 24))
	return &days
}
