package models

import "time"

// SavingsGoal tracks progress towards a target amount. Completed is set once
// CurrentAmount reaches TargetAmount and is never cleared afterwards.
type SavingsGoal struct {
	Base
	UserID        string     `gorm:"size:36;not null;index" json:"user_id"`
	Name          string     `gorm:"size:100;not null" json:"name"`
	TargetAmount  float64    `gorm:"not null" json:"target_amount"`
	CurrentAmount float64    `gorm:"not null;default:0" json:"current_amount"`
	Deadline      *time.Time `json:"deadline"`
	Completed     bool       `gorm:"not null;default:false" json:"completed"`
}

// MarkIfReached sets Completed when the current amount meets the target.
// It never clears the flag.
func (g *SavingsGoal) MarkIfReached() {
	if g.CurrentAmount >= g.TargetAmount {
		g.Completed = true
	}
}
