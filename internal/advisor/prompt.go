package advisor

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"financeai/internal/analytics"
)

// SystemPrompt is the fixed instruction sent with every advisory request.
const SystemPrompt = `You are FinanceAI, a smart financial advisor who gives laser-focused advice.

STRICT RULES:
- Maximum 50 words per response
- Give 1-2 actionable tips only
- Use bullet points (•) for clarity
- Skip greetings and fluff
- Be direct and specific
- Use numbers when relevant
- One emoji max (optional)
- Focus on the user's actual question

Examples:
Q: "How to save money?"
A: "• Save 20% of income automatically
• Cut one unnecessary subscription
• Cook 3 meals/week at home
Track progress weekly!"

Q: "My expenses are high"
A: "Your top spending: Food ₹5,000
• Try meal prep (save ₹2,000)
• Set ₹4,000 monthly limit
Review in 2 weeks!"

Be precise, actionable, and brief.`

// UserContext is the financial snapshot handed to the advisor with each
// message.
type UserContext struct {
	TotalExpenses    float64
	TotalIncome      float64
	CategorySpending map[string]float64
	Budgets          []analytics.BudgetLine
	SavingsGoals     []analytics.GoalProgress
}

var printer = message.NewPrinter(language.MustParse("en-IN"))

func rupees(v float64) string {
	return printer.Sprintf("₹%.2f", v)
}

// RenderContext formats the snapshot as plain lines for the model prompt.
func RenderContext(uc UserContext) string {
	lines := []string{
		"Total Expenses: " + rupees(uc.TotalExpenses),
		"Total Income: " + rupees(uc.TotalIncome),
	}

	if len(uc.CategorySpending) > 0 {
		cats := make([]string, 0, len(uc.CategorySpending))
		for cat := range uc.CategorySpending {
			cats = append(cats, cat)
		}
		sort.Strings(cats)
		parts := make([]string, 0, len(cats))
		for _, cat := range cats {
			parts = append(parts, fmt.Sprintf("%s %s", cat, rupees(uc.CategorySpending[cat])))
		}
		lines = append(lines, "Spending by Category: "+strings.Join(parts, ", "))
	}

	if len(uc.Budgets) > 0 {
		parts := make([]string, 0, len(uc.Budgets))
		for _, b := range uc.Budgets {
			parts = append(parts, fmt.Sprintf("%s %s of %s (%s)", b.Category, rupees(b.Spent), rupees(b.Budget), b.Status))
		}
		lines = append(lines, "Active Budgets: "+strings.Join(parts, ", "))
	}

	if len(uc.SavingsGoals) > 0 {
		parts := make([]string, 0, len(uc.SavingsGoals))
		for _, g := range uc.SavingsGoals {
			parts = append(parts, fmt.Sprintf("%s %s of %s (%.1f%%)", g.Name, rupees(g.CurrentAmount), rupees(g.TargetAmount), g.Progress))
		}
		lines = append(lines, "Savings Goals: "+strings.Join(parts, ", "))
	}

	return strings.Join(lines, "\n")
}

// UserPrompt combines the rendered snapshot with the user's question.
func UserPrompt(msg string, uc UserContext) string {
	return fmt.Sprintf("User's Financial Data:\n%s\n\nUser's Question: %s\n\nYour Response (max 50 words, bullet points):",
		RenderContext(uc), msg)
}
