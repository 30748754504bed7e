package advisor

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// topic is a keyword set and the canned reply it selects. Keywords match as
// substrings of the lower-cased message, and the first matching topic wins.
type topic struct {
	keywords []string
	reply    func(UserContext) string
}

var topics = []topic{
	{
		keywords: []string{"budget", "spending", "expenses"},
		reply: func(uc UserContext) string {
			return fmt.Sprintf(`• Current spending: ₹%.2f
• Use 50/30/20 rule (needs/wants/savings)
• Set category limits
• Review weekly

Set a budget in "Create Budget"!`, uc.TotalExpenses)
		},
	},
	{
		keywords: []string{"save", "saving", "goal"},
		reply: func(UserContext) string {
			return `• Emergency fund: 3-6 months expenses
• Automate savings on payday
• Start with ₹500/month minimum
• Track progress weekly

Create goal in "Add Savings Goal"!`
		},
	},
	{
		keywords: []string{"track", "transaction", "expense"},
		reply: func(uc UserContext) string {
			cat, amt, ok := topCategory(uc.CategorySpending)
			if !ok {
				return `• Start tracking all expenses
• Categorize each transaction
• Review patterns weekly
• Set monthly budgets

Click "Add Transaction"!`
			}
			return fmt.Sprintf(`• Top spending: %s ₹%.2f
• Log expenses immediately
• Review weekly
• Set category budgets

Use "Add Transaction"!`, cat, amt)
		},
	},
	{
		keywords: []string{"invest", "investment", "stocks", "mutual fund"},
		reply: func(UserContext) string {
			return `• Build emergency fund first (3-6 months)
• Start with index funds/ETFs
• Use SIP for regular investing
• Diversify across sectors
• Learn before investing

Start small, stay consistent!`
		},
	},
	{
		keywords: []string{"hello", "hi", "hey", "start"},
		reply: func(UserContext) string {
			return `Hi! I'm FinanceAI 👋

I help with:
• Track expenses
• Manage budgets
• Set savings goals
• Financial advice

Ask me anything!`
		},
	},
}

const defaultReply = `I can help with:
• Budgets & expenses
• Savings strategies
• Spending analysis
• Financial tips

What do you need?`

var lower = cases.Lower(language.Und)

// Fallback returns the deterministic keyword-matched reply for msg.
func Fallback(msg string, uc UserContext) string {
	text := lower.String(msg)
	for _, t := range topics {
		for _, kw := range t.keywords {
			if strings.Contains(text, kw) {
				return t.reply(uc)
			}
		}
	}
	return defaultReply
}

// topCategory picks the largest spend, breaking ties by name.
func topCategory(spending map[string]float64) (string, float64, bool) {
	var (
		best   string
		amount float64
		found  bool
	)
	for cat, amt := range spending {
		if !found || amt > amount || (amt == amount && cat < best) {
			best, amount, found = cat, amt, true
		}
	}
	return best, amount, found
}
