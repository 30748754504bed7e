package advisor

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	apperrors "financeai/internal/errors"
	"financeai/internal/logger"
	"financeai/internal/models"
)

func init() {
	logger.Init("test")
}

const savingsReply = `• Emergency fund: 3-6 months expenses
• Automate savings on payday
• Start with ₹500/month minimum
• Track progress weekly

Create goal in "Add Savings Goal"!`

func TestAdvisor_Respond(t *testing.T) {
	uc := UserContext{TotalExpenses: 250, TotalIncome: 900, CategorySpending: map[string]float64{"Food": 250}}

	t.Run("no_generator_uses_fallback", func(t *testing.T) {
		a := New(nil)

		reply := a.Respond(context.Background(), "How can I save money?", uc)

		assert.False(t, a.HasGenerator())
		assert.Equal(t, savingsReply, reply.Text)
		assert.Equal(t, models.ChatSourceFallback, reply.Source)
	})

	t.Run("generator_reply_is_trimmed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gen := NewMockGenerator(ctrl)
		gen.EXPECT().
			Generate(gomock.Any(), SystemPrompt, gomock.Any()).
			DoAndReturn(func(_ context.Context, _, userPrompt string) (string, error) {
				assert.Contains(t, userPrompt, "User's Question: Where does my money go?")
				assert.Contains(t, userPrompt, "Total Expenses: ₹250.00")
				return "  • Cut Food to ₹200\n", nil
			})

		reply := New(gen).Respond(context.Background(), "Where does my money go?", uc)

		assert.Equal(t, "• Cut Food to ₹200", reply.Text)
		assert.Equal(t, models.ChatSourceModel, reply.Source)
	})

	t.Run("generator_error_falls_back", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gen := NewMockGenerator(ctrl)
		gen.EXPECT().
			Generate(gomock.Any(), gomock.Any(), gomock.Any()).
			Return("", apperrors.Wrap(apperrors.ErrExternalService, errors.New("timeout")))

		reply := New(gen).Respond(context.Background(), "How can I save money?", uc)

		assert.Equal(t, savingsReply, reply.Text)
		assert.Equal(t, models.ChatSourceFallback, reply.Source)
	})

	t.Run("blank_generator_output_falls_back", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gen := NewMockGenerator(ctrl)
		gen.EXPECT().Generate(gomock.Any(), gomock.Any(), gomock.Any()).Return(" \n ", nil)

		reply := New(gen).Respond(context.Background(), "hello", uc)

		assert.Equal(t, models.ChatSourceFallback, reply.Source)
		assert.True(t, strings.HasPrefix(reply.Text, "Hi! I'm FinanceAI"))
	})
}

func TestFallback(t *testing.T) {
	tests := []struct {
		name    string
		message string
		uc      UserContext
		want    string
	}{
		{
			name:    "budget_keywords_quote_total_expenses",
			message: "Help me with my BUDGET",
			uc:      UserContext{TotalExpenses: 432.1},
			want: `• Current spending: ₹432.10
• Use 50/30/20 rule (needs/wants/savings)
• Set category limits
• Review weekly

Set a budget in "Create Budget"!`,
		},
		{
			name:    "savings_keywords",
			message: "How can I save money?",
			want:    savingsReply,
		},
		{
			name:    "tracking_with_category_data",
			message: "track this expense",
			uc:      UserContext{CategorySpending: map[string]float64{"Food": 120.5, "Travel": 300, "Books": 300}},
			want: `• Top spending: Books ₹300.00
• Log expenses immediately
• Review weekly
• Set category budgets

Use "Add Transaction"!`,
		},
		{
			name:    "tracking_without_category_data",
			message: "add a transaction",
			want: `• Start tracking all expenses
• Categorize each transaction
• Review patterns weekly
• Set monthly budgets

Click "Add Transaction"!`,
		},
		{
			name:    "investing_keywords",
			message: "Should I buy stocks?",
			want: `• Build emergency fund first (3-6 months)
• Start with index funds/ETFs
• Use SIP for regular investing
• Diversify across sectors
• Learn before investing

Start small, stay consistent!`,
		},
		{
			name:    "greeting",
			message: "Hey",
			want: `Hi! I'm FinanceAI 👋

I help with:
• Track expenses
• Manage budgets
• Set savings goals
• Financial advice

Ask me anything!`,
		},
		{
			name:    "unmatched_message",
			message: "what's up?",
			want:    defaultReply,
		},
		{
			name:    "first_topic_wins",
			message: "my spending goal",
			uc:      UserContext{TotalExpenses: 10},
			want: `• Current spending: ₹10.00
• Use 50/30/20 rule (needs/wants/savings)
• Set category limits
• Review weekly

Set a budget in "Create Budget"!`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Fallback(tt.message, tt.uc))
		})
	}
}

func TestRenderContext(t *testing.T) {
	uc := UserContext{
		TotalExpenses:    120,
		TotalIncome:      500.5,
		CategorySpending: map[string]float64{"Travel": 20, "Food": 100},
	}

	got := RenderContext(uc)

	assert.Equal(t, "Total Expenses: ₹120.00\nTotal Income: ₹500.50\nSpending by Category: Food ₹100.00, Travel ₹20.00", got)
}
