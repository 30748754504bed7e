package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gorm.io/gorm"

	"financeai/internal/config"
	"financeai/internal/database"
	"financeai/internal/logger"
	"financeai/internal/models"
	"financeai/internal/services"
)

const (
	demoUsername = "demo"
	demoEmail    = "demo@financeai.com"
	demoPassword = "demo123"
)

type demoTxn struct {
	category    string
	amount      float64
	description string
	daysAgo     int
	txType      models.TransactionType
}

var demoTransactions = []demoTxn{
	{"Salary", 50000, "Monthly Salary", 25, models.TransactionTypeIncome},
	{"Other", 15000, "Freelance Project", 15, models.TransactionTypeIncome},
	{"Groceries", 8500, "Monthly Groceries", 23, models.TransactionTypeExpense},
	{"Food & Dining", 3200, "Restaurant Dinner", 2, models.TransactionTypeExpense},
	{"Food & Dining", 1800, "Lunch", 5, models.TransactionTypeExpense},
	{"Transport", 2500, "Fuel", 10, models.TransactionTypeExpense},
	{"Transport", 800, "Auto Fare", 3, models.TransactionTypeExpense},
	{"Utilities", 1500, "Electricity Bill", 20, models.TransactionTypeExpense},
	{"Utilities", 800, "Internet Bill", 18, models.TransactionTypeExpense},
	{"Entertainment", 1200, "Netflix Subscription", 15, models.TransactionTypeExpense},
	{"Entertainment", 1500, "Movie Night", 7, models.TransactionTypeExpense},
	{"Shopping", 4500, "Clothes Shopping", 12, models.TransactionTypeExpense},
	{"Shopping", 2200, "Electronics", 8, models.TransactionTypeExpense},
	{"Healthcare", 1800, "Doctor Visit", 14, models.TransactionTypeExpense},
	{"Education", 3500, "Online Course", 17, models.TransactionTypeExpense},
}

var demoBudgets = []struct {
	category string
	amount   float64
}{
	{"Food & Dining", 6000},
	{"Groceries", 10000},
	{"Transport", 4000},
	{"Entertainment", 3000},
	{"Shopping", 5000},
}

var demoGoals = []struct {
	name          string
	target        float64
	current       float64
	deadlineAfter int
}{
	{"Emergency Fund", 100000, 45000, 180},
	{"Vacation to Goa", 50000, 28000, 120},
	{"New Laptop", 80000, 15000, 90},
}

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(os.Stdout); err != nil {
		logger.Get().Fatalf("Seed error: %v", err)
	}
}

func run(stdout io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	dbManager, err := database.NewManager(database.NewConfig(cfg))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer dbManager.Close()

	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to prepare database: %w", err)
	}

	created, err := seedDemo(dbManager.DB(), time.Now().UTC())
	if err != nil {
		return err
	}
	if !created {
		fmt.Fprintln(stdout, "Demo user already exists")
	} else {
		fmt.Fprintf(stdout, "Created demo user with %d transactions, %d budgets and %d savings goals\n",
			len(demoTransactions), len(demoBudgets), len(demoGoals))
	}
	fmt.Fprintf(stdout, "Login with username %q and password %q\n", demoUsername, demoPassword)
	return nil
}

// seedDemo writes the demo data set in one transaction. It returns false
// without writing anything when the demo user already exists.
func seedDemo(db *gorm.DB, now time.Time) (bool, error) {
	var existing models.User
	err := db.Where("username = ?", demoUsername).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("failed to look up demo user: %w", err)
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		user, err := services.NewUserService(tx).Register(demoUsername, demoEmail, demoPassword)
		if err != nil {
			return fmt.Errorf("failed to create demo user: %w", err)
		}

		transactions := services.NewTransactionService(tx)
		for _, d := range demoTransactions {
			date := now.AddDate(0, 0, -d.daysAgo)
			if _, err := transactions.CreateTransaction(user.ID, services.TransactionInput{
				Amount:      d.amount,
				Category:    d.category,
				Description: d.description,
				Type:        d.txType,
				Date:        &date,
			}); err != nil {
				return fmt.Errorf("failed to create transaction %q: %w", d.description, err)
			}
		}

		budgets := services.NewBudgetService(tx)
		for _, b := range demoBudgets {
			if _, err := budgets.UpsertBudget(user.ID, b.category, b.amount, models.BudgetPeriodMonthly); err != nil {
				return fmt.Errorf("failed to create budget %q: %w", b.category, err)
			}
		}

		goals := services.NewSavingsGoalService(tx)
		for _, g := range demoGoals {
			deadline := now.AddDate(0, 0, g.deadlineAfter)
			if _, err := goals.CreateGoal(user.ID, g.name, g.target, g.current, &deadline); err != nil {
				return fmt.Errorf("failed to create goal %q: %w", g.name, err)
			}
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return true, nil
}
