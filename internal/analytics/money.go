package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"financeai/internal/models"
)

var hundred = decimal.NewFromInt(100)

// Money rounds an amount to 2 decimal places.
func Money(d decimal.Decimal) float64 {
	f, _ := d.Round(2).Float64()
	return f
}

// Percent returns part/whole*100 rounded to 1 place, or 0 when whole is not
// positive.
func Percent(part, whole decimal.Decimal) float64 {
	if !whole.IsPositive() {
		return 0
	}
	f, _ := part.Div(whole).Mul(hundred).Round(1).Float64()
	return f
}

func amountOf(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}

// inWindow reports whether t falls within [start, now].
func inWindow(t, start, now time.Time) bool {
	return !t.Before(start) && !t.After(now)
}

// categoryTotals accumulates per-category sums for the given transaction type.
type categoryTotals struct {
	order  []string
	totals map[string]decimal.Decimal
	counts map[string]int
}

func newCategoryTotals() *categoryTotals {
	return &categoryTotals{
		totals: make(map[string]decimal.Decimal),
		counts: make(map[string]int),
	}
}

func (c *categoryTotals) add(t models.Transaction) {
	if _, ok := c.totals[t.Category]; !ok {
		c.order = append(c.order, t.Category)
	}
	c.totals[t.Category] = c.totals[t.Category].Add(amountOf(t.Amount))
	c.counts[t.Category]++
}

func (c *categoryTotals) get(category string) decimal.Decimal {
	return c.totals[category]
}

func (c *categoryTotals) sum() decimal.Decimal {
	total := decimal.Zero
	for _, v := range c.totals {
		total = total.Add(v)
	}
	return total
}

func (c *categoryTotals) rounded() map[string]float64 {
	out := make(map[string]float64, len(c.totals))
	for k, v := range c.totals {
		out[k] = Money(v)
	}
	return out
}
