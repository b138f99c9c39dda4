package core

import "sort"

type (
	// MonthSummary aggregates one calendar month of the ledger.
	MonthSummary struct {
		Month    string // "YYYY-MM"
		Income   Money
		Expenses Money
	}

	// CategoryAmount is an expense total for a single category.
	CategoryAmount struct {
		Name   string
		Amount Money
	}
)

// Balance is income minus expenses; it is derived, never stored.
func (s MonthSummary) Balance() Money {
	return Money{Cents: s.Income.Cents - s.Expenses.Cents}
}

// SummarizeByMonth groups transactions by month key and totals income and
// expenses per month. A month seen only through one type still reports the
// other total as zero. Summaries come back sorted by month key, which is
// chronological for the "YYYY-MM" format.
func SummarizeByMonth(txs []Transaction) []MonthSummary {
	byMonth := make(map[string]*MonthSummary)
	for _, tx := range txs {
		key := tx.Date.MonthKey()
		s, ok := byMonth[key]
		if !ok {
			s = &MonthSummary{Month: key}
			byMonth[key] = s
		}
		if tx.Type == Income {
			s.Income.Cents += tx.Amount.Cents
		} else {
			s.Expenses.Cents += tx.Amount.Cents
		}
	}

	out := make([]MonthSummary, 0, len(byMonth))
	for _, s := range byMonth {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Month < out[j].Month
	})
	return out
}

// ExpensesByCategory totals expense transactions per category. Income
// records are ignored. Results are sorted by category name so chart slices
// and tests are deterministic.
func ExpensesByCategory(txs []Transaction) []CategoryAmount {
	totals := make(map[string]int64)
	for _, tx := range txs {
		if tx.Type != Expense {
			continue
		}
		totals[tx.Category] += tx.Amount.Cents
	}

	out := make([]CategoryAmount, 0, len(totals))
	for name, cents := range totals {
		out = append(out, CategoryAmount{Name: name, Amount: Money{Cents: cents}})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out
}
