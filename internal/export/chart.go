package export

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/wcharczuk/go-chart/v2"

	"fintrack/internal/core"
)

// ErrNoExpenses is returned when a chart is requested but the ledger holds
// no expense records; go-chart cannot render a pie with zero slices, so the
// case is caught before the renderer is invoked.
var ErrNoExpenses = errors.New("no expense records to visualize")

// RenderExpensePie draws one slice per category, labeled with the category
// name and its percentage share of total expenses.
func RenderExpensePie(w io.Writer, categories []core.CategoryAmount) error {
	if len(categories) == 0 {
		return ErrNoExpenses
	}

	var totalCents int64
	for _, c := range categories {
		totalCents += c.Amount.Cents
	}
	if totalCents <= 0 {
		return ErrNoExpenses
	}

	values := make([]chart.Value, 0, len(categories))
	for _, c := range categories {
		share := float64(c.Amount.Cents) / float64(totalCents) * 100
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s (%.1f%%)", c.Name, share),
			Value: float64(c.Amount.Cents),
		})
	}

	pie := chart.PieChart{
		Title:  "Expense Distribution by Category",
		Width:  1000,
		Height: 600,
		Values: values,
	}

	if err := pie.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render pie chart: %w", err)
	}
	return nil
}

// ToChartFile renders the expense breakdown to a PNG at path. Nothing is
// written when there are no expenses.
func ToChartFile(path string, categories []core.CategoryAmount) error {
	if len(categories) == 0 {
		return ErrNoExpenses
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chart file: %w", err)
	}

	if err := RenderExpensePie(f, categories); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close chart file: %w", err)
	}
	return nil
}
