package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"fintrack/internal/config"
	"fintrack/internal/core"
	"fintrack/internal/export"
	"fintrack/internal/services"
)

// Menu drives the six-choice interactive loop over a ledger service.
// Input and output are plain streams so tests can script a session.
type Menu struct {
	ledger *services.LedgerService
	cfg    *config.Config
	in     *bufio.Reader
	out    io.Writer
}

func NewMenu(ledger *services.LedgerService, cfg *config.Config, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		ledger: ledger,
		cfg:    cfg,
		in:     bufio.NewReader(in),
		out:    out,
	}
}

// Run loops until the user exits or input ends. Operation errors are
// reported and the loop continues; they never terminate the session.
func (m *Menu) Run(ctx context.Context) error {
	for {
		fmt.Fprintln(m.out)
		fmt.Fprintln(m.out, "--- Personal Finance Tracker ---")
		fmt.Fprintln(m.out, "1. Add Income")
		fmt.Fprintln(m.out, "2. Add Expense")
		fmt.Fprintln(m.out, "3. View Monthly Report")
		fmt.Fprintln(m.out, "4. Visualize Expenses")
		fmt.Fprintln(m.out, "5. Export Transactions")
		fmt.Fprintln(m.out, "6. Exit")

		choice, err := m.prompt("Enter your choice (1-6): ")
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("read menu choice: %w", err)
		}

		switch choice {
		case "1":
			err = m.addTransaction(ctx, core.Income)
		case "2":
			err = m.addTransaction(ctx, core.Expense)
		case "3":
			err = m.showMonthlyReport(ctx)
		case "4":
			err = m.visualizeExpenses(ctx)
		case "5":
			err = m.exportTransactions(ctx)
		case "6":
			return nil
		default:
			fmt.Fprintln(m.out, "Invalid choice. Please try again.")
			continue
		}

		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			fmt.Fprintf(m.out, "Error: %v\n", err)
		}
	}
}

func (m *Menu) prompt(label string) (string, error) {
	fmt.Fprint(m.out, label)
	line, err := m.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// promptAmount re-prompts until the input parses as a positive decimal
// amount. Bad input never aborts the add.
func (m *Menu) promptAmount(label string) (core.Money, error) {
	for {
		raw, err := m.prompt(label)
		if err != nil {
			return core.Money{}, err
		}
		cents, err := core.ParseDecimalToCents(raw)
		if err != nil {
			fmt.Fprintln(m.out, "Invalid amount. Enter a positive number like 12.50.")
			continue
		}
		return core.Money{Cents: cents}, nil
	}
}

func (m *Menu) addTransaction(ctx context.Context, typ core.Type) error {
	amount, err := m.promptAmount(fmt.Sprintf("Enter %s amount: ", typ))
	if err != nil {
		return err
	}
	category, err := m.prompt(fmt.Sprintf("Enter %s category: ", typ))
	if err != nil {
		return err
	}
	description, err := m.prompt("Enter description: ")
	if err != nil {
		return err
	}

	if err := m.ledger.AddTransaction(ctx, amount, category, description, typ); err != nil {
		return err
	}
	fmt.Fprintln(m.out, "Transaction added successfully!")
	return nil
}

func (m *Menu) showMonthlyReport(ctx context.Context) error {
	report, err := m.ledger.MonthlyReport(ctx)
	if err != nil {
		return err
	}
	if len(report) == 0 {
		fmt.Fprintln(m.out, "No transactions recorded yet.")
		return nil
	}

	table := tablewriter.NewWriter(m.out)
	table.SetHeader([]string{"Month", "Income", "Expenses", "Balance"})
	for _, s := range report {
		table.Append([]string{
			s.Month,
			fmt.Sprintf("%.2f", s.Income.Float64()),
			fmt.Sprintf("%.2f", s.Expenses.Float64()),
			fmt.Sprintf("%.2f", s.Balance().Float64()),
		})
	}
	table.Render()
	return nil
}

func (m *Menu) visualizeExpenses(ctx context.Context) error {
	err := m.ledger.VisualizeExpenses(ctx, m.cfg.ChartFile)
	if errors.Is(err, export.ErrNoExpenses) {
		fmt.Fprintln(m.out, "No expenses to visualize yet.")
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Expense visualization saved as '%s'\n", m.cfg.ChartFile)
	return nil
}

func (m *Menu) exportTransactions(ctx context.Context) error {
	if err := m.ledger.ExportCSV(ctx, m.cfg.ExportFile); err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Transactions exported to %s\n", m.cfg.ExportFile)
	return nil
}
