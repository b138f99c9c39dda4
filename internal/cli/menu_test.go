package cli

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"fintrack/internal/config"
	"fintrack/internal/core"
	"fintrack/internal/services"
	"fintrack/internal/storage"
)

func newTestMenu(t *testing.T, input string) (*Menu, *services.LedgerService, *strings.Builder) {
	t.Helper()
	dir := t.TempDir()
	repo, err := storage.NewJSONRepository(filepath.Join(dir, "finance_data.json"))
	if err != nil {
		t.Fatalf("NewJSONRepository: %v", err)
	}
	svc := services.NewLedgerService(repo, nil)
	t.Cleanup(func() { svc.Close() })

	cfg := &config.Config{
		ExportFile: filepath.Join(dir, "transactions.csv"),
		ChartFile:  filepath.Join(dir, "expense_breakdown.png"),
	}
	var out strings.Builder
	return NewMenu(svc, cfg, strings.NewReader(input), &out), svc, &out
}

func TestMenu_AddIncomeAndExit(t *testing.T) {
	menu, svc, out := newTestMenu(t, "1\n1000\nSalary\nMarch pay\n6\n")

	if err := menu.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out.String(), "Transaction added successfully!") {
		t.Fatalf("missing success message in output:\n%s", out.String())
	}

	report, err := svc.MonthlyReport(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(report) != 1 || report[0].Income.Cents != 100000 {
		t.Fatalf("unexpected report after add: %+v", report)
	}
}

func TestMenu_InvalidChoiceReprompts(t *testing.T) {
	menu, _, out := newTestMenu(t, "9\nbanana\n6\n")

	if err := menu.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := strings.Count(out.String(), "Invalid choice. Please try again."); got != 2 {
		t.Fatalf("expected 2 invalid-choice messages, got %d:\n%s", got, out.String())
	}
}

func TestMenu_InvalidAmountReprompts(t *testing.T) {
	// "abc" and "-5" must both re-prompt, then "50.00" is accepted
	menu, svc, out := newTestMenu(t, "2\nabc\n-5\n50.00\nFood\nGroceries\n6\n")

	if err := menu.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := strings.Count(out.String(), "Invalid amount."); got != 2 {
		t.Fatalf("expected 2 invalid-amount messages, got %d:\n%s", got, out.String())
	}

	categories, err := svc.ExpensesByCategory(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(categories) != 1 || categories[0].Amount.Cents != 5000 {
		t.Fatalf("unexpected categories: %+v", categories)
	}
}

func TestMenu_MonthlyReportTable(t *testing.T) {
	ctx := context.Background()
	menu, svc, out := newTestMenu(t, "3\n6\n")

	if err := svc.AddTransaction(ctx, core.Money{Cents: 10000}, "Salary", "", core.Income); err != nil {
		t.Fatal(err)
	}
	if err := svc.AddTransaction(ctx, core.Money{Cents: 4000}, "Food", "", core.Expense); err != nil {
		t.Fatal(err)
	}

	if err := menu.Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}

	got := out.String()
	for _, want := range []string{core.Today().MonthKey(), "100.00", "40.00", "60.00"} {
		if !strings.Contains(got, want) {
			t.Fatalf("report output missing %q:\n%s", want, got)
		}
	}
}

func TestMenu_VisualizeWithNoExpenses(t *testing.T) {
	menu, _, out := newTestMenu(t, "4\n6\n")

	if err := menu.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out.String(), "No expenses to visualize yet.") {
		t.Fatalf("missing no-expenses message:\n%s", out.String())
	}
}

func TestMenu_ExportTransactions(t *testing.T) {
	menu, _, out := newTestMenu(t, "5\n6\n")

	if err := menu.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out.String(), "Transactions exported to") {
		t.Fatalf("missing export message:\n%s", out.String())
	}
}

func TestMenu_EOFExitsCleanly(t *testing.T) {
	menu, _, _ := newTestMenu(t, "")
	if err := menu.Run(context.Background()); err != nil {
		t.Fatalf("Run on EOF: %v", err)
	}
}
