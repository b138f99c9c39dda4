package export

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"fintrack/internal/core"
)

func TestRenderExpensePie(t *testing.T) {
	categories := []core.CategoryAmount{
		{Name: "Food", Amount: core.Money{Cents: 8000}},
		{Name: "Transport", Amount: core.Money{Cents: 2000}},
	}

	var buf bytes.Buffer
	if err := RenderExpensePie(&buf, categories); err != nil {
		t.Fatalf("RenderExpensePie: %v", err)
	}

	// PNG signature
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Fatal("output is not a PNG")
	}
}

func TestRenderExpensePieNoExpenses(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderExpensePie(&buf, nil); !errors.Is(err, ErrNoExpenses) {
		t.Fatalf("expected ErrNoExpenses, got %v", err)
	}
	if buf.Len() != 0 {
		t.Fatal("nothing may be written when there are no expenses")
	}
}

func TestToChartFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "expense_breakdown.png")
	categories := []core.CategoryAmount{
		{Name: "Food", Amount: core.Money{Cents: 8000}},
	}

	if err := ToChartFile(path, categories); err != nil {
		t.Fatalf("ToChartFile: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("chart file missing: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("chart file is empty")
	}
}

func TestToChartFileNoExpensesWritesNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "expense_breakdown.png")
	if err := ToChartFile(path, nil); !errors.Is(err, ErrNoExpenses) {
		t.Fatalf("expected ErrNoExpenses, got %v", err)
	}
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("no chart file may be created, stat err = %v", err)
	}
}
