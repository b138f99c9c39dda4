package storage

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"fintrack/internal/core"
)

func TestSQLiteRepository_RoundTrip(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "fintrack.db")
	ctx := context.Background()

	repo, err := NewSQLiteRepository(dbPath)
	if err != nil {
		t.Fatalf("NewSQLiteRepository: %v", err)
	}
	defer repo.Close()

	want := []core.Transaction{
		testTx(100000, "Salary", core.Income),
		testTx(4000, "Food", core.Expense),
	}
	for _, tx := range want {
		if err := repo.Append(ctx, tx); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	got, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("round trip mismatch:\ngot  %+v\nwant %+v", got, want)
	}
}

func TestSQLiteRepository_AppendRejectsInvalid(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "fintrack.db")
	ctx := context.Background()

	repo, err := NewSQLiteRepository(dbPath)
	if err != nil {
		t.Fatalf("NewSQLiteRepository: %v", err)
	}
	defer repo.Close()

	if err := repo.Append(ctx, testTx(-100, "Food", core.Expense)); !errors.Is(err, core.ErrInvalidAmount) {
		t.Fatalf("Append = %v, want ErrInvalidAmount", err)
	}

	txs, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(txs) != 0 {
		t.Fatalf("rejected add must leave the table empty, got %d rows", len(txs))
	}
}
