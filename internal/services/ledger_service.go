// Package services orchestrates ledger operations over a record store.
package services

import (
	"context"
	"fmt"
	"strings"

	"fintrack/internal/backend"
	"fintrack/internal/core"
	"fintrack/internal/export"
	"fintrack/internal/log"
)

// LedgerService is the single entry point for the menu surface: it owns
// the record store and derives reports and export artifacts from it.
type LedgerService struct {
	store  backend.Store
	logger *log.Logger
}

func NewLedgerService(store backend.Store, logger *log.Logger) *LedgerService {
	if logger == nil {
		logger = log.New(log.DefaultConfig())
	}
	return &LedgerService{
		store:  store,
		logger: logger.WithComponent(log.ComponentLedger),
	}
}

// AddTransaction records a new entry dated today and persists it
// immediately. Validation failures leave the collection unmodified.
func (s *LedgerService) AddTransaction(ctx context.Context, amount core.Money, category, description string, typ core.Type) error {
	tx := core.Transaction{
		Date:        core.Today(),
		Amount:      amount,
		Category:    strings.TrimSpace(category),
		Description: strings.TrimSpace(description),
		Type:        typ,
	}

	if err := s.store.Append(ctx, tx); err != nil {
		return fmt.Errorf("add transaction: %w", err)
	}

	s.logger.Info("Transaction added",
		log.FieldOperation, log.OpAppend,
		log.FieldType, typ.String(),
		log.FieldCategory, tx.Category,
		log.FieldAmountCents, amount.Cents)
	return nil
}

// MonthlyReport returns income/expense totals per month, oldest first.
func (s *LedgerService) MonthlyReport(ctx context.Context) ([]core.MonthSummary, error) {
	txs, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return core.SummarizeByMonth(txs), nil
}

// ExpensesByCategory returns the expense total per category.
func (s *LedgerService) ExpensesByCategory(ctx context.Context) ([]core.CategoryAmount, error) {
	txs, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return core.ExpensesByCategory(txs), nil
}

// ExportCSV writes the full record collection to a CSV file at path.
func (s *LedgerService) ExportCSV(ctx context.Context, path string) error {
	txs, err := s.store.List(ctx)
	if err != nil {
		return fmt.Errorf("list transactions: %w", err)
	}
	if err := export.ToCSVFile(path, txs); err != nil {
		return fmt.Errorf("export csv: %w", err)
	}

	s.logger.Info("Transactions exported",
		log.FieldOperation, log.OpExport,
		log.FieldPath, path,
		log.FieldCount, len(txs))
	return nil
}

// VisualizeExpenses renders the expense-by-category pie chart to path.
// Returns export.ErrNoExpenses when the ledger holds no expense records.
func (s *LedgerService) VisualizeExpenses(ctx context.Context, path string) error {
	categories, err := s.ExpensesByCategory(ctx)
	if err != nil {
		return err
	}
	if err := export.ToChartFile(path, categories); err != nil {
		return err
	}

	s.logger.Info("Expense breakdown rendered",
		log.FieldOperation, log.OpRender,
		log.FieldPath, path,
		log.FieldCount, len(categories))
	return nil
}

// Close releases the underlying store.
func (s *LedgerService) Close() error {
	if s.store == nil {
		return nil
	}
	if err := s.store.Close(); err != nil {
		return fmt.Errorf("close ledger store: %w", err)
	}
	return nil
}
