package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"fintrack/internal/core"

	_ "modernc.org/sqlite"
)

// SQLiteRepository stores transactions in a local SQLite database. Rows
// come back in insertion (id) order, matching the append-only contract of
// the JSON store.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Append inserts a validated transaction.
func (r *SQLiteRepository) Append(ctx context.Context, tx core.Transaction) error {
	if err := tx.Validate(); err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO transactions (date, amount_cents, category, description, type)
		 VALUES (?, ?, ?, ?, ?)`,
		tx.Date.String(), tx.Amount.Cents, tx.Category, tx.Description, tx.Type.String())
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}

	id, _ := res.LastInsertId()
	slog.InfoContext(ctx, "Transaction saved to SQLite",
		"id", id,
		"date", tx.Date.String(),
		"amount_cents", tx.Amount.Cents,
		"category", tx.Category,
		"type", tx.Type.String())
	return nil
}

// List returns all transactions in insertion order.
func (r *SQLiteRepository) List(ctx context.Context) ([]core.Transaction, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT date, amount_cents, category, description, type
		 FROM transactions ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()

	var out []core.Transaction
	for rows.Next() {
		var (
			dateStr string
			cents   int64
			typ     string
			tx      core.Transaction
		)
		if err := rows.Scan(&dateStr, &cents, &tx.Category, &tx.Description, &typ); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		date, err := core.ParseDate(dateStr)
		if err != nil {
			return nil, fmt.Errorf("parse stored date %q: %w", dateStr, err)
		}
		tx.Date = date
		tx.Amount = core.Money{Cents: cents}
		tx.Type = core.Type(typ)
		out = append(out, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}
	return out, nil
}
