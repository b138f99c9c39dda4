// Package storage provides the durable record stores for the ledger: a
// JSON flat-file repository and a SQLite repository behind the same
// interface.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"fintrack/internal/core"
)

// ErrCorruptData marks a data file that exists but does not hold a valid
// list of transaction records.
var ErrCorruptData = errors.New("corrupt data file")

// JSONRepository keeps the full record collection in memory and rewrites
// the backing JSON file after every append. The in-memory slice is the
// single source of truth for the lifetime of the process.
type JSONRepository struct {
	path string

	mu    sync.Mutex
	items []core.Transaction
}

// NewJSONRepository loads the record collection from path. A missing file
// yields an empty collection; unparseable content yields an error wrapping
// ErrCorruptData.
func NewJSONRepository(path string) (*JSONRepository, error) {
	r := &JSONRepository{path: path}
	if err := r.load(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *JSONRepository) load() error {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read data file %s: %w", r.path, err)
	}

	var items []core.Transaction
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrCorruptData, r.path, err)
	}

	r.items = items
	return nil
}

// save serializes the whole collection and replaces the data file. The
// write goes to a temp file in the same directory first and is renamed
// over the target, so a crash mid-write never truncates the only copy.
func (r *JSONRepository) save() error {
	items := r.items
	if items == nil {
		items = []core.Transaction{}
	}

	data, err := json.MarshalIndent(items, "", "    ")
	if err != nil {
		return fmt.Errorf("marshal transactions: %w", err)
	}

	dir := filepath.Dir(r.path)
	tmp, err := os.CreateTemp(dir, ".fintrack-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace data file: %w", err)
	}
	return nil
}

// Append validates the record, adds it to the collection, and persists
// immediately. On a save failure the in-memory append has already
// happened; the mismatch is logged and the error returned.
func (r *JSONRepository) Append(ctx context.Context, tx core.Transaction) error {
	if err := tx.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = append(r.items, tx)
	if err := r.save(); err != nil {
		slog.WarnContext(ctx, "Data file out of sync with in-memory ledger",
			"path", r.path, "error", err)
		return fmt.Errorf("persist transaction: %w", err)
	}

	slog.InfoContext(ctx, "Transaction saved",
		"date", tx.Date.String(),
		"amount_cents", tx.Amount.Cents,
		"category", tx.Category,
		"type", tx.Type.String(),
		"count", len(r.items))
	return nil
}

// List returns a copy of the record collection in insertion order.
func (r *JSONRepository) List(ctx context.Context) ([]core.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]core.Transaction(nil), r.items...), nil
}

func (r *JSONRepository) Close() error {
	return nil
}
