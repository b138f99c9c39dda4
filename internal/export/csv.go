// Package export serializes the record collection into its two artifact
// formats: a CSV table of all transactions and a PNG pie chart of expense
// share by category.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"fintrack/internal/core"
)

// Header columns are the transaction field names in declaration order.
var csvHeader = []string{"date", "amount", "category", "description", "type"}

// WriteCSV writes one header row plus one row per record. An empty
// collection produces no output at all, not even a header.
func WriteCSV(w io.Writer, txs []core.Transaction) error {
	if len(txs) == 0 {
		return nil
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, tx := range txs {
		row := []string{
			tx.Date.String(),
			tx.Amount.String(),
			tx.Category,
			tx.Description,
			tx.Type.String(),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// ToCSVFile writes the collection to path, truncating any previous export.
func ToCSVFile(path string, txs []core.Transaction) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}

	if err := WriteCSV(f, txs); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close export file: %w", err)
	}
	return nil
}
