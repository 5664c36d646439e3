package ingest

import (
	"encoding/csv"
	"fmt"
	"io"

	"finsight/internal/models"
)

// WriteCSV exports categorized transactions as CSV. This is the explicit
// persistence side of batch categorization; the analysis pipeline never
// reads it back.
func WriteCSV(w io.Writer, transactions []models.Transaction) error {
	writer := csv.NewWriter(w)

	if err := writer.Write([]string{"date", "description", "amount", "type", "category"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, tx := range transactions {
		record := []string{
			tx.Date.Format("2006-01-02"),
			tx.Description,
			tx.Amount.String(),
			string(tx.Type),
			string(tx.Category),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
