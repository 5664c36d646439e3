// Package ingest turns CSV exports and extracted statement text into
// clean transaction rows: columns auto-detected, malformed rows dropped,
// amounts stored non-negative with direction on the type, result sorted
// by date ascending. The categorization and analysis stages assume this
// cleaning already happened and do not re-validate.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"finsight/internal/models"

	"github.com/shopspring/decimal"
)

var dateLayouts = []string{
	"2/1/2006",
	"1/2/2006",
	"2006-01-02",
	"2-1-2006",
	"1-2-2006",
	"2 Jan 2006",
	"2 January 2006",
}

// Row is one raw transaction before it is attached to a statement.
type Row struct {
	Date        time.Time
	Description string
	Amount      decimal.Decimal
	Type        models.TransactionType
}

// ParseCSV reads a transaction CSV with auto-detected columns. Rows with
// unparseable dates, empty descriptions or zero/invalid amounts are
// dropped silently, matching the cleaning contract. Negative amounts are
// stored absolute and flip the row to Credit when no explicit type column
// says otherwise.
func ParseCSV(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	mapping, err := detectColumns(header)
	if err != nil {
		return nil, err
	}

	var rows []Row
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row: %w", err)
		}

		field := func(c column) string {
			i, ok := mapping[c]
			if !ok || i >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[i])
		}

		date, err := parseDate(field(columnDate))
		if err != nil {
			continue
		}
		description := field(columnDescription)
		if description == "" {
			continue
		}
		amount, err := parseAmount(field(columnAmount))
		if err != nil || amount.IsZero() {
			continue
		}

		txType := parseType(field(columnType))
		if amount.IsNegative() {
			amount = amount.Abs()
			if field(columnType) == "" {
				txType = models.TypeCredit
			}
		}

		rows = append(rows, Row{
			Date:        date,
			Description: description,
			Amount:      amount,
			Type:        txType,
		})
	}

	sortByDate(rows)
	return rows, nil
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

var amountReplacer = strings.NewReplacer(",", "", "₹", "", "$", "", " ", "")

func parseAmount(s string) (decimal.Decimal, error) {
	s = amountReplacer.Replace(s)
	if s == "" {
		return decimal.Zero, fmt.Errorf("empty amount")
	}
	return decimal.NewFromString(s)
}

// parseType standardizes a raw type value; anything unrecognized,
// including an absent column, defaults to Debit.
func parseType(s string) models.TransactionType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cr", "credit", "c", "cred":
		return models.TypeCredit
	default:
		return models.TypeDebit
	}
}

func sortByDate(rows []Row) {
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Date.Before(rows[j].Date) })
}
