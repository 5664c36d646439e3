package ingest

import (
	"errors"
	"strings"
)

// ErrColumnsNotDetected means the CSV header could not be mapped to the
// required date/description/amount columns.
var ErrColumnsNotDetected = errors.New("could not detect date, description and amount columns")

type column int

const (
	columnDate column = iota
	columnDescription
	columnAmount
	columnType
)

var columnKeywords = []struct {
	col      column
	keywords []string
}{
	{columnDate, []string{"date", "transaction_date", "posted_date", "value_date", "tran_date", "trans_date"}},
	{columnDescription, []string{"description", "memo", "details", "narration", "particulars", "transaction_details", "remarks", "note"}},
	{columnAmount, []string{"amount", "value", "sum", "total", "transaction_amount", "debit", "credit", "balance"}},
	{columnType, []string{"type", "debit_credit", "dr_cr", "transaction_type", "cr_dr", "d_c"}},
}

// detectColumns maps header indices to transaction fields by keyword
// matching. Date, description and amount are required; the type column is
// optional. Keywords are tried in order and the first matching header
// wins, so "transaction_date" is claimed by the date column before the
// amount scan ever sees it.
func detectColumns(header []string) (map[column]int, error) {
	lower := make([]string, len(header))
	for i, h := range header {
		lower[i] = strings.ToLower(strings.TrimSpace(h))
	}

	mapping := make(map[column]int)
	claimed := make(map[int]bool)

	for _, entry := range columnKeywords {
	search:
		for _, keyword := range entry.keywords {
			for i, h := range lower {
				if claimed[i] {
					continue
				}
				if strings.Contains(h, keyword) {
					mapping[entry.col] = i
					claimed[i] = true
					break search
				}
			}
		}
	}

	for _, required := range []column{columnDate, columnDescription, columnAmount} {
		if _, ok := mapping[required]; !ok {
			return nil, ErrColumnsNotDetected
		}
	}
	return mapping, nil
}
