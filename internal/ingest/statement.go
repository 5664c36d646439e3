package ingest

import (
	"regexp"
	"strings"

	"finsight/internal/models"
)

// Line patterns found in extracted bank statement text. The PDF binary
// itself is handled by an external extractor; this parser only sees the
// plain text it produced.
var (
	// date description amount
	lineDateFirst = regexp.MustCompile(`(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})\s+(.+?)\s+([+-]?\d+(?:\.\d+)?)\s*$`)
	// amount date description
	lineAmountFirst = regexp.MustCompile(`^([+-]?\d+(?:\.\d+)?)\s+(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})\s+(.+)`)
)

// ParseStatementText scans extracted statement text line by line and
// returns the transaction rows it can recognize. Unrecognized lines
// (headers, footers, balances) are skipped. Negative amounts mean money
// in: the row becomes a Credit and the amount is stored absolute.
func ParseStatementText(text string) []Row {
	var rows []Row
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if row, ok := parseStatementLine(line); ok {
			rows = append(rows, row)
		}
	}
	sortByDate(rows)
	return rows
}

func parseStatementLine(line string) (Row, bool) {
	var dateStr, description, amountStr string

	if m := lineDateFirst.FindStringSubmatch(line); m != nil {
		dateStr, description, amountStr = m[1], m[2], m[3]
	} else if m := lineAmountFirst.FindStringSubmatch(line); m != nil {
		amountStr, dateStr, description = m[1], m[2], m[3]
	} else {
		return Row{}, false
	}

	date, err := parseDate(dateStr)
	if err != nil {
		return Row{}, false
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return Row{}, false
	}
	amount, err := parseAmount(amountStr)
	if err != nil || amount.IsZero() {
		return Row{}, false
	}

	txType := models.TypeDebit
	if amount.IsNegative() {
		txType = models.TypeCredit
		amount = amount.Abs()
	}

	return Row{
		Date:        date,
		Description: description,
		Amount:      amount,
		Type:        txType,
	}, true
}
