package ingest

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"finsight/internal/models"

	"github.com/shopspring/decimal"
)

func TestDetectColumns(t *testing.T) {
	cases := []struct {
		name   string
		header []string
		ok     bool
	}{
		{"standard", []string{"Date", "Description", "Amount", "Type"}, true},
		{"bank style", []string{"Tran_Date", "Narration", "Transaction_Amount", "Dr_Cr"}, true},
		{"no type column", []string{"Posted_Date", "Particulars", "Value"}, true},
		{"missing amount", []string{"Date", "Description"}, false},
		{"unrelated", []string{"foo", "bar", "baz"}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := detectColumns(tc.header)
			if tc.ok && err != nil {
				t.Fatalf("expected ok, got %v", err)
			}
			if !tc.ok && err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestParseCSV(t *testing.T) {
	input := strings.Join([]string{
		"Date,Description,Amount,Type",
		"15/01/2025,SWIGGY FOOD DELIVERY,250.50,Debit",
		"05/01/2025,SALARY CREDIT,\"50,000.00\",Cr",
		"20/01/2025,,100,Debit",          // empty description: dropped
		"not-a-date,UBER RIDE,120,Debit", // bad date: dropped
		"21/01/2025,REFUND,0,Credit",     // zero amount: dropped
		"22/01/2025,PETROL PUMP,₹800,",   // blank type defaults to Debit
	}, "\n")

	rows, err := ParseCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseCSV: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("len(rows) = %d, want 3", len(rows))
	}

	// Sorted by date ascending.
	if rows[0].Description != "SALARY CREDIT" || rows[0].Type != models.TypeCredit {
		t.Fatalf("rows[0] = %+v", rows[0])
	}
	if want := decimal.NewFromInt(50000); !rows[0].Amount.Equal(want) {
		t.Fatalf("rows[0].Amount = %s, want %s", rows[0].Amount, want)
	}
	if rows[1].Description != "SWIGGY FOOD DELIVERY" {
		t.Fatalf("rows[1] = %+v", rows[1])
	}
	if rows[2].Description != "PETROL PUMP" || rows[2].Type != models.TypeDebit {
		t.Fatalf("rows[2] = %+v", rows[2])
	}
	if want := decimal.NewFromInt(800); !rows[2].Amount.Equal(want) {
		t.Fatalf("rows[2].Amount = %s, want %s", rows[2].Amount, want)
	}
}

func TestParseCSVNegativeAmountBecomesCredit(t *testing.T) {
	input := "Date,Description,Amount\n10/02/2025,INTEREST EARNED,-45.30\n"
	rows, err := ParseCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseCSV: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("len(rows) = %d, want 1", len(rows))
	}
	if rows[0].Type != models.TypeCredit {
		t.Fatalf("type = %q, want Credit", rows[0].Type)
	}
	if rows[0].Amount.IsNegative() {
		t.Fatalf("amount must be stored non-negative, got %s", rows[0].Amount)
	}
}

func TestParseCSVUndetectableHeader(t *testing.T) {
	_, err := ParseCSV(strings.NewReader("a,b,c\n1,2,3\n"))
	if err != ErrColumnsNotDetected {
		t.Fatalf("err = %v, want ErrColumnsNotDetected", err)
	}
}

func TestParseStatementText(t *testing.T) {
	text := strings.Join([]string{
		"ACME BANK STATEMENT",
		"Account: XXXX1234",
		"15/01/2025 SWIGGY FOOD DELIVERY 250.50",
		"17/01/2025 SALARY CREDIT -50000",
		"750.00 18/01/2025 ELECTRICITY BILL",
		"Closing balance 1234.56 as of 31/01/2025 see overleaf -",
		"",
	}, "\n")

	rows := ParseStatementText(text)
	if len(rows) != 3 {
		t.Fatalf("len(rows) = %d, want 3: %+v", len(rows), rows)
	}
	if rows[0].Description != "SWIGGY FOOD DELIVERY" || rows[0].Type != models.TypeDebit {
		t.Fatalf("rows[0] = %+v", rows[0])
	}
	if rows[1].Description != "SALARY CREDIT" || rows[1].Type != models.TypeCredit {
		t.Fatalf("rows[1] = %+v", rows[1])
	}
	if rows[2].Description != "ELECTRICITY BILL" {
		t.Fatalf("rows[2] = %+v", rows[2])
	}
	if want := decimal.NewFromInt(750); !rows[2].Amount.Equal(want) {
		t.Fatalf("rows[2].Amount = %s, want %s", rows[2].Amount, want)
	}
}

func TestWriteCSV(t *testing.T) {
	date := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	transactions := []models.Transaction{
		{
			Date:        date,
			Description: "ZOMATO ORDER",
			Amount:      decimal.NewFromFloat(320.50),
			Type:        models.TypeDebit,
			Category:    models.CategoryFoodDining,
		},
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, transactions); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("len(lines) = %d, want 2", len(lines))
	}
	if lines[0] != "date,description,amount,type,category" {
		t.Fatalf("header = %q", lines[0])
	}
	if lines[1] != "2025-01-15,ZOMATO ORDER,320.5,Debit,Food & Dining" {
		t.Fatalf("row = %q", lines[1])
	}
}
