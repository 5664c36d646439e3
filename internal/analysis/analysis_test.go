package analysis

import (
	"testing"
	"time"

	"finsight/internal/models"

	"github.com/shopspring/decimal"
)

func tx(date string, desc string, amount float64, category models.Category) models.Transaction {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	txType := models.TypeDebit
	if category == models.CategoryIncome {
		txType = models.TypeCredit
	}
	return models.Transaction{
		Date:        d,
		Description: desc,
		Amount:      decimal.NewFromFloat(amount),
		Type:        txType,
		Category:    category,
	}
}

func TestAnalyzeEmptyTable(t *testing.T) {
	income := AnalyzeIncome(nil)
	if !income.TotalIncome.IsZero() || !income.MonthlyIncomeAvg.IsZero() || len(income.IncomeSources) != 0 {
		t.Fatalf("income zero shape violated: %+v", income)
	}

	expenses := AnalyzeExpenses(nil)
	if !expenses.TotalExpenses.IsZero() || !expenses.MonthlyExpensesAvg.IsZero() ||
		len(expenses.ExpenseBreakdown) != 0 || len(expenses.TopSpendingCategories) != 0 {
		t.Fatalf("expense zero shape violated: %+v", expenses)
	}

	trend := AnalyzeTrend(nil)
	if trend.SpendingTrend != models.TrendStable {
		t.Fatalf("trend = %q, want %q", trend.SpendingTrend, models.TrendStable)
	}
	if trend.HighestSpendingMonth != nil || trend.LowestSpendingMonth != nil {
		t.Fatalf("expected nil high/low months on empty table")
	}

	record := Analyze(nil, decimal.Zero)
	if record.TotalTransactions != 0 {
		t.Fatalf("TotalTransactions = %d, want 0", record.TotalTransactions)
	}
	if record.FinancialHealthScore != 50 {
		t.Fatalf("score = %d, want 50", record.FinancialHealthScore)
	}
}

// The average runs over populated months only: income in January and
// March with nothing in February averages over two months, not three.
func TestMonthlyIncomeAverageSkipsEmptyMonths(t *testing.T) {
	table := []models.Transaction{
		tx("2025-01-10", "SALARY CREDIT", 1000, models.CategoryIncome),
		tx("2025-03-10", "SALARY CREDIT", 3000, models.CategoryIncome),
	}
	got := AnalyzeIncome(table)
	if want := decimal.NewFromInt(2000); !got.MonthlyIncomeAvg.Equal(want) {
		t.Fatalf("MonthlyIncomeAvg = %s, want %s", got.MonthlyIncomeAvg, want)
	}
	if want := decimal.NewFromInt(4000); !got.TotalIncome.Equal(want) {
		t.Fatalf("TotalIncome = %s, want %s", got.TotalIncome, want)
	}
}

func TestIncomeSources(t *testing.T) {
	table := []models.Transaction{
		tx("2025-01-01", "SALARY CREDIT", 50000, models.CategoryIncome),
		tx("2025-01-15", "FREELANCE INCOME", 8000, models.CategoryIncome),
		tx("2025-02-01", "SALARY CREDIT", 50000, models.CategoryIncome),
		tx("2025-02-20", "DIVIDEND PAYMENT", 1200, models.CategoryIncome),
		tx("2025-03-01", "SALARY CREDIT", 50000, models.CategoryIncome),
		tx("2025-03-05", "FREELANCE INCOME", 6000, models.CategoryIncome),
		tx("2025-03-08", "CASHBACK REWARD", 150, models.CategoryIncome),
		tx("2025-03-12", "INTEREST EARNED", 90, models.CategoryIncome),
		tx("2025-03-18", "REFUND CREDIT", 400, models.CategoryIncome),
	}
	got := AnalyzeIncome(table)
	if len(got.IncomeSources) != 5 {
		t.Fatalf("len(IncomeSources) = %d, want 5", len(got.IncomeSources))
	}
	if got.IncomeSources[0].Description != "SALARY CREDIT" || got.IncomeSources[0].Count != 3 {
		t.Fatalf("top source = %+v, want SALARY CREDIT x3", got.IncomeSources[0])
	}
	if got.IncomeSources[1].Description != "FREELANCE INCOME" || got.IncomeSources[1].Count != 2 {
		t.Fatalf("second source = %+v, want FREELANCE INCOME x2", got.IncomeSources[1])
	}
	// The single-occurrence tail keeps first-encountered order.
	if got.IncomeSources[2].Description != "DIVIDEND PAYMENT" {
		t.Fatalf("third source = %+v, want DIVIDEND PAYMENT", got.IncomeSources[2])
	}
}

func TestExpenseBreakdownOrderAndTruncation(t *testing.T) {
	table := []models.Transaction{
		tx("2025-01-01", "a", 100, models.CategoryFoodDining),
		tx("2025-01-02", "b", 800, models.CategoryTransportation),
		tx("2025-01-03", "c", 300, models.CategoryShopping),
		tx("2025-01-04", "d", 900, models.CategoryBillsUtilities),
		tx("2025-01-05", "e", 200, models.CategoryEntertainment),
		tx("2025-01-06", "f", 50, models.CategoryHealthcare),
		tx("2025-01-07", "g", 400, models.CategoryEducation),
		tx("2025-01-08", "h", 700, models.CategoryTravel),
	}
	got := AnalyzeExpenses(table)
	if len(got.ExpenseBreakdown) != 8 {
		t.Fatalf("len(ExpenseBreakdown) = %d, want 8", len(got.ExpenseBreakdown))
	}
	if len(got.TopSpendingCategories) != 5 {
		t.Fatalf("len(TopSpendingCategories) = %d, want 5", len(got.TopSpendingCategories))
	}
	for i := 1; i < len(got.ExpenseBreakdown); i++ {
		if got.ExpenseBreakdown[i].Amount.GreaterThan(got.ExpenseBreakdown[i-1].Amount) {
			t.Fatalf("breakdown not descending at %d: %+v", i, got.ExpenseBreakdown)
		}
	}
	if got.TopSpendingCategories[0].Category != models.CategoryBillsUtilities {
		t.Fatalf("top category = %q, want %q", got.TopSpendingCategories[0].Category, models.CategoryBillsUtilities)
	}
}

// Equal amounts keep first-encountered category order through the stable
// descending sort.
func TestExpenseBreakdownStableTies(t *testing.T) {
	table := []models.Transaction{
		tx("2025-01-01", "a", 500, models.CategoryTravel),
		tx("2025-01-02", "b", 500, models.CategoryFoodDining),
		tx("2025-01-03", "c", 500, models.CategoryShopping),
	}
	got := AnalyzeExpenses(table)
	want := []models.Category{models.CategoryTravel, models.CategoryFoodDining, models.CategoryShopping}
	for i, ca := range got.ExpenseBreakdown {
		if ca.Category != want[i] {
			t.Fatalf("breakdown[%d] = %q, want %q", i, ca.Category, want[i])
		}
	}
}

func TestAnalyzeTrendClassification(t *testing.T) {
	cases := []struct {
		name    string
		amounts []float64 // one per consecutive month
		want    models.SpendingTrend
	}{
		{"increasing", []float64{100, 200, 300}, models.TrendIncreasing},
		{"decreasing", []float64{300, 200, 100}, models.TrendDecreasing},
		{"stable", []float64{200, 200, 200}, models.TrendStable},
		{"single month", []float64{500}, models.TrendInsufficientData},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var table []models.Transaction
			for i, amount := range tc.amounts {
				date := time.Date(2025, time.Month(i+1), 15, 0, 0, 0, 0, time.UTC)
				table = append(table, models.Transaction{
					Date:        date,
					Description: "x",
					Amount:      decimal.NewFromFloat(amount),
					Type:        models.TypeDebit,
					Category:    models.CategoryOther,
				})
			}
			got := AnalyzeTrend(table)
			if got.SpendingTrend != tc.want {
				t.Fatalf("trend = %q, want %q", got.SpendingTrend, tc.want)
			}
		})
	}
}

func TestAnalyzeTrendHighLowMonths(t *testing.T) {
	table := []models.Transaction{
		tx("2025-01-05", "a", 300, models.CategoryOther),
		tx("2025-02-05", "b", 900, models.CategoryOther),
		tx("2025-03-05", "c", 100, models.CategoryOther),
		// Income rows never count toward spending.
		tx("2025-02-10", "SALARY CREDIT", 50000, models.CategoryIncome),
	}
	got := AnalyzeTrend(table)
	if got.HighestSpendingMonth == nil || got.HighestSpendingMonth.String() != "2025-02" {
		t.Fatalf("highest = %v, want 2025-02", got.HighestSpendingMonth)
	}
	if got.LowestSpendingMonth == nil || got.LowestSpendingMonth.String() != "2025-03" {
		t.Fatalf("lowest = %v, want 2025-03", got.LowestSpendingMonth)
	}
	if len(got.MonthlySpending) != 3 {
		t.Fatalf("len(MonthlySpending) = %d, want 3", len(got.MonthlySpending))
	}
}

func TestAnalyzeTrendTieFirstOccurrenceWins(t *testing.T) {
	table := []models.Transaction{
		tx("2025-01-05", "a", 500, models.CategoryOther),
		tx("2025-02-05", "b", 500, models.CategoryOther),
	}
	got := AnalyzeTrend(table)
	if got.HighestSpendingMonth.String() != "2025-01" {
		t.Fatalf("highest = %s, want 2025-01", got.HighestSpendingMonth)
	}
	if got.LowestSpendingMonth.String() != "2025-01" {
		t.Fatalf("lowest = %s, want 2025-01", got.LowestSpendingMonth)
	}
}
