package analysis

import (
	"testing"

	"finsight/internal/models"

	"github.com/shopspring/decimal"
)

func record(income, expenses float64, trend models.SpendingTrend) *models.AnalysisRecord {
	return &models.AnalysisRecord{
		MonthlyIncomeAvg:   decimal.NewFromFloat(income),
		MonthlyExpensesAvg: decimal.NewFromFloat(expenses),
		SpendingTrend:      trend,
	}
}

func TestHealthScoreRatioBrackets(t *testing.T) {
	cases := []struct {
		name     string
		income   float64
		expenses float64
		trend    models.SpendingTrend
		target   float64
		want     int
	}{
		// Ratio exactly 0.20 is not "> 0.20" and lands in the +10 bracket.
		{"boundary ratio", 50000, 40000, models.TrendStable, 0, 60},
		{"strong savings", 50000, 35000, models.TrendStable, 0, 70},
		{"thin savings", 50000, 49000, models.TrendStable, 0, 55},
		{"overspending", 50000, 55000, models.TrendStable, 0, 30},
		{"zero income skips ratio", 0, 2000, models.TrendStable, 5000, 50},
		{"zero income trend still applies", 0, 2000, models.TrendIncreasing, 0, 40},
		{"trend bonus", 50000, 40000, models.TrendDecreasing, 0, 70},
		{"trend penalty", 50000, 40000, models.TrendIncreasing, 0, 50},
		{"insufficient data is neutral", 50000, 40000, models.TrendInsufficientData, 0, 60},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := HealthScore(record(tc.income, tc.expenses, tc.trend), decimal.NewFromFloat(tc.target))
			if got != tc.want {
				t.Fatalf("score = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestHealthScoreSavingsTarget(t *testing.T) {
	// income 50000, expenses 35000 -> savings 15000, ratio 0.3 -> +20.
	cases := []struct {
		name   string
		target float64
		want   int
	}{
		{"target met", 15000, 85},      // 50+20+15
		{"within 80 percent", 18000, 80}, // 15000 >= 14400 -> +10
		{"within half", 25000, 75},     // 15000 >= 12500 -> +5
		{"far off", 40000, 70},         // no target bonus
		{"no target", 0, 70},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := HealthScore(record(50000, 35000, models.TrendStable), decimal.NewFromFloat(tc.target))
			if got != tc.want {
				t.Fatalf("score = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestHealthScoreClamped(t *testing.T) {
	// Max path: +20 ratio, +15 target, +10 trend = 95; still within bounds,
	// so also probe the low end where the clamp actually engages.
	high := HealthScore(record(50000, 10000, models.TrendDecreasing), decimal.NewFromInt(1000))
	if high < 0 || high > 100 {
		t.Fatalf("score %d out of bounds", high)
	}
	low := HealthScore(record(1000, 50000, models.TrendIncreasing), decimal.NewFromInt(100000))
	if low < 0 || low > 100 {
		t.Fatalf("score %d out of bounds", low)
	}
	if low != 20 {
		// 50 - 20 - 10 = 20
		t.Fatalf("low score = %d, want 20", low)
	}
}

func TestAnalyzeEndToEnd(t *testing.T) {
	table := []models.Transaction{
		tx("2025-01-05", "SALARY CREDIT", 50000, models.CategoryIncome),
		tx("2025-01-12", "GROCERY STORE", 6000, models.CategoryFoodDining),
		tx("2025-01-20", "RENT PAYMENT", 30000, models.CategoryBillsUtilities),
		tx("2025-02-05", "SALARY CREDIT", 50000, models.CategoryIncome),
		tx("2025-02-10", "GROCERY STORE", 4000, models.CategoryFoodDining),
		tx("2025-02-18", "RENT PAYMENT", 30000, models.CategoryBillsUtilities),
	}
	got := Analyze(table, decimal.NewFromInt(10000))

	if got.TotalTransactions != 6 {
		t.Fatalf("TotalTransactions = %d, want 6", got.TotalTransactions)
	}
	if want := decimal.NewFromInt(50000); !got.MonthlyIncomeAvg.Equal(want) {
		t.Fatalf("MonthlyIncomeAvg = %s, want %s", got.MonthlyIncomeAvg, want)
	}
	if want := decimal.NewFromInt(35000); !got.MonthlyExpensesAvg.Equal(want) {
		t.Fatalf("MonthlyExpensesAvg = %s, want %s", got.MonthlyExpensesAvg, want)
	}
	if got.SpendingTrend != models.TrendDecreasing {
		t.Fatalf("trend = %q, want decreasing", got.SpendingTrend)
	}
	// ratio 0.3 -> +20, savings 15000 >= 10000 -> +15, decreasing -> +10.
	if got.FinancialHealthScore != 95 {
		t.Fatalf("score = %d, want 95", got.FinancialHealthScore)
	}
	if got.DateRange.Start.Format("2006-01-02") != "2025-01-05" ||
		got.DateRange.End.Format("2006-01-02") != "2025-02-18" {
		t.Fatalf("date range = %+v", got.DateRange)
	}
}
