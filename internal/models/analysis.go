package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type SpendingTrend string

const (
	TrendIncreasing       SpendingTrend = "increasing"
	TrendDecreasing       SpendingTrend = "decreasing"
	TrendStable           SpendingTrend = "stable"
	TrendInsufficientData SpendingTrend = "insufficient_data"
)

type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// SourceCount is a transaction description with its occurrence count.
type SourceCount struct {
	Description string `json:"description"`
	Count       int    `json:"count"`
}

// CategoryAmount is an amount aggregated under one category. Slices of
// CategoryAmount keep their order; the breakdown is sorted descending by
// amount and "top N" truncation depends on that.
type CategoryAmount struct {
	Category Category        `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// MonthAmount is an amount aggregated under one calendar month.
type MonthAmount struct {
	Month  Month           `json:"month"`
	Amount decimal.Decimal `json:"amount"`
}

// AnalysisRecord is the full derived view over a user's categorized
// transactions. It is recomputed from scratch on every analysis run and
// replaced wholesale on the profile, never merged.
type AnalysisRecord struct {
	TotalTransactions     int              `json:"total_transactions"`
	DateRange             DateRange        `json:"date_range"`
	TotalIncome           decimal.Decimal  `json:"total_income"`
	MonthlyIncomeAvg      decimal.Decimal  `json:"monthly_income_avg"`
	IncomeSources         []SourceCount    `json:"income_sources"`
	TotalExpenses         decimal.Decimal  `json:"total_expenses"`
	MonthlyExpensesAvg    decimal.Decimal  `json:"monthly_expenses_avg"`
	ExpenseBreakdown      []CategoryAmount `json:"expense_breakdown"`
	TopSpendingCategories []CategoryAmount `json:"top_spending_categories"`
	SpendingTrend         SpendingTrend    `json:"spending_trend"`
	HighestSpendingMonth  *Month           `json:"highest_spending_month"`
	LowestSpendingMonth   *Month           `json:"lowest_spending_month"`
	MonthlySpending       []MonthAmount    `json:"monthly_spending"`
	FinancialHealthScore  int              `json:"financial_health_score"`
}

// BreakdownAmount returns the breakdown amount for a category and whether
// the category is present at all.
func (r *AnalysisRecord) BreakdownAmount(c Category) (decimal.Decimal, bool) {
	for _, ca := range r.ExpenseBreakdown {
		if ca.Category == c {
			return ca.Amount, true
		}
	}
	return decimal.Zero, false
}

// TopCategoryAmount is BreakdownAmount restricted to the top-5 slice.
func (r *AnalysisRecord) TopCategoryAmount(c Category) (decimal.Decimal, bool) {
	for _, ca := range r.TopSpendingCategories {
		if ca.Category == c {
			return ca.Amount, true
		}
	}
	return decimal.Zero, false
}
