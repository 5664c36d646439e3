package analysis

import (
	"sort"

	"finsight/internal/models"

	"github.com/shopspring/decimal"
)

const maxTopCategories = 5

// ExpenseSummary aggregates every non-Income row of a table.
type ExpenseSummary struct {
	TotalExpenses         decimal.Decimal
	MonthlyExpensesAvg    decimal.Decimal
	ExpenseBreakdown      []models.CategoryAmount
	TopSpendingCategories []models.CategoryAmount
}

// AnalyzeExpenses computes expense totals, the per-populated-month
// average, the per-category breakdown sorted descending by amount, and
// the top five categories of that breakdown. Categories are grouped in
// first-encountered row order and the descending sort is stable, so equal
// amounts keep that order deterministically.
func AnalyzeExpenses(table []models.Transaction) ExpenseSummary {
	var rows []models.Transaction
	for _, tx := range table {
		if tx.Category != models.CategoryIncome {
			rows = append(rows, tx)
		}
	}

	summary := ExpenseSummary{
		TotalExpenses:      decimal.Zero,
		MonthlyExpensesAvg: decimal.Zero,
	}
	if len(rows) == 0 {
		return summary
	}

	for _, tx := range rows {
		summary.TotalExpenses = summary.TotalExpenses.Add(tx.Amount)
	}
	summary.MonthlyExpensesAvg = monthlyAverage(monthlyTotals(rows))

	totals := make(map[models.Category]decimal.Decimal)
	var order []models.Category
	for _, tx := range rows {
		if _, ok := totals[tx.Category]; !ok {
			order = append(order, tx.Category)
		}
		totals[tx.Category] = totals[tx.Category].Add(tx.Amount)
	}

	breakdown := make([]models.CategoryAmount, 0, len(order))
	for _, c := range order {
		breakdown = append(breakdown, models.CategoryAmount{Category: c, Amount: totals[c]})
	}
	sort.SliceStable(breakdown, func(i, j int) bool {
		return breakdown[i].Amount.GreaterThan(breakdown[j].Amount)
	})
	summary.ExpenseBreakdown = breakdown

	top := breakdown
	if len(top) > maxTopCategories {
		top = top[:maxTopCategories]
	}
	summary.TopSpendingCategories = top

	return summary
}
