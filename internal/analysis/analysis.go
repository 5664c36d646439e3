// Package analysis turns a categorized transaction table into aggregate
// income/expense views, a monthly spending trend and a bounded financial
// health score. Every function is a pure read over the table; the full
// AnalysisRecord is recomputed from scratch on each run.
package analysis

import (
	"sort"

	"finsight/internal/models"

	"github.com/shopspring/decimal"
)

// monthlyTotals buckets amounts by calendar month. Only months that
// actually contain rows appear; the result is chronologically sorted.
func monthlyTotals(rows []models.Transaction) []models.MonthAmount {
	totals := make(map[models.Month]decimal.Decimal)
	var order []models.Month

	for _, tx := range rows {
		m := models.MonthOf(tx.Date)
		if _, ok := totals[m]; !ok {
			order = append(order, m)
		}
		totals[m] = totals[m].Add(tx.Amount)
	}

	sort.Slice(order, func(i, j int) bool { return order[i].Before(order[j]) })

	out := make([]models.MonthAmount, 0, len(order))
	for _, m := range order {
		out = append(out, models.MonthAmount{Month: m, Amount: totals[m]})
	}
	return out
}

// monthlyAverage is the mean over populated months only. A month without
// rows is absent from the buckets, not zero, so it never drags the
// average down. Empty input yields zero, never a division error.
func monthlyAverage(buckets []models.MonthAmount) decimal.Decimal {
	if len(buckets) == 0 {
		return decimal.Zero
	}
	sum := decimal.Zero
	for _, b := range buckets {
		sum = sum.Add(b.Amount)
	}
	return sum.Div(decimal.NewFromInt(int64(len(buckets))))
}

// Analyze runs all analyzers over the table and assembles the full
// record, including the health score against the user's savings target.
// An empty table produces the documented zero shape with score 50.
func Analyze(table []models.Transaction, savingsTarget decimal.Decimal) *models.AnalysisRecord {
	record := &models.AnalysisRecord{
		TotalTransactions:  len(table),
		TotalIncome:        decimal.Zero,
		MonthlyIncomeAvg:   decimal.Zero,
		TotalExpenses:      decimal.Zero,
		MonthlyExpensesAvg: decimal.Zero,
	}

	if len(table) > 0 {
		start, end := table[0].Date, table[0].Date
		for _, tx := range table[1:] {
			if tx.Date.Before(start) {
				start = tx.Date
			}
			if tx.Date.After(end) {
				end = tx.Date
			}
		}
		record.DateRange = models.DateRange{Start: start, End: end}
	}

	income := AnalyzeIncome(table)
	record.TotalIncome = income.TotalIncome
	record.MonthlyIncomeAvg = income.MonthlyIncomeAvg
	record.IncomeSources = income.IncomeSources

	expenses := AnalyzeExpenses(table)
	record.TotalExpenses = expenses.TotalExpenses
	record.MonthlyExpensesAvg = expenses.MonthlyExpensesAvg
	record.ExpenseBreakdown = expenses.ExpenseBreakdown
	record.TopSpendingCategories = expenses.TopSpendingCategories

	trend := AnalyzeTrend(table)
	record.SpendingTrend = trend.SpendingTrend
	record.HighestSpendingMonth = trend.HighestSpendingMonth
	record.LowestSpendingMonth = trend.LowestSpendingMonth
	record.MonthlySpending = trend.MonthlySpending

	record.FinancialHealthScore = HealthScore(record, savingsTarget)

	return record
}
