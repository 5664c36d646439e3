package analysis

import (
	"sort"

	"finsight/internal/models"

	"github.com/shopspring/decimal"
)

const maxIncomeSources = 5

// IncomeSummary aggregates the Income-categorized rows of a table.
type IncomeSummary struct {
	TotalIncome      decimal.Decimal
	MonthlyIncomeAvg decimal.Decimal
	IncomeSources    []models.SourceCount
}

// AnalyzeIncome computes income totals, the per-populated-month average
// and the five most frequent income descriptions. Count ties keep
// first-encountered order.
func AnalyzeIncome(table []models.Transaction) IncomeSummary {
	var rows []models.Transaction
	for _, tx := range table {
		if tx.Category == models.CategoryIncome {
			rows = append(rows, tx)
		}
	}

	summary := IncomeSummary{
		TotalIncome:      decimal.Zero,
		MonthlyIncomeAvg: decimal.Zero,
	}
	if len(rows) == 0 {
		return summary
	}

	for _, tx := range rows {
		summary.TotalIncome = summary.TotalIncome.Add(tx.Amount)
	}
	summary.MonthlyIncomeAvg = monthlyAverage(monthlyTotals(rows))

	counts := make(map[string]int)
	var order []string
	for _, tx := range rows {
		if _, ok := counts[tx.Description]; !ok {
			order = append(order, tx.Description)
		}
		counts[tx.Description]++
	}
	sources := make([]models.SourceCount, 0, len(order))
	for _, desc := range order {
		sources = append(sources, models.SourceCount{Description: desc, Count: counts[desc]})
	}
	sort.SliceStable(sources, func(i, j int) bool { return sources[i].Count > sources[j].Count })
	if len(sources) > maxIncomeSources {
		sources = sources[:maxIncomeSources]
	}
	summary.IncomeSources = sources

	return summary
}
