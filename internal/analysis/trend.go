package analysis

import "finsight/internal/models"

// TrendSummary classifies the direction of monthly spending.
type TrendSummary struct {
	SpendingTrend        models.SpendingTrend
	HighestSpendingMonth *models.Month
	LowestSpendingMonth  *models.Month
	MonthlySpending      []models.MonthAmount
}

// AnalyzeTrend buckets non-Income amounts by month and classifies the
// trend by the sign of an ordinary-least-squares slope over the monthly
// sums (x = bucket index). Fewer than two populated months cannot carry a
// trend and report insufficient_data; an empty table reports stable.
// Highest/lowest months are picked strictly, so the first occurrence wins
// on ties.
func AnalyzeTrend(table []models.Transaction) TrendSummary {
	var rows []models.Transaction
	for _, tx := range table {
		if tx.Category != models.CategoryIncome {
			rows = append(rows, tx)
		}
	}

	if len(rows) == 0 {
		return TrendSummary{SpendingTrend: models.TrendStable}
	}

	monthly := monthlyTotals(rows)
	summary := TrendSummary{MonthlySpending: monthly}

	highest, lowest := monthly[0], monthly[0]
	for _, b := range monthly[1:] {
		if b.Amount.GreaterThan(highest.Amount) {
			highest = b
		}
		if b.Amount.LessThan(lowest.Amount) {
			lowest = b
		}
	}
	hm, lm := highest.Month, lowest.Month
	summary.HighestSpendingMonth = &hm
	summary.LowestSpendingMonth = &lm

	if len(monthly) < 2 {
		summary.SpendingTrend = models.TrendInsufficientData
		return summary
	}

	slope := olsSlope(monthly)
	switch {
	case slope > 0:
		summary.SpendingTrend = models.TrendIncreasing
	case slope < 0:
		summary.SpendingTrend = models.TrendDecreasing
	default:
		summary.SpendingTrend = models.TrendStable
	}
	return summary
}

// olsSlope fits y = a + b*x over the monthly sums indexed 0..n-1 and
// returns b. Callers guarantee n >= 2, so the denominator is non-zero.
func olsSlope(monthly []models.MonthAmount) float64 {
	n := float64(len(monthly))
	var sumX, sumY, sumXY, sumXX float64
	for i, b := range monthly {
		x := float64(i)
		y := b.Amount.InexactFloat64()
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}
	return (n*sumXY - sumX*sumY) / (n*sumXX - sumX*sumX)
}
