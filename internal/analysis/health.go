package analysis

import (
	"finsight/internal/models"

	"github.com/shopspring/decimal"
)

var (
	ratioStrong   = decimal.NewFromFloat(0.20)
	ratioGood     = decimal.NewFromFloat(0.10)
	targetNear    = decimal.NewFromFloat(0.8)
	targetHalfway = decimal.NewFromFloat(0.5)
)

// HealthScore combines the savings ratio, the user's savings target and
// the spending trend into a score clamped to [0, 100].
//
// Base is 50. With positive average income, the ratio
// (income-expenses)/income adds +20 above 0.20, +10 above 0.10, +5 above
// zero and -20 otherwise; a positive target then adds +15/+10/+5 when
// actual savings reach the target, 80% of it, or half of it. The ratio
// brackets are strict, so a ratio of exactly 0.20 lands in the +10
// bracket. Zero income skips the whole ratio block. Independently, a
// decreasing trend adds +10 and an increasing one -10.
func HealthScore(record *models.AnalysisRecord, savingsTarget decimal.Decimal) int {
	score := 50

	income := record.MonthlyIncomeAvg
	expenses := record.MonthlyExpensesAvg

	if income.IsPositive() {
		savings := income.Sub(expenses)
		ratio := savings.Div(income)

		switch {
		case ratio.GreaterThan(ratioStrong):
			score += 20
		case ratio.GreaterThan(ratioGood):
			score += 10
		case ratio.IsPositive():
			score += 5
		default:
			score -= 20
		}

		if savingsTarget.IsPositive() {
			switch {
			case savings.GreaterThanOrEqual(savingsTarget):
				score += 15
			case savings.GreaterThanOrEqual(savingsTarget.Mul(targetNear)):
				score += 10
			case savings.GreaterThanOrEqual(savingsTarget.Mul(targetHalfway)):
				score += 5
			}
		}
	}

	switch record.SpendingTrend {
	case models.TrendDecreasing:
		score += 10
	case models.TrendIncreasing:
		score -= 10
	}

	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
