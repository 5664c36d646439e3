package advice

import (
	"finsight/internal/models"

	"github.com/shopspring/decimal"
)

// BudgetRecommendation compares recommended and actual spending for one
// budget line. Name is a budget line, not necessarily a transaction
// category ("Emergency Fund" has no transactions).
type BudgetRecommendation struct {
	Name        string          `json:"name"`
	Percent     decimal.Decimal `json:"percent"`
	Recommended decimal.Decimal `json:"recommended"`
	Current     decimal.Decimal `json:"current"`
	Difference  decimal.Decimal `json:"difference"`
}

// Budget lines with their income shares, a modified 50/30/20 split.
// Order is presentation order.
var budgetShares = []struct {
	name    string
	percent decimal.Decimal
}{
	{string(models.CategoryFoodDining), decimal.NewFromFloat(0.15)},
	{string(models.CategoryTransportation), decimal.NewFromFloat(0.10)},
	{string(models.CategoryBillsUtilities), decimal.NewFromFloat(0.10)},
	{string(models.CategoryShopping), decimal.NewFromFloat(0.10)},
	{string(models.CategoryEntertainment), decimal.NewFromFloat(0.05)},
	{string(models.CategoryHealthcare), decimal.NewFromFloat(0.05)},
	{string(models.CategoryEducation), decimal.NewFromFloat(0.05)},
	{string(models.CategoryTravel), decimal.NewFromFloat(0.05)},
	{string(models.CategoryInvestments), decimal.NewFromFloat(0.20)},
	{"Emergency Fund", decimal.NewFromFloat(0.15)},
}

var (
	aggressiveTarget = decimal.NewFromFloat(0.35)
	shareDampening   = decimal.NewFromFloat(0.8)
)

// Budget recommends a per-line monthly allocation against actual
// spending. With zero income there is nothing to allocate and the result
// is empty. A savings target above 35% of income squeezes every line
// except Investments and Emergency Fund by 20%.
func (e *Engine) Budget(profile *models.UserProfile, record *models.AnalysisRecord) []BudgetRecommendation {
	income := record.MonthlyIncomeAvg
	if !income.IsPositive() {
		return nil
	}

	target := profile.FinancialGoals.MonthlySavingsTarget
	squeeze := target.IsPositive() && target.Div(income).GreaterThan(aggressiveTarget)

	out := make([]BudgetRecommendation, 0, len(budgetShares))
	for _, line := range budgetShares {
		percent := line.percent
		if squeeze && line.name != string(models.CategoryInvestments) && line.name != "Emergency Fund" {
			percent = percent.Mul(shareDampening)
		}

		current := decimal.Zero
		if amount, ok := record.BreakdownAmount(models.Category(line.name)); ok {
			current = amount
		}

		recommended := income.Mul(percent)
		out = append(out, BudgetRecommendation{
			Name:        line.name,
			Percent:     percent.Mul(decimal.NewFromInt(100)),
			Recommended: recommended,
			Current:     current,
			Difference:  recommended.Sub(current),
		})
	}
	return out
}
