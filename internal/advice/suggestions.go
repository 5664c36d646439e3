// Package advice produces canned textual suggestions, budget
// recommendations and chat replies from a profile and its analysis
// record. Everything is template selection driven by thresholds; the
// only nondeterminism is which template of a pool gets picked, and that
// goes through an injected rand source so tests can pin a seed.
package advice

import (
	"fmt"
	"math/rand"
	"time"

	"finsight/internal/models"

	"github.com/shopspring/decimal"
)

const maxSuggestions = 7

// Income-share thresholds above which a cut-cost category triggers a
// category-specific suggestion.
var cutCostThresholds = map[models.Category]decimal.Decimal{
	models.CategoryFoodDining:     decimal.NewFromFloat(0.15),
	models.CategoryTransportation: decimal.NewFromFloat(0.10),
	models.CategoryShopping:       decimal.NewFromFloat(0.10),
	models.CategoryEntertainment:  decimal.NewFromFloat(0.05),
}

var cutCostTemplates = map[models.Category]string{
	models.CategoryFoodDining:     "high_food_spending",
	models.CategoryTransportation: "high_transport_spending",
	models.CategoryShopping:       "high_shopping_spending",
	models.CategoryEntertainment:  "high_entertainment_spending",
}

type Engine struct {
	rng *rand.Rand
}

// NewEngine builds an advice engine. A nil rng gets a time-seeded one.
func NewEngine(rng *rand.Rand) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Engine{rng: rng}
}

// sample picks n distinct templates from a pool, fewer if the pool is
// smaller.
func (e *Engine) sample(pool []string, n int) []string {
	if n > len(pool) {
		n = len(pool)
	}
	out := make([]string, 0, n)
	for _, i := range e.rng.Perm(len(pool))[:n] {
		out = append(out, pool[i])
	}
	return out
}

// Suggestions generates up to seven personalized suggestions: a savings
// gap (or congratulation) line, category advice for the user's declared
// cut-cost areas that exceed their income share, an investment nudge, a
// budget nudge below health score 60, and general tips as filler.
func (e *Engine) Suggestions(profile *models.UserProfile, record *models.AnalysisRecord) []string {
	var suggestions []string

	income := record.MonthlyIncomeAvg
	expenses := record.MonthlyExpensesAvg
	target := profile.FinancialGoals.MonthlySavingsTarget
	currentSavings := income.Sub(expenses)

	if target.IsPositive() {
		if currentSavings.LessThan(target) {
			gap := target.Sub(currentSavings)
			suggestions = append(suggestions, fmt.Sprintf(
				"You're saving %s but your target is %s. You need to save %s more per month.",
				formatAmount(currentSavings), formatAmount(target), formatAmount(gap)))
			suggestions = append(suggestions, e.sample(suggestionTemplates["low_savings"], 2)...)
		} else {
			suggestions = append(suggestions, fmt.Sprintf(
				"Great job! You're meeting your savings target of %s per month.", formatAmount(target)))
		}
	}

	for _, category := range profile.FinancialGoals.CutCostAreas {
		threshold, ok := cutCostThresholds[category]
		if !ok {
			continue
		}
		amount, inTop := record.TopCategoryAmount(category)
		if !inTop {
			continue
		}
		if amount.GreaterThan(income.Mul(threshold)) {
			suggestions = append(suggestions, e.sample(suggestionTemplates[cutCostTemplates[category]], 1)...)
		}
	}

	if amount, ok := record.TopCategoryAmount(models.CategoryInvestments); !ok || amount.IsZero() {
		suggestions = append(suggestions, e.sample(suggestionTemplates["no_investments"], 1)...)
	}

	if record.FinancialHealthScore < 60 {
		suggestions = append(suggestions, e.sample(suggestionTemplates["budget_optimization"], 1)...)
	}

	if len(suggestions) < maxSuggestions {
		suggestions = append(suggestions, e.sample(suggestionTemplates["general_tips"], maxSuggestions-len(suggestions))...)
	}
	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions
}

// QuickTips returns short one-liners for the dashboard sidebar.
func (e *Engine) QuickTips(profile *models.UserProfile, record *models.AnalysisRecord) []string {
	var tips []string

	score := record.FinancialHealthScore
	if score < 40 {
		tips = append(tips, "Focus on reducing debt and building emergency savings")
	} else if score > 70 {
		tips = append(tips, "Great job! Consider increasing your investment contributions")
	}

	target := profile.FinancialGoals.MonthlySavingsTarget
	if target.IsPositive() {
		currentSavings := record.MonthlyIncomeAvg.Sub(record.MonthlyExpensesAvg)
		if currentSavings.LessThan(target) {
			tips = append(tips, fmt.Sprintf(
				"You need to save %s more to reach your monthly target", formatAmount(target.Sub(currentSavings))))
		} else {
			tips = append(tips, "You're exceeding your savings target! Consider investing the extra amount")
		}
	}

	tips = append(tips,
		"Use the 24-hour rule before making non-essential purchases",
		"Review your bank statements monthly to catch any errors or fraud",
		"Set up automatic bill payments to avoid late fees",
	)
	return tips
}

func formatAmount(d decimal.Decimal) string {
	return "₹" + d.StringFixed(2)
}
