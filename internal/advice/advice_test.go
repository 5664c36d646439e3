package advice

import (
	"math/rand"
	"strings"
	"testing"

	"finsight/internal/models"

	"github.com/shopspring/decimal"
)

func fixedEngine() *Engine {
	return NewEngine(rand.New(rand.NewSource(1)))
}

func profileWith(target float64, cutCost ...models.Category) *models.UserProfile {
	return &models.UserProfile{
		FinancialGoals: models.FinancialGoals{
			MonthlySavingsTarget: decimal.NewFromFloat(target),
			CutCostAreas:         cutCost,
		},
	}
}

func analysisWith(income, expenses float64, score int, top ...models.CategoryAmount) *models.AnalysisRecord {
	return &models.AnalysisRecord{
		MonthlyIncomeAvg:      decimal.NewFromFloat(income),
		MonthlyExpensesAvg:    decimal.NewFromFloat(expenses),
		FinancialHealthScore:  score,
		TopSpendingCategories: top,
		ExpenseBreakdown:      top,
		SpendingTrend:         models.TrendStable,
	}
}

func TestSuggestionsCapAndSavingsGap(t *testing.T) {
	engine := fixedEngine()
	profile := profileWith(15000, models.CategoryFoodDining, models.CategoryEntertainment)
	record := analysisWith(50000, 45000, 55,
		models.CategoryAmount{Category: models.CategoryFoodDining, Amount: decimal.NewFromInt(9000)},
		models.CategoryAmount{Category: models.CategoryEntertainment, Amount: decimal.NewFromInt(3000)},
	)

	got := engine.Suggestions(profile, record)
	if len(got) != 7 {
		t.Fatalf("len(suggestions) = %d, want 7", len(got))
	}
	if !strings.Contains(got[0], "your target is") {
		t.Fatalf("first suggestion should state the savings gap, got %q", got[0])
	}

	// Suggestions must not repeat within one pool sample.
	seen := make(map[string]bool)
	for _, s := range got {
		if seen[s] {
			t.Fatalf("duplicate suggestion %q", s)
		}
		seen[s] = true
	}
}

func TestSuggestionsTargetMet(t *testing.T) {
	engine := fixedEngine()
	profile := profileWith(5000)
	record := analysisWith(50000, 40000, 75)

	got := engine.Suggestions(profile, record)
	if !strings.Contains(got[0], "Great job") {
		t.Fatalf("expected congratulation first, got %q", got[0])
	}
	if len(got) != 7 {
		t.Fatalf("len(suggestions) = %d, want 7 after general-tip fill", len(got))
	}
}

func TestSuggestionsInvestmentNudge(t *testing.T) {
	engine := fixedEngine()
	// No Investments in top categories: one nudge from the pool.
	got := engine.Suggestions(profileWith(0), analysisWith(50000, 20000, 80))
	found := false
	for _, s := range got {
		for _, tpl := range suggestionTemplates["no_investments"] {
			if s == tpl {
				found = true
			}
		}
	}
	if !found {
		t.Fatalf("expected an investment nudge in %q", got)
	}
}

func TestBudgetZeroIncome(t *testing.T) {
	engine := fixedEngine()
	if got := engine.Budget(profileWith(1000), analysisWith(0, 0, 50)); got != nil {
		t.Fatalf("expected nil budget for zero income, got %+v", got)
	}
}

func TestBudgetLines(t *testing.T) {
	engine := fixedEngine()
	record := analysisWith(50000, 30000, 60,
		models.CategoryAmount{Category: models.CategoryFoodDining, Amount: decimal.NewFromInt(9000)},
	)
	got := engine.Budget(profileWith(5000), record)
	if len(got) != 10 {
		t.Fatalf("len(budget) = %d, want 10", len(got))
	}
	food := got[0]
	if food.Name != string(models.CategoryFoodDining) {
		t.Fatalf("first line = %q", food.Name)
	}
	if want := decimal.NewFromInt(7500); !food.Recommended.Equal(want) {
		t.Fatalf("recommended = %s, want %s", food.Recommended, want)
	}
	if want := decimal.NewFromInt(9000); !food.Current.Equal(want) {
		t.Fatalf("current = %s, want %s", food.Current, want)
	}
	if want := decimal.NewFromInt(-1500); !food.Difference.Equal(want) {
		t.Fatalf("difference = %s, want %s", food.Difference, want)
	}
}

func TestBudgetAggressiveTargetSqueezesShares(t *testing.T) {
	engine := fixedEngine()
	record := analysisWith(50000, 30000, 60)
	// Target 20000 of 50000 = 40% > 35%: non-investment lines shrink by 20%.
	got := engine.Budget(profileWith(20000), record)
	if want := decimal.NewFromInt(6000); !got[0].Recommended.Equal(want) {
		t.Fatalf("squeezed food line = %s, want %s", got[0].Recommended, want)
	}
	// Investments keep their full 20% share.
	for _, line := range got {
		if line.Name == string(models.CategoryInvestments) {
			if want := decimal.NewFromInt(10000); !line.Recommended.Equal(want) {
				t.Fatalf("investments line = %s, want %s", line.Recommended, want)
			}
		}
	}
}

func TestQuickTips(t *testing.T) {
	engine := fixedEngine()
	got := engine.QuickTips(profileWith(15000), analysisWith(50000, 45000, 35))
	if len(got) < 4 {
		t.Fatalf("len(tips) = %d, want >= 4", len(got))
	}
	if !strings.Contains(got[0], "reducing debt") {
		t.Fatalf("expected low-score tip first, got %q", got[0])
	}
	if !strings.Contains(got[1], "save") {
		t.Fatalf("expected savings-gap tip second, got %q", got[1])
	}
}

func TestChatbotTopicRouting(t *testing.T) {
	cases := []struct {
		message string
		topic   string
	}{
		{"How do I budget my income?", "budget"},
		{"best way to save money", "saving"},
		{"should I invest in a mutual fund", "investing"},
		{"help with my credit card loan", "debt"},
		{"restaurant spending is killing me", "food_saving"},
		{"petrol is expensive", "transport_saving"},
		{"I buy too much on amazon", "shopping_saving"},
		{"my costs are too high", "expenses"},
		{"hello there", "general"},
	}
	for _, tc := range cases {
		if got := identifyTopic(tc.message); got != tc.topic {
			t.Errorf("identifyTopic(%q) = %q, want %q", tc.message, got, tc.topic)
		}
	}
}

func TestChatbotReplyComesFromTopicPool(t *testing.T) {
	bot := NewChatbot(rand.New(rand.NewSource(7)))
	reply := bot.Reply("how should I budget?", nil, nil)
	found := false
	for _, tpl := range chatTemplates["budget"] {
		if reply == tpl {
			found = true
		}
	}
	if !found {
		t.Fatalf("reply %q not in budget pool", reply)
	}
}

func TestChatbotReplyPersonalizedContext(t *testing.T) {
	bot := NewChatbot(rand.New(rand.NewSource(7)))
	profile := profileWith(15000)
	record := analysisWith(50000, 45000, 55)
	reply := bot.Reply("how can I improve my savings?", profile, record)
	if !strings.Contains(reply, "your target is ₹15000.00") {
		t.Fatalf("expected savings context in %q", reply)
	}
}

func TestSuggestedQuestions(t *testing.T) {
	bot := NewChatbot(rand.New(rand.NewSource(7)))

	starter := bot.SuggestedQuestions(nil, nil)
	if len(starter) != 5 {
		t.Fatalf("len(starter) = %d, want 5", len(starter))
	}

	profile := profileWith(15000)
	record := analysisWith(50000, 45000, 35,
		models.CategoryAmount{Category: models.CategoryFoodDining, Amount: decimal.NewFromInt(9000)},
	)
	got := bot.SuggestedQuestions(profile, record)
	if len(got) != 5 {
		t.Fatalf("len(questions) = %d, want 5", len(got))
	}
	if got[0] != "How can I improve my financial health?" {
		t.Fatalf("questions[0] = %q", got[0])
	}
}
