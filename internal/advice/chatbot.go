package advice

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"finsight/internal/models"

	"github.com/shopspring/decimal"
)

const maxSuggestedQuestions = 5

// Chatbot answers finance questions from canned templates, optionally
// enriched with a personalized context paragraph when a profile and
// analysis are available.
type Chatbot struct {
	rng *rand.Rand
}

// NewChatbot builds a chatbot. A nil rng gets a time-seeded one.
func NewChatbot(rng *rand.Rand) *Chatbot {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Chatbot{rng: rng}
}

var topicKeywords = []struct {
	topic    string
	keywords []string
}{
	{"budget", []string{"budget", "budgeting", "allocate", "spend"}},
	{"saving", []string{"save", "saving", "savings", "emergency fund"}},
	{"investing", []string{"invest", "investment", "mutual fund", "sip", "stock"}},
	{"debt", []string{"debt", "loan", "credit card", "pay off"}},
	{"food_saving", []string{"food", "eating", "restaurant", "grocery"}},
	{"transport_saving", []string{"transport", "fuel", "petrol", "uber", "taxi"}},
	{"shopping_saving", []string{"shopping", "amazon", "flipkart", "buy", "purchase"}},
	{"expenses", []string{"expense", "spending", "cost", "reduce"}},
}

func identifyTopic(message string) string {
	lower := strings.ToLower(message)
	for _, entry := range topicKeywords {
		for _, keyword := range entry.keywords {
			if strings.Contains(lower, keyword) {
				return entry.topic
			}
		}
	}
	return "general"
}

// Reply picks a template for the message's topic and, when profile and
// record are present, appends a context paragraph built from them.
func (b *Chatbot) Reply(message string, profile *models.UserProfile, record *models.AnalysisRecord) string {
	topic := identifyTopic(message)
	pool, ok := chatTemplates[topic]
	if !ok {
		pool = chatTemplates["general"]
	}
	response := pool[b.rng.Intn(len(pool))]

	if profile != nil && record != nil {
		if context := personalizedContext(profile, record, topic); context != "" {
			response += "\n\n" + context
		}
	}
	return response
}

func personalizedContext(profile *models.UserProfile, record *models.AnalysisRecord, topic string) string {
	income := record.MonthlyIncomeAvg
	expenses := record.MonthlyExpensesAvg
	target := profile.FinancialGoals.MonthlySavingsTarget

	switch topic {
	case "budget":
		if income.IsPositive() {
			rate := income.Sub(expenses).Div(income).Mul(decimal.NewFromInt(100))
			if rate.LessThan(decimal.NewFromInt(10)) {
				return "Based on your current spending, consider reducing expenses in your top categories to improve your savings rate."
			}
			if rate.GreaterThan(decimal.NewFromInt(20)) {
				return "Great job on your savings rate! You're doing well with your budget."
			}
		}
	case "saving":
		if target.IsPositive() {
			currentSavings := income.Sub(expenses)
			if currentSavings.LessThan(target) {
				return fmt.Sprintf("You're currently saving %s but your target is %s. You need to save %s more per month.",
					formatAmount(currentSavings), formatAmount(target), formatAmount(target.Sub(currentSavings)))
			}
			return fmt.Sprintf("Excellent! You're meeting your savings target of %s per month.", formatAmount(target))
		}
	case "investing":
		if amount, ok := record.TopCategoryAmount(models.CategoryInvestments); !ok || amount.IsZero() {
			return "I notice you don't have any investment transactions yet. This could be a great next step for you!"
		}
	case "food_saving", "transport_saving", "shopping_saving":
		category := map[string]models.Category{
			"food_saving":      models.CategoryFoodDining,
			"transport_saving": models.CategoryTransportation,
			"shopping_saving":  models.CategoryShopping,
		}[topic]
		if amount, ok := record.TopCategoryAmount(category); ok {
			return fmt.Sprintf("Your %s expenses are %s. Here are some specific tips to reduce this category.",
				category, formatAmount(amount))
		}
	}
	return ""
}

// SuggestedQuestions proposes up to five questions worth asking, driven
// by the health score, the income/expense balance and the top spending
// categories. Without a profile it falls back to a starter list.
func (b *Chatbot) SuggestedQuestions(profile *models.UserProfile, record *models.AnalysisRecord) []string {
	if profile == nil || record == nil {
		return []string{
			"How can I start budgeting?",
			"What's the best way to save money?",
			"Should I invest in mutual funds?",
			"How much should I save for emergencies?",
			"How can I reduce my expenses?",
		}
	}

	var questions []string

	score := record.FinancialHealthScore
	if score < 40 {
		questions = append(questions,
			"How can I improve my financial health?",
			"What should I prioritize: saving or paying debt?",
			"How can I reduce my monthly expenses?",
		)
	} else if score > 70 {
		questions = append(questions,
			"How can I optimize my investments?",
			"What are good long-term investment options?",
			"How can I maximize my savings rate?",
		)
	}

	if record.MonthlyExpensesAvg.GreaterThan(record.MonthlyIncomeAvg) {
		questions = append(questions, "I'm spending more than I earn. What should I do?")
	}

	if _, ok := record.TopCategoryAmount(models.CategoryFoodDining); ok {
		questions = append(questions, "How can I reduce my food expenses?")
	}
	if _, ok := record.TopCategoryAmount(models.CategoryTransportation); ok {
		questions = append(questions, "What are cost-effective transportation options?")
	}
	if _, ok := record.TopCategoryAmount(models.CategoryShopping); ok {
		questions = append(questions, "How can I save money on shopping?")
	}

	target := profile.FinancialGoals.MonthlySavingsTarget
	if target.IsPositive() {
		if record.MonthlyIncomeAvg.Sub(record.MonthlyExpensesAvg).LessThan(target) {
			questions = append(questions, "How can I reach my monthly savings target?")
		}
	}

	questions = append(questions,
		"How should I allocate my monthly income?",
		"What's a good emergency fund amount?",
		"How can I track my expenses better?",
	)

	if len(questions) > maxSuggestedQuestions {
		questions = questions[:maxSuggestedQuestions]
	}
	return questions
}
