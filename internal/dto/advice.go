package dto

import "finsight/internal/advice"

type SuggestionsResponse struct {
	Suggestions []string `json:"suggestions"`
}

type BudgetResponse struct {
	MonthlyIncome   string                        `json:"monthly_income"`
	Recommendations []advice.BudgetRecommendation `json:"recommendations"`
}

type TipsResponse struct {
	Tips []string `json:"tips"`
}

type ChatRequest struct {
	Message string `json:"message" validate:"required"`
}

type ChatResponse struct {
	Reply              string   `json:"reply"`
	SuggestedQuestions []string `json:"suggested_questions"`
}
