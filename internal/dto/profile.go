package dto

import "finsight/internal/models"

type SaveProfileRequest struct {
	UserInfo       models.UserInfo       `json:"user_info"`
	FinancialGoals models.FinancialGoals `json:"financial_goals" validate:"required"`
}

type ProfileResponse struct {
	CreatedDate    string                 `json:"created_date"`
	UserInfo       models.UserInfo        `json:"user_info"`
	FinancialGoals models.FinancialGoals  `json:"financial_goals"`
	Analysis       *models.AnalysisRecord `json:"transaction_analysis,omitempty"`
}
