package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// UserInfo is the questionnaire data collected when a profile is created.
type UserInfo struct {
	MonthlyIncome decimal.Decimal `json:"monthly_income"`
	AgeBand       string          `json:"age_band"`
	Occupation    string          `json:"occupation"`
}

type FinancialGoals struct {
	MonthlySavingsTarget decimal.Decimal `json:"monthly_savings_target"`
	PriorityCategories   []Category      `json:"priority_categories"`
	CutCostAreas         []Category      `json:"cut_cost_areas"`
}

// UserProfile is the per-user financial profile. TransactionAnalysis is
// nil until the first analysis run and replaced wholesale afterwards.
type UserProfile struct {
	CreatedDate         time.Time       `json:"created_date"`
	UserInfo            UserInfo        `json:"user_info"`
	FinancialGoals      FinancialGoals  `json:"financial_goals"`
	TransactionAnalysis *AnalysisRecord `json:"transaction_analysis,omitempty"`
}
