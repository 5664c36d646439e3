package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TypeDebit  TransactionType = "Debit"
	TypeCredit TransactionType = "Credit"
)

type Category string

const (
	CategoryFoodDining     Category = "Food & Dining"
	CategoryTransportation Category = "Transportation"
	CategoryShopping       Category = "Shopping"
	CategoryBillsUtilities Category = "Bills & Utilities"
	CategoryEntertainment  Category = "Entertainment"
	CategoryHealthcare     Category = "Healthcare"
	CategoryEducation      Category = "Education"
	CategoryTravel         Category = "Travel"
	CategoryInvestments    Category = "Investments"
	CategoryIncome         Category = "Income"
	CategoryOther          Category = "Other"
)

// Categories lists every category in declared order. The order is load
// bearing: the categorizer walks it first-match-wins.
var Categories = []Category{
	CategoryFoodDining,
	CategoryTransportation,
	CategoryShopping,
	CategoryBillsUtilities,
	CategoryEntertainment,
	CategoryHealthcare,
	CategoryEducation,
	CategoryTravel,
	CategoryInvestments,
	CategoryIncome,
	CategoryOther,
}

// Transaction is one cleaned bank statement row. Amount is always
// non-negative; direction is carried by Type.
type Transaction struct {
	ID          uuid.UUID       `db:"id" json:"id"`
	StatementID uuid.UUID       `db:"statement_id" json:"statement_id"`
	UserID      uuid.UUID       `db:"user_id" json:"user_id"`
	Date        time.Time       `db:"date" json:"date"`
	Description string          `db:"description" json:"description"`
	Amount      decimal.Decimal `db:"amount" json:"amount"`
	Type        TransactionType `db:"type" json:"type"`
	Category    Category        `db:"category" json:"category"`
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at" json:"updated_at"`
}
