package dto

import "github.com/shopspring/decimal"

type StatementResponse struct {
	ID        string `json:"id"`
	Source    string `json:"source"`
	FileName  string `json:"file_name"`
	FileSize  int64  `json:"file_size"`
	FileURL   string `json:"file_url"`
	CreatedAt string `json:"created_at"`
}

type TransactionResponse struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type"`
	Category    string          `json:"category"`
	CreatedAt   string          `json:"created_at"`
}

type ProcessStatementResponse struct {
	Statement    StatementResponse     `json:"statement"`
	Transactions []TransactionResponse `json:"transactions"`
	ExportURL    string                `json:"export_url,omitempty"`
}
