package models

import (
	"time"

	"github.com/google/uuid"
)

// StatementSource tells which ingestion path produced a statement's rows.
type StatementSource string

const (
	// StatementSourceCSV is a CSV export uploaded by the user.
	StatementSourceCSV StatementSource = "csv"
	// StatementSourceText is plain text handed over by the external
	// PDF extractor.
	StatementSourceText StatementSource = "text"
)

// Statement is one uploaded bank statement file.
type Statement struct {
	ID        uuid.UUID       `db:"id"`
	UserID    uuid.UUID       `db:"user_id"`
	Source    StatementSource `db:"source"`
	FileName  string          `db:"file_name"`
	FileSize  int64           `db:"file_size"`
	FileURL   string          `db:"file_url"`
	CreatedAt time.Time       `db:"created_at"`
	UpdatedAt time.Time       `db:"updated_at"`
}
