package repository

import (
	"context"

	"finsight/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type TransactionRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewTransactionRepository(db *pgxpool.Pool, logger *zap.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:     db,
		logger: logger,
	}
}

func (r *TransactionRepository) CreateBatch(ctx context.Context, transactions []*models.Transaction) error {
	if len(transactions) == 0 {
		return nil
	}

	builder := squirrel.Insert("transactions").
		Columns("id", "statement_id", "user_id", "date", "description", "amount", "type", "category", "created_at", "updated_at").
		PlaceholderFormat(squirrel.Dollar)

	for _, tx := range transactions {
		builder = builder.Values(tx.ID, tx.StatementID, tx.UserID, tx.Date, tx.Description, tx.Amount, tx.Type, tx.Category, tx.CreatedAt, tx.UpdatedAt)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

// GetByStatementID returns a statement's rows in chronological order, the
// order the analyzers expect.
func (r *TransactionRepository) GetByStatementID(ctx context.Context, statementID uuid.UUID) ([]*models.Transaction, error) {
	query := squirrel.Select(transactionColumns...).
		From("transactions").
		Where(squirrel.Eq{"statement_id": statementID}).
		OrderBy("date ASC").
		PlaceholderFormat(squirrel.Dollar)

	return r.queryTransactions(ctx, query)
}

// ListByUserID returns every transaction of a user across all statements,
// in chronological order.
func (r *TransactionRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*models.Transaction, error) {
	query := squirrel.Select(transactionColumns...).
		From("transactions").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("date ASC").
		PlaceholderFormat(squirrel.Dollar)

	return r.queryTransactions(ctx, query)
}

var transactionColumns = []string{
	"id", "statement_id", "user_id", "date", "description", "amount", "type", "category", "created_at", "updated_at",
}

func (r *TransactionRepository) queryTransactions(ctx context.Context, query squirrel.SelectBuilder) ([]*models.Transaction, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []*models.Transaction
	for rows.Next() {
		var tx models.Transaction
		if err := rows.Scan(
			&tx.ID, &tx.StatementID, &tx.UserID, &tx.Date, &tx.Description, &tx.Amount, &tx.Type, &tx.Category, &tx.CreatedAt, &tx.UpdatedAt,
		); err != nil {
			return nil, err
		}
		transactions = append(transactions, &tx)
	}

	return transactions, rows.Err()
}
