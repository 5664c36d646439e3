package repository

import (
	"context"

	"finsight/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type StatementRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewStatementRepository(db *pgxpool.Pool, logger *zap.Logger) *StatementRepository {
	return &StatementRepository{
		db:     db,
		logger: logger,
	}
}

func (r *StatementRepository) Create(ctx context.Context, st *models.Statement) error {
	query := squirrel.Insert("statements").
		Columns("id", "user_id", "source", "file_name", "file_size", "file_url", "created_at", "updated_at").
		Values(st.ID, st.UserID, st.Source, st.FileName, st.FileSize, st.FileURL, st.CreatedAt, st.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *StatementRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Statement, error) {
	query := squirrel.Select("id", "user_id", "source", "file_name", "file_size", "file_url", "created_at", "updated_at").
		From("statements").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var st models.Statement
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&st.ID, &st.UserID, &st.Source, &st.FileName, &st.FileSize, &st.FileURL, &st.CreatedAt, &st.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &st, nil
}

func (r *StatementRepository) ListByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*models.Statement, error) {
	query := squirrel.Select("id", "user_id", "source", "file_name", "file_size", "file_url", "created_at", "updated_at").
		From("statements").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var statements []*models.Statement
	for rows.Next() {
		var st models.Statement
		if err := rows.Scan(
			&st.ID, &st.UserID, &st.Source, &st.FileName, &st.FileSize, &st.FileURL, &st.CreatedAt, &st.UpdatedAt,
		); err != nil {
			return nil, err
		}
		statements = append(statements, &st)
	}

	return statements, rows.Err()
}
