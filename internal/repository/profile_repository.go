package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"finsight/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository stores one profile per user as a JSONB document. The
// profile is a single aggregate that is always read and replaced whole,
// so a document column beats a table per nested struct.
type ProfileRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewProfileRepository(db *pgxpool.Pool, logger *zap.Logger) *ProfileRepository {
	return &ProfileRepository{
		db:     db,
		logger: logger,
	}
}

func (r *ProfileRepository) Upsert(ctx context.Context, userID uuid.UUID, profile *models.UserProfile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return err
	}

	now := time.Now()
	query := squirrel.Insert("profiles").
		Columns("user_id", "data", "created_at", "updated_at").
		Values(userID, data, now, now).
		Suffix("ON CONFLICT (user_id) DO UPDATE SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *ProfileRepository) Get(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error) {
	query := squirrel.Select("data").
		From("profiles").
		Where(squirrel.Eq{"user_id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var data []byte
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&data); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	var profile models.UserProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, err
	}

	return &profile, nil
}
