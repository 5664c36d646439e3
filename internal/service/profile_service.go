package service

import (
	"context"
	"errors"
	"time"

	"finsight/internal/analysis"
	"finsight/internal/dto"
	"finsight/internal/models"
	"finsight/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrProfileNotFound = errors.New("profile not found")

type ProfileService struct {
	profileRepo *repository.ProfileRepository
	txRepo      *repository.TransactionRepository
	logger      *zap.Logger
}

func NewProfileService(
	profileRepo *repository.ProfileRepository,
	txRepo *repository.TransactionRepository,
	logger *zap.Logger,
) *ProfileService {
	return &ProfileService{
		profileRepo: profileRepo,
		txRepo:      txRepo,
		logger:      logger,
	}
}

// Save creates or updates the user's profile. The creation date and any
// existing analysis survive an update; goals and questionnaire data are
// replaced.
func (s *ProfileService) Save(ctx context.Context, userID uuid.UUID, req *dto.SaveProfileRequest) (*dto.ProfileResponse, error) {
	profile, err := s.profileRepo.Get(ctx, userID)
	if errors.Is(err, repository.ErrProfileNotFound) {
		profile = &models.UserProfile{CreatedDate: time.Now()}
	} else if err != nil {
		return nil, err
	}

	profile.UserInfo = req.UserInfo
	profile.FinancialGoals = req.FinancialGoals

	if err := s.profileRepo.Upsert(ctx, userID, profile); err != nil {
		return nil, err
	}
	return profileResponse(profile), nil
}

func (s *ProfileService) Get(ctx context.Context, userID uuid.UUID) (*dto.ProfileResponse, error) {
	profile, err := s.profileRepo.Get(ctx, userID)
	if errors.Is(err, repository.ErrProfileNotFound) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}
	return profileResponse(profile), nil
}

// Analyze runs the full analysis over every transaction the user has
// ingested and stores the result on the profile, replacing any previous
// run wholesale.
func (s *ProfileService) Analyze(ctx context.Context, userID uuid.UUID) (*models.AnalysisRecord, error) {
	profile, err := s.profileRepo.Get(ctx, userID)
	if errors.Is(err, repository.ErrProfileNotFound) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}

	transactions, err := s.txRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	table := make([]models.Transaction, len(transactions))
	for i, tx := range transactions {
		table[i] = *tx
	}

	record := analysis.Analyze(table, profile.FinancialGoals.MonthlySavingsTarget)
	profile.TransactionAnalysis = record

	if err := s.profileRepo.Upsert(ctx, userID, profile); err != nil {
		return nil, err
	}

	s.logger.Info("Analysis complete",
		zap.String("user_id", userID.String()),
		zap.Int("transactions", record.TotalTransactions),
		zap.Int("health_score", record.FinancialHealthScore),
	)
	return record, nil
}

func profileResponse(profile *models.UserProfile) *dto.ProfileResponse {
	return &dto.ProfileResponse{
		CreatedDate:    profile.CreatedDate.Format(time.RFC3339),
		UserInfo:       profile.UserInfo,
		FinancialGoals: profile.FinancialGoals,
		Analysis:       profile.TransactionAnalysis,
	}
}
