package service

import (
	"context"
	"errors"

	"finsight/internal/advice"
	"finsight/internal/dto"
	"finsight/internal/models"
	"finsight/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrAnalysisMissing means the profile exists but Analyze has never run,
// so there is nothing to base advice on yet.
var ErrAnalysisMissing = errors.New("no analysis available, run analysis first")

type AdviceService struct {
	profileRepo *repository.ProfileRepository
	engine      *advice.Engine
	bot         *advice.Chatbot
	logger      *zap.Logger
}

func NewAdviceService(
	profileRepo *repository.ProfileRepository,
	engine *advice.Engine,
	bot *advice.Chatbot,
	logger *zap.Logger,
) *AdviceService {
	return &AdviceService{
		profileRepo: profileRepo,
		engine:      engine,
		bot:         bot,
		logger:      logger,
	}
}

func (s *AdviceService) Suggestions(ctx context.Context, userID uuid.UUID) (*dto.SuggestionsResponse, error) {
	profile, record, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &dto.SuggestionsResponse{Suggestions: s.engine.Suggestions(profile, record)}, nil
}

func (s *AdviceService) Budget(ctx context.Context, userID uuid.UUID) (*dto.BudgetResponse, error) {
	profile, record, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &dto.BudgetResponse{
		MonthlyIncome:   record.MonthlyIncomeAvg.StringFixed(2),
		Recommendations: s.engine.Budget(profile, record),
	}, nil
}

func (s *AdviceService) Tips(ctx context.Context, userID uuid.UUID) (*dto.TipsResponse, error) {
	profile, record, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &dto.TipsResponse{Tips: s.engine.QuickTips(profile, record)}, nil
}

// Chat works with or without a profile: without one the reply is generic
// and the suggested questions come from the starter list.
func (s *AdviceService) Chat(ctx context.Context, userID uuid.UUID, message string) (*dto.ChatResponse, error) {
	var (
		profile *models.UserProfile
		record  *models.AnalysisRecord
	)
	if p, err := s.profileRepo.Get(ctx, userID); err == nil {
		profile = p
		record = p.TransactionAnalysis
	} else if !errors.Is(err, repository.ErrProfileNotFound) {
		return nil, err
	}

	return &dto.ChatResponse{
		Reply:              s.bot.Reply(message, profile, record),
		SuggestedQuestions: s.bot.SuggestedQuestions(profile, record),
	}, nil
}

func (s *AdviceService) SuggestedQuestions(ctx context.Context, userID uuid.UUID) ([]string, error) {
	profile, err := s.profileRepo.Get(ctx, userID)
	if errors.Is(err, repository.ErrProfileNotFound) {
		return s.bot.SuggestedQuestions(nil, nil), nil
	}
	if err != nil {
		return nil, err
	}
	return s.bot.SuggestedQuestions(profile, profile.TransactionAnalysis), nil
}

func (s *AdviceService) load(ctx context.Context, userID uuid.UUID) (*models.UserProfile, *models.AnalysisRecord, error) {
	profile, err := s.profileRepo.Get(ctx, userID)
	if errors.Is(err, repository.ErrProfileNotFound) {
		return nil, nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, nil, err
	}
	if profile.TransactionAnalysis == nil {
		return nil, nil, ErrAnalysisMissing
	}
	return profile, profile.TransactionAnalysis, nil
}
