package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"finsight/internal/categorizer"
	"finsight/internal/dto"
	"finsight/internal/ingest"
	"finsight/internal/models"
	"finsight/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrStatementNotFound = errors.New("statement not found")
	ErrNotOwner          = errors.New("statement belongs to another user")
)

type StatementService struct {
	stRepo    *repository.StatementRepository
	txRepo    *repository.TransactionRepository
	uploadDir string
	exportDir string
	logger    *zap.Logger
}

func NewStatementService(
	stRepo *repository.StatementRepository,
	txRepo *repository.TransactionRepository,
	uploadDir string,
	exportDir string,
	logger *zap.Logger,
) *StatementService {
	for _, dir := range []string{uploadDir, exportDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			logger.Warn("Failed to create storage directory", zap.String("dir", dir), zap.Error(err))
		}
	}

	return &StatementService{
		stRepo:    stRepo,
		txRepo:    txRepo,
		uploadDir: uploadDir,
		exportDir: exportDir,
		logger:    logger,
	}
}

// Upload saves the raw statement file and records it. Parsing happens in
// a separate Process call so a bad file never loses the upload.
func (s *StatementService) Upload(ctx context.Context, userID uuid.UUID, file io.Reader, fileName string, source models.StatementSource) (*dto.StatementResponse, error) {
	fileID := uuid.New()
	ext := filepath.Ext(fileName)
	storedName := fileID.String() + ext
	filePath := filepath.Join(s.uploadDir, storedName)

	dst, err := os.Create(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	fileSize, err := io.Copy(dst, file)
	if err != nil {
		os.Remove(filePath)
		return nil, fmt.Errorf("failed to save file: %w", err)
	}

	now := time.Now()
	st := &models.Statement{
		ID:        fileID,
		UserID:    userID,
		Source:    source,
		FileName:  fileName,
		FileSize:  fileSize,
		FileURL:   "/uploads/" + storedName,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.stRepo.Create(ctx, st); err != nil {
		os.Remove(filePath)
		return nil, fmt.Errorf("failed to create statement record: %w", err)
	}

	return statementResponse(st), nil
}

// Process parses an uploaded statement, categorizes every row, stores
// the transactions and writes the categorized CSV export.
func (s *StatementService) Process(ctx context.Context, userID uuid.UUID, statementID uuid.UUID) (*dto.ProcessStatementResponse, error) {
	st, err := s.stRepo.GetByID(ctx, statementID)
	if err != nil {
		return nil, ErrStatementNotFound
	}
	if st.UserID != userID {
		return nil, ErrNotOwner
	}

	filePath := filepath.Join(s.uploadDir, filepath.Base(st.FileURL))
	rows, err := s.parseFile(filePath, st.Source)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	table := make([]models.Transaction, len(rows))
	for i, row := range rows {
		table[i] = models.Transaction{
			ID:          uuid.New(),
			StatementID: st.ID,
			UserID:      userID,
			Date:        row.Date,
			Description: row.Description,
			Amount:      row.Amount,
			Type:        row.Type,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
	}
	table = categorizer.CategorizeBatch(table)

	batch := make([]*models.Transaction, len(table))
	for i := range table {
		batch[i] = &table[i]
	}
	if err := s.txRepo.CreateBatch(ctx, batch); err != nil {
		return nil, fmt.Errorf("failed to save transactions: %w", err)
	}

	exportURL, err := s.writeExport(st.ID, table)
	if err != nil {
		// The export is a convenience copy; the transactions are
		// already persisted.
		s.logger.Warn("Failed to write categorized export", zap.Error(err))
		exportURL = ""
	}

	resp := &dto.ProcessStatementResponse{
		Statement:    *statementResponse(st),
		Transactions: make([]dto.TransactionResponse, len(table)),
		ExportURL:    exportURL,
	}
	for i, tx := range table {
		resp.Transactions[i] = dto.TransactionResponse{
			ID:          tx.ID.String(),
			Date:        tx.Date.Format("2006-01-02"),
			Description: tx.Description,
			Amount:      tx.Amount,
			Type:        string(tx.Type),
			Category:    string(tx.Category),
			CreatedAt:   tx.CreatedAt.Format(time.RFC3339),
		}
	}
	return resp, nil
}

// List returns the user's uploaded statements, newest first.
func (s *StatementService) List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*dto.StatementResponse, error) {
	statements, err := s.stRepo.ListByUserID(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.StatementResponse, len(statements))
	for i, st := range statements {
		responses[i] = statementResponse(st)
	}
	return responses, nil
}

func (s *StatementService) parseFile(filePath string, source models.StatementSource) ([]ingest.Row, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open statement file: %w", err)
	}
	defer f.Close()

	switch source {
	case models.StatementSourceCSV:
		return ingest.ParseCSV(f)
	case models.StatementSourceText:
		text, err := io.ReadAll(f)
		if err != nil {
			return nil, fmt.Errorf("failed to read statement text: %w", err)
		}
		return ingest.ParseStatementText(string(text)), nil
	default:
		return nil, fmt.Errorf("unknown statement source %q", source)
	}
}

func (s *StatementService) writeExport(statementID uuid.UUID, table []models.Transaction) (string, error) {
	name := statementID.String() + "_categorized.csv"
	f, err := os.Create(filepath.Join(s.exportDir, name))
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := ingest.WriteCSV(f, table); err != nil {
		return "", err
	}
	return "/exports/" + name, nil
}

func statementResponse(st *models.Statement) *dto.StatementResponse {
	return &dto.StatementResponse{
		ID:        st.ID.String(),
		Source:    string(st.Source),
		FileName:  st.FileName,
		FileSize:  st.FileSize,
		FileURL:   st.FileURL,
		CreatedAt: st.CreatedAt.Format(time.RFC3339),
	}
}
