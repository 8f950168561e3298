package services

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/VINNUMaharana0112/InnoMind-Physics-Master/internal/repositories"
)

type exportService struct {
	repo   repositories.Repository
	logger *slog.Logger
}

func NewExportService(repo repositories.Repository, logger *slog.Logger) ExportService {
	return &exportService{
		repo:   repo,
		logger: logger,
	}
}

// ExportAccounts writes every account to a single-sheet xlsx workbook.
// Password hashes never leave the database.
func (s *exportService) ExportAccounts(ctx context.Context, adminID uint) ([]byte, error) {
	if err := s.authorize(ctx, adminID, "accounts"); err != nil {
		return nil, err
	}

	accounts, _, err := s.repo.Account().List(ctx, repositories.AccountFilters{})
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	xl := excelize.NewFile()
	defer func() { _ = xl.Close() }()

	sheet := "Accounts"
	xl.SetSheetName(xl.GetSheetName(0), sheet)

	header := []string{"id", "name", "email", "phone", "role", "payment_status", "transaction_id", "created_at"}
	if err := xl.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write header row: %w", err)
	}

	for i, account := range accounts {
		txnID := ""
		if account.TransactionID != nil {
			txnID = *account.TransactionID
		}
		record := []string{
			strconv.FormatUint(uint64(account.ID), 10),
			account.Name,
			account.Email,
			account.Phone,
			string(account.Role),
			string(account.PaymentStatus),
			txnID,
			account.JoinedAt.UTC().Format(time.RFC3339),
		}
		cellRef, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("failed to compute cell reference: %w", err)
		}
		if err := xl.SetSheetRow(sheet, cellRef, &record); err != nil {
			return nil, fmt.Errorf("failed to write account row: %w", err)
		}
	}

	buf, err := xl.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}

	s.logger.Info("Accounts exported", "count", len(accounts), "admin_id", adminID)

	return buf.Bytes(), nil
}

// ExportQABank writes the (optionally tag-filtered) Q&A bank to xlsx.
func (s *exportService) ExportQABank(ctx context.Context, filters repositories.QAFilters, adminID uint) ([]byte, error) {
	if err := s.authorize(ctx, adminID, "qa_bank"); err != nil {
		return nil, err
	}

	entries, err := s.repo.QA().ListByTag(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list qa entries: %w", err)
	}

	xl := excelize.NewFile()
	defer func() { _ = xl.Close() }()

	sheet := "QA Bank"
	xl.SetSheetName(xl.GetSheetName(0), sheet)

	header := []string{"id", "course", "board", "year", "paper", "block", "topic", "type", "question_text", "answer_latex", "image_url", "created_at"}
	if err := xl.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write header row: %w", err)
	}

	for i, entry := range entries {
		imageURL := ""
		if entry.ImageURL != nil {
			imageURL = *entry.ImageURL
		}
		record := []string{
			strconv.FormatUint(uint64(entry.ID), 10),
			entry.Tag.Course,
			entry.Tag.Board,
			entry.Tag.Year,
			entry.Tag.Paper,
			entry.Tag.Block,
			entry.Tag.Topic,
			string(entry.Type),
			entry.QuestionText,
			entry.AnswerLatex,
			imageURL,
			entry.CreatedAt.UTC().Format(time.RFC3339),
		}
		cellRef, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("failed to compute cell reference: %w", err)
		}
		if err := xl.SetSheetRow(sheet, cellRef, &record); err != nil {
			return nil, fmt.Errorf("failed to write qa row: %w", err)
		}
	}

	buf, err := xl.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}

	s.logger.Info("Q&A bank exported", "count", len(entries), "admin_id", adminID)

	return buf.Bytes(), nil
}

func (s *exportService) authorize(ctx context.Context, adminID uint, resource string) error {
	isAdmin, err := isAdminAccount(ctx, s.repo, adminID)
	if err != nil {
		return fmt.Errorf("permission check failed: %w", err)
	}
	if !isAdmin {
		return NewPermissionError(adminID, 0, resource, "export", "admin role required")
	}
	return nil
}
