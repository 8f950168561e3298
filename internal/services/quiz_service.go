package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/VINNUMaharana0112/InnoMind-Physics-Master/internal/models"
	"github.com/VINNUMaharana0112/InnoMind-Physics-Master/internal/repositories"
)

type quizService struct {
	repo   repositories.Repository
	logger *slog.Logger
}

func NewQuizService(repo repositories.Repository, logger *slog.Logger) QuizService {
	return &quizService{
		repo:   repo,
		logger: logger,
	}
}

// Check grades a single selection. It is a pure comparison against the
// stored key; no attempt record is written, and the explanation is the
// same for a right and a wrong answer.
func (s *quizService) Check(mcq *models.MCQEntry, selected models.OptionKey) QuizCheckResult {
	return QuizCheckResult{
		Correct:     selected == mcq.CorrectKey,
		CorrectKey:  mcq.CorrectKey,
		Explanation: mcq.ExplanationLatex,
	}
}

func (s *quizService) CheckByID(ctx context.Context, mcqID uint, selected models.OptionKey) (*QuizCheckResult, error) {
	mcq, err := s.repo.MCQ().GetByID(ctx, mcqID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrMCQNotFound
		}
		return nil, fmt.Errorf("failed to get mcq: %w", err)
	}

	result := s.Check(mcq, selected)
	return &result, nil
}
