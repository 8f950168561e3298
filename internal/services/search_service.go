package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/VINNUMaharana0112/InnoMind-Physics-Master/internal/ai"
	"github.com/VINNUMaharana0112/InnoMind-Physics-Master/internal/models"
	"github.com/VINNUMaharana0112/InnoMind-Physics-Master/internal/repositories"
	"github.com/VINNUMaharana0112/InnoMind-Physics-Master/internal/validator"
)

type searchService struct {
	repo      repositories.Repository
	solver    *ai.Solver
	logger    *slog.Logger
	validator *validator.Validator
}

func NewSearchService(repo repositories.Repository, solver *ai.Solver, logger *slog.Logger, validator *validator.Validator) SearchService {
	return &searchService{
		repo:      repo,
		solver:    solver,
		logger:    logger,
		validator: validator,
	}
}

// Search fetches the Q&A entries for the tag's topic and type, then keeps
// the ones whose question text contains the keyword case-insensitively.
// Matching happens here, not in SQL: the store only ever sees equality
// filters. A blank keyword returns an empty result without a fetch.
func (s *searchService) Search(ctx context.Context, tag models.ContentTag, qType models.QuestionType, keyword string) (*SearchResponse, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return &SearchResponse{Entries: []*models.QAEntry{}, Fallback: false}, nil
	}

	// The candidate set is scoped by topic and type only; the rest of the
	// tag does not narrow the fetch.
	filters := repositories.QAFilters{
		TagFilters: repositories.TagFilters{Topic: &tag.Topic},
		Type:       &qType,
	}

	entries, err := s.repo.QA().ListByTag(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch qa entries: %w", err)
	}

	needle := strings.ToLower(keyword)
	matched := []*models.QAEntry{}
	for _, entry := range entries {
		if strings.Contains(strings.ToLower(entry.QuestionText), needle) {
			matched = append(matched, entry)
		}
	}

	s.logger.Debug("Q&A search complete", "topic", tag.Topic, "type", qType, "fetched", len(entries), "matched", len(matched))

	return &SearchResponse{
		Entries:  matched,
		Fallback: len(matched) == 0,
	}, nil
}

// Solve hands the question to the AI solver. The solver degrades to a
// fixed unavailable message on any failure, so this always returns
// displayable text.
func (s *searchService) Solve(ctx context.Context, req *SolveRequest) string {
	if s.solver == nil {
		return ai.UnavailableMessage
	}
	if err := s.validator.Validate(req); err != nil {
		return ai.UnavailableMessage
	}
	return s.solver.Solve(ctx, req.Question, req.ImageBase64, req.ImageMIME)
}
