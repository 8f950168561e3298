package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/VINNUMaharana0112/InnoMind-Physics-Master/internal/models"
	"github.com/VINNUMaharana0112/InnoMind-Physics-Master/internal/repositories"
	"github.com/VINNUMaharana0112/InnoMind-Physics-Master/internal/validator"
)

type taxonomyService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
}

func NewTaxonomyService(repo repositories.Repository, logger *slog.Logger, validator *validator.Validator) TaxonomyService {
	return &taxonomyService{
		repo:      repo,
		logger:    logger,
		validator: validator,
	}
}

// GetOptions returns the ordered labels for one selector. A missing
// structure record or unknown field is an empty list, never an error:
// every dropdown must render even on a fresh database.
func (s *taxonomyService) GetOptions(ctx context.Context, field models.TaxonomyField) ([]string, error) {
	if !field.Valid() {
		return []string{}, nil
	}

	structure, err := s.repo.Taxonomy().Get(ctx)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to get taxonomy structure: %w", err)
	}

	options := structure.Options(field)
	if options == nil {
		return []string{}, nil
	}
	return options, nil
}

func (s *taxonomyService) AppendOption(ctx context.Context, req *AppendOptionRequest, adminID uint) (*AppendOptionResult, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	isAdmin, err := isAdminAccount(ctx, s.repo, adminID)
	if err != nil {
		return nil, fmt.Errorf("permission check failed: %w", err)
	}
	if !isAdmin {
		return nil, NewPermissionError(adminID, 0, "taxonomy", "append", "admin role required")
	}

	value := strings.TrimSpace(req.Value)
	if value == "" {
		return &AppendOptionResult{Appended: false, Message: "value must not be empty"}, nil
	}

	appended, err := s.repo.Taxonomy().AppendOption(ctx, req.Field, value)
	if err != nil {
		return nil, fmt.Errorf("failed to append option: %w", err)
	}

	if !appended {
		return &AppendOptionResult{Appended: false, Message: fmt.Sprintf("%q already exists in %s", value, req.Field)}, nil
	}

	s.logger.Info("Taxonomy option appended", "field", req.Field, "value", value, "admin_id", adminID)

	return &AppendOptionResult{Appended: true, Message: fmt.Sprintf("%q added to %s", value, req.Field)}, nil
}
