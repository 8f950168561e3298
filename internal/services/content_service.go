package services

import (
	"context"
	"fmt"
	"log/slog"

	"gorm.io/datatypes"

	"github.com/VINNUMaharana0112/InnoMind-Physics-Master/internal/events"
	"github.com/VINNUMaharana0112/InnoMind-Physics-Master/internal/models"
	"github.com/VINNUMaharana0112/InnoMind-Physics-Master/internal/repositories"
	"github.com/VINNUMaharana0112/InnoMind-Physics-Master/internal/validator"
)

type contentService struct {
	repo      repositories.Repository
	publisher events.EventPublisher
	logger    *slog.Logger
	validator *validator.Validator
}

func NewContentService(repo repositories.Repository, publisher events.EventPublisher, logger *slog.Logger, validator *validator.Validator) ContentService {
	return &contentService{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
		validator: validator,
	}
}

// ===== CREATION (ADMIN ONLY) =====

func (s *contentService) CreateStaticResource(ctx context.Context, req *CreateStaticResourceRequest, adminID uint) (*models.StaticResource, error) {
	if err := s.authorize(ctx, adminID, "static_resource"); err != nil {
		return nil, err
	}
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	tag := req.Tag.ToTag()
	if errs := s.validator.GetBusinessValidator().ValidateContentTag(tag); len(errs) > 0 {
		return nil, errs
	}

	resource := &models.StaticResource{
		Tag:         tag,
		Type:        req.Type,
		Title:       req.Title,
		FileURL:     req.FileURL,
		IsDriveLink: req.IsDriveLink,
	}

	if err := s.repo.StaticResource().Create(ctx, resource); err != nil {
		return nil, fmt.Errorf("failed to create static resource: %w", err)
	}

	s.logger.Info("Static resource created", "resource_id", resource.ID, "type", resource.Type, "topic", tag.Topic, "admin_id", adminID)
	s.publishCreated(ctx, "static_resource", resource.ID, adminID)

	return resource, nil
}

func (s *contentService) CreateQA(ctx context.Context, req *CreateQARequest, adminID uint) (*models.QAEntry, error) {
	if err := s.authorize(ctx, adminID, "qa_entry"); err != nil {
		return nil, err
	}
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	tag := req.Tag.ToTag()
	if errs := s.validator.GetBusinessValidator().ValidateContentTag(tag); len(errs) > 0 {
		return nil, errs
	}

	entry := &models.QAEntry{
		Tag:          tag,
		Type:         req.Type,
		QuestionText: req.QuestionText,
		AnswerLatex:  req.AnswerLatex,
		ImageURL:     req.ImageURL,
	}

	if err := s.repo.QA().Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to create qa entry: %w", err)
	}

	s.logger.Info("Q&A entry created", "entry_id", entry.ID, "type", entry.Type, "topic", tag.Topic, "admin_id", adminID)
	s.publishCreated(ctx, "qa_entry", entry.ID, adminID)

	return entry, nil
}

func (s *contentService) CreateMCQ(ctx context.Context, req *CreateMCQRequest, adminID uint) (*models.MCQEntry, error) {
	if err := s.authorize(ctx, adminID, "mcq"); err != nil {
		return nil, err
	}

	// ValidateMCQCreate covers struct tags, tag completeness, the four
	// option texts, and correct-key integrity in one pass.
	if errs := s.validator.GetBusinessValidator().ValidateMCQCreate(req); len(errs) > 0 {
		return nil, errs
	}

	entry := &models.MCQEntry{
		Tag:              req.Tag.ToTag(),
		Question:         req.Question,
		Options:          datatypes.NewJSONType(req.Options),
		CorrectKey:       req.CorrectKey,
		ExplanationLatex: req.ExplanationLatex,
	}

	if err := s.repo.MCQ().Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to create mcq: %w", err)
	}

	s.logger.Info("MCQ created", "mcq_id", entry.ID, "topic", entry.Tag.Topic, "admin_id", adminID)
	s.publishCreated(ctx, "mcq", entry.ID, adminID)

	return entry, nil
}

func (s *contentService) CreateLegacyResource(ctx context.Context, req *CreateLegacyResourceRequest, adminID uint) (*models.LegacyResource, error) {
	if err := s.authorize(ctx, adminID, "legacy_resource"); err != nil {
		return nil, err
	}
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	resource := &models.LegacyResource{
		Title:       req.Title,
		Category:    req.Category,
		Description: req.Description,
		Link:        req.Link,
		Content:     req.Content,
	}

	if err := s.repo.LegacyResource().Create(ctx, resource); err != nil {
		return nil, fmt.Errorf("failed to create legacy resource: %w", err)
	}

	s.logger.Info("Legacy resource created", "resource_id", resource.ID, "category", resource.Category, "admin_id", adminID)
	s.publishCreated(ctx, "legacy_resource", resource.ID, adminID)

	return resource, nil
}

// ===== LISTINGS =====

func (s *contentService) ListStaticResources(ctx context.Context, filters repositories.StaticResourceFilters) ([]*models.StaticResource, error) {
	resources, err := s.repo.StaticResource().ListByTag(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list static resources: %w", err)
	}
	return resources, nil
}

func (s *contentService) ListQA(ctx context.Context, filters repositories.QAFilters) ([]*models.QAEntry, error) {
	entries, err := s.repo.QA().ListByTag(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list qa entries: %w", err)
	}
	return entries, nil
}

func (s *contentService) ListMCQ(ctx context.Context, filters repositories.MCQFilters) ([]*models.MCQEntry, error) {
	entries, err := s.repo.MCQ().ListByTag(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list mcqs: %w", err)
	}
	return entries, nil
}

func (s *contentService) ListLegacyResources(ctx context.Context) ([]*models.LegacyResource, error) {
	resources, err := s.repo.LegacyResource().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list legacy resources: %w", err)
	}
	return resources, nil
}

// ===== HELPERS =====

func (s *contentService) authorize(ctx context.Context, adminID uint, resource string) error {
	isAdmin, err := isAdminAccount(ctx, s.repo, adminID)
	if err != nil {
		return fmt.Errorf("permission check failed: %w", err)
	}
	if !isAdmin {
		return NewPermissionError(adminID, 0, resource, "create", "admin role required")
	}
	return nil
}

func (s *contentService) publishCreated(ctx context.Context, contentKind string, contentID, adminID uint) {
	if s.publisher == nil {
		return
	}
	event := events.NewEvent(events.TypeContentCreated, map[string]interface{}{
		"content_kind": contentKind,
		"content_id":   contentID,
		"admin_id":     adminID,
	})
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("failed to publish event", "type", events.TypeContentCreated, "error", err)
	}
}
