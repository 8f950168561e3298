package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/VINNUMaharana0112/InnoMind-Physics-Master/internal/models"
	"github.com/VINNUMaharana0112/InnoMind-Physics-Master/internal/repositories"
)

// ===== STATIC RESOURCES =====

type StaticResourcePostgreSQL struct {
	db *gorm.DB
}

func NewStaticResourcePostgreSQL(db *gorm.DB) repositories.StaticResourceRepository {
	return &StaticResourcePostgreSQL{db: db}
}

func (s *StaticResourcePostgreSQL) Create(ctx context.Context, resource *models.StaticResource) error {
	if err := s.db.WithContext(ctx).Create(resource).Error; err != nil {
		return fmt.Errorf("failed to create static resource: %w", err)
	}
	return nil
}

func (s *StaticResourcePostgreSQL) ListByTag(ctx context.Context, filters repositories.StaticResourceFilters) ([]*models.StaticResource, error) {
	query := ApplyTagFilters(s.db.WithContext(ctx).Model(&models.StaticResource{}), filters.TagFilters)
	if filters.Type != nil {
		query = query.Where("type = ?", *filters.Type)
	}

	var resources []*models.StaticResource
	if err := query.Find(&resources).Error; err != nil {
		return nil, fmt.Errorf("failed to list static resources: %w", err)
	}
	return resources, nil
}

// ===== Q&A ENTRIES =====

type QAPostgreSQL struct {
	db *gorm.DB
}

func NewQAPostgreSQL(db *gorm.DB) repositories.QARepository {
	return &QAPostgreSQL{db: db}
}

func (q *QAPostgreSQL) Create(ctx context.Context, entry *models.QAEntry) error {
	if err := q.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("failed to create qa entry: %w", err)
	}
	return nil
}

func (q *QAPostgreSQL) ListByTag(ctx context.Context, filters repositories.QAFilters) ([]*models.QAEntry, error) {
	query := ApplyTagFilters(q.db.WithContext(ctx).Model(&models.QAEntry{}), filters.TagFilters)
	if filters.Type != nil {
		query = query.Where("type = ?", *filters.Type)
	}

	var entries []*models.QAEntry
	if err := query.Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to list qa entries: %w", err)
	}
	return entries, nil
}

// ===== MCQ ENTRIES =====

type MCQPostgreSQL struct {
	db *gorm.DB
}

func NewMCQPostgreSQL(db *gorm.DB) repositories.MCQRepository {
	return &MCQPostgreSQL{db: db}
}

func (m *MCQPostgreSQL) Create(ctx context.Context, entry *models.MCQEntry) error {
	if err := m.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("failed to create mcq entry: %w", err)
	}
	return nil
}

func (m *MCQPostgreSQL) GetByID(ctx context.Context, id uint) (*models.MCQEntry, error) {
	var entry models.MCQEntry
	if err := m.db.WithContext(ctx).First(&entry, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repositories.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get mcq entry: %w", err)
	}
	return &entry, nil
}

func (m *MCQPostgreSQL) ListByTag(ctx context.Context, filters repositories.MCQFilters) ([]*models.MCQEntry, error) {
	query := ApplyTagFilters(m.db.WithContext(ctx).Model(&models.MCQEntry{}), filters.TagFilters)

	var entries []*models.MCQEntry
	if err := query.Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to list mcq entries: %w", err)
	}
	return entries, nil
}

// ===== LEGACY RESOURCES =====

type LegacyResourcePostgreSQL struct {
	db *gorm.DB
}

func NewLegacyResourcePostgreSQL(db *gorm.DB) repositories.LegacyResourceRepository {
	return &LegacyResourcePostgreSQL{db: db}
}

func (l *LegacyResourcePostgreSQL) Create(ctx context.Context, resource *models.LegacyResource) error {
	if err := l.db.WithContext(ctx).Create(resource).Error; err != nil {
		return fmt.Errorf("failed to create legacy resource: %w", err)
	}
	return nil
}

func (l *LegacyResourcePostgreSQL) List(ctx context.Context) ([]*models.LegacyResource, error) {
	var resources []*models.LegacyResource
	if err := l.db.WithContext(ctx).Find(&resources).Error; err != nil {
		return nil, fmt.Errorf("failed to list legacy resources: %w", err)
	}
	return resources, nil
}
