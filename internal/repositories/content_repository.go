package repositories

import (
	"context"

	"github.com/VINNUMaharana0112/InnoMind-Physics-Master/internal/models"
)

// The content repositories expose create and tag-filtered list only; no
// update or delete path exists for content records.

type StaticResourceRepository interface {
	Create(ctx context.Context, resource *models.StaticResource) error
	ListByTag(ctx context.Context, filters StaticResourceFilters) ([]*models.StaticResource, error)
}

type QARepository interface {
	Create(ctx context.Context, entry *models.QAEntry) error
	ListByTag(ctx context.Context, filters QAFilters) ([]*models.QAEntry, error)
}

type MCQRepository interface {
	Create(ctx context.Context, entry *models.MCQEntry) error
	GetByID(ctx context.Context, id uint) (*models.MCQEntry, error)
	ListByTag(ctx context.Context, filters MCQFilters) ([]*models.MCQEntry, error)
}

type LegacyResourceRepository interface {
	Create(ctx context.Context, resource *models.LegacyResource) error
	List(ctx context.Context) ([]*models.LegacyResource, error)
}
