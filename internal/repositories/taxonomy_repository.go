package repositories

import (
	"context"

	"github.com/VINNUMaharana0112/InnoMind-Physics-Master/internal/models"
)

// TaxonomyRepository handles the lms_metadata structure singleton.
type TaxonomyRepository interface {
	// Get returns the structure record, or ErrNotFound when it has never
	// been written.
	Get(ctx context.Context) (*models.TaxonomyStructure, error)

	// AppendOption appends value to the field's list inside a transaction,
	// creating the structure row on first use. Returns false without error
	// when the value is already present (case-sensitive exact match).
	AppendOption(ctx context.Context, field models.TaxonomyField, value string) (bool, error)
}
