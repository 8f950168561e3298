package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/VINNUMaharana0112/InnoMind-Physics-Master/internal/cache"
	"github.com/VINNUMaharana0112/InnoMind-Physics-Master/internal/models"
	"github.com/VINNUMaharana0112/InnoMind-Physics-Master/internal/repositories"
)

type TaxonomyPostgreSQL struct {
	db           *gorm.DB
	cacheManager *cache.CacheManager
}

func NewTaxonomyPostgreSQL(db *gorm.DB, cacheManager *cache.CacheManager) repositories.TaxonomyRepository {
	return &TaxonomyPostgreSQL{
		db:           db,
		cacheManager: cacheManager,
	}
}

func (t *TaxonomyPostgreSQL) Get(ctx context.Context) (*models.TaxonomyStructure, error) {
	var structure models.TaxonomyStructure

	err := t.cacheManager.Taxonomy.CacheOrExecute(ctx, models.StructureKey, &structure, cache.TaxonomyCacheConfig.TTL, func() (interface{}, error) {
		var dbStructure models.TaxonomyStructure
		if err := t.db.WithContext(ctx).Where("key = ?", models.StructureKey).First(&dbStructure).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, repositories.ErrNotFound
			}
			return nil, fmt.Errorf("failed to get taxonomy structure: %w", err)
		}
		return &dbStructure, nil
	})
	if err != nil {
		return nil, err
	}

	return &structure, nil
}

// AppendOption performs the duplicate check and the append inside one
// transaction with the structure row locked, so two admins appending to the
// same field cannot drop each other's write.
func (t *TaxonomyPostgreSQL) AppendOption(ctx context.Context, field models.TaxonomyField, value string) (bool, error) {
	appended := false

	err := t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var structure models.TaxonomyStructure
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("key = ?", models.StructureKey).
			First(&structure).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			structure = models.TaxonomyStructure{Key: models.StructureKey}
			if err := tx.Create(&structure).Error; err != nil {
				return fmt.Errorf("failed to create taxonomy structure: %w", err)
			}
		} else if err != nil {
			return fmt.Errorf("failed to lock taxonomy structure: %w", err)
		}

		options := structure.Options(field)
		for _, existing := range options {
			if existing == value {
				return nil // already present, no-op
			}
		}

		structure.SetOptions(field, append(options, value))
		if err := tx.Save(&structure).Error; err != nil {
			return fmt.Errorf("failed to append taxonomy option: %w", err)
		}

		appended = true
		return nil
	})
	if err != nil {
		return false, err
	}

	// stale entry expires via TTL
	_ = t.cacheManager.Taxonomy.Delete(ctx, models.StructureKey)

	return appended, nil
}
