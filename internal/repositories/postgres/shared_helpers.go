package postgres

import (
	"gorm.io/gorm"

	"github.com/VINNUMaharana0112/InnoMind-Physics-Master/internal/repositories"
)

// ApplyTagFilters adds an equality condition per supplied tag field.
// Nothing else: the store contract is equality filters only.
func ApplyTagFilters(query *gorm.DB, filters repositories.TagFilters) *gorm.DB {
	if filters.Course != nil {
		query = query.Where("course = ?", *filters.Course)
	}
	if filters.Board != nil {
		query = query.Where("board = ?", *filters.Board)
	}
	if filters.Year != nil {
		query = query.Where("year = ?", *filters.Year)
	}
	if filters.Paper != nil {
		query = query.Where("paper = ?", *filters.Paper)
	}
	if filters.Block != nil {
		query = query.Where("block = ?", *filters.Block)
	}
	if filters.Topic != nil {
		query = query.Where("topic = ?", *filters.Topic)
	}
	return query
}
