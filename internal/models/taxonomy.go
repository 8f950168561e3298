package models

import (
	"time"

	"gorm.io/datatypes"
)

// TaxonomyField names one of the six ordered option lists that drive every
// selector in the app.
type TaxonomyField string

const (
	FieldCourses TaxonomyField = "courses"
	FieldBoards  TaxonomyField = "boards"
	FieldYears   TaxonomyField = "years"
	FieldPapers  TaxonomyField = "papers"
	FieldBlocks  TaxonomyField = "blocks"
	FieldTopics  TaxonomyField = "topics"
)

// TaxonomyFields lists all fields in display order (course → topic).
var TaxonomyFields = []TaxonomyField{
	FieldCourses, FieldBoards, FieldYears, FieldPapers, FieldBlocks, FieldTopics,
}

func (f TaxonomyField) Valid() bool {
	for _, known := range TaxonomyFields {
		if f == known {
			return true
		}
	}
	return false
}

// StructureKey is the primary key of the single TaxonomyStructure row.
const StructureKey = "structure"

// TaxonomyStructure is a singleton record holding the six option lists.
// Lists grow only by admin append; there is no delete or reorder path.
type TaxonomyStructure struct {
	Key     string                         `json:"key" gorm:"primaryKey;size:50"`
	Courses datatypes.JSONSlice[string]    `json:"courses" gorm:"type:jsonb"`
	Boards  datatypes.JSONSlice[string]    `json:"boards" gorm:"type:jsonb"`
	Years   datatypes.JSONSlice[string]    `json:"years" gorm:"type:jsonb"`
	Papers  datatypes.JSONSlice[string]    `json:"papers" gorm:"type:jsonb"`
	Blocks  datatypes.JSONSlice[string]    `json:"blocks" gorm:"type:jsonb"`
	Topics  datatypes.JSONSlice[string]    `json:"topics" gorm:"type:jsonb"`

	UpdatedAt time.Time `json:"updated_at"`
}

func (TaxonomyStructure) TableName() string {
	return "lms_metadata"
}

// Options returns the ordered list for field, or nil for an unknown field.
func (t *TaxonomyStructure) Options(field TaxonomyField) []string {
	switch field {
	case FieldCourses:
		return t.Courses
	case FieldBoards:
		return t.Boards
	case FieldYears:
		return t.Years
	case FieldPapers:
		return t.Papers
	case FieldBlocks:
		return t.Blocks
	case FieldTopics:
		return t.Topics
	}
	return nil
}

// SetOptions replaces the list for field. Unknown fields are ignored.
func (t *TaxonomyStructure) SetOptions(field TaxonomyField, values []string) {
	switch field {
	case FieldCourses:
		t.Courses = values
	case FieldBoards:
		t.Boards = values
	case FieldYears:
		t.Years = values
	case FieldPapers:
		t.Papers = values
	case FieldBlocks:
		t.Blocks = values
	case FieldTopics:
		t.Topics = values
	}
}
