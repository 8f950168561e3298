package models

import (
	"time"

	"gorm.io/datatypes"
)

// ContentTag is the six-level classification embedded in every tagged
// content record. A record is complete only when all six fields are set.
type ContentTag struct {
	Course string `json:"course" gorm:"not null;size:100;index" validate:"required"`
	Board  string `json:"board" gorm:"not null;size:100;index" validate:"required"`
	Year   string `json:"year" gorm:"not null;size:100" validate:"required"`
	Paper  string `json:"paper" gorm:"not null;size:100" validate:"required"`
	Block  string `json:"block" gorm:"not null;size:100" validate:"required"`
	Topic  string `json:"topic" gorm:"not null;size:100;index" validate:"required"`
}

// IsComplete reports whether all six taxonomy fields are present.
func (t ContentTag) IsComplete() bool {
	return t.Course != "" && t.Board != "" && t.Year != "" &&
		t.Paper != "" && t.Block != "" && t.Topic != ""
}

// MissingFields returns the names of unset tag fields, in hierarchy order.
func (t ContentTag) MissingFields() []string {
	var missing []string
	for _, f := range []struct {
		name  string
		value string
	}{
		{"course", t.Course},
		{"board", t.Board},
		{"year", t.Year},
		{"paper", t.Paper},
		{"block", t.Block},
		{"topic", t.Topic},
	} {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}

type ResourceType string

const (
	ResourceTheoryNote  ResourceType = "Theory Note"
	ResourceAssignments ResourceType = "Assignments"
	ResourceDerivations ResourceType = "Derivations"
	ResourceProblems    ResourceType = "Problems"
)

// StaticResource is a PDF (usually a Drive link) tagged into the hierarchy.
type StaticResource struct {
	ID  uint       `json:"id" gorm:"primaryKey"`
	Tag ContentTag `json:"tag" gorm:"embedded"`

	Type        ResourceType `json:"type" gorm:"not null;index" validate:"required,oneof='Theory Note' Assignments Derivations Problems"`
	Title       string       `json:"title" gorm:"not null;size:200" validate:"required,max=200"`
	FileURL     string       `json:"file_url" gorm:"not null;size:500" validate:"required,url"`
	IsDriveLink bool         `json:"is_drive_link" gorm:"default:true"`

	CreatedAt time.Time `json:"created_at"`
}

func (StaticResource) TableName() string {
	return "lms_static_files"
}

type QuestionType string

const (
	QuestionSAQ      QuestionType = "SAQs"
	QuestionPYQ      QuestionType = "PYQs"
	QuestionTerminal QuestionType = "Terminal Questions"
)

// QAEntry is a searchable question with a LaTeX answer. QuestionText is
// the only searchable field.
type QAEntry struct {
	ID  uint       `json:"id" gorm:"primaryKey"`
	Tag ContentTag `json:"tag" gorm:"embedded"`

	Type         QuestionType `json:"type" gorm:"not null;index" validate:"required,oneof=SAQs PYQs 'Terminal Questions'"`
	QuestionText string       `json:"question_text" gorm:"type:text;not null" validate:"required"`
	AnswerLatex  string       `json:"answer_latex" gorm:"type:text;not null" validate:"required"`
	ImageURL     *string      `json:"image_url" gorm:"size:500" validate:"omitempty,url"`

	CreatedAt time.Time `json:"created_at"`
}

func (QAEntry) TableName() string {
	return "lms_qa_database"
}

type OptionKey string

const (
	OptionA OptionKey = "A"
	OptionB OptionKey = "B"
	OptionC OptionKey = "C"
	OptionD OptionKey = "D"
)

// MCQEntry is a four-option quiz question. CorrectKey must index an
// existing option.
type MCQEntry struct {
	ID  uint       `json:"id" gorm:"primaryKey"`
	Tag ContentTag `json:"tag" gorm:"embedded"`

	Question         string                                    `json:"question" gorm:"type:text;not null" validate:"required"`
	Options          datatypes.JSONType[map[OptionKey]string] `json:"options" gorm:"type:jsonb"`
	CorrectKey       OptionKey                                 `json:"correct_key" gorm:"not null;size:1" validate:"required,oneof=A B C D"`
	ExplanationLatex string                                    `json:"explanation_latex" gorm:"type:text"`

	CreatedAt time.Time `json:"created_at"`
}

func (MCQEntry) TableName() string {
	return "lms_mcqs"
}

// HasOption reports whether key maps to a non-empty option text.
func (m *MCQEntry) HasOption(key OptionKey) bool {
	opts := m.Options.Data()
	text, ok := opts[key]
	return ok && text != ""
}

// LegacyResource is the flat, untagged upload format kept for the admin
// quick-upload variant.
type LegacyResource struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Title       string `json:"title" gorm:"not null;size:200" validate:"required,max=200"`
	Category    string `json:"category" gorm:"not null;size:100" validate:"required"`
	Description string `json:"description" gorm:"type:text"`
	Link        string `json:"link" gorm:"size:500" validate:"omitempty,url"`
	Content     string `json:"content" gorm:"type:text"`

	CreatedAt time.Time `json:"created_at"`
}

func (LegacyResource) TableName() string {
	return "physics_resources"
}
