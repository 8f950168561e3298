package validator

import (
	"github.com/VINNUMaharana0112/InnoMind-Physics-Master/internal/models"
)

// RegisterRequest creates a student account.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Phone    string `json:"phone" validate:"omitempty,max=20"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SubmitPaymentRequest records the student-entered transaction id for
// manual admin verification.
type SubmitPaymentRequest struct {
	TransactionID string `json:"transaction_id" validate:"required,max=100"`
}

type AppendOptionRequest struct {
	Field models.TaxonomyField `json:"field" validate:"required,taxonomy_field"`
	Value string               `json:"value" validate:"required,max=100"`
}

type TagRequest struct {
	Course string `json:"course" validate:"required"`
	Board  string `json:"board" validate:"required"`
	Year   string `json:"year" validate:"required"`
	Paper  string `json:"paper" validate:"required"`
	Block  string `json:"block" validate:"required"`
	Topic  string `json:"topic" validate:"required"`
}

func (r TagRequest) ToTag() models.ContentTag {
	return models.ContentTag{
		Course: r.Course,
		Board:  r.Board,
		Year:   r.Year,
		Paper:  r.Paper,
		Block:  r.Block,
		Topic:  r.Topic,
	}
}

type CreateStaticResourceRequest struct {
	Tag         TagRequest          `json:"tag"`
	Type        models.ResourceType `json:"type" validate:"required,oneof='Theory Note' Assignments Derivations Problems"`
	Title       string              `json:"title" validate:"required,max=200"`
	FileURL     string              `json:"file_url" validate:"required,url"`
	IsDriveLink bool                `json:"is_drive_link"`
}

type CreateQARequest struct {
	Tag          TagRequest          `json:"tag"`
	Type         models.QuestionType `json:"type" validate:"required,oneof=SAQs PYQs 'Terminal Questions'"`
	QuestionText string              `json:"question_text" validate:"required"`
	AnswerLatex  string              `json:"answer_latex" validate:"required"`
	ImageURL     *string             `json:"image_url" validate:"omitempty,url"`
}

type CreateMCQRequest struct {
	Tag              TagRequest                  `json:"tag"`
	Question         string                      `json:"question" validate:"required"`
	Options          map[models.OptionKey]string `json:"options" validate:"required"`
	CorrectKey       models.OptionKey            `json:"correct_key" validate:"required,option_key"`
	ExplanationLatex string                      `json:"explanation_latex"`
}

type CreateLegacyResourceRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Category    string `json:"category" validate:"required,max=100"`
	Description string `json:"description"`
	Link        string `json:"link" validate:"omitempty,url"`
	Content     string `json:"content"`
}

// SolveRequest forwards a question to the AI fallback, optionally with a
// base64-encoded image.
type SolveRequest struct {
	Question    string `json:"question" validate:"required"`
	ImageBase64 string `json:"image_base64"`
	ImageMIME   string `json:"image_mime" validate:"omitempty,oneof=image/png image/jpeg image/webp"`
}

type QuizCheckRequest struct {
	SelectedKey models.OptionKey `json:"selected_key" validate:"required,option_key"`
}
