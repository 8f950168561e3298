package repositories

import (
	"errors"
	"strings"

	"github.com/VINNUMaharana0112/InnoMind-Physics-Master/internal/models"
)

// ===== SHARED FILTER STRUCTS =====

// TagFilters carries a partial ContentTag; only non-nil fields are applied,
// each as an exact-match equality condition. No range or prefix queries.
type TagFilters struct {
	Course *string `json:"course"`
	Board  *string `json:"board"`
	Year   *string `json:"year"`
	Paper  *string `json:"paper"`
	Block  *string `json:"block"`
	Topic  *string `json:"topic"`
}

type StaticResourceFilters struct {
	TagFilters
	Type *models.ResourceType `json:"type"`
}

type QAFilters struct {
	TagFilters
	Type *models.QuestionType `json:"type"`
}

type MCQFilters struct {
	TagFilters
}

type AccountFilters struct {
	PaymentStatus *models.PaymentStatus `json:"payment_status"`
	Role          *models.UserRole      `json:"role"`
	Limit         int                   `json:"limit"`
	Offset        int                   `json:"offset"`
}

// ===== SHARED ERROR HELPERS =====

var (
	ErrNotFound       = errors.New("record not found")
	ErrDuplicateEmail = errors.New("email already registered")
)

func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrDuplicateEmail) {
		return true
	}
	// Postgres unique violations surface as 23505 through the driver.
	return strings.Contains(err.Error(), "23505") ||
		strings.Contains(err.Error(), "duplicate key")
}
