package services

import (
	"context"

	"github.com/VINNUMaharana0112/InnoMind-Physics-Master/internal/models"
	"github.com/VINNUMaharana0112/InnoMind-Physics-Master/internal/repositories"
	"github.com/VINNUMaharana0112/InnoMind-Physics-Master/internal/validator"
)

// ===== REQUEST/RESPONSE DTOs =====

// Use business validator types
type RegisterRequest = validator.RegisterRequest
type LoginRequest = validator.LoginRequest
type SubmitPaymentRequest = validator.SubmitPaymentRequest
type AppendOptionRequest = validator.AppendOptionRequest
type CreateStaticResourceRequest = validator.CreateStaticResourceRequest
type CreateQARequest = validator.CreateQARequest
type CreateMCQRequest = validator.CreateMCQRequest
type CreateLegacyResourceRequest = validator.CreateLegacyResourceRequest
type SolveRequest = validator.SolveRequest

type AccountResponse struct {
	*models.Account
	IsApproved bool `json:"is_approved"`
}

type AccountListResponse struct {
	Accounts []*AccountResponse `json:"accounts"`
	Total    int64              `json:"total"`
}

// AppendOptionResult reports whether the option was added or already there.
type AppendOptionResult struct {
	Appended bool   `json:"appended"`
	Message  string `json:"message"`
}

// QuizCheckResult is the outcome of checking one selected option. The
// explanation is identical whether or not the answer was correct.
type QuizCheckResult struct {
	Correct     bool             `json:"correct"`
	CorrectKey  models.OptionKey `json:"correct_key"`
	Explanation string           `json:"explanation"`
}

// SearchResponse carries matched entries; Fallback signals the client may
// offer the AI solver.
type SearchResponse struct {
	Entries  []*models.QAEntry `json:"entries"`
	Fallback bool              `json:"fallback_available"`
}

// ===== SERVICE INTERFACES =====

type AccountService interface {
	// Registration and authentication
	Register(ctx context.Context, req *RegisterRequest) (*AccountResponse, error)
	Authenticate(ctx context.Context, req *LoginRequest) (*AccountResponse, error)
	GetByID(ctx context.Context, id uint) (*AccountResponse, error)

	// Payment lifecycle: pending -> submitted -> {approved | pending}
	SubmitPayment(ctx context.Context, accountID uint, req *SubmitPaymentRequest) error
	Approve(ctx context.Context, accountID, adminID uint) error
	Reject(ctx context.Context, accountID, adminID uint) error

	// Admin listings
	List(ctx context.Context, filters repositories.AccountFilters, adminID uint) (*AccountListResponse, error)

	// CheckGatedAccess returns nil for approved accounts and admins,
	// ErrNotEntitled otherwise.
	CheckGatedAccess(ctx context.Context, accountID uint) error
}

type TaxonomyService interface {
	// GetOptions returns the ordered option list for a field; an absent
	// structure record or unknown field yields an empty list, never an
	// error.
	GetOptions(ctx context.Context, field models.TaxonomyField) ([]string, error)

	// AppendOption adds a new label; duplicates and empty values are
	// reported back as a message, not an error.
	AppendOption(ctx context.Context, req *AppendOptionRequest, adminID uint) (*AppendOptionResult, error)
}

type ContentService interface {
	// Admin-only creation; content has no update or delete path.
	CreateStaticResource(ctx context.Context, req *CreateStaticResourceRequest, adminID uint) (*models.StaticResource, error)
	CreateQA(ctx context.Context, req *CreateQARequest, adminID uint) (*models.QAEntry, error)
	CreateMCQ(ctx context.Context, req *CreateMCQRequest, adminID uint) (*models.MCQEntry, error)
	CreateLegacyResource(ctx context.Context, req *CreateLegacyResourceRequest, adminID uint) (*models.LegacyResource, error)

	// Tag-filtered reads; results are an unordered set.
	ListStaticResources(ctx context.Context, filters repositories.StaticResourceFilters) ([]*models.StaticResource, error)
	ListQA(ctx context.Context, filters repositories.QAFilters) ([]*models.QAEntry, error)
	ListMCQ(ctx context.Context, filters repositories.MCQFilters) ([]*models.MCQEntry, error)
	ListLegacyResources(ctx context.Context) ([]*models.LegacyResource, error)
}

type QuizService interface {
	// Check is pure: correct iff selected equals the stored key; no attempt
	// history is persisted.
	Check(mcq *models.MCQEntry, selected models.OptionKey) QuizCheckResult
	CheckByID(ctx context.Context, mcqID uint, selected models.OptionKey) (*QuizCheckResult, error)
}

type SearchService interface {
	// Search fetches Q&A entries for {topic, type} and keeps those whose
	// question text contains the keyword case-insensitively. An empty
	// keyword returns an empty result without touching the store.
	Search(ctx context.Context, tag models.ContentTag, qType models.QuestionType, keyword string) (*SearchResponse, error)

	// Solve forwards the keyword (and optional image) to the AI endpoint.
	// It always returns displayable text, never an error.
	Solve(ctx context.Context, req *SolveRequest) string
}

type ExportService interface {
	// xlsx exports for the admin console.
	ExportAccounts(ctx context.Context, adminID uint) ([]byte, error)
	ExportQABank(ctx context.Context, filters repositories.QAFilters, adminID uint) ([]byte, error)
}

// ===== SERVICE MANAGER =====

type ServiceManager interface {
	Account() AccountService
	Taxonomy() TaxonomyService
	Content() ContentService
	Quiz() QuizService
	Search() SearchService
	Export() ExportService

	// Health and lifecycle
	Initialize(ctx context.Context) error
	HealthCheck(ctx context.Context) error
	Shutdown(ctx context.Context) error
}
