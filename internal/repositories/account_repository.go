package repositories

import (
	"context"

	"github.com/VINNUMaharana0112/InnoMind-Physics-Master/internal/models"
)

// AccountRepository handles the physics_users collection. Duplicate emails
// are rejected by the store's unique index (conditional write), not by a
// read-then-insert check.
type AccountRepository interface {
	// Create inserts a new account; returns ErrDuplicateEmail when the
	// email is already registered.
	Create(ctx context.Context, account *models.Account) error
	GetByID(ctx context.Context, id uint) (*models.Account, error)
	GetByEmail(ctx context.Context, email string) (*models.Account, error)

	// List returns accounts matching the supplied equality filters.
	List(ctx context.Context, filters AccountFilters) ([]*models.Account, int64, error)

	// UpdatePaymentStatus sets the payment status and, when txnID is
	// non-nil, the transaction id in one write.
	UpdatePaymentStatus(ctx context.Context, id uint, status models.PaymentStatus, txnID *string) error

	// Validation and checks
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
