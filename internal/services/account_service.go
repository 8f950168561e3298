package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/VINNUMaharana0112/InnoMind-Physics-Master/internal/events"
	"github.com/VINNUMaharana0112/InnoMind-Physics-Master/internal/models"
	"github.com/VINNUMaharana0112/InnoMind-Physics-Master/internal/repositories"
	"github.com/VINNUMaharana0112/InnoMind-Physics-Master/internal/validator"
)

type accountService struct {
	repo      repositories.Repository
	publisher events.EventPublisher
	logger    *slog.Logger
	validator *validator.Validator
}

func NewAccountService(repo repositories.Repository, publisher events.EventPublisher, logger *slog.Logger, validator *validator.Validator) AccountService {
	return &accountService{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
		validator: validator,
	}
}

// ===== REGISTRATION & AUTHENTICATION =====

func (s *accountService) Register(ctx context.Context, req *RegisterRequest) (*AccountResponse, error) {
	s.logger.Info("Registering account", "email", req.Email)

	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	// Fast path before the hash work; the unique index below remains the
	// authority against concurrent registrations.
	exists, err := s.repo.Account().ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, ErrDuplicateEmail
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := &models.Account{
		Name:          req.Name,
		Email:         req.Email,
		PasswordHash:  string(hash),
		Phone:         req.Phone,
		Role:          models.RoleStudent,
		PaymentStatus: models.PaymentPending,
	}

	if err := s.repo.Account().Create(ctx, account); err != nil {
		if errors.Is(err, repositories.ErrDuplicateEmail) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	s.logger.Info("Account registered", "account_id", account.ID)

	return s.buildAccountResponse(account), nil
}

func (s *accountService) Authenticate(ctx context.Context, req *LoginRequest) (*AccountResponse, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	account, err := s.repo.Account().GetByEmail(ctx, req.Email)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.buildAccountResponse(account), nil
}

func (s *accountService) GetByID(ctx context.Context, id uint) (*AccountResponse, error) {
	account, err := s.repo.Account().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return s.buildAccountResponse(account), nil
}

// ===== PAYMENT LIFECYCLE =====

func (s *accountService) SubmitPayment(ctx context.Context, accountID uint, req *SubmitPaymentRequest) error {
	s.logger.Info("Payment submitted", "account_id", accountID)

	if err := s.validator.Validate(req); err != nil {
		return err
	}

	account, err := s.repo.Account().GetByID(ctx, accountID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return ErrAccountNotFound
		}
		return fmt.Errorf("failed to get account: %w", err)
	}

	if errs := s.validator.GetBusinessValidator().ValidatePaymentTransition(account.PaymentStatus, models.PaymentSubmitted); len(errs) > 0 {
		return &TransitionError{From: string(account.PaymentStatus), To: string(models.PaymentSubmitted)}
	}

	if err := s.repo.Account().UpdatePaymentStatus(ctx, accountID, models.PaymentSubmitted, &req.TransactionID); err != nil {
		return fmt.Errorf("failed to update payment status: %w", err)
	}

	s.publishEvent(ctx, events.TypePaymentSubmitted, map[string]interface{}{
		"account_id":     accountID,
		"transaction_id": req.TransactionID,
	})

	return nil
}

func (s *accountService) Approve(ctx context.Context, accountID, adminID uint) error {
	s.logger.Info("Approving account", "account_id", accountID, "admin_id", adminID)
	return s.transition(ctx, accountID, adminID, models.PaymentApproved, events.TypeAccountApproved, "approve")
}

func (s *accountService) Reject(ctx context.Context, accountID, adminID uint) error {
	s.logger.Info("Rejecting account", "account_id", accountID, "admin_id", adminID)
	return s.transition(ctx, accountID, adminID, models.PaymentPending, events.TypeAccountRejected, "reject")
}

// transition moves a submitted account to its target status after checking
// the admin role and the state machine. A reject clears the transaction id
// so the student can resubmit.
func (s *accountService) transition(ctx context.Context, accountID, adminID uint, target models.PaymentStatus, eventType, action string) error {
	isAdmin, err := s.isAdmin(ctx, adminID)
	if err != nil {
		return fmt.Errorf("permission check failed: %w", err)
	}
	if !isAdmin {
		return NewPermissionError(adminID, accountID, "account", action, "admin role required")
	}

	account, err := s.repo.Account().GetByID(ctx, accountID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return ErrAccountNotFound
		}
		return fmt.Errorf("failed to get account: %w", err)
	}

	if errs := s.validator.GetBusinessValidator().ValidatePaymentTransition(account.PaymentStatus, target); len(errs) > 0 {
		return &TransitionError{From: string(account.PaymentStatus), To: string(target)}
	}

	if err := s.repo.Account().UpdatePaymentStatus(ctx, accountID, target, nil); err != nil {
		return fmt.Errorf("failed to update payment status: %w", err)
	}

	s.publishEvent(ctx, eventType, map[string]interface{}{
		"account_id": accountID,
		"admin_id":   adminID,
	})

	return nil
}

// ===== ADMIN LISTINGS =====

func (s *accountService) List(ctx context.Context, filters repositories.AccountFilters, adminID uint) (*AccountListResponse, error) {
	isAdmin, err := s.isAdmin(ctx, adminID)
	if err != nil {
		return nil, fmt.Errorf("permission check failed: %w", err)
	}
	if !isAdmin {
		return nil, NewPermissionError(adminID, 0, "account", "list", "admin role required")
	}

	accounts, total, err := s.repo.Account().List(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	response := &AccountListResponse{
		Accounts: make([]*AccountResponse, len(accounts)),
		Total:    total,
	}
	for i, account := range accounts {
		response.Accounts[i] = s.buildAccountResponse(account)
	}

	return response, nil
}

// ===== ENTITLEMENT =====

func (s *accountService) CheckGatedAccess(ctx context.Context, accountID uint) error {
	account, err := s.repo.Account().GetByID(ctx, accountID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return ErrNotEntitled
		}
		return fmt.Errorf("failed to get account: %w", err)
	}
	if account.IsApproved() || account.IsAdmin() {
		return nil
	}
	return ErrNotEntitled
}

// ===== HELPERS =====

func (s *accountService) isAdmin(ctx context.Context, accountID uint) (bool, error) {
	return isAdminAccount(ctx, s.repo, accountID)
}

func (s *accountService) buildAccountResponse(account *models.Account) *AccountResponse {
	return &AccountResponse{
		Account:    account,
		IsApproved: account.IsApproved(),
	}
}

func (s *accountService) publishEvent(ctx context.Context, eventType string, data interface{}) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, events.NewEvent(eventType, data)); err != nil {
		s.logger.Warn("failed to publish event", "type", eventType, "error", err)
	}
}
