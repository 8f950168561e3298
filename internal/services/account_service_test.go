package services

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VINNUMaharana0112/InnoMind-Physics-Master/internal/events"
	"github.com/VINNUMaharana0112/InnoMind-Physics-Master/internal/models"
	"github.com/VINNUMaharana0112/InnoMind-Physics-Master/internal/repositories"
	"github.com/VINNUMaharana0112/InnoMind-Physics-Master/internal/validator"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newAccountFixture(t *testing.T) (AccountService, *fakeRepository, *events.MockEventPublisher) {
	t.Helper()
	repo := newFakeRepository()
	publisher := events.NewMockEventPublisher(nil)
	svc := NewAccountService(repo, publisher, testLogger(), validator.New())
	return svc, repo, publisher
}

func seedAdmin(repo *fakeRepository) *models.Account {
	return repo.seedAccount(&models.Account{
		Name:          "Admin",
		Email:         "admin@example.com",
		Role:          models.RoleAdmin,
		PaymentStatus: models.PaymentPending,
	})
}

func TestRegisterAndAuthenticate(t *testing.T) {
	svc, _, _ := newAccountFixture(t)
	ctx := context.Background()

	created, err := svc.Register(ctx, &RegisterRequest{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleStudent, created.Role)
	assert.Equal(t, models.PaymentPending, created.PaymentStatus)
	assert.False(t, created.IsApproved)
	assert.NotEqual(t, "correct-horse", created.Account.PasswordHash,
		"password must never be stored in the clear")

	authed, err := svc.Authenticate(ctx, &LoginRequest{
		Email:    "asha@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, authed.ID)

	_, err = svc.Authenticate(ctx, &LoginRequest{
		Email:    "asha@example.com",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _, _ := newAccountFixture(t)
	ctx := context.Background()

	req := &RegisterRequest{Name: "Asha", Email: "asha@example.com", Password: "correct-horse"}
	_, err := svc.Register(ctx, req)
	require.NoError(t, err)

	_, err = svc.Register(ctx, req)
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestAuthenticateUnknownEmail(t *testing.T) {
	svc, _, _ := newAccountFixture(t)

	_, err := svc.Authenticate(context.Background(), &LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever1",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestPaymentLifecycle(t *testing.T) {
	svc, repo, publisher := newAccountFixture(t)
	ctx := context.Background()
	admin := seedAdmin(repo)

	student, err := svc.Register(ctx, &RegisterRequest{
		Name:     "Ben",
		Email:    "ben@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	// pending -> submitted
	err = svc.SubmitPayment(ctx, student.ID, &SubmitPaymentRequest{TransactionID: "TXN-001"})
	require.NoError(t, err)

	got, err := svc.GetByID(ctx, student.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentSubmitted, got.PaymentStatus)
	require.NotNil(t, got.TransactionID)
	assert.Equal(t, "TXN-001", *got.TransactionID)

	// resubmitting while already submitted is rejected
	err = svc.SubmitPayment(ctx, student.ID, &SubmitPaymentRequest{TransactionID: "TXN-002"})
	assert.True(t, IsTransitionError(err))

	// submitted -> approved
	require.NoError(t, svc.Approve(ctx, student.ID, admin.ID))

	got, err = svc.GetByID(ctx, student.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentApproved, got.PaymentStatus)
	assert.True(t, got.IsApproved)

	// approved is terminal
	err = svc.Reject(ctx, student.ID, admin.ID)
	assert.True(t, IsTransitionError(err))
	err = svc.Approve(ctx, student.ID, admin.ID)
	assert.True(t, IsTransitionError(err))

	types := make([]string, 0)
	for _, e := range publisher.GetPublishedEvents() {
		types = append(types, e.Type)
	}
	assert.Equal(t, []string{events.TypePaymentSubmitted, events.TypeAccountApproved}, types)
}

func TestRejectResetsToPending(t *testing.T) {
	svc, repo, _ := newAccountFixture(t)
	ctx := context.Background()
	admin := seedAdmin(repo)

	student, err := svc.Register(ctx, &RegisterRequest{
		Name:     "Cara",
		Email:    "cara@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	require.NoError(t, svc.SubmitPayment(ctx, student.ID, &SubmitPaymentRequest{TransactionID: "TXN-BAD"}))
	require.NoError(t, svc.Reject(ctx, student.ID, admin.ID))

	got, err := svc.GetByID(ctx, student.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentPending, got.PaymentStatus)
	assert.Nil(t, got.TransactionID, "a reject clears the transaction id for resubmission")

	// the student can submit again after a reject
	require.NoError(t, svc.SubmitPayment(ctx, student.ID, &SubmitPaymentRequest{TransactionID: "TXN-GOOD"}))
}

func TestApproveRequiresAdmin(t *testing.T) {
	svc, _, _ := newAccountFixture(t)
	ctx := context.Background()

	student, err := svc.Register(ctx, &RegisterRequest{
		Name:     "Dev",
		Email:    "dev@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	other, err := svc.Register(ctx, &RegisterRequest{
		Name:     "Eve",
		Email:    "eve@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	require.NoError(t, svc.SubmitPayment(ctx, student.ID, &SubmitPaymentRequest{TransactionID: "TXN-1"}))

	err = svc.Approve(ctx, student.ID, other.ID)
	assert.True(t, IsPermissionError(err))

	_, err = svc.List(ctx, repositories.AccountFilters{}, other.ID)
	assert.True(t, IsPermissionError(err))
}

func TestCheckGatedAccess(t *testing.T) {
	svc, repo, _ := newAccountFixture(t)
	ctx := context.Background()
	admin := seedAdmin(repo)

	student, err := svc.Register(ctx, &RegisterRequest{
		Name:     "Fay",
		Email:    "fay@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.CheckGatedAccess(ctx, student.ID), ErrNotEntitled)

	// admins pass regardless of their own payment status
	assert.NoError(t, svc.CheckGatedAccess(ctx, admin.ID))

	// an unknown account is simply not entitled
	assert.ErrorIs(t, svc.CheckGatedAccess(ctx, 9999), ErrNotEntitled)

	require.NoError(t, svc.SubmitPayment(ctx, student.ID, &SubmitPaymentRequest{TransactionID: "TXN-1"}))
	require.NoError(t, svc.Approve(ctx, student.ID, admin.ID))

	assert.NoError(t, svc.CheckGatedAccess(ctx, student.ID))
}
