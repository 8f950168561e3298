package services

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/VINNUMaharana0112/InnoMind-Physics-Master/internal/models"
	"github.com/VINNUMaharana0112/InnoMind-Physics-Master/internal/repositories"
)

func TestExportAccounts(t *testing.T) {
	repo := newFakeRepository()
	svc := NewExportService(repo, testLogger())
	ctx := context.Background()

	admin := seedAdmin(repo)
	txn := "TXN-9"
	joined := time.Date(2025, 6, 14, 9, 30, 0, 0, time.UTC)
	repo.seedAccount(&models.Account{
		Name:          "Asha",
		Email:         "asha@example.com",
		Role:          models.RoleStudent,
		PaymentStatus: models.PaymentSubmitted,
		TransactionID: &txn,
		JoinedAt:      joined,
	})

	data, err := svc.ExportAccounts(ctx, admin.ID)
	require.NoError(t, err)

	xl, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer xl.Close()

	rows, err := xl.GetRows("Accounts")
	require.NoError(t, err)
	require.Len(t, rows, 3, "header plus two accounts")
	assert.Equal(t, "id", rows[0][0])
	assert.Equal(t, "email", rows[0][2])

	emails := []string{rows[1][2], rows[2][2]}
	assert.Contains(t, emails, "asha@example.com")
	assert.Contains(t, emails, "admin@example.com")

	assert.Equal(t, "created_at", rows[0][7])
	for _, row := range rows[1:] {
		if row[2] == "asha@example.com" {
			assert.Equal(t, joined.Format(time.RFC3339), row[7], "joined timestamp lands in the created_at column")
		}
	}
}

func TestExportQABank(t *testing.T) {
	repo := newFakeRepository()
	svc := NewExportService(repo, testLogger())
	ctx := context.Background()
	admin := seedAdmin(repo)
	seedQABank(repo)

	data, err := svc.ExportQABank(ctx, repositories.QAFilters{}, admin.ID)
	require.NoError(t, err)

	xl, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer xl.Close()

	rows, err := xl.GetRows("QA Bank")
	require.NoError(t, err)
	assert.Len(t, rows, 4, "header plus three entries")
}

func TestExportRequiresAdmin(t *testing.T) {
	repo := newFakeRepository()
	svc := NewExportService(repo, testLogger())

	student := repo.seedAccount(&models.Account{
		Name:  "Student",
		Email: "student@example.com",
		Role:  models.RoleStudent,
	})

	_, err := svc.ExportAccounts(context.Background(), student.ID)
	assert.True(t, IsPermissionError(err))

	_, err = svc.ExportQABank(context.Background(), repositories.QAFilters{}, student.ID)
	assert.True(t, IsPermissionError(err))
}
