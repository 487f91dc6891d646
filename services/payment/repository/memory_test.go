package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walletlogs/payment-relay/internal/pkg/models"
)

func sampleIntake(tranID string) *models.TransactionIntake {
	return &models.TransactionIntake{
		TransactionID: tranID,
		PlanID:        "premium",
		PlanName:      "Premium Plan",
		UserID:        "user-1",
		Amount:        "500.00",
		Currency:      models.DefaultCurrency,
		Email:         "user@example.com",
		InitiatedAt:   time.Now(),
	}
}

func TestMemoryRepo_CreateIntakeInitializesPending(t *testing.T) {
	repo := NewMemoryTransactionRepo()
	ctx := context.Background()

	intake := sampleIntake("WL_premium_user-1_1")
	require.NoError(t, repo.CreateIntake(ctx, intake))

	got, err := repo.GetIntake(ctx, intake.TransactionID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, intake.PlanID, got.PlanID)
	assert.Equal(t, intake.Amount, got.Amount)

	status, err := repo.GetStatus(ctx, intake.TransactionID)
	require.NoError(t, err)
	require.NotNil(t, status)
	assert.Equal(t, models.StatusPending, status.Status)
	assert.Equal(t, models.OriginInitiation, status.Origin)
	assert.Equal(t, intake.Amount, status.Amount)
}

func TestMemoryRepo_UnknownTransactionReturnsNil(t *testing.T) {
	repo := NewMemoryTransactionRepo()
	ctx := context.Background()

	intake, err := repo.GetIntake(ctx, "WL_missing")
	assert.NoError(t, err)
	assert.Nil(t, intake)

	status, err := repo.GetStatus(ctx, "WL_missing")
	assert.NoError(t, err)
	assert.Nil(t, status)
}

func TestMemoryRepo_SetStatusOverwrites(t *testing.T) {
	repo := NewMemoryTransactionRepo()
	ctx := context.Background()

	intake := sampleIntake("WL_premium_user-1_2")
	require.NoError(t, repo.CreateIntake(ctx, intake))

	require.NoError(t, repo.SetStatus(ctx, &models.TransactionStatus{
		TransactionID: intake.TransactionID,
		Status:        models.StatusValid,
		Amount:        "500.00",
		Currency:      models.DefaultCurrency,
		BankTranID:    "BANK_1",
		ProcessedAt:   time.Now(),
		Origin:        models.OriginNotification,
	}))

	// second write wins, including a regression back to terminal FAILED
	require.NoError(t, repo.SetStatus(ctx, &models.TransactionStatus{
		TransactionID: intake.TransactionID,
		Status:        models.StatusFailed,
		ProcessedAt:   time.Now(),
		Origin:        models.OriginNotification,
	}))

	status, err := repo.GetStatus(ctx, intake.TransactionID)
	require.NoError(t, err)
	require.NotNil(t, status)
	assert.Equal(t, models.StatusFailed, status.Status)
}

func TestMemoryRepo_SetStatusAcceptsOrphans(t *testing.T) {
	repo := NewMemoryTransactionRepo()
	ctx := context.Background()

	// IPN for a transaction we never initiated (e.g. after a restart)
	require.NoError(t, repo.SetStatus(ctx, &models.TransactionStatus{
		TransactionID: "WL_orphan_1",
		Status:        models.StatusValid,
		Origin:        models.OriginNotification,
	}))

	status, err := repo.GetStatus(ctx, "WL_orphan_1")
	require.NoError(t, err)
	require.NotNil(t, status)
	assert.Equal(t, models.StatusValid, status.Status)
	assert.False(t, status.ProcessedAt.IsZero())

	intake, err := repo.GetIntake(ctx, "WL_orphan_1")
	require.NoError(t, err)
	assert.Nil(t, intake)
}

func TestMemoryRepo_ReturnsCopies(t *testing.T) {
	repo := NewMemoryTransactionRepo()
	ctx := context.Background()

	intake := sampleIntake("WL_premium_user-1_3")
	require.NoError(t, repo.CreateIntake(ctx, intake))

	first, err := repo.GetIntake(ctx, intake.TransactionID)
	require.NoError(t, err)
	first.Amount = "tampered"

	second, err := repo.GetIntake(ctx, intake.TransactionID)
	require.NoError(t, err)
	assert.Equal(t, "500.00", second.Amount)
}
