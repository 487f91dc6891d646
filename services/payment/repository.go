package payment

import (
	"context"

	"github.com/walletlogs/payment-relay/internal/pkg/models"
)

// TransactionRepo defines the interface for transaction storage. Implementations
// must serialize concurrent writes to the same transaction id; last write wins.
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/walletlogs/payment-relay/services/payment TransactionRepo
type TransactionRepo interface {
	// CreateIntake stores the immutable intake record and initializes its
	// status record to PENDING.
	CreateIntake(ctx context.Context, intake *models.TransactionIntake) error

	// GetIntake returns the intake for a transaction, or nil when unknown.
	GetIntake(ctx context.Context, tranID string) (*models.TransactionIntake, error)

	// GetStatus returns the status record for a transaction, or nil when unknown.
	GetStatus(ctx context.Context, tranID string) (*models.TransactionStatus, error)

	// SetStatus overwrites the status record. Status entries without a
	// matching intake are permitted: the notification channel can be the
	// first signal seen for an id.
	SetStatus(ctx context.Context, status *models.TransactionStatus) error
}
