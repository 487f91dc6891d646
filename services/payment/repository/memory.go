package repository

import (
	"context"
	"sync"
	"time"

	"github.com/walletlogs/payment-relay/internal/pkg/logger"
	"github.com/walletlogs/payment-relay/internal/pkg/models"
)

// MemoryTransactionRepo is the default in-process transaction store. A single
// RWMutex serializes writes across both maps so an intake and its initial
// status always appear together.
//
// Records are never evicted; memory grows with transaction count for the
// lifetime of the process.
type MemoryTransactionRepo struct {
	mu       sync.RWMutex
	intakes  map[string]models.TransactionIntake
	statuses map[string]models.TransactionStatus
}

// NewMemoryTransactionRepo creates an empty in-memory store
func NewMemoryTransactionRepo() *MemoryTransactionRepo {
	return &MemoryTransactionRepo{
		intakes:  make(map[string]models.TransactionIntake),
		statuses: make(map[string]models.TransactionStatus),
	}
}

// CreateIntake stores the intake and initializes its status to PENDING
func (r *MemoryTransactionRepo) CreateIntake(ctx context.Context, intake *models.TransactionIntake) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.intakes[intake.TransactionID] = *intake
	r.statuses[intake.TransactionID] = models.TransactionStatus{
		TransactionID: intake.TransactionID,
		Status:        models.StatusPending,
		Amount:        intake.Amount,
		Currency:      intake.Currency,
		ProcessedAt:   intake.InitiatedAt,
		Origin:        models.OriginInitiation,
	}

	return nil
}

// GetIntake returns a copy of the intake record, or nil when unknown
func (r *MemoryTransactionRepo) GetIntake(ctx context.Context, tranID string) (*models.TransactionIntake, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	intake, ok := r.intakes[tranID]
	if !ok {
		return nil, nil
	}
	return &intake, nil
}

// GetStatus returns a copy of the status record, or nil when unknown
func (r *MemoryTransactionRepo) GetStatus(ctx context.Context, tranID string) (*models.TransactionStatus, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	status, ok := r.statuses[tranID]
	if !ok {
		return nil, nil
	}
	return &status, nil
}

// SetStatus overwrites the status record unconditionally. Orphaned entries
// (no matching intake) are stored but logged for observability.
func (r *MemoryTransactionRepo) SetStatus(ctx context.Context, status *models.TransactionStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.intakes[status.TransactionID]; !ok {
		logger.Warn("Storing status for unknown transaction",
			logger.String("transaction_id", status.TransactionID),
			logger.String("status", string(status.Status)),
			logger.String("origin", string(status.Origin)))
	}

	if status.ProcessedAt.IsZero() {
		status.ProcessedAt = time.Now()
	}
	r.statuses[status.TransactionID] = *status

	return nil
}
