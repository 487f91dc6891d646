package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/walletlogs/payment-relay/internal/pkg/constants"
	"github.com/walletlogs/payment-relay/internal/pkg/database"
	"github.com/walletlogs/payment-relay/internal/pkg/logger"
	"github.com/walletlogs/payment-relay/internal/pkg/models"
)

// RedisTransactionRepo backs the transaction store with Redis so records
// survive restarts. Same contract as the memory store; selected with
// STORE_DRIVER=redis. A non-zero TTL bounds record lifetime, which is the
// configured answer to the otherwise unbounded store growth.
type RedisTransactionRepo struct {
	client *database.RedisClient
	ttl    time.Duration
}

// NewRedisTransactionRepo creates a Redis-backed store
func NewRedisTransactionRepo(client *database.RedisClient, cfg models.StoreConfig) *RedisTransactionRepo {
	return &RedisTransactionRepo{
		client: client,
		ttl:    time.Duration(cfg.TTLSeconds) * time.Second,
	}
}

// CreateIntake stores the intake and initializes its status to PENDING
func (r *RedisTransactionRepo) CreateIntake(ctx context.Context, intake *models.TransactionIntake) error {
	if err := r.setJSON(ctx, fmt.Sprintf(constants.KeyPaymentIntake, intake.TransactionID), intake); err != nil {
		return fmt.Errorf("failed to store intake: %w", err)
	}

	status := &models.TransactionStatus{
		TransactionID: intake.TransactionID,
		Status:        models.StatusPending,
		Amount:        intake.Amount,
		Currency:      intake.Currency,
		ProcessedAt:   intake.InitiatedAt,
		Origin:        models.OriginInitiation,
	}
	if err := r.setJSON(ctx, fmt.Sprintf(constants.KeyPaymentStatus, intake.TransactionID), status); err != nil {
		return fmt.Errorf("failed to initialize status: %w", err)
	}

	return nil
}

// GetIntake returns the intake record, or nil when unknown
func (r *RedisTransactionRepo) GetIntake(ctx context.Context, tranID string) (*models.TransactionIntake, error) {
	var intake models.TransactionIntake
	found, err := r.getJSON(ctx, fmt.Sprintf(constants.KeyPaymentIntake, tranID), &intake)
	if err != nil || !found {
		return nil, err
	}
	return &intake, nil
}

// GetStatus returns the status record, or nil when unknown
func (r *RedisTransactionRepo) GetStatus(ctx context.Context, tranID string) (*models.TransactionStatus, error) {
	var status models.TransactionStatus
	found, err := r.getJSON(ctx, fmt.Sprintf(constants.KeyPaymentStatus, tranID), &status)
	if err != nil || !found {
		return nil, err
	}
	return &status, nil
}

// SetStatus overwrites the status record unconditionally
func (r *RedisTransactionRepo) SetStatus(ctx context.Context, status *models.TransactionStatus) error {
	intake, err := r.GetIntake(ctx, status.TransactionID)
	if err != nil {
		return err
	}
	if intake == nil {
		logger.Warn("Storing status for unknown transaction",
			logger.String("transaction_id", status.TransactionID),
			logger.String("status", string(status.Status)),
			logger.String("origin", string(status.Origin)))
	}

	if status.ProcessedAt.IsZero() {
		status.ProcessedAt = time.Now()
	}

	return r.setJSON(ctx, fmt.Sprintf(constants.KeyPaymentStatus, status.TransactionID), status)
}

func (r *RedisTransactionRepo) setJSON(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}
	return r.client.Set(ctx, key, data, r.ttl)
}

func (r *RedisTransactionRepo) getJSON(ctx context.Context, key string, target interface{}) (bool, error) {
	data, err := r.client.Get(ctx, key)
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	if err := json.Unmarshal([]byte(data), target); err != nil {
		return false, fmt.Errorf("failed to unmarshal %s: %w", key, err)
	}
	return true, nil
}
