package gateway

import (
	"context"

	"github.com/walletlogs/payment-relay/internal/pkg/constants"
	"github.com/walletlogs/payment-relay/internal/pkg/logger"
	"github.com/walletlogs/payment-relay/internal/pkg/models"
)

// PublishStatusChanged emits a status-transition event to NSQ. Best effort:
// transient publish failures are retried with backoff, then logged, never
// propagated to the request that caused them.
func (g *PaymentGW) PublishStatusChanged(ctx context.Context, event *models.PaymentStatusEvent) {
	if g.producer == nil {
		return
	}

	err := g.retrier.Execute(ctx, func(ctx context.Context) error {
		return g.producer.Publish(constants.TopicPaymentStatus, event)
	})
	if err != nil {
		logger.Error("Failed to publish payment status event",
			logger.String("transaction_id", event.TransactionID),
			logger.String("status", string(event.Status)),
			logger.Err(err))
	}
}
