package payment

import (
	"context"

	"github.com/walletlogs/payment-relay/internal/pkg/models"
)

// PaymentGW defines the interface for gateway operations: the outbound
// SSLCommerz calls plus event publication for downstream consumers.
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/walletlogs/payment-relay/services/payment PaymentGW
type PaymentGW interface {
	// CreateSession opens a hosted checkout session and returns the redirect
	// URL. A recognized rejection surfaces as *GatewayRejectedError.
	CreateSession(ctx context.Context, req *models.GatewaySessionRequest) (*models.GatewaySessionResponse, error)

	// ValidateTransaction queries the gateway validator API for the
	// authoritative status of a transaction. Network or timeout failures wrap
	// ErrGatewayUnavailable.
	ValidateTransaction(ctx context.Context, tranID string) (*models.GatewayValidationResult, error)

	// PublishStatusChanged emits a status-transition event. Best effort; a
	// publish failure must never fail the request that caused it.
	PublishStatusChanged(ctx context.Context, event *models.PaymentStatusEvent)
}
