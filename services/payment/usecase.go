package payment

import (
	"context"

	"github.com/walletlogs/payment-relay/internal/pkg/models"
)

// PaymentUC defines the interface for payment business logic
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/walletlogs/payment-relay/services/payment PaymentUC
type PaymentUC interface {
	// InitiatePayment validates the intake, opens a gateway checkout session
	// and records the transaction as PENDING.
	InitiatePayment(ctx context.Context, req *models.InitiatePaymentRequest) (*models.InitiatePaymentResponse, error)

	// RecordNotification applies a server-to-server IPN status push. The
	// gateway-reported status is stored verbatim and overwrites any prior state.
	RecordNotification(ctx context.Context, n *models.PaymentNotification) error

	// RecordRedirect applies a browser redirect callback, forcing the status
	// that matches the redirect target. Unknown transactions are acknowledged
	// as a no-op.
	RecordRedirect(ctx context.Context, kind models.RedirectKind, tranID string) error

	// GetPaymentStatus returns the best-known state of a transaction,
	// polling the gateway validator when the stored state is still PENDING.
	GetPaymentStatus(ctx context.Context, tranID string) (*models.PaymentStatusResponse, error)

	// ValidatePayment checks that the transaction belongs to the supplied
	// user/plan identity and has completed successfully.
	ValidatePayment(ctx context.Context, req *models.ValidatePaymentRequest) (*models.ValidatePaymentResponse, error)

	// ForceCheck re-verifies a transaction against the gateway validator on
	// demand, persisting whatever status the gateway reports.
	ForceCheck(ctx context.Context, tranID string) (*models.CheckResult, error)

	// SimulateOutcome records a terminal status for a known transaction.
	// Test tooling only.
	SimulateOutcome(ctx context.Context, tranID string, status models.PaymentStatus) (*models.CheckResult, error)
}
