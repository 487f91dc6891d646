package gateway

import (
	"time"

	httpclient "github.com/walletlogs/payment-relay/internal/pkg/http"
	"github.com/walletlogs/payment-relay/internal/pkg/models"
	nsqpkg "github.com/walletlogs/payment-relay/internal/pkg/nsq"
	"github.com/walletlogs/payment-relay/internal/pkg/retry"
)

// PaymentGW talks to the SSLCommerz gateway and publishes status events.
// Implements the payment.PaymentGW interface.
type PaymentGW struct {
	cfg      *models.Config
	client   *httpclient.Client
	producer *nsqpkg.Producer
	retrier  *retry.Retrier
}

// NewPaymentGW creates the gateway adapter. The producer may be nil, in which
// case status events are not published.
func NewPaymentGW(cfg *models.Config, producer *nsqpkg.Producer) *PaymentGW {
	timeout := time.Duration(cfg.Gateway.SessionTimeout) * time.Second
	return &PaymentGW{
		cfg:      cfg,
		client:   httpclient.NewClient(cfg.Gateway.BaseURL, timeout),
		producer: producer,
		retrier:  retry.New(retry.DefaultConfig()),
	}
}
