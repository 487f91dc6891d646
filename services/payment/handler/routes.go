package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/walletlogs/payment-relay/internal/pkg/models"
	"github.com/walletlogs/payment-relay/services/payment"
	httpHandler "github.com/walletlogs/payment-relay/services/payment/handler/http"
)

// Handler combines all handlers for the payment service
type Handler struct {
	paymentHTTP *httpHandler.PaymentHandler
	cfg         *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(paymentUC payment.PaymentUC, cfg *models.Config) *Handler {
	return &Handler{
		paymentHTTP: httpHandler.NewPaymentHandler(paymentUC),
		cfg:         cfg,
	}
}

// RegisterRoutes registers all HTTP routes. The IPN and redirect callbacks
// are reachable without authentication; the gateway does not sign them.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// Client-facing endpoints
	e.POST("/initiate-payment", h.paymentHTTP.InitiatePayment)
	e.GET("/payment-status/:tranID", h.paymentHTTP.GetPaymentStatus)
	e.POST("/validate-payment", h.paymentHTTP.ValidatePayment)
	e.POST("/check-payment-with-sslc/:tranID", h.paymentHTTP.ForceCheck)

	// Gateway callbacks
	e.POST("/ipn", h.paymentHTTP.HandleIPN)
	e.GET("/success", h.paymentHTTP.SuccessRedirect)
	e.POST("/success", h.paymentHTTP.SuccessRedirect)
	e.GET("/fail", h.paymentHTTP.FailRedirect)
	e.POST("/fail", h.paymentHTTP.FailRedirect)
	e.GET("/cancel", h.paymentHTTP.CancelRedirect)
	e.POST("/cancel", h.paymentHTTP.CancelRedirect)

	// Test tooling, sandbox only
	e.POST("/test-success/:tranID", h.paymentHTTP.TestSuccess)
	e.POST("/test-fail/:tranID", h.paymentHTTP.TestFail)
}
