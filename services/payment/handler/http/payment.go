package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/walletlogs/payment-relay/internal/pkg/logger"
	"github.com/walletlogs/payment-relay/internal/pkg/models"
	nrpkg "github.com/walletlogs/payment-relay/internal/pkg/newrelic"
	"github.com/walletlogs/payment-relay/internal/utils"
	"github.com/walletlogs/payment-relay/services/payment"
)

// PaymentHandler handles HTTP requests for payment operations
type PaymentHandler struct {
	paymentUC payment.PaymentUC
}

// NewPaymentHandler creates a new payment HTTP handler
func NewPaymentHandler(paymentUC payment.PaymentUC) *PaymentHandler {
	return &PaymentHandler{
		paymentUC: paymentUC,
	}
}

// InitiatePayment handles the client request to start a payment
func (h *PaymentHandler) InitiatePayment(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Payment.Initiate")

	var req models.InitiatePaymentRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	resp, err := h.paymentUC.InitiatePayment(c.Request().Context(), &req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)

		var rejected *payment.GatewayRejectedError
		switch {
		case errors.Is(err, payment.ErrValidation):
			return utils.BadRequestResponse(c, "Missing required fields: amount, email, planId, planName, userId")
		case errors.As(err, &rejected):
			return utils.ErrorResponseWithDebug(c, http.StatusBadRequest, "Failed to generate payment URL", rejected.Raw)
		default:
			return utils.InternalServerErrorResponse(c, "Server error while initiating payment")
		}
	}

	return utils.SuccessResponse(c, http.StatusOK, "Payment session created", resp)
}

// HandleIPN handles the gateway's server-to-server notification callback.
// The origin of the call is deliberately not authenticated, matching the
// gateway's sandbox contract.
func (h *PaymentHandler) HandleIPN(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Payment.IPN")

	var n models.PaymentNotification
	if err := c.Bind(&n); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid notification payload: "+err.Error())
	}

	if err := h.paymentUC.RecordNotification(c.Request().Context(), &n); err != nil {
		nrpkg.NoticeTransactionError(txn, err)

		if errors.Is(err, payment.ErrValidation) {
			return utils.BadRequestResponse(c, "Missing transaction ID or status")
		}
		return utils.InternalServerErrorResponse(c, "Failed to process IPN")
	}

	return utils.SuccessResponse(c, http.StatusOK, "IPN processed", nil)
}

// GetPaymentStatus handles the client's status poll
func (h *PaymentHandler) GetPaymentStatus(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Payment.Status")

	tranID := c.Param("tranID")
	if tranID == "" {
		return utils.BadRequestResponse(c, "Transaction ID is required")
	}

	resp, err := h.paymentUC.GetPaymentStatus(c.Request().Context(), tranID)
	if err != nil {
		logger.Error("Failed to resolve payment status",
			logger.String("transaction_id", tranID),
			logger.Err(err))
		nrpkg.NoticeTransactionError(txn, err)
		return utils.InternalServerErrorResponse(c, "Failed to resolve payment status")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Payment status retrieved", resp)
}

// ValidatePayment handles the ownership-checked completion query
func (h *PaymentHandler) ValidatePayment(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Payment.Validate")

	var req models.ValidatePaymentRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	resp, err := h.paymentUC.ValidatePayment(c.Request().Context(), &req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)

		switch {
		case errors.Is(err, payment.ErrValidation):
			return utils.BadRequestResponse(c, "Missing required fields: tran_id, userId, planId")
		case errors.Is(err, payment.ErrNotFound):
			return utils.NotFoundResponse(c, "Payment record not found")
		case errors.Is(err, payment.ErrOwnershipMismatch):
			return utils.ForbiddenResponse(c, "Payment validation failed: user or plan mismatch")
		default:
			return utils.InternalServerErrorResponse(c, "Failed to validate payment")
		}
	}

	return utils.SuccessResponse(c, http.StatusOK, "Payment validation completed", resp)
}

// ForceCheck handles the manual re-verification request
func (h *PaymentHandler) ForceCheck(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Payment.ForceCheck")

	tranID := c.Param("tranID")
	if tranID == "" {
		return utils.BadRequestResponse(c, "Transaction ID is required")
	}

	result, err := h.paymentUC.ForceCheck(c.Request().Context(), tranID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)

		if errors.Is(err, payment.ErrNotFound) {
			return utils.NotFoundResponse(c, "Transaction not found")
		}
		return utils.InternalServerErrorResponse(c, "Failed to check payment status")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Payment status checked", result)
}

// TestSuccess simulates a successful payment for a known transaction
func (h *PaymentHandler) TestSuccess(c echo.Context) error {
	return h.simulate(c, models.StatusValid)
}

// TestFail simulates a failed payment for a known transaction
func (h *PaymentHandler) TestFail(c echo.Context) error {
	return h.simulate(c, models.StatusFailed)
}

func (h *PaymentHandler) simulate(c echo.Context, outcome models.PaymentStatus) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Payment.Simulate")

	tranID := c.Param("tranID")
	if tranID == "" {
		return utils.BadRequestResponse(c, "Transaction ID is required")
	}

	result, err := h.paymentUC.SimulateOutcome(c.Request().Context(), tranID, outcome)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)

		if errors.Is(err, payment.ErrNotFound) {
			return utils.NotFoundResponse(c, "Transaction not found")
		}
		return utils.InternalServerErrorResponse(c, "Failed to simulate payment outcome")
	}

	return utils.SuccessResponse(c, http.StatusOK, result.Message, result)
}
