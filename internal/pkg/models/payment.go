package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// PaymentStatus is the reconciled state of a transaction. Values originating
// from the gateway's IPN channel are stored verbatim, so a PaymentStatus may
// carry free-text beyond the constants below.
type PaymentStatus string

const (
	StatusPending   PaymentStatus = "PENDING"
	StatusValid     PaymentStatus = "VALID"
	StatusValidated PaymentStatus = "VALIDATED"
	StatusFailed    PaymentStatus = "FAILED"
	StatusCancelled PaymentStatus = "CANCELLED"
	// StatusUnknown is returned for queries on unknown transactions.
	// It is never persisted.
	StatusUnknown PaymentStatus = "UNKNOWN"
)

// IsTerminal reports whether the status ends the reconciliation lifecycle.
func (s PaymentStatus) IsTerminal() bool {
	switch s {
	case StatusValid, StatusValidated, StatusFailed, StatusCancelled:
		return true
	}
	return false
}

// Message returns the user-facing description for a status.
func (s PaymentStatus) Message() string {
	switch s {
	case StatusValid, StatusValidated:
		return "Payment completed successfully"
	case StatusFailed:
		return "Payment failed. Please try again."
	case StatusCancelled:
		return "Payment was cancelled by user"
	case StatusPending:
		return "Payment is being processed"
	default:
		return "Payment status unknown"
	}
}

// UpdateOrigin identifies which channel produced a status update.
type UpdateOrigin string

const (
	OriginInitiation   UpdateOrigin = "initiation"
	OriginNotification UpdateOrigin = "ipn"
	OriginRedirect     UpdateOrigin = "redirect"
	OriginVerification UpdateOrigin = "verification"
)

// RedirectKind is the browser callback target the gateway redirected to.
type RedirectKind string

const (
	RedirectSuccess RedirectKind = "success"
	RedirectFail    RedirectKind = "fail"
	RedirectCancel  RedirectKind = "cancel"
)

// Status returns the forced status for a redirect callback.
func (k RedirectKind) Status() PaymentStatus {
	switch k {
	case RedirectSuccess:
		return StatusValid
	case RedirectFail:
		return StatusFailed
	default:
		return StatusCancelled
	}
}

// TransactionIntake is the immutable record of what a user requested to pay
// for. It is created once at initiation and never mutated.
type TransactionIntake struct {
	TransactionID   string    `json:"transactionId"`
	PlanID          string    `json:"planId"`
	PlanName        string    `json:"planName"`
	UserID          string    `json:"userId"`
	Amount          string    `json:"amount"`
	Currency        string    `json:"currency"`
	Email           string    `json:"email"`
	CustomerName    string    `json:"customerName"`
	CustomerPhone   string    `json:"customerPhone"`
	CustomerAddress string    `json:"customerAddress"`
	AppVersion      string    `json:"appVersion"`
	DeviceType      string    `json:"deviceType"`
	InitiatedAt     time.Time `json:"initiatedAt"`
}

// TransactionStatus is the mutable record of how the gateway resolved a
// transaction. It is overwritten in place on each incoming signal.
type TransactionStatus struct {
	TransactionID string          `json:"transactionId"`
	Status        PaymentStatus   `json:"status"`
	Amount        string          `json:"amount,omitempty"`
	Currency      string          `json:"currency,omitempty"`
	BankTranID    string          `json:"bankTranId,omitempty"`
	CardType      string          `json:"cardType,omitempty"`
	ProcessedAt   time.Time       `json:"processedAt"`
	Origin        UpdateOrigin    `json:"origin"`
	RawPayload    json.RawMessage `json:"rawPayload,omitempty"` // last observed gateway payload, kept for audit
}

// NewTransactionID builds the deterministic transaction identifier. The
// millisecond instant keeps ids unique within process lifetime for a given
// plan/user pair.
func NewTransactionID(planID, userID string, now time.Time) string {
	return fmt.Sprintf("WL_%s_%s_%d", planID, userID, now.UnixMilli())
}

// Intake field defaults applied when the client omits optional fields.
const (
	DefaultCustomerName    = "Customer"
	DefaultCustomerPhone   = "01700000000"
	DefaultCustomerAddress = "Dhaka"
	DefaultAppVersion      = "1.0.0"
	DefaultDeviceType      = "unknown"
	DefaultCurrency        = "BDT"
)

// InitiatePaymentRequest is the client request to start a payment.
type InitiatePaymentRequest struct {
	Amount          string `json:"amount" form:"amount"`
	Email           string `json:"email" form:"email"`
	PlanID          string `json:"planId" form:"planId"`
	PlanName        string `json:"planName" form:"planName"`
	UserID          string `json:"userId" form:"userId"`
	CustomerName    string `json:"customerName" form:"customerName"`
	CustomerPhone   string `json:"customerPhone" form:"customerPhone"`
	CustomerAddress string `json:"customerAddress" form:"customerAddress"`
	AppVersion      string `json:"appVersion" form:"appVersion"`
	DeviceType      string `json:"deviceType" form:"deviceType"`
}

// InitiatePaymentResponse carries the hosted checkout redirect back to the client.
type InitiatePaymentResponse struct {
	GatewayPageURL string             `json:"GatewayPageURL"`
	TransactionID  string             `json:"transactionId"`
	PaymentData    *TransactionIntake `json:"paymentData"`
	SessionKey     string             `json:"sessionKey,omitempty"`
}

// PaymentNotification is the gateway's server-to-server IPN payload.
type PaymentNotification struct {
	TransactionID string `json:"tran_id" form:"tran_id"`
	Status        string `json:"status" form:"status"`
	Amount        string `json:"amount" form:"amount"`
	Currency      string `json:"currency" form:"currency"`
	BankTranID    string `json:"bank_tran_id" form:"bank_tran_id"`
	CardType      string `json:"card_type" form:"card_type"`
}

// PaymentStatusResponse is the client-facing view of a transaction.
type PaymentStatusResponse struct {
	TransactionID      string             `json:"transactionId"`
	Status             PaymentStatus      `json:"status"`
	PaymentData        *TransactionIntake `json:"paymentData"`
	TransactionDetails *TransactionStatus `json:"transactionDetails"`
	Message            string             `json:"message"`
}

// ValidatePaymentRequest asks whether a transaction is complete and owned by
// the supplied user/plan identity.
type ValidatePaymentRequest struct {
	TransactionID string `json:"tran_id" form:"tran_id"`
	UserID        string `json:"userId" form:"userId"`
	PlanID        string `json:"planId" form:"planId"`
}

// ValidatePaymentResponse reports the ownership-checked payment outcome.
type ValidatePaymentResponse struct {
	Success            bool               `json:"success"`
	Message            string             `json:"message"`
	PaymentData        *TransactionIntake `json:"paymentData"`
	TransactionDetails *TransactionStatus `json:"transactionDetails"`
}

// CheckResult is the outcome of an on-demand gateway verification.
type CheckResult struct {
	Success       bool            `json:"success"`
	TransactionID string          `json:"transactionId"`
	Status        PaymentStatus   `json:"status,omitempty"`
	Message       string          `json:"message"`
	GatewayData   json.RawMessage `json:"gatewayData,omitempty"`
}

// PaymentStatusEvent is published whenever a transaction's status record is
// overwritten, so downstream services can react without polling the relay.
type PaymentStatusEvent struct {
	TransactionID string        `json:"transaction_id"`
	Status        PaymentStatus `json:"status"`
	Origin        UpdateOrigin  `json:"origin"`
	Amount        string        `json:"amount,omitempty"`
	Currency      string        `json:"currency,omitempty"`
	BankTranID    string        `json:"bank_tran_id,omitempty"`
	ProcessedAt   time.Time     `json:"processed_at"`
}
