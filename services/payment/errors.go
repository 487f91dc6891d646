package payment

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Sentinel errors surfaced by the payment use case. Handlers map these to
// HTTP status codes; none of them are fatal to the process.
var (
	// ErrValidation indicates missing required intake or request fields.
	ErrValidation = errors.New("missing required fields")

	// ErrNotFound indicates an unknown transaction id.
	ErrNotFound = errors.New("payment record not found")

	// ErrOwnershipMismatch indicates the intake's owner or plan does not
	// match the caller-supplied identity.
	ErrOwnershipMismatch = errors.New("payment validation failed: user or plan mismatch")

	// ErrGatewayUnavailable indicates a network or timeout failure talking
	// to the gateway. Callers fall back to the last-known cached status.
	ErrGatewayUnavailable = errors.New("payment gateway unavailable")
)

// GatewayRejectedError is returned when the gateway declined session
// creation. Raw carries the unparsed gateway payload for diagnosis.
type GatewayRejectedError struct {
	Reason string
	Raw    json.RawMessage
}

func (e *GatewayRejectedError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("gateway rejected session creation: %s", e.Reason)
	}
	return "gateway rejected session creation"
}
