package models

import "encoding/json"

// GatewaySessionRequest holds the fields the adapter needs to open a hosted
// checkout session. Store credentials and callback URLs come from config.
type GatewaySessionRequest struct {
	TransactionID   string
	Amount          string
	Currency        string
	PlanName        string
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	CustomerAddress string
}

// GatewaySessionResponse is the parsed session-creation reply. Raw keeps the
// unparsed body for diagnosis when the gateway rejects the request.
type GatewaySessionResponse struct {
	Status         string          `json:"status"`
	GatewayPageURL string          `json:"GatewayPageURL"`
	SessionKey     string          `json:"sessionkey"`
	FailedReason   string          `json:"failedreason"`
	Raw            json.RawMessage `json:"-"`
}

// GatewayValidationResult is the parsed reply of the validator API. Status is
// the gateway's free-text verdict; mapping to a PaymentStatus happens in the
// reconciler, not here.
type GatewayValidationResult struct {
	Status     string          `json:"status"`
	Amount     string          `json:"amount"`
	Currency   string          `json:"currency"`
	BankTranID string          `json:"bank_tran_id"`
	CardType   string          `json:"card_type"`
	Raw        json.RawMessage `json:"-"`
}
