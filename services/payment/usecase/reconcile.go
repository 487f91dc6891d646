package usecase

import (
	"strings"

	"github.com/walletlogs/payment-relay/internal/pkg/models"
)

// mapVerificationStatus maps the validator API's free-text verdict onto a
// reconciled status, case-insensitively. Anything unrecognized counts as
// still pending.
func mapVerificationStatus(gatewayStatus string) models.PaymentStatus {
	switch strings.ToLower(gatewayStatus) {
	case "valid", "validated":
		return models.StatusValid
	case "failed":
		return models.StatusFailed
	case "cancelled":
		return models.StatusCancelled
	default:
		return models.StatusPending
	}
}

// statusFromVerification builds the status record for a verification result,
// falling back to intake values where the gateway omitted fields.
func statusFromVerification(tranID string, mapped models.PaymentStatus, result *models.GatewayValidationResult, intake *models.TransactionIntake) *models.TransactionStatus {
	amount := result.Amount
	if amount == "" && intake != nil {
		amount = intake.Amount
	}
	currency := result.Currency
	if currency == "" {
		currency = models.DefaultCurrency
	}

	return &models.TransactionStatus{
		TransactionID: tranID,
		Status:        mapped,
		Amount:        amount,
		Currency:      currency,
		BankTranID:    result.BankTranID,
		CardType:      result.CardType,
		Origin:        models.OriginVerification,
		RawPayload:    result.Raw,
	}
}
