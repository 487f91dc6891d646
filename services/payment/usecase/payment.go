package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/walletlogs/payment-relay/internal/pkg/logger"
	"github.com/walletlogs/payment-relay/internal/pkg/models"
	nrpkg "github.com/walletlogs/payment-relay/internal/pkg/newrelic"
	"github.com/walletlogs/payment-relay/services/payment"
)

// paymentUC implements the payment.PaymentUC interface
type paymentUC struct {
	cfg  *models.Config
	repo payment.TransactionRepo
	gw   payment.PaymentGW
}

// NewPaymentUC creates a new payment use case
func NewPaymentUC(
	cfg *models.Config,
	repo payment.TransactionRepo,
	gw payment.PaymentGW,
) payment.PaymentUC {
	return &paymentUC{
		cfg:  cfg,
		repo: repo,
		gw:   gw,
	}
}

// InitiatePayment validates the intake, opens a gateway session and records
// the transaction as PENDING
func (uc *paymentUC) InitiatePayment(ctx context.Context, req *models.InitiatePaymentRequest) (*models.InitiatePaymentResponse, error) {
	if req.Amount == "" || req.Email == "" || req.PlanID == "" || req.PlanName == "" || req.UserID == "" {
		return nil, fmt.Errorf("%w: amount, email, planId, planName, userId", payment.ErrValidation)
	}

	now := time.Now()
	intake := &models.TransactionIntake{
		TransactionID:   models.NewTransactionID(req.PlanID, req.UserID, now),
		PlanID:          req.PlanID,
		PlanName:        req.PlanName,
		UserID:          req.UserID,
		Amount:          req.Amount,
		Currency:        models.DefaultCurrency,
		Email:           req.Email,
		CustomerName:    defaultString(req.CustomerName, models.DefaultCustomerName),
		CustomerPhone:   defaultString(req.CustomerPhone, models.DefaultCustomerPhone),
		CustomerAddress: defaultString(req.CustomerAddress, models.DefaultCustomerAddress),
		AppVersion:      defaultString(req.AppVersion, models.DefaultAppVersion),
		DeviceType:      defaultString(req.DeviceType, models.DefaultDeviceType),
		InitiatedAt:     now,
	}

	session, err := uc.gw.CreateSession(ctx, &models.GatewaySessionRequest{
		TransactionID:   intake.TransactionID,
		Amount:          intake.Amount,
		Currency:        intake.Currency,
		PlanName:        intake.PlanName,
		CustomerName:    intake.CustomerName,
		CustomerEmail:   intake.Email,
		CustomerPhone:   intake.CustomerPhone,
		CustomerAddress: intake.CustomerAddress,
	})
	if err != nil {
		logger.Error("Payment initiation failed at gateway",
			logger.String("transaction_id", intake.TransactionID),
			logger.Err(err))
		return nil, err
	}

	if err := uc.repo.CreateIntake(ctx, intake); err != nil {
		return nil, fmt.Errorf("failed to store transaction intake: %w", err)
	}

	logger.Info("Payment initiated",
		logger.String("transaction_id", intake.TransactionID),
		logger.String("plan_id", intake.PlanID),
		logger.String("user_id", intake.UserID),
		logger.String("amount", intake.Amount))

	uc.gw.PublishStatusChanged(ctx, &models.PaymentStatusEvent{
		TransactionID: intake.TransactionID,
		Status:        models.StatusPending,
		Origin:        models.OriginInitiation,
		Amount:        intake.Amount,
		Currency:      intake.Currency,
		ProcessedAt:   now,
	})

	return &models.InitiatePaymentResponse{
		GatewayPageURL: session.GatewayPageURL,
		TransactionID:  intake.TransactionID,
		PaymentData:    intake,
		SessionKey:     session.SessionKey,
	}, nil
}

// RecordNotification applies a server-to-server IPN push. The reported status
// is stored verbatim and overwrites any prior state, including terminal ones.
func (uc *paymentUC) RecordNotification(ctx context.Context, n *models.PaymentNotification) error {
	if n.TransactionID == "" || n.Status == "" {
		return fmt.Errorf("%w: tran_id, status", payment.ErrValidation)
	}

	raw, _ := json.Marshal(n)
	status := &models.TransactionStatus{
		TransactionID: n.TransactionID,
		Status:        models.PaymentStatus(n.Status),
		Amount:        n.Amount,
		Currency:      defaultString(n.Currency, models.DefaultCurrency),
		BankTranID:    n.BankTranID,
		CardType:      n.CardType,
		ProcessedAt:   time.Now(),
		Origin:        models.OriginNotification,
		RawPayload:    raw,
	}

	if err := uc.repo.SetStatus(ctx, status); err != nil {
		return fmt.Errorf("failed to store notification status: %w", err)
	}

	logger.Info("IPN received",
		logger.String("transaction_id", n.TransactionID),
		logger.String("status", n.Status),
		logger.String("bank_tran_id", n.BankTranID),
		logger.String("card_type", n.CardType))

	uc.publishStatus(ctx, status)
	return nil
}

// RecordRedirect applies a browser redirect callback. The resulting status is
// forced regardless of prior state; unknown transactions are acknowledged as
// a no-op.
func (uc *paymentUC) RecordRedirect(ctx context.Context, kind models.RedirectKind, tranID string) error {
	if tranID == "" {
		return nil
	}

	intake, err := uc.repo.GetIntake(ctx, tranID)
	if err != nil {
		return err
	}
	if intake == nil {
		logger.Info("Redirect for unknown transaction ignored",
			logger.String("transaction_id", tranID),
			logger.String("kind", string(kind)))
		return nil
	}

	now := time.Now()
	status := &models.TransactionStatus{
		TransactionID: tranID,
		Status:        kind.Status(),
		Amount:        intake.Amount,
		Currency:      models.DefaultCurrency,
		ProcessedAt:   now,
		Origin:        models.OriginRedirect,
	}
	if kind == models.RedirectSuccess {
		// The gateway does not pass a bank reference on the redirect leg
		status.BankTranID = fmt.Sprintf("REDIRECT_%d", now.UnixMilli())
		status.CardType = "Unknown"
	}

	if err := uc.repo.SetStatus(ctx, status); err != nil {
		return fmt.Errorf("failed to store redirect status: %w", err)
	}

	logger.Info("Payment status updated via redirect",
		logger.String("transaction_id", tranID),
		logger.String("status", string(status.Status)))

	uc.publishStatus(ctx, status)
	return nil
}

// GetPaymentStatus returns the best-known state of a transaction, polling the
// gateway validator when the stored state is still PENDING
func (uc *paymentUC) GetPaymentStatus(ctx context.Context, tranID string) (*models.PaymentStatusResponse, error) {
	status, err := uc.repo.GetStatus(ctx, tranID)
	if err != nil {
		return nil, err
	}
	intake, err := uc.repo.GetIntake(ctx, tranID)
	if err != nil {
		return nil, err
	}

	if status == nil && intake == nil {
		return &models.PaymentStatusResponse{
			TransactionID: tranID,
			Status:        models.StatusUnknown,
			Message:       "Transaction not found",
		}, nil
	}

	current := models.StatusPending
	if status != nil {
		current = status.Status
	}

	if current == models.StatusPending && intake != nil {
		if refreshed := uc.pollVerification(ctx, tranID, intake); refreshed != nil {
			status = refreshed
			current = refreshed.Status
		}
	}

	return &models.PaymentStatusResponse{
		TransactionID:      tranID,
		Status:             current,
		PaymentData:        intake,
		TransactionDetails: status,
		Message:            current.Message(),
	}, nil
}

// pollVerification queries the validator API with the tight read-path timeout.
// Only a terminal verification result is persisted; PENDING or unrecognized
// results leave the store untouched. Gateway failures are soft: the caller
// keeps the cached state.
func (uc *paymentUC) pollVerification(ctx context.Context, tranID string, intake *models.TransactionIntake) *models.TransactionStatus {
	pollCtx, cancel := context.WithTimeout(ctx, time.Duration(uc.cfg.Gateway.PollTimeout)*time.Second)
	defer cancel()

	result, err := nrpkg.WithSegmentAndReturn(pollCtx, "Payment.PollVerification", func() (*models.GatewayValidationResult, error) {
		return uc.gw.ValidateTransaction(pollCtx, tranID)
	})
	if err != nil {
		logger.Warn("Could not auto-check status with gateway",
			logger.String("transaction_id", tranID),
			logger.Err(err))
		return nil
	}

	mapped := mapVerificationStatus(result.Status)
	if !mapped.IsTerminal() {
		return nil
	}

	status := statusFromVerification(tranID, mapped, result, intake)
	if err := uc.repo.SetStatus(ctx, status); err != nil {
		logger.Error("Failed to persist verified status",
			logger.String("transaction_id", tranID),
			logger.Err(err))
		return nil
	}

	logger.Info("Auto-updated status from gateway verification",
		logger.String("transaction_id", tranID),
		logger.String("status", string(mapped)))

	uc.publishStatus(ctx, status)
	return status
}

// ValidatePayment checks ownership and completion of a transaction
func (uc *paymentUC) ValidatePayment(ctx context.Context, req *models.ValidatePaymentRequest) (*models.ValidatePaymentResponse, error) {
	if req.TransactionID == "" || req.UserID == "" || req.PlanID == "" {
		return nil, fmt.Errorf("%w: tran_id, userId, planId", payment.ErrValidation)
	}

	status, err := uc.repo.GetStatus(ctx, req.TransactionID)
	if err != nil {
		return nil, err
	}
	intake, err := uc.repo.GetIntake(ctx, req.TransactionID)
	if err != nil {
		return nil, err
	}
	if status == nil || intake == nil {
		return nil, payment.ErrNotFound
	}

	if intake.UserID != req.UserID || intake.PlanID != req.PlanID {
		return nil, payment.ErrOwnershipMismatch
	}

	if status.Status == models.StatusValid || status.Status == models.StatusValidated {
		return &models.ValidatePaymentResponse{
			Success:            true,
			Message:            "Payment validated successfully",
			PaymentData:        intake,
			TransactionDetails: status,
		}, nil
	}

	return &models.ValidatePaymentResponse{
		Success:            false,
		Message:            fmt.Sprintf("Payment not completed. Status: %s", status.Status),
		PaymentData:        intake,
		TransactionDetails: status,
	}, nil
}

// ForceCheck re-verifies a transaction against the gateway on demand. Unlike
// the read-path poll, the verified status is persisted even when it maps to
// PENDING.
func (uc *paymentUC) ForceCheck(ctx context.Context, tranID string) (*models.CheckResult, error) {
	intake, err := uc.repo.GetIntake(ctx, tranID)
	if err != nil {
		return nil, err
	}
	if intake == nil {
		return nil, payment.ErrNotFound
	}

	checkCtx, cancel := context.WithTimeout(ctx, time.Duration(uc.cfg.Gateway.SessionTimeout)*time.Second)
	defer cancel()

	result, err := uc.gw.ValidateTransaction(checkCtx, tranID)
	if err != nil {
		if errors.Is(err, payment.ErrGatewayUnavailable) {
			logger.Warn("Manual verification failed, keeping cached status",
				logger.String("transaction_id", tranID),
				logger.Err(err))
			return uc.cachedCheckResult(ctx, tranID), nil
		}
		return nil, err
	}
	if result.Status == "" {
		return &models.CheckResult{
			Success:       false,
			TransactionID: tranID,
			Message:       "Unable to verify payment status with gateway",
		}, nil
	}

	mapped := mapVerificationStatus(result.Status)
	status := statusFromVerification(tranID, mapped, result, intake)
	if err := uc.repo.SetStatus(ctx, status); err != nil {
		return nil, fmt.Errorf("failed to persist verified status: %w", err)
	}

	logger.Info("Updated status from manual verification",
		logger.String("transaction_id", tranID),
		logger.String("status", string(mapped)))

	uc.publishStatus(ctx, status)

	return &models.CheckResult{
		Success:       true,
		TransactionID: tranID,
		Status:        mapped,
		Message:       mapped.Message(),
		GatewayData:   result.Raw,
	}, nil
}

// SimulateOutcome records a terminal status for a known transaction. Exposed
// only through the test endpoints.
func (uc *paymentUC) SimulateOutcome(ctx context.Context, tranID string, outcome models.PaymentStatus) (*models.CheckResult, error) {
	status, err := uc.repo.GetStatus(ctx, tranID)
	if err != nil {
		return nil, err
	}
	intake, err := uc.repo.GetIntake(ctx, tranID)
	if err != nil {
		return nil, err
	}
	if status == nil && intake == nil {
		return nil, payment.ErrNotFound
	}

	now := time.Now()
	amount := "500.00"
	if intake != nil {
		amount = intake.Amount
	}

	update := &models.TransactionStatus{
		TransactionID: tranID,
		Status:        outcome,
		Amount:        amount,
		Currency:      models.DefaultCurrency,
		ProcessedAt:   now,
		Origin:        models.OriginNotification,
	}
	if outcome == models.StatusValid {
		update.BankTranID = fmt.Sprintf("BANK_%d", now.UnixMilli())
		update.CardType = "VISA-Debit"
	}

	if err := uc.repo.SetStatus(ctx, update); err != nil {
		return nil, fmt.Errorf("failed to store simulated status: %w", err)
	}

	uc.publishStatus(ctx, update)

	return &models.CheckResult{
		Success:       true,
		TransactionID: tranID,
		Status:        outcome,
		Message:       fmt.Sprintf("Payment marked as %s for testing", outcome),
	}, nil
}

// cachedCheckResult reports the last-known state after a soft gateway failure
func (uc *paymentUC) cachedCheckResult(ctx context.Context, tranID string) *models.CheckResult {
	result := &models.CheckResult{
		Success:       false,
		TransactionID: tranID,
		Message:       "Unable to verify payment status with gateway",
	}
	if cached, err := uc.repo.GetStatus(ctx, tranID); err == nil && cached != nil {
		result.Status = cached.Status
	}
	return result
}

func (uc *paymentUC) publishStatus(ctx context.Context, status *models.TransactionStatus) {
	uc.gw.PublishStatusChanged(ctx, &models.PaymentStatusEvent{
		TransactionID: status.TransactionID,
		Status:        status.Status,
		Origin:        status.Origin,
		Amount:        status.Amount,
		Currency:      status.Currency,
		BankTranID:    status.BankTranID,
		ProcessedAt:   status.ProcessedAt,
	})
}

func defaultString(val, fallback string) string {
	if val == "" {
		return fallback
	}
	return val
}
