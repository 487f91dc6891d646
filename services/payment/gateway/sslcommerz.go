package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/walletlogs/payment-relay/internal/pkg/logger"
	"github.com/walletlogs/payment-relay/internal/pkg/models"
	nrpkg "github.com/walletlogs/payment-relay/internal/pkg/newrelic"
	"github.com/walletlogs/payment-relay/services/payment"
)

const (
	sessionPath   = "/gwprocess/v4/api.php"
	validatorPath = "/validator/api/validationserverAPI.php"

	sessionSuccess = "SUCCESS"
)

// CreateSession opens a hosted checkout session. The gateway expects a
// form-encoded POST and answers JSON; anything but status SUCCESS is a
// rejection carrying the raw payload.
func (g *PaymentGW) CreateSession(ctx context.Context, req *models.GatewaySessionRequest) (*models.GatewaySessionResponse, error) {
	form := url.Values{}
	form.Set("store_id", g.cfg.Gateway.StoreID)
	form.Set("store_passwd", g.cfg.Gateway.StorePassword)
	form.Set("total_amount", req.Amount)
	form.Set("currency", req.Currency)
	form.Set("tran_id", req.TransactionID)
	form.Set("success_url", g.cfg.Gateway.CallbackBaseURL+"/success")
	form.Set("fail_url", g.cfg.Gateway.CallbackBaseURL+"/fail")
	form.Set("cancel_url", g.cfg.Gateway.CallbackBaseURL+"/cancel")
	form.Set("ipn_url", g.cfg.Gateway.CallbackBaseURL+"/ipn")
	form.Set("cus_name", req.CustomerName)
	form.Set("cus_email", req.CustomerEmail)
	form.Set("cus_phone", req.CustomerPhone)
	form.Set("cus_add1", req.CustomerAddress)
	form.Set("cus_city", "Dhaka")
	form.Set("cus_postcode", "1212")
	form.Set("cus_country", "Bangladesh")
	form.Set("shipping_method", "NO")
	form.Set("num_of_item", "1")
	form.Set("product_name", fmt.Sprintf("WalletLogs %s Plan", req.PlanName))
	form.Set("product_category", "Digital Services")
	form.Set("product_profile", "general")

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.client.BaseURL+sessionPath, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create session request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	body, err := g.do(ctx, httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: session creation: %v", payment.ErrGatewayUnavailable, err)
	}

	var resp models.GatewaySessionResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &payment.GatewayRejectedError{Reason: "malformed gateway response", Raw: body}
	}
	resp.Raw = body

	if resp.Status != sessionSuccess || resp.GatewayPageURL == "" {
		return nil, &payment.GatewayRejectedError{Reason: resp.FailedReason, Raw: body}
	}

	return &resp, nil
}

// ValidateTransaction asks the validator API for the authoritative status of
// a transaction. The caller bounds the call through the context deadline.
func (g *PaymentGW) ValidateTransaction(ctx context.Context, tranID string) (*models.GatewayValidationResult, error) {
	params := url.Values{}
	params.Set("val_id", tranID)
	params.Set("store_id", g.cfg.Gateway.StoreID)
	params.Set("store_passwd", g.cfg.Gateway.StorePassword)
	params.Set("format", "json")

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, g.client.BaseURL+validatorPath+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create validation request: %w", err)
	}

	body, err := g.do(ctx, httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: validation: %v", payment.ErrGatewayUnavailable, err)
	}

	var result models.GatewayValidationResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("%w: malformed validation response", payment.ErrGatewayUnavailable)
	}
	result.Raw = body

	return &result, nil
}

// do executes the request within a New Relic external segment and drains the body
func (g *PaymentGW) do(ctx context.Context, req *http.Request) ([]byte, error) {
	resp, err := nrpkg.InstrumentHTTPRequest(ctx, req, func() (*http.Response, error) {
		return g.client.HTTPClient.Do(req)
	})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read gateway response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		logger.Warn("Gateway returned non-200 status",
			logger.Int("status", resp.StatusCode),
			logger.String("url", req.URL.Path))
		return nil, fmt.Errorf("gateway returned status %d", resp.StatusCode)
	}

	return body, nil
}
