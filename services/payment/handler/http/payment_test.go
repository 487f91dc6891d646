package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walletlogs/payment-relay/internal/pkg/models"
	"github.com/walletlogs/payment-relay/internal/utils"
	"github.com/walletlogs/payment-relay/services/payment"
	"github.com/walletlogs/payment-relay/services/payment/mocks"
)

func newTestContext(method, path string, body string, contentType string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) utils.Response {
	t.Helper()
	var resp utils.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func decodeErrorEnvelope(t *testing.T, rec *httptest.ResponseRecorder) utils.ErrorResponse {
	t.Helper()
	var resp utils.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestInitiatePayment_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockPaymentUC(ctrl)
	h := NewPaymentHandler(uc)

	uc.EXPECT().
		InitiatePayment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, req *models.InitiatePaymentRequest) (*models.InitiatePaymentResponse, error) {
			assert.Equal(t, "500.00", req.Amount)
			assert.Equal(t, "premium", req.PlanID)
			return &models.InitiatePaymentResponse{
				GatewayPageURL: "https://sandbox.sslcommerz.com/EasyCheckOut/abc",
				TransactionID:  "WL_premium_user-1_1",
			}, nil
		})

	body := `{"amount":"500.00","email":"user@example.com","planId":"premium","planName":"Premium Plan","userId":"user-1"}`
	c, rec := newTestContext(http.MethodPost, "/initiate-payment", body, echo.MIMEApplicationJSON)

	require.NoError(t, h.InitiatePayment(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	resp := decodeEnvelope(t, rec)
	assert.True(t, resp.Success)
	assert.Equal(t, "Payment session created", resp.Message)
	assert.Contains(t, rec.Body.String(), "GatewayPageURL")
}

func TestInitiatePayment_MissingFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockPaymentUC(ctrl)
	h := NewPaymentHandler(uc)

	uc.EXPECT().
		InitiatePayment(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("%w: amount, email, planId, planName, userId", payment.ErrValidation))

	c, rec := newTestContext(http.MethodPost, "/initiate-payment", `{"amount":"500.00"}`, echo.MIMEApplicationJSON)

	require.NoError(t, h.InitiatePayment(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decodeErrorEnvelope(t, rec)
	assert.False(t, resp.Success)
	assert.Equal(t, "Missing required fields: amount, email, planId, planName, userId", resp.Error)
}

func TestInitiatePayment_GatewayRejectionCarriesDebugPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockPaymentUC(ctrl)
	h := NewPaymentHandler(uc)

	uc.EXPECT().
		InitiatePayment(gomock.Any(), gomock.Any()).
		Return(nil, &payment.GatewayRejectedError{
			Reason: "Store Credential Error",
			Raw:    json.RawMessage(`{"status":"FAILED","failedreason":"Store Credential Error"}`),
		})

	body := `{"amount":"500.00","email":"user@example.com","planId":"premium","planName":"Premium Plan","userId":"user-1"}`
	c, rec := newTestContext(http.MethodPost, "/initiate-payment", body, echo.MIMEApplicationJSON)

	require.NoError(t, h.InitiatePayment(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decodeErrorEnvelope(t, rec)
	assert.Equal(t, "Failed to generate payment URL", resp.Error)
	assert.NotNil(t, resp.Debug)
}

func TestHandleIPN_FormEncodedNotification(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockPaymentUC(ctrl)
	h := NewPaymentHandler(uc)

	uc.EXPECT().
		RecordNotification(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, n *models.PaymentNotification) error {
			assert.Equal(t, "WL_premium_user-1_1", n.TransactionID)
			assert.Equal(t, "VALID", n.Status)
			assert.Equal(t, "BANK_7", n.BankTranID)
			return nil
		})

	form := url.Values{}
	form.Set("tran_id", "WL_premium_user-1_1")
	form.Set("status", "VALID")
	form.Set("amount", "500.00")
	form.Set("bank_tran_id", "BANK_7")
	c, rec := newTestContext(http.MethodPost, "/ipn", form.Encode(), echo.MIMEApplicationForm)

	require.NoError(t, h.HandleIPN(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decodeEnvelope(t, rec).Success)
}

func TestHandleIPN_MissingFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockPaymentUC(ctrl)
	h := NewPaymentHandler(uc)

	uc.EXPECT().
		RecordNotification(gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("%w: tran_id, status", payment.ErrValidation))

	c, rec := newTestContext(http.MethodPost, "/ipn", "amount=500.00", echo.MIMEApplicationForm)

	require.NoError(t, h.HandleIPN(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Missing transaction ID or status", decodeErrorEnvelope(t, rec).Error)
}

func TestGetPaymentStatus_UnknownTransactionStillOK(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockPaymentUC(ctrl)
	h := NewPaymentHandler(uc)

	uc.EXPECT().
		GetPaymentStatus(gomock.Any(), "WL_missing").
		Return(&models.PaymentStatusResponse{
			TransactionID: "WL_missing",
			Status:        models.StatusUnknown,
			Message:       "Transaction not found",
		}, nil)

	c, rec := newTestContext(http.MethodGet, "/payment-status/WL_missing", "", "")
	c.SetParamNames("tranID")
	c.SetParamValues("WL_missing")

	require.NoError(t, h.GetPaymentStatus(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"UNKNOWN"`)
}

func TestValidatePayment_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockPaymentUC(ctrl)
	h := NewPaymentHandler(uc)

	uc.EXPECT().
		ValidatePayment(gomock.Any(), gomock.Any()).
		Return(nil, payment.ErrNotFound)

	body := `{"tran_id":"WL_missing","userId":"user-1","planId":"premium"}`
	c, rec := newTestContext(http.MethodPost, "/validate-payment", body, echo.MIMEApplicationJSON)

	require.NoError(t, h.ValidatePayment(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Payment record not found", decodeErrorEnvelope(t, rec).Error)
}

func TestValidatePayment_OwnershipMismatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockPaymentUC(ctrl)
	h := NewPaymentHandler(uc)

	uc.EXPECT().
		ValidatePayment(gomock.Any(), gomock.Any()).
		Return(nil, payment.ErrOwnershipMismatch)

	body := `{"tran_id":"WL_premium_user-1_1","userId":"intruder","planId":"premium"}`
	c, rec := newTestContext(http.MethodPost, "/validate-payment", body, echo.MIMEApplicationJSON)

	require.NoError(t, h.ValidatePayment(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Payment validation failed: user or plan mismatch", decodeErrorEnvelope(t, rec).Error)
}

func TestForceCheck_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockPaymentUC(ctrl)
	h := NewPaymentHandler(uc)

	uc.EXPECT().
		ForceCheck(gomock.Any(), "WL_missing").
		Return(nil, payment.ErrNotFound)

	c, rec := newTestContext(http.MethodPost, "/check-payment-with-sslc/WL_missing", "", "")
	c.SetParamNames("tranID")
	c.SetParamValues("WL_missing")

	require.NoError(t, h.ForceCheck(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Transaction not found", decodeErrorEnvelope(t, rec).Error)
}

func TestSuccessRedirect_RendersPageAndRecordsStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockPaymentUC(ctrl)
	h := NewPaymentHandler(uc)

	uc.EXPECT().
		RecordRedirect(gomock.Any(), models.RedirectSuccess, "WL_premium_user-1_1").
		Return(nil)

	form := url.Values{}
	form.Set("tran_id", "WL_premium_user-1_1")
	c, rec := newTestContext(http.MethodPost, "/success", form.Encode(), echo.MIMEApplicationForm)

	require.NoError(t, h.SuccessRedirect(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/html")
	assert.Contains(t, rec.Body.String(), "Payment Successful")
	assert.Contains(t, rec.Body.String(), "WL_premium_user-1_1")
}

func TestCancelRedirect_NoTransactionIDStillRenders(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockPaymentUC(ctrl)
	h := NewPaymentHandler(uc)

	uc.EXPECT().
		RecordRedirect(gomock.Any(), models.RedirectCancel, "").
		Return(nil)

	c, rec := newTestContext(http.MethodGet, "/cancel", "", "")

	require.NoError(t, h.CancelRedirect(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Payment Cancelled")
	assert.Contains(t, rec.Body.String(), "N/A")
}

func TestFailRedirect_RecordErrorStillRendersPage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockPaymentUC(ctrl)
	h := NewPaymentHandler(uc)

	uc.EXPECT().
		RecordRedirect(gomock.Any(), models.RedirectFail, "WL_premium_user-1_2").
		Return(fmt.Errorf("store write failed"))

	c, rec := newTestContext(http.MethodGet, "/fail?tran_id=WL_premium_user-1_2", "", "")

	require.NoError(t, h.FailRedirect(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Payment Failed")
}

func TestTestSuccess_SimulatesValidOutcome(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockPaymentUC(ctrl)
	h := NewPaymentHandler(uc)

	uc.EXPECT().
		SimulateOutcome(gomock.Any(), "WL_premium_user-1_3", models.StatusValid).
		Return(&models.CheckResult{
			Success:       true,
			TransactionID: "WL_premium_user-1_3",
			Status:        models.StatusValid,
			Message:       "Payment marked as VALID for testing",
		}, nil)

	c, rec := newTestContext(http.MethodPost, "/test-success/WL_premium_user-1_3", "", "")
	c.SetParamNames("tranID")
	c.SetParamValues("WL_premium_user-1_3")

	require.NoError(t, h.TestSuccess(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Payment marked as VALID for testing")
}
