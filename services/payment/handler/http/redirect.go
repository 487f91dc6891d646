package http

import (
	"html/template"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/walletlogs/payment-relay/internal/pkg/logger"
	"github.com/walletlogs/payment-relay/internal/pkg/models"
	nrpkg "github.com/walletlogs/payment-relay/internal/pkg/newrelic"
)

// resultPage renders the page shown when the gateway redirects the user's
// browser back to the relay. The window auto-closes so the user returns to
// the app.
var resultPage = template.Must(template.New("result").Parse(`<!DOCTYPE html>
<html>
<head><title>{{.Title}}</title></head>
<body>
  <h2>{{.Heading}}</h2>
  <p>Transaction ID: {{.TransactionID}}</p>
  <p>{{.Detail}}</p>
  <p>You may close this window and return to the app.</p>
  <script>
    setTimeout(function () { window.close(); }, 3000);
  </script>
</body>
</html>
`))

type resultPageData struct {
	Title         string
	Heading       string
	Detail        string
	TransactionID string
}

var redirectPages = map[models.RedirectKind]resultPageData{
	models.RedirectSuccess: {
		Title:   "Payment Successful",
		Heading: "✅ Payment Successful",
		Detail:  "Your payment has been processed successfully!",
	},
	models.RedirectFail: {
		Title:   "Payment Failed",
		Heading: "❌ Payment Failed",
		Detail:  "Your payment could not be processed. Please try again.",
	},
	models.RedirectCancel: {
		Title:   "Payment Cancelled",
		Heading: "⚠️ Payment Cancelled",
		Detail:  "Payment was cancelled by user.",
	},
}

// SuccessRedirect marks the transaction VALID and renders the success page
func (h *PaymentHandler) SuccessRedirect(c echo.Context) error {
	return h.redirect(c, models.RedirectSuccess)
}

// FailRedirect marks the transaction FAILED and renders the failure page
func (h *PaymentHandler) FailRedirect(c echo.Context) error {
	return h.redirect(c, models.RedirectFail)
}

// CancelRedirect marks the transaction CANCELLED and renders the cancel page
func (h *PaymentHandler) CancelRedirect(c echo.Context) error {
	return h.redirect(c, models.RedirectCancel)
}

// redirect handles both the GET and POST redirect legs. The page renders even
// when the transaction is unknown; the status update is then a no-op.
func (h *PaymentHandler) redirect(c echo.Context, kind models.RedirectKind) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Payment.Redirect")
	nrpkg.AddTransactionAttribute(txn, "redirect.kind", string(kind))

	tranID := c.FormValue("tran_id")
	if tranID == "" {
		tranID = c.QueryParam("tran_id")
	}

	if err := h.paymentUC.RecordRedirect(c.Request().Context(), kind, tranID); err != nil {
		// The user-facing page still renders; the stored state keeps its
		// previous value.
		logger.Error("Failed to record redirect",
			logger.String("transaction_id", tranID),
			logger.String("kind", string(kind)),
			logger.Err(err))
		nrpkg.NoticeTransactionError(txn, err)
	}

	data := redirectPages[kind]
	data.TransactionID = tranID
	if data.TransactionID == "" {
		data.TransactionID = "N/A"
	}

	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(http.StatusOK)
	return resultPage.Execute(c.Response(), data)
}
