package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/walletlogs/payment-relay/internal/pkg/logger"
)

// PanicRecoveryMiddleware recovers from handler panics, logs the stack trace
// and reports the panic to New Relic when a transaction is available.
func PanicRecoveryMiddleware(zapLogger *logger.ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					handlePanic(c, r, zapLogger)
				}
			}()

			return next(c)
		}
	}
}

func handlePanic(c echo.Context, r interface{}, zapLogger *logger.ZapLogger) {
	stack := debug.Stack()

	requestID := c.Response().Header().Get("X-Request-ID")
	if requestID == "" {
		requestID = c.Request().Header.Get("X-Request-ID")
	}

	if txn := newrelic.FromContext(c.Request().Context()); txn != nil {
		txn.NoticeError(fmt.Errorf("panic recovered: %v", r))
	}

	zapLogger.Error("Panic recovered",
		logger.Any("panic_value", r),
		logger.String("panic_type", fmt.Sprintf("%T", r)),
		logger.String("stack_trace", string(stack)),
		logger.String("method", c.Request().Method),
		logger.String("path", c.Request().URL.Path),
		logger.String("client_ip", c.RealIP()),
		logger.String("request_id", requestID))

	if !c.Response().Committed {
		_ = c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"success": false,
			"error":   "Internal server error",
			"code":    http.StatusInternalServerError,
		})
	}
}
