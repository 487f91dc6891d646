package newrelic

import (
	"context"

	"github.com/labstack/echo/v4"
	nrecho "github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// FromEchoContext extracts the New Relic transaction from an Echo context.
// This is the standard way to get transactions in HTTP handlers.
func FromEchoContext(c echo.Context) *newrelic.Transaction {
	return nrecho.FromContext(c)
}

// FromContext extracts the New Relic transaction from a standard context.
// This is used in use cases and other business logic layers.
func FromContext(ctx context.Context) *newrelic.Transaction {
	return newrelic.FromContext(ctx)
}

// StartSegment creates a new segment for the given transaction.
// Returns nil if the transaction is not available.
func StartSegment(txn *newrelic.Transaction, name string) *newrelic.Segment {
	if txn == nil {
		return nil
	}
	return txn.StartSegment(name)
}

// SetTransactionName sets the name of the transaction for better visibility
func SetTransactionName(txn *newrelic.Transaction, name string) {
	if txn != nil {
		txn.SetName(name)
	}
}

// AddTransactionAttribute adds a custom attribute to the transaction
func AddTransactionAttribute(txn *newrelic.Transaction, key string, value interface{}) {
	if txn != nil {
		txn.AddAttribute(key, value)
	}
}

// NoticeTransactionError reports an error to New Relic
func NoticeTransactionError(txn *newrelic.Transaction, err error) {
	if txn != nil && err != nil {
		txn.NoticeError(err)
	}
}

// WithSegment executes a function within a New Relic segment
func WithSegment(ctx context.Context, segmentName string, fn func() error) error {
	txn := FromContext(ctx)
	segment := StartSegment(txn, segmentName)
	if segment != nil {
		defer segment.End()
	}

	return fn()
}

// WithSegmentAndReturn executes a function within a New Relic segment and
// returns its value
func WithSegmentAndReturn[T any](ctx context.Context, segmentName string, fn func() (T, error)) (T, error) {
	txn := FromContext(ctx)
	segment := StartSegment(txn, segmentName)
	if segment != nil {
		defer segment.End()
	}

	return fn()
}
