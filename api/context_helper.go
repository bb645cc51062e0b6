package api

import (
	"context"
	"time"
)

// QueryTimeout is the default timeout for database work outside a request
const QueryTimeout = 10 * time.Second

// WithQueryTimeout creates a context with a query timeout, QueryTimeout when
// timeout is not positive
func WithQueryTimeout(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	if timeout <= 0 {
		timeout = QueryTimeout
	}
	return context.WithTimeout(parent, timeout)
}
