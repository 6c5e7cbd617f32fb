package api

import (
	"context"
	"time"
)

// QueryTimeout bounds the store calls made while serving one request.
// main overrides it from QUERY_TIMEOUT.
var QueryTimeout = 10 * time.Second

// WithQueryTimeout creates a context with query timeout
func WithQueryTimeout(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return context.WithTimeout(parent, QueryTimeout)
}
