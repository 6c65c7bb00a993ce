// Package requestid carries a per-request correlation ID through
// context so log lines and responses can be tied back to one request.
package requestid

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey struct{}

// New returns a fresh request ID (UUID v4).
func New() string {
	return uuid.NewString()
}

// NewContext attaches the request ID to ctx.
func NewContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext returns the request ID stored in ctx, or "" when none is set.
func FromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}
