// Package request_id correlates the access log, error logs and Sentry events
// of one inbound request.
package request_id

import (
	"context"

	"github.com/google/uuid"
)

type ctxRequestIDKey struct{}

func With(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ctxRequestIDKey{}, requestID)
}

// FromContext returns an empty string when ctx carries no request ID.
func FromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxRequestIDKey{}).(string)
	return id
}

// Generate stores a new random UUID in ctx and returns it.
func Generate(ctx context.Context) (context.Context, string) {
	id := uuid.NewString()
	return With(ctx, id), id
}
