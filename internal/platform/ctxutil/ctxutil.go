package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type requestContextKey struct{}

// RequestContext carries the authenticated caller's identity through the
// mediation layer. It replaces ambient per-request state: handlers receive it
// explicitly next to the command they execute.
type RequestContext struct {
	UserID uuid.UUID
	Email  string
	Role   string
}

func (rc RequestContext) Authenticated() bool {
	return rc.UserID != uuid.Nil
}

func WithRequestContext(ctx context.Context, rc RequestContext) context.Context {
	return context.WithValue(ctx, requestContextKey{}, rc)
}

func GetRequestContext(ctx context.Context) RequestContext {
	if rc, ok := ctx.Value(requestContextKey{}).(RequestContext); ok {
		return rc
	}
	return RequestContext{}
}
