package middleware

import "context"

// Identity is the gate-resolved caller: a live user at the time the request
// passed the access gate.
type Identity struct {
	UserID string
	Email  string
	Name   string
}

type ctxKey string

const ctxIdentity ctxKey = "identity"

func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, ctxIdentity, id)
}

func IdentityFromContext(ctx context.Context) (Identity, bool) {
	v, ok := ctx.Value(ctxIdentity).(Identity)
	return v, ok && v.UserID != ""
}
