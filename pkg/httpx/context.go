package httpx

import "context"

type ctxKey string

const (
	// CtxKeyUserID holds the authenticated user's ID, set by the gateway's
	// session middleware. Used by per-user rate limiting.
	CtxKeyUserID ctxKey = "user_id"
)

// UserIDFromContext returns the authenticated user ID, or "" when anonymous.
func UserIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyUserID).(string); ok {
		return v
	}
	return ""
}

// ContextWithUserID attaches the authenticated user's ID to the context.
func ContextWithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, CtxKeyUserID, userID)
}
