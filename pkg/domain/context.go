package domain

import "context"

type sessionKey struct{}

// ContextWithSession tags ctx with the client session id, used to
// correlate lifecycle events and journal entries.
func ContextWithSession(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionKey{}, sessionID)
}

// SessionFromContext returns the session id carried by ctx, if any.
func SessionFromContext(ctx context.Context) string {
	id, _ := ctx.Value(sessionKey{}).(string)
	return id
}
