package http

import "context"

type callerKey struct{}

func withCaller(ctx context.Context, accountID string) context.Context {
	return context.WithValue(ctx, callerKey{}, accountID)
}

// CallerID returns the authenticated account id, or "" for anonymous requests.
func CallerID(ctx context.Context) string {
	id, _ := ctx.Value(callerKey{}).(string)
	return id
}
