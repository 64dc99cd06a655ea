package auth

import (
	"context"
)

const authenticationContextKey contextKey = iota

type contextKey int

func WithAuthentication[T Principal](ctx context.Context, auth Authentication[T]) context.Context {
	return context.WithValue(ctx, authenticationContextKey, auth)
}

func GetAuthentication[T Principal](ctx context.Context) (Authentication[T], bool) {
	authentication, ok := ctx.Value(authenticationContextKey).(Authentication[T])
	if !ok || authentication == nil {
		return nil, false
	}

	return authentication, true
}

func GetPrincipal[T Principal](ctx context.Context) (*T, error) {
	authentication, ok := GetAuthentication[T](ctx)
	if !ok {
		return nil, ErrUnauthenticated
	}

	return authentication.Principal(), nil
}
