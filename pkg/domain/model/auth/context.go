package auth

import (
	"context"

	"github.com/appdock-io/appdock/pkg/domain/model"
)

type ctxKey string

const (
	userCtxKey  ctxKey = "auth_user"
	tokenCtxKey ctxKey = "auth_token"
)

// ContextWithUser returns a context carrying the authenticated user
func ContextWithUser(ctx context.Context, user *model.User) context.Context {
	return context.WithValue(ctx, userCtxKey, user)
}

// UserFromContext extracts the authenticated user from the context.
// Returns nil if no user is attached.
func UserFromContext(ctx context.Context) *model.User {
	user, _ := ctx.Value(userCtxKey).(*model.User)
	return user
}

// ContextWithToken returns a context carrying the validated session token
func ContextWithToken(ctx context.Context, token *Token) context.Context {
	return context.WithValue(ctx, tokenCtxKey, token)
}

// TokenFromContext extracts the session token from the context.
// Returns nil if no token is attached.
func TokenFromContext(ctx context.Context) *Token {
	token, _ := ctx.Value(tokenCtxKey).(*Token)
	return token
}
