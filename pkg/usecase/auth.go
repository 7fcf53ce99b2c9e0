package usecase

import (
	"context"
	"time"

	"github.com/appdock-io/appdock/pkg/domain/interfaces"
	"github.com/appdock-io/appdock/pkg/domain/model"
	"github.com/appdock-io/appdock/pkg/domain/model/auth"
	"github.com/appdock-io/appdock/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

const defaultTokenTTL = 24 * time.Hour

// AuthUseCase resolves session tokens to users. It does not perform
// authentication against an identity provider; it only validates tokens
// that were already issued.
type AuthUseCase struct {
	repo          interfaces.Repository
	tokenTTL      time.Duration
	noAuthnUserID types.UserID
}

// AuthOption is a functional option for AuthUseCase
type AuthOption func(*AuthUseCase)

// WithTokenTTL sets the lifetime of issued tokens
func WithTokenTTL(ttl time.Duration) AuthOption {
	return func(uc *AuthUseCase) {
		uc.tokenTTL = ttl
	}
}

// WithNoAuthn skips token validation and treats every request as coming
// from the given user. Development only.
func WithNoAuthn(userID types.UserID) AuthOption {
	return func(uc *AuthUseCase) {
		uc.noAuthnUserID = userID
	}
}

func NewAuthUseCase(repo interfaces.Repository, opts ...AuthOption) *AuthUseCase {
	uc := &AuthUseCase{
		repo:     repo,
		tokenTTL: defaultTokenTTL,
	}

	for _, opt := range opts {
		opt(uc)
	}

	return uc
}

// IsNoAuthn reports whether the no-authentication development mode is on
func (uc *AuthUseCase) IsNoAuthn() bool {
	return uc.noAuthnUserID != ""
}

// NoAuthnUser loads the configured development user
func (uc *AuthUseCase) NoAuthnUser(ctx context.Context) (*model.User, error) {
	user, err := uc.repo.Users().Get(ctx, uc.noAuthnUserID)
	if err != nil {
		return nil, goerr.Wrap(ErrUserNotFound, "no-auth user not found", goerr.V("user_id", uc.noAuthnUserID))
	}
	return user, nil
}

// IssueToken creates and persists a session token for the given user.
// The user must exist.
func (uc *AuthUseCase) IssueToken(ctx context.Context, userID types.UserID) (*auth.Token, error) {
	if _, err := uc.repo.Users().Get(ctx, userID); err != nil {
		return nil, goerr.Wrap(ErrUserNotFound, "cannot issue token", goerr.V("user_id", userID))
	}

	token := auth.NewToken(userID, uc.tokenTTL)
	if err := uc.repo.PutToken(ctx, token); err != nil {
		return nil, goerr.Wrap(err, "failed to persist token")
	}

	return token, nil
}

// ValidateToken checks the token pair and returns the stored token.
// Expired tokens are deleted on sight.
func (uc *AuthUseCase) ValidateToken(ctx context.Context, tokenID auth.TokenID, secret auth.TokenSecret) (*auth.Token, error) {
	token, err := uc.repo.GetToken(ctx, tokenID)
	if err != nil {
		return nil, goerr.Wrap(ErrInvalidToken, "token lookup failed", goerr.V("token_id", tokenID))
	}

	if !token.MatchSecret(secret) {
		return nil, goerr.Wrap(ErrInvalidToken, "token secret mismatch", goerr.V("token_id", tokenID))
	}

	if token.IsExpired(time.Now().UTC()) {
		_ = uc.repo.DeleteToken(ctx, tokenID)
		return nil, goerr.Wrap(ErrInvalidToken, "token expired", goerr.V("token_id", tokenID))
	}

	return token, nil
}

// ResolveUser loads the user a validated token belongs to, with their
// individual credentials attached.
func (uc *AuthUseCase) ResolveUser(ctx context.Context, token *auth.Token) (*model.User, error) {
	user, err := uc.repo.Users().Get(ctx, token.UserID)
	if err != nil {
		return nil, goerr.Wrap(ErrUserNotFound, "token user not found", goerr.V("user_id", token.UserID))
	}
	return user, nil
}

// Logout deletes the session token. Deleting an unknown token is not an
// error; the session is gone either way.
func (uc *AuthUseCase) Logout(ctx context.Context, tokenID auth.TokenID) error {
	_ = uc.repo.DeleteToken(ctx, tokenID)
	return nil
}
