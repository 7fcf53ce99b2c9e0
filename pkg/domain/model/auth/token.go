package auth

import (
	"crypto/subtle"
	"time"

	"github.com/appdock-io/appdock/pkg/domain/types"
	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

// TokenID represents a unique identifier for a session token
type TokenID string

// TokenSecret is the private half of a session token pair
type TokenSecret string

// String returns the string representation of TokenID
func (t TokenID) String() string {
	return string(t)
}

// Validate checks if the TokenID is valid
func (t TokenID) Validate() error {
	if t == "" {
		return goerr.New("token ID cannot be empty")
	}
	return nil
}

// Token is an opaque session token issued to a logged-in user. The
// secret is persisted alongside the ID and compared in constant time on
// validation.
type Token struct {
	ID        TokenID      `firestore:"id"`
	Secret    TokenSecret  `firestore:"secret" masq:"secret"`
	UserID    types.UserID `firestore:"user_id"`
	CreatedAt time.Time    `firestore:"created_at"`
	ExpiresAt time.Time    `firestore:"expires_at"`
}

// NewToken issues a token for the given user with the given lifetime
func NewToken(userID types.UserID, ttl time.Duration) *Token {
	now := time.Now().UTC()
	return &Token{
		ID:        TokenID(uuid.New().String()),
		Secret:    TokenSecret(uuid.New().String()),
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}

// Validate checks if the Token is well-formed
func (t *Token) Validate() error {
	if err := t.ID.Validate(); err != nil {
		return err
	}
	if t.Secret == "" {
		return goerr.New("token secret cannot be empty")
	}
	if err := t.UserID.Validate(); err != nil {
		return goerr.Wrap(err, "token has invalid user ID")
	}
	return nil
}

// IsExpired reports whether the token has passed its expiry
func (t *Token) IsExpired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}

// MatchSecret compares the given secret against the stored one in
// constant time.
func (t *Token) MatchSecret(secret TokenSecret) bool {
	return subtle.ConstantTimeCompare([]byte(t.Secret), []byte(secret)) == 1
}
