package model

import (
	"github.com/appdock-io/appdock/pkg/domain/types"
)

// User represents an authenticated account and the credentials it owns
// individually. Team-owned credentials are never attached here; they are
// resolved through team membership.
type User struct {
	ID          types.UserID
	Name        string
	Avatar      string // Avatar URL (empty string = no image)
	Credentials []*Credential
}
