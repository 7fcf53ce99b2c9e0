package interfaces

import (
	"context"

	"github.com/appdock-io/appdock/pkg/domain/model"
	"github.com/appdock-io/appdock/pkg/domain/types"
)

// UserRepository defines the interface for User data access
type UserRepository interface {
	// Put creates or replaces a user record. Credentials attached to the
	// argument are ignored; they are managed through PutCredential.
	Put(ctx context.Context, user *model.User) error

	// Get retrieves a user by ID with their individually owned
	// credentials attached.
	Get(ctx context.Context, id types.UserID) (*model.User, error)

	// PutCredential stores an individually owned credential. The
	// credential must not carry a team ID.
	PutCredential(ctx context.Context, cred *model.Credential) error

	// DeleteCredential removes an individually owned credential
	DeleteCredential(ctx context.Context, userID types.UserID, id types.CredentialID) error
}
