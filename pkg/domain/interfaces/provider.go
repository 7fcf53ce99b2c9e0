package interfaces

import (
	"context"

	"github.com/appdock-io/appdock/pkg/domain/model"
)

// AppProvider resolves the set of enabled apps for a credential list.
// Implementations return, in a stable order of their own choosing, one
// descriptor per app type that is either globally enabled or backed by at
// least one of the given credentials. Returned descriptors may still
// carry catalog secrets; stripping them is the caller's job.
type AppProvider interface {
	EnabledApps(ctx context.Context, credentials []*model.Credential) ([]*model.App, error)
}
