package model

import (
	"github.com/appdock-io/appdock/pkg/domain/types"
)

// App is a catalog descriptor for one integration. Descriptors are static
// metadata; which apps are visible to a user is decided by the resolver
// from the user's credentials.
//
// Key carries catalog-level installation secrets (shared app keys). Like
// Credential.Key it stays inside the service: the enricher drops it before
// building the response.
type App struct {
	Type           types.AppType
	Name           string
	Slug           string
	Variant        string // grouping such as "calendar" or "conferencing"; filters use prefix match
	Description    string
	LogoURL        string
	Categories     []string
	IsGlobal       bool // enabled for everyone without a credential
	ExtendsFeature []string
	Key            string `json:"-" masq:"secret"`
}
