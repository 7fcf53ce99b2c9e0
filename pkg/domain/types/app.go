package types

import (
	"regexp"

	"github.com/m-mizutani/goerr/v2"
)

// AppType identifies one integration in the catalog, e.g. "zoom_video".
// Credentials reference the app they back through this value.
type AppType string

var appTypePattern = regexp.MustCompile(`^[a-z0-9]+([_-][a-z0-9]+)*$`)

// Validate checks if the AppType is valid
func (a AppType) Validate() error {
	if a == "" {
		return goerr.New("app type cannot be empty")
	}
	if !appTypePattern.MatchString(string(a)) {
		return goerr.New("app type must be lowercase alphanumeric with hyphens or underscores", goerr.V("type", a))
	}
	return nil
}

// String returns the string representation of AppType
func (a AppType) String() string {
	return string(a)
}
