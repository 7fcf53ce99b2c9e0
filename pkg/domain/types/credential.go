package types

import (
	"github.com/m-mizutani/goerr/v2"
)

// CredentialID represents a unique identifier for a credential
type CredentialID string

// Validate checks if the CredentialID is valid
func (c CredentialID) Validate() error {
	if c == "" {
		return goerr.New("credential ID cannot be empty")
	}
	return nil
}

// String returns the string representation of CredentialID
func (c CredentialID) String() string {
	return string(c)
}
