package types

import "github.com/m-mizutani/goerr/v2"

// MembershipRole represents the role of a user within a team
type MembershipRole string

const (
	MembershipRoleMember MembershipRole = "MEMBER"
	MembershipRoleAdmin  MembershipRole = "ADMIN"
	MembershipRoleOwner  MembershipRole = "OWNER"
)

// AllMembershipRoles returns all valid membership roles
func AllMembershipRoles() []MembershipRole {
	return []MembershipRole{
		MembershipRoleMember,
		MembershipRoleAdmin,
		MembershipRoleOwner,
	}
}

// IsValid checks if the membership role is valid
func (r MembershipRole) IsValid() bool {
	switch r {
	case MembershipRoleMember,
		MembershipRoleAdmin,
		MembershipRoleOwner:
		return true
	default:
		return false
	}
}

// IsAdmin reports whether the role grants administrative rights over the
// team and its credentials.
func (r MembershipRole) IsAdmin() bool {
	return r == MembershipRoleAdmin || r == MembershipRoleOwner
}

// String returns the string representation of the membership role
func (r MembershipRole) String() string {
	return string(r)
}

// ParseMembershipRole parses a string into a MembershipRole
func ParseMembershipRole(s string) (MembershipRole, error) {
	for _, role := range AllMembershipRoles() {
		if MembershipRole(s) == role {
			return role, nil
		}
	}
	return "", goerr.New("invalid membership role", goerr.V("role", s))
}
