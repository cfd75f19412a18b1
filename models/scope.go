package models

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// UserRole is the registry role of the acting user.
type UserRole string

const (
	// RoleEeva is the registry administrator; it is not bound to organizations.
	RoleEeva UserRole = "Eeva"

	// RolePete is the main user of an organization.
	RolePete UserRole = "Pete"

	// RoleShirley is a regular content editor.
	RoleShirley UserRole = "Shirley"
)

// ParseUserRole resolves a raw role name; matching is case-insensitive.
func ParseUserRole(s string) (UserRole, error) {
	for _, r := range []UserRole{RoleEeva, RolePete, RoleShirley} {
		if strings.EqualFold(string(r), strings.TrimSpace(s)) {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown user role '%s'", s)
}

// Scope is the caller context of one validation call.
type Scope struct {
	// Version is the API version the candidate was submitted with.
	Version int

	// Role is the acting user's role.
	Role UserRole

	// OrganizationIDs are the organizations the acting user belongs to.
	OrganizationIDs []uuid.UUID
}

// IsAdmin reports whether organization restrictions apply to the user.
func (s Scope) IsAdmin() bool {
	return s.Role == RoleEeva
}

// OwnsOrganization reports whether id is one of the user's organizations.
func (s Scope) OwnsOrganization(id uuid.UUID) bool {
	for _, org := range s.OrganizationIDs {
		if org == id {
			return true
		}
	}
	return false
}
