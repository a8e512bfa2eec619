// Package shared contains common domain types, errors, events, and value objects
// that are used across all domain packages.
package shared

import (
	"regexp"
	"strings"
)

// ══════════════════════════════════════════════════════════════════════════════
// ID Value Objects
// ══════════════════════════════════════════════════════════════════════════════

// UserID represents a unique platform user identifier (UUID format).
type UserID string

// UUID validation regex (simple version).
var uuidRegex = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)

// IsValid checks if the user ID is a valid UUID.
func (u UserID) IsValid() bool {
	return uuidRegex.MatchString(string(u))
}

// String returns the string representation.
func (u UserID) String() string {
	return string(u)
}

// IsEmpty checks if the ID is empty.
func (u UserID) IsEmpty() bool {
	return u == ""
}

// NewUserID creates a new UserID with validation.
func NewUserID(id string) (UserID, error) {
	uid := UserID(strings.ToLower(strings.TrimSpace(id)))
	if !uid.IsValid() {
		return "", NewDomainError("shared", "NewUserID", ErrInvalidID, "invalid user ID format")
	}
	return uid, nil
}

// ══════════════════════════════════════════════════════════════════════════════
// Role Value Object
// ══════════════════════════════════════════════════════════════════════════════

// Role represents a caller's role on the platform.
// Roles come from the injected identity resolver, never from request headers.
type Role string

const (
	// RoleMember is a regular coaching-program member.
	RoleMember Role = "member"
	// RoleCoach is a coach with read access to member profiles.
	RoleCoach Role = "coach"
	// RoleAdmin is a platform administrator.
	RoleAdmin Role = "admin"
	// RoleMaster is a master account used for demos and internal review.
	RoleMaster Role = "master"
)

// IsValid checks if the role is known.
func (r Role) IsValid() bool {
	switch r {
	case RoleMember, RoleCoach, RoleAdmin, RoleMaster:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (r Role) String() string {
	return string(r)
}

// BypassesCooldown reports whether the role skips the retake cooldown.
// Admin and master accounts may always restart the assessment.
func (r Role) BypassesCooldown() bool {
	return r == RoleAdmin || r == RoleMaster
}

// ParseRole parses a string into a Role, defaulting to member.
func ParseRole(s string) Role {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if !r.IsValid() {
		return RoleMember
	}
	return r
}

// ══════════════════════════════════════════════════════════════════════════════
// Percentage Value Object
// ══════════════════════════════════════════════════════════════════════════════

// Percentage represents an integer percentage in [0, 100].
type Percentage int

// IsValid checks if the percentage is within range.
func (p Percentage) IsValid() bool {
	return p >= 0 && p <= 100
}

// Int returns the underlying int value.
func (p Percentage) Int() int {
	return int(p)
}

// NewPercentage creates a new Percentage with validation.
func NewPercentage(value int) (Percentage, error) {
	p := Percentage(value)
	if !p.IsValid() {
		return 0, NewDomainError("shared", "NewPercentage", ErrValueOutOfRange, "percentage must be between 0 and 100")
	}
	return p, nil
}
