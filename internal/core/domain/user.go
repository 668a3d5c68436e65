package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Role classifies a user's access level. It is a closed enumeration and is
// deliberately distinct from JobTitle, which is free-text occupation.
type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleManager Role = "MANAGER"
	RoleUser    Role = "USER"
)

// Roles lists every valid Role.
var Roles = []Role{RoleAdmin, RoleManager, RoleUser}

// ParseRole converts free-form input into a Role. Input is trimmed and
// upper-cased before matching, so "admin" and " Admin " both parse. Unknown
// values yield a ValidationError naming the accepted set; values are never
// silently coerced.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToUpper(strings.TrimSpace(s)))
	for _, valid := range Roles {
		if r == valid {
			return r, nil
		}
	}
	return "", NewValidationError(fmt.Sprintf("invalid role %q: use ADMIN, MANAGER or USER", s))
}

// User is the persisted user record. ID and CreatedAt are assigned by the
// store on creation and never change afterwards. Email is unique across all
// users, compared case-insensitively; the authoritative guard is the
// LOWER(email) unique index created at migration time.
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:150;not null"`
	Email     string    `json:"email" gorm:"size:200;not null"`
	JobTitle  string    `json:"jobTitle" gorm:"size:80;not null"`
	Role      Role      `json:"role" gorm:"size:20;not null"`
	Active    bool      `json:"active" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt" gorm:"not null"`
}

// ErrUserNotFound is returned when a referenced user id does not exist.
var ErrUserNotFound = errors.New("user not found")

// ErrEmailTaken signals a violation of the case-insensitive email-uniqueness
// invariant, whether caught by the validator chain or by the store's unique
// index.
var ErrEmailTaken = errors.New("email already in use")

// ValidationError reports a business-rule violation with a human-readable
// reason. The transport layer maps it to 400.
type ValidationError struct {
	Reason string
}

// NewValidationError builds a ValidationError with the given reason.
func NewValidationError(reason string) *ValidationError {
	return &ValidationError{Reason: reason}
}

func (e *ValidationError) Error() string { return e.Reason }
