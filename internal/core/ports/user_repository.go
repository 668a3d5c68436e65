package ports

import (
	"context"

	"github.com/peopledesk/users-api/internal/core/domain"
)

// SearchFilter carries the optional, AND-combined predicates for listing
// users. Every field is independently optional; the zero value matches the
// whole store.
type SearchFilter struct {
	Name     string       // substring match, case-insensitive; empty = no constraint
	Email    string       // substring match, case-insensitive; empty = no constraint
	JobTitle string       // exact match, case-insensitive; empty = no constraint
	Role     *domain.Role // exact match; nil = no constraint
	Active   *bool        // exact match; nil = no constraint
}

// UserRepository abstracts the relational store for user records.
type UserRepository interface {
	// Create persists a new user, assigning its ID. A case-insensitive email
	// collision surfaces as domain.ErrEmailTaken.
	Create(ctx context.Context, u *domain.User) error

	// FindByID returns the user with the given id, or domain.ErrUserNotFound.
	FindByID(ctx context.Context, id uint) (*domain.User, error)

	// Search returns all users matching the filter, ordered by id. An empty
	// result is not an error.
	Search(ctx context.Context, f SearchFilter) ([]domain.User, error)

	// Update writes back all mutable fields of an existing record. A
	// case-insensitive email collision surfaces as domain.ErrEmailTaken.
	Update(ctx context.Context, u *domain.User) error

	// Delete hard-removes the record, or returns domain.ErrUserNotFound.
	Delete(ctx context.Context, id uint) error

	// EmailInUse reports whether any user other than excludeID already holds
	// this email, compared case-insensitively. excludeID 0 excludes nobody.
	EmailInUse(ctx context.Context, email string, excludeID uint) (bool, error)

	// CountByJobTitle, CountByRole and CountByActive are the three
	// independent group-by-count passes behind the stats endpoint.
	CountByJobTitle(ctx context.Context) (map[string]int64, error)
	CountByRole(ctx context.Context) (map[string]int64, error)
	CountByActive(ctx context.Context) (map[bool]int64, error)
}
