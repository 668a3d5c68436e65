package ports

import (
	"context"

	"github.com/peopledesk/users-api/internal/core/domain"
	"github.com/peopledesk/users-api/internal/pkg/optional"
)

// CreateUserInput carries all data needed to create a user. Role arrives as
// the raw string from the payload and is parsed by the service. A nil Active
// defaults to true.
type CreateUserInput struct {
	Name     string
	Email    string
	JobTitle string
	Role     string
	Active   *bool
}

// UpdateUserInput is a full replacement of the mutable fields. Callers must
// supply the complete desired state; nothing is preserved from the prior
// record.
type UpdateUserInput struct {
	Name     string
	Email    string
	JobTitle string
	Role     string
	Active   bool
}

// UserPatch names only the fields to change. Absent fields and explicit
// nulls leave the stored value untouched; Active honours any explicit value,
// including parseable string forms.
type UserPatch struct {
	Name     optional.Field[string]
	Email    optional.Field[string]
	JobTitle optional.Field[string]
	Role     optional.Field[string]
	Active   optional.Field[optional.FlexBool]
}

// UserStats holds the grouped counts over the full store, one map per
// dimension. Maps are empty, never nil, on an empty store.
type UserStats struct {
	ByJobTitle map[string]int64 `json:"byJobTitle"`
	ByRole     map[string]int64 `json:"byRole"`
	ByActive   map[string]int64 `json:"byActive"`
}

// StatsCache is an optional read-through cache for UserStats. Get returns
// (nil, nil) on a miss. Implementations must be safe to skip entirely: a
// cache failure never fails the request.
type StatsCache interface {
	Get(ctx context.Context) (*UserStats, error)
	Set(ctx context.Context, stats *UserStats) error
	Invalidate(ctx context.Context) error
}

// UserService defines the use-case operations over users.
type UserService interface {
	Search(ctx context.Context, f SearchFilter) ([]domain.User, error)
	Get(ctx context.Context, id uint) (*domain.User, error)
	Create(ctx context.Context, in CreateUserInput) (*domain.User, error)
	Update(ctx context.Context, id uint, in UpdateUserInput) (*domain.User, error)
	Patch(ctx context.Context, id uint, p UserPatch) (*domain.User, error)
	Delete(ctx context.Context, id uint) error
	Stats(ctx context.Context) (*UserStats, error)
}
