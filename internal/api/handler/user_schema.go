package handler

import (
	"time"

	"github.com/peopledesk/users-api/internal/pkg/optional"
)

// Request and response types owned by the transport layer. These are
// intentionally separate from domain/ports types so the JSON contract is not
// coupled to internal changes. Field constraints mirror the entity limits
// (name ≤150, email ≤200, jobTitle ≤80).

type createUserRequest struct {
	Name     string `json:"name"     validate:"required,max=150"`
	Email    string `json:"email"    validate:"required,email,max=200"`
	JobTitle string `json:"jobTitle" validate:"required,max=80"`
	Role     string `json:"role"     validate:"required"`
	Active   *bool  `json:"active"`
}

// updateUserRequest is a full replacement: active is required because the
// caller must supply the complete desired state.
type updateUserRequest struct {
	Name     string `json:"name"     validate:"required,max=150"`
	Email    string `json:"email"    validate:"required,email,max=200"`
	JobTitle string `json:"jobTitle" validate:"required,max=80"`
	Role     string `json:"role"     validate:"required"`
	Active   *bool  `json:"active"   validate:"required"`
}

// patchUserRequest uses presence-aware fields: an omitted key leaves the
// stored value untouched, and an explicit null is treated the same way.
// active additionally accepts string forms ("true"/"false").
type patchUserRequest struct {
	Name     optional.Field[string]            `json:"name"`
	Email    optional.Field[string]            `json:"email"`
	JobTitle optional.Field[string]            `json:"jobTitle"`
	Role     optional.Field[string]            `json:"role"`
	Active   optional.Field[optional.FlexBool] `json:"active"`
}

type userResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	JobTitle  string    `json:"jobTitle"`
	Role      string    `json:"role"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
}

type statsResponse struct {
	ByJobTitle map[string]int64 `json:"byJobTitle"`
	ByRole     map[string]int64 `json:"byRole"`
	ByActive   map[string]int64 `json:"byActive"`
}
