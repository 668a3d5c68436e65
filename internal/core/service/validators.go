package service

import (
	"context"
	"strings"

	"github.com/peopledesk/users-api/internal/core/domain"
	"github.com/peopledesk/users-api/internal/core/ports"
)

// Validation rules are independent, stateless apart from read-only store
// lookups, and run in registration order. The first failing rule aborts the
// operation; failures are never aggregated.

// CreateValidator gates the create operation.
type CreateValidator interface {
	Name() string
	ValidateCreate(ctx context.Context, in ports.CreateUserInput) error
}

// UpdateValidator gates the full-update operation. It sees both the incoming
// payload and the prior record.
type UpdateValidator interface {
	Name() string
	ValidateUpdate(ctx context.Context, in ports.UpdateUserInput, existing *domain.User) error
}

// PatchValidator gates the partial-update operation. It must inspect only
// the fields present in the patch.
type PatchValidator interface {
	Name() string
	ValidatePatch(ctx context.Context, p ports.UserPatch, existing *domain.User) error
}

// Validators groups the ordered chains for each mutating operation. New
// rules are added here, not inside the mutation engine.
type Validators struct {
	Create []CreateValidator
	Update []UpdateValidator
	Patch  []PatchValidator
}

// DefaultValidators declares the production chains in their fixed order.
func DefaultValidators(repo ports.UserRepository) Validators {
	return Validators{
		Create: []CreateValidator{
			&emailUniqueOnCreate{repo: repo},
		},
		Update: []UpdateValidator{
			&emailUniqueOnUpdate{repo: repo},
		},
		Patch: []PatchValidator{
			&emailUniqueOnPatch{repo: repo},
			&roleValueOnPatch{},
		},
	}
}

// emailUniqueOnCreate rejects blank emails and emails already held by any
// existing user, compared case-insensitively.
type emailUniqueOnCreate struct {
	repo ports.UserRepository
}

func (v *emailUniqueOnCreate) Name() string { return "email_unique_on_create" }

func (v *emailUniqueOnCreate) ValidateCreate(ctx context.Context, in ports.CreateUserInput) error {
	return checkEmailFree(ctx, v.repo, in.Email, 0)
}

// emailUniqueOnUpdate is a no-op when the email is unchanged (ignoring
// case); otherwise it rejects blank emails and emails held by a different
// record. The record under mutation is excluded by id so an unchanged email
// never collides with itself.
type emailUniqueOnUpdate struct {
	repo ports.UserRepository
}

func (v *emailUniqueOnUpdate) Name() string { return "email_unique_on_update" }

func (v *emailUniqueOnUpdate) ValidateUpdate(ctx context.Context, in ports.UpdateUserInput, existing *domain.User) error {
	if strings.EqualFold(in.Email, existing.Email) {
		return nil
	}
	return checkEmailFree(ctx, v.repo, in.Email, existing.ID)
}

// emailUniqueOnPatch applies the update rule only when an email field is
// present with a non-null value.
type emailUniqueOnPatch struct {
	repo ports.UserRepository
}

func (v *emailUniqueOnPatch) Name() string { return "email_unique_on_patch" }

func (v *emailUniqueOnPatch) ValidatePatch(ctx context.Context, p ports.UserPatch, existing *domain.User) error {
	email, ok := p.Email.Get()
	if !ok {
		return nil
	}
	if strings.EqualFold(email, existing.Email) {
		return nil
	}
	return checkEmailFree(ctx, v.repo, email, existing.ID)
}

// roleValueOnPatch rejects a present role field that does not parse to a
// member of the closed enumeration.
type roleValueOnPatch struct{}

func (v *roleValueOnPatch) Name() string { return "role_value_on_patch" }

func (v *roleValueOnPatch) ValidatePatch(_ context.Context, p ports.UserPatch, _ *domain.User) error {
	raw, ok := p.Role.Get()
	if !ok {
		return nil
	}
	_, err := domain.ParseRole(raw)
	return err
}

func checkEmailFree(ctx context.Context, repo ports.UserRepository, email string, excludeID uint) error {
	if strings.TrimSpace(email) == "" {
		return domain.NewValidationError("email is required")
	}
	taken, err := repo.EmailInUse(ctx, email, excludeID)
	if err != nil {
		return err
	}
	if taken {
		return domain.ErrEmailTaken
	}
	return nil
}
