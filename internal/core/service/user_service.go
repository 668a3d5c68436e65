package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/peopledesk/users-api/internal/core/domain"
	"github.com/peopledesk/users-api/internal/core/ports"
)

// UserService implements the mutation engine, the combined-filter search and
// the stats aggregation over a UserRepository. Every mutating operation is
// gated by its validator chain before the store is touched.
type UserService struct {
	repo       ports.UserRepository
	validators Validators
	cache      ports.StatsCache // nil when stats caching is disabled
	logger     zerolog.Logger
}

var _ ports.UserService = (*UserService)(nil)

func NewUserService(repo ports.UserRepository, validators Validators, cache ports.StatsCache, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, validators: validators, cache: cache, logger: logger}
}

// Search applies the AND-combined optional filters. String filters are
// trimmed; blank filters impose no constraint. A query matching nothing
// returns an empty slice, never an error.
func (s *UserService) Search(ctx context.Context, f ports.SearchFilter) ([]domain.User, error) {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.TrimSpace(f.Email)
	f.JobTitle = strings.TrimSpace(f.JobTitle)

	users, err := s.repo.Search(ctx, f)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []domain.User{}
	}
	return users, nil
}

func (s *UserService) Get(ctx context.Context, id uint) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

// Create validates the payload, defaults Active to true when omitted, and
// persists a new record. ID and CreatedAt are server-assigned; any
// client-supplied id is ignored by construction.
func (s *UserService) Create(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
	role, err := domain.ParseRole(in.Role)
	if err != nil {
		return nil, err
	}

	for _, v := range s.validators.Create {
		if err := v.ValidateCreate(ctx, in); err != nil {
			s.logger.Debug().Str("rule", v.Name()).Err(err).Msg("create rejected")
			return nil, err
		}
	}

	active := true
	if in.Active != nil {
		active = *in.Active
	}

	u := &domain.User{
		Name:      in.Name,
		Email:     in.Email,
		JobTitle:  in.JobTitle,
		Role:      role,
		Active:    active,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}

	s.invalidateStats(ctx)
	s.logger.Info().Uint("user_id", u.ID).Str("role", string(role)).Msg("user created")
	return u, nil
}

// Update replaces all mutable fields wholesale. Fields not supplied by the
// caller are not preserved; UpdateUserInput is the complete desired state.
func (s *UserService) Update(ctx context.Context, id uint, in ports.UpdateUserInput) (*domain.User, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	role, err := domain.ParseRole(in.Role)
	if err != nil {
		return nil, err
	}

	for _, v := range s.validators.Update {
		if err := v.ValidateUpdate(ctx, in, existing); err != nil {
			s.logger.Debug().Str("rule", v.Name()).Uint("user_id", id).Err(err).Msg("update rejected")
			return nil, err
		}
	}

	existing.Name = in.Name
	existing.Email = in.Email
	existing.JobTitle = in.JobTitle
	existing.Role = role
	existing.Active = in.Active

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}

	s.invalidateStats(ctx)
	s.logger.Info().Uint("user_id", id).Msg("user updated")
	return existing, nil
}

// Patch applies only the fields present in the payload. A null value for a
// present key is treated as "do not change"; all other fields keep their
// prior values.
func (s *UserService) Patch(ctx context.Context, id uint, p ports.UserPatch) (*domain.User, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	for _, v := range s.validators.Patch {
		if err := v.ValidatePatch(ctx, p, existing); err != nil {
			s.logger.Debug().Str("rule", v.Name()).Uint("user_id", id).Err(err).Msg("patch rejected")
			return nil, err
		}
	}

	if name, ok := p.Name.Get(); ok {
		existing.Name = name
	}
	if email, ok := p.Email.Get(); ok {
		existing.Email = email
	}
	if jobTitle, ok := p.JobTitle.Get(); ok {
		existing.JobTitle = jobTitle
	}
	if raw, ok := p.Role.Get(); ok {
		role, err := domain.ParseRole(raw)
		if err != nil {
			// Unreachable after the chain, but ParseRole stays the single
			// authority on enum membership.
			return nil, err
		}
		existing.Role = role
	}
	if active, ok := p.Active.Get(); ok {
		existing.Active = bool(active)
	}

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}

	s.invalidateStats(ctx)
	s.logger.Info().Uint("user_id", id).Msg("user patched")
	return existing, nil
}

// Delete hard-removes the record.
func (s *UserService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateStats(ctx)
	s.logger.Info().Uint("user_id", id).Msg("user deleted")
	return nil
}

// Stats aggregates the full store along three independent dimensions. With a
// cache configured, results are served from it until the next mutation; a
// cache failure degrades to recomputation.
func (s *UserService) Stats(ctx context.Context) (*ports.UserStats, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx)
		if err != nil {
			s.logger.Warn().Err(err).Msg("stats cache read failed")
		} else if cached != nil {
			return cached, nil
		}
	}

	byJobTitle, err := s.repo.CountByJobTitle(ctx)
	if err != nil {
		return nil, err
	}
	byRole, err := s.repo.CountByRole(ctx)
	if err != nil {
		return nil, err
	}
	activeCounts, err := s.repo.CountByActive(ctx)
	if err != nil {
		return nil, err
	}

	byActive := make(map[string]int64, len(activeCounts))
	for active, n := range activeCounts {
		if active {
			byActive["active"] = n
		} else {
			byActive["inactive"] = n
		}
	}

	stats := &ports.UserStats{
		ByJobTitle: nonNil(byJobTitle),
		ByRole:     nonNil(byRole),
		ByActive:   byActive,
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, stats); err != nil {
			s.logger.Warn().Err(err).Msg("stats cache write failed")
		}
	}
	return stats, nil
}

func (s *UserService) invalidateStats(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("stats cache invalidation failed")
	}
}

func nonNil(m map[string]int64) map[string]int64 {
	if m == nil {
		return map[string]int64{}
	}
	return m
}
