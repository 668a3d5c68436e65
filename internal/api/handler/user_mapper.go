package handler

import (
	"github.com/peopledesk/users-api/internal/core/domain"
	"github.com/peopledesk/users-api/internal/core/ports"
)

// --- Request → Service input ---

func toCreateInput(req createUserRequest) ports.CreateUserInput {
	return ports.CreateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		JobTitle: req.JobTitle,
		Role:     req.Role,
		Active:   req.Active,
	}
}

func toUpdateInput(req updateUserRequest) ports.UpdateUserInput {
	return ports.UpdateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		JobTitle: req.JobTitle,
		Role:     req.Role,
		Active:   *req.Active,
	}
}

func toPatch(req patchUserRequest) ports.UserPatch {
	return ports.UserPatch{
		Name:     req.Name,
		Email:    req.Email,
		JobTitle: req.JobTitle,
		Role:     req.Role,
		Active:   req.Active,
	}
}

// --- Service result → HTTP response ---

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		JobTitle:  u.JobTitle,
		Role:      string(u.Role),
		Active:    u.Active,
		CreatedAt: u.CreatedAt.UTC(),
	}
}

func toUserResponses(users []domain.User) []userResponse {
	out := make([]userResponse, len(users))
	for i := range users {
		out[i] = toUserResponse(&users[i])
	}
	return out
}

func toStatsResponse(s *ports.UserStats) statsResponse {
	return statsResponse{
		ByJobTitle: s.ByJobTitle,
		ByRole:     s.ByRole,
		ByActive:   s.ByActive,
	}
}
