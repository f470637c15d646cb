package handler

import (
	"github.com/space/planet-moon-api/internal/core/domain"
	"github.com/space/planet-moon-api/internal/core/ports"
)

// --- Request → Service input ---

func toCreateUserInput(req createUserRequest) ports.CreateUserInput {
	return ports.CreateUserInput{
		Username: req.Username,
		Password: req.Password,
		Enabled:  req.Enabled,
		Active:   req.Active,
		Role:     req.Role,
	}
}

func toUpdateUserInput(req updateUserRequest) ports.UpdateUserInput {
	return ports.UpdateUserInput{
		Username: req.Username,
		Password: req.Password,
		Enabled:  req.Enabled,
		Active:   req.Active,
		Role:     req.Role,
	}
}

// --- Service result → HTTP response ---

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		UserID:    u.UserID,
		Username:  u.Username,
		Enabled:   u.Enabled,
		Active:    u.Active,
		Role:      u.Role,
		CreatedAt: u.CreatedAt.UTC(),
		UpdatedAt: u.UpdatedAt.UTC(),
	}
}

func toUserListResponse(users []*domain.User) []userResponse {
	out := make([]userResponse, len(users))
	for i, u := range users {
		out[i] = toUserResponse(u)
	}
	return out
}

func toUserSummaryResponse(s *domain.UserSummary) userSummaryResponse {
	return userSummaryResponse{
		UserID:   s.UserID,
		Username: s.Username,
		Role:     s.Role,
		Enabled:  s.Enabled,
		Active:   s.Active,
	}
}

func toUserSummaryListResponse(summaries []*domain.UserSummary) []userSummaryResponse {
	out := make([]userSummaryResponse, len(summaries))
	for i, s := range summaries {
		out[i] = toUserSummaryResponse(s)
	}
	return out
}
