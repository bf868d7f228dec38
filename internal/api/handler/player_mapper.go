package handler

import (
	"github.com/tibtennis/roster-api/internal/core/domain"
	"github.com/tibtennis/roster-api/internal/core/ports"
)

func toPlayerResponse(u *domain.User) playerResponse {
	return playerResponse{
		ID:        u.ID,
		Name:      u.Name,
		TeamID:    u.TeamID,
		Role:      u.Role,
		Email:     u.Email,
		Phone:     u.Phone,
		Position:  u.Position,
		LastLogin: u.LastLogin,
		CreatedAt: u.CreatedAt,
	}
}

func toPlayersResponse(users []*domain.User) []playerResponse {
	out := make([]playerResponse, len(users))
	for i, u := range users {
		out[i] = toPlayerResponse(u)
	}
	return out
}

func toReorderItems(reqs []reorderItemRequest) []ports.ReorderItem {
	items := make([]ports.ReorderItem, len(reqs))
	for i, r := range reqs {
		items[i] = ports.ReorderItem{ID: r.ID, Position: r.Position}
	}
	return items
}
