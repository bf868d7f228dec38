package handler

import "time"

// --- Request types ---

type createPlayerRequest struct {
	Name   string `json:"name"    validate:"required"`
	Email  string `json:"email"   validate:"omitempty,email"`
	Phone  string `json:"phone"`
	TeamID string `json:"team_id"`
}

// updatePlayerRequest is a partial update: absent fields stay untouched,
// hence the pointers.
type updatePlayerRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email" validate:"omitempty,email"`
	Phone *string `json:"phone"`
}

type reorderItemRequest struct {
	ID       string `json:"_id" validate:"required"`
	Position int    `json:"position"`
}

type reorderRequest struct {
	Players []reorderItemRequest `json:"players" validate:"required,min=1,dive"`
}

// --- Response types ---

// playerResponse is the JSON contract for player records. The id field is
// "_id" to match what the existing clients expect; the password hash is never
// part of it.
type playerResponse struct {
	ID        string     `json:"_id"`
	Name      string     `json:"name"`
	TeamID    string     `json:"team_id"`
	Role      string     `json:"role"`
	Email     string     `json:"email,omitempty"`
	Phone     string     `json:"phone,omitempty"`
	Position  *int       `json:"position,omitempty"`
	LastLogin *time.Time `json:"last_login,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

type messageResponse struct {
	Message string `json:"message"`
}
