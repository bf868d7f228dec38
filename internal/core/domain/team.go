package domain

import "errors"

var ErrTeamNotFound = errors.New("team not found")

// Team is the scoping unit for the roster. In practice a single team is
// configured at startup and seeded once if absent.
type Team struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}
