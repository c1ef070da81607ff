package model

import "time"

// Player is a marble colour / side. The zero value marks an empty cell.
type Player int8

const (
	NoPlayer Player = 0
	Black    Player = 1
	White    Player = 2
)

// Opponent returns the other side
func (p Player) Opponent() Player {
	switch p {
	case Black:
		return White
	case White:
		return Black
	default:
		return NoPlayer
	}
}

// String returns the lowercase side name
func (p Player) String() string {
	switch p {
	case Black:
		return "black"
	case White:
		return "white"
	default:
		return "none"
	}
}

// ParsePlayer resolves a side name ("black" or "white")
func ParsePlayer(s string) (Player, bool) {
	switch s {
	case "black":
		return Black, true
	case "white":
		return White, true
	default:
		return NoPlayer, false
	}
}

// AccountID uniquely identifies a user account across the system
type AccountID string

// Account represents a person using the server
type Account struct {
	ID          AccountID `json:"id"`
	DisplayName string    `json:"display_name"`
	IsGuest     bool      `json:"is_guest"` // true for unregistered accounts
	CreatedAt   time.Time `json:"created_at"`
}

// RegisteredAccount extends Account with authentication data.
// Stored separately so password hashes never travel with session state.
type RegisteredAccount struct {
	AccountID    AccountID `json:"account_id"`
	Username     string    `json:"username"` // login username (immutable)
	PasswordHash string    `json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
