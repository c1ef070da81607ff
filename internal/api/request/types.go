package request

import (
	"time"

	"github.com/metamatong/comp3981-abalone-sumitoq/internal/model"
)

// CreateGuestRequest is the request body for creating a guest account
type CreateGuestRequest struct {
	DisplayName string `json:"display_name"`
}

// RegisterRequest is the request body for registering an account
type RegisterRequest struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
}

// LoginRequest is the request body for logging in
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// MatchConfigRequest carries match settings. All fields are optional; nil
// fields keep their current (or default) values.
type MatchConfigRequest struct {
	Mode            *string `json:"mode,omitempty"`
	HumanSide       *string `json:"human_side,omitempty"`
	Depth           *int    `json:"depth,omitempty"`
	Heuristic       *string `json:"heuristic,omitempty"`
	TieBreak        *string `json:"tie_break,omitempty"`
	Layout          *string `json:"layout,omitempty"`
	BlackTimeMs     *int64  `json:"black_time_ms,omitempty"`
	WhiteTimeMs     *int64  `json:"white_time_ms,omitempty"`
	MaxMoves        *int    `json:"max_moves,omitempty"`
	MoveTimeLimitMs *int64  `json:"move_time_limit_ms,omitempty"`
}

// ApplyTo overlays the request's set fields onto a config
func (r *MatchConfigRequest) ApplyTo(cfg *model.MatchConfig) error {
	if r == nil {
		return nil
	}
	if r.Mode != nil {
		cfg.Mode = model.Mode(*r.Mode)
	}
	if r.HumanSide != nil {
		side, ok := model.ParsePlayer(*r.HumanSide)
		if !ok {
			return model.ErrUnknownMode
		}
		cfg.HumanSide = side
	}
	if r.Depth != nil {
		cfg.Depth = *r.Depth
	}
	if r.Heuristic != nil {
		cfg.Heuristic = *r.Heuristic
	}
	if r.TieBreak != nil {
		cfg.TieBreak = *r.TieBreak
	}
	if r.Layout != nil {
		cfg.Layout = *r.Layout
	}
	if r.BlackTimeMs != nil {
		cfg.BlackTime = time.Duration(*r.BlackTimeMs) * time.Millisecond
	}
	if r.WhiteTimeMs != nil {
		cfg.WhiteTime = time.Duration(*r.WhiteTimeMs) * time.Millisecond
	}
	if r.MaxMoves != nil {
		cfg.MaxMoves = *r.MaxMoves
	}
	if r.MoveTimeLimitMs != nil {
		cfg.MoveTimeLimit = time.Duration(*r.MoveTimeLimitMs) * time.Millisecond
	}
	return nil
}

// MoveRequest is the request body for playing a move
type MoveRequest struct {
	Marbles   []string `json:"marbles"`
	Direction string   `json:"direction"`
}

// ToMove parses the request into a validated move shape
func (r MoveRequest) ToMove() (model.Move, error) {
	marbles := make([]model.Position, 0, len(r.Marbles))
	for _, str := range r.Marbles {
		p, err := model.ParsePosition(str)
		if err != nil {
			return model.Move{}, err
		}
		marbles = append(marbles, p)
	}

	d, ok := model.ParseDirection(r.Direction)
	if !ok {
		return model.Move{}, model.ErrUnknownDirection
	}

	return model.NewMove(marbles, d)
}
