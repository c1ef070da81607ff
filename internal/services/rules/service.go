package rules

import (
	"github.com/metamatong/comp3981-abalone-sumitoq/internal/model"
)

// Service provides move generation and validation over board positions
type Service struct{}

// New creates a new rules Service
func New() *Service {
	return &Service{}
}

// LegalMoves enumerates every distinct legal move for the player. Lines are
// anchored at their lowest member and extended only through the three
// positive axis directions, so only line shapes actually on the board are
// generated; candidates are deduplicated by (sorted marbles, direction)
// before legality testing. Result ordering is insertion order, not sorted.
func (s *Service) LegalMoves(b *model.Board, player model.Player) []model.Move {
	var moves []model.Move
	seen := make(map[string]bool)

	marbles := b.Marbles(player)
	owned := make(map[model.Position]bool, len(marbles))
	for _, m := range marbles {
		owned[m] = true
	}

	add := func(line []model.Position, d model.Direction) {
		move, err := model.NewMove(line, d)
		if err != nil {
			return
		}
		if seen[move.Key()] {
			return
		}
		seen[move.Key()] = true
		if b.IsLegalMove(move, player) {
			moves = append(moves, move)
		}
	}

	for _, m := range marbles {
		for _, d := range model.Directions {
			add([]model.Position{m}, d)
		}

		for _, pd := range model.PositiveDirs {
			m2 := model.Neighbor(m, pd)
			if !owned[m2] {
				continue
			}
			for _, d := range model.Directions {
				add([]model.Position{m, m2}, d)
			}

			m3 := model.Neighbor(m2, pd)
			if !owned[m3] {
				continue
			}
			for _, d := range model.Directions {
				add([]model.Position{m, m2, m3}, d)
			}
		}
	}

	return moves
}

// IsPushMove reports whether the move would displace an opponent marble
func (s *Service) IsPushMove(b *model.Board, player model.Player, m model.Move) bool {
	if !m.IsInline() || m.Count() < 2 {
		return false
	}
	_, leading := m.LeadingTrailing()
	ahead := model.Neighbor(leading, m.Direction)
	return model.IsValid(ahead) && b.Get(ahead) == player.Opponent()
}

// ValidateMove checks shape and legality, returning the specific violated
// rule as an error. The board is never modified.
func (s *Service) ValidateMove(b *model.Board, player model.Player, m model.Move) error {
	if m.Count() < 1 || m.Count() > 3 {
		return model.ErrBadMarbleCount
	}
	return b.ValidateMove(m, player)
}

// ApplyMove validates and applies a move, mutating the board
func (s *Service) ApplyMove(b *model.Board, player model.Player, m model.Move) (model.MoveResult, error) {
	if err := s.ValidateMove(b, player, m); err != nil {
		return model.MoveResult{}, err
	}
	return b.ApplyMove(m, player), nil
}
