package model

import (
	"fmt"
	"slices"
	"strings"
)

// Move is an immutable candidate move: 1-3 marbles plus a movement direction.
// Marbles are held sorted by (row, col), so two moves with the same marbles
// and direction compare equal regardless of input ordering.
type Move struct {
	Marbles   []Position `json:"marbles"`
	Direction Direction  `json:"direction"`
}

// NewMove validates shape and builds a canonical Move. It rejects malformed
// input (count, duplicates, non-colinearity, unknown direction) with a
// specific error; legality against a board is checked separately.
func NewMove(marbles []Position, d Direction) (Move, error) {
	if len(marbles) < 1 || len(marbles) > 3 {
		return Move{}, ErrBadMarbleCount
	}
	if !d.IsCanonical() {
		return Move{}, ErrUnknownDirection
	}

	sorted := make([]Position, len(marbles))
	copy(sorted, marbles)
	slices.SortFunc(sorted, comparePositions)

	for i := 1; i < len(sorted); i++ {
		if sorted[i] == sorted[i-1] {
			return Move{}, ErrDuplicateMarbles
		}
	}
	if !marblesInLine(sorted) {
		return Move{}, ErrNotColinear
	}

	return Move{Marbles: sorted, Direction: d}, nil
}

// marblesInLine reports whether sorted marbles form an arithmetic
// progression along one of the six directions (trivially true for one marble)
func marblesInLine(sorted []Position) bool {
	if len(sorted) <= 1 {
		return true
	}
	d := Direction{DR: sorted[1].Row - sorted[0].Row, DC: sorted[1].Col - sorted[0].Col}
	if !d.IsCanonical() {
		return false
	}
	for i := 2; i < len(sorted); i++ {
		expected := Position{Row: sorted[0].Row + i*d.DR, Col: sorted[0].Col + i*d.DC}
		if sorted[i] != expected {
			return false
		}
	}
	return true
}

// Count returns the number of marbles in the move
func (m Move) Count() int {
	return len(m.Marbles)
}

// IsInline reports whether the move direction is parallel or anti-parallel
// to the line the marbles form. A single marble is trivially inline.
func (m Move) IsInline() bool {
	if m.Count() == 1 {
		return true
	}
	lineDir := Direction{
		DR: m.Marbles[1].Row - m.Marbles[0].Row,
		DC: m.Marbles[1].Col - m.Marbles[0].Col,
	}
	return m.Direction == lineDir || m.Direction == lineDir.Opposite()
}

// LeadingTrailing returns the rearmost and foremost marbles relative to the
// movement direction, ordered by the scalar projection pos·dir
func (m Move) LeadingTrailing() (trailing, leading Position) {
	trailing, leading = m.Marbles[0], m.Marbles[0]
	minProj, maxProj := m.project(trailing), m.project(leading)
	for _, marble := range m.Marbles[1:] {
		p := m.project(marble)
		if p < minProj {
			minProj, trailing = p, marble
		}
		if p > maxProj {
			maxProj, leading = p, marble
		}
	}
	return trailing, leading
}

func (m Move) project(pos Position) int {
	return pos.Row*m.Direction.DR + pos.Col*m.Direction.DC
}

// Notation renders the canonical text form of the move. Inline moves render
// as {count}:{trailing}{goal} where goal is one step ahead of the leading
// marble; broadside moves render as {count}:{low}-{high}>{DIR}. A trailing
// "*" marks a push (informational only, not part of move identity).
func (m Move) Notation(pushed bool) string {
	if m.IsInline() {
		trailing, leading := m.LeadingTrailing()
		goal := Neighbor(leading, m.Direction)
		push := ""
		if pushed {
			push = "*"
		}
		return fmt.Sprintf("%d:%s%s%s", m.Count(), trailing, goal, push)
	}
	low := m.Marbles[0]
	high := m.Marbles[len(m.Marbles)-1]
	return fmt.Sprintf("%d:%s-%s>%s", m.Count(), low, high, m.Direction.Name())
}

// String renders the move's notation without a push marker
func (m Move) String() string {
	return m.Notation(false)
}

// Key returns the (sorted marbles, direction) identity used for
// deduplication during generation
func (m Move) Key() string {
	var sb strings.Builder
	for _, marble := range m.Marbles {
		sb.WriteString(marble.String())
	}
	sb.WriteByte('>')
	sb.WriteString(m.Direction.Name())
	return sb.String()
}
