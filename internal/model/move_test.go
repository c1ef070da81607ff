package model

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type MoveSuite struct {
	suite.Suite
}

func TestMoveSuite(t *testing.T) {
	suite.Run(t, new(MoveSuite))
}

func pos(s string) Position {
	p, err := ParsePosition(s)
	if err != nil {
		panic(err)
	}
	return p
}

func mustMove(marbles []Position, d Direction) Move {
	m, err := NewMove(marbles, d)
	if err != nil {
		panic(err)
	}
	return m
}

func (s *MoveSuite) TestNewMoveRejectsMalformedInput() {
	_, err := NewMove(nil, DirE)
	s.ErrorIs(err, ErrBadMarbleCount)

	_, err = NewMove([]Position{pos("a1"), pos("a2"), pos("a3"), pos("a4")}, DirE)
	s.ErrorIs(err, ErrBadMarbleCount)

	_, err = NewMove([]Position{pos("a1"), pos("a1")}, DirE)
	s.ErrorIs(err, ErrDuplicateMarbles)

	// Gap in the line
	_, err = NewMove([]Position{pos("a1"), pos("a3")}, DirE)
	s.ErrorIs(err, ErrNotColinear)

	// Not on any axis
	_, err = NewMove([]Position{pos("a1"), pos("b3")}, DirE)
	s.ErrorIs(err, ErrNotColinear)

	_, err = NewMove([]Position{pos("a1")}, Direction{1, -1})
	s.ErrorIs(err, ErrUnknownDirection)
}

func (s *MoveSuite) TestMarblesAreCanonicallySorted() {
	a := mustMove([]Position{pos("c5"), pos("c3"), pos("c4")}, DirE)
	b := mustMove([]Position{pos("c3"), pos("c4"), pos("c5")}, DirE)
	s.Equal(a, b)
	s.Equal(a.Key(), b.Key())
}

func (s *MoveSuite) TestKeyIncludesDirection() {
	a := mustMove([]Position{pos("c3"), pos("c4")}, DirE)
	b := mustMove([]Position{pos("c3"), pos("c4")}, DirW)
	s.NotEqual(a.Key(), b.Key())
}

func (s *MoveSuite) TestIsInline() {
	// Single marble is trivially inline
	s.True(mustMove([]Position{pos("e5")}, DirNE).IsInline())

	// Line along E moved E or W is inline
	line := []Position{pos("e4"), pos("e5"), pos("e6")}
	s.True(mustMove(line, DirE).IsInline())
	s.True(mustMove(line, DirW).IsInline())

	// Same line moved sideways is broadside
	s.False(mustMove(line, DirNW).IsInline())
	s.False(mustMove(line, DirSE).IsInline())
	s.False(mustMove(line, DirNE).IsInline())
	s.False(mustMove(line, DirSW).IsInline())
}

func (s *MoveSuite) TestLeadingTrailing() {
	m := mustMove([]Position{pos("e4"), pos("e5"), pos("e6")}, DirE)
	trailing, leading := m.LeadingTrailing()
	s.Equal(pos("e4"), trailing)
	s.Equal(pos("e6"), leading)

	m = mustMove([]Position{pos("e4"), pos("e5"), pos("e6")}, DirW)
	trailing, leading = m.LeadingTrailing()
	s.Equal(pos("e6"), trailing)
	s.Equal(pos("e4"), leading)
}

func (s *MoveSuite) TestInlineNotation() {
	m := mustMove([]Position{pos("e3"), pos("e4"), pos("e5")}, DirE)
	s.Equal("3:e3e6", m.Notation(false))
	s.Equal("3:e3e6*", m.Notation(true))

	single := mustMove([]Position{pos("e5")}, DirNE)
	s.Equal("1:e5f6", single.Notation(false))
}

func (s *MoveSuite) TestBroadsideNotation() {
	m := mustMove([]Position{pos("a2"), pos("a1")}, DirNW)
	s.Equal("2:a1-a2>NW", m.Notation(false))

	m = mustMove([]Position{pos("c3"), pos("c4"), pos("c5")}, DirSE)
	s.Equal("3:c3-c5>SE", m.Notation(false))
}
