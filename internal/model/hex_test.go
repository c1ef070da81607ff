package model

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type HexSuite struct {
	suite.Suite
}

func TestHexSuite(t *testing.T) {
	suite.Run(t, new(HexSuite))
}

func (s *HexSuite) TestBoardHas61Cells() {
	s.Len(ValidPositions(), NumCells)
	s.Equal(61, NumCells)
}

func (s *HexSuite) TestRowSpans() {
	// Row widths form the hexagon 5,6,7,8,9,8,7,6,5
	widths := map[int]int{0: 5, 1: 6, 2: 7, 3: 8, 4: 9, 5: 8, 6: 7, 7: 6, 8: 5}
	counts := make(map[int]int)
	for _, pos := range ValidPositions() {
		counts[pos.Row]++
	}
	s.Equal(widths, counts)
}

func (s *HexSuite) TestIsValid() {
	s.True(IsValid(Position{0, 1}))
	s.True(IsValid(Position{0, 5}))
	s.True(IsValid(Position{4, 9}))
	s.True(IsValid(Position{8, 5}))
	s.True(IsValid(Position{8, 9}))

	s.False(IsValid(Position{0, 0}))
	s.False(IsValid(Position{0, 6}))
	s.False(IsValid(Position{2, 8}))
	s.False(IsValid(Position{8, 4}))
	s.False(IsValid(Position{-1, 1}))
	s.False(IsValid(Position{9, 5}))
}

func (s *HexSuite) TestNeighbor() {
	pos := Position{4, 5}
	s.Equal(Position{4, 6}, Neighbor(pos, DirE))
	s.Equal(Position{4, 4}, Neighbor(pos, DirW))
	s.Equal(Position{5, 5}, Neighbor(pos, DirNW))
	s.Equal(Position{3, 5}, Neighbor(pos, DirSE))
	s.Equal(Position{5, 6}, Neighbor(pos, DirNE))
	s.Equal(Position{3, 4}, Neighbor(pos, DirSW))
}

func (s *HexSuite) TestOpposite() {
	for _, d := range Directions {
		s.Equal(d, d.Opposite().Opposite())
		s.NotEqual(d, d.Opposite())
		s.True(d.Opposite().IsCanonical())
	}
	s.Equal(DirW, DirE.Opposite())
	s.Equal(DirSE, DirNW.Opposite())
	s.Equal(DirSW, DirNE.Opposite())
}

func (s *HexSuite) TestDirectionNames() {
	s.Equal("E", DirE.Name())
	s.Equal("SW", DirSW.Name())

	d, ok := ParseDirection("NW")
	s.True(ok)
	s.Equal(DirNW, d)

	_, ok = ParseDirection("NN")
	s.False(ok)

	// Non-canonical vectors never match the fixed set
	s.False(Direction{1, -1}.IsCanonical())
	s.False(Direction{2, 0}.IsCanonical())
}

func (s *HexSuite) TestPositionNotationRoundTrip() {
	for _, pos := range ValidPositions() {
		parsed, err := ParsePosition(pos.String())
		s.Require().NoError(err)
		s.Equal(pos, parsed)
	}
}

func (s *HexSuite) TestParsePositionRejectsMalformed() {
	for _, input := range []string{"", "e", "e10", "z5", "55", "ee"} {
		_, err := ParsePosition(input)
		s.ErrorIs(err, ErrMalformedPosition, input)
	}
}
