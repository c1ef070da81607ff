package model

import "fmt"

// Position is a cell on the hexagonal board. Row 0 is row "a" at the
// bottom; columns count from 1 within each row's span.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Direction is one of the six hex movement vectors
type Direction struct {
	DR int `json:"dr"`
	DC int `json:"dc"`
}

// The six canonical directions. Northward rows shift the column axis, so
// NW keeps the column and NE increments it.
var (
	DirE  = Direction{DR: 0, DC: 1}
	DirW  = Direction{DR: 0, DC: -1}
	DirNW = Direction{DR: 1, DC: 0}
	DirSE = Direction{DR: -1, DC: 0}
	DirNE = Direction{DR: 1, DC: 1}
	DirSW = Direction{DR: -1, DC: -1}
)

// Directions lists all six canonical directions
var Directions = []Direction{DirE, DirW, DirNW, DirSE, DirNE, DirSW}

// PositiveDirs covers one direction per axis; extending lines only through
// these is enough to enumerate every line shape exactly once
var PositiveDirs = []Direction{DirE, DirNW, DirNE}

var directionNames = map[Direction]string{
	DirE:  "E",
	DirW:  "W",
	DirNW: "NW",
	DirSE: "SE",
	DirNE: "NE",
	DirSW: "SW",
}

// Name returns the compass name of a canonical direction
func (d Direction) Name() string {
	return directionNames[d]
}

// IsCanonical reports whether d is one of the six hex directions
func (d Direction) IsCanonical() bool {
	_, ok := directionNames[d]
	return ok
}

// Opposite returns the reversed direction
func (d Direction) Opposite() Direction {
	return Direction{DR: -d.DR, DC: -d.DC}
}

// ParseDirection resolves a compass name ("E", "NW", ...)
func ParseDirection(name string) (Direction, bool) {
	for d, n := range directionNames {
		if n == name {
			return d, true
		}
	}
	return Direction{}, false
}

// NumCells is the number of cells on the board
const NumCells = 61

const rowLetters = "abcdefghi"

var (
	validPositions [NumCells]Position
	positionIndex  = make(map[Position]int, NumCells)
)

func init() {
	idx := 0
	for r := 0; r <= 8; r++ {
		lo, hi := rowSpan(r)
		for c := lo; c <= hi; c++ {
			pos := Position{Row: r, Col: c}
			validPositions[idx] = pos
			positionIndex[pos] = idx
			idx++
		}
	}
}

// rowSpan returns the inclusive column range of a row: rows a-e start at
// column 1, rows above e shift their start right; symmetrically the upper
// bound caps at 9.
func rowSpan(r int) (lo, hi int) {
	lo, hi = 1, 5+r
	if r > 4 {
		lo, hi = r-3, 9
	}
	return lo, hi
}

// ValidPositions returns all cells in row-major order
func ValidPositions() []Position {
	return validPositions[:]
}

// IsValid reports whether the position is on the board
func IsValid(pos Position) bool {
	_, ok := positionIndex[pos]
	return ok
}

// Neighbor returns the adjacent position one step in the direction. The
// result may be off the board; callers check with IsValid.
func Neighbor(pos Position, d Direction) Position {
	return Position{Row: pos.Row + d.DR, Col: pos.Col + d.DC}
}

// String renders the position in letter-digit notation ("e5")
func (p Position) String() string {
	if p.Row < 0 || p.Row > 8 {
		return fmt.Sprintf("?%d", p.Col)
	}
	return fmt.Sprintf("%c%d", rowLetters[p.Row], p.Col)
}

// ParsePosition parses letter-digit notation into a position. The result is
// guaranteed to be on the board.
func ParsePosition(s string) (Position, error) {
	if len(s) != 2 {
		return Position{}, ErrMalformedPosition
	}
	row := int(s[0] - 'a')
	col := int(s[1] - '1' + 1)
	pos := Position{Row: row, Col: col}
	if !IsValid(pos) {
		return Position{}, ErrMalformedPosition
	}
	return pos, nil
}

// comparePositions orders positions by row then column
func comparePositions(a, b Position) int {
	if a.Row != b.Row {
		return a.Row - b.Row
	}
	return a.Col - b.Col
}
