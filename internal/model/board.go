package model

import "slices"

// WinningScore is the number of pushed-off opponent marbles that ends a game
const WinningScore = 6

// Board holds the cell states for all 61 positions plus the pushed-off
// counters per side. Cells is a flat array indexed by the precomputed
// position table, so copying a Board for search backtracking is a plain
// value copy.
type Board struct {
	Cells  [NumCells]Player `json:"cells"`
	Scores [3]int           `json:"scores"` // indexed by Player; index 0 unused
}

// NewBoard creates an empty board
func NewBoard() *Board {
	return &Board{}
}

// Copy returns a full independent copy of the board
func (b *Board) Copy() *Board {
	dup := *b
	return &dup
}

// Get returns the state of a cell, or NoPlayer for an off-board position
func (b *Board) Get(pos Position) Player {
	idx, ok := positionIndex[pos]
	if !ok {
		return NoPlayer
	}
	return b.Cells[idx]
}

// Set places a marble (or NoPlayer) at a valid position
func (b *Board) Set(pos Position, p Player) {
	if idx, ok := positionIndex[pos]; ok {
		b.Cells[idx] = p
	}
}

// Score returns the number of opponent marbles the player has pushed off
func (b *Board) Score(p Player) int {
	return b.Scores[p]
}

// MarbleCount returns the number of the player's marbles still on the board
func (b *Board) MarbleCount(p Player) int {
	count := 0
	for _, cell := range b.Cells {
		if cell == p {
			count++
		}
	}
	return count
}

// Marbles returns the player's marble positions sorted by (row, col)
func (b *Board) Marbles(p Player) []Position {
	var marbles []Position
	for idx, cell := range b.Cells {
		if cell == p {
			marbles = append(marbles, validPositions[idx])
		}
	}
	return marbles
}

// Clear empties every cell and resets both scores
func (b *Board) Clear() {
	*b = Board{}
}

// IsGameOver reports whether either side has reached the winning score
func (b *Board) IsGameOver() bool {
	return b.Scores[Black] >= WinningScore || b.Scores[White] >= WinningScore
}

// ValidateMove checks a well-formed move against the board for the given
// player, returning nil if legal or the specific rule violation otherwise.
// The board is never modified.
func (b *Board) ValidateMove(m Move, player Player) error {
	for _, marble := range m.Marbles {
		if b.Get(marble) != player {
			return ErrNotOwned
		}
	}
	if !marblesInLine(m.Marbles) {
		return ErrNotColinear
	}
	if m.IsInline() {
		return b.validateInline(m, player)
	}
	return b.validateBroadside(m)
}

// IsLegalMove reports whether the move passes every legality rule
func (b *Board) IsLegalMove(m Move, player Player) bool {
	return b.ValidateMove(m, player) == nil
}

func (b *Board) validateInline(m Move, player Player) error {
	d := m.Direction
	_, leading := m.LeadingTrailing()
	ahead := Neighbor(leading, d)

	if !IsValid(ahead) {
		return ErrOffBoardInline // own marbles cannot leave the board
	}
	switch b.Get(ahead) {
	case NoPlayer:
		return nil
	case player:
		return ErrSelfPush
	}

	// Push attempt: count the contiguous opposing chain ahead
	opponent := player.Opponent()
	pushed := 0
	pos := ahead
	for IsValid(pos) && b.Get(pos) == opponent {
		pushed++
		pos = Neighbor(pos, d)
	}

	if pushed >= m.Count() {
		return ErrOutnumbered
	}
	// pos is the first cell after the pushed chain; it must be empty or
	// off-board (a push-off)
	if IsValid(pos) && b.Get(pos) != NoPlayer {
		return ErrPushBlocked
	}
	return nil
}

func (b *Board) validateBroadside(m Move) error {
	for _, marble := range m.Marbles {
		dest := Neighbor(marble, m.Direction)
		if !IsValid(dest) || b.Get(dest) != NoPlayer {
			return ErrDestinationFull
		}
	}
	return nil
}

// MoveResult reports what an applied move did to the opponent
type MoveResult struct {
	Pushed  []string `json:"pushed"`  // opponent positions displaced, in chain order
	PushOff bool     `json:"pushoff"` // true if the endmost pushed marble left the board
}

// ApplyMove mutates the board by performing a move the caller has already
// validated. It returns which opponent marbles were displaced and whether a
// capture occurred.
func (b *Board) ApplyMove(m Move, player Player) MoveResult {
	if m.IsInline() {
		return b.applyInline(m, player)
	}
	b.applyBroadside(m, player)
	return MoveResult{}
}

func (b *Board) applyInline(m Move, player Player) MoveResult {
	d := m.Direction
	_, leading := m.LeadingTrailing()
	opponent := player.Opponent()

	// Collect the contiguous opposing chain ahead of the leading marble
	var pushed []Position
	pos := Neighbor(leading, d)
	for IsValid(pos) && b.Get(pos) == opponent {
		pushed = append(pushed, pos)
		pos = Neighbor(pos, d)
	}
	// pos is now the first cell after the chain: empty or off-board

	result := MoveResult{}
	for _, p := range pushed {
		result.Pushed = append(result.Pushed, p.String())
	}

	if len(pushed) > 0 && !IsValid(pos) {
		result.PushOff = true
		b.Scores[player]++
	}

	// Move pushed marbles one step, farthest from the mover first so no
	// not-yet-moved cell is overwritten
	for i := len(pushed) - 1; i >= 0; i-- {
		dest := Neighbor(pushed[i], d)
		if IsValid(dest) {
			b.Set(dest, opponent)
		}
		// off-board dest: the marble is captured
		b.Set(pushed[i], NoPlayer)
	}

	// Move own marbles, leading first, for the same reason
	byProjection := make([]Position, len(m.Marbles))
	copy(byProjection, m.Marbles)
	slices.SortFunc(byProjection, func(a, c Position) int {
		return (c.Row*d.DR + c.Col*d.DC) - (a.Row*d.DR + a.Col*d.DC)
	})
	for _, marble := range byProjection {
		b.Set(Neighbor(marble, d), player)
		b.Set(marble, NoPlayer)
	}

	return result
}

func (b *Board) applyBroadside(m Move, player Player) {
	// Every destination is empty, so clear-then-set is order independent
	for _, marble := range m.Marbles {
		b.Set(marble, NoPlayer)
	}
	for _, marble := range m.Marbles {
		b.Set(Neighbor(marble, m.Direction), player)
	}
}
