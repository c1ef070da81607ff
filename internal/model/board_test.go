package model

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type BoardSuite struct {
	suite.Suite
	board *Board
}

func TestBoardSuite(t *testing.T) {
	suite.Run(t, new(BoardSuite))
}

func (s *BoardSuite) SetupTest() {
	s.board = NewBoard()
}

func (s *BoardSuite) place(p Player, positions ...string) {
	for _, str := range positions {
		s.board.Set(pos(str), p)
	}
}

func (s *BoardSuite) TestLayoutsHave14MarblesPerSide() {
	for _, name := range ValidLayouts() {
		s.Require().NoError(s.board.SetupLayout(name))
		s.Equal(14, s.board.MarbleCount(Black), name)
		s.Equal(14, s.board.MarbleCount(White), name)
	}
}

func (s *BoardSuite) TestSetupUnknownLayout() {
	s.ErrorIs(s.board.SetupLayout("swiss_daisy"), ErrUnknownLayout)
}

func (s *BoardSuite) TestCopyIsIndependent() {
	s.board.SetupStandard()
	dup := s.board.Copy()

	dup.Set(pos("e5"), Black)
	dup.Scores[Black] = 3

	s.Equal(NoPlayer, s.board.Get(pos("e5")))
	s.Equal(0, s.board.Score(Black))
	s.Equal(3, dup.Score(Black))
}

func (s *BoardSuite) TestValidateMoveOwnership() {
	s.board.SetupStandard()
	// e5 is empty at the start; g5 is White
	m := mustMove([]Position{pos("e5")}, DirE)
	s.ErrorIs(s.board.ValidateMove(m, Black), ErrNotOwned)

	m = mustMove([]Position{pos("g5")}, DirE)
	s.ErrorIs(s.board.ValidateMove(m, Black), ErrNotOwned)
	s.NoError(s.board.ValidateMove(m, White))
}

func (s *BoardSuite) TestInlineIntoEmptyIsLegal() {
	s.place(Black, "e3", "e4", "e5")
	m := mustMove([]Position{pos("e3"), pos("e4"), pos("e5")}, DirE)
	s.NoError(s.board.ValidateMove(m, Black))
}

func (s *BoardSuite) TestInlineOffBoardIsIllegal() {
	// A marble can never be moved off the board by its own line
	s.place(Black, "a1")
	m := mustMove([]Position{pos("a1")}, DirW)
	s.ErrorIs(s.board.ValidateMove(m, Black), ErrOffBoardInline)

	s.place(Black, "a2", "a3")
	m = mustMove([]Position{pos("a1"), pos("a2"), pos("a3")}, DirW)
	s.ErrorIs(s.board.ValidateMove(m, Black), ErrOffBoardInline)
}

func (s *BoardSuite) TestInlineSelfPushIsIllegal() {
	s.place(Black, "e3", "e4", "e5", "e6")
	m := mustMove([]Position{pos("e3"), pos("e4"), pos("e5")}, DirE)
	s.ErrorIs(s.board.ValidateMove(m, Black), ErrSelfPush)
}

func (s *BoardSuite) TestSumitoThreeOnTwo() {
	// 3 Black push 2 White east; landing cell e8 is empty
	s.place(Black, "e3", "e4", "e5")
	s.place(White, "e6", "e7")

	m := mustMove([]Position{pos("e3"), pos("e4"), pos("e5")}, DirE)
	s.Require().NoError(s.board.ValidateMove(m, Black))

	result := s.board.ApplyMove(m, Black)
	s.Equal([]string{"e6", "e7"}, result.Pushed)
	s.False(result.PushOff)

	// White moved to e7,e8; Black to e4,e5,e6
	s.Equal(NoPlayer, s.board.Get(pos("e3")))
	s.Equal(Black, s.board.Get(pos("e4")))
	s.Equal(Black, s.board.Get(pos("e5")))
	s.Equal(Black, s.board.Get(pos("e6")))
	s.Equal(White, s.board.Get(pos("e7")))
	s.Equal(White, s.board.Get(pos("e8")))
	s.Equal(0, s.board.Score(Black))
}

func (s *BoardSuite) TestSumitoThreeOnThreeIsIllegal() {
	s.place(Black, "e3", "e4", "e5")
	s.place(White, "e6", "e7", "e8")

	m := mustMove([]Position{pos("e3"), pos("e4"), pos("e5")}, DirE)
	s.ErrorIs(s.board.ValidateMove(m, Black), ErrOutnumbered)
}

func (s *BoardSuite) TestSumitoBlockedLanding() {
	// Pushing 1 White with 2 Black, but the cell beyond is Black-occupied
	s.place(Black, "e3", "e4", "e6")
	s.place(White, "e5")

	m := mustMove([]Position{pos("e3"), pos("e4")}, DirE)
	s.ErrorIs(s.board.ValidateMove(m, Black), ErrPushBlocked)
}

func (s *BoardSuite) TestSumitoPushOff() {
	// White marbles at the east edge of row e get pushed off
	s.place(Black, "e6", "e7")
	s.place(White, "e8", "e9")
	// 2v2 is outnumbered; add a third Black
	s.place(Black, "e5")

	m := mustMove([]Position{pos("e5"), pos("e6"), pos("e7")}, DirE)
	s.Require().NoError(s.board.ValidateMove(m, Black))

	blackBefore := s.board.MarbleCount(Black)
	whiteBefore := s.board.MarbleCount(White)

	result := s.board.ApplyMove(m, Black)
	s.True(result.PushOff)
	s.Equal([]string{"e8", "e9"}, result.Pushed)

	// Exactly one White marble lost, score up by one
	s.Equal(1, s.board.Score(Black))
	s.Equal(blackBefore, s.board.MarbleCount(Black))
	s.Equal(whiteBefore-1, s.board.MarbleCount(White))
	s.Equal(White, s.board.Get(pos("e9")))
	s.Equal(Black, s.board.Get(pos("e8")))
}

func (s *BoardSuite) TestBroadsideRequiresEmptyDestinations() {
	s.place(Black, "a1", "a2")
	s.place(White, "b1")

	m := mustMove([]Position{pos("a1"), pos("a2")}, DirNW)
	s.ErrorIs(s.board.ValidateMove(m, Black), ErrDestinationFull)

	s.board.Set(pos("b1"), NoPlayer)
	s.NoError(s.board.ValidateMove(m, Black))
}

func (s *BoardSuite) TestBroadsideOffBoardIsIllegal() {
	s.place(Black, "a1", "a2")
	m := mustMove([]Position{pos("a1"), pos("a2")}, DirSE)
	s.ErrorIs(s.board.ValidateMove(m, Black), ErrDestinationFull)
}

func (s *BoardSuite) TestBroadsideOnlyTouchesOriginsAndDestinations() {
	s.board.SetupStandard()
	before := s.board.Copy()

	// b1,b2 sideways into c1,c2, both empty at the start
	m := mustMove([]Position{pos("b1"), pos("b2")}, DirNW)
	s.Require().NoError(s.board.ValidateMove(m, Black))
	result := s.board.ApplyMove(m, Black)
	s.Empty(result.Pushed)
	s.False(result.PushOff)

	moved := map[Position]bool{
		pos("b1"): true, pos("b2"): true,
		pos("c1"): true, pos("c2"): true,
	}
	for _, p := range ValidPositions() {
		if moved[p] {
			continue
		}
		s.Equal(before.Get(p), s.board.Get(p), p.String())
	}
	s.Equal(NoPlayer, s.board.Get(pos("b1")))
	s.Equal(NoPlayer, s.board.Get(pos("b2")))
	s.Equal(Black, s.board.Get(pos("c1")))
	s.Equal(Black, s.board.Get(pos("c2")))
}

func (s *BoardSuite) TestMarbleConservation() {
	// Across a long forced sequence, marbles + pushed-off count is conserved
	s.board.SetupStandard()
	s.Equal(14, s.board.MarbleCount(Black)+s.board.Score(White))
	s.Equal(14, s.board.MarbleCount(White)+s.board.Score(Black))

	s.board.Clear()
	s.place(Black, "e5", "e6", "e7")
	s.place(White, "e8", "e9")

	m := mustMove([]Position{pos("e5"), pos("e6"), pos("e7")}, DirE)
	s.board.ApplyMove(m, Black)
	s.Equal(3, s.board.MarbleCount(Black))
	s.Equal(2, s.board.MarbleCount(White)+s.board.Score(Black))
}

func (s *BoardSuite) TestIsGameOver() {
	s.False(s.board.IsGameOver())
	s.board.Scores[Black] = WinningScore
	s.True(s.board.IsGameOver())
}
