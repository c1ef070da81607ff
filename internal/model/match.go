package model

import "time"

// MatchID uniquely identifies a match
type MatchID string

// Mode selects which sides are human- or agent-controlled
type Mode string

const (
	ModeHumanVsHuman Mode = "hvh"
	ModeHumanVsAgent Mode = "hva"
	ModeAgentVsAgent Mode = "ava"
)

// Controller identifies who makes moves for a side
type Controller string

const (
	ControllerHuman Controller = "human"
	ControllerAgent Controller = "ai"
)

// GameOverReason explains why a match ended
type GameOverReason string

const (
	ReasonScore    GameOverReason = "score"
	ReasonTimeout  GameOverReason = "timeout"
	ReasonResign   GameOverReason = "resign"
	ReasonMaxMoves GameOverReason = "max_moves"
)

// DefaultMatchTime is the starting clock per side
const DefaultMatchTime = 10 * time.Minute

// MatchConfig holds the adjustable settings for a match
type MatchConfig struct {
	Mode      Mode   `json:"mode"`
	HumanSide Player `json:"human_side"` // side the human controls in hva mode
	Depth     int    `json:"depth"`      // agent search depth, 1-5
	Heuristic string `json:"heuristic"`  // evaluation preset name
	TieBreak  string `json:"tie_break"`  // search tie-break policy name
	Layout    string `json:"layout"`     // starting layout name

	BlackTime     time.Duration `json:"black_time"` // initial clock, Black
	WhiteTime     time.Duration `json:"white_time"` // initial clock, White
	MaxMoves      int           `json:"max_moves"`  // 0 = unlimited
	MoveTimeLimit time.Duration `json:"move_time_limit"` // 0 = unlimited
}

// DefaultMatchConfig returns the settings a new match starts with
func DefaultMatchConfig() MatchConfig {
	return MatchConfig{
		Mode:      ModeHumanVsAgent,
		HumanSide: Black,
		Depth:     2,
		Heuristic: "balanced",
		TieBreak:  "lexicographic",
		Layout:    LayoutStandard,
		BlackTime: DefaultMatchTime,
		WhiteTime: DefaultMatchTime,
	}
}

// Validate checks the config's enumerated fields
func (c MatchConfig) Validate() error {
	switch c.Mode {
	case ModeHumanVsHuman, ModeHumanVsAgent, ModeAgentVsAgent:
	default:
		return ErrUnknownMode
	}
	if c.HumanSide != Black && c.HumanSide != White {
		return ErrUnknownMode
	}
	if c.Depth < 1 || c.Depth > 5 {
		return ErrInvalidDepth
	}
	if _, ok := layouts[c.Layout]; !ok {
		return ErrUnknownLayout
	}
	return nil
}

// Controllers maps each side to its controller under this config
func (c MatchConfig) Controllers() map[Player]Controller {
	switch c.Mode {
	case ModeHumanVsHuman:
		return map[Player]Controller{Black: ControllerHuman, White: ControllerHuman}
	case ModeAgentVsAgent:
		return map[Player]Controller{Black: ControllerAgent, White: ControllerAgent}
	default:
		controllers := map[Player]Controller{Black: ControllerAgent, White: ControllerAgent}
		controllers[c.HumanSide] = ControllerHuman
		return controllers
	}
}

// SearchInfo records the stats of the search that produced an agent move
type SearchInfo struct {
	Notation string  `json:"notation"`
	Score    float64 `json:"score"`
	Nodes    int     `json:"nodes"`
	Elapsed  float64 `json:"elapsed_ms"`
	Depth    int     `json:"depth"`
}

// MoveRecord is one entry of a match's move history. The board snapshot is
// the position before the move, kept for undo.
type MoveRecord struct {
	Move     Move             `json:"move"`
	Player   Player           `json:"player"`
	Notation string           `json:"notation"` // includes push marker
	Pushed   []string         `json:"pushed,omitempty"`
	PushOff  bool             `json:"pushoff"`
	Source   Controller       `json:"source"`
	Search   *SearchInfo      `json:"search,omitempty"`
	Duration time.Duration    `json:"duration"`
	Snapshot *Board           `json:"snapshot"`
	Clocks   [3]time.Duration `json:"clocks"` // time left per side before the move
}

// Status is the derived end-of-game state of a match
type Status struct {
	GameOver      bool           `json:"game_over"`
	Winner        Player         `json:"winner"` // NoPlayer on draw or in progress
	Reason        GameOverReason `json:"reason,omitempty"`
	TimeoutPlayer Player         `json:"timeout_player,omitempty"`
}

// Match is a full game session: board, turn state, clocks and history
type Match struct {
	ID        MatchID     `json:"id"`
	CreatedBy AccountID   `json:"created_by"`
	Config    MatchConfig `json:"config"`

	Board         *Board       `json:"board"`
	CurrentPlayer Player       `json:"current_player"`
	History       []MoveRecord `json:"history"`

	// Clock state
	TimeLeft        [3]time.Duration `json:"time_left"` // indexed by Player
	LastClockUpdate time.Time        `json:"last_clock_update"`
	TurnStartedAt   time.Time        `json:"turn_started_at"`
	Paused          bool             `json:"paused"`
	PauseStartedAt  time.Time        `json:"pause_started_at"`
	Started         bool             `json:"started"`

	Resigned     bool   `json:"resigned"`
	ResignWinner Player `json:"resign_winner"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CurrentController returns who controls the side to move
func (m *Match) CurrentController() Controller {
	return m.Config.Controllers()[m.CurrentPlayer]
}

// Status derives the end-of-game state from the match's current fields.
// Clock values are read as-is; ticking them is the controller's job.
func (m *Match) Status() Status {
	if m.Resigned {
		return Status{GameOver: true, Winner: m.ResignWinner, Reason: ReasonResign}
	}
	if m.Board.Score(Black) >= WinningScore {
		return Status{GameOver: true, Winner: Black, Reason: ReasonScore}
	}
	if m.Board.Score(White) >= WinningScore {
		return Status{GameOver: true, Winner: White, Reason: ReasonScore}
	}
	if m.TimeLeft[Black] <= 0 {
		return Status{GameOver: true, Winner: White, Reason: ReasonTimeout, TimeoutPlayer: Black}
	}
	if m.TimeLeft[White] <= 0 {
		return Status{GameOver: true, Winner: Black, Reason: ReasonTimeout, TimeoutPlayer: White}
	}
	if m.Config.MaxMoves > 0 && len(m.History) >= m.Config.MaxMoves {
		// Winner is whoever pushed off more marbles; equal scores draw
		winner := NoPlayer
		if m.Board.Score(Black) > m.Board.Score(White) {
			winner = Black
		} else if m.Board.Score(White) > m.Board.Score(Black) {
			winner = White
		}
		return Status{GameOver: true, Winner: winner, Reason: ReasonMaxMoves}
	}
	return Status{}
}
