package response

import (
	"time"

	"github.com/metamatong/comp3981-abalone-sumitoq/internal/model"
	"github.com/metamatong/comp3981-abalone-sumitoq/internal/services/auth"
)

// Account represents an account in API responses
type Account struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	IsGuest     bool   `json:"is_guest"`
}

// AccountFromModel converts a model.Account to a response Account
func AccountFromModel(a *model.Account) Account {
	return Account{
		ID:          string(a.ID),
		DisplayName: a.DisplayName,
		IsGuest:     a.IsGuest,
	}
}

// AuthResponse is the response for authentication endpoints
type AuthResponse struct {
	Account      Account `json:"account"`
	SessionToken string  `json:"session_token"`
}

// AuthResponseFromSession creates an AuthResponse from a session
func AuthResponseFromSession(s *auth.Session) AuthResponse {
	return AuthResponse{
		Account:      AccountFromModel(&s.Account),
		SessionToken: s.Token,
	}
}

// MatchConfig represents match settings in API responses
type MatchConfig struct {
	Mode            string `json:"mode"`
	HumanSide       string `json:"human_side"`
	Depth           int    `json:"depth"`
	Heuristic       string `json:"heuristic"`
	TieBreak        string `json:"tie_break"`
	Layout          string `json:"layout"`
	BlackTimeMs     int64  `json:"black_time_ms"`
	WhiteTimeMs     int64  `json:"white_time_ms"`
	MaxMoves        int    `json:"max_moves"`
	MoveTimeLimitMs int64  `json:"move_time_limit_ms"`
}

// MatchConfigFromModel converts model.MatchConfig
func MatchConfigFromModel(c model.MatchConfig) MatchConfig {
	return MatchConfig{
		Mode:            string(c.Mode),
		HumanSide:       c.HumanSide.String(),
		Depth:           c.Depth,
		Heuristic:       c.Heuristic,
		TieBreak:        c.TieBreak,
		Layout:          c.Layout,
		BlackTimeMs:     c.BlackTime.Milliseconds(),
		WhiteTimeMs:     c.WhiteTime.Milliseconds(),
		MaxMoves:        c.MaxMoves,
		MoveTimeLimitMs: c.MoveTimeLimit.Milliseconds(),
	}
}

// SearchInfo mirrors the agent search stats attached to a move
type SearchInfo struct {
	Notation  string  `json:"notation"`
	Score     float64 `json:"score"`
	Nodes     int     `json:"nodes"`
	ElapsedMs float64 `json:"elapsed_ms"`
	Depth     int     `json:"depth"`
}

// SearchInfoFromModel converts model.SearchInfo
func SearchInfoFromModel(info *model.SearchInfo) *SearchInfo {
	if info == nil {
		return nil
	}
	return &SearchInfo{
		Notation:  info.Notation,
		Score:     info.Score,
		Nodes:     info.Nodes,
		ElapsedMs: info.Elapsed,
		Depth:     info.Depth,
	}
}

// MoveRecord is one history entry in API responses
type MoveRecord struct {
	Notation   string      `json:"notation"`
	Player     string      `json:"player"`
	Pushed     []string    `json:"pushed,omitempty"`
	PushOff    bool        `json:"pushoff"`
	Source     string      `json:"source"`
	Search     *SearchInfo `json:"search,omitempty"`
	DurationMs int64       `json:"duration_ms"`
}

// MoveRecordFromModel converts model.MoveRecord
func MoveRecordFromModel(r *model.MoveRecord) MoveRecord {
	return MoveRecord{
		Notation:   r.Notation,
		Player:     r.Player.String(),
		Pushed:     r.Pushed,
		PushOff:    r.PushOff,
		Source:     string(r.Source),
		Search:     SearchInfoFromModel(r.Search),
		DurationMs: r.Duration.Milliseconds(),
	}
}

// LegalMove describes one playable move
type LegalMove struct {
	Marbles   []string `json:"marbles"`
	Direction string   `json:"direction"`
	Notation  string   `json:"notation"`
	IsInline  bool     `json:"is_inline"`
}

// LegalMoveFromModel converts model.Move
func LegalMoveFromModel(m model.Move) LegalMove {
	marbles := make([]string, len(m.Marbles))
	for i, pos := range m.Marbles {
		marbles[i] = pos.String()
	}
	return LegalMove{
		Marbles:   marbles,
		Direction: m.Direction.Name(),
		Notation:  m.Notation(false),
		IsInline:  m.IsInline(),
	}
}

// LegalMovesResponse lists the legal moves for the side to move
type LegalMovesResponse struct {
	Moves []LegalMove `json:"moves"`
}

// LegalMovesFromModel converts a move list
func LegalMovesFromModel(moves []model.Move) LegalMovesResponse {
	out := LegalMovesResponse{Moves: make([]LegalMove, len(moves))}
	for i, m := range moves {
		out.Moves[i] = LegalMoveFromModel(m)
	}
	return out
}

// Status is the derived end-of-game state in API responses
type Status struct {
	GameOver      bool   `json:"game_over"`
	Winner        string `json:"winner"`
	Reason        string `json:"reason,omitempty"`
	TimeoutPlayer string `json:"timeout_player,omitempty"`
}

// Match is the full match state in API responses. Cells maps position
// notation to the occupying side.
type Match struct {
	ID                string            `json:"id"`
	Config            MatchConfig       `json:"config"`
	Cells             map[string]string `json:"cells"`
	Scores            map[string]int    `json:"scores"`
	MarbleCounts      map[string]int    `json:"marble_counts"`
	CurrentPlayer     string            `json:"current_player"`
	CurrentController string            `json:"current_controller"`
	Controllers       map[string]string `json:"controllers"`
	Status            Status            `json:"status"`
	TimeLeftMs        map[string]int64  `json:"time_left_ms"`
	Paused            bool              `json:"paused"`
	Started           bool              `json:"started"`
	History           []MoveRecord      `json:"history"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
}

// MatchFromModel converts model.Match
func MatchFromModel(m *model.Match) Match {
	cells := make(map[string]string, model.NumCells)
	for _, pos := range model.ValidPositions() {
		if p := m.Board.Get(pos); p != model.NoPlayer {
			cells[pos.String()] = p.String()
		}
	}

	controllers := make(map[string]string, 2)
	for player, controller := range m.Config.Controllers() {
		controllers[player.String()] = string(controller)
	}

	status := m.Status()
	out := Match{
		ID:     string(m.ID),
		Config: MatchConfigFromModel(m.Config),
		Cells:  cells,
		Scores: map[string]int{
			model.Black.String(): m.Board.Score(model.Black),
			model.White.String(): m.Board.Score(model.White),
		},
		MarbleCounts: map[string]int{
			model.Black.String(): m.Board.MarbleCount(model.Black),
			model.White.String(): m.Board.MarbleCount(model.White),
		},
		CurrentPlayer:     m.CurrentPlayer.String(),
		CurrentController: string(m.CurrentController()),
		Controllers:       controllers,
		Status: Status{
			GameOver:      status.GameOver,
			Winner:        playerName(status.Winner),
			Reason:        string(status.Reason),
			TimeoutPlayer: playerName(status.TimeoutPlayer),
		},
		TimeLeftMs: map[string]int64{
			model.Black.String(): m.TimeLeft[model.Black].Milliseconds(),
			model.White.String(): m.TimeLeft[model.White].Milliseconds(),
		},
		Paused:    m.Paused,
		Started:   m.Started,
		History:   make([]MoveRecord, len(m.History)),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	for i := range m.History {
		out.History[i] = MoveRecordFromModel(&m.History[i])
	}
	return out
}

func playerName(p model.Player) string {
	if p == model.NoPlayer {
		return ""
	}
	return p.String()
}

// MoveResponse is the response to playing a move
type MoveResponse struct {
	Match  Match      `json:"match"`
	Record MoveRecord `json:"record"`
}
