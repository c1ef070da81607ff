package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Account:
		o.printAccount(v)
	case AuthResult:
		o.printAuthResult(v)
	case Match:
		o.printMatch(v)
	case MoveResult:
		o.printMoveResult(v)
	case LegalMovesResult:
		o.printLegalMoves(v)
	case MatchList:
		o.printMatchList(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Account response type (matches API)
type Account struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	IsGuest     bool   `json:"is_guest"`
}

// AuthResult combines account and token
type AuthResult struct {
	Account      Account `json:"account"`
	SessionToken string  `json:"session_token"`
}

// MatchConfig response type
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

// SearchInfo response type
type SearchInfo struct {
	Notation  string  `json:"notation"`
	Score     float64 `json:"score"`
	Nodes     int     `json:"nodes"`
	ElapsedMs float64 `json:"elapsed_ms"`
	Depth     int     `json:"depth"`
}

// MoveRecord response type
type MoveRecord struct {
	Notation   string      `json:"notation"`
	Player     string      `json:"player"`
	Pushed     []string    `json:"pushed,omitempty"`
	PushOff    bool        `json:"pushoff"`
	Source     string      `json:"source"`
	Search     *SearchInfo `json:"search,omitempty"`
	DurationMs int64       `json:"duration_ms"`
}

// Status response type
type Status struct {
	GameOver      bool   `json:"game_over"`
	Winner        string `json:"winner"`
	Reason        string `json:"reason,omitempty"`
	TimeoutPlayer string `json:"timeout_player,omitempty"`
}

// Match response type
type Match struct {
	ID                string            `json:"id"`
	Config            MatchConfig       `json:"config"`
	Cells             map[string]string `json:"cells"`
	Scores            map[string]int    `json:"scores"`
	MarbleCounts      map[string]int    `json:"marble_counts"`
	CurrentPlayer     string            `json:"current_player"`
	CurrentController string            `json:"current_controller"`
	Status            Status            `json:"status"`
	TimeLeftMs        map[string]int64  `json:"time_left_ms"`
	Paused            bool              `json:"paused"`
	History           []MoveRecord      `json:"history"`
}

// MoveResult response type
type MoveResult struct {
	Match  Match      `json:"match"`
	Record MoveRecord `json:"record"`
}

// LegalMove response type
type LegalMove struct {
	Marbles   []string `json:"marbles"`
	Direction string   `json:"direction"`
	Notation  string   `json:"notation"`
	IsInline  bool     `json:"is_inline"`
}

// LegalMovesResult response type
type LegalMovesResult struct {
	Moves []LegalMove `json:"moves"`
}

// MatchList response type
type MatchList struct {
	Matches []Match `json:"matches"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printAccount(a Account) {
	guestStr := "no"
	if a.IsGuest {
		guestStr = "yes"
	}
	fmt.Printf("Account: %s (%s)\n", a.DisplayName, a.ID)
	fmt.Printf("Guest: %s\n", guestStr)
}

func (o *Output) printAuthResult(a AuthResult) {
	o.printAccount(a.Account)
	fmt.Printf("Token: %s\n", a.SessionToken)
}

func (o *Output) printMatch(m Match) {
	fmt.Printf("Match: %s\n", m.ID)
	fmt.Printf("Mode: %s (depth %d, %s)\n", m.Config.Mode, m.Config.Depth, m.Config.Heuristic)
	fmt.Printf("To move: %s (%s)\n", m.CurrentPlayer, m.CurrentController)
	fmt.Printf("Clocks: black %s, white %s\n",
		formatClock(m.TimeLeftMs["black"]), formatClock(m.TimeLeftMs["white"]))
	if m.Paused {
		fmt.Println("Paused: yes")
	}
	if m.Status.GameOver {
		if m.Status.Winner == "" {
			fmt.Printf("Game over: draw (%s)\n", m.Status.Reason)
		} else {
			fmt.Printf("Game over: %s wins (%s)\n", m.Status.Winner, m.Status.Reason)
		}
	}

	o.printBoard(m.Cells, m.Scores)

	if len(m.History) > 0 {
		fmt.Printf("Moves (%d):\n", len(m.History))
		start := 0
		if len(m.History) > 10 {
			start = len(m.History) - 10
			fmt.Printf("  ... %d earlier moves\n", start)
		}
		for i := start; i < len(m.History); i++ {
			r := m.History[i]
			fmt.Printf("  %3d. %s %s\n", i+1, r.Player, r.Notation)
		}
	}
}

// printBoard draws the hex board. Rows i down to a, each row indented to
// form the hexagon; columns run 1..5+r below the middle row.
func (o *Output) printBoard(cells map[string]string, scores map[string]int) {
	fmt.Printf("\n  Score: Black(@@) %d - %d White(OO)\n\n", scores["black"], scores["white"])

	for r := 8; r >= 0; r-- {
		letter := rune('a' + r)
		indent := r - 4
		if indent < 0 {
			indent = -indent
		}

		lo, hi := 1, 5+r
		if r > 4 {
			lo, hi = r-3, 9
		}

		var row []string
		for c := lo; c <= hi; c++ {
			key := fmt.Sprintf("%c%d", letter, c)
			switch cells[key] {
			case "black":
				row = append(row, "@@")
			case "white":
				row = append(row, "OO")
			default:
				row = append(row, key)
			}
		}

		line := fmt.Sprintf("  %s%s", strings.Repeat("  ", indent), strings.Join(row, " "))
		fmt.Printf("%-40s%c\n", line, letter)
	}
	fmt.Println()
}

func (o *Output) printMoveResult(m MoveResult) {
	fmt.Printf("Played: %s (%s)\n", m.Record.Notation, m.Record.Player)
	if len(m.Record.Pushed) > 0 {
		fmt.Printf("Pushed: %s\n", strings.Join(m.Record.Pushed, ", "))
	}
	if m.Record.PushOff {
		fmt.Println("Marble pushed off the board!")
	}
	if m.Record.Search != nil {
		fmt.Printf("Search: depth %d, %d nodes, %.1fms, score %.1f\n",
			m.Record.Search.Depth, m.Record.Search.Nodes,
			m.Record.Search.ElapsedMs, m.Record.Search.Score)
	}
	o.printMatch(m.Match)
}

func (o *Output) printLegalMoves(l LegalMovesResult) {
	fmt.Printf("Legal moves (%d):\n", len(l.Moves))

	var inline, broadside []string
	for _, m := range l.Moves {
		if m.IsInline {
			inline = append(inline, m.Notation)
		} else {
			broadside = append(broadside, m.Notation)
		}
	}
	sort.Strings(inline)
	sort.Strings(broadside)

	if len(inline) > 0 {
		fmt.Printf("  Inline: %s\n", strings.Join(inline, " "))
	}
	if len(broadside) > 0 {
		fmt.Printf("  Broadside: %s\n", strings.Join(broadside, " "))
	}
}

func (o *Output) printMatchList(l MatchList) {
	fmt.Printf("Matches (%d):\n", len(l.Matches))
	for _, m := range l.Matches {
		state := "in progress"
		if m.Status.GameOver {
			if m.Status.Winner == "" {
				state = "draw"
			} else {
				state = m.Status.Winner + " won"
			}
		} else if m.Paused {
			state = "paused"
		}
		fmt.Printf("  %s  %s  %d moves  %s\n", m.ID, m.Config.Mode, len(m.History), state)
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}

func formatClock(ms int64) string {
	if ms < 0 {
		ms = 0
	}
	total := ms / 1000
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
