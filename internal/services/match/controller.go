package match

import (
	"context"
	"log/slog"
	"time"

	"github.com/metamatong/comp3981-abalone-sumitoq/internal/dependencies/clock"
	"github.com/metamatong/comp3981-abalone-sumitoq/internal/dependencies/random"
	"github.com/metamatong/comp3981-abalone-sumitoq/internal/model"
	"github.com/metamatong/comp3981-abalone-sumitoq/internal/services/rules"
	"github.com/metamatong/comp3981-abalone-sumitoq/internal/services/search"
	"github.com/metamatong/comp3981-abalone-sumitoq/internal/storage"
)

const matchIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Controller manages match lifecycle, turn flow and clocks
type Controller struct {
	storage       storage.Storage
	rulesService  *rules.Service
	searchService *search.Service
	clock         clock.Clock
	random        random.Random
	logger        *slog.Logger
}

// NewController creates a new match Controller
func NewController(
	storage storage.Storage,
	rulesService *rules.Service,
	searchService *search.Service,
	clk clock.Clock,
	rnd random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:       storage,
		rulesService:  rulesService,
		searchService: searchService,
		clock:         clk,
		random:        rnd,
		logger:        logger.With(slog.String("component", "match")),
	}
}

// CreateMatch initializes and persists a new match for the given account
func (c *Controller) CreateMatch(ctx context.Context, createdBy model.AccountID, cfg model.MatchConfig) (*model.Match, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	board := model.NewBoard()
	if err := board.SetupLayout(cfg.Layout); err != nil {
		return nil, err
	}

	now := c.clock.Now()
	m := &model.Match{
		ID:              model.MatchID(c.random.String(12, matchIDAlphabet)),
		CreatedBy:       createdBy,
		Config:          cfg,
		Board:           board,
		CurrentPlayer:   model.Black,
		TimeLeft:        initialClocks(cfg),
		LastClockUpdate: now,
		TurnStartedAt:   now,
		Started:         true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := c.storage.SaveMatch(ctx, m); err != nil {
		c.logger.Error("failed to save match",
			slog.String("match_id", string(m.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("match created",
		slog.String("match_id", string(m.ID)),
		slog.String("mode", string(cfg.Mode)),
		slog.String("layout", cfg.Layout),
		slog.Int("depth", cfg.Depth),
	)

	return m, nil
}

func initialClocks(cfg model.MatchConfig) [3]time.Duration {
	clocks := [3]time.Duration{}
	clocks[model.Black] = cfg.BlackTime
	clocks[model.White] = cfg.WhiteTime
	if clocks[model.Black] <= 0 {
		clocks[model.Black] = model.DefaultMatchTime
	}
	if clocks[model.White] <= 0 {
		clocks[model.White] = model.DefaultMatchTime
	}
	return clocks
}

// GetMatch retrieves a match, advancing its clock state first
func (c *Controller) GetMatch(ctx context.Context, id model.MatchID) (*model.Match, error) {
	m, err := c.storage.GetMatch(ctx, id)
	if err != nil {
		return nil, err
	}

	c.tickClock(m)
	c.checkMoveTimeLimit(m)

	if err := c.storage.SaveMatch(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// ListMatches returns the matches created by an account
func (c *Controller) ListMatches(ctx context.Context, accountID model.AccountID) ([]*model.Match, error) {
	return c.storage.ListMatchesForAccount(ctx, accountID)
}

// DeleteMatch removes a match
func (c *Controller) DeleteMatch(ctx context.Context, id model.MatchID) error {
	return c.storage.DeleteMatch(ctx, id)
}

// Configure replaces the match settings. Board and clocks are untouched
// until the next reset.
func (c *Controller) Configure(ctx context.Context, id model.MatchID, cfg model.MatchConfig) (*model.Match, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	m, err := c.storage.GetMatch(ctx, id)
	if err != nil {
		return nil, err
	}

	m.Config = cfg
	m.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveMatch(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// LegalMoves lists the legal moves for the side to move
func (c *Controller) LegalMoves(ctx context.Context, id model.MatchID) ([]model.Move, error) {
	m, err := c.storage.GetMatch(ctx, id)
	if err != nil {
		return nil, err
	}
	return c.rulesService.LegalMoves(m.Board, m.CurrentPlayer), nil
}

// ApplyHumanMove plays a move on behalf of the human controlling the side
// to move
func (c *Controller) ApplyHumanMove(ctx context.Context, id model.MatchID, move model.Move) (*model.Match, *model.MoveRecord, error) {
	m, err := c.storage.GetMatch(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	if err := c.beforeTurnAction(m); err != nil {
		return nil, nil, err
	}
	if m.CurrentController() != model.ControllerHuman {
		return nil, nil, model.ErrNotHumanTurn
	}

	if err := c.rulesService.ValidateMove(m.Board, m.CurrentPlayer, move); err != nil {
		return nil, nil, err
	}

	record := c.applyMove(m, move, model.ControllerHuman, nil)
	if err := c.storage.SaveMatch(ctx, m); err != nil {
		return nil, nil, err
	}
	return m, record, nil
}

// AgentMove searches for and plays a move on behalf of the agent
// controlling the side to move
func (c *Controller) AgentMove(ctx context.Context, id model.MatchID) (*model.Match, *model.MoveRecord, error) {
	m, err := c.storage.GetMatch(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	if err := c.beforeTurnAction(m); err != nil {
		return nil, nil, err
	}
	if m.CurrentController() != model.ControllerAgent {
		return nil, nil, model.ErrNotAgentTurn
	}

	result := c.searchService.Search(m.Board, m.CurrentPlayer, search.Config{
		Depth:     m.Config.Depth,
		Heuristic: m.Config.Heuristic,
		TieBreak:  m.Config.TieBreak,
	})
	if result.Move == nil {
		return nil, nil, model.ErrAgentMoveError
	}
	if err := c.rulesService.ValidateMove(m.Board, m.CurrentPlayer, *result.Move); err != nil {
		c.logger.Error("agent produced invalid move",
			slog.String("match_id", string(m.ID)),
			slog.String("move", result.Move.String()),
			slog.String("error", err.Error()),
		)
		return nil, nil, model.ErrAgentMoveError
	}

	record := c.applyMove(m, *result.Move, model.ControllerAgent, result.Info())
	if err := c.storage.SaveMatch(ctx, m); err != nil {
		return nil, nil, err
	}
	return m, record, nil
}

// Undo reverts the last move, restoring its board snapshot and clocks
func (c *Controller) Undo(ctx context.Context, id model.MatchID) (*model.Match, error) {
	m, err := c.storage.GetMatch(ctx, id)
	if err != nil {
		return nil, err
	}

	if len(m.History) == 0 {
		return nil, model.ErrNothingToUndo
	}

	entry := m.History[len(m.History)-1]
	m.History = m.History[:len(m.History)-1]
	m.Board = entry.Snapshot
	m.CurrentPlayer = entry.Player
	m.TimeLeft = entry.Clocks

	now := c.clock.Now()
	m.LastClockUpdate = now
	m.TurnStartedAt = now
	m.UpdatedAt = now

	if err := c.storage.SaveMatch(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// Reset starts the match over from its configured layout and clocks
func (c *Controller) Reset(ctx context.Context, id model.MatchID) (*model.Match, error) {
	m, err := c.storage.GetMatch(ctx, id)
	if err != nil {
		return nil, err
	}

	board := model.NewBoard()
	if err := board.SetupLayout(m.Config.Layout); err != nil {
		return nil, err
	}

	now := c.clock.Now()
	m.Board = board
	m.CurrentPlayer = model.Black
	m.History = nil
	m.TimeLeft = initialClocks(m.Config)
	m.LastClockUpdate = now
	m.TurnStartedAt = now
	m.PauseStartedAt = time.Time{}
	m.Paused = false
	m.Started = true
	m.Resigned = false
	m.ResignWinner = model.NoPlayer
	m.UpdatedAt = now

	if err := c.storage.SaveMatch(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// Resign ends the match in favor of the opponent of the side to move
func (c *Controller) Resign(ctx context.Context, id model.MatchID) (*model.Match, error) {
	m, err := c.storage.GetMatch(ctx, id)
	if err != nil {
		return nil, err
	}

	if m.Status().GameOver {
		return nil, model.ErrMatchOver
	}

	m.Resigned = true
	m.ResignWinner = m.CurrentPlayer.Opponent()
	m.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveMatch(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// TogglePause pauses or resumes the match. Time spent paused is excluded
// from both the side clock and the per-move limit.
func (c *Controller) TogglePause(ctx context.Context, id model.MatchID) (*model.Match, error) {
	m, err := c.storage.GetMatch(ctx, id)
	if err != nil {
		return nil, err
	}

	c.tickClock(m)
	now := c.clock.Now()
	if !m.Paused {
		m.Paused = true
		m.PauseStartedAt = now
	} else {
		m.Paused = false
		if !m.PauseStartedAt.IsZero() {
			m.TurnStartedAt = m.TurnStartedAt.Add(now.Sub(m.PauseStartedAt))
			m.PauseStartedAt = time.Time{}
		}
	}
	m.LastClockUpdate = now
	m.UpdatedAt = now

	if err := c.storage.SaveMatch(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// tickClock charges wall time since the last update against the side to
// move. Clocks do not run before the first reset, while paused, or after
// the game ends.
func (c *Controller) tickClock(m *model.Match) {
	now := c.clock.Now()
	if !m.Started || m.Status().GameOver || m.Paused {
		m.LastClockUpdate = now
		return
	}

	elapsed := now.Sub(m.LastClockUpdate)
	if elapsed > 0 {
		m.TimeLeft[m.CurrentPlayer] -= elapsed
		if m.TimeLeft[m.CurrentPlayer] < 0 {
			m.TimeLeft[m.CurrentPlayer] = 0
		}
	}
	m.LastClockUpdate = now
}

// checkMoveTimeLimit forfeits the turn when the per-move limit is exceeded
func (c *Controller) checkMoveTimeLimit(m *model.Match) {
	if !m.Started || m.Config.MoveTimeLimit <= 0 {
		return
	}
	if m.Status().GameOver || m.Paused {
		return
	}

	now := c.clock.Now()
	if now.Sub(m.TurnStartedAt) >= m.Config.MoveTimeLimit {
		m.CurrentPlayer = m.CurrentPlayer.Opponent()
		m.LastClockUpdate = now
		m.TurnStartedAt = now
	}
}

func (c *Controller) beforeTurnAction(m *model.Match) error {
	c.tickClock(m)
	c.checkMoveTimeLimit(m)

	if m.Status().GameOver {
		return model.ErrMatchOver
	}
	if m.Paused {
		return model.ErrMatchPaused
	}
	return nil
}

// applyMove mutates the board and records the move. The caller has already
// validated it.
func (c *Controller) applyMove(m *model.Match, move model.Move, source model.Controller, info *model.SearchInfo) *model.MoveRecord {
	player := m.CurrentPlayer
	snapshot := m.Board.Copy()
	clocks := m.TimeLeft

	now := c.clock.Now()
	duration := now.Sub(m.TurnStartedAt)
	if duration < 0 {
		duration = 0
	}

	result := m.Board.ApplyMove(move, player)
	record := model.MoveRecord{
		Move:     move,
		Player:   player,
		Notation: move.Notation(len(result.Pushed) > 0),
		Pushed:   result.Pushed,
		PushOff:  result.PushOff,
		Source:   source,
		Search:   info,
		Duration: duration,
		Snapshot: snapshot,
		Clocks:   clocks,
	}
	m.History = append(m.History, record)

	m.CurrentPlayer = player.Opponent()
	m.LastClockUpdate = now
	m.TurnStartedAt = now
	m.UpdatedAt = now

	c.logger.Info("move applied",
		slog.String("match_id", string(m.ID)),
		slog.String("player", player.String()),
		slog.String("notation", record.Notation),
		slog.String("source", string(source)),
	)

	return &m.History[len(m.History)-1]
}

// Interface for dependency injection
type ControllerInterface interface {
	CreateMatch(ctx context.Context, createdBy model.AccountID, cfg model.MatchConfig) (*model.Match, error)
	GetMatch(ctx context.Context, id model.MatchID) (*model.Match, error)
	ListMatches(ctx context.Context, accountID model.AccountID) ([]*model.Match, error)
	DeleteMatch(ctx context.Context, id model.MatchID) error
	Configure(ctx context.Context, id model.MatchID, cfg model.MatchConfig) (*model.Match, error)
	LegalMoves(ctx context.Context, id model.MatchID) ([]model.Move, error)
	ApplyHumanMove(ctx context.Context, id model.MatchID, move model.Move) (*model.Match, *model.MoveRecord, error)
	AgentMove(ctx context.Context, id model.MatchID) (*model.Match, *model.MoveRecord, error)
	Undo(ctx context.Context, id model.MatchID) (*model.Match, error)
	Reset(ctx context.Context, id model.MatchID) (*model.Match, error)
	Resign(ctx context.Context, id model.MatchID) (*model.Match, error)
	TogglePause(ctx context.Context, id model.MatchID) (*model.Match, error)
}

var _ ControllerInterface = (*Controller)(nil)
