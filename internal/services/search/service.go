package search

import (
	"log/slog"
	"math"
	"sort"
	"time"

	"github.com/metamatong/comp3981-abalone-sumitoq/internal/dependencies/clock"
	"github.com/metamatong/comp3981-abalone-sumitoq/internal/model"
	"github.com/metamatong/comp3981-abalone-sumitoq/internal/services/eval"
	"github.com/metamatong/comp3981-abalone-sumitoq/internal/services/rules"
)

// Depth limits for a single search
const (
	MinDepth = 1
	MaxDepth = 5
)

// TieBreakLexicographic prefers the move whose notation sorts earlier when
// two candidates score exactly equal
const TieBreakLexicographic = "lexicographic"

// Config holds the immutable settings for one search invocation
type Config struct {
	Depth     int    // plies, clamped to [MinDepth, MaxDepth]
	Heuristic string // evaluation preset name
	TieBreak  string // tie-break policy name
}

// DefaultConfig returns the standard agent settings
func DefaultConfig() Config {
	return Config{
		Depth:     2,
		Heuristic: eval.PresetBalanced,
		TieBreak:  TieBreakLexicographic,
	}
}

func (c Config) clamped() Config {
	if c.Depth < MinDepth {
		c.Depth = MinDepth
	}
	if c.Depth > MaxDepth {
		c.Depth = MaxDepth
	}
	return c
}

// Result is the outcome of one search invocation. Move is nil when the
// position offers no legal move; callers must treat that as "no move
// available", not as an error.
type Result struct {
	Move    *model.Move
	Score   float64
	Nodes   int
	Elapsed time.Duration
	Depth   int
}

// Info converts the result to the match-history record form
func (r Result) Info() *model.SearchInfo {
	info := &model.SearchInfo{
		Score:   r.Score,
		Nodes:   r.Nodes,
		Elapsed: float64(r.Elapsed) / float64(time.Millisecond),
		Depth:   r.Depth,
	}
	if r.Move != nil {
		info.Notation = r.Move.Notation(false)
	}
	return info
}

// Service chooses moves via depth-bounded minimax with alpha-beta pruning.
// The search is synchronous and single-threaded; every branch works on its
// own board copy, and depth is the only bound on work performed.
type Service struct {
	rules  *rules.Service
	eval   *eval.Service
	clock  clock.Clock
	logger *slog.Logger
}

// New creates a new search Service
func New(rulesService *rules.Service, evalService *eval.Service, clk clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		rules:  rulesService,
		eval:   evalService,
		clock:  clk,
		logger: logger.With(slog.String("component", "search")),
	}
}

// Search finds the best move for the player within the configured ply
// budget. Two invocations on the same position and config return identical
// results.
func (s *Service) Search(b *model.Board, player model.Player, cfg Config) Result {
	cfg = cfg.clamped()
	nodes := 0
	start := s.clock.Now()

	score, move := s.minimax(b, player, player, cfg.Depth, math.Inf(-1), math.Inf(1), cfg, &nodes)

	elapsed := s.clock.Now().Sub(start)
	result := Result{
		Move:    move,
		Score:   score,
		Nodes:   nodes,
		Elapsed: elapsed,
		Depth:   cfg.Depth,
	}

	notation := "(none)"
	if move != nil {
		notation = move.Notation(false)
	}
	s.logger.Debug("search complete",
		slog.String("player", player.String()),
		slog.Int("depth", cfg.Depth),
		slog.String("move", notation),
		slog.Float64("score", score),
		slog.Int("nodes", nodes),
		slog.Duration("elapsed", elapsed),
	)

	return result
}

// minimax evaluates (board, toMove) and returns the best value for the root
// player plus the move that achieves it at this node. Values are always
// from the root player's perspective: the node maximizes when its mover is
// the root player and minimizes otherwise.
func (s *Service) minimax(
	b *model.Board,
	toMove, rootPlayer model.Player,
	depth int,
	alpha, beta float64,
	cfg Config,
	nodes *int,
) (float64, *model.Move) {
	*nodes++

	if depth == 0 || b.IsGameOver() {
		return s.eval.Evaluate(b, rootPlayer, cfg.Heuristic), nil
	}

	legal := s.rules.LegalMoves(b, toMove)
	if len(legal) == 0 {
		return s.eval.Evaluate(b, rootPlayer, cfg.Heuristic), nil
	}

	s.orderMoves(b, toMove, legal)
	maximizing := toMove == rootPlayer
	opponent := toMove.Opponent()

	var bestMove *model.Move
	bestValue := math.Inf(1)
	if maximizing {
		bestValue = math.Inf(-1)
	}

	for i := range legal {
		move := legal[i]
		child := b.Copy()
		child.ApplyMove(move, toMove)

		value, _ := s.minimax(child, opponent, rootPlayer, depth-1, alpha, beta, cfg, nodes)

		improved := false
		if maximizing {
			improved = value > bestValue
		} else {
			improved = value < bestValue
		}
		if improved || (value == bestValue && s.preferByTieBreak(cfg, move, bestMove)) {
			bestValue = value
			bestMove = &legal[i]
		}

		if maximizing {
			alpha = math.Max(alpha, bestValue)
		} else {
			beta = math.Min(beta, bestValue)
		}
		if beta <= alpha {
			break
		}
	}

	return bestValue, bestMove
}

// orderMoves sorts candidates to improve pruning: pushes first, then larger
// lines, then ascending notation. Ordering never changes the chosen result,
// only how much of the tree is explored.
func (s *Service) orderMoves(b *model.Board, player model.Player, moves []model.Move) {
	type key struct {
		push     int
		count    int
		notation string
	}
	keys := make(map[string]key, len(moves))
	for _, m := range moves {
		push := 1
		if s.rules.IsPushMove(b, player, m) {
			push = 0
		}
		keys[m.Key()] = key{push: push, count: -m.Count(), notation: m.Notation(false)}
	}
	sort.Slice(moves, func(i, j int) bool {
		a, c := keys[moves[i].Key()], keys[moves[j].Key()]
		if a.push != c.push {
			return a.push < c.push
		}
		if a.count != c.count {
			return a.count < c.count
		}
		return a.notation < c.notation
	})
}

// preferByTieBreak decides whether a candidate with a value exactly equal
// to the incumbent's should replace it
func (s *Service) preferByTieBreak(cfg Config, candidate model.Move, incumbent *model.Move) bool {
	if incumbent == nil {
		return true
	}
	if cfg.TieBreak == TieBreakLexicographic {
		return candidate.Notation(false) < incumbent.Notation(false)
	}
	return false
}
