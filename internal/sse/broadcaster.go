package sse

import (
	"encoding/json"
	"log/slog"

	"github.com/metamatong/comp3981-abalone-sumitoq/internal/model"
)

// Event names pushed to match streams
const (
	EventMoveApplied   = "move_applied"
	EventGameOver      = "game_over"
	EventPaused        = "paused"
	EventReset         = "reset"
	EventConfigChanged = "config_changed"
)

// Broadcaster pushes match updates to SSE clients
type Broadcaster struct {
	hubManager *HubManager
	logger     *slog.Logger
}

// NewBroadcaster creates a new Broadcaster
func NewBroadcaster(hubManager *HubManager, logger *slog.Logger) *Broadcaster {
	return &Broadcaster{
		hubManager: hubManager,
		logger:     logger.With(slog.String("component", "sse-broadcaster")),
	}
}

// broadcastJSON marshals the payload and sends it to the match's hub, if
// any client is listening
func (b *Broadcaster) broadcastJSON(matchID model.MatchID, event string, payload any) {
	hub := b.hubManager.GetHub(matchID)
	if hub == nil {
		return
	}

	data, err := json.Marshal(payload)
	if err != nil {
		b.logger.Error("sse failed to marshal event payload",
			slog.String("match", string(matchID)),
			slog.String("event", event),
			slog.Any("error", err))
		return
	}

	hub.BroadcastEvent(event, string(data))
}

// BroadcastMoveApplied announces a played move
func (b *Broadcaster) BroadcastMoveApplied(matchID model.MatchID, record *model.MoveRecord, nextPlayer model.Player) {
	b.broadcastJSON(matchID, EventMoveApplied, map[string]any{
		"notation":    record.Notation,
		"player":      record.Player.String(),
		"source":      string(record.Source),
		"pushoff":     record.PushOff,
		"next_player": nextPlayer.String(),
	})
}

// BroadcastGameOver announces the end of a match
func (b *Broadcaster) BroadcastGameOver(matchID model.MatchID, status model.Status) {
	winner := ""
	if status.Winner != model.NoPlayer {
		winner = status.Winner.String()
	}
	b.broadcastJSON(matchID, EventGameOver, map[string]any{
		"winner": winner,
		"reason": string(status.Reason),
	})
}

// BroadcastPaused announces a pause state change
func (b *Broadcaster) BroadcastPaused(matchID model.MatchID, paused bool) {
	b.broadcastJSON(matchID, EventPaused, map[string]any{
		"paused": paused,
	})
}

// BroadcastReset announces that the match restarted
func (b *Broadcaster) BroadcastReset(matchID model.MatchID) {
	b.broadcastJSON(matchID, EventReset, map[string]any{
		"reset": true,
	})
}

// BroadcastConfigChanged announces a settings change
func (b *Broadcaster) BroadcastConfigChanged(matchID model.MatchID, cfg model.MatchConfig) {
	b.broadcastJSON(matchID, EventConfigChanged, map[string]any{
		"mode":      string(cfg.Mode),
		"depth":     cfg.Depth,
		"heuristic": cfg.Heuristic,
		"layout":    cfg.Layout,
	})
}
