package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/metamatong/comp3981-abalone-sumitoq/internal/api/middleware"
	"github.com/metamatong/comp3981-abalone-sumitoq/internal/api/request"
	"github.com/metamatong/comp3981-abalone-sumitoq/internal/api/response"
	"github.com/metamatong/comp3981-abalone-sumitoq/internal/model"
	"github.com/metamatong/comp3981-abalone-sumitoq/internal/services/match"
	"github.com/metamatong/comp3981-abalone-sumitoq/internal/sse"
)

// MatchHandler handles match-related endpoints
type MatchHandler struct {
	matchController match.ControllerInterface
	hubManager      *sse.HubManager
	broadcaster     *sse.Broadcaster
	logger          *slog.Logger
}

// NewMatchHandler creates a new match handler
func NewMatchHandler(matchController match.ControllerInterface, hubManager *sse.HubManager, logger *slog.Logger) *MatchHandler {
	return &MatchHandler{
		matchController: matchController,
		hubManager:      hubManager,
		broadcaster:     sse.NewBroadcaster(hubManager, logger),
		logger:          logger.With(slog.String("component", "match-handler")),
	}
}

func matchIDFromRequest(r *http.Request) model.MatchID {
	return model.MatchID(mux.Vars(r)["id"])
}

// Create handles POST /api/v1/matches
func (h *MatchHandler) Create(w http.ResponseWriter, r *http.Request) {
	account := middleware.MustGetAccount(r.Context())

	var req request.MatchConfigRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	cfg := model.DefaultMatchConfig()
	if err := req.ApplyTo(&cfg); err != nil {
		WriteError(w, err)
		return
	}

	m, err := h.matchController.CreateMatch(r.Context(), account.ID, cfg)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.MatchFromModel(m))
}

// Get handles GET /api/v1/matches/{id}
func (h *MatchHandler) Get(w http.ResponseWriter, r *http.Request) {
	m, err := h.matchController.GetMatch(r.Context(), matchIDFromRequest(r))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.MatchFromModel(m))
}

// List handles GET /api/v1/matches
func (h *MatchHandler) List(w http.ResponseWriter, r *http.Request) {
	account := middleware.MustGetAccount(r.Context())

	matches, err := h.matchController.ListMatches(r.Context(), account.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	out := make([]response.Match, len(matches))
	for i, m := range matches {
		out[i] = response.MatchFromModel(m)
	}
	response.JSON(w, http.StatusOK, map[string]any{"matches": out})
}

// Delete handles DELETE /api/v1/matches/{id}
func (h *MatchHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := matchIDFromRequest(r)
	if err := h.matchController.DeleteMatch(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}

	h.hubManager.RemoveHub(id)
	response.NoContent(w)
}

// Configure handles PATCH /api/v1/matches/{id}/config
func (h *MatchHandler) Configure(w http.ResponseWriter, r *http.Request) {
	id := matchIDFromRequest(r)

	var req request.MatchConfigRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	m, err := h.matchController.GetMatch(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	cfg := m.Config
	if err := req.ApplyTo(&cfg); err != nil {
		WriteError(w, err)
		return
	}

	m, err = h.matchController.Configure(r.Context(), id, cfg)
	if err != nil {
		WriteError(w, err)
		return
	}

	h.broadcaster.BroadcastConfigChanged(id, m.Config)
	response.JSON(w, http.StatusOK, response.MatchFromModel(m))
}

// LegalMoves handles GET /api/v1/matches/{id}/legal-moves
func (h *MatchHandler) LegalMoves(w http.ResponseWriter, r *http.Request) {
	moves, err := h.matchController.LegalMoves(r.Context(), matchIDFromRequest(r))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.LegalMovesFromModel(moves))
}

// Move handles POST /api/v1/matches/{id}/moves
func (h *MatchHandler) Move(w http.ResponseWriter, r *http.Request) {
	id := matchIDFromRequest(r)

	var req request.MoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	move, err := req.ToMove()
	if err != nil {
		WriteError(w, err)
		return
	}

	m, record, err := h.matchController.ApplyHumanMove(r.Context(), id, move)
	if err != nil {
		WriteError(w, err)
		return
	}

	h.broadcastAfterMove(id, m, record)
	response.JSON(w, http.StatusOK, response.MoveResponse{
		Match:  response.MatchFromModel(m),
		Record: response.MoveRecordFromModel(record),
	})
}

// AgentMove handles POST /api/v1/matches/{id}/agent-move
func (h *MatchHandler) AgentMove(w http.ResponseWriter, r *http.Request) {
	id := matchIDFromRequest(r)

	m, record, err := h.matchController.AgentMove(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	h.broadcastAfterMove(id, m, record)
	response.JSON(w, http.StatusOK, response.MoveResponse{
		Match:  response.MatchFromModel(m),
		Record: response.MoveRecordFromModel(record),
	})
}

// Undo handles POST /api/v1/matches/{id}/undo
func (h *MatchHandler) Undo(w http.ResponseWriter, r *http.Request) {
	id := matchIDFromRequest(r)

	m, err := h.matchController.Undo(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.MatchFromModel(m))
}

// Reset handles POST /api/v1/matches/{id}/reset
func (h *MatchHandler) Reset(w http.ResponseWriter, r *http.Request) {
	id := matchIDFromRequest(r)

	m, err := h.matchController.Reset(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	h.broadcaster.BroadcastReset(id)
	response.JSON(w, http.StatusOK, response.MatchFromModel(m))
}

// Resign handles POST /api/v1/matches/{id}/resign
func (h *MatchHandler) Resign(w http.ResponseWriter, r *http.Request) {
	id := matchIDFromRequest(r)

	m, err := h.matchController.Resign(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	h.broadcaster.BroadcastGameOver(id, m.Status())
	response.JSON(w, http.StatusOK, response.MatchFromModel(m))
}

// Pause handles POST /api/v1/matches/{id}/pause
func (h *MatchHandler) Pause(w http.ResponseWriter, r *http.Request) {
	id := matchIDFromRequest(r)

	m, err := h.matchController.TogglePause(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	h.broadcaster.BroadcastPaused(id, m.Paused)
	response.JSON(w, http.StatusOK, response.MatchFromModel(m))
}

// Events handles GET /api/v1/matches/{id}/events
func (h *MatchHandler) Events(w http.ResponseWriter, r *http.Request) {
	id := matchIDFromRequest(r)

	// Verify the match exists before holding the connection open
	if _, err := h.matchController.GetMatch(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}

	account := middleware.MustGetAccount(r.Context())
	hub := h.hubManager.GetOrCreateHub(id)
	sse.ServeSSE(w, r, hub, account.ID)
}

func (h *MatchHandler) broadcastAfterMove(id model.MatchID, m *model.Match, record *model.MoveRecord) {
	h.broadcaster.BroadcastMoveApplied(id, record, m.CurrentPlayer)
	if status := m.Status(); status.GameOver {
		h.broadcaster.BroadcastGameOver(id, status)
	}
}
