package api_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/metamatong/comp3981-abalone-sumitoq/internal/api"
	"github.com/metamatong/comp3981-abalone-sumitoq/internal/api/response"
	"github.com/metamatong/comp3981-abalone-sumitoq/internal/factory"
	"github.com/metamatong/comp3981-abalone-sumitoq/internal/services/auth"
	"github.com/metamatong/comp3981-abalone-sumitoq/internal/storage/memory"
)

// testServer creates a test server with all dependencies
type testServer struct {
	handler http.Handler
	storage *memory.Storage
	auth    *auth.Service
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	// API tests are integration tests - use production factory with real random/clock
	app, err := factory.New(factory.Config{})
	require.NoError(t, err)

	router := api.NewRouter(api.RouterConfig{
		Logger:          logger,
		AuthService:     app.AuthService,
		MatchController: app.MatchController,
		HubManager:      app.HubManager,
	})

	return &testServer{
		handler: router,
		storage: app.Storage.(*memory.Storage),
		auth:    app.AuthService,
	}
}

func (ts *testServer) request(method, path string, body any, token string) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		b, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(b)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/health", nil, "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "ok")
}

func TestCreateGuestAccount(t *testing.T) {
	ts := newTestServer(t)

	body := map[string]string{"display_name": "Alice"}
	rr := ts.request(http.MethodPost, "/api/v1/players/guest", body, "")

	assert.Equal(t, http.StatusCreated, rr.Code)

	var resp response.AuthResponse
	err := json.Unmarshal(rr.Body.Bytes(), &resp)
	require.NoError(t, err)

	assert.Equal(t, "Alice", resp.Account.DisplayName)
	assert.True(t, resp.Account.IsGuest)
	assert.NotEmpty(t, resp.SessionToken)
}

func TestRegisterAndLogin(t *testing.T) {
	ts := newTestServer(t)

	// Register
	registerBody := map[string]string{
		"username":     "alice",
		"password":     "secret123",
		"display_name": "Alice",
	}
	rr := ts.request(http.MethodPost, "/api/v1/players/register", registerBody, "")
	assert.Equal(t, http.StatusCreated, rr.Code)

	var registerResp response.AuthResponse
	err := json.Unmarshal(rr.Body.Bytes(), &registerResp)
	require.NoError(t, err)
	assert.False(t, registerResp.Account.IsGuest)

	// Login
	loginBody := map[string]string{
		"username": "alice",
		"password": "secret123",
	}
	rr = ts.request(http.MethodPost, "/api/v1/players/login", loginBody, "")
	assert.Equal(t, http.StatusOK, rr.Code)

	var loginResp response.AuthResponse
	err = json.Unmarshal(rr.Body.Bytes(), &loginResp)
	require.NoError(t, err)
	assert.Equal(t, registerResp.Account.ID, loginResp.Account.ID)
}

func TestGetMe(t *testing.T) {
	ts := newTestServer(t)

	token := createGuestAccount(t, ts, "Bob")

	rr := ts.request(http.MethodGet, "/api/v1/players/me", nil, token)
	assert.Equal(t, http.StatusOK, rr.Code)

	var meResp response.Account
	err := json.Unmarshal(rr.Body.Bytes(), &meResp)
	require.NoError(t, err)
	assert.Equal(t, "Bob", meResp.DisplayName)
}

func TestUnauthorizedWithoutToken(t *testing.T) {
	ts := newTestServer(t)

	// Try to get /me without token
	rr := ts.request(http.MethodGet, "/api/v1/players/me", nil, "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	// Try to create match without token
	rr = ts.request(http.MethodPost, "/api/v1/matches", nil, "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestCreateMatch(t *testing.T) {
	ts := newTestServer(t)

	token := createGuestAccount(t, ts, "Alice")

	body := map[string]any{"mode": "hvh"}
	rr := ts.request(http.MethodPost, "/api/v1/matches", body, token)
	assert.Equal(t, http.StatusCreated, rr.Code)

	var matchResp response.Match
	err := json.Unmarshal(rr.Body.Bytes(), &matchResp)
	require.NoError(t, err)

	assert.NotEmpty(t, matchResp.ID)
	assert.Equal(t, "hvh", matchResp.Config.Mode)
	assert.Equal(t, "black", matchResp.CurrentPlayer)
	assert.Equal(t, 14, matchResp.MarbleCounts["black"])
	assert.Equal(t, 14, matchResp.MarbleCounts["white"])
	assert.Equal(t, "black", matchResp.Cells["c3"])
	assert.Equal(t, "white", matchResp.Cells["g7"])
	assert.False(t, matchResp.Status.GameOver)
}

func TestCreateMatchRejectsBadConfig(t *testing.T) {
	ts := newTestServer(t)

	token := createGuestAccount(t, ts, "Alice")

	body := map[string]any{"depth": 9}
	rr := ts.request(http.MethodPost, "/api/v1/matches", body, token)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "INVALID_CONFIG")
}

func TestPlayMoves(t *testing.T) {
	ts := newTestServer(t)

	token := createGuestAccount(t, ts, "Alice")
	matchID := createMatch(t, ts, token, map[string]any{"mode": "hvh"})

	// Black opens
	moveBody := map[string]any{"marbles": []string{"c3"}, "direction": "NW"}
	rr := ts.request(http.MethodPost, "/api/v1/matches/"+matchID+"/moves", moveBody, token)
	assert.Equal(t, http.StatusOK, rr.Code)

	var moveResp response.MoveResponse
	err := json.Unmarshal(rr.Body.Bytes(), &moveResp)
	require.NoError(t, err)
	assert.Equal(t, "1:c3d3", moveResp.Record.Notation)
	assert.Equal(t, "black", moveResp.Record.Player)
	assert.Equal(t, "white", moveResp.Match.CurrentPlayer)
	assert.Equal(t, "black", moveResp.Match.Cells["d3"])

	// Illegal move: the vacated cell has no marble
	moveBody = map[string]any{"marbles": []string{"c3"}, "direction": "NW"}
	rr = ts.request(http.MethodPost, "/api/v1/matches/"+matchID+"/moves", moveBody, token)
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Contains(t, rr.Body.String(), "ILLEGAL_MOVE")

	// Malformed move
	moveBody = map[string]any{"marbles": []string{"z9"}, "direction": "NW"}
	rr = ts.request(http.MethodPost, "/api/v1/matches/"+matchID+"/moves", moveBody, token)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "MALFORMED_MOVE")
}

func TestAgentMoveFlow(t *testing.T) {
	ts := newTestServer(t)

	token := createGuestAccount(t, ts, "Alice")
	matchID := createMatch(t, ts, token, map[string]any{
		"mode":       "hva",
		"human_side": "black",
		"depth":      1,
	})

	// Agent cannot move on the human's turn
	rr := ts.request(http.MethodPost, "/api/v1/matches/"+matchID+"/agent-move", nil, token)
	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Contains(t, rr.Body.String(), "NOT_YOUR_TURN")

	// Human plays
	moveBody := map[string]any{"marbles": []string{"c3"}, "direction": "NW"}
	rr = ts.request(http.MethodPost, "/api/v1/matches/"+matchID+"/moves", moveBody, token)
	require.Equal(t, http.StatusOK, rr.Code)

	// Agent answers
	rr = ts.request(http.MethodPost, "/api/v1/matches/"+matchID+"/agent-move", nil, token)
	assert.Equal(t, http.StatusOK, rr.Code)

	var moveResp response.MoveResponse
	err := json.Unmarshal(rr.Body.Bytes(), &moveResp)
	require.NoError(t, err)
	assert.Equal(t, "white", moveResp.Record.Player)
	assert.Equal(t, "ai", moveResp.Record.Source)
	require.NotNil(t, moveResp.Record.Search)
	assert.Equal(t, 1, moveResp.Record.Search.Depth)
	assert.Positive(t, moveResp.Record.Search.Nodes)
}

func TestLegalMoves(t *testing.T) {
	ts := newTestServer(t)

	token := createGuestAccount(t, ts, "Alice")
	matchID := createMatch(t, ts, token, map[string]any{"mode": "hvh"})

	rr := ts.request(http.MethodGet, "/api/v1/matches/"+matchID+"/legal-moves", nil, token)
	assert.Equal(t, http.StatusOK, rr.Code)

	var legalResp response.LegalMovesResponse
	err := json.Unmarshal(rr.Body.Bytes(), &legalResp)
	require.NoError(t, err)
	assert.Len(t, legalResp.Moves, 44)
}

func TestUndoAndReset(t *testing.T) {
	ts := newTestServer(t)

	token := createGuestAccount(t, ts, "Alice")
	matchID := createMatch(t, ts, token, map[string]any{"mode": "hvh"})

	// Undo with no history
	rr := ts.request(http.MethodPost, "/api/v1/matches/"+matchID+"/undo", nil, token)
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Contains(t, rr.Body.String(), "NOTHING_TO_UNDO")

	// Play then undo
	moveBody := map[string]any{"marbles": []string{"c3"}, "direction": "NW"}
	rr = ts.request(http.MethodPost, "/api/v1/matches/"+matchID+"/moves", moveBody, token)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = ts.request(http.MethodPost, "/api/v1/matches/"+matchID+"/undo", nil, token)
	assert.Equal(t, http.StatusOK, rr.Code)

	var matchResp response.Match
	err := json.Unmarshal(rr.Body.Bytes(), &matchResp)
	require.NoError(t, err)
	assert.Equal(t, "black", matchResp.CurrentPlayer)
	assert.Empty(t, matchResp.History)
	assert.Equal(t, "black", matchResp.Cells["c3"])

	// Play then reset
	rr = ts.request(http.MethodPost, "/api/v1/matches/"+matchID+"/moves", moveBody, token)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = ts.request(http.MethodPost, "/api/v1/matches/"+matchID+"/reset", nil, token)
	assert.Equal(t, http.StatusOK, rr.Code)

	err = json.Unmarshal(rr.Body.Bytes(), &matchResp)
	require.NoError(t, err)
	assert.Empty(t, matchResp.History)
	assert.Equal(t, "black", matchResp.Cells["c3"])
}

func TestResign(t *testing.T) {
	ts := newTestServer(t)

	token := createGuestAccount(t, ts, "Alice")
	matchID := createMatch(t, ts, token, map[string]any{"mode": "hvh"})

	rr := ts.request(http.MethodPost, "/api/v1/matches/"+matchID+"/resign", nil, token)
	assert.Equal(t, http.StatusOK, rr.Code)

	var matchResp response.Match
	err := json.Unmarshal(rr.Body.Bytes(), &matchResp)
	require.NoError(t, err)
	assert.True(t, matchResp.Status.GameOver)
	assert.Equal(t, "white", matchResp.Status.Winner)
	assert.Equal(t, "resign", matchResp.Status.Reason)

	// Moves rejected once the match is over
	moveBody := map[string]any{"marbles": []string{"c3"}, "direction": "NW"}
	rr = ts.request(http.MethodPost, "/api/v1/matches/"+matchID+"/moves", moveBody, token)
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Contains(t, rr.Body.String(), "MATCH_OVER")
}

func TestPauseBlocksMoves(t *testing.T) {
	ts := newTestServer(t)

	token := createGuestAccount(t, ts, "Alice")
	matchID := createMatch(t, ts, token, map[string]any{"mode": "hvh"})

	rr := ts.request(http.MethodPost, "/api/v1/matches/"+matchID+"/pause", nil, token)
	assert.Equal(t, http.StatusOK, rr.Code)

	var matchResp response.Match
	err := json.Unmarshal(rr.Body.Bytes(), &matchResp)
	require.NoError(t, err)
	assert.True(t, matchResp.Paused)

	moveBody := map[string]any{"marbles": []string{"c3"}, "direction": "NW"}
	rr = ts.request(http.MethodPost, "/api/v1/matches/"+matchID+"/moves", moveBody, token)
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Contains(t, rr.Body.String(), "MATCH_PAUSED")

	// Unpause and move
	rr = ts.request(http.MethodPost, "/api/v1/matches/"+matchID+"/pause", nil, token)
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = ts.request(http.MethodPost, "/api/v1/matches/"+matchID+"/moves", moveBody, token)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestConfigure(t *testing.T) {
	ts := newTestServer(t)

	token := createGuestAccount(t, ts, "Alice")
	matchID := createMatch(t, ts, token, map[string]any{"mode": "hva", "depth": 2})

	body := map[string]any{"depth": 4, "heuristic": "material"}
	rr := ts.request(http.MethodPatch, "/api/v1/matches/"+matchID+"/config", body, token)
	assert.Equal(t, http.StatusOK, rr.Code)

	var matchResp response.Match
	err := json.Unmarshal(rr.Body.Bytes(), &matchResp)
	require.NoError(t, err)
	assert.Equal(t, 4, matchResp.Config.Depth)
	assert.Equal(t, "material", matchResp.Config.Heuristic)
	// Untouched fields keep their values
	assert.Equal(t, "hva", matchResp.Config.Mode)
}

func TestListAndDeleteMatches(t *testing.T) {
	ts := newTestServer(t)

	token := createGuestAccount(t, ts, "Alice")
	matchID := createMatch(t, ts, token, map[string]any{"mode": "hvh"})
	_ = createMatch(t, ts, token, map[string]any{"mode": "hvh"})

	rr := ts.request(http.MethodGet, "/api/v1/matches", nil, token)
	assert.Equal(t, http.StatusOK, rr.Code)

	var listResp struct {
		Matches []response.Match `json:"matches"`
	}
	err := json.Unmarshal(rr.Body.Bytes(), &listResp)
	require.NoError(t, err)
	assert.Len(t, listResp.Matches, 2)

	rr = ts.request(http.MethodDelete, "/api/v1/matches/"+matchID, nil, token)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/matches/"+matchID, nil, token)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "MATCH_NOT_FOUND")
}

// Helper functions

func createGuestAccount(t *testing.T, ts *testServer, displayName string) string {
	t.Helper()

	body := map[string]string{"display_name": displayName}
	rr := ts.request(http.MethodPost, "/api/v1/players/guest", body, "")
	require.Equal(t, http.StatusCreated, rr.Code)

	var resp response.AuthResponse
	err := json.Unmarshal(rr.Body.Bytes(), &resp)
	require.NoError(t, err)

	return resp.SessionToken
}

func createMatch(t *testing.T, ts *testServer, token string, body map[string]any) string {
	t.Helper()

	rr := ts.request(http.MethodPost, "/api/v1/matches", body, token)
	require.Equal(t, http.StatusCreated, rr.Code)

	var resp response.Match
	err := json.Unmarshal(rr.Body.Bytes(), &resp)
	require.NoError(t, err)

	return resp.ID
}
