package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/metamatong/comp3981-abalone-sumitoq/internal/api/handler"
	apimiddleware "github.com/metamatong/comp3981-abalone-sumitoq/internal/api/middleware"
	"github.com/metamatong/comp3981-abalone-sumitoq/internal/middleware"
	"github.com/metamatong/comp3981-abalone-sumitoq/internal/services/auth"
	"github.com/metamatong/comp3981-abalone-sumitoq/internal/services/match"
	"github.com/metamatong/comp3981-abalone-sumitoq/internal/sse"
)

// RouterConfig holds the dependencies for the API router
type RouterConfig struct {
	Logger          *slog.Logger
	AuthService     *auth.Service
	MatchController match.ControllerInterface
	HubManager      *sse.HubManager
}

// NewRouter creates the API router with all routes configured
func NewRouter(cfg RouterConfig) *mux.Router {
	accountHandler := handler.NewAccountHandler(cfg.AuthService)
	matchHandler := handler.NewMatchHandler(cfg.MatchController, cfg.HubManager, cfg.Logger)

	r := mux.NewRouter()
	r.Use(apimiddleware.Recovery(cfg.Logger))
	r.Use(middleware.Logging(cfg.Logger))

	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/health", handleHealth).Methods(http.MethodGet)

	// Player endpoints; session management is open, profile requires auth
	players := api.PathPrefix("/players").Subrouter()
	players.HandleFunc("/guest", accountHandler.CreateGuest).Methods(http.MethodPost)
	players.HandleFunc("/register", accountHandler.Register).Methods(http.MethodPost)
	players.HandleFunc("/login", accountHandler.Login).Methods(http.MethodPost)

	me := api.PathPrefix("/players/me").Subrouter()
	me.Use(apimiddleware.Auth(cfg.AuthService))
	me.HandleFunc("", accountHandler.GetMe).Methods(http.MethodGet)

	// Match endpoints all require auth
	matches := api.PathPrefix("/matches").Subrouter()
	matches.Use(apimiddleware.Auth(cfg.AuthService))
	matches.HandleFunc("", matchHandler.Create).Methods(http.MethodPost)
	matches.HandleFunc("", matchHandler.List).Methods(http.MethodGet)
	matches.HandleFunc("/{id}", matchHandler.Get).Methods(http.MethodGet)
	matches.HandleFunc("/{id}", matchHandler.Delete).Methods(http.MethodDelete)
	matches.HandleFunc("/{id}/config", matchHandler.Configure).Methods(http.MethodPatch)
	matches.HandleFunc("/{id}/legal-moves", matchHandler.LegalMoves).Methods(http.MethodGet)
	matches.HandleFunc("/{id}/moves", matchHandler.Move).Methods(http.MethodPost)
	matches.HandleFunc("/{id}/agent-move", matchHandler.AgentMove).Methods(http.MethodPost)
	matches.HandleFunc("/{id}/undo", matchHandler.Undo).Methods(http.MethodPost)
	matches.HandleFunc("/{id}/reset", matchHandler.Reset).Methods(http.MethodPost)
	matches.HandleFunc("/{id}/resign", matchHandler.Resign).Methods(http.MethodPost)
	matches.HandleFunc("/{id}/pause", matchHandler.Pause).Methods(http.MethodPost)
	matches.HandleFunc("/{id}/events", matchHandler.Events).Methods(http.MethodGet)

	return r
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
