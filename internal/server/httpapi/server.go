// Package httpapi exposes the todo services over the REST/JSON surface:
// auth (/login, /register, /manage/info), settings, lists and todos, with
// bearer-token authorization and fixed-window rate limiting.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/sam-ezra/todo/internal/common"
	"github.com/sam-ezra/todo/internal/logging"
	"github.com/sam-ezra/todo/internal/server/services"
)

// Server routes HTTP requests to the application services.
type Server struct {
	address   string
	logger    logging.Logger
	users     *services.UserService
	lists     *services.ListService
	items     *services.ItemService
	jwtSecret []byte

	authLimiter *FixedWindowLimiter
	apiLimiter  *FixedWindowLimiter
}

// NewServer constructs a Server with the original deployment's limiter
// windows: 60/min (no queue) on auth, 600/min (queue 2) on the API.
func NewServer(address string, l logging.Logger, us *services.UserService, ls *services.ListService, is *services.ItemService, secretKey string) *Server {
	return &Server{
		address:     address,
		logger:      l.With("module", "http_server"),
		users:       us,
		lists:       ls,
		items:       is,
		jwtSecret:   []byte(secretKey),
		authLimiter: NewFixedWindowLimiter(60, time.Minute, 0),
		apiLimiter:  NewFixedWindowLimiter(600, time.Minute, 2),
	}
}

// Handler builds the route table. Split out from Run for tests.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /login", s.withLimiter(s.authLimiter, s.handleLogin))
	mux.HandleFunc("POST /register", s.withLimiter(s.authLimiter, s.handleRegister))

	api := func(h http.HandlerFunc) http.HandlerFunc {
		return s.withLimiter(s.apiLimiter, s.withAuth(h))
	}

	mux.HandleFunc("GET /manage/info", api(s.handleInfo))

	mux.HandleFunc("GET /settings", api(s.handleGetSettings))
	mux.HandleFunc("POST /settings", api(s.handleUpdateSettings))

	mux.HandleFunc("GET /lists", api(s.handleGetLists))
	mux.HandleFunc("POST /lists", api(s.handleCreateList))
	mux.HandleFunc("POST /lists/reorder", api(s.handleReorderLists))
	mux.HandleFunc("PUT /lists/{id}", api(s.handleUpdateList))
	mux.HandleFunc("DELETE /lists/{id}", api(s.handleDeleteList))

	mux.HandleFunc("POST /todos", api(s.handleCreateTodo))
	mux.HandleFunc("POST /todos/reorder", api(s.handleReorderTodos))
	mux.HandleFunc("PUT /todos/{id}", api(s.handleUpdateTodo))
	mux.HandleFunc("DELETE /todos/{id}", api(s.handleDeleteTodo))

	return mux
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{Addr: s.address, Handler: s.Handler()}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, title string) {
	writeJSON(w, status, errorResponse{Title: title})
}

// writeServiceError maps service-layer failures onto the wire contract:
// validation → 400 with field errors, not-found → 404, ownership → 403,
// bad credentials → 401, anything else → 500.
func (s *Server) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *common.ValidationError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, errorResponse{Errors: verr.Fields})
	case errors.Is(err, common.ErrorNotFound):
		writeError(w, http.StatusNotFound, "Not Found")
	case errors.Is(err, common.ErrorForbidden):
		writeError(w, http.StatusForbidden, "Forbidden")
	case errors.Is(err, common.ErrorUnauthorized):
		writeError(w, http.StatusUnauthorized, "Unauthorized")
	case errors.Is(err, common.ErrorEmailAlreadyExists):
		writeJSON(w, http.StatusBadRequest, errorResponse{Errors: map[string][]string{"email": {"already registered"}}})
	default:
		s.logger.Error(r.Context(), err.Error())
		writeError(w, http.StatusInternalServerError, "An error occurred while processing your request.")
	}
}

func decodeJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}
