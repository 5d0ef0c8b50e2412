// Package httpapi exposes the booking service over HTTP with JSON bodies.
// Every handler converts service errors to the JSON error shapes at its own
// boundary; nothing is retried.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/tutorbook/internal/logging"
	"github.com/dmitrijs2005/tutorbook/internal/server/sessions"
	"github.com/dmitrijs2005/tutorbook/internal/server/users"
	"github.com/gorilla/mux"
)

type Server struct {
	addr            string
	shutdownTimeout time.Duration
	logger          logging.Logger
	users           *users.Service
	sessions        *sessions.Service
}

func NewServer(addr string, shutdownTimeout time.Duration, logger logging.Logger,
	us *users.Service, ss *sessions.Service) *Server {
	return &Server{
		addr:            addr,
		shutdownTimeout: shutdownTimeout,
		logger:          logger,
		users:           us,
		sessions:        ss,
	}
}

// Router builds the route table. The user mutation endpoints are registered
// once under /api/user; there is no second route group.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.requestLogger)

	r.HandleFunc("/", s.Index).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/user/register", s.RegisterUser).Methods(http.MethodPost)
	api.HandleFunc("/user/{id}", s.UpdateUser).Methods(http.MethodPut)
	api.HandleFunc("/user/{id}", s.DeleteUser).Methods(http.MethodDelete)
	api.HandleFunc("/session", s.CreateSession).Methods(http.MethodPost)

	return r
}

// Run serves until the context is cancelled, then shuts down gracefully
// within the configured timeout.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{Addr: s.addr, Handler: s.Router()}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	s.logger.Info(ctx, "server running", "addr", s.addr)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
