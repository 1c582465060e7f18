// Package server defines the Server struct that composes the app's main dependencies.
//
// It owns the lifecycle of:
//   - configuration
//   - logger + optional New Relic service wrapper
//   - database pool
//   - http.Server
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/deppfellow/club-feedback/internal/config"
	"github.com/deppfellow/club-feedback/internal/database"
	"github.com/rs/zerolog"

	loggerPkg "github.com/deppfellow/club-feedback/internal/logger"
)

// ErrHTTPServerNotInitialized is returned by Start and Shutdown when
// SetupHTTPServer has not been called.
var ErrHTTPServerNotInitialized = errors.New("HTTP server not initialized")

// Server is the application container that holds shared resources.
//
// It is not the HTTP server itself: the *http.Server is built by
// SetupHTTPServer and run by Start.
type Server struct {
	Config        *config.Config
	Logger        *zerolog.Logger
	LoggerService *loggerPkg.LoggerService
	DB            *database.Database

	httpServer *http.Server
}

// New constructs a Server and opens the database pool.
//
// It fails when the database cannot be reached.
func New(cfg *config.Config, logger *zerolog.Logger, loggerService *loggerPkg.LoggerService) (*Server, error) {
	db, err := database.New(cfg, logger, loggerService)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &Server{
		Config:        cfg,
		Logger:        logger,
		LoggerService: loggerService,
		DB:            db,
	}, nil
}

// SetupHTTPServer configures the internal net/http server around handler.
func (s *Server) SetupHTTPServer(handler http.Handler) {
	s.httpServer = &http.Server{
		Addr:         ":" + s.Config.Server.Port,
		Handler:      handler,
		ReadTimeout:  time.Duration(s.Config.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(s.Config.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(s.Config.Server.IdleTimeout) * time.Second,
	}
}

// Start runs the HTTP server. It blocks until the server stops.
//
// http.ErrServerClosed is returned after a graceful Shutdown.
func (s *Server) Start() error {
	if s.httpServer == nil {
		return ErrHTTPServerNotInitialized
	}

	s.Logger.Info().
		Str("port", s.Config.Server.Port).
		Str("env", s.Config.Primary.Env).
		Msg("starting server")

	return s.httpServer.ListenAndServe()
}

// Shutdown stops accepting requests, waits for in-flight ones until ctx
// expires, then closes the database pool.
//
// The pool is closed even when draining fails (for example when ctx expires
// with requests still running); both errors are returned joined.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return ErrHTTPServerNotInitialized
	}

	var httpErr, dbErr error

	if err := s.httpServer.Shutdown(ctx); err != nil {
		httpErr = fmt.Errorf("failed to shutdown HTTP server: %w", err)
	}

	if s.DB != nil {
		if err := s.DB.Close(); err != nil {
			dbErr = fmt.Errorf("failed to close database connection: %w", err)
		}
	}

	return errors.Join(httpErr, dbErr)
}
