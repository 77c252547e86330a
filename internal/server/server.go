package server

import (
	"context"
	"fmt"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/iki1000alti/tema/internal/config"
	"github.com/iki1000alti/tema/internal/domain"
	apperrors "github.com/iki1000alti/tema/internal/errors"
	"github.com/iki1000alti/tema/internal/token"
)

// tokenVerifier validates a bearer token and returns its claims.
type tokenVerifier interface {
	Verify(tokenString string) (token.Claims, error)
}

// postgresHealthChecker is a minimal interface for database health checks.
type postgresHealthChecker interface {
	HealthCheck(ctx context.Context) error
}

type Server struct {
	echo      *echo.Echo
	config    *config.Config
	accounts  domain.AccountService
	settings  domain.SettingsService
	verifier  tokenVerifier
	db        postgresHealthChecker
	startTime time.Time
}

func NewServer(cfg *config.Config, accounts domain.AccountService, settings domain.SettingsService, verifier tokenVerifier, db postgresHealthChecker) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Middleware. Recover runs outermost so a panicking handler still
	// produces exactly one response; the error middleware maps structured
	// errors to JSON.
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.CORS())
	e.Use(apperrors.Middleware())

	srv := &Server{
		echo:      e,
		config:    cfg,
		accounts:  accounts,
		settings:  settings,
		verifier:  verifier,
		db:        db,
		startTime: time.Now(),
	}

	srv.registerRoutes()

	return srv
}

func (s *Server) Start() error {
	return s.echo.Start(fmt.Sprintf(":%s", s.config.Port))
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
