package server

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (s *Server) registerRoutes() {
	// Observability endpoints (no auth required)
	s.echo.GET("/", s.handleRoot)
	s.echo.GET("/health/live", s.handleLiveness)
	s.echo.GET("/health/ready", s.handleReadiness)
	s.echo.GET("/version", s.handleVersion)
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Account routes
	s.echo.POST("/register", s.handleRegister)
	s.echo.POST("/login", s.handleLogin)

	// Admin panel (bearer token required)
	s.echo.GET("/admin-panel", s.handleAdminPanel, s.requireAuth)

	// Theme settings (public, matching the original deployment)
	settings := s.echo.Group("/api/settings")
	settings.GET("/theme", s.handleGetTheme)
	settings.PUT("/theme", s.handleReplaceTheme)
}
