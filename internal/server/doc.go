// Package server implements the HTTP server using Echo framework.
//
// Routes: account (register/login), settings (theme document), admin
// (token-gated panel), observability (health/version/metrics). Handlers
// split by concern: handlers_auth.go, handlers_settings.go,
// handlers_admin.go, handlers_health.go.
package server
