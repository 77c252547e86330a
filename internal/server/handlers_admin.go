package server

import (
	"github.com/labstack/echo/v4"

	apperrors "github.com/iki1000alti/tema/internal/errors"
	"github.com/iki1000alti/tema/internal/token"
)

func (s *Server) handleAdminPanel(c echo.Context) error {
	claims, ok := c.Get(contextKeyClaims).(token.Claims)
	if !ok {
		return apperrors.InternalError("missing claims in context", nil)
	}

	return c.JSON(200, map[string]any{
		"message": "Welcome to the admin panel",
		"user": map[string]string{
			"id":       claims.UserID.String(),
			"username": claims.Username,
		},
	})
}
