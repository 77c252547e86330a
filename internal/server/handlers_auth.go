package server

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/iki1000alti/tema/internal/domain"
	apperrors "github.com/iki1000alti/tema/internal/errors"
)

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (s *Server) handleRegister(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ValidationError("request body must be valid JSON")
	}

	ctx := c.Request().Context()
	if _, err := s.accounts.Register(ctx, req.Username, req.Password); err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingCredentials):
			return apperrors.ValidationError("username and password are required")
		case errors.Is(err, domain.ErrUsernameTaken):
			return apperrors.ConflictError("username already taken").WithField("username", req.Username)
		default:
			return apperrors.InternalError("failed to register user", err)
		}
	}

	return c.JSON(200, map[string]bool{"success": true})
}

func (s *Server) handleLogin(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ValidationError("request body must be valid JSON")
	}

	ctx := c.Request().Context()
	tokenString, err := s.accounts.Login(ctx, req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingCredentials):
			return apperrors.ValidationError("username and password are required")
		case errors.Is(err, domain.ErrBadCredentials):
			return apperrors.UnauthorizedError("invalid username or password")
		default:
			return apperrors.InternalError("failed to log in", err)
		}
	}

	return c.JSON(200, map[string]string{"token": tokenString})
}
