package server

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/labstack/echo/v4"

	"github.com/iki1000alti/tema/internal/domain"
	apperrors "github.com/iki1000alti/tema/internal/errors"
)

func (s *Server) handleGetTheme(c echo.Context) error {
	data, err := s.settings.GetTheme(c.Request().Context())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSettingNotFound):
			return apperrors.NotFoundError("Theme not found")
		case errors.Is(err, domain.ErrSettingCorrupt):
			return apperrors.InternalError("stored theme is not valid JSON", err)
		default:
			return apperrors.InternalError("failed to load theme", err)
		}
	}

	// Serve the stored bytes verbatim; re-encoding would reorder keys.
	return c.JSONBlob(200, data)
}

func (s *Server) handleReplaceTheme(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return apperrors.InternalError("failed to read request body", err)
	}
	if !json.Valid(body) {
		return apperrors.ValidationError("request body must be valid JSON")
	}

	if err := s.settings.ReplaceTheme(c.Request().Context(), body); err != nil {
		return apperrors.InternalError("failed to save theme", err)
	}

	return c.JSON(200, map[string]bool{"success": true})
}
