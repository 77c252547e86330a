package server

import (
	"strings"

	"github.com/labstack/echo/v4"

	apperrors "github.com/iki1000alti/tema/internal/errors"
)

// contextKeyClaims is the Echo context key holding the verified token claims.
const contextKeyClaims = "claims"

// requireAuth extracts and verifies the bearer token. A missing token is
// 401; a token the verifier rejects (malformed, tampered, expired) is 403.
// The gate is stateless — every request re-verifies from scratch.
func (s *Server) requireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if header == "" {
			return apperrors.UnauthorizedError("missing bearer token")
		}

		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || tokenString == "" {
			return apperrors.UnauthorizedError("missing bearer token")
		}

		claims, err := s.verifier.Verify(tokenString)
		if err != nil {
			return apperrors.ForbiddenError("invalid token").WithField("reason", err.Error())
		}

		c.Set(contextKeyClaims, claims)
		return next(c)
	}
}
