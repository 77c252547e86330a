// Package token issues and verifies signed session tokens.
//
// Tokens are HS256 JWTs carrying the user id as subject plus the username.
// Validity is a pure function of signature and expiry — nothing is stored
// server-side, so rotating the signing secret invalidates every outstanding
// token at once.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

// Verification failures, surfaced distinctly so callers can tell a garbled
// token from a tampered or stale one.
var (
	ErrMalformed    = errors.New("token is malformed")
	ErrExpired      = errors.New("token has expired")
	ErrBadSignature = errors.New("token signature is invalid")
)

// Claims is the identity carried by a session token.
type Claims struct {
	UserID   uuid.UUID
	Username string
}

type jwtClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Issuer signs and verifies session tokens with a shared secret that is
// read once at startup and never changes for the process lifetime.
type Issuer struct {
	secret []byte
	ttl    time.Duration
	clock  clockwork.Clock
}

// NewIssuer constructs an Issuer. The clock is injected so expiry can be
// exercised in tests with a fake clock.
func NewIssuer(secret []byte, ttl time.Duration, clock clockwork.Clock) *Issuer {
	return &Issuer{secret: secret, ttl: ttl, clock: clock}
}

// Issue creates a signed token for the given claims, valid for the
// configured lifetime from now.
func (i *Issuer) Issue(claims Claims) (string, error) {
	now := i.clock.Now()
	jc := jwtClaims{
		Username: claims.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   claims.UserID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, jc).SignedString(i.secret)
}

// Verify parses and validates a token, returning its claims. Failures map
// to ErrMalformed, ErrExpired, or ErrBadSignature.
func (i *Issuer) Verify(tokenString string) (Claims, error) {
	var jc jwtClaims
	_, err := jwt.ParseWithClaims(tokenString, &jc,
		func(*jwt.Token) (any, error) { return i.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(i.clock.Now),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return Claims{}, ErrMalformed
		case errors.Is(err, jwt.ErrTokenExpired):
			return Claims{}, ErrExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return Claims{}, ErrBadSignature
		default:
			return Claims{}, ErrMalformed
		}
	}

	userID, err := uuid.Parse(jc.Subject)
	if err != nil {
		return Claims{}, ErrMalformed
	}
	return Claims{UserID: userID, Username: jc.Username}, nil
}
