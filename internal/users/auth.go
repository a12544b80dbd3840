package users

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/ombaa/ombaa/pkg/handlers"
)

// Identity is the authenticated caller extracted from a bearer token.
type Identity struct {
	UserID uuid.UUID
	Role   string
}

type contextKey struct{}

// IdentityFrom returns the Identity stored on the request context by the
// auth middleware.
func IdentityFrom(ctx context.Context) (Identity, bool) {
	ident, ok := ctx.Value(contextKey{}).(Identity)
	return ident, ok
}

type claims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Authenticator issues and verifies HS256 bearer tokens.
type Authenticator struct {
	secret []byte
	ttl    time.Duration
}

// NewAuthenticator creates an Authenticator with the given signing secret
// and token lifetime.
func NewAuthenticator(secret string, ttl time.Duration) *Authenticator {
	return &Authenticator{secret: []byte(secret), ttl: ttl}
}

// Token signs a new bearer token for the user.
func (a *Authenticator) Token(user *User) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		UserID: user.ID.String(),
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(a.ttl)),
		},
	})
	return token.SignedString(a.secret)
}

// Verify parses a bearer token and returns the caller identity. Every
// decode failure (missing, malformed, expired, bad signature) collapses to
// ErrInvalidToken.
func (a *Authenticator) Verify(token string) (Identity, error) {
	var c claims
	parsed, err := jwt.ParseWithClaims(
		token, &c,
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, ErrInvalidToken
			}
			return a.secret, nil
		},
	)
	if err != nil || !parsed.Valid {
		return Identity{}, ErrInvalidToken
	}

	id, err := uuid.Parse(c.UserID)
	if err != nil {
		return Identity{}, ErrInvalidToken
	}

	return Identity{UserID: id, Role: c.Role}, nil
}

// Require wraps a handler, rejecting requests without a valid bearer token.
// The caller identity is stored on the request context.
func (a *Authenticator) Require(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ident, err := a.identify(r)
		if err != nil {
			handlers.RespondJSON(
				w, http.StatusUnauthorized,
				map[string]string{"error": ErrInvalidToken.Error()},
			)
			return
		}

		next(w, r.WithContext(
			context.WithValue(r.Context(), contextKey{}, ident),
		))
	}
}

// RequireRole wraps a handler, additionally rejecting authenticated callers
// whose role differs from the required one.
func (a *Authenticator) RequireRole(role string, next http.HandlerFunc) http.HandlerFunc {
	return a.Require(func(w http.ResponseWriter, r *http.Request) {
		ident, _ := IdentityFrom(r.Context())
		if ident.Role != role {
			handlers.RespondJSON(
				w, http.StatusForbidden,
				map[string]string{"error": ErrForbidden.Error()},
			)
			return
		}
		next(w, r)
	})
}

func (a *Authenticator) identify(r *http.Request) (Identity, error) {
	header := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		return Identity{}, ErrInvalidToken
	}
	return a.Verify(token)
}
