// file: internals/helpers/auth/admin_token.go
package helper

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"dancestudio_backend/internals/constants"
)

const (
	RoleAdmin = constants.RoleAdmin

	// AdminTokenTTL is fixed; there is no refresh, an expired token means re-login.
	AdminTokenTTL = 24 * time.Hour

	LocAdmin = "admin"
)

var (
	ErrMissingToken     = errors.New("no token provided")
	ErrInvalidToken     = errors.New("invalid token")
	ErrInsufficientRole = errors.New("admin privileges required")
)

type AdminClaims struct {
	Role     string `json:"role"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// AdminTokens issues and verifies the single admin's credential.
type AdminTokens struct {
	Secret   string
	Username string
	// Now is overridable for tests; nil means time.Now.
	Now func() time.Time
}

func NewAdminTokens(secret, username string) *AdminTokens {
	return &AdminTokens{Secret: secret, Username: username}
}

func (t *AdminTokens) now() time.Time {
	if t.Now != nil {
		return t.Now().UTC()
	}
	return time.Now().UTC()
}

// Issue signs a token asserting role=admin for the configured username.
func (t *AdminTokens) Issue() (string, error) {
	now := t.now()
	claims := AdminClaims{
		Role:     RoleAdmin,
		Username: t.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(AdminTokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(t.Secret))
}

// Verify returns the decoded claims, or ErrMissingToken / ErrInvalidToken /
// ErrInsufficientRole.
func (t *AdminTokens) Verify(raw string) (*AdminClaims, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, ErrMissingToken
	}

	claims := &AdminClaims{}
	parser := jwt.Parser{ValidMethods: []string{jwt.SigningMethodHS256.Alg()}, SkipClaimsValidation: true}
	tok, err := parser.ParseWithClaims(raw, claims, func(tok *jwt.Token) (any, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(t.Secret), nil
	})
	if err != nil || !tok.Valid {
		return nil, ErrInvalidToken
	}

	// exp wajib ada; dicek dengan jam milik AdminTokens
	if claims.ExpiresAt == nil || !t.now().Before(claims.ExpiresAt.Time) {
		return nil, ErrInvalidToken
	}

	if claims.Role != RoleAdmin {
		return claims, ErrInsufficientRole
	}
	return claims, nil
}
