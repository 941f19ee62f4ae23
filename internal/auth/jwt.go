package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	dErrors "tadipaar/pkg/domain-errors"

	"tadipaar/internal/scope"
)

// Claims carries the jurisdiction facts the scope evaluator needs. The token
// is the only transport for these values; handlers never trust request bodies
// for role or jurisdiction.
type Claims struct {
	Role           string `json:"role"`
	Zone           string `json:"zone,omitempty"`
	Station        string `json:"station,omitempty"`
	IdentityNumber string `json:"identity_number,omitempty"`
	jwt.RegisteredClaims
}

// Actor rebuilds the scope actor from verified claims. ParseRole is total, so
// a tampered role string degrades to RoleUnknown and an empty view.
func (c *Claims) Actor() *scope.Actor {
	return &scope.Actor{
		Role:           scope.ParseRole(c.Role),
		Zone:           c.Zone,
		Station:        c.Station,
		IdentityNumber: c.IdentityNumber,
	}
}

// TokenManager signs and validates HS256 session tokens.
type TokenManager struct {
	signingKey []byte
	issuer     string
	ttl        time.Duration
}

func NewTokenManager(signingKey string, ttl time.Duration) *TokenManager {
	return &TokenManager{
		signingKey: []byte(signingKey),
		issuer:     "tadipaar",
		ttl:        ttl,
	}
}

// TTL exposes the session lifetime, used as revocation retention on logout.
func (m *TokenManager) TTL() time.Duration { return m.ttl }

// Generate issues a session token for the account.
func (m *TokenManager) Generate(account *Account, now time.Time) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Role:           string(account.Role),
		Zone:           account.Zone,
		Station:        account.Station,
		IdentityNumber: account.IdentityNumber,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   account.ID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    m.issuer,
			ID:        uuid.NewString(),
		},
	})
	return token.SignedString(m.signingKey)
}

// Validate parses and verifies a session token.
func (m *TokenManager) Validate(tokenString string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenUnverifiable
		}
		return m.signingKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, dErrors.New(dErrors.CodeUnauthorized, "token has expired")
		}
		return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid token")
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid token claims")
	}
	return claims, nil
}
