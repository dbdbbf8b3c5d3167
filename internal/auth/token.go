package auth

import (
	"fmt"
	"time"

	"github.com/UnknownOlympus/hera/internal/models"
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the signed token payload: the account id, its role and the
// linked employee id when one exists.
type Claims struct {
	UserID     int64       `json:"user_id"`
	Role       models.Role `json:"role"`
	EmployeeID *models.ID  `json:"employee_id,omitempty"`
	jwt.RegisteredClaims
}

// Tokener issues and verifies signed identity assertions. The secret
// and lifetime are fixed at construction; there is no ambient state.
type Tokener struct {
	secret []byte
	ttl    time.Duration
}

// NewTokener creates a token issuer/verifier with the given signing
// secret and token lifetime.
func NewTokener(secret string, ttl time.Duration) *Tokener {
	return &Tokener{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token for the given identity with the configured expiry.
func (t *Tokener) Issue(identity models.Identity) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:     identity.UserID,
		Role:       identity.Role,
		EmployeeID: identity.EmployeeID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Verify parses and validates a token string. Every failure mode, be it
// a bad signature, a foreign signing method, garbage input or expiry,
// comes back as ErrInvalidToken so callers cannot tell them apart.
func (t *Tokener) Verify(tokenString string) (models.Identity, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return t.secret, nil
	})
	if err != nil || !token.Valid {
		return models.Identity{}, models.ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !claims.Role.Valid() {
		return models.Identity{}, models.ErrInvalidToken
	}

	return models.Identity{
		UserID:     claims.UserID,
		Role:       claims.Role,
		EmployeeID: claims.EmployeeID,
	}, nil
}
