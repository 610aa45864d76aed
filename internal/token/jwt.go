package token

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/notekeeper/server/internal/model"
)

var _ model.TokenManager = (*JWT)(nil)

// JWT implements TokenManager backed by symmetric HMAC. The subject claim
// carries the user id in canonical decimal string form.
type JWT struct {
	secretKey string
	method    *jwt.SigningMethodHMAC
	ttl       time.Duration
}

// NewJWT creates a JWT token manager. The algorithm must name a member of
// the HMAC family (HS256, HS384, HS512); anything else fails with
// ErrInvalidConfiguration.
func NewJWT(secretKey, algorithm string, ttl time.Duration) (*JWT, error) {
	method, ok := jwt.GetSigningMethod(algorithm).(*jwt.SigningMethodHMAC)
	if !ok {
		return nil, fmt.Errorf("unsupported signing algorithm %q: %w", algorithm, model.ErrInvalidConfiguration)
	}

	return &JWT{secretKey: secretKey, method: method, ttl: ttl}, nil
}

// Issue creates a signed token for the given subject, expiring after the
// configured TTL. A zero or negative TTL is rejected at issuance.
func (j *JWT) Issue(subjectID int64) (string, error) {
	if j.ttl <= 0 {
		return "", fmt.Errorf("token ttl must be positive: %w", model.ErrInvalidConfiguration)
	}

	now := time.Now()
	token := jwt.NewWithClaims(j.method, jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(subjectID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
	})

	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// Validate verifies the token signature and expiry and returns the numeric
// subject id. Failures map to ErrTokenExpired, ErrTokenMissingSubject or
// ErrTokenInvalid.
func (j *JWT) Validate(tokenString string) (int64, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return []byte(j.secretKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, model.ErrTokenExpired
		}
		return 0, model.ErrTokenInvalid
	}
	if !token.Valid {
		return 0, model.ErrTokenInvalid
	}

	if claims.Subject == "" {
		return 0, model.ErrTokenMissingSubject
	}

	subjectID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, model.ErrTokenInvalid
	}

	return subjectID, nil
}
