package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/somnia/sleep-tracker-api/internal/core/domain"
)

const defaultTokenTTL = 60 * time.Minute

// TokenService issues and verifies HS256-signed bearer tokens.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue signs the given claims plus an expiry claim. The caller's map is
// copied, never mutated.
func (s *TokenService) Issue(claims map[string]any) (string, error) {
	mc := make(jwt.MapClaims, len(claims)+1)
	for k, v := range claims {
		mc[k] = v
	}
	mc["exp"] = time.Now().Add(s.ttl).Unix()

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, mc)
	return t.SignedString(s.secret)
}

// Verify checks signature and expiry. Any malformed, forged or expired token
// yields domain.ErrInvalidToken; the parse detail is deliberately dropped.
func (s *TokenService) Verify(token string) (map[string]any, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, domain.ErrInvalidToken
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domain.ErrInvalidToken
	}
	return claims, nil
}
