package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/staffdesk/employee-system/internal/core/domain"
)

// TokenService issues and verifies HS256 session tokens. The signing key is
// injected once at construction and never changes for the process lifetime.
// Tokens are self-contained: there is no revocation list, so a token stays
// valid until expiry even after logout clears the cookie.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenService{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// WithClock overrides the time source. Intended for tests.
func (s *TokenService) WithClock(now func() time.Time) *TokenService {
	s.now = now
	return s
}

type sessionClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Issue produces a signed token carrying {role, subject id, iat, exp}.
func (s *TokenService) Issue(role, subjectID string) (string, error) {
	now := s.now().UTC()
	claims := sessionClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subjectID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify parses and validates a token, returning the embedded role and
// subject id unchanged on success.
func (s *TokenService) Verify(token string) (domain.TokenClaims, error) {
	claims := &sessionClaims{}
	parser := jwt.NewParser(jwt.WithTimeFunc(s.now))
	tkn, err := parser.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return domain.TokenClaims{}, domain.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return domain.TokenClaims{}, domain.ErrTokenSignatureInvalid
		default:
			return domain.TokenClaims{}, domain.ErrTokenMalformed
		}
	}
	if !tkn.Valid {
		return domain.TokenClaims{}, domain.ErrTokenMalformed
	}

	return domain.TokenClaims{Role: claims.Role, SubjectID: claims.Subject}, nil
}
