package ports

import "github.com/staffdesk/employee-system/internal/core/domain"

// TokenService issues and verifies the signed, self-contained session tokens
// transported in the "token" cookie.
type TokenService interface {
	// Issue produces a signed token carrying role and subject id, valid for
	// the configured window (one day).
	Issue(role, subjectID string) (string, error)
	// Verify parses and validates a token. Failures are one of
	// domain.ErrTokenMalformed, domain.ErrTokenSignatureInvalid or
	// domain.ErrTokenExpired. A valid token returns the embedded claims
	// unchanged.
	Verify(token string) (domain.TokenClaims, error)
}
