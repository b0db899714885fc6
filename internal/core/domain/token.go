package domain

import "errors"

// Session token verification failures. The token model is stateless: a token
// is valid as long as its signature checks out and it has not expired. There
// is no server-side revocation list; logout only clears the client cookie.
var (
	ErrTokenMalformed        = errors.New("malformed token")
	ErrTokenSignatureInvalid = errors.New("invalid token signature")
	ErrTokenExpired          = errors.New("token expired")
)

// TokenClaims is the identity a verified session token proves.
type TokenClaims struct {
	Role      string
	SubjectID string
}
