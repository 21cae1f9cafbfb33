package service

import (
	"github.com/google/uuid"
)

// TokenService issues and verifies the bearer tokens that gate protected
// routes. Tokens are stateless: signature plus expiry is the whole story,
// there is no revocation list.
type TokenService interface {
	// Issue creates a signed token carrying the user identity, valid for
	// the service's fixed lifetime.
	Issue(userID uuid.UUID) (string, error)

	// Verify checks signature and expiry and returns the embedded user ID.
	// Failures return domainerrors.ErrTokenExpired for well-formed but
	// stale tokens and domainerrors.ErrTokenInvalid for everything else.
	Verify(token string) (uuid.UUID, error)
}
