// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"swipedeck/config"
	domainerrors "swipedeck/internal/domain/errors"
	"swipedeck/internal/domain/service"
	"swipedeck/internal/errors"
)

// sessionTokenTTL is the fixed bearer-token lifetime.
const sessionTokenTTL = time.Hour

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTService is the constructor for jwtService. It fails when no signing
// key is configured, which aborts startup.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt signing key must be provided")
	}

	return &jwtService{
		secret: []byte(cfg.SecretKey.Access),
		ttl:    sessionTokenTTL,
		now:    time.Now,
	}, nil
}

// Issue creates a signed HS256 token embedding the user ID and a one-hour expiry.
func (s *jwtService) Issue(userID uuid.UUID) (string, error) {
	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign session token")
	}

	return signed, nil
}

// Verify checks signature and expiry and returns the embedded user ID.
func (s *jwtService) Verify(tokenString string) (uuid.UUID, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		// Expiry is distinguished from tampering so tests and logs can tell
		// them apart; clients see the same rejection either way.
		if errors.Is(err, jwt.ErrTokenExpired) {
			return uuid.Nil, domainerrors.ErrTokenExpired.WrapMessage("session token expired")
		}

		return uuid.Nil, domainerrors.ErrTokenInvalid.WrapMessage("failed to parse session token")
	}

	if !token.Valid {
		return uuid.Nil, domainerrors.ErrTokenInvalid.WrapMessage("session token rejected")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, domainerrors.ErrTokenInvalid.WrapMessage("session token subject is not a user id")
	}

	return userID, nil
}
