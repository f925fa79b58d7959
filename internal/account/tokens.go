package account

import (
	"crypto/rsa"
	"fmt"
	"time"

	"carmate/internal/config"
	"carmate/pkg/domain"
	"carmate/pkg/serrors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenIssuer signs and verifies RS256 access tokens. The subject claim
// carries the user ID.
type TokenIssuer struct {
	privateKey *rsa.PrivateKey
	publicKey  *rsa.PublicKey
	ttl        time.Duration
}

// NewTokenIssuer parses the configured RSA key pair.
func NewTokenIssuer(cfg *config.Config) (*TokenIssuer, error) {
	privateKey, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(cfg.JWT.PrivateKey))
	if err != nil {
		return nil, fmt.Errorf("could not parse RSA private key: %w", err)
	}
	publicKey, err := jwt.ParseRSAPublicKeyFromPEM([]byte(cfg.JWT.PublicKey))
	if err != nil {
		return nil, fmt.Errorf("could not parse RSA public key: %w", err)
	}

	return &TokenIssuer{
		privateKey: privateKey,
		publicKey:  publicKey,
		ttl:        cfg.JWT.AccessTokenTTL,
	}, nil
}

// Issue creates a signed access token for the given user.
func (t *TokenIssuer) Issue(userID domain.UserID) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   uuid.UUID(userID).String(),
		ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(t.privateKey)
	if err != nil {
		return "", fmt.Errorf("could not sign token: %w", err)
	}

	return signed, nil
}

// Verify parses and validates a token and returns the user ID it was issued
// for.
func (t *TokenIssuer) Verify(token string) (domain.UserID, error) {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(tk *jwt.Token) (any, error) {
		if _, ok := tk.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", tk.Header["alg"])
		}

		return t.publicKey, nil
	})
	if err != nil {
		return domain.UserID{}, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token")
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return domain.UserID{}, serrors.With(serrors.ErrUnauthorized, "invalid token claims")
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return domain.UserID{}, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token subject")
	}

	return domain.UserID(id), nil
}
