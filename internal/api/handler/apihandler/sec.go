package apihandler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"carmate/internal/account"
	"carmate/pkg/domain"
	"carmate/pkg/serrors"
)

// ctxKey is a private type for context values set by this package.
type ctxKey struct{}

// userKey is the context key under which the authenticated user is stored.
var userKey = ctxKey{}

func withUser(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// userFrom returns the authenticated user stored in the context by the
// bearer middleware.
func userFrom(ctx context.Context) *domain.User {
	user, _ := ctx.Value(userKey).(*domain.User)

	return user
}

// SecHandler verifies bearer tokens and resolves them to accounts.
type SecHandler struct {
	tokens   *account.TokenIssuer
	accounts account.Account
}

// NewSecHandler constructs a SecHandler around the given token issuer and
// account service.
func NewSecHandler(tokens *account.TokenIssuer, accounts account.Account) *SecHandler {
	return &SecHandler{tokens: tokens, accounts: accounts}
}

// Authenticate validates the Authorization header and returns the account
// behind the token. Deactivated accounts are rejected even with a valid
// token.
func (s *SecHandler) Authenticate(r *http.Request) (*domain.User, error) {
	header := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		return nil, serrors.With(serrors.ErrUnauthorized, "missing bearer token")
	}

	userID, err := s.tokens.Verify(token)
	if err != nil {
		return nil, err
	}

	user, err := s.accounts.UserByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, serrors.ErrNotFound) {
			return nil, serrors.With(serrors.ErrUnauthorized, "account no longer exists")
		}

		return nil, err
	}
	if !user.IsActive {
		return nil, serrors.With(serrors.ErrUnauthorized, "account is deactivated")
	}

	return user, nil
}

// requireRole returns the context user when it holds one of the given roles.
func requireRole(r *http.Request, roles ...domain.Role) (*domain.User, error) {
	user := userFrom(r.Context())
	if user == nil {
		return nil, serrors.With(serrors.ErrUnauthorized, "missing bearer token")
	}
	for _, role := range roles {
		if user.Role == role {
			return user, nil
		}
	}

	return nil, serrors.With(serrors.ErrForbidden, "insufficient role")
}
