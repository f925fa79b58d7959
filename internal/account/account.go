package account

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"carmate/internal/config"
	"carmate/pkg/domain"
	"carmate/pkg/serrors"
	"carmate/pkg/storage"

	"golang.org/x/crypto/bcrypt"
)

// Options configure password hashing, reset token lifetime and how reset mail
// jobs are enqueued. These settings are typically derived from application
// configuration.
type Options struct {
	// BcryptCost is the bcrypt work factor used for new password hashes.
	BcryptCost int
	// ResetTokenTTL is how long an issued password reset token stays valid.
	ResetTokenTTL time.Duration
	// MailMaxAttempts is the maximum number of attempts the background worker
	// should make when delivering a reset mail before marking the job failed.
	MailMaxAttempts int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		BcryptCost:      cfg.Auth.BcryptCost,
		ResetTokenTTL:   cfg.Auth.ResetTokenTTL,
		MailMaxAttempts: cfg.Notify.MaxAttempts,
	}
}

// account is the concrete implementation of the Account interface. It
// coordinates persistence with the storage layer, password hashing and job
// enqueueing.
type account struct {
	options Options
	storage storage.Storage
	tokens  *TokenIssuer
}

// New creates a new Account instance backed by the provided storage and token
// issuer.
func New(storage storage.Storage, tokens *TokenIssuer, options Options) Account {
	return &account{
		options: options,
		storage: storage,
		tokens:  tokens,
	}
}

// Register creates a new customer or provider account. Admin accounts are
// provisioned out of band, never through the public form.
func (a account) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	if in.Role != domain.RoleCustomer && in.Role != domain.RoleProvider {
		return nil, serrors.With(serrors.ErrBadRequest, "invalid role")
	}
	if err := ValidateFullName(in.FullName); err != nil {
		return nil, err
	}
	if err := ValidateEmail(in.Email); err != nil {
		return nil, err
	}
	if err := ValidatePhone(in.Phone); err != nil {
		return nil, err
	}
	if err := ValidatePassword(in.Password); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), a.options.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("could not hash password: %w", err)
	}

	user, err := a.storage.StoreUser(ctx, domain.User{
		FullName:     in.FullName,
		Email:        NormalizeEmail(in.Email),
		Phone:        in.Phone,
		Role:         in.Role,
		IsActive:     true,
		PasswordHash: string(hash),
	})
	if err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			return nil, serrors.With(serrors.ErrConflict, "email already registered")
		}

		return nil, fmt.Errorf("could not store user: %w", err)
	}

	return user, nil
}

// Login verifies credentials and returns a signed access token plus the user.
// Unknown emails and wrong passwords produce the same error so the endpoint
// cannot be used to probe for accounts.
func (a account) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	user, err := a.storage.UserByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		return "", nil, fmt.Errorf("could not fetch user: %w", err)
	}
	if user == nil {
		return "", nil, serrors.With(serrors.ErrUnauthorized, "invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, serrors.With(serrors.ErrUnauthorized, "invalid email or password")
	}

	if !user.IsActive {
		return "", nil, serrors.With(serrors.ErrUnauthorized, "account is deactivated")
	}

	token, err := a.tokens.Issue(user.ID)
	if err != nil {
		return "", nil, fmt.Errorf("could not issue token: %w", err)
	}

	return token, user, nil
}

// ForgotPassword issues a reset token for the account behind the given email
// and enqueues the reset mail. It returns nil for unknown or inactive
// accounts so callers cannot tell whether the email is registered.
func (a account) ForgotPassword(ctx context.Context, email string) error {
	user, err := a.storage.UserByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		return fmt.Errorf("could not fetch user: %w", err)
	}
	if user == nil || !user.IsActive {
		return nil
	}

	token, tokenHash, err := newResetToken()
	if err != nil {
		return fmt.Errorf("could not generate reset token: %w", err)
	}
	expiresAt := time.Now().Add(a.options.ResetTokenTTL)

	if err := a.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		updated, err := tx.UpdateUserByID(ctx, user.ID, storage.UserUpdates{
			ResetTokenHash:      &tokenHash,
			ResetTokenExpiresAt: &expiresAt,
		})
		if err != nil {
			return fmt.Errorf("could not store reset token: %w", err)
		}
		if updated == nil {
			return fmt.Errorf("could not store reset token: user vanished")
		}

		if _, err := tx.AddJob(ctx, PasswordResetArgs{
			UserID:      user.ID.String(),
			Email:       user.Email,
			Token:       token,
			maxAttempts: a.options.MailMaxAttempts,
		}, nil); err != nil {
			return fmt.Errorf("could not add job: %w", err)
		}

		return nil
	}); err != nil {
		return fmt.Errorf("could not issue reset token: %w", err)
	}

	return nil
}

// ResetPassword consumes a reset token and sets a new password. The stored
// token hash is cleared so the link cannot be used twice.
func (a account) ResetPassword(ctx context.Context, token, password string) error {
	if err := ValidatePassword(password); err != nil {
		return err
	}

	user, err := a.storage.UserByResetToken(ctx, hashResetToken(token))
	if err != nil {
		return fmt.Errorf("could not fetch user by reset token: %w", err)
	}
	if user == nil {
		return serrors.With(serrors.ErrBadRequest, "invalid or expired reset token")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), a.options.BcryptCost)
	if err != nil {
		return fmt.Errorf("could not hash password: %w", err)
	}

	passwordHash := string(hash)
	clearToken := ""
	if _, err := a.storage.UpdateUserByID(ctx, user.ID, storage.UserUpdates{
		PasswordHash:   &passwordHash,
		ResetTokenHash: &clearToken,
	}); err != nil {
		return fmt.Errorf("could not update password: %w", err)
	}

	return nil
}

// UpdateProfile changes the profile fields of the given user. Empty fields
// are left untouched.
func (a account) UpdateProfile(ctx context.Context,
	userID domain.UserID,
	updates ProfileUpdates) (*domain.User, error) {
	var rec storage.UserUpdates

	if updates.FullName != "" {
		if err := ValidateFullName(updates.FullName); err != nil {
			return nil, err
		}
		rec.FullName = &updates.FullName
	}
	if updates.Email != "" {
		if err := ValidateEmail(updates.Email); err != nil {
			return nil, err
		}
		email := NormalizeEmail(updates.Email)
		rec.Email = &email
	}
	if updates.Phone != "" {
		if err := ValidatePhone(updates.Phone); err != nil {
			return nil, err
		}
		rec.Phone = &updates.Phone
	}
	if updates.Password != "" {
		if err := ValidatePassword(updates.Password); err != nil {
			return nil, err
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(updates.Password), a.options.BcryptCost)
		if err != nil {
			return nil, fmt.Errorf("could not hash password: %w", err)
		}
		passwordHash := string(hash)
		rec.PasswordHash = &passwordHash
	}

	user, err := a.storage.UpdateUserByID(ctx, userID, rec)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			return nil, serrors.With(serrors.ErrConflict, "email already registered")
		}

		return nil, fmt.Errorf("could not update user: %w", err)
	}
	if user == nil {
		return nil, serrors.With(serrors.ErrNotFound, "user not found")
	}

	return user, nil
}

// UserByID fetches a single account. It returns a not-found error when no
// matching user exists.
func (a account) UserByID(ctx context.Context, userID domain.UserID) (*domain.User, error) {
	user, err := a.storage.UserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("could not fetch user: %w", err)
	}
	if user == nil {
		return nil, serrors.With(serrors.ErrNotFound, "user not found")
	}

	return user, nil
}

// Users returns a page of accounts for the admin dashboard. It supports
// cursor-based pagination using an RFC3339 timestamp string and returns the
// next cursor when more results are available.
func (a account) Users(ctx context.Context, cursor string, limit uint) ([]domain.User, string, error) {
	var cursorTime time.Time
	if cursor != "" {
		t, err := time.Parse(time.RFC3339, cursor)
		if err != nil {
			return nil, "", serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
		}
		cursorTime = t
	}

	page, err := a.storage.Users(ctx, cursorTime, limit)
	if err != nil {
		return nil, "", fmt.Errorf("could not get users: %w", err)
	}

	var next string
	if page.NextCursor != nil {
		next = page.NextCursor.Format(time.RFC3339)
	}

	return page.Users, next, nil
}

// ToggleActive flips the is_active flag of an account.
func (a account) ToggleActive(ctx context.Context, userID domain.UserID) (*domain.User, error) {
	user, err := a.storage.UserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("could not fetch user: %w", err)
	}
	if user == nil {
		return nil, serrors.With(serrors.ErrNotFound, "user not found")
	}

	active := !user.IsActive
	updated, err := a.storage.UpdateUserByID(ctx, userID, storage.UserUpdates{
		IsActive: &active,
	})
	if err != nil {
		return nil, fmt.Errorf("could not update user: %w", err)
	}
	if updated == nil {
		return nil, serrors.With(serrors.ErrNotFound, "user not found")
	}

	return updated, nil
}

// newResetToken returns a fresh random token together with the hash stored in
// the database.
func newResetToken() (token, tokenHash string, err error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", "", err
	}
	token = hex.EncodeToString(buf)

	return token, hashResetToken(token), nil
}

// hashResetToken maps a plaintext reset token to its stored form.
func hashResetToken(token string) string {
	sum := sha256.Sum256([]byte(token))

	return hex.EncodeToString(sum[:])
}
