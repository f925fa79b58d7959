package storage

import (
	"carmate/pkg/domain"
	"context"
	"time"
)

// UserUpdates describes a set of optional fields that can be applied to an
// existing user during an update. Only non-nil fields will be updated.
type UserUpdates struct {
	// FullName, when provided, replaces the display name.
	FullName *string
	// Email, when provided, replaces the login email (already normalized).
	Email *string
	// Phone, when provided, replaces the contact number.
	Phone *string
	// PasswordHash, when provided, replaces the stored bcrypt hash.
	PasswordHash *string
	// IsActive, when provided, flips the account's active flag.
	IsActive *bool
	// ResetTokenHash, when provided, sets the password reset token hash. An
	// empty string value indicates the token should be cleared (set to NULL).
	ResetTokenHash *string
	// ResetTokenExpiresAt, when provided, sets the reset token expiry.
	ResetTokenExpiresAt *time.Time
}

// UserPage groups a page of users together with an optional NextCursor used
// for pagination.
type UserPage struct {
	// Users contains the current page of user records.
	Users []domain.User
	// NextCursor points to the timestamp to be used as the cursor for fetching
	// the next page. It is nil when there is no next page.
	NextCursor *time.Time
}

// UserStorage defines persistence operations for accounts. Implementations
// must treat emails case-insensitively (callers normalize before storing) and
// exclude soft-deleted rows from all lookups.
type UserStorage interface {
	// StoreUser inserts a new user and returns the stored row as it exists in
	// the database (including generated fields). A ConflictErr-compatible error
	// is returned when the email is already taken.
	StoreUser(ctx context.Context, user domain.User) (*domain.User, error)
	// UserByID fetches a user by ID. Returns nil when not found.
	UserByID(ctx context.Context, id domain.UserID) (*domain.User, error)
	// UserByEmail fetches a user by normalized email. Returns nil when not found.
	UserByEmail(ctx context.Context, email string) (*domain.User, error)
	// UserByResetToken fetches the user holding the given reset token hash
	// with an unexpired token. Returns nil when not found.
	UserByResetToken(ctx context.Context, tokenHash string) (*domain.User, error)
	// UpdateUserByID applies the provided field set to a single user and
	// returns the updated row, or nil when the user does not exist.
	UpdateUserByID(ctx context.Context, id domain.UserID, updates UserUpdates) (*domain.User, error)
	// Users returns a page of users created before the optional cursor time,
	// limited by the given limit, newest first.
	Users(ctx context.Context, cursor time.Time, limit uint) (UserPage, error)
	// ActiveProviderEmails returns the emails of all active provider accounts.
	// Used by the notification workers to fan out new-request mail.
	ActiveProviderEmails(ctx context.Context) ([]string, error)
}
