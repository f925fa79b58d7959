package account

import (
	"carmate/pkg/domain"
	"context"
)

// RegisterInput carries the fields of the registration form.
type RegisterInput struct {
	FullName string
	Email    string
	Phone    string
	Password string
	Role     domain.Role
}

// ProfileUpdates carries the fields of the profile update form. Password is
// optional; an empty value leaves the stored hash untouched.
type ProfileUpdates struct {
	FullName string
	Email    string
	Phone    string
	Password string
}

//go:generate mockgen -package mockaccount -source=interface.go -destination=mock/mockaccount.go *
type Account interface {
	// Register creates a new customer or provider account.
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	// Login verifies credentials and returns a signed access token plus the user.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// ForgotPassword issues a reset token and enqueues the reset mail. It never
	// reveals whether the email belongs to an account.
	ForgotPassword(ctx context.Context, email string) error
	// ResetPassword consumes a reset token and sets a new password.
	ResetPassword(ctx context.Context, token, password string) error
	// UpdateProfile changes the profile fields of the given user.
	UpdateProfile(ctx context.Context, userID domain.UserID, updates ProfileUpdates) (*domain.User, error)
	// UserByID fetches a single account.
	UserByID(ctx context.Context, userID domain.UserID) (*domain.User, error)
	// Users returns a page of accounts for the admin dashboard.
	Users(ctx context.Context, cursor string, limit uint) ([]domain.User, string, error)
	// ToggleActive flips the is_active flag of an account.
	ToggleActive(ctx context.Context, userID domain.UserID) (*domain.User, error)
}
