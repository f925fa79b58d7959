package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserID uniquely identifies a user within the system.
// It is a thin wrapper around uuid.UUID to provide type safety at the domain layer.
type UserID uuid.UUID

// Role describes what a user can do on the platform.
type Role string

const (
	// RoleCustomer is a car owner who files service requests.
	RoleCustomer Role = "CUSTOMER"
	// RoleProvider is a shop or technician who answers requests with quotes.
	RoleProvider Role = "PROVIDER"
	// RoleAdmin can manage user accounts.
	RoleAdmin Role = "ADMIN"
)

// User represents an account on the platform. The same type backs customers,
// providers and admins; Role decides which operations are allowed.
type User struct {
	// ID is the unique identifier of the user.
	ID UserID `json:"id"`

	// FullName is the display name entered at registration.
	FullName string `json:"fullName"`
	// Email is the login identifier, stored trimmed and lowercased.
	Email string `json:"email"`
	// Phone is the contact number, free-form but digit-validated.
	Phone string `json:"phone"`
	// Role decides which operations the account may perform.
	Role Role `json:"role"`
	// IsActive is flipped by admins; inactive accounts cannot authenticate.
	IsActive bool `json:"isActive"`

	// PasswordHash is the bcrypt hash of the password. Never serialized.
	PasswordHash string `json:"-"`
	// ResetTokenHash is the hash of the outstanding password reset token, if any.
	ResetTokenHash string `json:"-"`
	// ResetTokenExpiresAt bounds the validity of ResetTokenHash.
	ResetTokenExpiresAt time.Time `json:"-"`

	// CreatedAt is when the account was registered.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is when the account was last modified.
	UpdatedAt time.Time `json:"updatedAt"`
	// DeletedAt marks when the account was soft-deleted; zero value means not deleted.
	DeletedAt time.Time `json:"-"`
}
