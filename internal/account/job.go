package account

import (
	"github.com/riverqueue/river"
)

// PasswordResetArgs contains the arguments for a password reset mail job.
// The plaintext token is only ever carried inside the job payload; the users
// table stores its hash.
type PasswordResetArgs struct {
	// UserID identifies the account the reset was requested for.
	UserID string `json:"userId"`
	// Email is the address the reset link is sent to.
	Email string `json:"email"`
	// Token is the single-use plaintext reset token embedded in the link.
	Token string `json:"token"`

	// maxAttempts configures the maximum number of times River should retry the job.
	maxAttempts int
}

// Kind returns the River job kind used to register and dispatch the reset mail worker.
func (args PasswordResetArgs) Kind() string { return "PasswordResetMailJob" }

// InsertOpts returns the River options that control how the job is enqueued.
// Reset jobs are not deduplicated because every request mints a fresh token.
func (args PasswordResetArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
	}
}
