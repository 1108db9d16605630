package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserID is a value object for user identity.
type UserID struct{ uuid.UUID }

// NewUserID creates a new UserID from uuid.
func NewUserID(id uuid.UUID) UserID { return UserID{UUID: id} }

// String returns the canonical string form.
func (u UserID) String() string { return u.UUID.String() }

// User is a registered account. Email and gamer tag are each globally
// unique; uniqueness is enforced at the store's write boundary, not by a
// prior read.
type User struct {
	ID           UserID
	Email        string
	GamerTag     string
	PasswordHash string
	IsVerified   bool

	// VerificationToken is set only while an email verification is
	// outstanding and cleared once consumed.
	VerificationToken string

	// ResetToken and ResetTokenExpiresAt are set and cleared together.
	ResetToken          string
	ResetTokenExpiresAt *time.Time

	Preferences *Preferences

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Touch bumps UpdatedAt. Call before persisting any mutation.
func (u *User) Touch(now time.Time) {
	u.UpdatedAt = now
}

// SetResetToken attaches a reset token with its expiry.
func (u *User) SetResetToken(token string, expiresAt time.Time) {
	u.ResetToken = token
	u.ResetTokenExpiresAt = &expiresAt
}

// ClearResetToken removes the reset token pair. Both fields go together.
func (u *User) ClearResetToken() {
	u.ResetToken = ""
	u.ResetTokenExpiresAt = nil
}
