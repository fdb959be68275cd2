// Package auth provides authentication domain logic.
package auth

import (
	"context"
	"time"

	"fleetledger/internal/core/apperror"
	"fleetledger/internal/core/id"
)

// User represents a system user. Users belong to exactly one company.
type User struct {
	ID                  id.ID      `db:"id" json:"id"`
	CompanyID           id.ID      `db:"company_id" json:"companyId"`
	Email               string     `db:"email" json:"email"`
	PasswordHash        string     `db:"password_hash" json:"-"`
	FullName            string     `db:"full_name" json:"fullName,omitempty"`
	IsActive            bool       `db:"is_active" json:"isActive"`
	IsAdmin             bool       `db:"is_admin" json:"isAdmin"`
	LastLoginAt         *time.Time `db:"last_login_at" json:"lastLoginAt,omitempty"`
	FailedLoginAttempts int        `db:"failed_login_attempts" json:"-"`
	LockedUntil         *time.Time `db:"locked_until" json:"-"`
	CreatedAt           time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt           time.Time  `db:"updated_at" json:"updatedAt"`
	Version             int        `db:"version" json:"version"`
}

// NewUser creates a new user.
func NewUser(companyID id.ID, email, passwordHash string) *User {
	now := time.Now().UTC()
	return &User{
		ID:           id.New(),
		CompanyID:    companyID,
		Email:        email,
		PasswordHash: passwordHash,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
		Version:      1,
	}
}

// Validate validates user data.
func (u *User) Validate(ctx context.Context) error {
	if u.Email == "" {
		return apperror.NewValidation("email is required").WithDetail("field", "email")
	}
	if id.IsNil(u.CompanyID) {
		return apperror.NewValidation("company is required").WithDetail("field", "companyId")
	}
	return nil
}

// IsLocked returns true if the account is locked.
func (u *User) IsLocked() bool {
	if u.LockedUntil == nil {
		return false
	}
	return time.Now().Before(*u.LockedUntil)
}

// CanLogin checks whether the account may authenticate.
func (u *User) CanLogin() error {
	if !u.IsActive {
		return apperror.NewForbidden("account is disabled")
	}
	if u.IsLocked() {
		return apperror.NewForbidden("account is temporarily locked")
	}
	return nil
}

// RecordFailedLogin increments the failed login counter.
func (u *User) RecordFailedLogin(maxAttempts int, lockDuration time.Duration) {
	u.FailedLoginAttempts++
	if u.FailedLoginAttempts >= maxAttempts {
		lockUntil := time.Now().Add(lockDuration)
		u.LockedUntil = &lockUntil
	}
}

// RecordSuccessfulLogin resets the failed login counter.
func (u *User) RecordSuccessfulLogin() {
	u.FailedLoginAttempts = 0
	u.LockedUntil = nil
	now := time.Now()
	u.LastLoginAt = &now
}

// Credentials for login.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest for user registration.
type RegisterRequest struct {
	CompanyID id.ID  `json:"companyId"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FullName  string `json:"fullName,omitempty"`
}

// Session is the result of a successful login.
type Session struct {
	AccessToken string    `json:"accessToken"`
	ExpiresAt   time.Time `json:"expiresAt"`
	TokenType   string    `json:"tokenType"`
	User        *User     `json:"user"`
}
