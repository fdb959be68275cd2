package dto

import (
	"time"

	"fleetledger/internal/core/id"
	"fleetledger/internal/domain/auth"
)

// --- Request DTOs ---

// RegisterRequest for user registration.
type RegisterRequest struct {
	CompanyID string `json:"companyId" binding:"required,uuid"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	FullName  string `json:"fullName,omitempty"`
}

// ToAuthRequest converts to domain request.
func (r *RegisterRequest) ToAuthRequest() (auth.RegisterRequest, error) {
	companyID, err := id.Parse(r.CompanyID)
	if err != nil {
		return auth.RegisterRequest{}, err
	}
	return auth.RegisterRequest{
		CompanyID: companyID,
		Email:     r.Email,
		Password:  r.Password,
		FullName:  r.FullName,
	}, nil
}

// LoginRequest for user login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ToCredentials converts to domain credentials.
func (r *LoginRequest) ToCredentials() auth.Credentials {
	return auth.Credentials{
		Email:    r.Email,
		Password: r.Password,
	}
}

// --- Response DTOs ---

// UserResponse represents a user in API responses.
type UserResponse struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"companyId"`
	Email     string    `json:"email"`
	FullName  string    `json:"fullName,omitempty"`
	IsActive  bool      `json:"isActive"`
	IsAdmin   bool      `json:"isAdmin"`
	CreatedAt time.Time `json:"createdAt"`
}

// FromUser creates response from domain user.
func FromUser(u *auth.User) *UserResponse {
	return &UserResponse{
		ID:        u.ID.String(),
		CompanyID: u.CompanyID.String(),
		Email:     u.Email,
		FullName:  u.FullName,
		IsActive:  u.IsActive,
		IsAdmin:   u.IsAdmin,
		CreatedAt: u.CreatedAt,
	}
}

// SessionResponse represents an issued access token.
type SessionResponse struct {
	AccessToken string        `json:"accessToken"`
	ExpiresAt   time.Time     `json:"expiresAt"`
	TokenType   string        `json:"tokenType"`
	User        *UserResponse `json:"user"`
}

// FromSession creates response from domain session.
func FromSession(s *auth.Session) *SessionResponse {
	return &SessionResponse{
		AccessToken: s.AccessToken,
		ExpiresAt:   s.ExpiresAt,
		TokenType:   s.TokenType,
		User:        FromUser(s.User),
	}
}
