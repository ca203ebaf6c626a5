package dto

import "time"

// Auth Request DTOs

// LoginRequest contains login credentials. The PIN is reduced to its digits before checking.
type LoginRequest struct {
	Email string `json:"email" validate:"required,email"`
	Pin   string `json:"pin" validate:"required"`
}

// Auth Response DTOs

// SessionResponse is returned on a successful login
type SessionResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
	Email       string    `json:"user_email"`
	Role        string    `json:"user_role"`
	Name        string    `json:"name,omitempty"`
}

// SessionInfo mirrors the session fields carried in the token
type SessionInfo struct {
	StaffID string `json:"staff_id"`
	Email   string `json:"user_email"`
	Role    string `json:"user_role"`
}
