package models

import "github.com/golang-jwt/jwt/v5"

// SessionClaims carries the session fields every page checks: who is signed in and their role
type SessionClaims struct {
	jwt.RegisteredClaims
	StaffID string `json:"staff_id"`
	Email   string `json:"user_email"`
	Role    string `json:"user_role"`
}
