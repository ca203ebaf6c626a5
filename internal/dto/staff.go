package dto

import (
	"eventhub/internal/models"

	"github.com/shopspring/decimal"
)

// OnboardStaffRequest adds a roster member and, optionally, an app login for them
type OnboardStaffRequest struct {
	StaffName  string          `json:"staff_name" validate:"required,max=150"`
	Phone      string          `json:"phone" validate:"required"`
	Address    string          `json:"address,omitempty"`
	HourlyRate decimal.Decimal `json:"hourly_rate" validate:"currency"`
	Skills     string          `json:"skills,omitempty"`
	Rating     decimal.Decimal `json:"rating"`
	TFN        string          `json:"tfn,omitempty"`

	AppAccess  bool   `json:"app_access"`
	LoginEmail string `json:"login_email,omitempty" validate:"required_if=AppAccess true,omitempty,email"`
	Pin        string `json:"pin,omitempty" validate:"required_if=AppAccess true,omitempty,pin"`
	Role       string `json:"role,omitempty" validate:"omitempty,event_role"`
}

// OnboardStaffResponse returns the created roster entry and login, if any
type OnboardStaffResponse struct {
	Profile *models.StaffProfile `json:"profile"`
	Login   *models.Staff        `json:"login,omitempty"`
}
