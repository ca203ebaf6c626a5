package models

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleAdmin     = "Admin"
	RoleManager   = "Manager"
	RoleStaff     = "Staff"
	RoleLogistics = "Logistics"

	StaffTypeCasual = "Casual"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

	ValidRoles = []string{RoleAdmin, RoleManager, RoleStaff, RoleLogistics}

	ErrInvalidRole = errors.New("invalid role")
)

// Staff is a login identity for the app. Roster details live in StaffProfile.
type Staff struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	Email               string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Name                string     `gorm:"type:varchar(150)" json:"name,omitempty"`
	Role                string     `gorm:"type:varchar(20);not null;default:'Staff'" json:"role"`
	PinHash             string     `gorm:"type:varchar(255);not null" json:"-"`
	StaffType           string     `gorm:"type:varchar(30);default:'Casual'" json:"staff_type,omitempty"`
	Phone               string     `gorm:"type:varchar(20)" json:"phone,omitempty"`
	FailedLoginAttempts int        `gorm:"default:0" json:"-"`
	LockedAt            *time.Time `gorm:"index" json:"locked_at,omitempty"`
	LastLoginAt         *time.Time `json:"last_login_at,omitempty"`
	CreatedAt           time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt           time.Time  `gorm:"not null" json:"updated_at"`
}

func (s *Staff) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}

	s.Email = NormalizeEmail(s.Email)
	if s.StaffType == "" {
		s.StaffType = StaffTypeCasual
	}

	now := time.Now()
	if s.CreatedAt.IsZero() {
		s.CreatedAt = now
	}
	if s.UpdatedAt.IsZero() {
		s.UpdatedAt = now
	}

	return s.Validate()
}

func (s *Staff) BeforeUpdate(tx *gorm.DB) error {
	if _, ok := tx.Statement.Dest.(map[string]interface{}); ok {
		return nil
	}
	return s.Validate()
}

func (s *Staff) Validate() error {
	if s.Email == "" {
		return errors.New("email is required")
	}

	if !emailRegex.MatchString(s.Email) {
		return errors.New("invalid email format")
	}

	if !IsValidRole(s.Role) {
		return fmt.Errorf("%w: %s", ErrInvalidRole, s.Role)
	}

	if s.PinHash == "" {
		return errors.New("pin hash is required")
	}

	return nil
}

// IsLocked reports whether the login is inside its lockout window
func (s *Staff) IsLocked(lockout time.Duration) bool {
	if s.LockedAt == nil {
		return false
	}
	return time.Since(*s.LockedAt) < lockout
}

func (s *Staff) Lock() {
	now := time.Now()
	s.LockedAt = &now
}

func (s *Staff) IncrementFailedAttempts(maxAttempts int) {
	s.FailedLoginAttempts++
	if s.FailedLoginAttempts >= maxAttempts {
		s.Lock()
	}
}

func (s *Staff) ResetFailedAttempts() {
	s.FailedLoginAttempts = 0
	s.LockedAt = nil
}

func (s *Staff) UpdateLastLogin() {
	now := time.Now()
	s.LastLoginAt = &now
}

func (s *Staff) IsAdmin() bool {
	return s.Role == RoleAdmin
}

func (s *Staff) TableName() string {
	return "staff"
}

func IsValidRole(role string) bool {
	return slices.Contains(ValidRoles, role)
}

// NormalizeEmail lower-cases and trims a login email
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// IsValidEmail checks the address against the login email pattern
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}
