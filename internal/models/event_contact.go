package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

const (
	ContactRolePrimary   = "Primary Contact"
	ContactRoleManager   = "Manager"
	ContactRoleOrganizer = "Organizer"
	ContactRoleStaff     = "Staff"
	ContactRoleOther     = "Other"

	ContactMethodPhone = "Phone"
	ContactMethodEmail = "Email"
)

var ErrContactNameRequired = errors.New("contact name is required")

type EventContact struct {
	ContactID  string    `gorm:"type:varchar(64);primaryKey" json:"contact_id"`
	EventID    string    `gorm:"type:varchar(64);not null;index" json:"event_id"`
	Name       string    `gorm:"type:varchar(150);not null" json:"name"`
	Phone      string    `gorm:"type:varchar(20)" json:"phone,omitempty"`
	Email      string    `gorm:"type:varchar(255)" json:"email,omitempty"`
	Role       string    `gorm:"type:varchar(30);not null;default:'Other'" json:"role"`
	PrefMethod string    `gorm:"type:varchar(10)" json:"pref_method,omitempty"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
}

func (c *EventContact) BeforeCreate(tx *gorm.DB) error {
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	if c.ContactID == "" {
		c.ContactID = NewContactID(c.CreatedAt)
	}
	if c.Role == "" {
		c.Role = ContactRoleOther
	}
	c.Phone = strings.Join(strings.Fields(c.Phone), "")

	if strings.TrimSpace(c.Name) == "" {
		return ErrContactNameRequired
	}
	if c.EventID == "" {
		return ErrEventIDRequired
	}
	return nil
}

func (c *EventContact) IsPrimary() bool {
	return c.Role == ContactRolePrimary
}

func (c *EventContact) TableName() string {
	return "event_contacts"
}

// NewContactID returns CON_HHMMSS with a nanosecond suffix so two contacts in the same second differ
func NewContactID(at time.Time) string {
	return fmt.Sprintf("CON_%s_%09d", at.Format("150405"), at.Nanosecond())
}
