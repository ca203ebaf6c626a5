package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	PaymentStatusPending = "Pending"
	PaymentStatusPaid    = "Paid"

	AssignmentTypeStandard = "Standard"

	DefaultShiftStart = "08:00"
	DefaultShiftEnd   = "18:00"
)

var ErrAssignmentIncomplete = errors.New("event id and staff name are required")

// StaffAssignment puts a roster member on an event shift
type StaffAssignment struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	EventID       string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_event_staff" json:"event_id"`
	StaffName     string    `gorm:"type:varchar(150);not null;uniqueIndex:idx_event_staff" json:"staff_name"`
	StartTime     string    `gorm:"type:varchar(5);not null" json:"start_time"`
	EndTime       string    `gorm:"type:varchar(5);not null" json:"end_time"`
	PaymentStatus string    `gorm:"type:varchar(10);not null;default:'Pending'" json:"payment_status"`
	Type          string    `gorm:"type:varchar(20);not null;default:'Standard'" json:"type"`
	AssignedBy    string    `gorm:"type:varchar(255)" json:"assigned_by,omitempty"`
	CreatedAt     time.Time `gorm:"not null" json:"created_at"`
}

func (a *StaffAssignment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.StartTime == "" {
		a.StartTime = DefaultShiftStart
	}
	if a.EndTime == "" {
		a.EndTime = DefaultShiftEnd
	}
	if a.PaymentStatus == "" {
		a.PaymentStatus = PaymentStatusPending
	}
	if a.Type == "" {
		a.Type = AssignmentTypeStandard
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}

	if a.EventID == "" || a.StaffName == "" {
		return ErrAssignmentIncomplete
	}
	return nil
}

func (a *StaffAssignment) TableName() string {
	return "event_staffing"
}
