package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	TimeTBA = "TBA"

	DefaultBumpIn  = "08:00"
	DefaultBumpOut = "18:00"
)

// SetupTypes covers both the stall types chosen at registration and the logistics options
var SetupTypes = []string{"Food Truck", "Truck", "Marquee", "Trailer", "Stall", "Indoor", "Cart", "Other"}

// LogisticsDetails is the bump-in/bump-out plan for an event. One row per event.
type LogisticsDetails struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	EventID   string    `gorm:"type:varchar(64);uniqueIndex;not null" json:"event_id"`
	SetupType string    `gorm:"type:varchar(30)" json:"setup_type"`
	BumpIn    string    `gorm:"type:varchar(10);not null;default:'TBA'" json:"bump_in"`
	BumpOut   string    `gorm:"type:varchar(10);not null;default:'TBA'" json:"bump_out"`
	Parking   string    `gorm:"type:text" json:"parking,omitempty"`
	Notes     string    `gorm:"column:log_notes;type:text" json:"notes,omitempty"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (l *LogisticsDetails) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	if l.BumpIn == "" {
		l.BumpIn = TimeTBA
	}
	if l.BumpOut == "" {
		l.BumpOut = TimeTBA
	}
	if l.UpdatedAt.IsZero() {
		l.UpdatedAt = time.Now()
	}
	if l.EventID == "" {
		return ErrEventIDRequired
	}
	return nil
}

func (l *LogisticsDetails) BeforeUpdate(tx *gorm.DB) error {
	l.UpdatedAt = time.Now()
	return nil
}

// DisplayBumpIn falls back to the usual start time while the bump-in is still TBA
func (l *LogisticsDetails) DisplayBumpIn() string {
	if l.BumpIn == "" || l.BumpIn == TimeTBA {
		return DefaultBumpIn
	}
	return l.BumpIn
}

func (l *LogisticsDetails) DisplayBumpOut() string {
	if l.BumpOut == "" || l.BumpOut == TimeTBA {
		return DefaultBumpOut
	}
	return l.BumpOut
}

func (l *LogisticsDetails) TableName() string {
	return "logistics_details"
}
