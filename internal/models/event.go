package models

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"gorm.io/gorm"
)

const (
	EventStatusPlanned   = "Planned"
	EventStatusCompleted = "Completed"
	EventStatusCancelled = "Cancelled"

	DateLayout = "2006-01-02"

	eventIDVenueLength = 10
)

var (
	EventTypes = []string{"Market", "Festival", "School", "Ethnic", "Party", "Corporate", "Other"}

	ErrEventIDRequired  = errors.New("event id is required")
	ErrVenueRequired    = errors.New("venue is required")
	ErrEndBeforeStart   = errors.New("end date must not be before start date")
	ErrInvalidEventType = errors.New("invalid event type")
)

// Event is a single trading engagement, possibly spanning several days
type Event struct {
	EventID       string    `gorm:"type:varchar(64);primaryKey" json:"event_id"`
	Date          time.Time `gorm:"type:date;not null;index" json:"date"`
	EndDate       time.Time `gorm:"type:date;not null" json:"end_date"`
	Venue         string    `gorm:"type:varchar(255);not null;index" json:"venue"`
	EventType     string    `gorm:"type:varchar(30);not null" json:"event_type"`
	Address       string    `gorm:"type:text" json:"address,omitempty"`
	Status        string    `gorm:"type:varchar(20);not null;default:'Planned';index" json:"status"`
	OrganiserName string    `gorm:"type:varchar(150)" json:"organiser_name,omitempty"`
	Notes         string    `gorm:"type:text" json:"notes,omitempty"`
	LastEditedBy  string    `gorm:"type:varchar(255)" json:"last_edited_by,omitempty"`
	CreatedAt     time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time `gorm:"not null" json:"updated_at"`

	Financials *EventFinancials  `gorm:"foreignKey:EventID;references:EventID" json:"financials,omitempty"`
	Logistics  *LogisticsDetails `gorm:"foreignKey:EventID;references:EventID" json:"logistics,omitempty"`
	Contacts   []EventContact    `gorm:"foreignKey:EventID;references:EventID" json:"contacts,omitempty"`
}

func (e *Event) BeforeCreate(tx *gorm.DB) error {
	if e.EventID == "" {
		e.EventID = GenerateEventID(e.Date, e.Venue)
	}
	if e.Status == "" {
		e.Status = EventStatusPlanned
	}
	if e.EndDate.IsZero() {
		e.EndDate = e.Date
	}

	now := time.Now()
	if e.CreatedAt.IsZero() {
		e.CreatedAt = now
	}
	if e.UpdatedAt.IsZero() {
		e.UpdatedAt = now
	}

	return e.Validate()
}

func (e *Event) BeforeUpdate(tx *gorm.DB) error {
	if _, ok := tx.Statement.Dest.(map[string]interface{}); ok {
		return nil
	}
	e.UpdatedAt = time.Now()
	return e.Validate()
}

func (e *Event) Validate() error {
	if e.EventID == "" {
		return ErrEventIDRequired
	}
	if strings.TrimSpace(e.Venue) == "" {
		return ErrVenueRequired
	}
	if e.EventType != "" && !slices.Contains(EventTypes, e.EventType) {
		return fmt.Errorf("%w: %s", ErrInvalidEventType, e.EventType)
	}
	if e.EndDate.Before(e.Date) {
		return ErrEndBeforeStart
	}
	switch e.Status {
	case EventStatusPlanned, EventStatusCompleted, EventStatusCancelled:
	default:
		return fmt.Errorf("invalid event status: %s", e.Status)
	}
	return nil
}

// IsMultiDay reports whether the event runs past its start date
func (e *Event) IsMultiDay() bool {
	return e.EndDate.After(e.Date)
}

// ReportingDays lists every calendar day from start to end, inclusive
func (e *Event) ReportingDays() []time.Time {
	start := truncateDay(e.Date)
	end := truncateDay(e.EndDate)
	if end.Before(start) {
		end = start
	}

	var days []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// IsReportingDay reports whether day falls inside the event's date range
func (e *Event) IsReportingDay(day time.Time) bool {
	d := truncateDay(day)
	return !d.Before(truncateDay(e.Date)) && !d.After(truncateDay(e.EndDate))
}

func (e *Event) TableName() string {
	return "events"
}

// GenerateEventID builds the YYYYMMDD_VENUE identifier, venue upper-cased with
// spaces replaced and cut to ten characters
func GenerateEventID(date time.Time, venue string) string {
	v := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(venue), " ", "_"))
	if r := []rune(v); len(r) > eventIDVenueLength {
		v = string(r[:eventIDVenueLength])
	}
	return fmt.Sprintf("%s_%s", date.Format("20060102"), v)
}

// ParseDate parses a YYYY-MM-DD date in UTC
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, strings.TrimSpace(s))
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
