package models

import (
	"errors"
	"slices"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	WeatherSunny  = "Sunny"
	WeatherCloudy = "Cloudy"
	WeatherRainy  = "Rainy"
	WeatherWindy  = "Windy"
	WeatherHeat   = "Heat"

	DefaultTimeLeave = "06:00"
	DefaultTimeReach = "07:30"
)

var (
	WeatherOptions = []string{WeatherSunny, WeatherCloudy, WeatherRainy, WeatherWindy, WeatherHeat}

	ErrInvalidWeather   = errors.New("invalid weather option")
	ErrNegativeStalls   = errors.New("other stalls must not be negative")
	ErrReportDateNeeded = errors.New("report date is required")
)

// EventReport is the field report for one day of an event
type EventReport struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	EventID         string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_event_report_day" json:"event_id"`
	ReportDate      time.Time `gorm:"type:date;not null;uniqueIndex:idx_event_report_day" json:"report_date"`
	Weather         string    `gorm:"type:varchar(10);not null;default:'Sunny'" json:"weather"`
	TimeLeave       string    `gorm:"type:varchar(5)" json:"time_leave"`
	TimeReach       string    `gorm:"type:varchar(5)" json:"time_reach"`
	OtherStalls     int       `gorm:"not null;default:0" json:"other_stalls"`
	WaterAccess     bool      `gorm:"not null;default:false" json:"water_access"`
	PowerAccess     bool      `gorm:"not null;default:false" json:"power_access"`
	GeneralComments string    `gorm:"type:text" json:"general_comments,omitempty"`
	SubmittedBy     string    `gorm:"type:varchar(255)" json:"submitted_by,omitempty"`
	CreatedAt       time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time `gorm:"not null" json:"updated_at"`
}

// DefaultEventReport is what the report form shows before anything is saved for the day
func DefaultEventReport(eventID string, day time.Time) EventReport {
	return EventReport{
		EventID:    eventID,
		ReportDate: truncateDay(day),
		Weather:    WeatherSunny,
		TimeLeave:  DefaultTimeLeave,
		TimeReach:  DefaultTimeReach,
	}
}

func (r *EventReport) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}

	now := time.Now()
	if r.CreatedAt.IsZero() {
		r.CreatedAt = now
	}
	if r.UpdatedAt.IsZero() {
		r.UpdatedAt = now
	}

	return r.Validate()
}

func (r *EventReport) BeforeUpdate(tx *gorm.DB) error {
	r.UpdatedAt = time.Now()
	return r.Validate()
}

func (r *EventReport) Validate() error {
	if r.EventID == "" {
		return ErrEventIDRequired
	}
	if r.ReportDate.IsZero() {
		return ErrReportDateNeeded
	}
	if !slices.Contains(WeatherOptions, r.Weather) {
		return ErrInvalidWeather
	}
	if r.OtherStalls < 0 {
		return ErrNegativeStalls
	}
	return nil
}

func (r *EventReport) TableName() string {
	return "event_reports"
}
