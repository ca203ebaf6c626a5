package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const MaxRating = 5

var (
	ErrStaffNameRequired = errors.New("staff name is required")
	ErrInvalidRating     = errors.New("rating must be between 0 and 5")
	ErrInvalidHourlyRate = errors.New("hourly rate must not be negative")
)

// StaffProfile is a roster entry: who can be put on a shift
type StaffProfile struct {
	ID         uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	StaffName  string          `gorm:"type:varchar(150);uniqueIndex;not null" json:"staff_name"`
	Phone      string          `gorm:"type:varchar(20)" json:"phone,omitempty"`
	Address    string          `gorm:"type:text" json:"address,omitempty"`
	HourlyRate decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"hourly_rate"`
	Skills     string          `gorm:"type:text" json:"skills,omitempty"`
	Rating     decimal.Decimal `gorm:"type:decimal(3,1);not null;default:5" json:"rating"`
	TFN        string          `gorm:"column:tfn;type:varchar(20)" json:"-"`
	CreatedAt  time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time       `gorm:"not null" json:"updated_at"`
}

func (p *StaffProfile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}

	p.StaffName = strings.TrimSpace(p.StaffName)
	p.Phone = NormalizePhone(p.Phone)

	now := time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = now
	}

	return p.Validate()
}

func (p *StaffProfile) BeforeUpdate(tx *gorm.DB) error {
	p.UpdatedAt = time.Now()
	return p.Validate()
}

func (p *StaffProfile) Validate() error {
	if strings.TrimSpace(p.StaffName) == "" {
		return ErrStaffNameRequired
	}
	if p.Rating.IsNegative() || p.Rating.GreaterThan(decimal.NewFromInt(MaxRating)) {
		return ErrInvalidRating
	}
	if p.HourlyRate.IsNegative() {
		return ErrInvalidHourlyRate
	}
	return nil
}

// Stars is the whole-star rating shown on roster cards
func (p *StaffProfile) Stars() int {
	return int(p.Rating.IntPart())
}

// FirstName is used on compact roster buttons
func (p *StaffProfile) FirstName() string {
	if fields := strings.Fields(p.StaffName); len(fields) > 0 {
		return fields[0]
	}
	return ""
}

func (p *StaffProfile) TableName() string {
	return "staff_profiles"
}
