package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	RentStatusPaid      = "Paid"
	RentStatusDueLater  = "Due Later"
	FeeFixedRent        = "Fixed Rent"
	FeeCommission       = "Commission %"
	FeeHybrid           = "Hybrid (Both)"
	defaultFeeStructure = FeeFixedRent
)

var (
	ErrInvalidFeeStructure  = errors.New("invalid fee structure")
	ErrInvalidRentStatus    = errors.New("invalid rent status")
	ErrInvalidCommission    = errors.New("commission rate must be between 0 and 100")
	ErrNegativeFinancialAmt = errors.New("rent and deposit must not be negative")
)

// EventFinancials holds the site fee arrangement for one event
type EventFinancials struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	EventID         string          `gorm:"type:varchar(64);uniqueIndex;not null" json:"event_id"`
	Rent            decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"rent"`
	RentStatus      string          `gorm:"type:varchar(20);not null;default:'Due Later'" json:"rent_status"`
	RentPaidDate    *time.Time      `gorm:"type:date" json:"rent_paid_date,omitempty"`
	RentDueDate     *time.Time      `gorm:"type:date" json:"rent_due_date,omitempty"`
	Deposit         decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"deposit"`
	DepositPaid     bool            `gorm:"not null;default:false" json:"deposit_paid"`
	DepositRefunded bool            `gorm:"not null;default:false" json:"deposit_refunded"`
	FeeStructure    string          `gorm:"type:varchar(30);not null;default:'Fixed Rent'" json:"fee_structure"`
	CommissionRate  decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0" json:"commission_rate"`
	CreatedAt       time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"not null" json:"updated_at"`
}

func (f *EventFinancials) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	if f.FeeStructure == "" {
		f.FeeStructure = defaultFeeStructure
	}
	if f.RentStatus == "" {
		f.RentStatus = RentStatusDueLater
	}

	now := time.Now()
	if f.CreatedAt.IsZero() {
		f.CreatedAt = now
	}
	if f.UpdatedAt.IsZero() {
		f.UpdatedAt = now
	}

	return f.Validate()
}

func (f *EventFinancials) BeforeUpdate(tx *gorm.DB) error {
	f.UpdatedAt = time.Now()
	return f.Validate()
}

func (f *EventFinancials) Validate() error {
	switch f.FeeStructure {
	case FeeFixedRent, FeeCommission, FeeHybrid:
	default:
		return ErrInvalidFeeStructure
	}

	switch f.RentStatus {
	case RentStatusPaid, RentStatusDueLater:
	default:
		return ErrInvalidRentStatus
	}

	if f.CommissionRate.IsNegative() || f.CommissionRate.GreaterThan(decimal.NewFromInt(100)) {
		return ErrInvalidCommission
	}
	if f.Rent.IsNegative() || f.Deposit.IsNegative() {
		return ErrNegativeFinancialAmt
	}
	return nil
}

// ApplyFeeStructure zeroes whichever of rent or commission the structure does not charge
func (f *EventFinancials) ApplyFeeStructure() {
	switch f.FeeStructure {
	case FeeFixedRent:
		f.CommissionRate = decimal.Zero
	case FeeCommission:
		f.Rent = decimal.Zero
	}
}

// SetRentDate records the date as paid or due depending on rent status
func (f *EventFinancials) SetRentDate(date time.Time) {
	d := date
	if f.RentStatus == RentStatusPaid {
		f.RentPaidDate, f.RentDueDate = &d, nil
		return
	}
	f.RentPaidDate, f.RentDueDate = nil, &d
}

func (f *EventFinancials) TableName() string {
	return "event_financials"
}
