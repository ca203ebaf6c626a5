package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrSalesGrossMismatch = errors.New("gross total must equal card plus cash")
	ErrSalesNegative      = errors.New("sales amounts must not be negative")
)

// SalesRecord is one saved, balanced sales entry. Rows are only ever inserted.
type SalesRecord struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	EventID             string          `gorm:"type:varchar(64);not null;index:idx_sales_event_day" json:"event_id"`
	RecordDate          time.Time       `gorm:"type:date;not null;index:idx_sales_event_day" json:"record_date"`
	VenueName           string          `gorm:"type:varchar(255)" json:"venue_name"`
	CardAmount          decimal.Decimal `gorm:"column:card_sales;type:decimal(15,2);not null" json:"card_amount"`
	CashAmount          decimal.Decimal `gorm:"column:cash_sales;type:decimal(15,2);not null" json:"cash_amount"`
	GrossTotal          decimal.Decimal `gorm:"column:total_revenue;type:decimal(15,2);not null" json:"gross_total"`
	QuickAmount         decimal.Decimal `gorm:"column:quick_sales;type:decimal(15,2);not null;default:0" json:"quick_amount"`
	FoodAmount          decimal.Decimal `gorm:"column:food_sales;type:decimal(15,2);not null;default:0" json:"food_amount"`
	DrinksAmount        decimal.Decimal `gorm:"column:drinks_sales;type:decimal(15,2);not null;default:0" json:"drinks_amount"`
	UncategorizedAmount decimal.Decimal `gorm:"column:uncategorized_sales;type:decimal(15,2);not null;default:0" json:"uncategorized_amount"`
	OpeningFloat        decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"opening_float"`
	ClosingFloat        decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"closing_float"`
	RecordedBy          string          `gorm:"type:varchar(255)" json:"recorded_by,omitempty"`
	CreatedAt           time.Time       `gorm:"not null;index" json:"created_at"`
}

func (s *SalesRecord) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now()
	}
	return s.Validate()
}

// BeforeUpdate refuses every update; sales rows are append-only
func (s *SalesRecord) BeforeUpdate(tx *gorm.DB) error {
	return errors.New("sales records cannot be modified")
}

func (s *SalesRecord) Validate() error {
	if s.EventID == "" {
		return ErrEventIDRequired
	}
	for _, amount := range []decimal.Decimal{
		s.CardAmount, s.CashAmount, s.QuickAmount, s.FoodAmount, s.DrinksAmount, s.UncategorizedAmount,
	} {
		if amount.IsNegative() {
			return ErrSalesNegative
		}
	}
	if !s.GrossTotal.Equal(s.CardAmount.Add(s.CashAmount)) {
		return ErrSalesGrossMismatch
	}
	return nil
}

// CategorySum is the total of the four category buckets
func (s *SalesRecord) CategorySum() decimal.Decimal {
	return s.QuickAmount.Add(s.FoodAmount).Add(s.DrinksAmount).Add(s.UncategorizedAmount)
}

func (s *SalesRecord) TableName() string {
	return "event_sales"
}
