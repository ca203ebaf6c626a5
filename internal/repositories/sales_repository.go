package repositories

import (
	"errors"
	"fmt"
	"time"

	"eventhub/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SalesRepository is the append-only sales ledger. There is no update or delete path.
type SalesRepository struct {
	db *gorm.DB
}

func NewSalesRepository(db *gorm.DB) SalesRepositoryInterface {
	return &SalesRepository{db: db}
}

// Append inserts one new sales row
func (r *SalesRepository) Append(record *models.SalesRecord) error {
	if record == nil {
		return errors.New("sales record cannot be nil")
	}
	record.RecordDate = dayOf(record.RecordDate)

	if err := r.db.Create(record).Error; err != nil {
		return fmt.Errorf("failed to append sales record: %w", err)
	}

	return nil
}

// ListByEvent returns the event's rows, optionally for a single day, oldest first
func (r *SalesRepository) ListByEvent(eventID string, day *time.Time) ([]*models.SalesRecord, error) {
	query := r.db.Where("event_id = ?", eventID)
	if day != nil {
		query = query.Where("record_date = ?", dayOf(*day))
	}

	var records []*models.SalesRecord
	if err := query.Order("created_at ASC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list sales records: %w", err)
	}

	return records, nil
}

// GrossTotal sums total_revenue for the event, optionally for a single day
func (r *SalesRepository) GrossTotal(eventID string, day *time.Time) (decimal.Decimal, error) {
	var result struct {
		Total decimal.Decimal
	}

	query := r.db.Model(&models.SalesRecord{}).
		Select("COALESCE(SUM(total_revenue), 0) as total").
		Where("event_id = ?", eventID)
	if day != nil {
		query = query.Where("record_date = ?", dayOf(*day))
	}

	if err := query.Scan(&result).Error; err != nil {
		return decimal.Zero, fmt.Errorf("failed to calculate gross total: %w", err)
	}

	return result.Total, nil
}

// TotalRevenue sums total_revenue across every event
func (r *SalesRepository) TotalRevenue() (decimal.Decimal, error) {
	var result struct {
		Total decimal.Decimal
	}

	if err := r.db.Model(&models.SalesRecord{}).
		Select("COALESCE(SUM(total_revenue), 0) as total").
		Scan(&result).Error; err != nil {
		return decimal.Zero, fmt.Errorf("failed to calculate total revenue: %w", err)
	}

	return result.Total, nil
}
