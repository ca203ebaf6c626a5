package repositories

import (
	"errors"
	"fmt"
	"time"

	"eventhub/internal/models"

	"gorm.io/gorm"
)

var ErrReportNotFound = errors.New("report not found")

// ReportRepository handles the one-per-day field reports
type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) ReportRepositoryInterface {
	return &ReportRepository{db: db}
}

func (r *ReportRepository) Get(eventID string, day time.Time) (*models.EventReport, error) {
	var report models.EventReport
	if err := r.db.Where("event_id = ? AND report_date = ?", eventID, dayOf(day)).First(&report).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, fmt.Errorf("failed to get report: %w", err)
	}
	return &report, nil
}

// Upsert writes the report for its (event, day), replacing the fields of an existing one
func (r *ReportRepository) Upsert(report *models.EventReport) error {
	if report == nil {
		return errors.New("report cannot be nil")
	}
	report.ReportDate = dayOf(report.ReportDate)

	return r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.EventReport
		err := tx.Where("event_id = ? AND report_date = ?", report.EventID, report.ReportDate).First(&existing).Error

		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := tx.Create(report).Error; err != nil {
				return fmt.Errorf("failed to create report: %w", err)
			}
			return nil
		case err != nil:
			return fmt.Errorf("failed to look up report: %w", err)
		}

		report.ID = existing.ID
		report.CreatedAt = existing.CreatedAt
		if err := tx.Save(report).Error; err != nil {
			return fmt.Errorf("failed to update report: %w", err)
		}
		return nil
	})
}

func (r *ReportRepository) ListByEvent(eventID string) ([]*models.EventReport, error) {
	var reports []*models.EventReport
	if err := r.db.Where("event_id = ?", eventID).Order("report_date ASC").Find(&reports).Error; err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	return reports, nil
}

// LatestWeather maps each event id to the weather of its most recent report
func (r *ReportRepository) LatestWeather(eventIDs []string) (map[string]string, error) {
	weather := make(map[string]string, len(eventIDs))
	if len(eventIDs) == 0 {
		return weather, nil
	}

	var reports []*models.EventReport
	if err := r.db.Select("event_id", "report_date", "weather").
		Where("event_id IN ?", eventIDs).
		Order("report_date ASC").
		Find(&reports).Error; err != nil {
		return nil, fmt.Errorf("failed to load weather: %w", err)
	}

	for _, report := range reports {
		weather[report.EventID] = report.Weather
	}
	return weather, nil
}

func dayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
