package repositories

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"eventhub/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrEventNotFound      = errors.New("event not found")
	ErrEventAlreadyExists = errors.New("event already exists")
	ErrLogisticsNotFound  = errors.New("logistics not found")
)

// EventRepository handles events together with their financials, logistics and contacts
type EventRepository struct {
	db *gorm.DB
}

// NewEventRepository creates a new event repository
func NewEventRepository(db *gorm.DB) EventRepositoryInterface {
	return &EventRepository{
		db: db,
	}
}

func (r *EventRepository) withDetails(db *gorm.DB) *gorm.DB {
	return db.Preload("Financials").
		Preload("Logistics").
		Preload("Contacts", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("created_at ASC")
		})
}

// CreateWithDetails registers an event and its detail rows in one database transaction
func (r *EventRepository) CreateWithDetails(event *models.Event, financials *models.EventFinancials, logistics *models.LogisticsDetails, contact *models.EventContact) error {
	if event == nil {
		return errors.New("event cannot be nil")
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if event.EventID == "" {
			event.EventID = models.GenerateEventID(event.Date, event.Venue)
		}

		var count int64
		if err := tx.Model(&models.Event{}).Where("event_id = ?", event.EventID).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check event id: %w", err)
		}
		if count > 0 {
			return ErrEventAlreadyExists
		}

		if err := tx.Omit(clause.Associations).Create(event).Error; err != nil {
			if isDuplicateKeyError(err) {
				return ErrEventAlreadyExists
			}
			return fmt.Errorf("failed to create event: %w", err)
		}

		if financials != nil {
			financials.EventID = event.EventID
			if err := tx.Create(financials).Error; err != nil {
				return fmt.Errorf("failed to create event financials: %w", err)
			}
			event.Financials = financials
		}

		if logistics != nil {
			logistics.EventID = event.EventID
			if err := tx.Create(logistics).Error; err != nil {
				return fmt.Errorf("failed to create logistics: %w", err)
			}
			event.Logistics = logistics
		}

		if contact != nil {
			contact.EventID = event.EventID
			if err := tx.Create(contact).Error; err != nil {
				return fmt.Errorf("failed to create event contact: %w", err)
			}
			event.Contacts = []models.EventContact{*contact}
		}

		return nil
	})
}

// GetByID retrieves an event with its financials, logistics and contacts
func (r *EventRepository) GetByID(eventID string) (*models.Event, error) {
	var event models.Event

	if err := r.withDetails(r.db).Where("event_id = ?", eventID).First(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	return &event, nil
}

func (r *EventRepository) Exists(eventID string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Event{}).Where("event_id = ?", eventID).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check event: %w", err)
	}
	return count > 0, nil
}

// Update saves the event's own columns; detail rows are left untouched
func (r *EventRepository) Update(event *models.Event) error {
	if event == nil {
		return errors.New("event cannot be nil")
	}

	if err := r.db.Omit(clause.Associations).Save(event).Error; err != nil {
		return fmt.Errorf("failed to update event: %w", err)
	}

	return nil
}

// Upsert inserts the event or overwrites the stored row with the same id
func (r *EventRepository) Upsert(event *models.Event) error {
	if event == nil {
		return errors.New("event cannot be nil")
	}

	err := r.db.Omit(clause.Associations).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "event_id"}},
		UpdateAll: true,
	}).Create(event).Error
	if err != nil {
		return fmt.Errorf("failed to upsert event: %w", err)
	}

	return nil
}

// ListBetween returns events starting within [from, to]
func (r *EventRepository) ListBetween(from, to time.Time, ascending bool) ([]*models.Event, error) {
	order := "date DESC"
	if ascending {
		order = "date ASC"
	}

	var events []*models.Event
	if err := r.withDetails(r.db).
		Where("date >= ? AND date <= ?", from, to).
		Order(order).
		Find(&events).Error; err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	return events, nil
}

// ListFrom returns events starting on or after from, soonest first
func (r *EventRepository) ListFrom(from time.Time) ([]*models.Event, error) {
	var events []*models.Event
	if err := r.withDetails(r.db).
		Where("date >= ?", from).
		Order("date ASC").
		Find(&events).Error; err != nil {
		return nil, fmt.Errorf("failed to list upcoming events: %w", err)
	}

	return events, nil
}

// Search backs the archive screen
func (r *EventRepository) Search(filters EventFilters) ([]*models.Event, error) {
	query := r.withDetails(r.db).Model(&models.Event{})

	if q := strings.ToLower(strings.TrimSpace(filters.Query)); q != "" {
		like := "%" + q + "%"
		query = query.Where("LOWER(events.venue) LIKE ? OR LOWER(events.event_id) LIKE ?", like, like)
	}

	if filters.EventType != "" {
		query = query.Where("events.event_type = ?", filters.EventType)
	}

	if filters.Year > 0 {
		start := time.Date(filters.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
		query = query.Where("events.date >= ? AND events.date < ?", start, start.AddDate(1, 0, 0))
	}

	switch filters.Sort {
	case EventSortOldest:
		query = query.Order("events.date ASC")
	case EventSortRent:
		query = query.Select("events.*").
			Joins("LEFT JOIN event_financials ON event_financials.event_id = events.event_id").
			Order("COALESCE(event_financials.rent, 0) DESC").
			Order("events.date DESC")
	default:
		query = query.Order("events.date DESC")
	}

	var events []*models.Event
	if err := query.Find(&events).Error; err != nil {
		return nil, fmt.Errorf("failed to search events: %w", err)
	}

	return events, nil
}

// ListAll returns every event, newest first
func (r *EventRepository) ListAll() ([]*models.Event, error) {
	var events []*models.Event
	if err := r.withDetails(r.db).Order("date DESC").Find(&events).Error; err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}

func (r *EventRepository) AddContact(contact *models.EventContact) error {
	if contact == nil {
		return errors.New("contact cannot be nil")
	}

	if err := r.db.Create(contact).Error; err != nil {
		return fmt.Errorf("failed to add contact: %w", err)
	}

	return nil
}

func (r *EventRepository) ListContacts(eventID string) ([]*models.EventContact, error) {
	var contacts []*models.EventContact
	if err := r.db.Where("event_id = ?", eventID).Order("created_at ASC").Find(&contacts).Error; err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	return contacts, nil
}

// SaveLogistics replaces whatever logistics row the event has
func (r *EventRepository) SaveLogistics(logistics *models.LogisticsDetails) error {
	if logistics == nil {
		return errors.New("logistics cannot be nil")
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("event_id = ?", logistics.EventID).Delete(&models.LogisticsDetails{}).Error; err != nil {
			return fmt.Errorf("failed to clear logistics: %w", err)
		}

		logistics.UpdatedAt = time.Now()
		if err := tx.Create(logistics).Error; err != nil {
			return fmt.Errorf("failed to save logistics: %w", err)
		}

		return nil
	})
}

func (r *EventRepository) GetLogistics(eventID string) (*models.LogisticsDetails, error) {
	var logistics models.LogisticsDetails
	if err := r.db.Where("event_id = ?", eventID).First(&logistics).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLogisticsNotFound
		}
		return nil, fmt.Errorf("failed to get logistics: %w", err)
	}
	return &logistics, nil
}

func (r *EventRepository) ListLogistics() ([]*models.LogisticsDetails, error) {
	var rows []*models.LogisticsDetails
	if err := r.db.Order("updated_at DESC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list logistics: %w", err)
	}
	return rows, nil
}

func (r *EventRepository) UpsertFinancials(financials *models.EventFinancials) error {
	if financials == nil {
		return errors.New("financials cannot be nil")
	}

	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "event_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"rent", "rent_status", "rent_paid_date", "rent_due_date", "deposit",
			"deposit_paid", "deposit_refunded", "fee_structure", "commission_rate", "updated_at",
		}),
	}).Create(financials).Error
	if err != nil {
		return fmt.Errorf("failed to upsert financials: %w", err)
	}

	return nil
}
