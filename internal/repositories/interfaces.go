package repositories

import (
	"time"

	"eventhub/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StaffRepositoryInterface defines the contract for login identity operations
type StaffRepositoryInterface interface {
	Create(staff *models.Staff) error
	GetByID(id uuid.UUID) (*models.Staff, error)
	GetByEmail(email string) (*models.Staff, error)
	List() ([]*models.Staff, error)
	Upsert(staff *models.Staff) error
	UpdateFailedLoginAttempts(staff *models.Staff) error
	ResetFailedLoginAttempts(staffID uuid.UUID) error
	UpdateLastLogin(staffID uuid.UUID, at time.Time) error
}

// StaffProfileRepositoryInterface defines the contract for roster operations
type StaffProfileRepositoryInterface interface {
	Create(profile *models.StaffProfile) error
	GetByName(name string) (*models.StaffProfile, error)
	ExistsByName(name string) (bool, error)
	List() ([]*models.StaffProfile, error)
	Upsert(profile *models.StaffProfile) error
}

// EventFilters narrows the archive listing
type EventFilters struct {
	Query     string // venue or event id substring, case-insensitive
	EventType string
	Year      int
	Sort      string // "newest", "oldest" or "rent"
}

const (
	EventSortNewest = "newest"
	EventSortOldest = "oldest"
	EventSortRent   = "rent"
)

// EventRepositoryInterface defines the contract for events and their one-to-one details
type EventRepositoryInterface interface {
	CreateWithDetails(event *models.Event, financials *models.EventFinancials, logistics *models.LogisticsDetails, contact *models.EventContact) error
	GetByID(eventID string) (*models.Event, error)
	Exists(eventID string) (bool, error)
	Update(event *models.Event) error
	Upsert(event *models.Event) error
	ListBetween(from, to time.Time, ascending bool) ([]*models.Event, error)
	ListFrom(from time.Time) ([]*models.Event, error)
	Search(filters EventFilters) ([]*models.Event, error)
	ListAll() ([]*models.Event, error)

	AddContact(contact *models.EventContact) error
	ListContacts(eventID string) ([]*models.EventContact, error)

	SaveLogistics(logistics *models.LogisticsDetails) error
	GetLogistics(eventID string) (*models.LogisticsDetails, error)
	ListLogistics() ([]*models.LogisticsDetails, error)

	UpsertFinancials(financials *models.EventFinancials) error
}

// ReportRepositoryInterface defines the contract for daily field reports
type ReportRepositoryInterface interface {
	Get(eventID string, day time.Time) (*models.EventReport, error)
	Upsert(report *models.EventReport) error
	ListByEvent(eventID string) ([]*models.EventReport, error)
	LatestWeather(eventIDs []string) (map[string]string, error)
}

// AssignmentRepositoryInterface defines the contract for event shift assignments
type AssignmentRepositoryInterface interface {
	Create(assignment *models.StaffAssignment) error
	Exists(eventID, staffName string) (bool, error)
	ListByEvent(eventID string) ([]*models.StaffAssignment, error)
	Delete(eventID, staffName string) error
}

// SalesRepositoryInterface defines the contract for the append-only sales ledger
type SalesRepositoryInterface interface {
	Append(record *models.SalesRecord) error
	ListByEvent(eventID string, day *time.Time) ([]*models.SalesRecord, error)
	GrossTotal(eventID string, day *time.Time) (decimal.Decimal, error)
	TotalRevenue() (decimal.Decimal, error)
}

// AuditLogRepositoryInterface defines the contract for audit log repository operations
type AuditLogRepositoryInterface interface {
	Create(log *models.AuditLog) error
	GetByActor(email string, offset, limit int) ([]*models.AuditLog, int64, error)
	GetByAction(action string, offset, limit int) ([]*models.AuditLog, int64, error)
	GetByResource(resource, resourceID string, offset, limit int) ([]*models.AuditLog, int64, error)
	GetByTimeRange(from, to time.Time, offset, limit int) ([]*models.AuditLog, int64, error)
	DeleteBefore(cutoff time.Time) (int64, error)
}
