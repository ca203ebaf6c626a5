package services

import (
	"context"
	"time"

	"eventhub/internal/dto"
	"eventhub/internal/models"
	"eventhub/internal/reconciliation"
	"eventhub/internal/repositories"
	"eventhub/internal/sheets"
)

// AuditServiceInterface defines the contract for audit trail operations
type AuditServiceInterface interface {
	CreateAuditLog(log *models.AuditLog) error
	Record(actor, action, resource, resourceID string, metadata models.AuditMetadata)
	GetActorActivity(email string, offset, limit int) ([]*models.AuditLog, int64, error)
	GetResourceHistory(resource, resourceID string, offset, limit int) ([]*models.AuditLog, int64, error)
	GetActionHistory(action string, offset, limit int) ([]*models.AuditLog, int64, error)
	GetActivityBetween(from, to time.Time, offset, limit int) ([]*models.AuditLog, int64, error)
	Prune(retention time.Duration) (int64, error)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

type AuthServiceInterface interface {
	Login(ctx context.Context, req *dto.LoginRequest, ipAddress, userAgent string) (*dto.SessionResponse, error)
}

type TokenServiceInterface interface {
	GenerateSessionToken(staff *models.Staff) (string, time.Time, error)
	ValidateSessionToken(tokenString string) (*models.SessionClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
}

type PinServiceInterface interface {
	NormalizePin(raw string) string
	ValidatePin(pin string) error
	HashPin(pin string) (string, error)
	ComparePin(pin, hash string) bool
}

// EventServiceInterface covers registration, the hub, the archive and the event workspace
type EventServiceInterface interface {
	Create(ctx context.Context, req *dto.CreateEventRequest, actor string) (*models.Event, error)
	Get(eventID string) (*models.Event, error)
	Workspace(eventID string) (*dto.WorkspaceResponse, error)
	UpdateOverview(ctx context.Context, eventID string, req *dto.UpdateEventRequest, actor string) (*models.Event, error)
	AddContact(ctx context.Context, eventID string, req *dto.ContactRequest, actor string) (*models.EventContact, error)
	ListContacts(eventID string) ([]*models.EventContact, error)
	SaveLogistics(ctx context.Context, eventID string, req *dto.LogisticsRequest, actor string) (*models.LogisticsDetails, error)
	ListLogistics() ([]*models.LogisticsDetails, error)
	Hub(filters dto.HubFilters, today time.Time) (*dto.HubResponse, error)
	Archive(filters repositories.EventFilters) ([]*models.Event, error)
	History() (*dto.HistoryResponse, error)
}

type ReportServiceInterface interface {
	Get(eventID string, day time.Time) (*models.EventReport, error)
	Save(ctx context.Context, eventID string, day time.Time, req *dto.ReportRequest, actor string) (*models.EventReport, error)
}

type StaffServiceInterface interface {
	List() ([]*models.StaffProfile, error)
	Onboard(ctx context.Context, req *dto.OnboardStaffRequest, actor string) (*dto.OnboardStaffResponse, error)
}

type StaffingServiceInterface interface {
	Roster(eventID string) ([]dto.RosterEntry, error)
	Advise(start, end string) *dto.ShiftAdvisory
	Assign(ctx context.Context, eventID string, req *dto.AssignStaffRequest, actor string) (*dto.AssignmentResult, error)
	Remove(ctx context.Context, eventID, staffName, actor string) error
}

// SalesServiceInterface runs the balancing calculator and the save gate for event takings
type SalesServiceInterface interface {
	Evaluate(eventID string, form reconciliation.FormState) (reconciliation.Evaluation, error)
	Autofill(eventID string, form reconciliation.FormState) (reconciliation.FormState, reconciliation.Evaluation, error)
	Save(ctx context.Context, eventID string, req *dto.SaveSalesRequest, actor string) (*dto.SaveSalesResponse, error)
	Summary(eventID string, day *time.Time) (*dto.SalesSummary, error)
}

type CircuitBreakerInterface interface {
	Call(fn func() error) error
	IsOpen() bool
	RecordSuccess()
	RecordFailure()
	State() models.CircuitBreakerState
	Failures() int
	Reset()
}

type ImportServiceInterface interface {
	Import(ctx context.Context, book *sheets.Workbook, actor string) (*dto.ImportSummary, error)
}

type AuditLoggerInterface interface {
	LogLogin(ctx context.Context, email, role string)
	LogLoginFailed(ctx context.Context, email, reason string)
	LogEventCreated(ctx context.Context, eventID, venue, actor string)
	LogStaffAssigned(ctx context.Context, eventID, staffName string, advisory *dto.ShiftAdvisory)
	LogSalesSaved(ctx context.Context, record *models.SalesRecord)
	LogSalesBlocked(ctx context.Context, eventID string, eval reconciliation.Evaluation)
	LogSalesPersistFailed(ctx context.Context, eventID string, errorMsg string)
	LogSheetImported(ctx context.Context, source string, imported, skipped int, durationMs int64)
}
