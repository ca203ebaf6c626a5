package services

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"eventhub/internal/models"
	"eventhub/internal/repositories"
)

// AuditService handles audit trail operations
type AuditService struct {
	repo   repositories.AuditLogRepositoryInterface
	logger *slog.Logger
}

// NewAuditService creates a new audit service
func NewAuditService(repo repositories.AuditLogRepositoryInterface, logger *slog.Logger) AuditServiceInterface {
	return &AuditService{
		repo:   repo,
		logger: logger,
	}
}

var (
	ErrInvalidActor    = errors.New("invalid actor email")
	ErrInvalidAuditLog = errors.New("invalid audit log")
	ErrInvalidResource = errors.New("resource is required")
	ErrInvalidAction   = errors.New("invalid activity type")
	ErrInvalidRange    = errors.New("time range end must be after its start")
)

// ValidateActivityType rejects actions the hub never records
func ValidateActivityType(action string) error {
	if !models.IsAuditAction(action) {
		return fmt.Errorf("%w: %s", ErrInvalidAction, action)
	}
	return nil
}

// CreateAuditLog creates a new audit log entry with validation
func (s *AuditService) CreateAuditLog(log *models.AuditLog) error {
	if log == nil {
		return ErrInvalidAuditLog
	}

	if err := ValidateActivityType(log.Action); err != nil {
		return err
	}

	if log.Resource == "" {
		return ErrInvalidResource
	}

	log.ActorEmail = models.NormalizeEmail(log.ActorEmail)

	if err := s.repo.Create(log); err != nil {
		return fmt.Errorf("failed to create audit log: %w", err)
	}

	return nil
}

// Record writes an audit entry and only logs when that fails
func (s *AuditService) Record(actor, action, resource, resourceID string, metadata models.AuditMetadata) {
	log := &models.AuditLog{
		ActorEmail: actor,
		Action:     action,
		Resource:   resource,
		ResourceID: resourceID,
		Metadata:   metadata,
	}

	if err := s.CreateAuditLog(log); err != nil {
		s.logger.Error("failed to create audit log",
			"error", err,
			"action", action,
			"resource", resource,
			"resource_id", resourceID)
	}
}

// GetActorActivity lists what one login has done, newest first
func (s *AuditService) GetActorActivity(email string, offset, limit int) ([]*models.AuditLog, int64, error) {
	email = models.NormalizeEmail(email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, 0, ErrInvalidActor
	}

	return s.repo.GetByActor(email, offset, limit)
}

// GetResourceHistory lists the changes made to one resource
func (s *AuditService) GetResourceHistory(resource, resourceID string, offset, limit int) ([]*models.AuditLog, int64, error) {
	if resource == "" {
		return nil, 0, ErrInvalidResource
	}

	return s.repo.GetByResource(resource, resourceID, offset, limit)
}

// GetActionHistory lists every entry of one action type
func (s *AuditService) GetActionHistory(action string, offset, limit int) ([]*models.AuditLog, int64, error) {
	if err := ValidateActivityType(action); err != nil {
		return nil, 0, err
	}

	return s.repo.GetByAction(action, offset, limit)
}

// GetActivityBetween lists entries created in [from, to)
func (s *AuditService) GetActivityBetween(from, to time.Time, offset, limit int) ([]*models.AuditLog, int64, error) {
	if !to.After(from) {
		return nil, 0, ErrInvalidRange
	}

	return s.repo.GetByTimeRange(from.UTC(), to.UTC(), offset, limit)
}

// Prune drops entries older than retention; zero or negative retention keeps everything
func (s *AuditService) Prune(retention time.Duration) (int64, error) {
	if retention <= 0 {
		return 0, nil
	}

	deleted, err := s.repo.DeleteBefore(time.Now().UTC().Add(-retention))
	if err != nil {
		return 0, err
	}
	if deleted > 0 {
		s.logger.Info("pruned audit logs", "deleted", deleted, "retention", retention.String())
	}
	return deleted, nil
}
