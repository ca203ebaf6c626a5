package repositories

import (
	"errors"
	"fmt"
	"time"

	"eventhub/internal/models"

	"gorm.io/gorm"
)

// AuditLogRepository stores the who-did-what trail for events, sales and logins
type AuditLogRepository struct {
	db *gorm.DB
}

// NewAuditLogRepository creates a new audit log repository
func NewAuditLogRepository(db *gorm.DB) AuditLogRepositoryInterface {
	return &AuditLogRepository{
		db: db,
	}
}

// Create appends an audit entry
func (r *AuditLogRepository) Create(log *models.AuditLog) error {
	if log == nil {
		return errors.New("audit log cannot be nil")
	}

	if err := r.db.Create(log).Error; err != nil {
		return fmt.Errorf("failed to create audit log: %w", err)
	}

	return nil
}

// GetByActor lists entries written for one login
func (r *AuditLogRepository) GetByActor(email string, offset, limit int) ([]*models.AuditLog, int64, error) {
	return r.page(
		r.db.Model(&models.AuditLog{}).Where("actor_email = ?", models.NormalizeEmail(email)),
		offset, limit, "actor",
	)
}

// GetByAction lists entries of one action type
func (r *AuditLogRepository) GetByAction(action string, offset, limit int) ([]*models.AuditLog, int64, error) {
	return r.page(r.db.Model(&models.AuditLog{}).Where("action = ?", action), offset, limit, "action")
}

// GetByResource lists entries for a resource type, narrowed to one id when resourceID is set
func (r *AuditLogRepository) GetByResource(resource, resourceID string, offset, limit int) ([]*models.AuditLog, int64, error) {
	query := r.db.Model(&models.AuditLog{}).Where("resource = ?", resource)
	if resourceID != "" {
		query = query.Where("resource_id = ?", resourceID)
	}
	return r.page(query, offset, limit, "resource")
}

// GetByTimeRange lists entries created in [from, to)
func (r *AuditLogRepository) GetByTimeRange(from, to time.Time, offset, limit int) ([]*models.AuditLog, int64, error) {
	return r.page(
		r.db.Model(&models.AuditLog{}).Where("created_at >= ? AND created_at < ?", from, to),
		offset, limit, "time range",
	)
}

// DeleteBefore removes entries created before cutoff and reports how many went
func (r *AuditLogRepository) DeleteBefore(cutoff time.Time) (int64, error) {
	result := r.db.Where("created_at < ?", cutoff).Delete(&models.AuditLog{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to prune audit logs: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *AuditLogRepository) page(query *gorm.DB, offset, limit int, by string) ([]*models.AuditLog, int64, error) {
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count audit logs by %s: %w", by, err)
	}

	var logs []*models.AuditLog
	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&logs).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get audit logs by %s: %w", by, err)
	}

	return logs, total, nil
}
