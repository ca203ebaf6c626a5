package repositories

import (
	"errors"
	"fmt"

	"eventhub/internal/models"

	"gorm.io/gorm"
)

var (
	ErrAlreadyAssigned    = errors.New("staff member already assigned to this event")
	ErrAssignmentNotFound = errors.New("assignment not found")
)

// AssignmentRepository handles the event staffing table
type AssignmentRepository struct {
	db *gorm.DB
}

func NewAssignmentRepository(db *gorm.DB) AssignmentRepositoryInterface {
	return &AssignmentRepository{db: db}
}

func (r *AssignmentRepository) Create(assignment *models.StaffAssignment) error {
	if assignment == nil {
		return errors.New("assignment cannot be nil")
	}

	if err := r.db.Create(assignment).Error; err != nil {
		if isDuplicateKeyError(err) {
			return ErrAlreadyAssigned
		}
		return fmt.Errorf("failed to create assignment: %w", err)
	}

	return nil
}

func (r *AssignmentRepository) Exists(eventID, staffName string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.StaffAssignment{}).
		Where("event_id = ? AND staff_name = ?", eventID, staffName).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check assignment: %w", err)
	}
	return count > 0, nil
}

func (r *AssignmentRepository) ListByEvent(eventID string) ([]*models.StaffAssignment, error) {
	var assignments []*models.StaffAssignment
	if err := r.db.Where("event_id = ?", eventID).Order("created_at ASC").Find(&assignments).Error; err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}
	return assignments, nil
}

func (r *AssignmentRepository) Delete(eventID, staffName string) error {
	result := r.db.Where("event_id = ? AND staff_name = ?", eventID, staffName).Delete(&models.StaffAssignment{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete assignment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrAssignmentNotFound
	}
	return nil
}
