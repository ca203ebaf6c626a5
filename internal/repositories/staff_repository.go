package repositories

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"eventhub/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrStaffNotFound      = errors.New("staff not found")
	ErrStaffAlreadyExists = errors.New("staff login already exists")
)

// StaffRepository handles database operations for staff logins
type StaffRepository struct {
	db *gorm.DB
}

// NewStaffRepository creates a new staff repository
func NewStaffRepository(db *gorm.DB) StaffRepositoryInterface {
	return &StaffRepository{
		db: db,
	}
}

// Create creates a new staff login in the database
func (r *StaffRepository) Create(staff *models.Staff) error {
	if staff == nil {
		return errors.New("staff cannot be nil")
	}

	if err := r.db.Create(staff).Error; err != nil {
		if isDuplicateKeyError(err) {
			return ErrStaffAlreadyExists
		}
		return fmt.Errorf("failed to create staff: %w", err)
	}

	return nil
}

// GetByID retrieves a staff login by its ID
func (r *StaffRepository) GetByID(id uuid.UUID) (*models.Staff, error) {
	staff := &models.Staff{ID: id}
	if err := r.db.First(staff).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStaffNotFound
		}
		return nil, fmt.Errorf("failed to get staff by ID: %w", err)
	}

	return staff, nil
}

// GetByEmail retrieves a staff login by email, matched case-insensitively
func (r *StaffRepository) GetByEmail(email string) (*models.Staff, error) {
	var staff models.Staff

	if err := r.db.Where("email = ?", models.NormalizeEmail(email)).First(&staff).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStaffNotFound
		}
		return nil, fmt.Errorf("failed to get staff by email: %w", err)
	}

	return &staff, nil
}

func (r *StaffRepository) List() ([]*models.Staff, error) {
	var staff []*models.Staff
	if err := r.db.Order("email ASC").Find(&staff).Error; err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}
	return staff, nil
}

// Upsert inserts a login or refreshes name, role, PIN and phone of an existing one with the same email
func (r *StaffRepository) Upsert(staff *models.Staff) error {
	if staff == nil {
		return errors.New("staff cannot be nil")
	}

	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "role", "pin_hash", "staff_type", "phone", "updated_at"}),
	}).Create(staff).Error
	if err != nil {
		return fmt.Errorf("failed to upsert staff: %w", err)
	}

	return nil
}

// UpdateFailedLoginAttempts updates the failed login attempts and locked status
func (r *StaffRepository) UpdateFailedLoginAttempts(staff *models.Staff) error {
	if staff == nil {
		return errors.New("staff cannot be nil")
	}

	updates := map[string]interface{}{
		"failed_login_attempts": staff.FailedLoginAttempts,
		"locked_at":             staff.LockedAt,
	}

	if err := r.db.Model(staff).Updates(updates).Error; err != nil {
		return fmt.Errorf("failed to update login attempts: %w", err)
	}

	return nil
}

// ResetFailedLoginAttempts clears the failed login counter and any lock
func (r *StaffRepository) ResetFailedLoginAttempts(staffID uuid.UUID) error {
	updates := map[string]interface{}{
		"failed_login_attempts": 0,
		"locked_at":             nil,
	}

	if err := r.db.Model(&models.Staff{ID: staffID}).Updates(updates).Error; err != nil {
		return fmt.Errorf("failed to reset login attempts: %w", err)
	}

	return nil
}

func (r *StaffRepository) UpdateLastLogin(staffID uuid.UUID, at time.Time) error {
	result := r.db.Model(&models.Staff{ID: staffID}).Updates(map[string]interface{}{"last_login_at": at})
	if result.Error != nil {
		return fmt.Errorf("failed to update last login: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrStaffNotFound
	}

	return nil
}

func isDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	errStr := err.Error()
	// Postgres and SQLite duplicate key error detection
	return strings.Contains(errStr, "duplicate key") ||
		strings.Contains(errStr, "UNIQUE constraint") ||
		strings.Contains(errStr, "23505")
}
