package repositories

import (
	"errors"
	"fmt"
	"strings"

	"eventhub/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrStaffProfileNotFound = errors.New("staff profile not found")
	ErrStaffProfileExists   = errors.New("staff profile already exists")
)

// StaffProfileRepository handles database operations for the staff roster
type StaffProfileRepository struct {
	db *gorm.DB
}

func NewStaffProfileRepository(db *gorm.DB) StaffProfileRepositoryInterface {
	return &StaffProfileRepository{db: db}
}

func (r *StaffProfileRepository) Create(profile *models.StaffProfile) error {
	if profile == nil {
		return errors.New("staff profile cannot be nil")
	}

	if err := r.db.Create(profile).Error; err != nil {
		if isDuplicateKeyError(err) {
			return ErrStaffProfileExists
		}
		return fmt.Errorf("failed to create staff profile: %w", err)
	}

	return nil
}

// GetByName looks a roster entry up by its exact, trimmed name
func (r *StaffProfileRepository) GetByName(name string) (*models.StaffProfile, error) {
	var profile models.StaffProfile

	if err := r.db.Where("staff_name = ?", strings.TrimSpace(name)).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStaffProfileNotFound
		}
		return nil, fmt.Errorf("failed to get staff profile: %w", err)
	}

	return &profile, nil
}

func (r *StaffProfileRepository) ExistsByName(name string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.StaffProfile{}).
		Where("LOWER(staff_name) = ?", strings.ToLower(strings.TrimSpace(name))).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check staff profile: %w", err)
	}
	return count > 0, nil
}

// List returns the roster ordered by name
func (r *StaffProfileRepository) List() ([]*models.StaffProfile, error) {
	var profiles []*models.StaffProfile
	if err := r.db.Order("staff_name ASC").Find(&profiles).Error; err != nil {
		return nil, fmt.Errorf("failed to list staff profiles: %w", err)
	}
	return profiles, nil
}

func (r *StaffProfileRepository) Upsert(profile *models.StaffProfile) error {
	if profile == nil {
		return errors.New("staff profile cannot be nil")
	}

	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "staff_name"}},
		DoUpdates: clause.AssignmentColumns([]string{"phone", "address", "hourly_rate", "skills", "rating", "tfn", "updated_at"}),
	}).Create(profile).Error
	if err != nil {
		return fmt.Errorf("failed to upsert staff profile: %w", err)
	}

	return nil
}
