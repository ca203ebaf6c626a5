package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"eventhub/internal/dto"
	"eventhub/internal/models"
	"eventhub/internal/repositories"

	"github.com/shopspring/decimal"
)

const minPhoneDigits = 10

var ErrPhoneTooShort = errors.New("phone number must have at least 10 digits")

// StaffService manages the roster and the app logins attached to it
type StaffService struct {
	profileRepo  repositories.StaffProfileRepositoryInterface
	staffRepo    repositories.StaffRepositoryInterface
	pinService   PinServiceInterface
	auditService AuditServiceInterface
	logger       *slog.Logger
}

func NewStaffService(
	profileRepo repositories.StaffProfileRepositoryInterface,
	staffRepo repositories.StaffRepositoryInterface,
	pinService PinServiceInterface,
	auditService AuditServiceInterface,
	logger *slog.Logger,
) StaffServiceInterface {
	return &StaffService{
		profileRepo:  profileRepo,
		staffRepo:    staffRepo,
		pinService:   pinService,
		auditService: auditService,
		logger:       logger,
	}
}

func (s *StaffService) List() ([]*models.StaffProfile, error) {
	return s.profileRepo.List()
}

// Onboard adds a roster member. With app access it also creates a login whose PIN is stored hashed.
func (s *StaffService) Onboard(ctx context.Context, req *dto.OnboardStaffRequest, actor string) (*dto.OnboardStaffResponse, error) {
	name := strings.TrimSpace(req.StaffName)

	if len(models.DigitsOnly(req.Phone)) < minPhoneDigits {
		return nil, ErrPhoneTooShort
	}

	exists, err := s.profileRepo.ExistsByName(name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, repositories.ErrStaffProfileExists
	}

	var login *models.Staff
	if req.AppAccess {
		if login, err = s.newLogin(req, name); err != nil {
			return nil, err
		}
	}

	rating := req.Rating
	if rating.IsZero() {
		rating = decimal.NewFromInt(models.MaxRating)
	}

	profile := &models.StaffProfile{
		StaffName:  name,
		Phone:      req.Phone,
		Address:    strings.TrimSpace(req.Address),
		HourlyRate: req.HourlyRate,
		Skills:     strings.TrimSpace(req.Skills),
		Rating:     rating,
		TFN:        strings.TrimSpace(req.TFN),
	}

	if err := s.profileRepo.Create(profile); err != nil {
		return nil, err
	}

	if login != nil {
		if err := s.staffRepo.Create(login); err != nil {
			s.logger.ErrorContext(ctx, "roster entry created but login failed",
				"error", err,
				"staff_name", name,
				"email", login.Email)
			return nil, err
		}
	}

	metadata := models.AuditMetadata{
		"staff_name": name,
		"app_access": login != nil,
	}
	if login != nil {
		metadata["login_email"] = login.Email
		metadata["role"] = login.Role
	}
	s.auditService.Record(actor, models.AuditActionStaffOnboarded, "staff", name, metadata)

	return &dto.OnboardStaffResponse{Profile: profile, Login: login}, nil
}

func (s *StaffService) newLogin(req *dto.OnboardStaffRequest, name string) (*models.Staff, error) {
	email := models.NormalizeEmail(req.LoginEmail)

	_, err := s.staffRepo.GetByEmail(email)
	switch {
	case err == nil:
		return nil, repositories.ErrStaffAlreadyExists
	case !errors.Is(err, repositories.ErrStaffNotFound):
		return nil, err
	}

	hash, err := s.pinService.HashPin(s.pinService.NormalizePin(req.Pin))
	if err != nil {
		return nil, fmt.Errorf("failed to set login pin: %w", err)
	}

	role := req.Role
	if role == "" {
		role = models.RoleStaff
	}

	return &models.Staff{
		Email:     email,
		Name:      name,
		Role:      role,
		PinHash:   hash,
		StaffType: models.StaffTypeCasual,
		Phone:     models.NormalizePhone(req.Phone),
	}, nil
}
