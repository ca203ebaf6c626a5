package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"eventhub/internal/config"
	"eventhub/internal/dto"
	"eventhub/internal/models"
	"eventhub/internal/repositories"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or pin")
	ErrAccountLocked      = errors.New("login is locked due to too many failed attempts")
)

// AuthService signs staff in with email and PIN
type AuthService struct {
	staffRepo    repositories.StaffRepositoryInterface
	auditRepo    repositories.AuditLogRepositoryInterface
	pinService   PinServiceInterface
	tokenService TokenServiceInterface
	security     config.SecurityConfig
	auditLogger  AuditLoggerInterface
	metrics      MetricsRecorderInterface
	logger       *slog.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(
	staffRepo repositories.StaffRepositoryInterface,
	auditRepo repositories.AuditLogRepositoryInterface,
	pinService PinServiceInterface,
	tokenService TokenServiceInterface,
	security config.SecurityConfig,
	auditLogger AuditLoggerInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) AuthServiceInterface {
	return &AuthService{
		staffRepo:    staffRepo,
		auditRepo:    auditRepo,
		pinService:   pinService,
		tokenService: tokenService,
		security:     security,
		auditLogger:  auditLogger,
		metrics:      metrics,
		logger:       logger,
	}
}

// Login checks the PIN and returns a session token carrying the staff member's email and role
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest, ipAddress, userAgent string) (*dto.SessionResponse, error) {
	email := models.NormalizeEmail(req.Email)
	pin := s.pinService.NormalizePin(req.Pin)

	staff, err := s.staffRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, repositories.ErrStaffNotFound) {
			s.loginFailed(ctx, email, ipAddress, userAgent, "user_not_found")
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get staff: %w", err)
	}

	if staff.IsLocked(s.security.LockoutDuration) {
		s.loginFailed(ctx, email, ipAddress, userAgent, "account_locked")
		return nil, ErrAccountLocked
	}

	if pin == "" || !s.pinService.ComparePin(pin, staff.PinHash) {
		if staff.LockedAt != nil {
			// the previous lockout has expired; start counting again
			staff.ResetFailedAttempts()
		}
		staff.IncrementFailedAttempts(s.security.MaxFailedAttempts)
		if err := s.staffRepo.UpdateFailedLoginAttempts(staff); err != nil {
			s.logger.Error("failed to update login attempts",
				"error", err,
				"staff_id", staff.ID,
				"email", staff.Email)
		}

		if staff.LockedAt != nil {
			s.createAuditLog(staff.Email, models.AuditActionAccountLocked, staff.ID.String(), ipAddress, userAgent, nil)
		}

		s.loginFailed(ctx, email, ipAddress, userAgent, "invalid_pin")
		return nil, ErrInvalidCredentials
	}

	if staff.FailedLoginAttempts > 0 || staff.LockedAt != nil {
		if err := s.staffRepo.ResetFailedLoginAttempts(staff.ID); err != nil {
			s.logger.Warn("failed to reset login attempts",
				"error", err,
				"staff_id", staff.ID,
				"email", staff.Email)
		}
	}

	if err := s.staffRepo.UpdateLastLogin(staff.ID, time.Now()); err != nil {
		s.logger.Warn("failed to record last login",
			"error", err,
			"staff_id", staff.ID)
	}

	token, expiresAt, err := s.tokenService.GenerateSessionToken(staff)
	if err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	s.createAuditLog(staff.Email, models.AuditActionLogin, staff.ID.String(), ipAddress, userAgent, nil)
	s.auditLogger.LogLogin(ctx, staff.Email, staff.Role)
	s.metrics.IncrementCounter("authentication_event", map[string]string{"event_type": "login_success"})

	return &dto.SessionResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
		Email:       staff.Email,
		Role:        staff.Role,
		Name:        staff.Name,
	}, nil
}

func (s *AuthService) loginFailed(ctx context.Context, email, ipAddress, userAgent, reason string) {
	metadata := models.AuditMetadata{
		"email":  email,
		"reason": reason,
	}
	s.createAuditLog("", models.AuditActionFailedLogin, "", ipAddress, userAgent, metadata)
	s.auditLogger.LogLoginFailed(ctx, email, reason)
	s.metrics.IncrementCounter("authentication_event", map[string]string{"event_type": "login_" + reason})
}

func (s *AuthService) createAuditLog(actor, action, resourceID, ipAddress, userAgent string, metadata models.AuditMetadata) {
	log := &models.AuditLog{
		ActorEmail: actor,
		Action:     action,
		Resource:   "staff",
		ResourceID: resourceID,
		IPAddress:  ipAddress,
		UserAgent:  userAgent,
		Metadata:   metadata,
	}

	if err := s.auditRepo.Create(log); err != nil {
		// Non-critical: Audit logging failure shouldn't block login
		s.logger.Error("failed to create audit log",
			"error", err,
			"action", action,
			"resource_id", resourceID)
	}
}
