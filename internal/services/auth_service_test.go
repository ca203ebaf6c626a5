package services

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"eventhub/internal/config"
	"eventhub/internal/dto"
	"eventhub/internal/models"
	"eventhub/internal/repositories"
	"eventhub/internal/repositories/repository_mocks"
	"eventhub/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type AuthServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	staffRepo    *repository_mocks.MockStaffRepositoryInterface
	auditRepo    *repository_mocks.MockAuditLogRepositoryInterface
	pinService   *service_mocks.MockPinServiceInterface
	tokenService *service_mocks.MockTokenServiceInterface
	auditLogger  *service_mocks.MockAuditLoggerInterface
	metrics      *service_mocks.MockMetricsRecorderInterface
	security     config.SecurityConfig
	authService  AuthServiceInterface
	ctx          context.Context
}

func (s *AuthServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.staffRepo = repository_mocks.NewMockStaffRepositoryInterface(s.ctrl)
	s.auditRepo = repository_mocks.NewMockAuditLogRepositoryInterface(s.ctrl)
	s.pinService = service_mocks.NewMockPinServiceInterface(s.ctrl)
	s.tokenService = service_mocks.NewMockTokenServiceInterface(s.ctrl)
	s.auditLogger = service_mocks.NewMockAuditLoggerInterface(s.ctrl)
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.security = config.SecurityConfig{
		MaxFailedAttempts: 3,
		LockoutDuration:   15 * time.Minute,
	}
	s.ctx = context.Background()

	s.authService = NewAuthService(s.staffRepo, s.auditRepo, s.pinService, s.tokenService, s.security, s.auditLogger, s.metrics, slog.Default())
}

func (s *AuthServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestAuthServiceSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}

func (s *AuthServiceTestSuite) newStaff() *models.Staff {
	return &models.Staff{
		ID:      uuid.New(),
		Email:   "jo@example.com",
		Name:    "Jo Manager",
		Role:    models.RoleManager,
		PinHash: "hashed_pin",
	}
}

func (s *AuthServiceTestSuite) expectFailure(reason string) {
	s.auditRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(log *models.AuditLog) error {
		s.Equal(models.AuditActionFailedLogin, log.Action)
		s.Equal(reason, log.Metadata["reason"])
		return nil
	}).Times(1)
	s.auditLogger.EXPECT().LogLoginFailed(gomock.Any(), gomock.Any(), reason).Times(1)
	s.metrics.EXPECT().IncrementCounter("authentication_event", map[string]string{"event_type": "login_" + reason}).Times(1)
}

func (s *AuthServiceTestSuite) TestLogin_Success() {
	staff := s.newStaff()
	expiresAt := time.Now().Add(12 * time.Hour)

	s.pinService.EXPECT().NormalizePin(" 12-34 ").Return("1234").Times(1)
	s.staffRepo.EXPECT().GetByEmail("jo@example.com").Return(staff, nil).Times(1)
	s.pinService.EXPECT().ComparePin("1234", "hashed_pin").Return(true).Times(1)
	s.staffRepo.EXPECT().UpdateLastLogin(staff.ID, gomock.Any()).Return(nil).Times(1)
	s.tokenService.EXPECT().GenerateSessionToken(staff).Return("session.token", expiresAt, nil).Times(1)
	s.auditRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(log *models.AuditLog) error {
		s.Equal(models.AuditActionLogin, log.Action)
		s.Equal(staff.Email, log.ActorEmail)
		s.Equal("192.168.1.1", log.IPAddress)
		return nil
	}).Times(1)
	s.auditLogger.EXPECT().LogLogin(gomock.Any(), staff.Email, staff.Role).Times(1)
	s.metrics.EXPECT().IncrementCounter("authentication_event", map[string]string{"event_type": "login_success"}).Times(1)

	resp, err := s.authService.Login(s.ctx, &dto.LoginRequest{Email: " Jo@Example.com ", Pin: " 12-34 "}, "192.168.1.1", "Mozilla/5.0")

	s.NoError(err)
	s.Require().NotNil(resp)
	s.Equal("session.token", resp.AccessToken)
	s.Equal("Bearer", resp.TokenType)
	s.Equal(expiresAt, resp.ExpiresAt)
	s.Equal(staff.Email, resp.Email)
	s.Equal(models.RoleManager, resp.Role)
	s.Equal(staff.Name, resp.Name)
}

func (s *AuthServiceTestSuite) TestLogin_ResetsPreviousFailures() {
	staff := s.newStaff()
	staff.FailedLoginAttempts = 2

	s.pinService.EXPECT().NormalizePin("1234").Return("1234").Times(1)
	s.staffRepo.EXPECT().GetByEmail(staff.Email).Return(staff, nil).Times(1)
	s.pinService.EXPECT().ComparePin("1234", staff.PinHash).Return(true).Times(1)
	s.staffRepo.EXPECT().ResetFailedLoginAttempts(staff.ID).Return(nil).Times(1)
	s.staffRepo.EXPECT().UpdateLastLogin(staff.ID, gomock.Any()).Return(errors.New("db down")).Times(1)
	s.tokenService.EXPECT().GenerateSessionToken(staff).Return("token", time.Now().Add(time.Hour), nil).Times(1)
	s.auditRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)
	s.auditLogger.EXPECT().LogLogin(gomock.Any(), staff.Email, staff.Role).Times(1)
	s.metrics.EXPECT().IncrementCounter(gomock.Any(), gomock.Any()).Times(1)

	resp, err := s.authService.Login(s.ctx, &dto.LoginRequest{Email: staff.Email, Pin: "1234"}, "", "")

	s.NoError(err)
	s.NotNil(resp)
}

func (s *AuthServiceTestSuite) TestLogin_UnknownEmail() {
	s.pinService.EXPECT().NormalizePin("1234").Return("1234").Times(1)
	s.staffRepo.EXPECT().GetByEmail("nobody@example.com").Return(nil, repositories.ErrStaffNotFound).Times(1)
	s.expectFailure("user_not_found")

	resp, err := s.authService.Login(s.ctx, &dto.LoginRequest{Email: "nobody@example.com", Pin: "1234"}, "", "")

	s.ErrorIs(err, ErrInvalidCredentials)
	s.Nil(resp)
}

func (s *AuthServiceTestSuite) TestLogin_RepositoryError() {
	s.pinService.EXPECT().NormalizePin("1234").Return("1234").Times(1)
	s.staffRepo.EXPECT().GetByEmail("jo@example.com").Return(nil, errors.New("connection refused")).Times(1)

	resp, err := s.authService.Login(s.ctx, &dto.LoginRequest{Email: "jo@example.com", Pin: "1234"}, "", "")

	s.Error(err)
	s.NotErrorIs(err, ErrInvalidCredentials)
	s.Contains(err.Error(), "failed to get staff")
	s.Nil(resp)
}

func (s *AuthServiceTestSuite) TestLogin_WrongPin() {
	staff := s.newStaff()

	s.pinService.EXPECT().NormalizePin("9999").Return("9999").Times(1)
	s.staffRepo.EXPECT().GetByEmail(staff.Email).Return(staff, nil).Times(1)
	s.pinService.EXPECT().ComparePin("9999", staff.PinHash).Return(false).Times(1)
	s.staffRepo.EXPECT().UpdateFailedLoginAttempts(staff).Return(nil).Times(1)
	s.expectFailure("invalid_pin")

	resp, err := s.authService.Login(s.ctx, &dto.LoginRequest{Email: staff.Email, Pin: "9999"}, "", "")

	s.ErrorIs(err, ErrInvalidCredentials)
	s.Nil(resp)
	s.Equal(1, staff.FailedLoginAttempts)
	s.Nil(staff.LockedAt)
}

func (s *AuthServiceTestSuite) TestLogin_EmptyPinNeverCompared() {
	staff := s.newStaff()

	s.pinService.EXPECT().NormalizePin("abc").Return("").Times(1)
	s.staffRepo.EXPECT().GetByEmail(staff.Email).Return(staff, nil).Times(1)
	s.staffRepo.EXPECT().UpdateFailedLoginAttempts(staff).Return(nil).Times(1)
	s.expectFailure("invalid_pin")

	_, err := s.authService.Login(s.ctx, &dto.LoginRequest{Email: staff.Email, Pin: "abc"}, "", "")

	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *AuthServiceTestSuite) TestLogin_LocksAfterMaxAttempts() {
	staff := s.newStaff()
	staff.FailedLoginAttempts = s.security.MaxFailedAttempts - 1

	s.pinService.EXPECT().NormalizePin("0000").Return("0000").Times(1)
	s.staffRepo.EXPECT().GetByEmail(staff.Email).Return(staff, nil).Times(1)
	s.pinService.EXPECT().ComparePin("0000", staff.PinHash).Return(false).Times(1)
	s.staffRepo.EXPECT().UpdateFailedLoginAttempts(staff).Return(nil).Times(1)
	s.auditRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(log *models.AuditLog) error {
		s.Equal(models.AuditActionAccountLocked, log.Action)
		return nil
	}).Times(1)
	s.expectFailure("invalid_pin")

	_, err := s.authService.Login(s.ctx, &dto.LoginRequest{Email: staff.Email, Pin: "0000"}, "", "")

	s.ErrorIs(err, ErrInvalidCredentials)
	s.NotNil(staff.LockedAt)
	s.Equal(s.security.MaxFailedAttempts, staff.FailedLoginAttempts)
}

func (s *AuthServiceTestSuite) TestLogin_Locked() {
	staff := s.newStaff()
	lockedAt := time.Now().Add(-time.Minute)
	staff.LockedAt = &lockedAt
	staff.FailedLoginAttempts = s.security.MaxFailedAttempts

	s.pinService.EXPECT().NormalizePin("1234").Return("1234").Times(1)
	s.staffRepo.EXPECT().GetByEmail(staff.Email).Return(staff, nil).Times(1)
	s.expectFailure("account_locked")

	resp, err := s.authService.Login(s.ctx, &dto.LoginRequest{Email: staff.Email, Pin: "1234"}, "", "")

	s.ErrorIs(err, ErrAccountLocked)
	s.Nil(resp)
}

func (s *AuthServiceTestSuite) TestLogin_ExpiredLockRestartsCount() {
	staff := s.newStaff()
	lockedAt := time.Now().Add(-time.Hour)
	staff.LockedAt = &lockedAt
	staff.FailedLoginAttempts = s.security.MaxFailedAttempts

	s.pinService.EXPECT().NormalizePin("0000").Return("0000").Times(1)
	s.staffRepo.EXPECT().GetByEmail(staff.Email).Return(staff, nil).Times(1)
	s.pinService.EXPECT().ComparePin("0000", staff.PinHash).Return(false).Times(1)
	s.staffRepo.EXPECT().UpdateFailedLoginAttempts(staff).Return(nil).Times(1)
	s.expectFailure("invalid_pin")

	_, err := s.authService.Login(s.ctx, &dto.LoginRequest{Email: staff.Email, Pin: "0000"}, "", "")

	s.ErrorIs(err, ErrInvalidCredentials)
	s.Equal(1, staff.FailedLoginAttempts)
	s.Nil(staff.LockedAt)
}

func (s *AuthServiceTestSuite) TestLogin_TokenError() {
	staff := s.newStaff()

	s.pinService.EXPECT().NormalizePin("1234").Return("1234").Times(1)
	s.staffRepo.EXPECT().GetByEmail(staff.Email).Return(staff, nil).Times(1)
	s.pinService.EXPECT().ComparePin("1234", staff.PinHash).Return(true).Times(1)
	s.staffRepo.EXPECT().UpdateLastLogin(staff.ID, gomock.Any()).Return(nil).Times(1)
	s.tokenService.EXPECT().GenerateSessionToken(staff).Return("", time.Time{}, errors.New("no key")).Times(1)

	resp, err := s.authService.Login(s.ctx, &dto.LoginRequest{Email: staff.Email, Pin: "1234"}, "", "")

	s.Error(err)
	s.Contains(err.Error(), "failed to generate session token")
	s.Nil(resp)
}
