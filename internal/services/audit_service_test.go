package services

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"eventhub/internal/models"
	"eventhub/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// AuditServiceTestSuite is the test suite for AuditService
type AuditServiceTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockRepo *repository_mocks.MockAuditLogRepositoryInterface
	service  AuditServiceInterface
}

func (s *AuditServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = repository_mocks.NewMockAuditLogRepositoryInterface(s.ctrl)
	s.service = NewAuditService(s.mockRepo, slog.Default())
}

func (s *AuditServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestAuditServiceSuite(t *testing.T) {
	suite.Run(t, new(AuditServiceTestSuite))
}

func (s *AuditServiceTestSuite) TestValidateActivityType() {
	valid := []string{
		models.AuditActionLogin,
		models.AuditActionEventCreated,
		models.AuditActionSalesSaved,
		models.AuditActionSalesBlocked,
		models.AuditActionSheetImported,
	}
	for _, action := range valid {
		s.NoError(ValidateActivityType(action), action)
	}

	s.Error(ValidateActivityType("invalid_action"))
	s.Error(ValidateActivityType(""))
}

func (s *AuditServiceTestSuite) TestCreateAuditLog_ValidLog() {
	log := &models.AuditLog{
		ActorEmail: " Jo@Example.com ",
		Action:     models.AuditActionEventCreated,
		Resource:   "event",
		ResourceID: "EVT-20250607-ABC",
	}

	s.mockRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(l *models.AuditLog) error {
			l.ID = uuid.New()
			return nil
		}).
		Times(1)

	err := s.service.CreateAuditLog(log)
	s.NoError(err)
	s.NotEqual(uuid.Nil, log.ID)
	s.Equal("jo@example.com", log.ActorEmail)
}

func (s *AuditServiceTestSuite) TestCreateAuditLog_NilLog() {
	err := s.service.CreateAuditLog(nil)
	s.ErrorIs(err, ErrInvalidAuditLog)
}

func (s *AuditServiceTestSuite) TestCreateAuditLog_InvalidActivityType() {
	err := s.service.CreateAuditLog(&models.AuditLog{Action: "invalid_action", Resource: "event"})
	s.Error(err)
}

func (s *AuditServiceTestSuite) TestCreateAuditLog_MissingResource() {
	err := s.service.CreateAuditLog(&models.AuditLog{Action: models.AuditActionLogin})
	s.ErrorIs(err, ErrInvalidResource)
}

func (s *AuditServiceTestSuite) TestCreateAuditLog_RepositoryError() {
	s.mockRepo.EXPECT().Create(gomock.Any()).Return(errors.New("database error")).Times(1)

	err := s.service.CreateAuditLog(&models.AuditLog{Action: models.AuditActionLogin, Resource: "staff"})
	s.Error(err)
	s.Contains(err.Error(), "failed to create audit log")
}

func (s *AuditServiceTestSuite) TestRecord_SwallowsErrors() {
	s.mockRepo.EXPECT().Create(gomock.Any()).Return(errors.New("database error")).Times(1)

	s.NotPanics(func() {
		s.service.Record("jo@example.com", models.AuditActionReportSaved, "event", "EVT-1", nil)
	})
}

func (s *AuditServiceTestSuite) TestRecord_WritesEntry() {
	s.mockRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(l *models.AuditLog) error {
		s.Equal("jo@example.com", l.ActorEmail)
		s.Equal(models.AuditActionStaffAssigned, l.Action)
		s.Equal("event", l.Resource)
		s.Equal("EVT-1", l.ResourceID)
		s.Equal("Sam Casual", l.Metadata["staff_name"])
		return nil
	}).Times(1)

	s.service.Record("jo@example.com", models.AuditActionStaffAssigned, "event", "EVT-1", models.AuditMetadata{"staff_name": "Sam Casual"})
}

func (s *AuditServiceTestSuite) TestGetActorActivity() {
	logs := []*models.AuditLog{{Action: models.AuditActionLogin, ActorEmail: "jo@example.com"}}
	s.mockRepo.EXPECT().GetByActor("jo@example.com", 0, 20).Return(logs, int64(1), nil).Times(1)

	result, total, err := s.service.GetActorActivity("JO@example.com", 0, 20)
	s.NoError(err)
	s.Equal(int64(1), total)
	s.Len(result, 1)
}

func (s *AuditServiceTestSuite) TestGetActorActivity_InvalidActor() {
	_, _, err := s.service.GetActorActivity("not-an-email", 0, 20)
	s.ErrorIs(err, ErrInvalidActor)

	_, _, err = s.service.GetActorActivity("", 0, 20)
	s.ErrorIs(err, ErrInvalidActor)
}

func (s *AuditServiceTestSuite) TestGetResourceHistory() {
	s.mockRepo.EXPECT().GetByResource("event", "EVT-1", 20, 20).Return([]*models.AuditLog{}, int64(25), nil).Times(1)

	result, total, err := s.service.GetResourceHistory("event", "EVT-1", 20, 20)
	s.NoError(err)
	s.Equal(int64(25), total)
	s.Empty(result)

	_, _, err = s.service.GetResourceHistory("", "EVT-1", 0, 20)
	s.ErrorIs(err, ErrInvalidResource)
}

func (s *AuditServiceTestSuite) TestGetActionHistory() {
	s.mockRepo.EXPECT().GetByAction(models.AuditActionSalesBlocked, 0, 50).Return(nil, int64(0), nil).Times(1)

	_, _, err := s.service.GetActionHistory(models.AuditActionSalesBlocked, 0, 50)
	s.NoError(err)

	_, _, err = s.service.GetActionHistory("bogus", 0, 50)
	s.Error(err)
}

func (s *AuditServiceTestSuite) TestGetActivityBetween() {
	from := time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)
	s.mockRepo.EXPECT().GetByTimeRange(from, to, 0, 20).Return(nil, int64(4), nil).Times(1)

	_, total, err := s.service.GetActivityBetween(from, to, 0, 20)
	s.NoError(err)
	s.Equal(int64(4), total)

	_, _, err = s.service.GetActivityBetween(to, from, 0, 20)
	s.ErrorIs(err, ErrInvalidRange)

	_, _, err = s.service.GetActivityBetween(from, from, 0, 20)
	s.ErrorIs(err, ErrInvalidRange)
}

func (s *AuditServiceTestSuite) TestPrune() {
	before := time.Now().UTC().Add(-30 * 24 * time.Hour)
	s.mockRepo.EXPECT().
		DeleteBefore(gomock.Any()).
		DoAndReturn(func(cutoff time.Time) (int64, error) {
			s.WithinDuration(before, cutoff, time.Minute)
			return 12, nil
		}).
		Times(1)

	deleted, err := s.service.Prune(30 * 24 * time.Hour)
	s.NoError(err)
	s.Equal(int64(12), deleted)
}

func (s *AuditServiceTestSuite) TestPrune_Disabled() {
	deleted, err := s.service.Prune(0)
	s.NoError(err)
	s.Zero(deleted)
}

func (s *AuditServiceTestSuite) TestPrune_RepositoryError() {
	s.mockRepo.EXPECT().DeleteBefore(gomock.Any()).Return(int64(0), errors.New("db down")).Times(1)

	_, err := s.service.Prune(time.Hour)
	s.Error(err)
}
