package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"eventhub/internal/dto"
	"eventhub/internal/models"
	"eventhub/internal/repositories"
)

var ErrNotReportingDay = errors.New("date is not one of the event's days")

// ReportService keeps the one-per-day field report for each event day
type ReportService struct {
	eventRepo    repositories.EventRepositoryInterface
	reportRepo   repositories.ReportRepositoryInterface
	auditService AuditServiceInterface
	metrics      MetricsRecorderInterface
	logger       *slog.Logger
}

func NewReportService(
	eventRepo repositories.EventRepositoryInterface,
	reportRepo repositories.ReportRepositoryInterface,
	auditService AuditServiceInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) ReportServiceInterface {
	return &ReportService{
		eventRepo:    eventRepo,
		reportRepo:   reportRepo,
		auditService: auditService,
		metrics:      metrics,
		logger:       logger,
	}
}

// Get returns the stored report for the day, or the form defaults when none has been saved
func (s *ReportService) Get(eventID string, day time.Time) (*models.EventReport, error) {
	if _, err := s.reportingEvent(eventID, day); err != nil {
		return nil, err
	}

	report, err := s.reportRepo.Get(eventID, day)
	if err != nil {
		if errors.Is(err, repositories.ErrReportNotFound) {
			defaults := models.DefaultEventReport(eventID, day)
			return &defaults, nil
		}
		return nil, err
	}

	return report, nil
}

// Save writes the report for the day, replacing any earlier one
func (s *ReportService) Save(ctx context.Context, eventID string, day time.Time, req *dto.ReportRequest, actor string) (*models.EventReport, error) {
	if _, err := s.reportingEvent(eventID, day); err != nil {
		return nil, err
	}

	report := &models.EventReport{
		EventID:         eventID,
		ReportDate:      day,
		Weather:         req.Weather,
		TimeLeave:       strings.TrimSpace(req.TimeLeave),
		TimeReach:       strings.TrimSpace(req.TimeReach),
		OtherStalls:     req.OtherStalls,
		WaterAccess:     req.WaterAccess,
		PowerAccess:     req.PowerAccess,
		GeneralComments: req.GeneralComments,
		SubmittedBy:     actor,
	}

	if err := s.reportRepo.Upsert(report); err != nil {
		return nil, err
	}

	s.auditService.Record(actor, models.AuditActionReportSaved, "event", eventID, models.AuditMetadata{
		"report_date": report.ReportDate.Format(models.DateLayout),
		"weather":     report.Weather,
	})
	s.metrics.IncrementCounter("report_saved", nil)
	s.logger.InfoContext(ctx, "daily report saved",
		"event_id", eventID,
		"report_date", report.ReportDate.Format(models.DateLayout),
		"actor", actor)

	return report, nil
}

func (s *ReportService) reportingEvent(eventID string, day time.Time) (*models.Event, error) {
	event, err := s.eventRepo.GetByID(eventID)
	if err != nil {
		return nil, err
	}
	if !event.IsReportingDay(day) {
		return nil, ErrNotReportingDay
	}
	return event, nil
}
