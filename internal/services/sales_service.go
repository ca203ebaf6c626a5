package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"eventhub/internal/dto"
	"eventhub/internal/models"
	"eventhub/internal/reconciliation"
	"eventhub/internal/repositories"
)

var ErrNoShortfall = errors.New("categories are not short of the gross total")

// SalesService runs the balancing calculator and stores balanced takings
type SalesService struct {
	eventRepo    repositories.EventRepositoryInterface
	salesRepo    repositories.SalesRepositoryInterface
	auditService AuditServiceInterface
	auditLogger  AuditLoggerInterface
	metrics      MetricsRecorderInterface
	logger       *slog.Logger
}

func NewSalesService(
	eventRepo repositories.EventRepositoryInterface,
	salesRepo repositories.SalesRepositoryInterface,
	auditService AuditServiceInterface,
	auditLogger AuditLoggerInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) SalesServiceInterface {
	return &SalesService{
		eventRepo:    eventRepo,
		salesRepo:    salesRepo,
		auditService: auditService,
		auditLogger:  auditLogger,
		metrics:      metrics,
		logger:       logger,
	}
}

// Evaluate recomputes totals, status, message, autofill offer and the save gate for a form
func (s *SalesService) Evaluate(eventID string, form reconciliation.FormState) (reconciliation.Evaluation, error) {
	if err := s.requireEvent(eventID); err != nil {
		return reconciliation.Evaluation{}, err
	}
	if err := form.Validate(); err != nil {
		return reconciliation.Evaluation{}, err
	}
	return form.Evaluate(), nil
}

// Autofill puts the shortfall into the uncategorized bucket
func (s *SalesService) Autofill(eventID string, form reconciliation.FormState) (reconciliation.FormState, reconciliation.Evaluation, error) {
	if err := s.requireEvent(eventID); err != nil {
		return form, reconciliation.Evaluation{}, err
	}
	if err := form.Validate(); err != nil {
		return form, reconciliation.Evaluation{}, err
	}

	next, ok := form.ApplyAutofill()
	if !ok {
		return form, form.Evaluate(), ErrNoShortfall
	}
	return next, next.Evaluate(), nil
}

// Save re-runs the save gate and appends one sales row for the trading day.
// A blocked or failed save hands back the submitted form unchanged.
func (s *SalesService) Save(ctx context.Context, eventID string, req *dto.SaveSalesRequest, actor string) (*dto.SaveSalesResponse, error) {
	start := time.Now()

	day, err := models.ParseDate(req.RecordDate)
	if err != nil {
		return nil, fmt.Errorf("invalid record date: %w", err)
	}

	event, err := s.eventRepo.GetByID(eventID)
	if err != nil {
		return nil, err
	}
	if !event.IsReportingDay(day) {
		return nil, ErrNotReportingDay
	}

	var record *models.SalesRecord
	next, err := req.FormState.Submit(func(form reconciliation.FormState) error {
		balance := form.Balance()
		record = &models.SalesRecord{
			EventID:             eventID,
			RecordDate:          day,
			VenueName:           event.Venue,
			CardAmount:          form.Card,
			CashAmount:          form.Cash,
			GrossTotal:          balance.Gross,
			QuickAmount:         form.Quick,
			FoodAmount:          form.Food,
			DrinksAmount:        form.Drinks,
			UncategorizedAmount: form.Uncategorized,
			OpeningFloat:        req.OpeningFloat,
			ClosingFloat:        req.ClosingFloat,
			RecordedBy:          actor,
		}
		return s.salesRepo.Append(record)
	})

	var blocked *reconciliation.BlockedError
	switch {
	case errors.As(err, &blocked):
		s.auditService.Record(actor, models.AuditActionSalesBlocked, "event", eventID, models.AuditMetadata{
			"gross":        blocked.Evaluation.Balance.Gross.StringFixed(2),
			"category_sum": blocked.Evaluation.Balance.CategorySum.StringFixed(2),
			"difference":   blocked.Evaluation.Balance.Difference.StringFixed(2),
		})
		s.auditLogger.LogSalesBlocked(ctx, eventID, blocked.Evaluation)
		s.metrics.IncrementCounter("sales_blocked", nil)
		return nil, err
	case errors.Is(err, reconciliation.ErrPersistFailed):
		s.auditLogger.LogSalesPersistFailed(ctx, eventID, err.Error())
		s.metrics.IncrementCounter("sales_persist_failed", nil)
		return nil, err
	case err != nil:
		return nil, err
	}

	s.auditService.Record(actor, models.AuditActionSalesSaved, "event", eventID, models.AuditMetadata{
		"record_id":   record.ID.String(),
		"record_date": day.Format(models.DateLayout),
		"gross":       record.GrossTotal.StringFixed(2),
	})
	s.auditLogger.LogSalesSaved(ctx, record)
	s.metrics.IncrementCounter("sales_saved", nil)
	s.metrics.RecordProcessingTime("sales_save", time.Since(start))
	s.metrics.RecordGauge("sales_gross", record.GrossTotal.InexactFloat64(), nil)

	return &dto.SaveSalesResponse{Record: record, Form: next}, nil
}

// Summary lists the stored rows with the day's gross, when a day is given, and the event-to-date gross
func (s *SalesService) Summary(eventID string, day *time.Time) (*dto.SalesSummary, error) {
	if err := s.requireEvent(eventID); err != nil {
		return nil, err
	}

	records, err := s.salesRepo.ListByEvent(eventID, day)
	if err != nil {
		return nil, err
	}

	summary := &dto.SalesSummary{Records: records}

	if day != nil {
		dayGross, err := s.salesRepo.GrossTotal(eventID, day)
		if err != nil {
			return nil, err
		}
		summary.DayGross = &dayGross
	}

	if summary.EventGross, err = s.salesRepo.GrossTotal(eventID, nil); err != nil {
		return nil, err
	}

	return summary, nil
}

func (s *SalesService) requireEvent(eventID string) error {
	exists, err := s.eventRepo.Exists(eventID)
	if err != nil {
		return err
	}
	if !exists {
		return repositories.ErrEventNotFound
	}
	return nil
}
