package services

import (
	"context"
	"log/slog"
	"time"

	"eventhub/internal/dto"
	"eventhub/internal/models"
	"eventhub/internal/reconciliation"
)

type AuditLogger struct {
	logger *slog.Logger
}

func NewAuditLogger(logger *slog.Logger) AuditLoggerInterface {
	return &AuditLogger{
		logger: logger,
	}
}

func (al *AuditLogger) LogLogin(ctx context.Context, email, role string) {
	al.logger.InfoContext(ctx, "login succeeded",
		slog.String("event_type", "login"),
		slog.String("user_email", email),
		slog.String("user_role", role),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogLoginFailed(ctx context.Context, email, reason string) {
	al.logger.WarnContext(ctx, "login failed",
		slog.String("event_type", "login_failed"),
		slog.String("user_email", email),
		slog.String("reason", reason),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogEventCreated(ctx context.Context, eventID, venue, actor string) {
	al.logger.InfoContext(ctx, "event created",
		slog.String("event_type", "event_created"),
		slog.String("event_id", eventID),
		slog.String("venue", venue),
		slog.String("actor", actor),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogStaffAssigned(ctx context.Context, eventID, staffName string, advisory *dto.ShiftAdvisory) {
	attrs := []slog.Attr{
		slog.String("event_type", "staff_assigned"),
		slog.String("event_id", eventID),
		slog.String("staff_name", staffName),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	}

	if advisory != nil {
		attrs = append(attrs,
			slog.Float64("shift_hours", advisory.Hours),
			slog.Bool("long_shift", advisory.LongShift),
		)
	}

	al.logger.LogAttrs(ctx, slog.LevelInfo, "staff assigned", attrs...)
}

func (al *AuditLogger) LogSalesSaved(ctx context.Context, record *models.SalesRecord) {
	al.logger.InfoContext(ctx, "sales saved",
		slog.String("event_type", "sales_saved"),
		slog.String("sales_id", record.ID.String()),
		slog.String("event_id", record.EventID),
		slog.String("record_date", record.RecordDate.Format(models.DateLayout)),
		slog.String("gross_total", record.GrossTotal.StringFixed(2)),
		slog.String("recorded_by", record.RecordedBy),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogSalesBlocked(ctx context.Context, eventID string, eval reconciliation.Evaluation) {
	al.logger.WarnContext(ctx, "sales save blocked",
		slog.String("event_type", "sales_blocked"),
		slog.String("event_id", eventID),
		slog.String("status", string(eval.Status)),
		slog.String("gross_total", eval.Balance.Gross.StringFixed(2)),
		slog.String("difference", eval.Balance.Difference.StringFixed(2)),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogSalesPersistFailed(ctx context.Context, eventID string, errorMsg string) {
	al.logger.ErrorContext(ctx, "sales save failed",
		slog.String("event_type", "sales_persist_failed"),
		slog.String("event_id", eventID),
		slog.String("error", errorMsg),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogSheetImported(ctx context.Context, source string, imported, skipped int, durationMs int64) {
	al.logger.InfoContext(ctx, "spreadsheet imported",
		slog.String("event_type", "sheet_imported"),
		slog.String("source", source),
		slog.Int("imported", imported),
		slog.Int("skipped", skipped),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func getCorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	if correlationID, ok := ctx.Value("correlation_id").(string); ok {
		return correlationID
	}

	if requestID, ok := ctx.Value("request_id").(string); ok {
		return requestID
	}

	return ""
}
