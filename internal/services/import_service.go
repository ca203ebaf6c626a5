package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"eventhub/internal/dto"
	"eventhub/internal/models"
	"eventhub/internal/repositories"
	"eventhub/internal/sheets"

	"github.com/shopspring/decimal"
)

// errRowPresent marks a row that is already stored; it is skipped without an error message
var errRowPresent = errors.New("row already present")

// ImportRepositories are the stores a workbook import writes to
type ImportRepositories struct {
	Staff       repositories.StaffRepositoryInterface
	Profiles    repositories.StaffProfileRepositoryInterface
	Events      repositories.EventRepositoryInterface
	Reports     repositories.ReportRepositoryInterface
	Assignments repositories.AssignmentRepositoryInterface
	Sales       repositories.SalesRepositoryInterface
}

// ImportService loads the legacy spreadsheet export. Every recognised sheet is
// upserted so the same workbook can be imported more than once.
type ImportService struct {
	repos        ImportRepositories
	breaker      CircuitBreakerConfig
	pinService   PinServiceInterface
	auditService AuditServiceInterface
	auditLogger  AuditLoggerInterface
	metrics      MetricsRecorderInterface
	logger       *slog.Logger
}

func NewImportService(
	repos ImportRepositories,
	breaker CircuitBreakerConfig,
	pinService PinServiceInterface,
	auditService AuditServiceInterface,
	auditLogger AuditLoggerInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) ImportServiceInterface {
	return &ImportService{
		repos:        repos,
		breaker:      breaker,
		pinService:   pinService,
		auditService: auditService,
		auditLogger:  auditLogger,
		metrics:      metrics,
		logger:       logger,
	}
}

// importRun carries per-import lookups so each event is checked once
type importRun struct {
	events   map[string]*models.Event
	contacts map[string]map[string]bool
	breaker  CircuitBreakerInterface
}

// store runs a repository call through the run's breaker
func (r *importRun) store(fn func() error) error {
	return r.breaker.Call(fn)
}

type rowImporter func(run *importRun, row sheets.Row) error

// Import upserts every recognised sheet in dependency order and counts the rows per sheet
func (s *ImportService) Import(ctx context.Context, book *sheets.Workbook, actor string) (*dto.ImportSummary, error) {
	if book == nil {
		return nil, errors.New("workbook cannot be nil")
	}

	start := time.Now()
	summary := &dto.ImportSummary{Source: book.Source}
	run := &importRun{
		events:   make(map[string]*models.Event),
		contacts: make(map[string]map[string]bool),
		breaker:  NewCircuitBreaker(s.breaker),
	}

	importers := map[string]rowImporter{
		sheets.SheetStaff:            s.importStaff,
		sheets.SheetStaffDatabase:    s.importProfile,
		sheets.SheetEvents:           s.importEvent,
		sheets.SheetEventFinancials:  s.importFinancials,
		sheets.SheetEventContacts:    s.importContact,
		sheets.SheetLogisticsDetails: s.importLogistics,
		sheets.SheetEventReports:     s.importReport,
		sheets.SheetEventStaffing:    s.importAssignment,
		sheets.SheetEventSales:       s.importSales,
	}

	for _, sheet := range book.Sheets {
		if _, ok := importers[sheet.Name]; !ok {
			summary.Unrecognised = append(summary.Unrecognised, sheet.Name)
		}
	}

	for _, name := range sheets.ImportOrder {
		sheet, ok := book.Sheet(name)
		if !ok {
			continue
		}

		if err := ctx.Err(); err != nil {
			return summary, err
		}

		result, err := s.importSheet(run, sheet, importers[name])
		summary.Sheets = append(summary.Sheets, result)
		if err != nil {
			s.logger.ErrorContext(ctx, "import stopped",
				"source", book.Source,
				"sheet", name,
				"error", err)
			return summary, err
		}

		s.logger.InfoContext(ctx, "sheet imported",
			"source", book.Source,
			"sheet", name,
			"imported", result.Imported,
			"skipped", result.Skipped)
	}

	imported, skipped := summary.Total()
	elapsed := time.Since(start)

	s.auditService.Record(actor, models.AuditActionSheetImported, "import", book.Source, models.AuditMetadata{
		"imported": imported,
		"skipped":  skipped,
		"sheets":   len(summary.Sheets),
	})
	s.auditLogger.LogSheetImported(ctx, book.Source, imported, skipped, elapsed.Milliseconds())
	s.metrics.RecordProcessingTime("sheet_import", elapsed)

	return summary, nil
}

// importSheet imports every row of one sheet. It stops early only when the breaker opens.
func (s *ImportService) importSheet(run *importRun, sheet *sheets.Sheet, importer rowImporter) (dto.SheetResult, error) {
	result := dto.SheetResult{Sheet: sheet.Name}

	for _, row := range sheet.Rows {
		err := importer(run, row)
		switch {
		case errors.Is(err, ErrCircuitBreakerOpen):
			result.Errors = append(result.Errors, rowError(row, err))
			return result, err
		case err == nil:
			result.Imported++
			s.metrics.IncrementCounter("import_row", map[string]string{"sheet": sheet.Name, "status": "imported"})
		case errors.Is(err, errRowPresent):
			result.Skipped++
			s.metrics.IncrementCounter("import_row", map[string]string{"sheet": sheet.Name, "status": "present"})
		default:
			result.Skipped++
			result.Errors = append(result.Errors, rowError(row, err))
			s.metrics.IncrementCounter("import_row", map[string]string{"sheet": sheet.Name, "status": "skipped"})
		}
	}

	return result, nil
}

func rowError(row sheets.Row, err error) string {
	msg := err.Error()
	prefix := "row " + strconv.Itoa(row.Number)
	if strings.HasPrefix(msg, prefix) {
		return msg
	}
	return prefix + ": " + msg
}

func (s *ImportService) importStaff(run *importRun, row sheets.Row) error {
	email := models.NormalizeEmail(row.String("email"))
	if email == "" {
		return errors.New("email is required")
	}

	pin := row.Pin("pin")
	if pin != "" && len(pin) < DefaultPinLength {
		// spreadsheets store PINs as numbers and drop leading zeros
		pin = strings.Repeat("0", DefaultPinLength-len(pin)) + pin
	}
	hash, err := s.pinService.HashPin(pin)
	if err != nil {
		return err
	}

	role := row.String("role")
	if role == "" {
		role = models.RoleStaff
	}

	staff := &models.Staff{
		Email:     email,
		Name:      row.String("name"),
		Role:      role,
		PinHash:   hash,
		StaffType: row.String("type"),
		Phone:     row.Phone("phone"),
	}
	return run.store(func() error { return s.repos.Staff.Upsert(staff) })
}

func (s *ImportService) importProfile(run *importRun, row sheets.Row) error {
	name := row.String("staff_name")
	if name == "" {
		return models.ErrStaffNameRequired
	}

	rate, err := row.Decimal("hourly_rate")
	if err != nil {
		return err
	}

	rating := decimal.NewFromInt(models.MaxRating)
	if row.String("rating") != "" {
		if rating, err = row.Decimal("rating"); err != nil {
			return err
		}
	}

	profile := &models.StaffProfile{
		StaffName:  name,
		Phone:      row.Phone("phone"),
		Address:    row.String("address"),
		HourlyRate: rate,
		Skills:     row.String("skills"),
		Rating:     rating,
		TFN:        row.String("tfn"),
	}
	return run.store(func() error { return s.repos.Profiles.Upsert(profile) })
}

func (s *ImportService) importEvent(run *importRun, row sheets.Row) error {
	date, ok, err := row.Date("date")
	if err != nil {
		return err
	}
	if !ok {
		return errors.New("date is required")
	}

	endDate, ok, err := row.Date("end_date")
	if err != nil {
		return err
	}
	if !ok {
		endDate = date
	}

	status := row.String("status")
	if status == "" {
		status = models.EventStatusPlanned
	}

	event := &models.Event{
		EventID:       row.String("event_id"),
		Date:          date,
		EndDate:       endDate,
		Venue:         row.String("venue"),
		EventType:     row.String("event_type"),
		Address:       row.String("address"),
		Status:        status,
		OrganiserName: row.String("organiser_name"),
		Notes:         row.String("notes"),
		LastEditedBy:  row.String("last_edited_by"),
	}
	if event.EventID == "" {
		event.EventID = models.GenerateEventID(event.Date, event.Venue)
	}
	if err := event.Validate(); err != nil {
		return err
	}

	if err := run.store(func() error { return s.repos.Events.Upsert(event) }); err != nil {
		return err
	}

	run.events[event.EventID] = event
	return nil
}

func (s *ImportService) importFinancials(run *importRun, row sheets.Row) error {
	eventID, err := s.knownEvent(run, row)
	if err != nil {
		return err
	}

	financials := &models.EventFinancials{
		EventID:         eventID,
		RentStatus:      row.String("rent_status"),
		DepositPaid:     row.Bool("deposit_paid"),
		DepositRefunded: row.Bool("deposit_refunded"),
		FeeStructure:    row.String("fee_structure"),
	}
	if financials.RentStatus == "" {
		financials.RentStatus = models.RentStatusDueLater
	}
	if financials.FeeStructure == "" {
		financials.FeeStructure = models.FeeFixedRent
	}

	if financials.Rent, err = row.Decimal("rent"); err != nil {
		return err
	}
	if financials.CommissionRate, err = row.Decimal("commission_rate"); err != nil {
		return err
	}

	depositColumn := "deposit"
	if row.String(depositColumn) == "" {
		depositColumn = "cleaning_deposit"
	}
	if financials.Deposit, err = row.Decimal(depositColumn); err != nil {
		return err
	}

	if financials.RentPaidDate, err = firstDate(row, "rent_paid_date", "payment_date"); err != nil {
		return err
	}
	if financials.RentDueDate, err = firstDate(row, "rent_due_date", "due_date"); err != nil {
		return err
	}

	if err := financials.Validate(); err != nil {
		return err
	}

	return run.store(func() error { return s.repos.Events.UpsertFinancials(financials) })
}

func (s *ImportService) importContact(run *importRun, row sheets.Row) error {
	eventID, err := s.knownEvent(run, row)
	if err != nil {
		return err
	}

	present, err := s.contactIDs(run, eventID)
	if err != nil {
		return err
	}

	contactID := row.String("contact_id")
	if contactID != "" && present[contactID] {
		return errRowPresent
	}

	prefMethod := row.String("pref_method")
	if prefMethod == "" {
		prefMethod = row.String("preferred_method")
	}

	contact := &models.EventContact{
		ContactID:  contactID,
		EventID:    eventID,
		Name:       row.String("name"),
		Phone:      row.Phone("phone"),
		Email:      models.NormalizeEmail(row.String("email")),
		Role:       row.String("role"),
		PrefMethod: prefMethod,
	}
	if err := run.store(func() error { return s.repos.Events.AddContact(contact) }); err != nil {
		return err
	}

	present[contact.ContactID] = true
	return nil
}

func (s *ImportService) importLogistics(run *importRun, row sheets.Row) error {
	eventID, err := s.knownEvent(run, row)
	if err != nil {
		return err
	}

	notes := row.String("notes")
	if notes == "" {
		notes = row.String("comments")
	}

	logistics := &models.LogisticsDetails{
		EventID:   eventID,
		SetupType: row.String("setup_type"),
		BumpIn:    orTBA(row.Time("bump_in")),
		BumpOut:   orTBA(row.Time("bump_out")),
		Parking:   row.String("parking"),
		Notes:     notes,
	}
	return run.store(func() error { return s.repos.Events.SaveLogistics(logistics) })
}

func (s *ImportService) importReport(run *importRun, row sheets.Row) error {
	eventID, err := s.knownEvent(run, row)
	if err != nil {
		return err
	}

	day, ok, err := row.Date("report_date")
	if err != nil {
		return err
	}
	if !ok {
		return models.ErrReportDateNeeded
	}

	report := models.DefaultEventReport(eventID, day)
	if weather := row.String("weather"); weather != "" {
		report.Weather = weather
	}
	if t := row.Time("time_leave"); t != "" {
		report.TimeLeave = t
	}
	if t := row.Time("time_reach"); t != "" {
		report.TimeReach = t
	}
	if report.OtherStalls, err = row.Int("other_stalls"); err != nil {
		return err
	}
	report.WaterAccess = row.Bool("water_access")
	report.PowerAccess = row.Bool("power_access")
	report.GeneralComments = row.String("general_comments")
	report.SubmittedBy = row.String("submitted_by")

	if err := report.Validate(); err != nil {
		return err
	}

	return run.store(func() error { return s.repos.Reports.Upsert(&report) })
}

func (s *ImportService) importAssignment(run *importRun, row sheets.Row) error {
	eventID, err := s.knownEvent(run, row)
	if err != nil {
		return err
	}

	assignment := &models.StaffAssignment{
		EventID:       eventID,
		StaffName:     row.String("staff_name"),
		StartTime:     row.Time("start_time"),
		EndTime:       row.Time("end_time"),
		PaymentStatus: row.String("payment_status"),
		Type:          row.String("type"),
	}

	var assigned bool
	if err := run.store(func() (err error) {
		assigned, err = s.repos.Assignments.Exists(eventID, assignment.StaffName)
		return err
	}); err != nil {
		return err
	}
	if assigned {
		return errRowPresent
	}

	return run.store(func() error { return s.repos.Assignments.Create(assignment) })
}

// importSales appends a legacy takings row. Rows without category columns are
// stored with the whole gross as uncategorized so every stored row balances.
func (s *ImportService) importSales(run *importRun, row sheets.Row) error {
	eventID, err := s.knownEvent(run, row)
	if err != nil {
		return err
	}
	event := run.events[eventID]

	record := &models.SalesRecord{
		EventID:   eventID,
		VenueName: row.String("event_venue"),
	}
	if record.VenueName == "" && event != nil {
		record.VenueName = event.Venue
	}

	amounts := []struct {
		column string
		dst    *decimal.Decimal
	}{
		{"card_sales", &record.CardAmount},
		{"cash_sales", &record.CashAmount},
		{"quick_sales", &record.QuickAmount},
		{"food_sales", &record.FoodAmount},
		{"drinks_sales", &record.DrinksAmount},
		{"uncategorized_sales", &record.UncategorizedAmount},
		{"opening_float", &record.OpeningFloat},
		{"closing_float", &record.ClosingFloat},
	}
	for _, a := range amounts {
		if *a.dst, err = row.Decimal(a.column); err != nil {
			return err
		}
	}

	record.GrossTotal = record.CardAmount.Add(record.CashAmount)
	if row.String("total_revenue") != "" {
		total, err := row.Decimal("total_revenue")
		if err != nil {
			return err
		}
		if !total.Equal(record.GrossTotal) {
			return fmt.Errorf("total %s does not equal card plus cash %s", total.StringFixed(2), record.GrossTotal.StringFixed(2))
		}
	}
	if record.CategorySum().IsZero() {
		record.UncategorizedAmount = record.GrossTotal
	}

	day, err := firstDate(row, "record_date", "date", "event_date")
	if err != nil {
		return err
	}
	switch {
	case day != nil:
		record.RecordDate = *day
	case event != nil:
		record.RecordDate = event.Date
	default:
		return errors.New("record date is required")
	}

	var existing []*models.SalesRecord
	if err := run.store(func() (err error) {
		existing, err = s.repos.Sales.ListByEvent(eventID, &record.RecordDate)
		return err
	}); err != nil {
		return err
	}
	for _, r := range existing {
		if r.CardAmount.Equal(record.CardAmount) && r.CashAmount.Equal(record.CashAmount) && r.GrossTotal.Equal(record.GrossTotal) {
			return errRowPresent
		}
	}

	return run.store(func() error { return s.repos.Sales.Append(record) })
}

// knownEvent returns the row's event id once the event is known to exist
func (s *ImportService) knownEvent(run *importRun, row sheets.Row) (string, error) {
	eventID := row.String("event_id")
	if eventID == "" {
		return "", models.ErrEventIDRequired
	}

	if _, ok := run.events[eventID]; ok {
		return eventID, nil
	}

	var event *models.Event
	err := run.store(func() (err error) {
		event, err = s.repos.Events.GetByID(eventID)
		if errors.Is(err, repositories.ErrEventNotFound) {
			// a missing event is a row problem, not a store failure
			return nil
		}
		return err
	})
	if err != nil {
		return "", err
	}
	if event == nil {
		return "", fmt.Errorf("unknown event %s", eventID)
	}

	run.events[eventID] = event
	return eventID, nil
}

func (s *ImportService) contactIDs(run *importRun, eventID string) (map[string]bool, error) {
	if ids, ok := run.contacts[eventID]; ok {
		return ids, nil
	}

	var contacts []*models.EventContact
	if err := run.store(func() (err error) {
		contacts, err = s.repos.Events.ListContacts(eventID)
		return err
	}); err != nil {
		return nil, err
	}

	ids := make(map[string]bool, len(contacts))
	for _, c := range contacts {
		ids[c.ContactID] = true
	}
	run.contacts[eventID] = ids
	return ids, nil
}

func firstDate(row sheets.Row, columns ...string) (*time.Time, error) {
	for _, column := range columns {
		t, ok, err := row.Date(column)
		if err != nil {
			return nil, err
		}
		if ok {
			return &t, nil
		}
	}
	return nil, nil
}

func orTBA(t string) string {
	if t == "" {
		return models.TimeTBA
	}
	return strings.ToUpper(t)
}
