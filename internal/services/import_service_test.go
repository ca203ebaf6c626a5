package services

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"eventhub/internal/models"
	"eventhub/internal/repositories"
	"eventhub/internal/repositories/repository_mocks"
	"eventhub/internal/services/service_mocks"
	"eventhub/internal/sheets"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ImportServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	staffRepo    *repository_mocks.MockStaffRepositoryInterface
	profileRepo  *repository_mocks.MockStaffProfileRepositoryInterface
	eventRepo    *repository_mocks.MockEventRepositoryInterface
	reportRepo   *repository_mocks.MockReportRepositoryInterface
	assignRepo   *repository_mocks.MockAssignmentRepositoryInterface
	salesRepo    *repository_mocks.MockSalesRepositoryInterface
	pinService   *service_mocks.MockPinServiceInterface
	auditService *service_mocks.MockAuditServiceInterface
	auditLogger  *service_mocks.MockAuditLoggerInterface
	metrics      *service_mocks.MockMetricsRecorderInterface
	service      ImportServiceInterface
	ctx          context.Context
}

func (s *ImportServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.staffRepo = repository_mocks.NewMockStaffRepositoryInterface(s.ctrl)
	s.profileRepo = repository_mocks.NewMockStaffProfileRepositoryInterface(s.ctrl)
	s.eventRepo = repository_mocks.NewMockEventRepositoryInterface(s.ctrl)
	s.reportRepo = repository_mocks.NewMockReportRepositoryInterface(s.ctrl)
	s.assignRepo = repository_mocks.NewMockAssignmentRepositoryInterface(s.ctrl)
	s.salesRepo = repository_mocks.NewMockSalesRepositoryInterface(s.ctrl)
	s.pinService = service_mocks.NewMockPinServiceInterface(s.ctrl)
	s.auditService = service_mocks.NewMockAuditServiceInterface(s.ctrl)
	s.auditLogger = service_mocks.NewMockAuditLoggerInterface(s.ctrl)
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.ctx = context.Background()

	s.service = s.newService(CircuitBreakerConfig{MaxFailures: 3, ResetTimeout: time.Hour})

	s.metrics.EXPECT().IncrementCounter("import_row", gomock.Any()).AnyTimes()
	s.metrics.EXPECT().RecordProcessingTime("sheet_import", gomock.Any()).AnyTimes()
}

func (s *ImportServiceTestSuite) newService(breaker CircuitBreakerConfig) ImportServiceInterface {
	return NewImportService(ImportRepositories{
		Staff:       s.staffRepo,
		Profiles:    s.profileRepo,
		Events:      s.eventRepo,
		Reports:     s.reportRepo,
		Assignments: s.assignRepo,
		Sales:       s.salesRepo,
	}, breaker, s.pinService, s.auditService, s.auditLogger, s.metrics, slog.Default())
}

func (s *ImportServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestImportServiceSuite(t *testing.T) {
	suite.Run(t, new(ImportServiceTestSuite))
}

func (s *ImportServiceTestSuite) expectCompleted() {
	s.auditService.EXPECT().Record("admin@example.com", models.AuditActionSheetImported, "import", "legacy.xlsx", gomock.Any()).Times(1)
	s.auditLogger.EXPECT().LogSheetImported(gomock.Any(), "legacy.xlsx", gomock.Any(), gomock.Any(), gomock.Any()).Times(1)
}

func workbook(sheetList ...sheets.Sheet) *sheets.Workbook {
	return &sheets.Workbook{Source: "legacy.xlsx", Sheets: sheetList}
}

func sheet(name string, rows ...map[string]string) sheets.Sheet {
	sh := sheets.Sheet{Name: name}
	for i, values := range rows {
		sh.Rows = append(sh.Rows, sheets.NewRow(i+2, values))
	}
	return sh
}

func (s *ImportServiceTestSuite) TestImport_NilWorkbook() {
	_, err := s.service.Import(s.ctx, nil, "admin@example.com")
	s.Error(err)
}

func (s *ImportServiceTestSuite) TestImport_StaffPadsShortPins() {
	book := workbook(sheet(sheets.SheetStaff,
		map[string]string{"Email": "Jo@Example.com", "Pin": "42.0", "Role": "Manager", "Name": "Jo"},
		map[string]string{"Email": "", "Pin": "1234"},
	))

	s.pinService.EXPECT().HashPin("0042").Return("hashed", nil).Times(1)
	s.staffRepo.EXPECT().Upsert(gomock.Any()).DoAndReturn(func(st *models.Staff) error {
		s.Equal("jo@example.com", st.Email)
		s.Equal(models.RoleManager, st.Role)
		s.Equal("hashed", st.PinHash)
		return nil
	}).Times(1)
	s.expectCompleted()

	summary, err := s.service.Import(s.ctx, book, "admin@example.com")

	s.NoError(err)
	s.Require().Len(summary.Sheets, 1)
	s.Equal(1, summary.Sheets[0].Imported)
	s.Equal(1, summary.Sheets[0].Skipped)
	s.Require().Len(summary.Sheets[0].Errors, 1)
	s.Equal("row 3: email is required", summary.Sheets[0].Errors[0])
}

func (s *ImportServiceTestSuite) TestImport_EventsThenSales() {
	book := workbook(
		sheet("Mystery Tab"),
		sheet(sheets.SheetEventSales,
			map[string]string{"event_id": "20250607_SHOWGROUND", "EFTPOS": "$1,200.00", "Cash": "300", "Total": "1500"},
			map[string]string{"event_id": "20250607_SHOWGROUND", "card_sales": "100", "cash_sales": "50", "food_sales": "150", "record_date": "08/06/2025"},
			map[string]string{"event_id": "UNKNOWN", "card_sales": "1"},
		),
		sheet(sheets.SheetEvents,
			map[string]string{"event_id": "20250607_SHOWGROUND", "date": "45815", "end_date": "2025-06-08", "venue": "Showground", "event_type": "Market"},
		),
	)

	s.eventRepo.EXPECT().Upsert(gomock.Any()).DoAndReturn(func(e *models.Event) error {
		s.Equal("2025-06-07", e.Date.Format(models.DateLayout))
		s.Equal(models.EventStatusPlanned, e.Status)
		return nil
	}).Times(1)

	day1 := time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC)
	s.salesRepo.EXPECT().ListByEvent("20250607_SHOWGROUND", &day1).Return(nil, nil).Times(1)
	s.salesRepo.EXPECT().ListByEvent("20250607_SHOWGROUND", &day2).Return(nil, nil).Times(1)
	var appended []*models.SalesRecord
	s.salesRepo.EXPECT().Append(gomock.Any()).DoAndReturn(func(r *models.SalesRecord) error {
		appended = append(appended, r)
		return nil
	}).Times(2)
	s.eventRepo.EXPECT().GetByID("UNKNOWN").Return(nil, repositories.ErrEventNotFound).Times(1)
	s.expectCompleted()

	summary, err := s.service.Import(s.ctx, book, "admin@example.com")

	s.NoError(err)
	s.Equal([]string{"Mystery Tab"}, summary.Unrecognised)
	s.Require().Len(summary.Sheets, 2)
	s.Equal(sheets.SheetEvents, summary.Sheets[0].Sheet)

	sales := summary.Sheets[1]
	s.Equal(2, sales.Imported)
	s.Equal(1, sales.Skipped)
	s.Equal([]string{"row 4: unknown event UNKNOWN"}, sales.Errors)

	s.Require().Len(appended, 2)
	first := appended[0]
	s.True(first.GrossTotal.Equal(decimal.NewFromInt(1500)))
	s.True(first.UncategorizedAmount.Equal(decimal.NewFromInt(1500)))
	s.Equal("Showground", first.VenueName)
	s.Equal(day1, first.RecordDate)
	s.True(appended[1].FoodAmount.Equal(decimal.NewFromInt(150)))
	s.True(appended[1].UncategorizedAmount.IsZero())
}

func (s *ImportServiceTestSuite) TestImport_SalesDuplicatesAndMismatch() {
	eventID := "20250607_SHOWGROUND"
	event := &models.Event{EventID: eventID, Date: time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC), Venue: "Showground"}
	book := workbook(sheet(sheets.SheetEventSales,
		map[string]string{"event_id": eventID, "card_sales": "100", "cash_sales": "50"},
		map[string]string{"event_id": eventID, "card_sales": "100", "cash_sales": "50", "total_revenue": "200"},
	))

	s.eventRepo.EXPECT().GetByID(eventID).Return(event, nil).Times(1)
	s.salesRepo.EXPECT().ListByEvent(eventID, gomock.Any()).Return([]*models.SalesRecord{{
		CardAmount: decimal.NewFromInt(100), CashAmount: decimal.NewFromInt(50), GrossTotal: decimal.NewFromInt(150),
	}}, nil).Times(1)
	s.expectCompleted()

	summary, err := s.service.Import(s.ctx, book, "admin@example.com")

	s.NoError(err)
	result := summary.Sheets[0]
	s.Equal(0, result.Imported)
	s.Equal(2, result.Skipped)
	s.Require().Len(result.Errors, 1)
	s.Contains(result.Errors[0], "does not equal card plus cash")
}

func (s *ImportServiceTestSuite) TestImport_ContactsAndStaffingSkipPresentRows() {
	eventID := "E1"
	book := workbook(
		sheet(sheets.SheetEventContacts,
			map[string]string{"event_id": eventID, "contact_id": "CON_1", "name": "Pat"},
			map[string]string{"event_id": eventID, "contact_id": "CON_2", "name": "Lee", "preferred_method": "Email"},
			map[string]string{"event_id": eventID, "contact_id": "CON_2", "name": "Lee again"},
		),
		sheet(sheets.SheetEventStaffing,
			map[string]string{"event_id": eventID, "staff_name": "Sam", "start_time": "0.3333333", "end_time": "18:00:00"},
			map[string]string{"event_id": eventID, "staff_name": "Kim"},
		),
	)

	s.eventRepo.EXPECT().GetByID(eventID).Return(&models.Event{EventID: eventID}, nil).Times(1)
	s.eventRepo.EXPECT().ListContacts(eventID).Return([]*models.EventContact{{ContactID: "CON_1"}}, nil).Times(1)
	s.eventRepo.EXPECT().AddContact(gomock.Any()).DoAndReturn(func(c *models.EventContact) error {
		s.Equal("CON_2", c.ContactID)
		s.Equal("Email", c.PrefMethod)
		return nil
	}).Times(1)
	s.assignRepo.EXPECT().Exists(eventID, "Sam").Return(false, nil).Times(1)
	s.assignRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(a *models.StaffAssignment) error {
		s.Equal("08:00", a.StartTime)
		s.Equal("18:00", a.EndTime)
		return nil
	}).Times(1)
	s.assignRepo.EXPECT().Exists(eventID, "Kim").Return(true, nil).Times(1)
	s.expectCompleted()

	summary, err := s.service.Import(s.ctx, book, "admin@example.com")

	s.NoError(err)
	s.Require().Len(summary.Sheets, 2)
	contacts := summary.Sheets[0]
	s.Equal(1, contacts.Imported)
	s.Equal(2, contacts.Skipped)
	s.Empty(contacts.Errors)
	staffing := summary.Sheets[1]
	s.Equal(1, staffing.Imported)
	s.Equal(1, staffing.Skipped)
	s.Empty(staffing.Errors)
}

func (s *ImportServiceTestSuite) TestImport_FinancialsLogisticsReports() {
	eventID := "E1"
	book := workbook(
		sheet(sheets.SheetEventFinancials,
			map[string]string{"event_id": eventID, "rent": "350", "rent_status": "Paid", "cleaning_deposit": "100", "payment_date": "01/06/2025", "deposit_paid": "Yes"},
		),
		sheet(sheets.SheetLogisticsDetails,
			map[string]string{"event_id": eventID, "setup_type": "Marquee", "bump_in": "0.25", "comments": "Gate 3"},
		),
		sheet(sheets.SheetEventReports,
			map[string]string{"event_id": eventID, "report_date": "2025-06-07", "weather": "Windy", "other_stalls": "14.0", "power_access": "Yes"},
		),
	)

	s.eventRepo.EXPECT().GetByID(eventID).Return(&models.Event{EventID: eventID}, nil).Times(1)
	s.eventRepo.EXPECT().UpsertFinancials(gomock.Any()).DoAndReturn(func(f *models.EventFinancials) error {
		s.True(f.Deposit.Equal(decimal.NewFromInt(100)))
		s.True(f.DepositPaid)
		s.Equal(models.FeeFixedRent, f.FeeStructure)
		s.Require().NotNil(f.RentPaidDate)
		s.Equal("2025-06-01", f.RentPaidDate.Format(models.DateLayout))
		return nil
	}).Times(1)
	s.eventRepo.EXPECT().SaveLogistics(gomock.Any()).DoAndReturn(func(l *models.LogisticsDetails) error {
		s.Equal("06:00", l.BumpIn)
		s.Equal(models.TimeTBA, l.BumpOut)
		s.Equal("Gate 3", l.Notes)
		return nil
	}).Times(1)
	s.reportRepo.EXPECT().Upsert(gomock.Any()).DoAndReturn(func(r *models.EventReport) error {
		s.Equal(models.WeatherWindy, r.Weather)
		s.Equal(models.DefaultTimeLeave, r.TimeLeave)
		s.Equal(14, r.OtherStalls)
		s.True(r.PowerAccess)
		return nil
	}).Times(1)
	s.expectCompleted()

	summary, err := s.service.Import(s.ctx, book, "admin@example.com")

	s.NoError(err)
	imported, skipped := summary.Total()
	s.Equal(3, imported)
	s.Equal(0, skipped)
}

func (s *ImportServiceTestSuite) TestImport_ProfilesDefaultRating() {
	book := workbook(sheet(sheets.SheetStaffDatabase,
		map[string]string{"staff_name": "Sam Casual", "phone": "412345678", "hourly_rate": "32.5"},
		map[string]string{"staff_name": "Kim", "hourly_rate": "abc"},
	))

	s.profileRepo.EXPECT().Upsert(gomock.Any()).DoAndReturn(func(p *models.StaffProfile) error {
		s.Equal("0412345678", p.Phone)
		s.True(p.Rating.Equal(decimal.NewFromInt(5)))
		return nil
	}).Times(1)
	s.expectCompleted()

	summary, err := s.service.Import(s.ctx, book, "admin@example.com")

	s.NoError(err)
	s.Equal(1, summary.Sheets[0].Imported)
	s.Equal(1, summary.Sheets[0].Skipped)
	s.Contains(summary.Sheets[0].Errors[0], "row 3: hourly_rate")
}

func (s *ImportServiceTestSuite) TestImport_StopsWhenStoreKeepsFailing() {
	book := workbook(
		sheet(sheets.SheetStaffDatabase,
			map[string]string{"staff_name": "A"},
			map[string]string{"staff_name": "B"},
			map[string]string{"staff_name": "C"},
			map[string]string{"staff_name": "D"},
		),
		sheet(sheets.SheetEvents,
			map[string]string{"date": "2025-06-07", "venue": "Hall"},
		),
	)

	s.profileRepo.EXPECT().Upsert(gomock.Any()).Return(errors.New("connection reset")).Times(3)
	s.eventRepo.EXPECT().Upsert(gomock.Any()).Times(0)
	s.auditService.EXPECT().Record(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	summary, err := s.service.Import(s.ctx, book, "admin@example.com")

	s.ErrorIs(err, ErrCircuitBreakerOpen)
	s.Require().Len(summary.Sheets, 1)
	result := summary.Sheets[0]
	s.Equal(3, result.Skipped)
	s.Len(result.Errors, 4)
	s.Contains(result.Errors[3], "row 5")
}

func (s *ImportServiceTestSuite) TestImport_CancelledContext() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	summary, err := s.service.Import(ctx, workbook(sheet(sheets.SheetEvents, map[string]string{"venue": "Hall"})), "admin@example.com")

	s.ErrorIs(err, context.Canceled)
	s.Empty(summary.Sheets)
}
