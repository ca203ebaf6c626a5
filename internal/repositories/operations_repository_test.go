package repositories

import (
	"testing"
	"time"

	"eventhub/internal/database"
	"eventhub/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func TestOperationsRepositories(t *testing.T) {
	suite.Run(t, new(OperationsRepositorySuite))
}

// OperationsRepositorySuite covers the per-day tables hanging off an event: reports, staffing and sales
type OperationsRepositorySuite struct {
	suite.Suite
	db          *database.DB
	event       *models.Event
	reports     ReportRepositoryInterface
	assignments AssignmentRepositoryInterface
	sales       SalesRepositoryInterface
}

func (s *OperationsRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.reports = NewReportRepository(s.db.DB)
	s.assignments = NewAssignmentRepository(s.db.DB)
	s.sales = NewSalesRepository(s.db.DB)
	s.event = database.CreateTestEvent(s.T(), s.db, "Bondi Markets", "2026-03-14", "2026-03-15")
}

func (s *OperationsRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *OperationsRepositorySuite) TestReport_UpsertReplacesSameDay() {
	day := mustDate("2026-03-14")

	_, err := s.reports.Get(s.event.EventID, day)
	s.ErrorIs(err, ErrReportNotFound)

	report := models.DefaultEventReport(s.event.EventID, day)
	report.OtherStalls = 12
	s.NoError(s.reports.Upsert(&report))
	firstID := report.ID

	second := models.DefaultEventReport(s.event.EventID, day.Add(9*time.Hour))
	second.Weather = models.WeatherRainy
	second.WaterAccess = true
	s.NoError(s.reports.Upsert(&second))
	s.Equal(firstID, second.ID)

	stored, err := s.reports.Get(s.event.EventID, day)
	s.NoError(err)
	s.Equal(models.WeatherRainy, stored.Weather)
	s.True(stored.WaterAccess)
	s.Equal(0, stored.OtherStalls)

	all, err := s.reports.ListByEvent(s.event.EventID)
	s.NoError(err)
	s.Len(all, 1)
}

func (s *OperationsRepositorySuite) TestReport_LatestWeather() {
	first := models.DefaultEventReport(s.event.EventID, mustDate("2026-03-14"))
	s.NoError(s.reports.Upsert(&first))

	second := models.DefaultEventReport(s.event.EventID, mustDate("2026-03-15"))
	second.Weather = models.WeatherWindy
	s.NoError(s.reports.Upsert(&second))

	weather, err := s.reports.LatestWeather([]string{s.event.EventID, "other"})
	s.NoError(err)
	s.Equal(map[string]string{s.event.EventID: models.WeatherWindy}, weather)

	empty, err := s.reports.LatestWeather(nil)
	s.NoError(err)
	s.Empty(empty)
}

func (s *OperationsRepositorySuite) TestAssignment_Lifecycle() {
	assignment := &models.StaffAssignment{EventID: s.event.EventID, StaffName: "Alex Nguyen", StartTime: "22:00", EndTime: "06:00"}
	s.NoError(s.assignments.Create(assignment))
	s.Equal(models.PaymentStatusPending, assignment.PaymentStatus)
	s.Equal(models.AssignmentTypeStandard, assignment.Type)

	err := s.assignments.Create(&models.StaffAssignment{EventID: s.event.EventID, StaffName: "Alex Nguyen"})
	s.ErrorIs(err, ErrAlreadyAssigned)

	exists, err := s.assignments.Exists(s.event.EventID, "Alex Nguyen")
	s.NoError(err)
	s.True(exists)

	list, err := s.assignments.ListByEvent(s.event.EventID)
	s.NoError(err)
	s.Len(list, 1)

	s.NoError(s.assignments.Delete(s.event.EventID, "Alex Nguyen"))
	s.ErrorIs(s.assignments.Delete(s.event.EventID, "Alex Nguyen"), ErrAssignmentNotFound)
}

func (s *OperationsRepositorySuite) record(day string, card, cash string) *models.SalesRecord {
	c, k := decimal.RequireFromString(card), decimal.RequireFromString(cash)
	gross := c.Add(k)
	record := &models.SalesRecord{
		EventID:             s.event.EventID,
		RecordDate:          mustDate(day),
		VenueName:           s.event.Venue,
		CardAmount:          c,
		CashAmount:          k,
		GrossTotal:          gross,
		UncategorizedAmount: gross,
	}
	s.Require().NoError(s.sales.Append(record))
	return record
}

func (s *OperationsRepositorySuite) TestSales_AppendOnly() {
	first := s.record("2026-03-14", "150.00", "50.00")
	second := s.record("2026-03-14", "150.00", "50.00")
	s.NotEqual(first.ID, second.ID, "identical saves append two rows")

	first.CardAmount = decimal.NewFromInt(1)
	err := s.db.Save(first).Error
	s.Error(err)

	rows, err := s.sales.ListByEvent(s.event.EventID, nil)
	s.NoError(err)
	s.Len(rows, 2)
	s.True(rows[0].CardAmount.Equal(decimal.NewFromInt(150)))
}

func (s *OperationsRepositorySuite) TestSales_Totals() {
	s.record("2026-03-14", "150.00", "50.00")
	s.record("2026-03-15", "80.25", "19.75")

	day := mustDate("2026-03-15")
	dayRows, err := s.sales.ListByEvent(s.event.EventID, &day)
	s.NoError(err)
	s.Len(dayRows, 1)

	dayTotal, err := s.sales.GrossTotal(s.event.EventID, &day)
	s.NoError(err)
	s.True(dayTotal.Equal(decimal.NewFromInt(100)), dayTotal.String())

	eventTotal, err := s.sales.GrossTotal(s.event.EventID, nil)
	s.NoError(err)
	s.True(eventTotal.Equal(decimal.NewFromInt(300)), eventTotal.String())

	none, err := s.sales.GrossTotal("missing", nil)
	s.NoError(err)
	s.True(none.IsZero())

	all, err := s.sales.TotalRevenue()
	s.NoError(err)
	s.True(all.Equal(decimal.NewFromInt(300)))
}

func (s *OperationsRepositorySuite) TestSales_RejectsUnbalancedGross() {
	err := s.sales.Append(&models.SalesRecord{
		EventID:    s.event.EventID,
		RecordDate: mustDate("2026-03-14"),
		CardAmount: decimal.NewFromInt(10),
		GrossTotal: decimal.NewFromInt(20),
	})
	s.ErrorIs(err, models.ErrSalesGrossMismatch)
}
