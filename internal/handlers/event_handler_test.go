package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"eventhub/internal/dto"
	"eventhub/internal/models"
	"eventhub/internal/repositories"
	"eventhub/internal/services/service_mocks"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type EventHandlerTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	eventService *service_mocks.MockEventServiceInterface
	handler      *EventHandler
	e            *echo.Echo
}

func TestEventHandlerSuite(t *testing.T) {
	suite.Run(t, new(EventHandlerTestSuite))
}

func (s *EventHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.eventService = service_mocks.NewMockEventServiceInterface(s.ctrl)
	s.handler = NewEventHandler(s.eventService)
	s.e = newTestEcho()
}

func (s *EventHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *EventHandlerTestSuite) createRequest() map[string]interface{} {
	return map[string]interface{}{
		"date":            "2025-06-07",
		"venue":           "Rosehill Gardens",
		"event_type":      "Market",
		"fee_structure":   models.FeeFixedRent,
		"rent":            "250.00",
		"rent_status":     "Paid",
		"organiser_name":  gofakeit.Name(),
		"organiser_phone": "0412 345 678",
		"organiser_email": gofakeit.Email(),
	}
}

func (s *EventHandlerTestSuite) TestCreateEvent_Success() {
	event := &models.Event{EventID: "20250607_ROSEHILL_G", Venue: "Rosehill Gardens"}

	s.eventService.EXPECT().
		Create(gomock.Any(), gomock.Any(), "jo@example.com").
		DoAndReturn(func(_ context.Context, req *dto.CreateEventRequest, _ string) (*models.Event, error) {
			s.Equal("Rosehill Gardens", req.Venue)
			s.True(req.Rent.Equal(decimal.NewFromInt(250)))
			return event, nil
		}).
		Times(1)

	c, rec := newJSONContext(s.e, http.MethodPost, "/events", s.createRequest())
	withSession(c, "jo@example.com", models.RoleManager)

	s.NoError(s.handler.CreateEvent(c))
	s.Equal(http.StatusCreated, rec.Code)
	s.Contains(rec.Body.String(), "20250607_ROSEHILL_G")
}

func (s *EventHandlerTestSuite) TestCreateEvent_InvalidPhone() {
	body := s.createRequest()
	body["organiser_phone"] = "12345"

	c, _ := newJSONContext(s.e, http.MethodPost, "/events", body)
	withSession(c, "jo@example.com", models.RoleManager)

	s.Error(s.handler.CreateEvent(c))
}

func (s *EventHandlerTestSuite) TestCreateEvent_Conflict() {
	s.eventService.EXPECT().
		Create(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, repositories.ErrEventAlreadyExists).
		Times(1)

	c, rec := newJSONContext(s.e, http.MethodPost, "/events", s.createRequest())
	withSession(c, "jo@example.com", models.RoleManager)

	s.NoError(s.handler.CreateEvent(c))
	s.Equal(http.StatusConflict, rec.Code)
	s.Equal("EVENT_002", decodeError(rec).Error.Code)
}

func (s *EventHandlerTestSuite) TestCreateEvent_EndBeforeStart() {
	s.eventService.EXPECT().
		Create(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, models.ErrEndBeforeStart).
		Times(1)

	body := s.createRequest()
	body["end_date"] = "2025-06-01"
	c, rec := newJSONContext(s.e, http.MethodPost, "/events", body)
	withSession(c, "jo@example.com", models.RoleManager)

	s.NoError(s.handler.CreateEvent(c))
	s.Equal(http.StatusUnprocessableEntity, rec.Code)
	s.Equal("EVENT_003", decodeError(rec).Error.Code)
}

func (s *EventHandlerTestSuite) TestCreateEvent_NoSession() {
	c, rec := newJSONContext(s.e, http.MethodPost, "/events", s.createRequest())

	s.NoError(s.handler.CreateEvent(c))
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *EventHandlerTestSuite) TestHub() {
	hub := &dto.HubResponse{
		Upcoming: []dto.EventCard{{EventID: "20250607_ROSEHILL_G", BumpIn: models.DefaultBumpIn}},
		Recent:   []dto.EventCard{},
	}
	s.eventService.EXPECT().
		Hub(dto.HubFilters{Query: "rose", SetupType: "Marquee"}, gomock.Any()).
		Return(hub, nil).
		Times(1)

	c, rec := newJSONContext(s.e, http.MethodGet, "/events/hub?q=rose&setup_type=Marquee", nil)

	s.NoError(s.handler.Hub(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.HubResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Len(resp.Upcoming, 1)
}

func (s *EventHandlerTestSuite) TestArchive() {
	s.eventService.EXPECT().
		Archive(repositories.EventFilters{Query: "show", EventType: "Festival", Year: 2025, Sort: repositories.EventSortRent}).
		Return([]*models.Event{{EventID: "20250607_SHOWGROUND"}}, nil).
		Times(1)

	c, rec := newJSONContext(s.e, http.MethodGet, "/events/archive?q=show&type=Festival&year=2025&sort=RENT", nil)

	s.NoError(s.handler.Archive(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *EventHandlerTestSuite) TestArchive_DefaultSort() {
	s.eventService.EXPECT().
		Archive(repositories.EventFilters{Sort: repositories.EventSortNewest}).
		Return(nil, nil).
		Times(1)

	c, rec := newJSONContext(s.e, http.MethodGet, "/events/archive", nil)

	s.NoError(s.handler.Archive(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *EventHandlerTestSuite) TestArchive_UnknownSort() {
	c, rec := newJSONContext(s.e, http.MethodGet, "/events/archive?sort=loudest", nil)

	s.NoError(s.handler.Archive(c))
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *EventHandlerTestSuite) TestHistory() {
	s.eventService.EXPECT().History().Return(&dto.HistoryResponse{
		EventCount:   2,
		TotalRevenue: decimal.RequireFromString("3150.50"),
	}, nil).Times(1)

	c, rec := newJSONContext(s.e, http.MethodGet, "/events/history", nil)

	s.NoError(s.handler.History(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "3150.5")
}

func (s *EventHandlerTestSuite) TestHistory_Error() {
	s.eventService.EXPECT().History().Return(nil, errors.New("boom")).Times(1)

	c, rec := newJSONContext(s.e, http.MethodGet, "/events/history", nil)

	s.NoError(s.handler.History(c))
	s.Equal(http.StatusInternalServerError, rec.Code)
}

func (s *EventHandlerTestSuite) TestWorkspace() {
	ws := &dto.WorkspaceResponse{
		Event:         &models.Event{EventID: "20250607_SHOWGROUND", Date: time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC)},
		ReportingDays: []string{"2025-06-07", "2025-06-08"},
	}
	s.eventService.EXPECT().Workspace("20250607_SHOWGROUND").Return(ws, nil).Times(1)

	c, rec := newJSONContext(s.e, http.MethodGet, "/", nil)
	c.SetParamNames("id")
	c.SetParamValues("20250607_SHOWGROUND")

	s.NoError(s.handler.Workspace(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "2025-06-08")
}

func (s *EventHandlerTestSuite) TestWorkspace_NotFound() {
	s.eventService.EXPECT().Workspace("NOPE").Return(nil, repositories.ErrEventNotFound).Times(1)

	c, rec := newJSONContext(s.e, http.MethodGet, "/", nil)
	c.SetParamNames("id")
	c.SetParamValues("NOPE")

	s.NoError(s.handler.Workspace(c))
	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("EVENT_001", decodeError(rec).Error.Code)
}

func (s *EventHandlerTestSuite) TestUpdateEvent() {
	s.eventService.EXPECT().
		UpdateOverview(gomock.Any(), "20250607_SHOWGROUND", gomock.Any(), "admin@example.com").
		Return(&models.Event{EventID: "20250607_SHOWGROUND"}, nil).
		Times(1)

	c, rec := newJSONContext(s.e, http.MethodPut, "/", map[string]interface{}{
		"venue":     "Showground",
		"date":      "2025-06-07",
		"multi_day": true,
		"end_date":  "2025-06-08",
	})
	withSession(c, "admin@example.com", models.RoleAdmin)
	c.SetParamNames("id")
	c.SetParamValues("20250607_SHOWGROUND")

	s.NoError(s.handler.UpdateEvent(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *EventHandlerTestSuite) TestAddContact() {
	s.eventService.EXPECT().
		AddContact(gomock.Any(), "20250607_SHOWGROUND", gomock.Any(), "jo@example.com").
		Return(&models.EventContact{Name: "Pat"}, nil).
		Times(1)

	c, rec := newJSONContext(s.e, http.MethodPost, "/", map[string]string{"name": "Pat", "role": "Manager"})
	withSession(c, "jo@example.com", models.RoleStaff)
	c.SetParamNames("id")
	c.SetParamValues("20250607_SHOWGROUND")

	s.NoError(s.handler.AddContact(c))
	s.Equal(http.StatusCreated, rec.Code)
}

func (s *EventHandlerTestSuite) TestListContacts() {
	s.eventService.EXPECT().ListContacts("20250607_SHOWGROUND").Return([]*models.EventContact{{Name: "Pat"}}, nil).Times(1)

	c, rec := newJSONContext(s.e, http.MethodGet, "/", nil)
	c.SetParamNames("id")
	c.SetParamValues("20250607_SHOWGROUND")

	s.NoError(s.handler.ListContacts(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *EventHandlerTestSuite) TestSaveLogistics() {
	s.eventService.EXPECT().
		SaveLogistics(gomock.Any(), "20250607_SHOWGROUND", &dto.LogisticsRequest{BumpIn: "06:30", BumpOut: models.TimeTBA}, "admin@example.com").
		Return(&models.LogisticsDetails{EventID: "20250607_SHOWGROUND"}, nil).
		Times(1)

	c, rec := newJSONContext(s.e, http.MethodPut, "/", map[string]string{"bump_in": "06:30", "bump_out": models.TimeTBA})
	withSession(c, "admin@example.com", models.RoleAdmin)
	c.SetParamNames("id")
	c.SetParamValues("20250607_SHOWGROUND")

	s.NoError(s.handler.SaveLogistics(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *EventHandlerTestSuite) TestSaveLogistics_InvalidTime() {
	c, _ := newJSONContext(s.e, http.MethodPut, "/", map[string]string{"bump_in": "25:00", "bump_out": "TBA"})
	withSession(c, "admin@example.com", models.RoleAdmin)
	c.SetParamNames("id")
	c.SetParamValues("20250607_SHOWGROUND")

	s.Error(s.handler.SaveLogistics(c))
}

func (s *EventHandlerTestSuite) TestListLogistics() {
	s.eventService.EXPECT().ListLogistics().Return([]*models.LogisticsDetails{}, nil).Times(1)

	c, rec := newJSONContext(s.e, http.MethodGet, "/logistics", nil)

	s.NoError(s.handler.ListLogistics(c))
	s.Equal(http.StatusOK, rec.Code)
}
