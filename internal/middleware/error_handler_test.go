package middleware

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventhub/internal/dto"
	"eventhub/internal/validation"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type ErrorHandlerTestSuite struct {
	suite.Suite
	echo    *echo.Echo
	logs    *bytes.Buffer
	handler echo.HTTPErrorHandler
}

func (s *ErrorHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.logs = &bytes.Buffer{}
	s.handler = HTTPErrorHandler(slog.New(slog.NewJSONHandler(s.logs, nil)))
}

func TestErrorHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ErrorHandlerTestSuite))
}

func (s *ErrorHandlerTestSuite) handle(err error, traceID string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(httptest.NewRequest(http.MethodPost, "/api/v1/events/E1/sales", nil), rec)
	if traceID != "" {
		c.Set(TraceIDContextKey, traceID)
	}
	s.handler(err, c)
	return rec
}

func (s *ErrorHandlerTestSuite) TestEchoHTTPError() {
	rec := s.handle(echo.NewHTTPError(http.StatusNotFound, "no such event"), "trace-abc-123")

	s.Equal(http.StatusNotFound, rec.Code)
	s.Contains(rec.Body.String(), "EVENT_001")
	s.Contains(rec.Body.String(), "no such event")
	s.Contains(rec.Body.String(), "trace-abc-123")
	s.Contains(s.logs.String(), `"level":"WARN"`)
}

func (s *ErrorHandlerTestSuite) TestWrappedEchoHTTPError() {
	err := fmt.Errorf("bind: %w", echo.NewHTTPError(http.StatusBadRequest, "malformed JSON"))

	rec := s.handle(err, "trace-abc-123")

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "VALIDATION_001")
}

func (s *ErrorHandlerTestSuite) TestUnexpectedErrorHidesCause() {
	rec := s.handle(errors.New("pq: relation event_sales does not exist"), "trace-abc-123")

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Contains(rec.Body.String(), "SYSTEM_001")
	s.NotContains(rec.Body.String(), "event_sales")
	s.Contains(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON)

	s.Contains(s.logs.String(), `"level":"ERROR"`)
	s.Contains(s.logs.String(), "relation event_sales does not exist")
}

func (s *ErrorHandlerTestSuite) TestMissingTraceID() {
	rec := s.handle(errors.New("boom"), "")

	s.Contains(rec.Body.String(), `"trace_id":"unknown"`)
}

func (s *ErrorHandlerTestSuite) TestCommittedResponseUntouched() {
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	s.Require().NoError(c.JSON(http.StatusCreated, map[string]string{"status": "saved"}))

	s.handler(errors.New("late failure"), c)

	s.Equal(http.StatusCreated, rec.Code)
	s.Contains(rec.Body.String(), "saved")
	s.NotContains(rec.Body.String(), "SYSTEM_001")
}

func (s *ErrorHandlerTestSuite) TestStatusToCode() {
	testCases := []struct {
		status       int
		expectedCode string
	}{
		{http.StatusBadRequest, "VALIDATION_001"},
		{http.StatusUnauthorized, "AUTH_002"},
		{http.StatusForbidden, "AUTH_005"},
		{http.StatusNotFound, "EVENT_001"},
		{http.StatusRequestEntityTooLarge, "IMPORT_003"},
		{http.StatusUnprocessableEntity, "VALIDATION_001"},
		{http.StatusTooManyRequests, "SYSTEM_006"},
		{http.StatusInternalServerError, "SYSTEM_001"},
		{http.StatusServiceUnavailable, "SYSTEM_003"},
		{http.StatusTeapot, "SYSTEM_005"},
	}

	for _, tc := range testCases {
		s.Run(http.StatusText(tc.status), func() {
			rec := s.handle(echo.NewHTTPError(tc.status), "trace-abc-123")

			s.Equal(tc.status, rec.Code)
			s.Contains(rec.Body.String(), tc.expectedCode)
		})
	}
}

func (s *ErrorHandlerTestSuite) TestValidationErrors() {
	err := validation.GetValidator().Struct(dto.ReportRequest{
		Weather:   "Snow",
		TimeLeave: "5.45am",
		TimeReach: "07:00",
	})
	s.Require().Error(err)

	rec := s.handle(err, "trace-abc-123")

	s.Equal(http.StatusBadRequest, rec.Code)
	body := rec.Body.String()
	s.Contains(body, "VALIDATION_001")
	s.Contains(body, "weather: must be one of: Sunny, Cloudy, Rainy, Windy, Heat")
	s.Contains(body, "time_leave: must be a time in HH:MM format")
	s.NotContains(body, "time_reach")
}
