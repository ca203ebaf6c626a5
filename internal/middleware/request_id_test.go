package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

const uuidPattern = `^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`

type RequestIDTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

func (s *RequestIDTestSuite) SetupTest() {
	s.echo = echo.New()
}

func TestRequestIDTestSuite(t *testing.T) {
	suite.Run(t, new(RequestIDTestSuite))
}

// serve runs RequestID with an optional incoming header and returns the IDs the
// handler saw on the echo context and the request context
func (s *RequestIDTestSuite) serve(incoming string) (fromEcho, fromRequest string, rec *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if incoming != "" {
		req.Header.Set(TraceIDHeader, incoming)
	}
	rec = httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	handler := RequestID()(func(c echo.Context) error {
		fromEcho = GetTraceID(c)
		fromRequest, _ = c.Request().Context().Value(requestIDKey).(string)
		return c.NoContent(http.StatusOK)
	})
	s.Require().NoError(handler(c))
	return fromEcho, fromRequest, rec
}

func (s *RequestIDTestSuite) TestGeneratesUUID() {
	fromEcho, fromRequest, rec := s.serve("")

	s.Regexp(uuidPattern, fromEcho)
	s.Equal(fromEcho, fromRequest)
	s.Equal(fromEcho, rec.Header().Get(TraceIDHeader))
}

func (s *RequestIDTestSuite) TestReusesWellFormedHeader() {
	fromEcho, fromRequest, rec := s.serve("pos-terminal-7.0001")

	s.Equal("pos-terminal-7.0001", fromEcho)
	s.Equal("pos-terminal-7.0001", fromRequest)
	s.Equal("pos-terminal-7.0001", rec.Header().Get(TraceIDHeader))
}

func (s *RequestIDTestSuite) TestReplacesMalformedHeader() {
	testCases := map[string]string{
		"too short":   "abc",
		"too long":    strings.Repeat("a", 65),
		"log newline": "trace-id-123\nlevel=ERROR",
		"spaces":      "trace id with spaces",
	}

	for name, incoming := range testCases {
		s.Run(name, func() {
			fromEcho, _, rec := s.serve(incoming)

			s.Regexp(uuidPattern, fromEcho)
			s.Equal(fromEcho, rec.Header().Get(TraceIDHeader))
		})
	}
}

func (s *RequestIDTestSuite) TestGetTraceID_EmptyOutsideMiddleware() {
	c := s.echo.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	s.Empty(GetTraceID(c))
}
