package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"eventhub/internal/dto"
	"eventhub/internal/models"
	"eventhub/internal/services"
	"eventhub/internal/services/service_mocks"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

func TestAuthHandler(t *testing.T) {
	suite.Run(t, new(AuthHandlerSuite))
}

type AuthHandlerSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	authService *service_mocks.MockAuthServiceInterface
	handler     *AuthHandler
	e           *echo.Echo
}

func (s *AuthHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.authService = service_mocks.NewMockAuthServiceInterface(s.ctrl)
	s.handler = NewAuthHandler(s.authService)
	s.e = newTestEcho()
}

func (s *AuthHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *AuthHandlerSuite) TestLogin_Success() {
	email := gofakeit.Email()
	session := &dto.SessionResponse{
		AccessToken: "token",
		TokenType:   "Bearer",
		ExpiresAt:   time.Now().Add(12 * time.Hour),
		Email:       email,
		Role:        models.RoleManager,
	}

	s.authService.EXPECT().
		Login(gomock.Any(), &dto.LoginRequest{Email: email, Pin: "1234"}, gomock.Any(), gomock.Any()).
		Return(session, nil).
		Times(1)

	c, rec := newJSONContext(s.e, http.MethodPost, "/auth/login", map[string]string{"email": email, "pin": "1234"})

	s.NoError(s.handler.Login(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.SessionResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("token", resp.AccessToken)
	s.Equal(models.RoleManager, resp.Role)
}

func (s *AuthHandlerSuite) TestLogin_InvalidBody() {
	c, rec := newJSONContext(s.e, http.MethodPost, "/auth/login", "{not json")

	s.NoError(s.handler.Login(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("VALIDATION_001", decodeError(rec).Error.Code)
}

func (s *AuthHandlerSuite) TestLogin_MissingPin() {
	c, _ := newJSONContext(s.e, http.MethodPost, "/auth/login", map[string]string{"email": gofakeit.Email()})

	s.Error(s.handler.Login(c))
}

func (s *AuthHandlerSuite) TestLogin_InvalidCredentials() {
	s.authService.EXPECT().
		Login(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, services.ErrInvalidCredentials).
		Times(1)

	c, rec := newJSONContext(s.e, http.MethodPost, "/auth/login", map[string]string{"email": gofakeit.Email(), "pin": "0000"})

	s.NoError(s.handler.Login(c))
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal("AUTH_001", decodeError(rec).Error.Code)
}

func (s *AuthHandlerSuite) TestLogin_Locked() {
	s.authService.EXPECT().
		Login(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, services.ErrAccountLocked).
		Times(1)

	c, rec := newJSONContext(s.e, http.MethodPost, "/auth/login", map[string]string{"email": gofakeit.Email(), "pin": "0000"})

	s.NoError(s.handler.Login(c))
	s.Equal(http.StatusTooManyRequests, rec.Code)
	s.Equal("AUTH_006", decodeError(rec).Error.Code)
}

func (s *AuthHandlerSuite) TestLogin_ServiceError() {
	s.authService.EXPECT().
		Login(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("database down")).
		Times(1)

	c, rec := newJSONContext(s.e, http.MethodPost, "/auth/login", map[string]string{"email": gofakeit.Email(), "pin": "0000"})

	s.NoError(s.handler.Login(c))
	s.Equal(http.StatusInternalServerError, rec.Code)
	s.NotContains(rec.Body.String(), "database down")
}

func (s *AuthHandlerSuite) TestMe() {
	c, rec := newJSONContext(s.e, http.MethodGet, "/auth/me", nil)
	withSession(c, "jo@example.com", models.RoleLogistics)
	c.Set("staff_id", "abc")

	s.NoError(s.handler.Me(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.SessionInfo
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(dto.SessionInfo{StaffID: "abc", Email: "jo@example.com", Role: models.RoleLogistics}, resp)
}

func (s *AuthHandlerSuite) TestMe_NoSession() {
	c, rec := newJSONContext(s.e, http.MethodGet, "/auth/me", nil)

	s.NoError(s.handler.Me(c))
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal("AUTH_002", decodeError(rec).Error.Code)
}
