package handlers

import (
	"net/http"

	"eventhub/internal/dto"
	"eventhub/internal/errors"
	"eventhub/internal/services"

	"github.com/labstack/echo/v4"
)

// AuthHandler serves PIN sign-in and the current session
type AuthHandler struct {
	authService services.AuthServiceInterface
}

func NewAuthHandler(authService services.AuthServiceInterface) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login exchanges an email and PIN for a session token
// @Summary Sign in
// @Description The PIN may contain separators such as "12-34"; only digits are compared.
// @Description Repeated failures lock the login for LOCKOUT_DURATION.
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Email and PIN"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001"
// @Failure 429 {object} errors.ErrorResponse "AUTH_006 or SYSTEM_006"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	session, err := h.authService.Login(c.Request().Context(), &req, c.RealIP(), c.Request().UserAgent())
	if err != nil {
		return SendServiceError(c, err)
	}
	return c.JSON(http.StatusOK, session)
}

// Me echoes the signed-in session
// @Summary Current session
// @Tags Authentication
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.SessionInfo
// @Failure 401 {object} errors.ErrorResponse "AUTH_002"
// @Router /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	email, err := getActor(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	return c.JSON(http.StatusOK, dto.SessionInfo{
		StaffID: getStaffID(c),
		Email:   email,
		Role:    getRole(c),
	})
}
