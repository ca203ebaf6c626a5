package handlers

import (
	"net/http"

	"eventhub/internal/dto"
	"eventhub/internal/errors"
	"eventhub/internal/services"

	"github.com/labstack/echo/v4"
)

// StaffHandler handles the staff roster and onboarding
type StaffHandler struct {
	staffService services.StaffServiceInterface
}

// NewStaffHandler creates a new staff handler
func NewStaffHandler(staffService services.StaffServiceInterface) *StaffHandler {
	return &StaffHandler{staffService: staffService}
}

// ListStaff returns the roster
// @Summary List staff
// @Tags Staff
// @Security BearerAuth
// @Produce json
// @Success 200 {object} SuccessResponse "Roster"
// @Router /staff [get]
func (h *StaffHandler) ListStaff(c echo.Context) error {
	profiles, err := h.staffService.List()
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: profiles,
		Meta: map[string]interface{}{"total": len(profiles)},
	})
}

// OnboardStaff adds a roster member and, with app access, their login
// @Summary Onboard staff
// @Tags Staff
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.OnboardStaffRequest true "New staff member"
// @Success 201 {object} SuccessResponse{data=dto.OnboardStaffResponse} "Staff onboarded"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_006 - Phone needs at least 10 digits"
// @Failure 409 {object} errors.ErrorResponse "STAFF_002 or STAFF_005 - Name or login already exists"
// @Router /staff [post]
func (h *StaffHandler) OnboardStaff(c echo.Context) error {
	actor, err := getActor(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.OnboardStaffRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	resp, err := h.staffService.Onboard(c.Request().Context(), &req, actor)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data:    resp,
		Message: "Staff member onboarded",
	})
}
