package handlers

import (
	"net/http"
	"net/url"

	"eventhub/internal/dto"
	"eventhub/internal/errors"
	"eventhub/internal/services"

	"github.com/labstack/echo/v4"
)

// StaffingHandler handles who works an event and the shift-hours advisory
type StaffingHandler struct {
	staffingService services.StaffingServiceInterface
}

// NewStaffingHandler creates a new staffing handler
func NewStaffingHandler(staffingService services.StaffingServiceInterface) *StaffingHandler {
	return &StaffingHandler{staffingService: staffingService}
}

// Roster lists every roster member with whether they are on this event
// @Summary Event staffing gallery
// @Tags Staffing
// @Security BearerAuth
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} SuccessResponse "Roster entries"
// @Failure 404 {object} errors.ErrorResponse "EVENT_001 - Event not found"
// @Router /events/{id}/staffing [get]
func (h *StaffingHandler) Roster(c echo.Context) error {
	roster, err := h.staffingService.Roster(c.Param("id"))
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: roster})
}

// Advise returns the shift-length advisory without assigning anyone.
// Unparseable times give an empty advisory rather than an error.
// @Summary Shift advisory
// @Tags Staffing
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param request body dto.ShiftAdvisoryRequest true "Shift times"
// @Success 200 {object} SuccessResponse{data=dto.ShiftAdvisory} "Advisory"
// @Router /events/{id}/staffing/advisory [post]
func (h *StaffingHandler) Advise(c echo.Context) error {
	var req dto.ShiftAdvisoryRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: h.staffingService.Advise(req.Start, req.End),
	})
}

// Assign puts a roster member on the event. A long shift is flagged, never refused.
// @Summary Assign staff
// @Tags Staffing
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param request body dto.AssignStaffRequest true "Assignment"
// @Success 201 {object} SuccessResponse{data=dto.AssignmentResult} "Assigned"
// @Failure 404 {object} errors.ErrorResponse "EVENT_001 or STAFF_001 - Unknown event or staff member"
// @Failure 409 {object} errors.ErrorResponse "STAFF_003 - Already assigned"
// @Router /events/{id}/staffing [post]
func (h *StaffingHandler) Assign(c echo.Context) error {
	actor, err := getActor(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.AssignStaffRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	result, err := h.staffingService.Assign(c.Request().Context(), c.Param("id"), &req, actor)
	if err != nil {
		return SendServiceError(c, err)
	}

	message := "Staff member assigned"
	if result.Advisory != nil && result.Advisory.LongShift {
		message = result.Advisory.Warning
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data:    result,
		Message: message,
	})
}

// Remove takes a staff member off the event
// @Summary Remove staff from event
// @Tags Staffing
// @Security BearerAuth
// @Produce json
// @Param id path string true "Event ID"
// @Param staffName path string true "Staff name"
// @Success 200 {object} SuccessResponse "Removed"
// @Failure 404 {object} errors.ErrorResponse "STAFF_004 - Not assigned"
// @Router /events/{id}/staffing/{staffName} [delete]
func (h *StaffingHandler) Remove(c echo.Context) error {
	actor, err := getActor(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	staffName, err := url.PathUnescape(c.Param("staffName"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("staffName: invalid path encoding"))
	}

	if err := h.staffingService.Remove(c.Request().Context(), c.Param("id"), staffName, actor); err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "Staff member removed",
		Data:    map[string]string{"staff_name": staffName},
	})
}
