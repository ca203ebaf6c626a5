package handlers

import (
	"net/http"

	"eventhub/internal/dto"
	"eventhub/internal/errors"
	"eventhub/internal/services"

	"github.com/labstack/echo/v4"
)

// ReportHandler handles the daily field report of an event
type ReportHandler struct {
	reportService services.ReportServiceInterface
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService services.ReportServiceInterface) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// GetReport returns the stored report for a day, or the form defaults when none exists
// @Summary Get daily report
// @Tags Reports
// @Security BearerAuth
// @Produce json
// @Param id path string true "Event ID"
// @Param date path string true "Report date (YYYY-MM-DD)"
// @Success 200 {object} models.EventReport "Report"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_007 - Invalid date"
// @Failure 404 {object} errors.ErrorResponse "EVENT_001 - Event not found"
// @Failure 422 {object} errors.ErrorResponse "EVENT_004 - Date is outside the event's days"
// @Router /events/{id}/reports/{date} [get]
func (h *ReportHandler) GetReport(c echo.Context) error {
	day, err := getDateParam(c, "date")
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails("date: must be YYYY-MM-DD"))
	}

	report, err := h.reportService.Get(c.Param("id"), day)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, report)
}

// SaveReport upserts the report for one of the event's days
// @Summary Save daily report
// @Tags Reports
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param date path string true "Report date (YYYY-MM-DD)"
// @Param request body dto.ReportRequest true "Report"
// @Success 200 {object} SuccessResponse{data=models.EventReport} "Report saved"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid report"
// @Failure 422 {object} errors.ErrorResponse "EVENT_004 - Date is outside the event's days"
// @Router /events/{id}/reports/{date} [put]
func (h *ReportHandler) SaveReport(c echo.Context) error {
	actor, err := getActor(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	day, err := getDateParam(c, "date")
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails("date: must be YYYY-MM-DD"))
	}

	var req dto.ReportRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	report, err := h.reportService.Save(c.Request().Context(), c.Param("id"), day, &req, actor)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data:    report,
		Message: "Report saved",
	})
}
