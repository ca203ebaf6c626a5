package handlers

import (
	"net/http"
	"time"

	"eventhub/internal/dto"
	"eventhub/internal/errors"
	"eventhub/internal/models"
	"eventhub/internal/reconciliation"
	"eventhub/internal/services"

	"github.com/labstack/echo/v4"
)

// SalesHandler handles the sales entry form of an event
type SalesHandler struct {
	salesService services.SalesServiceInterface
}

// NewSalesHandler creates a new sales handler
func NewSalesHandler(salesService services.SalesServiceInterface) *SalesHandler {
	return &SalesHandler{salesService: salesService}
}

// Evaluate recomputes totals, status, message and the save gate for the submitted form
// @Summary Evaluate sales form
// @Tags Sales
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param request body reconciliation.FormState true "Form inputs"
// @Success 200 {object} dto.FormResponse "Form with its evaluation"
// @Failure 400 {object} errors.ErrorResponse "SALES_004 - Negative amount"
// @Failure 404 {object} errors.ErrorResponse "EVENT_001 - Event not found"
// @Router /events/{id}/sales/evaluate [post]
func (h *SalesHandler) Evaluate(c echo.Context) error {
	var form reconciliation.FormState
	if err := c.Bind(&form); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	eval, err := h.salesService.Evaluate(c.Param("id"), form)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.FormResponse{Form: form, Evaluation: eval})
}

// Autofill moves the shortfall between gross and categories into uncategorized
// @Summary Auto-fill uncategorized
// @Tags Sales
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param request body reconciliation.FormState true "Form inputs"
// @Success 200 {object} dto.FormResponse "Filled form with its evaluation"
// @Failure 422 {object} errors.ErrorResponse "SALES_003 - Nothing to auto-fill"
// @Router /events/{id}/sales/autofill [post]
func (h *SalesHandler) Autofill(c echo.Context) error {
	var form reconciliation.FormState
	if err := c.Bind(&form); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	next, eval, err := h.salesService.Autofill(c.Param("id"), form)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.FormResponse{Form: next, Evaluation: eval})
}

// SaveSales re-runs the save gate and appends the day's takings.
// On success the response carries a blank form in place of the submitted one.
// @Summary Save sales
// @Tags Sales
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param request body dto.SaveSalesRequest true "Form inputs and trading day"
// @Success 201 {object} SuccessResponse{data=dto.SaveSalesResponse} "Sales saved"
// @Failure 422 {object} errors.ErrorResponse "SALES_001 - Totals do not balance"
// @Failure 502 {object} errors.ErrorResponse "SALES_002 - Error saving sales"
// @Router /events/{id}/sales [post]
func (h *SalesHandler) SaveSales(c echo.Context) error {
	actor, err := getActor(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.SaveSalesRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	resp, err := h.salesService.Save(c.Request().Context(), c.Param("id"), &req, actor)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data:    resp,
		Message: "Sales saved",
	})
}

// Summary lists stored takings with the day gross, when a date is given, and the event-to-date gross
// @Summary Sales summary
// @Tags Sales
// @Security BearerAuth
// @Produce json
// @Param id path string true "Event ID"
// @Param date query string false "Trading day (YYYY-MM-DD)"
// @Success 200 {object} dto.SalesSummary "Summary"
// @Failure 404 {object} errors.ErrorResponse "EVENT_001 - Event not found"
// @Router /events/{id}/sales [get]
func (h *SalesHandler) Summary(c echo.Context) error {
	var day *time.Time
	if raw := c.QueryParam("date"); raw != "" {
		parsed, err := models.ParseDate(raw)
		if err != nil {
			return SendError(c, errors.ValidationInvalidDate, errors.WithDetails("date: must be YYYY-MM-DD"))
		}
		day = &parsed
	}

	summary, err := h.salesService.Summary(c.Param("id"), day)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, summary)
}
