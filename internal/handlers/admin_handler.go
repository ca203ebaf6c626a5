package handlers

import (
	"net/http"
	"time"

	"eventhub/internal/dto"
	"eventhub/internal/errors"
	"eventhub/internal/models"
	"eventhub/internal/repositories"
	"eventhub/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// AdminHandler handles admin-related endpoints
type AdminHandler struct {
	staffRepo       repositories.StaffRepositoryInterface
	auditService    services.AuditServiceInterface
	lockoutDuration time.Duration
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(staffRepo repositories.StaffRepositoryInterface, auditService services.AuditServiceInterface, lockoutDuration time.Duration) *AdminHandler {
	return &AdminHandler{
		staffRepo:       staffRepo,
		auditService:    auditService,
		lockoutDuration: lockoutDuration,
	}
}

// ListLogins lists every app login with its lock state
// @Summary List app logins (admin)
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} SuccessResponse "Logins retrieved successfully"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 403 {object} errors.ErrorResponse "AUTH_005 - Requires admin role"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /admin/logins [get]
func (h *AdminHandler) ListLogins(c echo.Context) error {
	logins, err := h.staffRepo.List()
	if err != nil {
		return SendSystemError(c, err)
	}

	sanitized := make([]map[string]interface{}, len(logins))
	for i, staff := range logins {
		sanitized[i] = map[string]interface{}{
			"id":            staff.ID,
			"email":         staff.Email,
			"name":          staff.Name,
			"role":          staff.Role,
			"is_locked":     staff.IsLocked(h.lockoutDuration),
			"last_login_at": staff.LastLoginAt,
		}
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: sanitized,
		Meta: map[string]interface{}{"total": len(logins)},
	})
}

// UnlockLogin clears the failed attempts and lock on a login
// @Summary Unlock app login (admin)
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param staffId path string true "Login ID (UUID)"
// @Success 200 {object} SuccessResponse "Login unlocked successfully"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid login ID"
// @Failure 404 {object} errors.ErrorResponse "STAFF_001 - Login not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /admin/logins/{staffId}/unlock [post]
func (h *AdminHandler) UnlockLogin(c echo.Context) error {
	staffID, err := uuid.Parse(c.Param("staffId"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Login ID must be a valid UUID"))
	}

	staff, err := h.staffRepo.GetByID(staffID)
	if err != nil {
		return SendServiceError(c, err)
	}

	if err := h.staffRepo.ResetFailedLoginAttempts(staff.ID); err != nil {
		return SendSystemError(c, err)
	}

	actor, _ := getActor(c)
	h.auditService.Record(actor, models.AuditActionLoginUnlocked, "staff", staff.Email, models.AuditMetadata{
		"ip_address": c.RealIP(),
	})

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "Login unlocked successfully",
		Data: map[string]interface{}{
			"id":    staff.ID,
			"email": staff.Email,
		},
	})
}

// ListAuditLogs returns audit entries filtered by actor, resource, action or day range
// @Summary List audit log entries (admin)
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param actor query string false "Actor email"
// @Param resource query string false "Resource type, e.g. event"
// @Param resource_id query string false "Resource identifier"
// @Param action query string false "Audit action"
// @Param from query string false "First day, YYYY-MM-DD (with to)"
// @Param to query string false "Last day inclusive, YYYY-MM-DD (with from)"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page (max 100)" default(20)
// @Success 200 {object} dto.AuditLogListResponse "Audit entries"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Missing filter or invalid pagination"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /admin/audit [get]
func (h *AdminHandler) ListAuditLogs(c echo.Context) error {
	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", 20)

	if page < 1 {
		return SendError(c, errors.ValidationGeneral,
			errors.WithDetails("page: must be greater than 0"))
	}
	if limit < 1 || limit > 100 {
		return SendError(c, errors.ValidationGeneral,
			errors.WithDetails("limit: must be between 1 and 100"))
	}

	filter := dto.AuditLogFilter{
		Actor:      c.QueryParam("actor"),
		Resource:   c.QueryParam("resource"),
		ResourceID: c.QueryParam("resource_id"),
		Action:     c.QueryParam("action"),
	}
	if from, to := c.QueryParam("from"), c.QueryParam("to"); from != "" || to != "" {
		if from == "" || to == "" {
			return SendError(c, errors.ValidationRequiredField,
				errors.WithDetails("from and to must be given together"))
		}
		start, err := models.ParseDate(from)
		if err != nil {
			return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("from: must be YYYY-MM-DD"))
		}
		last, err := models.ParseDate(to)
		if err != nil {
			return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("to: must be YYYY-MM-DD"))
		}
		end := last.AddDate(0, 0, 1)
		filter.From, filter.To = &start, &end
	}
	offset := (page - 1) * limit

	var (
		logs  []*models.AuditLog
		total int64
		err   error
	)
	switch {
	case filter.Actor != "":
		logs, total, err = h.auditService.GetActorActivity(filter.Actor, offset, limit)
	case filter.Resource != "":
		logs, total, err = h.auditService.GetResourceHistory(filter.Resource, filter.ResourceID, offset, limit)
	case filter.Action != "":
		logs, total, err = h.auditService.GetActionHistory(filter.Action, offset, limit)
	case filter.From != nil:
		logs, total, err = h.auditService.GetActivityBetween(*filter.From, *filter.To, offset, limit)
	default:
		return SendError(c, errors.ValidationRequiredField,
			errors.WithDetails("one of actor, resource, action or from/to is required"))
	}
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.AuditLogListResponse{
		Logs:       logs,
		Pagination: dto.PaginationMeta{Page: page, Limit: limit, Total: total},
	})
}
