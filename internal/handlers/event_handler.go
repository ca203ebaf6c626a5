package handlers

import (
	"net/http"
	"strings"
	"time"

	"eventhub/internal/dto"
	"eventhub/internal/errors"
	"eventhub/internal/repositories"
	"eventhub/internal/services"

	"github.com/labstack/echo/v4"
)

// EventHandler handles event registration, the hub, the archive and the event workspace
type EventHandler struct {
	eventService services.EventServiceInterface
}

// NewEventHandler creates a new event handler
func NewEventHandler(eventService services.EventServiceInterface) *EventHandler {
	return &EventHandler{eventService: eventService}
}

// CreateEvent registers an event with its financials, logistics and primary contact
// @Summary Create event
// @Tags Events
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateEventRequest true "Event details"
// @Success 201 {object} SuccessResponse{data=models.Event} "Event created"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request"
// @Failure 409 {object} errors.ErrorResponse "EVENT_002 - Event already exists"
// @Failure 422 {object} errors.ErrorResponse "EVENT_003 - End date before start date"
// @Router /events [post]
func (h *EventHandler) CreateEvent(c echo.Context) error {
	actor, err := getActor(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateEventRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	event, err := h.eventService.Create(c.Request().Context(), &req, actor)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data:    event,
		Message: "Event created successfully",
	})
}

// Hub lists upcoming and recently completed event cards
// @Summary Event hub
// @Tags Events
// @Security BearerAuth
// @Produce json
// @Param q query string false "Venue search"
// @Param setup_type query string false "Setup type filter"
// @Success 200 {object} dto.HubResponse "Event cards"
// @Router /events/hub [get]
func (h *EventHandler) Hub(c echo.Context) error {
	filters := dto.HubFilters{
		Query:     c.QueryParam("q"),
		SetupType: c.QueryParam("setup_type"),
	}

	hub, err := h.eventService.Hub(filters, time.Now())
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, hub)
}

// Archive searches every event
// @Summary Event archive
// @Tags Events
// @Security BearerAuth
// @Produce json
// @Param q query string false "Venue or event id search"
// @Param type query string false "Event type"
// @Param year query int false "Event year"
// @Param sort query string false "newest, oldest or rent" default(newest)
// @Success 200 {object} SuccessResponse "Matching events"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Unknown sort order"
// @Router /events/archive [get]
func (h *EventHandler) Archive(c echo.Context) error {
	sort := strings.ToLower(c.QueryParam("sort"))
	switch sort {
	case "":
		sort = repositories.EventSortNewest
	case repositories.EventSortNewest, repositories.EventSortOldest, repositories.EventSortRent:
	default:
		return SendError(c, errors.ValidationInvalidFormat,
			errors.WithDetails("sort: must be one of newest, oldest, rent"))
	}

	events, err := h.eventService.Archive(repositories.EventFilters{
		Query:     c.QueryParam("q"),
		EventType: c.QueryParam("type"),
		Year:      queryInt(c, "year", 0),
		Sort:      sort,
	})
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: events,
		Meta: map[string]interface{}{"total": len(events)},
	})
}

// History returns every event with the total historic revenue
// @Summary Event history
// @Tags Events
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.HistoryResponse "Event history"
// @Router /events/history [get]
func (h *EventHandler) History(c echo.Context) error {
	history, err := h.eventService.History()
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, history)
}

// Workspace returns the event core, reporting days, financials, logistics and contacts
// @Summary Event workspace
// @Tags Events
// @Security BearerAuth
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} dto.WorkspaceResponse "Workspace"
// @Failure 404 {object} errors.ErrorResponse "EVENT_001 - Event not found"
// @Router /events/{id} [get]
func (h *EventHandler) Workspace(c echo.Context) error {
	workspace, err := h.eventService.Workspace(c.Param("id"))
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, workspace)
}

// UpdateEvent edits the workspace overview
// @Summary Update event overview
// @Tags Events
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param request body dto.UpdateEventRequest true "Overview"
// @Success 200 {object} SuccessResponse{data=models.Event} "Event updated"
// @Failure 404 {object} errors.ErrorResponse "EVENT_001 - Event not found"
// @Failure 422 {object} errors.ErrorResponse "EVENT_003 - End date before start date"
// @Router /events/{id} [put]
func (h *EventHandler) UpdateEvent(c echo.Context) error {
	actor, err := getActor(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.UpdateEventRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	event, err := h.eventService.UpdateOverview(c.Request().Context(), c.Param("id"), &req, actor)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data:    event,
		Message: "Overview updated",
	})
}

// AddContact adds a contact to an event
// @Summary Add event contact
// @Tags Events
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param request body dto.ContactRequest true "Contact"
// @Success 201 {object} SuccessResponse{data=models.EventContact} "Contact added"
// @Failure 404 {object} errors.ErrorResponse "EVENT_001 - Event not found"
// @Router /events/{id}/contacts [post]
func (h *EventHandler) AddContact(c echo.Context) error {
	actor, err := getActor(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.ContactRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	contact, err := h.eventService.AddContact(c.Request().Context(), c.Param("id"), &req, actor)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data:    contact,
		Message: "Contact added",
	})
}

// ListContacts lists the contacts of an event
// @Summary List event contacts
// @Tags Events
// @Security BearerAuth
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} SuccessResponse "Contacts"
// @Router /events/{id}/contacts [get]
func (h *EventHandler) ListContacts(c echo.Context) error {
	contacts, err := h.eventService.ListContacts(c.Param("id"))
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: contacts})
}

// SaveLogistics replaces the logistics plan of an event
// @Summary Save event logistics
// @Tags Events
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param request body dto.LogisticsRequest true "Logistics"
// @Success 200 {object} SuccessResponse{data=models.LogisticsDetails} "Logistics saved"
// @Failure 404 {object} errors.ErrorResponse "EVENT_001 - Event not found"
// @Router /events/{id}/logistics [put]
func (h *EventHandler) SaveLogistics(c echo.Context) error {
	actor, err := getActor(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.LogisticsRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	logistics, err := h.eventService.SaveLogistics(c.Request().Context(), c.Param("id"), &req, actor)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data:    logistics,
		Message: "Logistics saved",
	})
}

// ListLogistics is the logistics log across every event
// @Summary Logistics log
// @Tags Events
// @Security BearerAuth
// @Produce json
// @Success 200 {object} SuccessResponse "Logistics rows"
// @Router /logistics [get]
func (h *EventHandler) ListLogistics(c echo.Context) error {
	logistics, err := h.eventService.ListLogistics()
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: logistics})
}
