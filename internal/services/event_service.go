package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"eventhub/internal/dto"
	"eventhub/internal/models"
	"eventhub/internal/repositories"
)

const recentEventWindowDays = 30

// EventService registers events and serves the hub, archive and workspace views
type EventService struct {
	eventRepo    repositories.EventRepositoryInterface
	reportRepo   repositories.ReportRepositoryInterface
	salesRepo    repositories.SalesRepositoryInterface
	auditService AuditServiceInterface
	auditLogger  AuditLoggerInterface
	metrics      MetricsRecorderInterface
	logger       *slog.Logger
}

func NewEventService(
	eventRepo repositories.EventRepositoryInterface,
	reportRepo repositories.ReportRepositoryInterface,
	salesRepo repositories.SalesRepositoryInterface,
	auditService AuditServiceInterface,
	auditLogger AuditLoggerInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) EventServiceInterface {
	return &EventService{
		eventRepo:    eventRepo,
		reportRepo:   reportRepo,
		salesRepo:    salesRepo,
		auditService: auditService,
		auditLogger:  auditLogger,
		metrics:      metrics,
		logger:       logger,
	}
}

// Create registers an event with its financials, a TBA logistics plan and the organiser as primary contact
func (s *EventService) Create(ctx context.Context, req *dto.CreateEventRequest, actor string) (*models.Event, error) {
	start, end, err := parseDateRange(req.Date, req.EndDate)
	if err != nil {
		return nil, err
	}

	event := &models.Event{
		Date:          start,
		EndDate:       end,
		Venue:         strings.TrimSpace(req.Venue),
		EventType:     req.EventType,
		Address:       strings.TrimSpace(req.Address),
		Status:        models.EventStatusPlanned,
		OrganiserName: strings.TrimSpace(req.OrganiserName),
		Notes:         req.Notes,
		LastEditedBy:  actor,
	}
	event.EventID = models.GenerateEventID(event.Date, event.Venue)

	financials := &models.EventFinancials{
		Rent:           req.Rent,
		RentStatus:     req.RentStatus,
		Deposit:        req.Deposit,
		DepositPaid:    req.DepositPaid,
		FeeStructure:   req.FeeStructure,
		CommissionRate: req.CommissionRate,
	}
	financials.ApplyFeeStructure()

	rentDate := start
	if req.RentDate != "" {
		if rentDate, err = models.ParseDate(req.RentDate); err != nil {
			return nil, fmt.Errorf("invalid rent date: %w", err)
		}
	}
	financials.SetRentDate(rentDate)

	logistics := &models.LogisticsDetails{
		SetupType: req.SetupType,
		BumpIn:    models.TimeTBA,
		BumpOut:   models.TimeTBA,
	}

	contact := &models.EventContact{
		Name:       event.OrganiserName,
		Phone:      models.NormalizePhone(req.OrganiserPhone),
		Email:      models.NormalizeEmail(req.OrganiserEmail),
		Role:       models.ContactRolePrimary,
		PrefMethod: models.ContactMethodPhone,
	}

	if err := s.eventRepo.CreateWithDetails(event, financials, logistics, contact); err != nil {
		return nil, err
	}

	event.Financials = financials
	event.Logistics = logistics
	event.Contacts = []models.EventContact{*contact}

	s.auditService.Record(actor, models.AuditActionEventCreated, "event", event.EventID, models.AuditMetadata{
		"venue":         event.Venue,
		"date":          event.Date.Format(models.DateLayout),
		"fee_structure": financials.FeeStructure,
	})
	s.auditLogger.LogEventCreated(ctx, event.EventID, event.Venue, actor)
	s.metrics.IncrementCounter("event_created", map[string]string{"event_type": event.EventType})

	return event, nil
}

func (s *EventService) Get(eventID string) (*models.Event, error) {
	return s.eventRepo.GetByID(eventID)
}

// Workspace returns the event with its detail rows and the days a report or takings can be filed for
func (s *EventService) Workspace(eventID string) (*dto.WorkspaceResponse, error) {
	event, err := s.eventRepo.GetByID(eventID)
	if err != nil {
		return nil, err
	}

	days := event.ReportingDays()
	reportingDays := make([]string, 0, len(days))
	for _, d := range days {
		reportingDays = append(reportingDays, d.Format(models.DateLayout))
	}

	contacts := event.Contacts
	if contacts == nil {
		contacts = []models.EventContact{}
	}

	return &dto.WorkspaceResponse{
		Event:         event,
		ReportingDays: reportingDays,
		Financials:    event.Financials,
		Logistics:     event.Logistics,
		Contacts:      contacts,
	}, nil
}

// UpdateOverview edits the venue, dates, address and notes. A single-day event always ends on its start date.
func (s *EventService) UpdateOverview(ctx context.Context, eventID string, req *dto.UpdateEventRequest, actor string) (*models.Event, error) {
	event, err := s.eventRepo.GetByID(eventID)
	if err != nil {
		return nil, err
	}

	endRaw := req.EndDate
	if !req.MultiDay {
		endRaw = ""
	}
	start, end, err := parseDateRange(req.Date, endRaw)
	if err != nil {
		return nil, err
	}

	event.Venue = strings.TrimSpace(req.Venue)
	event.Date = start
	event.EndDate = end
	event.Address = strings.TrimSpace(req.Address)
	if name := strings.TrimSpace(req.OrganiserName); name != "" {
		event.OrganiserName = name
	}
	event.Notes = req.Notes
	event.LastEditedBy = actor

	if err := s.eventRepo.Update(event); err != nil {
		return nil, err
	}

	s.auditService.Record(actor, models.AuditActionEventUpdated, "event", eventID, models.AuditMetadata{
		"venue":    event.Venue,
		"date":     event.Date.Format(models.DateLayout),
		"end_date": event.EndDate.Format(models.DateLayout),
	})
	s.logger.InfoContext(ctx, "event overview updated",
		"event_id", eventID,
		"actor", actor)

	return event, nil
}

func (s *EventService) AddContact(ctx context.Context, eventID string, req *dto.ContactRequest, actor string) (*models.EventContact, error) {
	exists, err := s.eventRepo.Exists(eventID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, repositories.ErrEventNotFound
	}

	contact := &models.EventContact{
		EventID:    eventID,
		Name:       strings.TrimSpace(req.Name),
		Phone:      models.NormalizePhone(req.Phone),
		Email:      models.NormalizeEmail(req.Email),
		Role:       req.Role,
		PrefMethod: req.PrefMethod,
	}

	if err := s.eventRepo.AddContact(contact); err != nil {
		return nil, err
	}

	s.auditService.Record(actor, models.AuditActionContactAdded, "event", eventID, models.AuditMetadata{
		"contact_id": contact.ContactID,
		"name":       contact.Name,
		"role":       contact.Role,
	})

	return contact, nil
}

func (s *EventService) ListContacts(eventID string) ([]*models.EventContact, error) {
	return s.eventRepo.ListContacts(eventID)
}

// SaveLogistics replaces the event's logistics plan
func (s *EventService) SaveLogistics(ctx context.Context, eventID string, req *dto.LogisticsRequest, actor string) (*models.LogisticsDetails, error) {
	exists, err := s.eventRepo.Exists(eventID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, repositories.ErrEventNotFound
	}

	logistics := &models.LogisticsDetails{
		EventID:   eventID,
		SetupType: req.SetupType,
		BumpIn:    strings.ToUpper(strings.TrimSpace(req.BumpIn)),
		BumpOut:   strings.ToUpper(strings.TrimSpace(req.BumpOut)),
		Parking:   req.Parking,
		Notes:     req.Notes,
	}

	if err := s.eventRepo.SaveLogistics(logistics); err != nil {
		return nil, err
	}

	s.auditService.Record(actor, models.AuditActionLogisticsSaved, "event", eventID, models.AuditMetadata{
		"bump_in":  logistics.BumpIn,
		"bump_out": logistics.BumpOut,
	})

	return logistics, nil
}

func (s *EventService) ListLogistics() ([]*models.LogisticsDetails, error) {
	return s.eventRepo.ListLogistics()
}

// Hub lists upcoming events soonest first and the last thirty days of past events newest first
func (s *EventService) Hub(filters dto.HubFilters, today time.Time) (*dto.HubResponse, error) {
	y, m, d := today.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	upcoming, err := s.eventRepo.ListFrom(day)
	if err != nil {
		return nil, err
	}

	recent, err := s.eventRepo.ListBetween(day.AddDate(0, 0, -recentEventWindowDays), day.AddDate(0, 0, -1), false)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(upcoming)+len(recent))
	for _, e := range upcoming {
		ids = append(ids, e.EventID)
	}
	for _, e := range recent {
		ids = append(ids, e.EventID)
	}

	weather, err := s.reportRepo.LatestWeather(ids)
	if err != nil {
		// the hub is still useful without recorded weather
		s.logger.Warn("failed to load recorded weather", "error", err)
		weather = map[string]string{}
	}

	return &dto.HubResponse{
		Upcoming: buildCards(upcoming, weather, filters),
		Recent:   buildCards(recent, weather, filters),
	}, nil
}

func (s *EventService) Archive(filters repositories.EventFilters) ([]*models.Event, error) {
	return s.eventRepo.Search(filters)
}

// History lists every event with the total takings across the sales ledger
func (s *EventService) History() (*dto.HistoryResponse, error) {
	events, err := s.eventRepo.ListAll()
	if err != nil {
		return nil, err
	}

	total, err := s.salesRepo.TotalRevenue()
	if err != nil {
		return nil, fmt.Errorf("failed to total revenue: %w", err)
	}

	return &dto.HistoryResponse{
		Events:       events,
		EventCount:   len(events),
		TotalRevenue: total,
	}, nil
}

func buildCards(events []*models.Event, weather map[string]string, filters dto.HubFilters) []dto.EventCard {
	query := strings.ToLower(strings.TrimSpace(filters.Query))
	setup := strings.TrimSpace(filters.SetupType)

	cards := make([]dto.EventCard, 0, len(events))
	for _, e := range events {
		if query != "" && !strings.Contains(strings.ToLower(e.Venue), query) {
			continue
		}

		card := dto.EventCard{
			EventID:       e.EventID,
			Date:          e.Date,
			EndDate:       e.EndDate,
			Venue:         e.Venue,
			EventType:     e.EventType,
			Address:       e.Address,
			Status:        e.Status,
			OrganiserName: e.OrganiserName,
			BumpIn:        models.TimeTBA,
			BumpOut:       models.TimeTBA,
			Weather:       weather[e.EventID],
		}

		if e.Logistics != nil {
			card.SetupType = e.Logistics.SetupType
			card.BumpIn = e.Logistics.DisplayBumpIn()
			card.BumpOut = e.Logistics.DisplayBumpOut()
		}
		if setup != "" && setup != "All" && card.SetupType != setup {
			continue
		}

		if e.Financials != nil {
			card.RentStatus = e.Financials.RentStatus
		}

		for i := range e.Contacts {
			if e.Contacts[i].IsPrimary() {
				c := e.Contacts[i]
				card.PrimaryContact = &dto.ContactSummary{Name: c.Name, Phone: c.Phone, Email: c.Email}
				break
			}
		}

		cards = append(cards, card)
	}
	return cards
}

// parseDateRange parses a start and optional end date. A blank end means a single-day event.
func parseDateRange(startRaw, endRaw string) (time.Time, time.Time, error) {
	start, err := models.ParseDate(startRaw)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid date: %w", err)
	}

	end := start
	if strings.TrimSpace(endRaw) != "" {
		if end, err = models.ParseDate(endRaw); err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid end date: %w", err)
		}
	}

	if end.Before(start) {
		return time.Time{}, time.Time{}, models.ErrEndBeforeStart
	}
	return start, end, nil
}
