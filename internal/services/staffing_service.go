package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"eventhub/internal/dto"
	"eventhub/internal/models"
	"eventhub/internal/repositories"
)

const (
	shiftTimeLayout = "15:04"

	// LongShiftHours is the length above which a shift is flagged
	LongShiftHours = 8.0
)

var ErrInvalidTimeFormat = errors.New("time must be HH:MM")

// ShiftHours returns the hours between two HH:MM times. An end before the start wraps past midnight.
// The hour may be written with one digit ("9:00"), matching the hhmm validation tag.
func ShiftHours(start, end string) (float64, error) {
	t1, err := time.Parse(shiftTimeLayout, strings.TrimSpace(start))
	if err != nil {
		return 0, fmt.Errorf("start %q: %w", start, ErrInvalidTimeFormat)
	}
	t2, err := time.Parse(shiftTimeLayout, strings.TrimSpace(end))
	if err != nil {
		return 0, fmt.Errorf("end %q: %w", end, ErrInvalidTimeFormat)
	}

	hours := t2.Sub(t1).Hours()
	if hours < 0 {
		hours += 24
	}
	return hours, nil
}

// NewShiftAdvisory works out the advisory for a shift, or nil when either time does not parse
func NewShiftAdvisory(start, end string) *dto.ShiftAdvisory {
	hours, err := ShiftHours(start, end)
	if err != nil {
		return nil
	}

	advisory := &dto.ShiftAdvisory{Hours: hours, LongShift: hours > LongShiftHours}
	if advisory.LongShift {
		advisory.Warning = fmt.Sprintf("Long Shift: %s hrs", strconv.FormatFloat(hours, 'f', 1, 64))
	}
	return advisory
}

// StaffingService assigns roster members to events
type StaffingService struct {
	eventRepo      repositories.EventRepositoryInterface
	profileRepo    repositories.StaffProfileRepositoryInterface
	assignmentRepo repositories.AssignmentRepositoryInterface
	auditService   AuditServiceInterface
	auditLogger    AuditLoggerInterface
	metrics        MetricsRecorderInterface
	logger         *slog.Logger
}

func NewStaffingService(
	eventRepo repositories.EventRepositoryInterface,
	profileRepo repositories.StaffProfileRepositoryInterface,
	assignmentRepo repositories.AssignmentRepositoryInterface,
	auditService AuditServiceInterface,
	auditLogger AuditLoggerInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) StaffingServiceInterface {
	return &StaffingService{
		eventRepo:      eventRepo,
		profileRepo:    profileRepo,
		assignmentRepo: assignmentRepo,
		auditService:   auditService,
		auditLogger:    auditLogger,
		metrics:        metrics,
		logger:         logger,
	}
}

// Roster lists every profile with whether it is already on the event
func (s *StaffingService) Roster(eventID string) ([]dto.RosterEntry, error) {
	if err := s.requireEvent(eventID); err != nil {
		return nil, err
	}

	profiles, err := s.profileRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list staff profiles: %w", err)
	}

	assignments, err := s.assignmentRepo.ListByEvent(eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}

	assigned := make(map[string]*models.StaffAssignment, len(assignments))
	for _, a := range assignments {
		assigned[a.StaffName] = a
	}

	entries := make([]dto.RosterEntry, 0, len(profiles))
	for _, p := range profiles {
		entry := dto.RosterEntry{
			StaffName: p.StaffName,
			FirstName: p.FirstName(),
			Phone:     models.NormalizePhone(p.Phone),
			Skills:    p.Skills,
			Stars:     p.Stars(),
		}
		if a, ok := assigned[p.StaffName]; ok {
			entry.Assigned = true
			entry.StartTime = a.StartTime
			entry.EndTime = a.EndTime
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

func (s *StaffingService) Advise(start, end string) *dto.ShiftAdvisory {
	return NewShiftAdvisory(start, end)
}

// Assign adds a roster member to the event. The advisory is informational only.
func (s *StaffingService) Assign(ctx context.Context, eventID string, req *dto.AssignStaffRequest, actor string) (*dto.AssignmentResult, error) {
	if err := s.requireEvent(eventID); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.StaffName)
	profile, err := s.profileRepo.GetByName(name)
	if err != nil {
		return nil, err
	}

	start, end := strings.TrimSpace(req.StartTime), strings.TrimSpace(req.EndTime)
	if start == "" {
		start = models.DefaultShiftStart
	}
	if end == "" {
		end = models.DefaultShiftEnd
	}

	assignment := &models.StaffAssignment{
		EventID:    eventID,
		StaffName:  profile.StaffName,
		StartTime:  start,
		EndTime:    end,
		AssignedBy: actor,
	}

	if err := s.assignmentRepo.Create(assignment); err != nil {
		return nil, err
	}

	advisory := NewShiftAdvisory(start, end)
	longShift := advisory != nil && advisory.LongShift

	s.auditService.Record(actor, models.AuditActionStaffAssigned, "event", eventID, models.AuditMetadata{
		"staff_name": assignment.StaffName,
		"start_time": start,
		"end_time":   end,
	})
	s.auditLogger.LogStaffAssigned(ctx, eventID, assignment.StaffName, advisory)
	s.metrics.IncrementCounter("staff_assigned", map[string]string{"long_shift": strconv.FormatBool(longShift)})

	return &dto.AssignmentResult{Assignment: assignment, Advisory: advisory}, nil
}

func (s *StaffingService) Remove(ctx context.Context, eventID, staffName, actor string) error {
	if err := s.assignmentRepo.Delete(eventID, staffName); err != nil {
		return err
	}

	s.auditService.Record(actor, models.AuditActionStaffRemoved, "event", eventID, models.AuditMetadata{
		"staff_name": staffName,
	})
	s.logger.InfoContext(ctx, "staff removed from event",
		"event_id", eventID,
		"staff_name", staffName,
		"actor", actor)

	return nil
}

func (s *StaffingService) requireEvent(eventID string) error {
	exists, err := s.eventRepo.Exists(eventID)
	if err != nil {
		return err
	}
	if !exists {
		return repositories.ErrEventNotFound
	}
	return nil
}
