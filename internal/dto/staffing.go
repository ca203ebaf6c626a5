package dto

import "eventhub/internal/models"

// AssignStaffRequest puts a roster member on an event. Times default to 08:00 and 18:00.
type AssignStaffRequest struct {
	StaffName string `json:"staff_name" validate:"required"`
	StartTime string `json:"start_time,omitempty"`
	EndTime   string `json:"end_time,omitempty"`
}

// ShiftAdvisoryRequest asks for the shift-length check only
type ShiftAdvisoryRequest struct {
	Start string `json:"start" validate:"required"`
	End   string `json:"end" validate:"required"`
}

// RosterEntry is one card in the staffing gallery
type RosterEntry struct {
	StaffName string `json:"staff_name"`
	FirstName string `json:"first_name"`
	Phone     string `json:"phone,omitempty"`
	Skills    string `json:"skills,omitempty"`
	Stars     int    `json:"stars"`
	Assigned  bool   `json:"assigned"`
	StartTime string `json:"start_time,omitempty"`
	EndTime   string `json:"end_time,omitempty"`
}

// ShiftAdvisory is the advisory shown next to a shift. It never blocks an assignment.
type ShiftAdvisory struct {
	Hours     float64 `json:"hours"`
	LongShift bool    `json:"long_shift"`
	Warning   string  `json:"warning,omitempty"`
}

// AssignmentResult is a stored assignment with the advisory for its shift, if one could be worked out
type AssignmentResult struct {
	Assignment *models.StaffAssignment `json:"assignment"`
	Advisory   *ShiftAdvisory          `json:"advisory,omitempty"`
}
