package dto

import (
	"time"

	"eventhub/internal/models"

	"github.com/shopspring/decimal"
)

// Event Request DTOs

// CreateEventRequest registers an event together with its financials, logistics and primary contact
type CreateEventRequest struct {
	Date      string `json:"date" validate:"required,iso_date"`
	EndDate   string `json:"end_date,omitempty" validate:"omitempty,iso_date"`
	Venue     string `json:"venue" validate:"required,max=255"`
	EventType string `json:"event_type" validate:"required"`
	Address   string `json:"address,omitempty"`
	SetupType string `json:"setup_type,omitempty" validate:"omitempty,setup_type"`
	Notes     string `json:"notes,omitempty"`

	FeeStructure   string          `json:"fee_structure" validate:"required,fee_structure"`
	Rent           decimal.Decimal `json:"rent" validate:"currency"`
	CommissionRate decimal.Decimal `json:"commission_rate"`
	RentStatus     string          `json:"rent_status" validate:"required,oneof='Paid' 'Due Later'"`
	RentDate       string          `json:"rent_date,omitempty" validate:"omitempty,iso_date"`
	Deposit        decimal.Decimal `json:"deposit" validate:"currency"`
	DepositPaid    bool            `json:"deposit_paid"`

	OrganiserName  string `json:"organiser_name" validate:"required,max=150"`
	OrganiserPhone string `json:"organiser_phone" validate:"required,au_mobile"`
	OrganiserEmail string `json:"organiser_email" validate:"required,email"`
}

// UpdateEventRequest edits the workspace overview
type UpdateEventRequest struct {
	Venue         string `json:"venue" validate:"required,max=255"`
	Date          string `json:"date" validate:"required,iso_date"`
	MultiDay      bool   `json:"multi_day"`
	EndDate       string `json:"end_date,omitempty" validate:"omitempty,iso_date"`
	Address       string `json:"address,omitempty"`
	OrganiserName string `json:"organiser_name,omitempty" validate:"max=150"`
	Notes         string `json:"notes,omitempty"`
}

// ContactRequest adds a contact to an event
type ContactRequest struct {
	Name       string `json:"name" validate:"required,max=150"`
	Phone      string `json:"phone,omitempty"`
	Email      string `json:"email,omitempty" validate:"omitempty,email"`
	Role       string `json:"role,omitempty" validate:"omitempty,oneof='Primary Contact' 'Manager' 'Organizer' 'Staff' 'Other'"`
	PrefMethod string `json:"pref_method,omitempty" validate:"omitempty,oneof=Phone Email"`
}

// LogisticsRequest replaces the logistics plan for an event
type LogisticsRequest struct {
	SetupType string `json:"setup_type" validate:"omitempty,setup_type"`
	BumpIn    string `json:"bump_in" validate:"required,hhmm_or_tba"`
	BumpOut   string `json:"bump_out" validate:"required,hhmm_or_tba"`
	Parking   string `json:"parking,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

// HubFilters narrows the hub listing
type HubFilters struct {
	Query     string
	SetupType string
}

// Event Response DTOs

// ContactSummary is the primary contact shown on an event card
type ContactSummary struct {
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
}

// EventCard is one entry in the hub listing
type EventCard struct {
	EventID        string          `json:"event_id"`
	Date           time.Time       `json:"date"`
	EndDate        time.Time       `json:"end_date"`
	Venue          string          `json:"venue"`
	EventType      string          `json:"event_type"`
	Address        string          `json:"address,omitempty"`
	Status         string          `json:"status"`
	OrganiserName  string          `json:"organiser_name,omitempty"`
	PrimaryContact *ContactSummary `json:"primary_contact,omitempty"`
	RentStatus     string          `json:"rent_status,omitempty"`
	SetupType      string          `json:"setup_type,omitempty"`
	BumpIn         string          `json:"bump_in"`
	BumpOut        string          `json:"bump_out"`
	Weather        string          `json:"weather,omitempty"`
}

// HubResponse splits events into upcoming and recently completed
type HubResponse struct {
	Upcoming []EventCard `json:"upcoming"`
	Recent   []EventCard `json:"recent"`
}

// WorkspaceResponse is everything the event workspace shows
type WorkspaceResponse struct {
	Event         *models.Event            `json:"event"`
	ReportingDays []string                 `json:"reporting_days"`
	Financials    *models.EventFinancials  `json:"financials,omitempty"`
	Logistics     *models.LogisticsDetails `json:"logistics,omitempty"`
	Contacts      []models.EventContact    `json:"contacts"`
}

// HistoryResponse is the full event history with historic takings
type HistoryResponse struct {
	Events       []*models.Event `json:"events"`
	EventCount   int             `json:"event_count"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}
