package dto

import (
	"eventhub/internal/models"
	"eventhub/internal/reconciliation"

	"github.com/shopspring/decimal"
)

// SaveSalesRequest is the sales form plus the trading day it belongs to
type SaveSalesRequest struct {
	reconciliation.FormState
	RecordDate   string          `json:"record_date" validate:"required,iso_date"`
	OpeningFloat decimal.Decimal `json:"opening_float"`
	ClosingFloat decimal.Decimal `json:"closing_float"`
}

// FormResponse returns a form together with its evaluation
type FormResponse struct {
	Form       reconciliation.FormState  `json:"form"`
	Evaluation reconciliation.Evaluation `json:"evaluation"`
}

// SaveSalesResponse carries the stored record and the blank form that replaces the submitted one
type SaveSalesResponse struct {
	Record *models.SalesRecord       `json:"record"`
	Form   reconciliation.FormState `json:"form"`
}

// SalesSummary lists stored records with day and event-to-date gross
type SalesSummary struct {
	Records    []*models.SalesRecord `json:"records"`
	DayGross   *decimal.Decimal      `json:"day_gross,omitempty"`
	EventGross decimal.Decimal       `json:"event_gross"`
}
