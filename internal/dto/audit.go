package dto

import (
	"time"

	"eventhub/internal/models"
)

// AuditLogFilter selects audit entries by actor, resource, action or day range
type AuditLogFilter struct {
	Actor      string
	Resource   string
	ResourceID string
	Action     string
	From       *time.Time
	To         *time.Time
}

// AuditLogListResponse is a page of audit entries
type AuditLogListResponse struct {
	Logs       []*models.AuditLog `json:"logs"`
	Pagination PaginationMeta     `json:"pagination"`
}

// PaginationMeta echoes the page that was served and the total match count
type PaginationMeta struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}
