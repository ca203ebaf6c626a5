package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	AuditActionLogin          = "login"
	AuditActionFailedLogin    = "failed_login"
	AuditActionAccountLocked  = "account_locked"
	AuditActionLoginUnlocked  = "login_unlocked"
	AuditActionEventCreated   = "event_created"
	AuditActionEventUpdated   = "event_updated"
	AuditActionLogisticsSaved = "logistics_saved"
	AuditActionContactAdded   = "contact_added"
	AuditActionReportSaved    = "report_saved"
	AuditActionStaffOnboarded = "staff_onboarded"
	AuditActionStaffAssigned  = "staff_assigned"
	AuditActionStaffRemoved   = "staff_removed"
	AuditActionSalesSaved     = "sales_saved"
	AuditActionSalesBlocked   = "sales_blocked"
	AuditActionSheetImported  = "sheet_imported"
)

var auditActions = []string{
	AuditActionLogin, AuditActionFailedLogin, AuditActionAccountLocked, AuditActionLoginUnlocked,
	AuditActionEventCreated, AuditActionEventUpdated, AuditActionLogisticsSaved, AuditActionContactAdded,
	AuditActionReportSaved, AuditActionStaffOnboarded, AuditActionStaffAssigned, AuditActionStaffRemoved,
	AuditActionSalesSaved, AuditActionSalesBlocked, AuditActionSheetImported,
}

// IsAuditAction reports whether action is one the hub records
func IsAuditAction(action string) bool {
	return slices.Contains(auditActions, action)
}

// AuditLog records who changed what. Actors are identified by login email;
// failed logins have none.
type AuditLog struct {
	ID         uuid.UUID     `gorm:"type:uuid;primary_key" json:"id"`
	ActorEmail string        `gorm:"type:varchar(255);index" json:"actor_email,omitempty"`
	Action     string        `gorm:"type:varchar(100);not null;index" json:"action"`
	Resource   string        `gorm:"type:varchar(100);not null" json:"resource"`
	ResourceID string        `gorm:"type:varchar(255);index" json:"resource_id,omitempty"`
	IPAddress  string        `gorm:"type:varchar(45)" json:"ip_address,omitempty"`
	UserAgent  string        `gorm:"type:text" json:"user_agent,omitempty"`
	Metadata   AuditMetadata `gorm:"type:text" json:"metadata,omitempty"`
	CreatedAt  time.Time     `gorm:"not null;index" json:"created_at"`
}

func (al *AuditLog) TableName() string {
	return "audit_logs"
}

func (al *AuditLog) BeforeCreate(tx *gorm.DB) error {
	if al.ID == uuid.Nil {
		al.ID = uuid.New()
	}
	if al.CreatedAt.IsZero() {
		al.CreatedAt = time.Now().UTC()
	}
	return nil
}

// AuditMetadata holds per-action details such as totals or row counts. It
// is stored as JSON text so the SQLite test database can hold it too.
type AuditMetadata map[string]any

func (m AuditMetadata) Value() (driver.Value, error) {
	if len(m) == 0 {
		return nil, nil
	}
	raw, err := json.Marshal(map[string]any(m))
	if err != nil {
		return nil, fmt.Errorf("failed to encode audit metadata: %w", err)
	}
	return string(raw), nil
}

func (m *AuditMetadata) Scan(value any) error {
	var raw []byte
	switch v := value.(type) {
	case nil:
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into AuditMetadata", value)
	}

	if len(raw) == 0 {
		*m = nil
		return nil
	}

	decoded := map[string]any{}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return fmt.Errorf("failed to decode audit metadata: %w", err)
	}
	*m = decoded
	return nil
}

// Text returns key as a string, or "" when it is missing or not a string
func (m AuditMetadata) Text(key string) string {
	s, _ := m[key].(string)
	return s
}
