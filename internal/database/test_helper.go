package database

import (
	"fmt"
	"testing"
	"time"

	"eventhub/internal/config"
	"eventhub/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB opens an in-memory SQLite database with every table migrated
func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	// one connection, otherwise each new one sees its own empty :memory: database
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(1)
	}

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

func CreateTestStaff(t *testing.T, db *DB, email, role string) *models.Staff {
	t.Helper()

	staff := &models.Staff{
		Email:   email,
		Name:    "Test Staff",
		Role:    role,
		PinHash: "hashed_pin",
	}

	if err := db.Create(staff).Error; err != nil {
		t.Fatalf("failed to create test staff: %v", err)
	}

	return staff
}

func CreateTestProfile(t *testing.T, db *DB, name string) *models.StaffProfile {
	t.Helper()

	profile := &models.StaffProfile{
		StaffName:  name,
		Phone:      "0412345678",
		HourlyRate: decimal.NewFromInt(32),
		Rating:     decimal.NewFromInt(5),
	}

	if err := db.Create(profile).Error; err != nil {
		t.Fatalf("failed to create test profile: %v", err)
	}

	return profile
}

// CreateTestEvent inserts an event spanning start..end (YYYY-MM-DD)
func CreateTestEvent(t *testing.T, db *DB, venue, start, end string) *models.Event {
	t.Helper()

	startDate, err := models.ParseDate(start)
	if err != nil {
		t.Fatalf("bad start date %q: %v", start, err)
	}
	endDate, err := models.ParseDate(end)
	if err != nil {
		t.Fatalf("bad end date %q: %v", end, err)
	}

	event := &models.Event{
		Date:      startDate,
		EndDate:   endDate,
		Venue:     venue,
		EventType: "Market",
	}

	if err := db.Create(event).Error; err != nil {
		t.Fatalf("failed to create test event: %v", err)
	}

	return event
}

// CleanupTestDB empties every table, children first
func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	tables := []string{
		"audit_logs",
		"event_sales",
		"event_staffing",
		"event_reports",
		"logistics_details",
		"event_contacts",
		"event_financials",
		"events",
		"staff_profiles",
		"staff",
	}

	for _, table := range tables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}
