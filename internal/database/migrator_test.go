package database

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var quietLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func fastRetries(t *testing.T, n int) {
	t.Helper()
	attempts, backoff := readyAttempts, readyBackoff
	readyAttempts, readyBackoff = n, 5*time.Millisecond
	t.Cleanup(func() {
		readyAttempts, readyBackoff = attempts, backoff
	})
}

func writeSeed(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
}

func seeder(t *testing.T, dir string, enabled bool) (*Migrator, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	m := NewMigrator(db, enabled, quietLogger)
	m.seeds = dir
	return m, mock
}

func TestNewMigrator(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	m := NewMigrator(db, true, nil)

	assert.Equal(t, migrationsDir, m.dir)
	assert.Equal(t, seedsDir, m.seeds)
	assert.True(t, m.seed)
	assert.NotNil(t, m.logger)
}

func TestAwaitReady_RetriesUntilUp(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()
	fastRetries(t, 3)

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	mock.ExpectPing()

	assert.NoError(t, NewMigrator(db, false, quietLogger).AwaitReady(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAwaitReady_GivesUp(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()
	fastRetries(t, 2)

	refused := errors.New("connection refused")
	mock.ExpectPing().WillReturnError(refused)
	mock.ExpectPing().WillReturnError(refused)

	err = NewMigrator(db, false, quietLogger).AwaitReady(context.Background())
	assert.ErrorContains(t, err, "database not ready after 2 attempts")
	assert.ErrorIs(t, err, refused)
}

func TestAwaitReady_StopsWhenCancelled(t *testing.T) {
	db, _, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()
	fastRetries(t, 50)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = NewMigrator(db, false, quietLogger).AwaitReady(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestUp_MissingDirectoryIsNoop(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	m := NewMigrator(db, false, quietLogger)
	m.dir = "/nonexistent/migrations"

	version, err := m.Up()
	assert.NoError(t, err)
	assert.Zero(t, version)
	assert.NoError(t, mock.ExpectationsWereMet())

	_, _, err = m.Version()
	assert.ErrorContains(t, err, "migrations directory /nonexistent/migrations not found")
}

func TestSeed_Disabled(t *testing.T) {
	dir := t.TempDir()
	writeSeed(t, dir, "001_staff.sql", "INSERT INTO staff_profiles (staff_name) VALUES ('Jamie');")
	m, mock := seeder(t, dir, false)

	applied, err := m.Seed(context.Background())

	assert.NoError(t, err)
	assert.Zero(t, applied)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSeed_MissingOrEmptyDirectory(t *testing.T) {
	for _, dir := range []string{"/nonexistent/seeds", t.TempDir()} {
		m, _ := seeder(t, dir, true)

		applied, err := m.Seed(context.Background())
		assert.NoError(t, err, dir)
		assert.Zero(t, applied, dir)
	}
}

func TestSeed_FailingFileIsSkipped(t *testing.T) {
	dir := t.TempDir()
	writeSeed(t, dir, "001_bad.sql", "INSERT INTO nonexistent_table VALUES (1);")
	writeSeed(t, dir, "002_events.sql", "INSERT INTO events (event_id, venue) VALUES ('20260314_BONDI_MARK', 'Bondi Market');")
	m, mock := seeder(t, dir, true)

	mock.ExpectExec("INSERT INTO nonexistent_table").WillReturnError(errors.New("relation does not exist"))
	mock.ExpectExec("INSERT INTO events").WillReturnResult(sqlmock.NewResult(0, 1))

	applied, err := m.Seed(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 1, applied)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSeed_UnreadableFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "001_invalid.sql"), 0o755))
	m, _ := seeder(t, dir, true)

	_, err := m.Seed(context.Background())
	assert.ErrorContains(t, err, "failed to read seed file 001_invalid.sql")
}

func TestMigrate_DatabaseNeverReady(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()
	fastRetries(t, 2)

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	mock.ExpectPing().WillReturnError(errors.New("connection refused"))

	err = Migrate(context.Background(), db, false, quietLogger)
	assert.ErrorContains(t, err, "database readiness check failed")
}
