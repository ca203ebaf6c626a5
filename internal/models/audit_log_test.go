package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsAuditAction(t *testing.T) {
	for _, action := range auditActions {
		assert.True(t, IsAuditAction(action), action)
	}
	assert.False(t, IsAuditAction("deleted_everything"))
	assert.False(t, IsAuditAction(""))
}

func TestAuditLog_BeforeCreate(t *testing.T) {
	log := &AuditLog{Action: AuditActionSalesSaved}
	require.NoError(t, log.BeforeCreate(nil))

	assert.NotEqual(t, uuid.Nil, log.ID)
	assert.Equal(t, "UTC", log.CreatedAt.Location().String())

	id := log.ID
	require.NoError(t, log.BeforeCreate(nil))
	assert.Equal(t, id, log.ID, "an assigned id is kept")
}

func TestAuditMetadata_Value(t *testing.T) {
	empty, err := AuditMetadata{}.Value()
	require.NoError(t, err)
	assert.Nil(t, empty)

	v, err := AuditMetadata{"rows": 2}.Value()
	require.NoError(t, err)
	assert.Equal(t, `{"rows":2}`, v)

	_, err = AuditMetadata{"bad": make(chan int)}.Value()
	assert.ErrorContains(t, err, "failed to encode audit metadata")
}

func TestAuditMetadata_Scan(t *testing.T) {
	var m AuditMetadata

	require.NoError(t, m.Scan([]byte(`{"sheet":"Events","rows":3}`)))
	assert.Equal(t, "Events", m.Text("sheet"))
	assert.Equal(t, "", m.Text("rows"), "non-string values read as empty")
	assert.Equal(t, float64(3), m["rows"])

	require.NoError(t, m.Scan(`{"gross_total":"200.00"}`))
	assert.Equal(t, "200.00", m.Text("gross_total"))
	assert.Empty(t, m.Text("sheet"), "scan replaces, never merges")

	require.NoError(t, m.Scan(nil))
	assert.Nil(t, m)

	assert.ErrorContains(t, m.Scan(42), "cannot scan int")
	assert.ErrorContains(t, m.Scan("{"), "failed to decode audit metadata")
}
