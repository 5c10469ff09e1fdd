package validation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func payloadFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "payload.json")
	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0o644))
	return path
}

func TestValidArguments(t *testing.T) {
	r := ValidateArguments(payloadFile(t), "2019-01-01T00:00:00", "2019-01-02T00:00:00", "Offices")
	assert.True(t, r.Valid, "%+v", r.Errors)
}

func TestMissingPayloadFile(t *testing.T) {
	r := ValidateArguments(filepath.Join(t.TempDir(), "absent.json"), "2019-01-01T00:00:00", "2019-01-02T00:00:00", "Offices")
	require.False(t, r.Valid)
	assert.Equal(t, LevelArguments, r.Errors[0].Level)
	assert.Equal(t, "payload", r.Errors[0].Path)
}

func TestMalformedTimestamps(t *testing.T) {
	r := ValidateArguments(payloadFile(t), "01/01/2019", "2019-01-02 00:00:00", "Offices")
	require.False(t, r.Valid)
	assert.Len(t, r.Errors, 2)
}

func TestWindowOrder(t *testing.T) {
	r := ValidateArguments(payloadFile(t), "2019-01-02T00:00:00", "2019-01-01T00:00:00", "Offices")
	require.False(t, r.Valid)
	assert.Equal(t, "end_time", r.Errors[0].Path)

	// Equal bounds are rejected too.
	r = ValidateArguments(payloadFile(t), "2019-01-01T00:00:00", "2019-01-01T00:00:00", "Offices")
	assert.False(t, r.Valid)
}

func TestBuildingUseIsCaseSensitive(t *testing.T) {
	r := ValidateArguments(payloadFile(t), "2019-01-01T00:00:00", "2019-01-02T00:00:00", "offices")
	require.False(t, r.Valid)
	assert.Equal(t, "building_use", r.Errors[0].Path)
	assert.Contains(t, r.Errors[0].Expected, "Offices")
}
