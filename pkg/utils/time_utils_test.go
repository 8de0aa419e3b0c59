package utils

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateOnlyRoundTrip(t *testing.T) {
	var d DateOnly
	require.NoError(t, json.Unmarshal([]byte(`"2026-09-01"`), &d))

	assert.Equal(t, 2026, d.Year())
	assert.Equal(t, "2026-09-01", d.String())

	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2026-09-01"`, string(out))
}

func TestDateOnlyRejectsOtherFormats(t *testing.T) {
	var d DateOnly
	assert.Error(t, json.Unmarshal([]byte(`"09/01/2026"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`"2026-09-01T10:00:00Z"`), &d))
}

func TestDateOnlyNullIsZero(t *testing.T) {
	var d DateOnly
	require.NoError(t, json.Unmarshal([]byte(`null`), &d))
	assert.True(t, d.IsZero())

	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, "null", string(out))
}
