package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringListRoundTrip(t *testing.T) {
	original := StringList{"spring", "autumn", "winter"}

	value, err := original.Value()
	require.NoError(t, err)

	var decoded StringList
	require.NoError(t, decoded.Scan(value))
	assert.Equal(t, original, decoded)
}

func TestStringListValueNil(t *testing.T) {
	var list StringList

	value, err := list.Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", value)
}

func TestStringListScanSources(t *testing.T) {
	var list StringList

	require.NoError(t, list.Scan(`["summer"]`))
	assert.Equal(t, StringList{"summer"}, list)

	require.NoError(t, list.Scan([]byte(`["a","b"]`)))
	assert.Equal(t, StringList{"a", "b"}, list)

	require.NoError(t, list.Scan(nil))
	assert.Equal(t, StringList{}, list)

	require.NoError(t, list.Scan(""))
	assert.Equal(t, StringList{}, list)
}

func TestStringListScanMalformed(t *testing.T) {
	var list StringList

	// The service is the only writer, so malformed stored text is an error,
	// not something to coerce.
	assert.Error(t, list.Scan(`not json`))
	assert.Error(t, list.Scan(`{"a":1}`))
	assert.Error(t, list.Scan(42))
}

func TestStringListContains(t *testing.T) {
	list := StringList{"all-season"}

	assert.True(t, list.Contains("all-season"))
	assert.False(t, list.Contains("season"))
	assert.False(t, list.Contains("summer"))
}
