package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCreatedAtNumericVariants(t *testing.T) {
	want := time.UnixMilli(1700000000000)

	for _, raw := range []string{
		"1700000000",     // seconds
		"1700000000000",  // milliseconds
		"17000000000000", // over-long, truncated to the first 13 digits
	} {
		got, err := ParseCreatedAt(raw)
		require.NoError(t, err, "input %q", raw)
		assert.True(t, got.Equal(want), "input %q resolved to %v, want %v", raw, got, want)
	}
}

func TestParseCreatedAtOddDigitLengthIsMilliseconds(t *testing.T) {
	// 12 digits: neither the seconds nor the truncation rule applies, so the
	// raw digits are milliseconds.
	got, err := ParseCreatedAt("170000000000")
	require.NoError(t, err)
	assert.True(t, got.Equal(time.UnixMilli(170000000000)))
}

func TestParseCreatedAtDateStrings(t *testing.T) {
	got, err := ParseCreatedAt("2023-11-14T22:13:20Z")
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2023, 11, 14, 22, 13, 20, 0, time.UTC)))

	got, err = ParseCreatedAt("2023-11-14")
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2023, 11, 14, 0, 0, 0, 0, time.UTC)))
}

func TestParseCreatedAtRejectsGarbage(t *testing.T) {
	_, err := ParseCreatedAt("not-a-date")
	assert.Error(t, err)

	_, err = ParseCreatedAt("")
	assert.Error(t, err)
}
