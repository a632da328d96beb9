package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartyUnmarshalPlainString(t *testing.T) {
	var p Party
	require.NoError(t, json.Unmarshal([]byte(`"ACC123"`), &p))

	assert.False(t, p.Structured())
	assert.Equal(t, "ACC123", p.Display())
	assert.Equal(t, "ACC123", p.Account())
}

func TestPartyUnmarshalStructured(t *testing.T) {
	var p Party
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Alice","account":"ACC123"}`), &p))

	assert.True(t, p.Structured())
	assert.Equal(t, "Alice (ACC123)", p.Display())
	assert.Equal(t, "ACC123", p.Account())
}

func TestPartyUnmarshalStructuredMissingFields(t *testing.T) {
	var noName Party
	require.NoError(t, json.Unmarshal([]byte(`{"account":"ACC123"}`), &noName))
	assert.Equal(t, " (ACC123)", noName.Display())
	assert.Equal(t, "ACC123", noName.Account())

	var noAccount Party
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Alice"}`), &noAccount))
	assert.Equal(t, "Alice ()", noAccount.Display())
	assert.Equal(t, "", noAccount.Account())
}

func TestPartyUnmarshalRejectsOtherShapes(t *testing.T) {
	var p Party
	assert.Error(t, json.Unmarshal([]byte(`42`), &p))
	assert.Error(t, json.Unmarshal([]byte(`["ACC123"]`), &p))
}

func TestPartyMarshalRoundTripsShape(t *testing.T) {
	plain, err := json.Marshal(PlainParty("ACC123"))
	require.NoError(t, err)
	assert.JSONEq(t, `"ACC123"`, string(plain))

	structured, err := json.Marshal(StructuredParty("Alice", "ACC123"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Alice","account":"ACC123"}`, string(structured))
}
