package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResourceID_UnmarshalJSON(t *testing.T) {
	var row struct {
		Table  ResourceID `json:"table"`
		Repeat RepeatRule `json:"repeat"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"table": 7, "repeat": false}`), &row))
	assert.Equal(t, ResourceID("7"), row.Table)
	assert.Equal(t, RepeatNone, row.Repeat)

	require.NoError(t, json.Unmarshal([]byte(`{"table": "table3", "repeat": "daily"}`), &row))
	assert.Equal(t, ResourceID("table3"), row.Table)
	assert.True(t, row.Repeat.IsDaily())

	require.NoError(t, json.Unmarshal([]byte(`{"table": 1, "repeat": "weekly"}`), &row))
	assert.Equal(t, RepeatRule("weekly"), row.Repeat)
	assert.False(t, row.Repeat.IsDaily())

	require.NoError(t, json.Unmarshal([]byte(`{"table": 1, "repeat": null}`), &row))
	assert.Equal(t, RepeatNone, row.Repeat)

	assert.Error(t, json.Unmarshal([]byte(`{"table": true}`), &row))
	assert.Error(t, json.Unmarshal([]byte(`{"table": 1, "repeat": 5}`), &row))
}

func TestResourceID_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(map[string]ResourceID{"a": "7", "b": "table3"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a": 7, "b": "table3"}`, string(data))

	data, err = json.Marshal([]ResourceID{"007", "+5", "-3", "0"})
	require.NoError(t, err)
	assert.JSONEq(t, `["007", "+5", -3, 0]`, string(data))

	data, err = json.Marshal(RepeatNone)
	require.NoError(t, err)
	assert.Equal(t, "false", string(data))
}

func TestResourceID_CanonicalNumbers(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want ResourceID
	}{
		{name: "integer", raw: `7`, want: "7"},
		{name: "trailing zero fraction", raw: `7.0`, want: "7"},
		{name: "exponent", raw: `7e0`, want: "7"},
		{name: "negative", raw: `-2.00`, want: "-2"},
		{name: "fractional stays as written", raw: `7.5`, want: "7.5"},
		{name: "leading zeros in a string are kept", raw: `"007"`, want: "007"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var id ResourceID
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &id))
			assert.Equal(t, tt.want, id)

			data, err := json.Marshal(id)
			require.NoError(t, err)
			var back ResourceID
			require.NoError(t, json.Unmarshal(data, &back))
			assert.Equal(t, id, back)
		})
	}

	assert.True(t, ResourceID("7").IsNumeric())
	assert.False(t, ResourceID("007").IsNumeric())
	assert.False(t, ResourceID("+5").IsNumeric())
}

func TestNewResourceID(t *testing.T) {
	id, err := NewResourceID(" 7 ")
	require.NoError(t, err)
	assert.Equal(t, ResourceID("7"), id)

	_, err = NewResourceID("  ")
	assert.ErrorIs(t, err, ErrInvalidResource)
}
