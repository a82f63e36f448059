package backend

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractList(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want int
	}{
		{name: "bare array", raw: `[{"a":1},{"b":2}]`, want: 2},
		{name: "list field", raw: `{"list":[{"a":1}]}`, want: 1},
		{name: "data field", raw: `{"data":[{"a":1},{"b":2},{"c":3}]}`, want: 3},
		{name: "list wins over data", raw: `{"list":[{"a":1}],"data":[{"b":2},{"c":3}]}`, want: 1},
		{name: "object without lists", raw: `{"total":0}`, want: 0},
		{name: "scalar", raw: `42`, want: 0},
		{name: "null", raw: `null`, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Len(t, extractList(json.RawMessage(tt.raw)), tt.want)
		})
	}
}

func TestFlexString(t *testing.T) {
	t.Parallel()

	var payload struct {
		ID flexString `json:"id"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"id":"abc"}`), &payload))
	assert.Equal(t, flexString("abc"), payload.ID)

	require.NoError(t, json.Unmarshal([]byte(`{"id":1024}`), &payload))
	assert.Equal(t, flexString("1024"), payload.ID)

	payload.ID = ""
	require.NoError(t, json.Unmarshal([]byte(`{"id":null}`), &payload))
	assert.Equal(t, flexString(""), payload.ID)
}

func TestNormalizeDestinations_SkipsNonObjects(t *testing.T) {
	t.Parallel()

	items := extractList(json.RawMessage(`[{"id":"d1","name":"成都"},"oops",{"id":"d2"}]`))
	destinations := normalizeDestinations(items)

	require.Len(t, destinations, 2)
	assert.Equal(t, "成都", destinations[0].Name)
	assert.Equal(t, "未知地点", destinations[1].Name)
	assert.Equal(t, "/images/default-destination.jpg", destinations[1].Image)
}
