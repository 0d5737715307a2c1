package result

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultJSON_WireForm(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(Ok[int, string](5))
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":true,"value":5}`, string(data))

	data, err = json.Marshal(Err[int, string]("boom"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":false,"error":"boom"}`, string(data))
}

func TestOptionJSON_WireForm(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(Some("x"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"some":true,"value":"x"}`, string(data))

	data, err = json.Marshal(None[string]())
	require.NoError(t, err)
	assert.JSONEq(t, `{"some":false}`, string(data))
}

func TestResultJSON_RoundTrip(t *testing.T) {
	t.Parallel()

	type payload struct {
		Name string `json:"name"`
		N    int    `json:"n"`
	}

	for _, original := range []Result[payload, string]{
		Ok[payload, string](payload{Name: "a", N: 1}),
		Err[payload, string]("boom"),
	} {
		data, err := json.Marshal(original)
		require.NoError(t, err)

		var decoded Result[payload, string]
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, original, decoded)
	}
}

func TestOptionJSON_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, original := range []Option[int]{Some(42), None[int]()} {
		data, err := json.Marshal(original)
		require.NoError(t, err)

		var decoded Option[int]
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, original, decoded)
	}
}

func TestResultJSON_ZeroValuePayload(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(Ok[int, string](0))
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":true,"value":0}`, string(data))

	var decoded Result[int, string]
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, Ok[int, string](0), decoded)
}
