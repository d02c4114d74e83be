package response

import (
	"errors"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelmondragon/typed-api-response/internal/cart"
)

func TestSuccessJSON(t *testing.T) {
	c := cart.Cart{Currency: "USD", Items: []cart.Item{{Name: "x", Qty: 2}}}
	env, err := Build(&c, nil, 200, WithClock(fixedClock), WithRequestID("req-9"))
	require.NoError(t, err)

	raw, err := json.Marshal(env)
	require.NoError(t, err)

	var body struct {
		Payload struct {
			Success bool            `json:"success"`
			Data    cart.Cart       `json:"data"`
			Error   json.RawMessage `json:"error"`
		} `json:"payload"`
		Meta Meta `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(raw, &body))

	assert.True(t, body.Payload.Success)
	assert.Equal(t, 2, body.Payload.Data.Items[0].Qty)
	assert.Equal(t, "null", string(body.Payload.Error))
	assert.Equal(t, 200, body.Meta.Status)
	assert.Equal(t, "req-9", body.Meta.RequestID)
	assert.True(t, fixedNow.Equal(body.Meta.Timestamp))
}

func TestErrorJSON(t *testing.T) {
	env, err := Build[cart.Cart](nil, errors.New("nope"), 500, WithClock(fixedClock))
	require.NoError(t, err)

	raw, err := json.Marshal(env)
	require.NoError(t, err)

	var body map[string]map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))

	payload := body["payload"]
	assert.Equal(t, false, payload["success"])
	assert.Contains(t, payload, "data")
	assert.Nil(t, payload["data"])
	assert.Equal(t, map[string]any{"type": "errors.errorString", "msg": "nope"}, payload["error"])

	meta := body["meta"]
	assert.Equal(t, float64(500), meta["status"])
	assert.NotContains(t, meta, "request_id")
}

func TestZeroEnvelopeJSON(t *testing.T) {
	raw, err := json.Marshal(Envelope[cart.Cart]{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(raw))
}
