package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelmondragon/typed-api-response/api/responses"
	pkgerrors "github.com/angelmondragon/typed-api-response/pkg/errors"
	"github.com/angelmondragon/typed-api-response/pkg/logger"
	"github.com/angelmondragon/typed-api-response/pkg/response"
)

type pong struct {
	Status string `json:"status"`
}

func TestRequestIDMintsAndPropagates(t *testing.T) {
	wr := responses.NewWriter(logger.Nop(), nil)
	handler := RequestID(logger.Nop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		responses.WriteData(r.Context(), wr, w, http.StatusOK, pong{Status: "ok"})
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	id := rec.Header().Get(requestIDHeader)
	_, err := uuid.Parse(id)
	require.NoError(t, err)

	var body struct {
		Meta response.Meta `json:"meta"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, id, body.Meta.RequestID)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(requestIDHeader, "given-id")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, "given-id", rec.Header().Get(requestIDHeader))
}

func TestRecovererWritesInternalEnvelope(t *testing.T) {
	wr := responses.NewWriter(logger.Nop(), nil)
	handler := Recoverer(wr)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var m map[string]int
		m["boom"] = 1
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	var body struct {
		Payload struct {
			Success bool                 `json:"success"`
			Error   response.ErrorDetail `json:"error"`
		} `json:"payload"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.False(t, body.Payload.Success)
	assert.Equal(t, string(pkgerrors.CodeInternal), body.Payload.Error.Type)
}

func TestRecovererPassesThrough(t *testing.T) {
	handler := Recoverer(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
