package response

import (
	"github.com/goccy/go-json"
)

type successWire[T any] struct {
	Payload struct {
		Success bool         `json:"success"`
		Data    T            `json:"data"`
		Error   *ErrorDetail `json:"error"`
	} `json:"payload"`
	Meta Meta `json:"meta"`
}

type errorWire struct {
	Payload struct {
		Success bool        `json:"success"`
		Data    any         `json:"data"`
		Error   ErrorDetail `json:"error"`
	} `json:"payload"`
	Meta Meta `json:"meta"`
}

// MarshalJSON renders {"payload":{"success":true,"data":...,"error":null},"meta":{...}}.
func (r SuccessResponse[T]) MarshalJSON() ([]byte, error) {
	var w successWire[T]
	w.Payload.Success = true
	w.Payload.Data = r.payload.data
	w.Meta = r.meta
	return json.Marshal(w)
}

// MarshalJSON renders {"payload":{"success":false,"data":null,"error":{...}},"meta":{...}}.
func (r ErrorResponse) MarshalJSON() ([]byte, error) {
	var w errorWire
	w.Payload.Error = r.payload.detail
	w.Meta = r.meta
	return json.Marshal(w)
}

// MarshalJSON renders the held variant, or null for the zero Envelope.
func (e Envelope[T]) MarshalJSON() ([]byte, error) {
	if r := e.Response(); r != nil {
		return r.MarshalJSON()
	}
	return []byte("null"), nil
}
