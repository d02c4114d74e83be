// Package response builds typed response envelopes. A call produces either a
// SuccessResponse[T], carrying the caller's payload with its exact type, or an
// ErrorResponse, carrying an ErrorDetail. Each variant only exposes the fields
// that belong to it.
package response

import (
	"encoding/json"
	"time"

	"github.com/angelmondragon/typed-api-response/pkg/shape"
)

// Variant names the shape an envelope holds.
type Variant string

const (
	VariantNone    Variant = ""
	VariantSuccess Variant = "success"
	VariantError   Variant = "error"
)

// String implements fmt.Stringer.
func (v Variant) String() string {
	if v == VariantNone {
		return "none"
	}
	return string(v)
}

// Meta is present on every envelope regardless of variant.
type Meta struct {
	Status    int       `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	RequestID string    `json:"request_id,omitempty"`
}

// ErrorDetail describes the error an ErrorResponse was built from.
type ErrorDetail struct {
	Type string `json:"type"`
	Msg  string `json:"msg"`
}

// Response is implemented only by SuccessResponse[T] and ErrorResponse, so a
// type switch over it is exhaustive.
type Response interface {
	json.Marshaler
	Succeeded() bool
	Meta() Meta
	isResponse()
}

// SuccessPayload carries shaped data. It has no error field.
type SuccessPayload[T any] struct {
	data T
}

// Success is always true.
func (SuccessPayload[T]) Success() bool { return true }

// Data returns a copy of the payload, so callers cannot mutate the envelope.
func (p SuccessPayload[T]) Data() T { return shape.Clone(p.data) }

// ErrorPayload carries an error detail. It has no data field.
type ErrorPayload struct {
	detail ErrorDetail
}

// Success is always false.
func (ErrorPayload) Success() bool { return false }

func (p ErrorPayload) Err() ErrorDetail { return p.detail }

type SuccessResponse[T any] struct {
	payload SuccessPayload[T]
	meta    Meta
}

func (r SuccessResponse[T]) Payload() SuccessPayload[T] { return r.payload }
func (r SuccessResponse[T]) Meta() Meta                 { return r.meta }
func (r SuccessResponse[T]) Succeeded() bool            { return true }
func (SuccessResponse[T]) isResponse()                  {}

type ErrorResponse struct {
	payload ErrorPayload
	meta    Meta
}

func (r ErrorResponse) Payload() ErrorPayload { return r.payload }
func (r ErrorResponse) Meta() Meta            { return r.meta }
func (r ErrorResponse) Succeeded() bool       { return false }
func (ErrorResponse) isResponse()             {}

// Envelope holds exactly one of a SuccessResponse[T] or an ErrorResponse. The
// zero Envelope holds neither and reports VariantNone.
type Envelope[T any] struct {
	success *SuccessResponse[T]
	failure *ErrorResponse
}

func (e Envelope[T]) Variant() Variant {
	switch {
	case e.success != nil:
		return VariantSuccess
	case e.failure != nil:
		return VariantError
	}
	return VariantNone
}

// Success narrows the envelope to its success variant.
func (e Envelope[T]) Success() (SuccessResponse[T], bool) {
	if e.success == nil {
		return SuccessResponse[T]{}, false
	}
	return *e.success, true
}

// Failure narrows the envelope to its error variant.
func (e Envelope[T]) Failure() (ErrorResponse, bool) {
	if e.failure == nil {
		return ErrorResponse{}, false
	}
	return *e.failure, true
}

// Response returns the held variant, or nil for the zero Envelope.
func (e Envelope[T]) Response() Response {
	switch {
	case e.success != nil:
		return *e.success
	case e.failure != nil:
		return *e.failure
	}
	return nil
}

func (e Envelope[T]) Meta() Meta {
	if r := e.Response(); r != nil {
		return r.Meta()
	}
	return Meta{}
}

// Match folds an envelope into a single value. The zero Envelope yields the
// zero R.
func Match[T, R any](e Envelope[T], onSuccess func(SuccessResponse[T]) R, onFailure func(ErrorResponse) R) R {
	switch {
	case e.success != nil:
		return onSuccess(*e.success)
	case e.failure != nil:
		return onFailure(*e.failure)
	}
	var zero R
	return zero
}
