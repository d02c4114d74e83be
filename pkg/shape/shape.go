// Package shape normalizes record-like success values before they are stored
// in a response envelope. Shaping keeps the caller's static type: Shape[T]
// returns a T, never a map or an interface.
package shape

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrNotRecord is matched by every error Shape returns.
var ErrNotRecord = errors.New("value is not record-like")

// NotRecordError reports the type that failed the record-like check.
type NotRecordError struct {
	Type   string
	Reason string
}

func (e *NotRecordError) Error() string {
	return fmt.Sprintf("shape: %s is not record-like: %s", e.Type, e.Reason)
}

func (e *NotRecordError) Is(target error) bool {
	return target == ErrNotRecord
}

// Introspector is implemented by producers whose field set is only known at
// runtime. Implementers are treated as record-like regardless of their kind.
type Introspector interface {
	Fields() []Field
}

// Shape checks that v is record-like and returns an isolated deep copy of it.
func Shape[T any](v T) (T, error) {
	if err := check(reflect.ValueOf(v)); err != nil {
		var zero T
		return zero, err
	}
	return Clone(v), nil
}

// IsRecord reports whether v would be accepted by Shape.
func IsRecord(v any) bool {
	return check(reflect.ValueOf(v)) == nil
}

var introspectorType = reflect.TypeOf((*Introspector)(nil)).Elem()

func check(rv reflect.Value) error {
	if !rv.IsValid() {
		return &NotRecordError{Type: "nil", Reason: "no value"}
	}
	if rv.Type().Implements(introspectorType) {
		if rv.Kind() == reflect.Pointer && rv.IsNil() {
			return &NotRecordError{Type: rv.Type().String(), Reason: "nil pointer"}
		}
		return nil
	}
	switch rv.Kind() {
	case reflect.Struct:
		return nil
	case reflect.Pointer:
		if rv.Type().Elem().Kind() != reflect.Struct {
			return &NotRecordError{Type: rv.Type().String(), Reason: "pointer to " + rv.Type().Elem().Kind().String()}
		}
		if rv.IsNil() {
			return &NotRecordError{Type: rv.Type().String(), Reason: "nil pointer"}
		}
		return nil
	}
	return &NotRecordError{Type: rv.Type().String(), Reason: rv.Kind().String() + " has no named fields"}
}
