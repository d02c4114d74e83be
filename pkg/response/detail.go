package response

import (
	"errors"
	"reflect"
	"strings"
)

// Kinder is implemented by errors that carry their own classification.
type Kinder interface {
	Kind() string
}

// Detail extracts the type and message of err. The type is the Kind of the
// first error in the chain that reports one, otherwise the concrete Go type
// name of err with fmt wrappers looked through.
func Detail(err error) ErrorDetail {
	if isNilError(err) {
		return ErrorDetail{}
	}
	return ErrorDetail{
		Type: classify(err),
		Msg:  err.Error(),
	}
}

func classify(err error) string {
	var k Kinder
	if errors.As(err, &k) && !isNilError(k.(error)) {
		if kind := k.Kind(); kind != "" {
			return kind
		}
	}

	for isFmtWrapper(err) {
		next := unwrapFirst(err)
		if isNilError(next) {
			break
		}
		err = next
	}
	return typeName(err)
}

func isFmtWrapper(err error) bool {
	switch typeName(err) {
	case "fmt.wrapError", "fmt.wrapErrors":
		return true
	}
	return false
}

func unwrapFirst(err error) error {
	switch u := err.(type) {
	case interface{ Unwrap() error }:
		return u.Unwrap()
	case interface{ Unwrap() []error }:
		if errs := u.Unwrap(); len(errs) > 0 {
			return errs[0]
		}
	}
	return nil
}

func typeName(err error) string {
	return strings.TrimLeft(reflect.TypeOf(err).String(), "*")
}
