package response

import (
	"reflect"

	pkgerrors "github.com/angelmondragon/typed-api-response/pkg/errors"
	"github.com/angelmondragon/typed-api-response/pkg/shape"
)

// Build is the single construction entry point. Exactly one of data and err
// must be non-nil; anything else is a contract violation, reported as an
// error with code CONTRACT_VIOLATION, and no envelope is built. A non-nil err
// always yields an error envelope, never a returned error.
func Build[T any](data *T, err error, status int, opts ...Option) (Envelope[T], error) {
	hasErr := !isNilError(err)
	switch {
	case data != nil && hasErr:
		return Envelope[T]{}, contractViolation(ErrAmbiguousInput)
	case data == nil && !hasErr:
		return Envelope[T]{}, contractViolation(ErrMissingInput)
	case data != nil:
		resp, shapeErr := Success(*data, status, opts...)
		if shapeErr != nil {
			return Envelope[T]{}, shapeErr
		}
		return Envelope[T]{success: &resp}, nil
	}

	resp, failErr := Failure(err, status, opts...)
	if failErr != nil {
		return Envelope[T]{}, failErr
	}
	return Envelope[T]{failure: &resp}, nil
}

// Success builds a success response whose payload keeps the exact type of
// data. A data value that is not record-like is a contract violation.
func Success[T any](data T, status int, opts ...Option) (SuccessResponse[T], error) {
	shaped, err := shape.Shape(data)
	if err != nil {
		return SuccessResponse[T]{}, contractViolation(err)
	}
	return SuccessResponse[T]{
		payload: SuccessPayload[T]{data: shaped},
		meta:    newMeta(status, opts),
	}, nil
}

// Failure builds an error response from err. It only fails when err is nil.
func Failure(err error, status int, opts ...Option) (ErrorResponse, error) {
	if isNilError(err) {
		return ErrorResponse{}, contractViolation(ErrMissingInput)
	}
	return ErrorResponse{
		payload: ErrorPayload{detail: Detail(err)},
		meta:    newMeta(status, opts),
	}, nil
}

func contractViolation(cause error) error {
	return pkgerrors.Wrap(pkgerrors.CodeContractViolation, cause, "build response")
}

// isNilError also catches typed nil pointers stored in an error interface.
func isNilError(err error) bool {
	if err == nil {
		return true
	}
	rv := reflect.ValueOf(err)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
