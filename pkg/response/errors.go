package response

import "errors"

var (
	ErrAmbiguousInput = errors.New("both data and error supplied")
	ErrMissingInput   = errors.New("neither data nor error supplied")
)
