package abi

import (
	"errors"
	"fmt"
)

// Error kinds surfaced by the codec. Callers match with errors.Is; every
// failure is raised at the point of detection and there are no partial
// results.
var (
	// ErrInvalidArgument is returned for malformed inputs: wrong fixed-bytes
	// length, wrong fixed-array element count, bad address length, or a
	// non-numeric value where a number was required.
	ErrInvalidArgument = errors.New("abi: invalid argument")

	// ErrOutOfRange is returned when an integer does not fit the declared
	// bit width. Values are checked before encoding, never truncated.
	ErrOutOfRange = errors.New("abi: value out of range")

	// ErrBufferOverrun is returned when decoding would read past the end of
	// the input, including offsets and lengths that point beyond it.
	ErrBufferOverrun = errors.New("abi: buffer overrun")

	// ErrNotImplemented is returned for type names the codec does not
	// support (fixed-point types, function pointers, unknown names).
	ErrNotImplemented = errors.New("abi: type not implemented")
)

// ErrArityMismatch is the InvalidArgument kind raised when the number of
// values does not match the number of parameters.
var ErrArityMismatch = fmt.Errorf("%w: arity mismatch", ErrInvalidArgument)
