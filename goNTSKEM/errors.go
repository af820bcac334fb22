package gontskem

import "errors"

var (
	// ErrInvalidCapacity is returned when a polynomial cannot be created with the requested number of slots.
	ErrInvalidCapacity = errors.New("gontskem: invalid polynomial capacity")
	// ErrReleased is returned by operations on a polynomial whose storage was released.
	ErrReleased = errors.New("gontskem: polynomial released")
	// ErrInsufficientCapacity is returned when an output polynomial is too small for the result.
	ErrInsufficientCapacity = errors.New("gontskem: insufficient output capacity")
	// ErrIndexOutOfRange is returned by checked coefficient access outside [0, capacity).
	ErrIndexOutOfRange = errors.New("gontskem: coefficient index out of range")
	// ErrInvalidDegree is returned when a degree outside [-1, capacity) is requested.
	ErrInvalidDegree = errors.New("gontskem: invalid degree")
	// ErrAliasedOperands is returned when an operation receives the same polynomial as input and output.
	ErrAliasedOperands = errors.New("gontskem: aliased operands")
	// ErrZeroModulus is returned when reducing modulo the zero polynomial.
	ErrZeroModulus = errors.New("gontskem: zero modulus")

	// ErrInvalidFieldDegree is returned for a field extension degree outside [2, 16].
	ErrInvalidFieldDegree = errors.New("gontskem: invalid field degree")
	// ErrReducibleModulus is returned when the field modulus has no primitive element.
	ErrReducibleModulus = errors.New("gontskem: field modulus is not irreducible")

	// ErrMalformedEncoding is returned when packed bytes do not describe whole coefficient pairs.
	ErrMalformedEncoding = errors.New("gontskem: malformed polynomial encoding")
	// ErrCoefficientOverflow is returned when a coefficient does not fit the 12-bit packing.
	ErrCoefficientOverflow = errors.New("gontskem: coefficient exceeds 12 bits")
	// ErrInvalidSampleDegree is returned when a sampled degree does not fit the requested capacity.
	ErrInvalidSampleDegree = errors.New("gontskem: invalid sample degree")
)
