package instance

import "errors"

var (
	// ErrOpen is returned when the instance source cannot be opened.
	ErrOpen = errors.New("instance: cannot open source")

	// ErrMalformedRecord is returned for a record line that is not exactly
	// "id x y attr" with an integer id and three real numbers.
	ErrMalformedRecord = errors.New("instance: malformed record")

	// ErrEmpty is returned when the source holds no node records.
	ErrEmpty = errors.New("instance: no node records")

	// ErrNoVehicle is returned when no record is a vehicle anchor; the
	// cyclic scan could never start a leg on such an instance.
	ErrNoVehicle = errors.New("instance: no vehicle anchor")

	// ErrNaNInf is returned for NaN or ±Inf coordinates or attributes.
	ErrNaNInf = errors.New("instance: NaN or Inf value")

	// ErrInvalidPolicy is returned for an unknown scoring policy.
	ErrInvalidPolicy = errors.New("instance: invalid policy")
)
