package decoder

import "errors"

var (
	// ErrNilInstance is returned by New for a nil instance.
	ErrNilInstance = errors.New("decoder: nil instance")

	// ErrInvalidAlpha is returned when α is outside [0,1] or not finite.
	ErrInvalidAlpha = errors.New("decoder: alpha must be in [0,1]")

	// ErrNoVehicle is returned when a permutation holds no vehicle anchor;
	// without this guard the cyclic scan would never terminate.
	ErrNoVehicle = errors.New("decoder: no vehicle anchor")

	// ErrInvalidPermutation is returned by DecodePermutation for input that
	// is not a permutation of 0..n-1.
	ErrInvalidPermutation = errors.New("decoder: invalid permutation")
)
