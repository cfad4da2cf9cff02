// Package keys maps random-key vectors to node orderings.
//
// A key vector assigns one real value per node; sorting node indices by key
// ascending yields the Permutation the route constructor scans. Order is a
// pure function and safe for concurrent use on distinct inputs.
//
// The package also centralizes deterministic key generation (NewRand,
// Derive, Random) so drivers, examples and tests share one reproducible
// stream policy: seed==0 ⇒ a fixed default seed, never the clock.
package keys
