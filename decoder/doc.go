// Package decoder turns random-key vectors into multi-vehicle routes and
// scores them. It is the fitness function an evolutionary random-key driver
// calls once per candidate.
//
// Construction (per decode):
//
//  1. keys.Order sorts node indices by key into a permutation.
//  2. The permutation is scanned cyclically, exactly once: from its first
//     vehicle anchor to the end, then from the start up to that anchor.
//     Every vehicle anchor opens a new leg (leg distance reset to 0); every
//     customer is appended to the current leg.
//  3. A leg whose cumulative raw distance exceeds its anchor's range ends
//     the decode early with a penalty objective instead of an error.
//
// Policies (see instance.Policy):
//
//   - PolicyProfit: objective Σ α·d − (1−α)·profit over normalized
//     distances and profits. The violating customer is accumulated before
//     the range check; the penalty is that partial objective × 9999.
//   - PolicyDistance: objective Σ d in raw units. The range check runs
//     before accepting a customer; the penalty is maxDistance × n.
//
// Leg distances are always compared against ranges in raw input units, so
// both policies share one feasibility semantics.
//
// A *Decoder is immutable after New and safe for concurrent Decode calls;
// every call allocates its own route and accumulators.
package decoder
