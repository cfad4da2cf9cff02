// Package instance loads a routing instance and builds the immutable context
// shared by every decode.
//
// An instance is a list of node records "id x y attr" preceded by one header
// line. Each record is resolved once into a tagged Node:
//
//   - Vehicle anchor (id > Threshold, default 1000): attr is the maximum
//     cumulative travel range of the leg it opens. Never rescaled.
//   - Customer (id ≤ Threshold): attr is a profit value, min-max rescaled to
//     [0,1] under PolicyProfit and kept raw under PolicyDistance.
//
// The Builder (New) computes the symmetric Euclidean distance matrix. Under
// PolicyProfit the working matrix is min-max normalized; the raw matrix is
// always kept so that leg distances can be compared against vehicle ranges
// in the same (raw) units under both policies.
//
// An *Instance is write-once/read-many: it exposes no mutators and is safe
// for concurrent reads from any number of goroutines.
package instance
