package instance

import (
	"fmt"
	"strings"
)

// DefaultThreshold is the id above which a record is a vehicle anchor.
const DefaultThreshold = 1000

// Record is one raw line of an instance source: "id x y attr".
type Record struct {
	ID   int
	X    float64
	Y    float64
	Attr float64
}

// Kind tags the role of a node.
type Kind uint8

const (
	// Customer nodes are visited by legs and may carry a profit.
	Customer Kind = iota
	// Vehicle nodes anchor a new leg and carry its range limit.
	Vehicle
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case Customer:
		return "customer"
	case Vehicle:
		return "vehicle"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Node is a Record resolved into its role. Range is meaningful only for
// vehicles, Profit only for customers; the other field is zero.
type Node struct {
	ID     int
	X      float64
	Y      float64
	Kind   Kind
	Range  float64 // maximum cumulative leg distance, raw units
	Profit float64 // rescaled to [0,1] under PolicyProfit
}

// IsVehicle reports whether n anchors a leg.
func (n Node) IsVehicle() bool { return n.Kind == Vehicle }

// Policy selects how distances and attributes are prepared and how the
// decoder scores a route.
type Policy uint8

const (
	// PolicyProfit normalizes distances and customer profits to [0,1] and
	// scores α·distance − (1−α)·profit.
	PolicyProfit Policy = iota + 1
	// PolicyDistance keeps raw units and scores total travelled distance.
	PolicyDistance
)

// String implements fmt.Stringer.
func (p Policy) String() string {
	switch p {
	case PolicyProfit:
		return "profit"
	case PolicyDistance:
		return "distance"
	default:
		return fmt.Sprintf("Policy(%d)", uint8(p))
	}
}

// Valid reports whether p is a known policy.
func (p Policy) Valid() bool {
	return p == PolicyProfit || p == PolicyDistance
}

// ParsePolicy maps "profit" / "distance" (case-insensitive) to a Policy.
// The single-letter aliases "a" and "b" are accepted as well.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "profit", "a":
		return PolicyProfit, nil
	case "distance", "b":
		return PolicyDistance, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidPolicy, s)
	}
}
