package decoder

// PenaltyFactor scales the partial objective of an infeasible
// PolicyProfit decode.
const PenaltyFactor = 9999

// Status tells whether a decode completed its route.
type Status uint8

const (
	// StatusFeasible marks a complete route within every range limit.
	StatusFeasible Status = iota + 1
	// StatusInfeasible marks an early exit on a range violation.
	StatusInfeasible
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case StatusFeasible:
		return "feasible"
	case StatusInfeasible:
		return "infeasible"
	default:
		return "unknown"
	}
}

// Violation describes the step that broke a range limit.
type Violation struct {
	Slot    int     // scan position in the permutation
	Node    int     // customer node index that was being added
	Vehicle int     // node index of the leg's vehicle anchor
	Leg     float64 // raw leg distance including the offending step
	Range   float64 // anchor's range limit
}

// Result is the outcome of one decode. It is always fully defined:
// infeasibility is encoded in Status and Objective, never as an error.
type Result struct {
	Status Status

	// Objective is the score to minimize: the policy objective for a
	// feasible route, the policy penalty otherwise.
	Objective float64

	// Route lists node indices in construction order. It holds every node
	// exactly once when Status is StatusFeasible. An infeasible decode keeps
	// the partial route built up to the violation (under PolicyProfit the
	// violating customer is included, under PolicyDistance it is not).
	Route []int

	// Cost and Profit are the α-weighted components accumulated under
	// PolicyProfit (Σ α·d and Σ (1−α)·profit); zero under PolicyDistance.
	Cost   float64
	Profit float64

	// Violation is set when Status is StatusInfeasible.
	Violation *Violation
}

// IsFeasible reports whether the decode produced a complete route.
func (r Result) IsFeasible() bool { return r.Status == StatusFeasible }

// ScaledPenalty is the PolicyProfit penalty: the objective accumulated up
// to and including the violating step, times PenaltyFactor.
func ScaledPenalty(combined float64) float64 {
	return combined * PenaltyFactor
}

// FixedPenalty is the PolicyDistance penalty: the largest raw distance of
// the instance times its node count. It ignores all accumulated cost.
func FixedPenalty(maxDistance float64, n int) float64 {
	return maxDistance * float64(n)
}
