package instance

import (
	"fmt"
	"math"

	"github.com/AntonioDantas/RKO/matrix"
)

// Instance is the immutable context shared by all decodes of one problem.
type Instance struct {
	nodes     []Node
	dist      *matrix.Dense // working units: normalized under PolicyProfit
	raw       *matrix.Dense // Euclidean distances in input units
	policy    Policy
	threshold int
	vehicles  int

	minDist, maxDist float64 // raw extent, diagonal included
	minAttr, maxAttr float64 // customer attribute extent before rescaling
}

// symTol bounds |a_ij − a_ji| and |a_ii| for caller-supplied distance matrices.
const symTol = 1e-9

// New runs the Builder & Normalizer over records using Euclidean distances.
//
// Stages:
//  1. Validate records (non-empty, finite) and policy.
//  2. Resolve each record into a Customer or Vehicle node.
//  3. Build the raw Euclidean matrix and its extent.
//  4. PolicyProfit: normalize distances and customer profits (each skipped
//     when its range is degenerate). PolicyDistance: keep raw units.
//
// Errors: ErrEmpty, ErrNaNInf, ErrNoVehicle, ErrInvalidPolicy.
// Complexity: O(n²) time and memory.
func New(records []Record, opts ...Option) (*Instance, error) {
	o := gatherOptions(opts...)
	in, pts, err := resolve(records, o)
	if err != nil {
		return nil, err
	}

	raw, err := matrix.Euclidean(pts)
	if err != nil {
		return nil, fmt.Errorf("instance: %w", err)
	}

	return in.finish(raw, o)
}

// NewWithDistances is New for instances whose travel distances are not
// planar (road networks, precomputed tables). raw must be a finite,
// symmetric len(records)×len(records) matrix with a zero diagonal and
// non-negative entries; it is copied, never retained.
//
// Errors: those of New plus wrapped matrix sentinels (ErrNonSquare,
// ErrAsymmetry, ErrNaNInf, ErrNonZeroDiagonal, ErrNegativeWeight) and
// matrix.ErrInvalidDimensions on a size mismatch.
func NewWithDistances(records []Record, raw *matrix.Dense, opts ...Option) (*Instance, error) {
	o := gatherOptions(opts...)
	in, _, err := resolve(records, o)
	if err != nil {
		return nil, err
	}
	if err = matrix.ValidateSymmetric(raw, symTol); err != nil {
		return nil, fmt.Errorf("instance: %w", err)
	}
	if raw.Rows() != len(records) {
		return nil, fmt.Errorf("instance: %d×%d distances for %d records: %w",
			raw.Rows(), raw.Cols(), len(records), matrix.ErrInvalidDimensions)
	}
	if err = matrix.ValidateFinite(raw); err != nil {
		return nil, fmt.Errorf("instance: %w", err)
	}
	if err = matrix.ValidateDistance(raw, symTol); err != nil {
		return nil, fmt.Errorf("instance: %w", err)
	}

	return in.finish(raw.Clone(), o)
}

// resolve validates records and tags each one as Customer or Vehicle.
func resolve(records []Record, o Options) (*Instance, []matrix.Point, error) {
	if !o.policy.Valid() {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidPolicy, o.policy)
	}
	n := len(records)
	if n == 0 {
		return nil, nil, ErrEmpty
	}

	in := &Instance{
		nodes:     make([]Node, n),
		policy:    o.policy,
		threshold: o.threshold,
	}
	pts := make([]matrix.Point, n)
	for i, rec := range records {
		if !finite(rec.X) || !finite(rec.Y) || !finite(rec.Attr) {
			return nil, nil, fmt.Errorf("%w: record %d (id %d)", ErrNaNInf, i, rec.ID)
		}
		nd := Node{ID: rec.ID, X: rec.X, Y: rec.Y}
		if rec.ID > o.threshold {
			nd.Kind = Vehicle
			nd.Range = rec.Attr
			in.vehicles++
		} else {
			nd.Kind = Customer
			nd.Profit = rec.Attr
		}
		in.nodes[i] = nd
		pts[i] = matrix.Point{X: rec.X, Y: rec.Y}
	}
	if in.vehicles == 0 {
		return nil, nil, fmt.Errorf("%w: no id above %d among %d records", ErrNoVehicle, o.threshold, n)
	}

	return in, pts, nil
}

// finish records the raw matrix and applies the policy-specific rescaling.
func (in *Instance) finish(raw *matrix.Dense, o Options) (*Instance, error) {
	if err := matrix.ValidateFinite(raw); err != nil {
		return nil, fmt.Errorf("instance: %w", err)
	}
	in.raw = raw
	in.minDist, in.maxDist, _ = matrix.Extent(raw)

	profits := make([]float64, 0, len(in.nodes)-in.vehicles)
	for _, nd := range in.nodes {
		if nd.Kind == Customer {
			profits = append(profits, nd.Profit)
		}
	}
	if len(profits) > 0 {
		in.minAttr, in.maxAttr, _ = matrix.MinMax(profits)
	}

	var err error
	switch in.policy {
	case PolicyProfit:
		in.dist, err = matrix.NormalizeMinMax(raw, in.minDist, in.maxDist)
		if err != nil {
			return nil, fmt.Errorf("instance: %w", err)
		}
		for i := range in.nodes {
			if in.nodes[i].Kind == Customer {
				in.nodes[i].Profit = matrix.Rescale(in.nodes[i].Profit, in.minAttr, in.maxAttr)
			}
		}
	case PolicyDistance:
		in.dist = raw
	}

	o.logger.Debug("instance built",
		"nodes", len(in.nodes),
		"vehicles", in.vehicles,
		"policy", in.policy,
		"minDist", in.minDist,
		"maxDist", in.maxDist,
	)

	return in, nil
}

// N returns the number of nodes.
func (in *Instance) N() int { return len(in.nodes) }

// Node returns node i (load order). It panics if i is out of range, like a
// slice index.
func (in *Instance) Node(i int) Node { return in.nodes[i] }

// Nodes returns a copy of the node table.
func (in *Instance) Nodes() []Node {
	cp := make([]Node, len(in.nodes))
	copy(cp, in.nodes)
	return cp
}

// Policy returns the policy the instance was prepared for.
func (in *Instance) Policy() Policy { return in.policy }

// Threshold returns the vehicle id threshold used at build time.
func (in *Instance) Threshold() int { return in.threshold }

// Vehicles returns the number of vehicle anchors.
func (in *Instance) Vehicles() int { return in.vehicles }

// MinDist returns the smallest raw distance (0 whenever n ≥ 1).
func (in *Instance) MinDist() float64 { return in.minDist }

// MaxDist returns the largest raw distance; the distance policy uses it as
// penalty scale.
func (in *Instance) MaxDist() float64 { return in.maxDist }

// AttrRange returns the customer attribute extent observed before rescaling.
func (in *Instance) AttrRange() (lo, hi float64) { return in.minAttr, in.maxAttr }

// DistRow returns row i of the working matrix. The slice is shared and MUST
// NOT be modified.
func (in *Instance) DistRow(i int) []float64 { return in.dist.Row(i) }

// RawRow returns row i of the raw matrix. The slice is shared and MUST NOT
// be modified.
func (in *Instance) RawRow(i int) []float64 { return in.raw.Row(i) }

// Distances returns a copy of the working matrix.
func (in *Instance) Distances() *matrix.Dense { return in.dist.Clone() }

// RawDistances returns a copy of the raw matrix.
func (in *Instance) RawDistances() *matrix.Dense { return in.raw.Clone() }

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
