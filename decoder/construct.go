package decoder

import "github.com/AntonioDantas/RKO/instance"

// unset marks the anchor/last slots before the first vehicle is reached.
const unset = -1

// scan is the private state of one construction.
type scan struct {
	d    *Decoder
	perm []int

	anchor int     // slot of the current vehicle anchor
	last   int     // slot of the previously visited node
	leg    float64 // raw distance since the current anchor
	route  []int

	total    float64 // PolicyDistance
	cost     float64 // PolicyProfit: Σ α·d
	profit   float64 // PolicyProfit: Σ (1−α)·p
	combined float64 // PolicyProfit: cost − profit
}

// construct runs the cyclic scan as two bounded phases:
//
//	phase 1: slots first..n-1, where first is the first vehicle anchor;
//	phase 2: slots 0..first-1, all customers, continuing the open leg.
//
// Together they visit every slot exactly once, which is the single wrap of
// a cursor starting at 0 that skips slots until an anchor is set.
func (d *Decoder) construct(perm []int) (Result, error) {
	first := unset
	for slot, v := range perm {
		if d.nodes[v].Kind == instance.Vehicle {
			first = slot
			break
		}
	}
	if first == unset {
		return Result{}, ErrNoVehicle
	}

	st := scan{
		d:      d,
		perm:   perm,
		anchor: unset,
		last:   unset,
		route:  make([]int, 0, len(perm)),
	}

	var (
		slot int
		v    *Violation
	)
	for slot = first; slot < len(perm); slot++ {
		if v = st.visit(slot); v != nil {
			return st.infeasible(v), nil
		}
	}
	for slot = 0; slot < first; slot++ {
		if v = st.visit(slot); v != nil {
			return st.infeasible(v), nil
		}
	}

	return st.feasible(), nil
}

// visit applies the transition rule of one slot. It returns a non-nil
// Violation when the slot ends the decode.
func (st *scan) visit(slot int) *Violation {
	node := st.perm[slot]
	if st.d.nodes[node].Kind == instance.Vehicle {
		st.leg = 0
		st.anchor = slot
		st.last = slot
		st.route = append(st.route, node)
		return nil
	}

	prev := st.perm[st.last]
	raw := st.d.inst.RawRow(prev)[node]
	dist := st.d.inst.DistRow(prev)[node]
	limit := st.d.nodes[st.perm[st.anchor]].Range
	st.leg += raw

	switch st.d.policy {
	case instance.PolicyProfit:
		a := st.d.alpha
		p := st.d.nodes[node].Profit
		st.cost += a * dist
		st.profit += (1 - a) * p
		st.combined += a*dist - (1-a)*p
		st.route = append(st.route, node)
		if st.leg > limit {
			return st.violation(slot, node, limit)
		}
	case instance.PolicyDistance:
		if st.leg > limit {
			return st.violation(slot, node, limit)
		}
		st.total += dist
		st.route = append(st.route, node)
	}

	st.last = slot
	return nil
}

func (st *scan) violation(slot, node int, limit float64) *Violation {
	return &Violation{
		Slot:    slot,
		Node:    node,
		Vehicle: st.perm[st.anchor],
		Leg:     st.leg,
		Range:   limit,
	}
}

// feasible packages a completed route.
func (st *scan) feasible() Result {
	res := Result{Status: StatusFeasible, Route: st.route}
	switch st.d.policy {
	case instance.PolicyProfit:
		res.Objective = st.combined
		res.Cost = st.cost
		res.Profit = st.profit
	case instance.PolicyDistance:
		res.Objective = st.total
	}
	return res
}

// infeasible packages the policy penalty for the state at the violation.
func (st *scan) infeasible(v *Violation) Result {
	res := Result{Status: StatusInfeasible, Route: st.route, Violation: v}
	switch st.d.policy {
	case instance.PolicyProfit:
		res.Objective = ScaledPenalty(st.combined)
		res.Cost = st.cost
		res.Profit = st.profit
	case instance.PolicyDistance:
		res.Objective = st.d.penalty
	}
	return res
}
