package decoder

import (
	"fmt"
	"math"

	"github.com/charmbracelet/log"

	"github.com/AntonioDantas/RKO/instance"
	"github.com/AntonioDantas/RKO/keys"
)

// Decoder maps key vectors of one instance to scored routes.
type Decoder struct {
	inst    *instance.Instance
	nodes   []instance.Node // private copy, read-only
	policy  instance.Policy
	alpha   float64
	penalty float64 // FixedPenalty of the instance
	emitter Emitter
	logger  *log.Logger
}

// New returns a Decoder for inst.
//
// Errors: ErrNilInstance, ErrInvalidAlpha, ErrNoVehicle.
func New(inst *instance.Instance, opts ...Option) (*Decoder, error) {
	if inst == nil {
		return nil, ErrNilInstance
	}
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	if math.IsNaN(o.alpha) || o.alpha < 0 || o.alpha > 1 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAlpha, o.alpha)
	}
	if inst.Vehicles() == 0 {
		return nil, ErrNoVehicle
	}

	d := &Decoder{
		inst:    inst,
		nodes:   inst.Nodes(),
		policy:  inst.Policy(),
		alpha:   o.alpha,
		penalty: FixedPenalty(inst.MaxDist(), inst.N()),
		emitter: o.emitter,
		logger:  o.logger,
	}
	d.logger.Debug("decoder ready",
		"policy", d.policy,
		"alpha", d.alpha,
		"nodes", len(d.nodes),
		"vehicles", inst.Vehicles(),
		"emit", d.emitter != nil,
	)

	return d, nil
}

// Instance returns the instance the decoder scores.
func (d *Decoder) Instance() *instance.Instance { return d.inst }

// Alpha returns the PolicyProfit distance weight.
func (d *Decoder) Alpha() float64 { return d.alpha }

// Decode sorts k into a permutation and constructs its route.
//
// Errors (input only, never infeasibility): keys.ErrLength, keys.ErrNaNKey.
// Complexity: O(n log n).
func (d *Decoder) Decode(k []float64) (Result, error) {
	if err := keys.Validate(k, len(d.nodes)); err != nil {
		return Result{}, err
	}
	return d.decode(keys.Order(k))
}

// DecodePermutation constructs the route of an explicit scan order.
//
// Errors: ErrInvalidPermutation, ErrNoVehicle.
// Complexity: O(n).
func (d *Decoder) DecodePermutation(perm []int) (Result, error) {
	if len(perm) != len(d.nodes) || !keys.IsPermutation(perm) {
		return Result{}, fmt.Errorf("%w: want a permutation of 0..%d", ErrInvalidPermutation, len(d.nodes)-1)
	}
	return d.decode(perm)
}

func (d *Decoder) decode(perm []int) (Result, error) {
	res, err := d.construct(perm)
	if err != nil {
		return Result{}, err
	}
	if res.IsFeasible() && d.emitter != nil {
		d.emit(res.Route)
	}
	return res, nil
}

// emit hands the route's node ids to the emitter. Failures are logged and
// never change the decode result.
func (d *Decoder) emit(route []int) {
	ids := make([]int, len(route))
	for i, v := range route {
		ids[i] = d.nodes[v].ID
	}
	if err := d.emitter.Emit(ids); err != nil {
		d.logger.Warn("route emit failed", "err", err)
	}
}
