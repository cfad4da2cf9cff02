package decoder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AntonioDantas/RKO/decoder"
	"github.com/AntonioDantas/RKO/instance"
	"github.com/AntonioDantas/RKO/matrix"
)

// Load order used by the three-node scenario: customer 1, customer 2, vehicle 1001.
const (
	c1 = 0
	c2 = 1
	vh = 2
)

// scenarioKeys sorts to [vehicle, customer1, customer2].
var scenarioKeys = []float64{0.5, 0.9, 0.1}

// scenario builds dist(v,1)=3, dist(1,2)=4, dist(v,2)=9 with the given
// vehicle range; customer attributes are 10 and 30.
func scenario(t testing.TB, p instance.Policy, rangeLimit float64) *instance.Instance {
	t.Helper()
	m, err := matrix.NewDense(3, 3)
	require.NoError(t, err)
	set := func(i, j int, v float64) {
		require.NoError(t, m.Set(i, j, v))
		require.NoError(t, m.Set(j, i, v))
	}
	set(c1, c2, 4)
	set(c1, vh, 3)
	set(c2, vh, 9)

	recs := []instance.Record{
		{ID: 1, Attr: 10},
		{ID: 2, Attr: 30},
		{ID: 1001, Attr: rangeLimit},
	}
	in, err := instance.NewWithDistances(recs, m, instance.WithPolicy(p))
	require.NoError(t, err)
	return in
}

// randomInstance places customers and vehicles uniformly in [0,100)² with
// ranges drawn from [lo,hi).
func randomInstance(t testing.TB, p instance.Policy, customers, vehicles int, lo, hi float64, seed int64) *instance.Instance {
	t.Helper()
	r := rand.New(rand.NewSource(seed))
	recs := make([]instance.Record, 0, customers+vehicles)
	for i := 0; i < customers; i++ {
		recs = append(recs, instance.Record{ID: i + 1, X: r.Float64() * 100, Y: r.Float64() * 100, Attr: r.Float64() * 50})
	}
	for i := 0; i < vehicles; i++ {
		recs = append(recs, instance.Record{ID: 1001 + i, X: r.Float64() * 100, Y: r.Float64() * 100, Attr: lo + r.Float64()*(hi-lo)})
	}
	// Interleave so vehicles are not always last in load order.
	r.Shuffle(len(recs), func(i, j int) { recs[i], recs[j] = recs[j], recs[i] })

	in, err := instance.New(recs, instance.WithPolicy(p))
	require.NoError(t, err)
	return in
}

func mustDecoder(t testing.TB, in *instance.Instance, opts ...decoder.Option) *decoder.Decoder {
	t.Helper()
	d, err := decoder.New(in, opts...)
	require.NoError(t, err)
	return d
}

// referenceDecode is a literal cyclic-cursor rendition of the construction:
// one shared cursor that wraps to 0 after n-1 and skips customers until an
// anchor is set. It exists to check the two-phase scan against.
func referenceDecode(in *instance.Instance, alpha float64, perm []int) (route []int, objective float64, feasible bool) {
	n := len(perm)
	nodes := in.Nodes()
	profitPolicy := in.Policy() == instance.PolicyProfit
	penalty := in.MaxDist() * float64(n)
	last, anchor, cur := -1, -1, 0
	var leg, total, comb float64
	for len(route) < n {
		if cur > n-1 {
			cur = 0
		}
		node := perm[cur]
		if nodes[node].IsVehicle() {
			leg = 0
			anchor, last = cur, cur
			route = append(route, node)
			cur++
			continue
		}
		if anchor == -1 {
			cur++
			continue
		}
		prev := perm[last]
		d := in.DistRow(prev)[node]
		leg += in.RawRow(prev)[node]
		limit := nodes[perm[anchor]].Range
		if profitPolicy {
			p := nodes[node].Profit
			comb += alpha*d - (1-alpha)*p
			route = append(route, node)
			if leg > limit {
				return route, comb * 9999, false
			}
		} else {
			if leg > limit {
				return route, penalty, false
			}
			total += d
			route = append(route, node)
		}
		last = cur
		cur++
	}
	if profitPolicy {
		return route, comb, true
	}
	return route, total, true
}

// legs splits a feasible route at vehicle anchors and returns, per leg,
// the anchor index and the raw distance travelled.
func legs(in *instance.Instance, route []int) (anchors []int, dists []float64) {
	for i, v := range route {
		if in.Node(v).IsVehicle() {
			anchors = append(anchors, v)
			dists = append(dists, 0)
			continue
		}
		dists[len(dists)-1] += in.RawRow(route[i-1])[v]
	}
	return anchors, dists
}
