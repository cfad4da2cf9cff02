package decoder_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/AntonioDantas/RKO/decoder"
	"github.com/AntonioDantas/RKO/instance"
	"github.com/AntonioDantas/RKO/keys"
)

// sink to defeat dead-code elimination
var sinkR decoder.Result

func BenchmarkDecode(b *testing.B) {
	for _, n := range []int{100, 1000} {
		for _, p := range []instance.Policy{instance.PolicyProfit, instance.PolicyDistance} {
			b.Run(fmt.Sprintf("%s/n=%d", p, n), func(b *testing.B) {
				in := randomInstance(b, p, n, n/10, 1e6, 2e6, 1337)
				d := mustDecoder(b, in)
				k := keys.Random(in.N(), keys.NewRand(7))
				b.ReportAllocs()
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					sinkR, _ = d.Decode(k)
				}
			})
		}
	}
}

func BenchmarkDecodeBatch(b *testing.B) {
	in := randomInstance(b, instance.PolicyProfit, 500, 50, 1e6, 2e6, 4242)
	d := mustDecoder(b, in)
	rng := keys.NewRand(3)
	sets := make([][]float64, 256)
	for i := range sets {
		sets[i] = keys.Random(in.N(), rng)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := d.DecodeBatch(context.Background(), sets, 0); err != nil {
			b.Fatal(err)
		}
	}
}
