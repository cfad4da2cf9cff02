package decoder

import (
	"io"

	"github.com/charmbracelet/log"
)

// DefaultAlpha weights distance and profit equally under PolicyProfit.
const DefaultAlpha = 0.5

// Option configures a Decoder.
type Option func(*Options)

// Options stores the effective Decoder configuration.
type Options struct {
	alpha   float64
	emitter Emitter
	logger  *log.Logger
}

func defaultOptions() Options {
	return Options{
		alpha:  DefaultAlpha,
		logger: log.NewWithOptions(io.Discard, log.Options{}),
	}
}

// WithAlpha sets the distance weight α ∈ [0,1] of PolicyProfit; profit is
// weighted by 1−α. Ignored under PolicyDistance.
func WithAlpha(a float64) Option {
	return func(o *Options) { o.alpha = a }
}

// WithEmitter enables route emission: every completed feasible route is
// passed to e. Nil disables emission.
func WithEmitter(e Emitter) Option {
	return func(o *Options) { o.emitter = e }
}

// WithLogger routes decoder diagnostics to l. A nil logger is ignored.
// Nothing is logged on the per-slot hot path.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.logger = l
		}
	}
}
