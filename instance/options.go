package instance

import (
	"io"

	"github.com/charmbracelet/log"
)

// Option configures the Builder.
type Option func(*Options)

// Options stores the effective Builder configuration.
type Options struct {
	policy    Policy
	threshold int
	logger    *log.Logger
}

// defaultOptions returns PolicyProfit, DefaultThreshold and a discarding logger.
func defaultOptions() Options {
	return Options{
		policy:    PolicyProfit,
		threshold: DefaultThreshold,
		logger:    log.NewWithOptions(io.Discard, log.Options{}),
	}
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}

// WithPolicy selects the scoring policy the instance is prepared for.
func WithPolicy(p Policy) Option {
	return func(o *Options) { o.policy = p }
}

// WithThreshold sets the id above which a record is a vehicle anchor.
func WithThreshold(id int) Option {
	return func(o *Options) { o.threshold = id }
}

// WithLogger routes Builder diagnostics to l. A nil logger is ignored.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.logger = l
		}
	}
}
