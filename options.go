package metrics

type options struct {
	logger    *Logger
	collector Collector
}

// Option configures Instrument and the configuration-driven constructors.
type Option func(*options)

// WithLogger sets the logger used for per-call debug output.
//
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithCollector sets the collector that receives per-call timings.
//
// If nil is passed, NoopCollector is used.
func WithCollector(c Collector) Option {
	return func(o *options) {
		o.collector = c
	}
}

func applyOptions(opts []Option) (options, bool) {
	var o options
	for _, fn := range opts {
		fn(&o)
	}
	instrumented := o.logger != nil || o.collector != nil
	if o.logger == nil {
		o.logger = NoopLogger()
	}
	if o.collector == nil {
		o.collector = NoopCollector{}
	}
	return o, instrumented
}
