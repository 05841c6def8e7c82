package solver

// Options configures a concrete solver's construction. Use the With*
// functions to set fields; the zero value is the default (quiet).
type Options struct {
	// Verbose gates per-iteration lower-bound logging via the stdlib log
	// package.
	Verbose bool
}

// Option mutates an Options value.
type Option func(*Options)

// WithVerbose enables per-iteration lower-bound logging.
func WithVerbose(v bool) Option {
	return func(o *Options) { o.Verbose = v }
}

func resolveOptions(opts ...Option) Options {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
