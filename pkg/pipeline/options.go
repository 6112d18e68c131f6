package pipeline

// Options configures a run.
type Options struct {
	// OnSource is called after each source is processed, in input order.
	OnSource func(SourceLog)
}

// Option is a function that configures run options.
type Option func(*Options)

// WithSourceCallback registers fn to observe each source as it completes.
func WithSourceCallback(fn func(SourceLog)) Option {
	return func(o *Options) {
		o.OnSource = fn
	}
}

// NewOptions applies opts over the defaults.
func NewOptions(opts ...Option) *Options {
	o := &Options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
