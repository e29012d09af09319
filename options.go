package moonicon

// Option configures Render and Generate.
// Use functional options to customize the icon set.
//
// Example:
//
//	// Default style, sizes 16, 48 and 128
//	results, err := moonicon.Generate("icons")
//
//	// Larger set, rendered at 4x and downsampled
//	results, err := moonicon.Generate("icons",
//	    moonicon.WithSizes(16, 32, 48, 128),
//	    moonicon.WithSupersample(4))
type Option func(*options)

// options holds optional configuration for rendering.
type options struct {
	style       Style
	sizes       []int
	supersample int
	progress    func(Result)
}

// defaultOptions returns the default options.
func defaultOptions() options {
	return options{
		style:       DefaultStyle(),
		sizes:       DefaultSizes(),
		supersample: 1,
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// DefaultSizes returns the icon sizes a browser extension manifest expects.
func DefaultSizes() []int {
	return []int{16, 48, 128}
}

// WithStyle replaces the colors and proportions of the icon.
func WithStyle(s Style) Option {
	return func(o *options) {
		o.style = s
	}
}

// WithSizes sets the sizes Generate writes, in order.
// An empty list keeps the defaults.
func WithSizes(sizes ...int) Option {
	return func(o *options) {
		if len(sizes) > 0 {
			o.sizes = append([]int(nil), sizes...)
		}
	}
}

// WithSupersample renders each icon at n times its size and downsamples
// the result with a Catmull-Rom filter. Values below 1 disable it.
func WithSupersample(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = 1
		}
		o.supersample = n
	}
}

// WithProgress registers a callback invoked after each file is written.
func WithProgress(fn func(Result)) Option {
	return func(o *options) {
		o.progress = fn
	}
}
