package mouse

import "github.com/rs/zerolog"

type options struct {
	display string
	logger  zerolog.Logger
}

// Option configures New.
type Option func(*options)

// WithDisplay selects the X11 display to connect to. Other platforms ignore it.
// An empty name uses $DISPLAY.
func WithDisplay(name string) Option {
	return func(o *options) {
		o.display = name
	}
}

// WithLogger attaches a logger that records each injected operation at debug level.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// buildOptions applies opts over the defaults.
func buildOptions(opts []Option) options {
	o := options{logger: zerolog.Nop()}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
