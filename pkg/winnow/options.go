package winnow

import "go.uber.org/zap"

type options struct {
	dedupe   bool
	encoding string
	logger   *zap.Logger
}

// Option configures a normalization run.
type Option func(*options)

// WithDedupe enables fingerprint-based duplicate filtering: records whose
// canonical SHA-256 digest was already written during the run are dropped.
// Default: disabled.
func WithDedupe(enabled bool) Option {
	return func(o *options) { o.dedupe = enabled }
}

// WithEncoding sets the character encoding used when opening an input path
// (IANA name, e.g. "latin1"). Ignored for already-open readers.
// Default: "utf-8".
func WithEncoding(name string) Option {
	return func(o *options) { o.encoding = name }
}

// WithLogger attaches a zap logger to the run. Default: no logging.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.logger = l }
}

func buildOptions(opts []Option) options {
	o := options{encoding: "utf-8"}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
