package query

import "log/slog"

// Options configures [Extract] and [DetectLanguage]. The zero Options is
// valid: a nil Logger disables tracing.
type Options struct {
	Logger *slog.Logger
}

// Option configures an Options value, following the teacher's
// functional-options convention (graph.GraphOption / graph.WithLogger).
type Option func(*Options)

// WithLogger sets the *slog.Logger used for Debug tracing. A nil logger
// (the default) disables tracing entirely.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) { o.Logger = logger }
}

func buildOptions(opts []Option) Options {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
