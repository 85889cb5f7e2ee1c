package equiv

import (
	"log/slog"

	"github.com/rdfkit/graphiso/iso"
	"github.com/rdfkit/graphiso/query"
)

// Options configures [IsQueryIsomorphic] and [CompareQueries]. The zero
// Options is valid: a nil Logger disables tracing, and MaxBranches of 0
// restores iso's per-call default.
type Options struct {
	Logger      *slog.Logger
	MaxBranches int
}

// Option configures an Options value, following the teacher's
// functional-options convention (graph.GraphOption / graph.WithLogger).
type Option func(*Options)

// WithLogger sets the *slog.Logger propagated to both package query and
// package iso for tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) { o.Logger = logger }
}

// WithMaxBranches sets the trial-branching budget forwarded to
// [iso.Decide]. See [iso.WithMaxBranches].
func WithMaxBranches(n int) Option {
	return func(o *Options) { o.MaxBranches = n }
}

func buildOptions(opts []Option) Options {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o Options) queryOptions() []query.Option {
	return []query.Option{query.WithLogger(o.Logger)}
}

func (o Options) isoOptions() []iso.Option {
	return []iso.Option{iso.WithLogger(o.Logger), iso.WithMaxBranches(o.MaxBranches)}
}
