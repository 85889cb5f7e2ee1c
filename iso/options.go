package iso

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/tidwall/jsonc"
)

// Options configures [Decide] and [Label]. The zero Options is valid: a nil
// Logger disables tracing, and MaxBranches of 0 is replaced at use by the
// per-call default (the number of ungrounded nodes, spec §5).
type Options struct {
	Logger      *slog.Logger
	MaxBranches int
}

// Option configures an Options value, following the teacher's
// functional-options convention (graph.GraphOption / graph.WithLogger).
type Option func(*Options)

// WithLogger sets the *slog.Logger used for Debug/Info tracing. A nil
// logger (the default) disables tracing entirely at effectively zero cost.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) { o.Logger = logger }
}

// WithMaxBranches sets the trial-branching safeguard (spec §5's
// max_branches): the number of branch attempts [Decide] will try before
// giving up with [ErrBudgetExceeded]. n <= 0 restores the default (the
// number of ungrounded nodes at the point branching starts).
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

// optionsFile is the JSONC-decodable shape accepted by [ParseOptionsJSONC].
// Logger is not configurable this way — a caller decoding config from bytes
// is expected to supply its own logger in code via [WithLogger].
type optionsFile struct {
	MaxBranches int `json:"max_branches"`
}

// ParseOptionsJSONC decodes Options from commented JSON bytes already held
// in memory by the caller. It strips `//` and `/* */` comments via
// [jsonc.ToJSON] before decoding, so host applications that keep their own
// config in a commented-JSON file can reuse that same file's bytes here.
// ParseOptionsJSONC never opens a file itself: it is given data, not a
// path, preserving the "no files are consumed" guarantee (spec §6).
func ParseOptionsJSONC(data []byte) (Options, error) {
	var raw optionsFile
	if err := json.Unmarshal(jsonc.ToJSON(data), &raw); err != nil {
		return Options{}, fmt.Errorf("iso: parse options: %w", err)
	}
	return Options{MaxBranches: raw.MaxBranches}, nil
}
