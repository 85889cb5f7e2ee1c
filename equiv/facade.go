package equiv

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/rdfkit/graphiso/internal/trace"
	"github.com/rdfkit/graphiso/iso"
	"github.com/rdfkit/graphiso/query"
)

// IsQueryIsomorphic reports whether q1Text and q2Text are equivalent queries
// (spec §4.5): same language, matching non-BGP parameters, and isomorphic
// Basic Graph Patterns.
//
// Unlike [CompareQueries], IsQueryIsomorphic checks the cheap non-BGP
// parameters first and short-circuits on the first mismatch, never paying
// for [iso.Decide] — worst-case exponential under adversarial symmetry —
// once the queries are already known not to be equivalent.
func IsQueryIsomorphic(ctx context.Context, q1Text, q2Text string, opts ...Option) (bool, error) {
	o := buildOptions(opts)
	op := trace.Begin(ctx, o.Logger, "equiv.IsQueryIsomorphic")
	var err error
	defer func() { op.End(err) }()

	q1, err := query.Extract(q1Text, o.queryOptions()...)
	if err != nil {
		return false, fmt.Errorf("equiv: extract first query: %w", err)
	}
	q2, err := query.Extract(q2Text, o.queryOptions()...)
	if err != nil {
		return false, fmt.Errorf("equiv: extract second query: %w", err)
	}

	sameLanguage, sameArity, sameStreams, sameWindows := nonBGPChecks(q1, q2)
	if !sameLanguage || !sameArity || !sameStreams || !sameWindows {
		return false, nil
	}

	ok, isoErr := iso.Decide(ctx, q1.BGP, q2.BGP, o.isoOptions()...)
	if isoErr != nil {
		err = fmt.Errorf("equiv: decide BGP isomorphism: %w", isoErr)
		return false, err
	}
	return ok, nil
}

// CompareQueries parses q1Text and q2Text with package query, then checks
// language, projection arity, stream set, window set, and BGP isomorphism
// in turn, recording the outcome of each check in the returned [Report].
//
// CompareQueries stops at the first parse error: a query that package query
// cannot extract a [query.Query] from is reported as a parse error, not as
// "not equivalent".
func CompareQueries(ctx context.Context, q1Text, q2Text string, opts ...Option) (Report, error) {
	o := buildOptions(opts)
	op := trace.Begin(ctx, o.Logger, "equiv.CompareQueries")
	var err error
	defer func() { op.End(err) }()

	q1, err := query.Extract(q1Text, o.queryOptions()...)
	if err != nil {
		return Report{}, fmt.Errorf("equiv: extract first query: %w", err)
	}
	q2, err := query.Extract(q2Text, o.queryOptions()...)
	if err != nil {
		return Report{}, fmt.Errorf("equiv: extract second query: %w", err)
	}

	var r Report
	r.SameLanguage, r.SameProjectionArity, r.SameStreams, r.SameWindows = nonBGPChecks(q1, q2)

	var isoErr error
	r.SameBGP, isoErr = iso.Decide(ctx, q1.BGP, q2.BGP, o.isoOptions()...)
	if isoErr != nil {
		err = fmt.Errorf("equiv: decide BGP isomorphism: %w", isoErr)
		return Report{}, err
	}

	r.Overall = r.SameLanguage && r.SameProjectionArity && r.SameStreams && r.SameWindows && r.SameBGP
	if !r.Overall {
		r.Reasons = collectReasons(r)
	}

	trace.DebugLazy(ctx, o.Logger, "equiv.CompareQueries result", func() []slog.Attr {
		return []slog.Attr{slog.Bool("overall", r.Overall)}
	})

	return r, nil
}

func collectReasons(r Report) []string {
	var reasons []string
	if !r.SameLanguage {
		reasons = append(reasons, "language differs")
	}
	if !r.SameProjectionArity {
		reasons = append(reasons, "projection arity differs")
	}
	if !r.SameStreams {
		reasons = append(reasons, "stream IRIs differ")
	}
	if !r.SameWindows {
		reasons = append(reasons, "window bounds differ")
	}
	if !r.SameBGP {
		reasons = append(reasons, "basic graph patterns are not isomorphic")
	}
	return reasons
}

// nonBGPChecks evaluates the four equivalence checks that don't require
// graph isomorphism, shared verbatim by [IsQueryIsomorphic] and
// [CompareQueries] so the two can never drift apart on what "non-BGP
// equivalent" means.
func nonBGPChecks(q1, q2 query.Query) (sameLanguage, sameProjectionArity, sameStreams, sameWindows bool) {
	return q1.Language == q2.Language,
		projectionArityMatches(q1, q2),
		sameStringSet(q1.Streams, q2.Streams),
		sameWindowSet(q1.Windows, q2.Windows)
}

func projectionArityMatches(q1, q2 query.Query) bool {
	if q1.IsSelectAll() || q2.IsSelectAll() {
		return q1.IsSelectAll() == q2.IsSelectAll()
	}
	return len(q1.Projection) == len(q2.Projection)
}

func sameStringSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	sa, sb := append([]string(nil), a...), append([]string(nil), b...)
	sort.Strings(sa)
	sort.Strings(sb)
	for i := range sa {
		if sa[i] != sb[i] {
			return false
		}
	}
	return true
}

// windowKey renders a Window as a comparable string, field by field, with no
// semantic interpretation of the duration/offset tokens (spec §9: window
// bounds compared as literal strings).
func windowKey(w query.Window) string {
	return fmt.Sprintf("%s|%s|%s|%s|%s|%s", w.Stream, w.Range, w.Step, w.Offset, w.Start, w.End)
}

func sameWindowSet(a, b []query.Window) bool {
	if len(a) != len(b) {
		return false
	}
	ka := make([]string, len(a))
	kb := make([]string, len(b))
	for i, w := range a {
		ka[i] = windowKey(w)
	}
	for i, w := range b {
		kb[i] = windowKey(w)
	}
	sort.Strings(ka)
	sort.Strings(kb)
	for i := range ka {
		if ka[i] != kb[i] {
			return false
		}
	}
	return true
}
