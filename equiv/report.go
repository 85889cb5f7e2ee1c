package equiv

import (
	"fmt"
	"strings"
)

// Report is the outcome of [CompareQueries] (spec §4.5): a field-by-field
// record of which equivalence checks passed, plus the overall verdict. It
// is an immutable value object — nothing in this package mutates a Report
// after it is returned.
type Report struct {
	SameLanguage        bool
	SameProjectionArity bool
	SameStreams         bool
	SameWindows         bool
	SameBGP             bool
	Overall             bool

	// Reasons lists which checks failed, in check order. Empty when Overall
	// is true.
	Reasons []string
}

// String renders a human-readable summary, in the style of
// diag.Result.String(): "equivalent" on success, or "not equivalent: " plus
// the comma-joined Reasons on failure.
func (r Report) String() string {
	if r.Overall {
		return "equivalent"
	}
	return fmt.Sprintf("not equivalent: %s", strings.Join(r.Reasons, ", "))
}
