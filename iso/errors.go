package iso

import (
	"errors"
	"fmt"
)

// ErrLabeling is the parent sentinel for all labeling failures. The
// canonical labeler is total on well-formed input: ErrLabeling is only
// reachable when a safeguard (the trial-branching budget) fires, never from
// a structurally valid graph alone. Use errors.Is(err, ErrLabeling) to
// detect any labeling failure.
var ErrLabeling = errors.New("iso: labeling error")

// ErrBudgetExceeded is returned by [Decide] when trial-branching exhausts
// its configured budget ([Options.MaxBranches]) without resolving every
// symmetry tie. It wraps ErrLabeling.
var ErrBudgetExceeded = fmt.Errorf("%w: trial-branching budget exceeded", ErrLabeling)
