package checker

import (
	"context"
	"fmt"
)

// Registry returns the canonical ordered list of checks.
func Registry() []Check {
	return []Check{
		NewCommitMessageCheck(),
	}
}

// RunAll executes the given checks in order, accumulating results. Checks
// that merely find violations do not stop the sequence; only a machinery
// failure aborts it.
func RunAll(ctx context.Context, checks []Check, deps *Deps) ([]Result, error) {
	var all []Result
	for _, c := range checks {
		results, err := c.Run(ctx, deps)
		if err != nil {
			return nil, fmt.Errorf("check %s: %w", c.ID(), err)
		}
		all = append(all, results...)
	}
	return all, nil
}
