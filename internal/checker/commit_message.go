package checker

import (
	"context"
	"fmt"

	"github.com/commitbear/commitbear/internal/gitrepo"
	"github.com/commitbear/commitbear/internal/rules"
)

// CommitMessageCheck validates the HEAD commit message against the
// configured style rules.
type CommitMessageCheck struct {
	id string
}

// NewCommitMessageCheck returns the commit message style check.
func NewCommitMessageCheck() *CommitMessageCheck {
	return &CommitMessageCheck{id: "git:commit-message"}
}

func (c *CommitMessageCheck) ID() string { return c.id }

// Run retrieves the raw commit text and validates it. A failed HEAD
// lookup is an environment problem rather than a rule violation: it is
// queued on the diagnostics channel prefixed "git:" and the run yields no
// results.
func (c *CommitMessageCheck) Run(ctx context.Context, deps *Deps) ([]Result, error) {
	var raw string
	if deps.Message != nil {
		raw = *deps.Message
	} else {
		text, err := gitrepo.New(deps.RepoDir).HeadMessage(ctx)
		if err != nil {
			deps.Diags.Push(fmt.Sprintf("git: %v", err))
			return nil, nil
		}
		raw = text
	}

	violations, err := rules.Validate(raw, deps.Config)
	if err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(violations))
	for _, v := range violations {
		results = append(results, Result{Check: c.id, Message: v})
	}
	return results, nil
}
