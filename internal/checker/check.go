// Package checker runs registered commit checks and collects their
// findings and diagnostics.
package checker

import (
	"context"

	"github.com/commitbear/commitbear/internal/rules"
)

// Result is one finding produced by a check. Results keep the order the
// check emitted them in.
type Result struct {
	Check   string `json:"check"`
	Message string `json:"message"`
}

// Check is a single validation unit. Implementations report rule
// violations as Results and reserve the error return for failures of the
// check machinery itself, such as an uncompilable configured pattern.
type Check interface {
	// ID returns the unique identifier (e.g. "git:commit-message").
	ID() string

	// Run executes the check.
	Run(ctx context.Context, deps *Deps) ([]Result, error)
}

// Deps contains dependencies injected into checks.
type Deps struct {
	// RepoDir is the working directory commit data is read from.
	RepoDir string

	// Config holds the rule options for this run.
	Config rules.Config

	// Diags receives non-rule errors, such as a failed HEAD lookup.
	Diags *Diagnostics

	// Message overrides HEAD retrieval when non-nil, for callers that
	// already hold the raw commit text. An empty string still counts as
	// a message and is validated as such.
	Message *string
}
