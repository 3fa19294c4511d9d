package pangraph

import (
	"errors"
	"fmt"

	"github.com/grailbio/base/log"
)

// Sentinel errors for well-defined, non-fatal lookup failures. The
// package's own lookups (Graph.Node, Graph.Edge, Graph.Read) report absence
// with a bool and do not return these. Programmer contract violations
// (invariant breaches) are not represented as errors; see Graph.fatalf in
// log.go.
var (
	// ErrNodeNotFound names an absent node_id.
	ErrNodeNotFound = errors.New("pangraph: node not found")

	// ErrEdgeNotFound names an absent edge handle.
	ErrEdgeNotFound = errors.New("pangraph: edge not found")

	// ErrReadNotFound names an absent read_id.
	ErrReadNotFound = errors.New("pangraph: read not found")
)

// warnOrientationMismatch logs that combine_orientations' two candidate
// formulas disagreed, and that the engine is committing to fix anyway.
// This must never be "corrected" to nice — see CombineOrientations.
func warnOrientationMismatch(f, t, nice, fix Orientation) {
	log.Error.Printf(
		"pangraph: combine_orientations(%d, %d): nice=%d disagrees with fix=%d, committing to fix",
		f, t, nice, fix)
}

// wrapIOErr annotates an I/O failure from an emitter with the operation
// that failed, without swallowing the underlying error.
func wrapIOErr(op, path string, err error) error {
	return fmt.Errorf("pangraph: %s %q: %w", op, path, err)
}
