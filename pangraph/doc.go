// Package pangraph implements the pangenome graph engine: a container of
// pan-nodes (one per locus instance) connected by oriented pan-edges
// observed along reads, together with the mutation algebra that builds and
// cleans it.
//
// A Graph is built by feeding it minimizer hits (AddNode/AddEdge) as reads
// are aligned against the per-locus reference library, then cleaned by a
// fixed multi-pass schedule (Clean) that combines read-level shortcutting,
// coverage-correlated node splitting, and coverage pruning. The cleaned
// graph is emitted as a GFA-like sequence-graph description (WriteGraph)
// and a sample-by-locus presence matrix (SaveMatrix).
//
// Graph is not safe for concurrent use: the engine is single-threaded and
// non-suspending by design (no operation yields, no operation times out).
// Its mutation methods call each other directly (RemoveNode calls
// RemoveEdge, Clean calls ReadClean/SplitNodesByReads/the prune passes),
// which is incompatible with a single re-entrant lock without restructuring
// the algebra around it — something the caller's serialized-access
// contract makes unnecessary. Callers that do need concurrent access must
// serialize it themselves.
//
// Invariants I1-I7 from the specification (coverage consistency, adjacency
// symmetry, read threading, node-id uniqueness, orientation range) hold
// after every exported mutation returns; violating them is a programmer
// error and is fatal (see Graph.fatalf in log.go), not a recoverable
// condition.
package pangraph
