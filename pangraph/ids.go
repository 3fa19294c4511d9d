package pangraph

import (
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix mirrors the teacher's textual edge-handle convention
// (core/methods_edges.go's edgeIDPrefix), giving stable human-readable
// handles like "e1", "e2", ... instead of exposing raw pointers.
const edgeIDPrefix = "e"

// nextEdgeID mints a new opaque edge handle, monotonic and stable.
func (g *Graph) nextEdgeID() string {
	n := atomic.AddUint64(&g.edgeSeq, 1)
	return edgeIDPrefix + strconv.FormatUint(n, 10)
}

// nextNodeID advances the node_id allocator past any currently used id and
// returns a fresh one, used by SplitNodeByEdges to mint the clone's id.
func (g *Graph) nextNodeID() uint64 {
	for {
		if _, used := g.nodes[g.idSeq]; !used {
			id := g.idSeq
			g.idSeq++
			return id
		}
		g.idSeq++
	}
}
