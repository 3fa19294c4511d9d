package pangraph

import "sort"

// The read ledger: the PanRead methods that rewrite a read's edge list or
// hit map and move its membership between nodes and edges. RemoveEdge,
// AddShortcutEdge and SplitNodeByEdges change reads only through these
// methods; AddNode and AddEdgeForRead add a read to a node's or edge's
// read set directly, and AddEdgeForRead appends to the read's edge list
// directly.

// addHits unions cluster into the read's hit set for locus, deduplicating
// by (kmer, readStart, readEnd) and keeping the result ordered by
// readStart, matching the original's sorted-insert behaviour.
func (r *PanRead) addHits(locus uint64, cluster []*MinimizerHit) {
	existing := r.Hits[locus]
	seen := make(map[[3]uint64]struct{}, len(existing))
	for _, h := range existing {
		seen[hitKey(h)] = struct{}{}
	}
	for _, h := range cluster {
		k := hitKey(h)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		existing = append(existing, h)
	}
	sort.Slice(existing, func(i, j int) bool {
		return existing[i].ReadStart < existing[j].ReadStart
	})
	r.Hits[locus] = existing
}

// indexOfEdge returns the cursor position of handle in r.Edges, or -1.
func (r *PanRead) indexOfEdge(handle string) int {
	for i, h := range r.Edges {
		if h == handle {
			return i
		}
	}
	return -1
}

// GetPreviousEdge returns the handle immediately before cursor in the
// read's edge list, and false if cursor is the first edge or out of range.
func (r *PanRead) GetPreviousEdge(cursor int) (string, bool) {
	if cursor <= 0 || cursor >= len(r.Edges) {
		return "", false
	}
	return r.Edges[cursor-1], true
}

// GetNextEdge returns the handle immediately after cursor, and false if
// cursor is the last edge or out of range.
func (r *PanRead) GetNextEdge(cursor int) (string, bool) {
	if cursor < 0 || cursor+1 >= len(r.Edges) {
		return "", false
	}
	return r.Edges[cursor+1], true
}

// GetOtherEdge returns the edge handle adjacent to curHandle on the side
// opposite from, used when a node has exactly two incident edges on a
// read and the caller wants "the other one" without tracking its own
// cursor. Returns false if curHandle is absent from the read, or if from
// is neither of curHandle's neighbours.
func (r *PanRead) GetOtherEdge(curHandle, from string) (string, bool) {
	cursor := r.indexOfEdge(curHandle)
	if cursor < 0 {
		return "", false
	}
	prev, hasPrev := r.GetPreviousEdge(cursor)
	next, hasNext := r.GetNextEdge(cursor)
	switch {
	case hasPrev && prev == from:
		if hasNext {
			return next, true
		}
		return "", false
	case hasNext && next == from:
		if hasPrev {
			return prev, true
		}
		return "", false
	default:
		return "", false
	}
}

// replaceEdge rewrites every occurrence of old in the read's edge list with
// replacement, for a read that does not need a cursor return (the full
// list is rewritten in place, same length).
func (r *PanRead) replaceEdge(old, replacement *PanEdge) {
	if old == nil || replacement == nil {
		return
	}
	for i, h := range r.Edges {
		if h == old.Handle {
			r.Edges[i] = replacement.Handle
		}
	}
	if _, ok := old.reads[r.ID]; ok {
		delete(old.reads, r.ID)
		old.Covg = len(old.reads)
		replacement.reads[r.ID] = struct{}{}
		replacement.Covg = len(replacement.reads)
	}
}

// RemoveEdgeAt deletes the edge handle at cursor from the read's edge
// list and returns the cursor that now names the element which followed
// it (or len(r.Edges) if it was last), so callers can keep iterating
// without re-deriving position after the slice shrinks.
func (r *PanRead) RemoveEdgeAt(cursor int) int {
	if cursor < 0 || cursor >= len(r.Edges) {
		return cursor
	}
	r.Edges = append(r.Edges[:cursor], r.Edges[cursor+1:]...)
	return cursor
}

// collapseAdjacentDuplicates removes consecutive repeats of the same edge
// handle from the read's edge list, the cleanup a shortcut merge needs
// when replacing two adjacent edges with one leaves it back-to-back with
// itself.
func (r *PanRead) collapseAdjacentDuplicates() {
	if len(r.Edges) < 2 {
		return
	}
	out := r.Edges[:1]
	for _, h := range r.Edges[1:] {
		if h != out[len(out)-1] {
			out = append(out, h)
		}
	}
	r.Edges = out
}

// RemoveEdge deletes every occurrence of handle from the read's edge list.
func (r *PanRead) RemoveEdge(handle string) {
	out := r.Edges[:0]
	for _, h := range r.Edges {
		if h != handle {
			out = append(out, h)
		}
	}
	r.Edges = out
}

// replaceNode migrates the read's ownership from old to replacement:
// removed from old's read set (decrementing its coverage) and added to
// replacement's (incrementing its), mirroring the original's
// replace_node. SplitNodeByEdges relies on this to actually hand the
// clone the reads it's meant to inherit.
func (r *PanRead) replaceNode(old, replacement *PanNode) {
	if old == nil || replacement == nil {
		return
	}
	if _, ok := old.reads[r.ID]; ok {
		delete(old.reads, r.ID)
		old.Covg = len(old.reads)
	}
	if _, ok := replacement.reads[r.ID]; !ok {
		replacement.reads[r.ID] = struct{}{}
		replacement.Covg = len(replacement.reads)
	}
}

// RemoveNode drops n from this read entirely: the read's hit set for n's
// locus, and the read's membership in n's read set, decrementing n's
// coverage. This is the per-read counterpart to Graph.RemoveNode — the
// original's remove_node — used by AddShortcutEdge to retire a collapsed
// interior node's read-level bookkeeping without deleting the node itself.
func (r *PanRead) RemoveNode(n *PanNode) {
	if n == nil {
		return
	}
	delete(r.Hits, n.PRGID)
	if _, ok := n.reads[r.ID]; ok {
		delete(n.reads, r.ID)
		n.Covg = len(n.reads)
	}
}
