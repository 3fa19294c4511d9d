package pangraph

// AddEdge inserts a new adjacency from->to with the given orientation, or,
// if an edge naming the same undirected adjacency already exists (see
// PanEdge.equalUnderReversal), bumps its coverage and returns it instead.
// The graph never holds two edge handles that are reversal-equivalent.
func (g *Graph) AddEdge(from, to uint64, o Orientation) *PanEdge {
	if !o.Valid() {
		g.fatalf("AddEdge: orientation %d out of range", o)
	}
	if e := g.findEdge(from, to, o); e != nil {
		e.Covg++
		return e
	}

	e := &PanEdge{
		Handle:      g.nextEdgeID(),
		From:        from,
		To:          to,
		Orientation: o,
		Covg:        1,
		reads:       make(map[uint64]struct{}),
	}
	g.edges[e.Handle] = e
	g.edgeOrder = append(g.edgeOrder, e.Handle)

	if n, ok := g.nodes[from]; ok && !n.hasEdge(e.Handle) {
		n.edges = append(n.edges, e.Handle)
	}
	if n, ok := g.nodes[to]; ok && !n.hasEdge(e.Handle) {
		n.edges = append(n.edges, e.Handle)
	}
	return e
}

// AddEdgeForRead adds or dedups an edge exactly as AddEdge does, then
// threads it onto read readID's edge list (appending, since reads are
// built up one edge at a time in traversal order) and records the read
// against the edge's coverage set.
func (g *Graph) AddEdgeForRead(from, to uint64, o Orientation, readID uint64) *PanEdge {
	e := g.AddEdge(from, to, o)
	r, ok := g.reads[readID]
	if !ok {
		r = newPanRead(readID)
		g.reads[readID] = r
	}
	r.Edges = append(r.Edges, e.Handle)
	e.reads[readID] = struct{}{}
	if e.Covg != len(e.reads) {
		// Coverage may legitimately exceed distinct-read count only if the
		// same read traverses an edge twice; the engine does not model that,
		// so treat divergence as a contract violation.
		g.fatalf("AddEdgeForRead: edge %s covg=%d but reads.size()=%d", e.Handle, e.Covg, len(e.reads))
	}
	return e
}

// findEdge returns the existing edge naming the (from,to,o) adjacency
// under reversal equivalence, or nil.
func (g *Graph) findEdge(from, to uint64, o Orientation) *PanEdge {
	if n, ok := g.nodes[from]; ok {
		for _, h := range n.edges {
			if e := g.edges[h]; e != nil && e.equalUnderReversal(from, to, o) {
				return e
			}
		}
		return nil
	}
	for _, e := range g.edges {
		if e.equalUnderReversal(from, to, o) {
			return e
		}
	}
	return nil
}

// RemoveEdge erases e from the graph: from both endpoint nodes' incident
// lists, from every read that threads it (per-read edge-list repair is
// the caller's responsibility, matching the original's documented
// iterator-invalidation hazard — callers iterating a read's edges must
// use the cursor returned by PanRead.RemoveEdgeAt), and finally from the
// graph's own maps.
func (g *Graph) RemoveEdge(e *PanEdge) {
	if n, ok := g.nodes[e.From]; ok {
		n.removeEdgeHandle(e.Handle)
	}
	if n, ok := g.nodes[e.To]; ok {
		n.removeEdgeHandle(e.Handle)
	}
	for readID := range e.reads {
		if r, ok := g.reads[readID]; ok {
			r.RemoveEdge(e.Handle)
		}
	}
	delete(g.edges, e.Handle)
	for i, h := range g.edgeOrder {
		if h == e.Handle {
			g.edgeOrder = append(g.edgeOrder[:i], g.edgeOrder[i+1:]...)
			break
		}
	}
}

// AddShortcutEdge collapses the two-edge path n --e1--> mid --e2--> far
// (n's interior node `mid` has exactly these two edges from the
// perspective of the reads being collapsed) into a single direct edge
// n->far, preserving the orientation composition via CombineOrientations.
// mid is the node common to e1 and e2.
//
// Every read that carries both e1 and e2 is rerouted onto the shortcut and
// drops its read-level claim on mid; a read carrying only one of the two
// keeps it. e1 and e2 are removed from the graph once no read carries
// them, and mid itself stays in the graph for the pruning passes.
//
// When no read carries both e1 and e2 there is no evidence for a
// shortcut: both edges are deleted, no shortcut edge is created, and no
// read's bookkeeping for mid changes.
func (g *Graph) AddShortcutEdge(mid *PanNode, e1, e2 *PanEdge) {
	other := func(e *PanEdge) uint64 {
		if e.From == mid.NodeID {
			return e.To
		}
		return e.From
	}
	n := other(e1)
	far := other(e2)

	// o1/o2 are e1/e2's orientation as traversed n->mid->far: e1 is
	// reversed when it is stored mid->n (mid is its From), e2 when it is
	// stored far->mid (mid is its To).
	o1 := e1.Orientation
	if e1.From == mid.NodeID {
		o1 = RevOrient(e1.Orientation)
	}
	o2 := e2.Orientation
	if e2.From == mid.NodeID {
		o2 = e2.Orientation
	} else {
		o2 = RevOrient(e2.Orientation)
	}
	combined := CombineOrientations(o1, o2)

	// Case 6: no read traverses both e1 and e2 — there is no evidence a
	// shortcut belongs here, so delete both and stop. No shortcut edge,
	// no node removal.
	if !sharesAnyRead(e1, e2) {
		g.RemoveEdge(e1)
		g.RemoveEdge(e2)
		return
	}

	// n == far is the perfect-2-cycle case (mid has exactly two edges,
	// both to the same neighbour): the shortcut would be a self-loop on n.
	// We still materialize it — the ambiguity the original flags is in
	// which of e1/e2 the caller picks as "first", not in what we do with
	// them once picked.
	shortcut := g.AddEdge(n, far, combined)
	for readID := range unionReads(e1, e2) {
		_, onE1 := e1.reads[readID]
		_, onE2 := e2.reads[readID]
		if !onE1 || !onE2 {
			continue
		}
		r, ok := g.reads[readID]
		if !ok {
			continue
		}
		// A read carrying both e1 and e2 has them adjacent in its edge
		// list; replacing each occurrence independently leaves the
		// shortcut duplicated back-to-back, so collapse runs afterward.
		r.replaceEdge(e1, shortcut)
		r.replaceEdge(e2, shortcut)
		r.collapseAdjacentDuplicates()
		r.RemoveNode(mid)
	}
	if e1.Covg == 0 {
		g.RemoveEdge(e1)
	}
	if e2.Covg == 0 {
		g.RemoveEdge(e2)
	}
}

func unionReads(e1, e2 *PanEdge) map[uint64]struct{} {
	out := make(map[uint64]struct{}, len(e1.reads)+len(e2.reads))
	for id := range e1.reads {
		out[id] = struct{}{}
	}
	for id := range e2.reads {
		out[id] = struct{}{}
	}
	return out
}
