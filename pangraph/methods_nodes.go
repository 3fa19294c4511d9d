package pangraph

// AddNode records a cluster of minimizer hits for one locus on one read.
// Every hit in cluster must carry the same prgID and readID, per the
// specification's precondition — a mismatch is a programmer-contract
// violation, not a recoverable error.
//
// On first sight of prgID, a new PanNode is created with node_id == prgID.
// Otherwise the existing node's coverage is bumped if readID does not
// already cover it. On first sight of
// readID, a new PanRead is created. The hits are unioned into the read's
// per-locus hit set, and the read is added to the node's read set.
//
// Postcondition: I1 (node.Covg == |node.reads|) holds for the touched node.
func (g *Graph) AddNode(prgID uint64, prgName string, readID uint64, cluster []*MinimizerHit) *PanNode {
	for _, h := range cluster {
		if h.ReadID != readID || h.PRGID != prgID {
			g.fatalf("AddNode: hit (read=%d, prg=%d) does not match (read=%d, prg=%d)",
				h.ReadID, h.PRGID, readID, prgID)
		}
	}

	n, exists := g.nodes[prgID]
	if !exists {
		n = &PanNode{
			PRGID:   prgID,
			NodeID:  prgID,
			Name:    prgName,
			reads:   make(map[uint64]struct{}),
			samples: make(map[string]struct{}),
		}
		g.nodes[prgID] = n
	}

	r, rExists := g.reads[readID]
	if !rExists {
		r = newPanRead(readID)
		g.reads[readID] = r
	}
	r.addHits(prgID, cluster)
	if _, alreadyCovers := n.reads[readID]; !alreadyCovers {
		n.reads[readID] = struct{}{}
		n.Covg++
	}

	if n.Covg != len(n.reads) {
		g.fatalf("AddNode: node %d covg=%d but reads.size()=%d", n.NodeID, n.Covg, len(n.reads))
	}
	return n
}

// AddNodeForSample records a sample's k-mer-path traversal of one locus.
// On first sight of prgID, a new PanNode is created and the locus's k-mer
// sub-graph template is copied into the node (a shared, immutable
// reference — see KmerGraphTemplate). On first sight of sampleName, a new
// PanSample is created.
func (g *Graph) AddNodeForSample(prgID uint64, prgName, sampleName string, kmp KmerPath, tmpl *KmerGraphTemplate) *PanNode {
	n, exists := g.nodes[prgID]
	if !exists {
		n = &PanNode{
			PRGID:     prgID,
			NodeID:    prgID,
			Name:      prgName,
			reads:     make(map[uint64]struct{}),
			samples:   make(map[string]struct{}),
			KmerGraph: newKmerGraphInstance(tmpl),
		}
		g.nodes[prgID] = n
	}

	s, sExists := g.samples[sampleName]
	if !sExists {
		s = newPanSample(sampleName)
		g.samples[sampleName] = s
	}
	s.addPath(prgID, kmp)
	if _, alreadyCovers := n.samples[sampleName]; !alreadyCovers {
		n.samples[sampleName] = struct{}{}
		n.Covg++
	}

	return n
}

// RemoveNode removes n and, for consistency, every edge incident to it (in
// reverse-index order, matching the original), then erases n from the
// graph. Removing the incident edges may leave some reads' edge lists
// non-contiguous; the caller is responsible for any repair, exactly as
// RemoveEdge documents.
func (g *Graph) RemoveNode(n *PanNode) {
	for i := len(n.edges); i > 0; i-- {
		if e, ok := g.edges[n.edges[i-1]]; ok {
			g.RemoveEdge(e)
		}
	}
	delete(g.nodes, n.NodeID)
}

// SplitNodeByEdges clones n into a fresh node n' (new node_id), migrating
// every read that carries e1 (and every read whose *only* edge is e2) from
// n to n'. e1 and e2 are cloned alongside n into e1'/e2' with n replaced by
// n'. n must be an endpoint of e1.
//
// Returns the first edge handle that followed e1 in n's incident-edge list
// before the split and is still incident to n afterwards (or "" if there
// is none), so a caller iterating n.Edges() can resume from that handle.
func (g *Graph) SplitNodeByEdges(n *PanNode, e1, e2 *PanEdge) string {
	if n.NodeID != e1.From && n.NodeID != e1.To {
		g.fatalf("SplitNodeByEdges: node %d is not an endpoint of edge %s", n.NodeID, e1.Handle)
	}
	var afterE1 []string
	for i, h := range n.edges {
		if h == e1.Handle {
			afterE1 = append(afterE1, n.edges[i+1:]...)
			break
		}
	}

	newID := g.nextNodeID()
	clone := &PanNode{
		PRGID:   n.PRGID,
		NodeID:  newID,
		Name:    n.Name,
		reads:   make(map[uint64]struct{}),
		samples: make(map[string]struct{}),
	}
	g.nodes[newID] = clone

	e1Clone := g.cloneEdgeAcrossSplit(n, e1, clone)
	e2Clone := g.cloneEdgeAcrossSplit(n, e2, clone)
	// Undo the +1 covg bump AddEdge gave each clone; reads are re-attached below.
	e1Clone.Covg--
	e2Clone.Covg--

	for _, readID := range readIDsOf(e1) {
		r := g.reads[readID]
		r.replaceNode(n, clone)
		r.replaceEdge(e2, e2Clone)
		r.replaceEdge(e1, e1Clone)
	}

	// Greedily steal reads whose only edge is e2.
	for _, readID := range readIDsOf(e2) {
		r := g.reads[readID]
		if len(r.Edges) == 1 {
			r.replaceNode(n, clone)
			r.replaceEdge(e2, e2Clone)
		}
	}

	if e2.Covg == 0 {
		if len(e2.reads) != 0 {
			g.fatalf("SplitNodeByEdges: edge %s has covg 0 but %d reads", e2.Handle, len(e2.reads))
		}
		g.RemoveEdge(e2)
	}

	if e1.Covg != 0 {
		g.fatalf("SplitNodeByEdges: edge %s has covg %d, expected 0", e1.Handle, e1.Covg)
	}
	if len(e1.reads) != 0 {
		g.fatalf("SplitNodeByEdges: edge %s has %d reads, expected 0", e1.Handle, len(e1.reads))
	}

	n.removeEdgeHandle(e1.Handle)
	g.RemoveEdge(e1)

	// The caller's cursor into n's incident-edge list: the first handle that
	// followed e1 before the split and is still incident to n, or "" if none
	// is. Checked after every removal above so it is never a handle to an
	// edge that no longer exists.
	for _, h := range afterE1 {
		if n.hasEdge(h) {
			return h
		}
	}
	return ""
}

// cloneEdgeAcrossSplit creates (or reuses, via AddEdge's dedup) an edge
// mirroring orig but with n replaced by clone at whichever endpoint n
// occupied in orig.
func (g *Graph) cloneEdgeAcrossSplit(n *PanNode, orig *PanEdge, clone *PanNode) *PanEdge {
	switch {
	case n.NodeID == orig.From:
		return g.AddEdge(clone.NodeID, orig.To, orig.Orientation)
	case n.NodeID == orig.To:
		return g.AddEdge(orig.From, clone.NodeID, orig.Orientation)
	default:
		g.fatalf("SplitNodeByEdges: node %d is not an endpoint of edge %s", n.NodeID, orig.Handle)
		return nil
	}
}

func readIDsOf(e *PanEdge) []uint64 {
	out := make([]uint64, 0, len(e.reads))
	for id := range e.reads {
		out = append(out, id)
	}
	return out
}
