package pangraph

// AddHitsToKmerGraphs folds every minimizer hit recorded against each
// node's reads into that node's per-locus KmerGraphInstance coverage
// vector, using locusTemplates to instantiate a node's k-mer graph the
// first time it is needed (a node added via the hit-based AddNode has no
// KmerGraphInstance until this runs; one added via AddNodeForSample
// already has one from construction).
//
// This is the supplemented add_hits_to_kmergraphs step from the original
// pipeline: local assembly of the k-mer graph's topology is out of scope
// here, but folding hit coverage onto an already-assembled template is
// in scope since it is purely a bookkeeping pass over data this package
// already owns.
func (g *Graph) AddHitsToKmerGraphs(locusTemplates map[uint64]*KmerGraphTemplate) {
	for _, n := range g.nodes {
		if n.KmerGraph == nil {
			tmpl := locusTemplates[n.PRGID]
			if tmpl == nil {
				continue
			}
			n.KmerGraph = newKmerGraphInstance(tmpl)
		}
		g.foldNodeHits(n)
	}
}

func (g *Graph) foldNodeHits(n *PanNode) {
	kg := n.KmerGraph
	seenReads := make(map[uint64]struct{})
	for readID := range n.reads {
		r, ok := g.reads[readID]
		if !ok {
			continue
		}
		hits := r.Hits[n.PRGID]
		if len(hits) == 0 {
			continue
		}
		seenReads[readID] = struct{}{}
		for _, h := range hits {
			if h.KNodeID < 0 || h.KNodeID >= len(kg.Covg) {
				g.fatalf("AddHitsToKmerGraphs: hit on node %d references k-mer node %d outside [0,%d)",
					n.NodeID, h.KNodeID, len(kg.Covg))
			}
			kg.Covg[h.KNodeID][h.strandIndex()]++
		}
	}
	kg.NumReads = uint32(len(seenReads))
}

// TupleGraphSink receives the tuples ConstructTupleGraph discovers. The
// consumer that turns a stream of tuples into an assembled contig is
// local assembly and explicitly out of scope; this package only ever
// produces tuples, it never interprets them.
type TupleGraphSink interface {
	// AddTuple is called once per node_id path of length tupleSize
	// observed in some read's traversal, in read order.
	AddTuple(path []uint64)
}

// ConstructTupleGraph walks every read's node sequence (derived from its
// edge list) and emits every contiguous window of tupleSize node ids to
// sink. tupleSize must be at least 2; a read shorter than tupleSize nodes
// contributes no tuples.
func (g *Graph) ConstructTupleGraph(tupleSize int, sink TupleGraphSink) {
	if tupleSize < 2 {
		g.fatalf("ConstructTupleGraph: tupleSize must be >= 2, got %d", tupleSize)
	}
	for _, r := range g.reads {
		path := g.nodePathForRead(r)
		for i := 0; i+tupleSize <= len(path); i++ {
			window := make([]uint64, tupleSize)
			copy(window, path[i:i+tupleSize])
			sink.AddTuple(window)
		}
	}
}

// nodePathForRead reconstructs the ordered sequence of node ids a read
// visits from its edge list, threading from each edge's From/To through
// whichever endpoint was not the previous edge's endpoint.
func (g *Graph) nodePathForRead(r *PanRead) []uint64 {
	if len(r.Edges) == 0 {
		return nil
	}
	path := make([]uint64, 0, len(r.Edges)+1)
	var prev uint64
	havePrev := false
	for _, h := range r.Edges {
		e, ok := g.edges[h]
		if !ok {
			continue
		}
		if !havePrev {
			path = append(path, e.From)
			prev = e.From
			havePrev = true
		}
		var next uint64
		if e.From == prev {
			next = e.To
		} else {
			next = e.From
		}
		path = append(path, next)
		prev = next
	}
	return path
}
