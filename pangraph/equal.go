package pangraph

// Equal reports whether g and other have the same node_id set and the
// same edge set modulo reversal equivalence, ignoring coverage, read
// threading, and k-mer graph contents — the notion of graph equality the
// specification defines for comparing cleaning-pipeline outputs across
// runs.
func (g *Graph) Equal(other *Graph) bool {
	if other == nil {
		return false
	}
	if len(g.nodes) != len(other.nodes) {
		return false
	}
	for id := range g.nodes {
		if _, ok := other.nodes[id]; !ok {
			return false
		}
	}

	if len(g.edges) != len(other.edges) {
		return false
	}
	for _, e := range g.edges {
		if !other.hasEquivalentEdge(e) {
			return false
		}
	}
	return true
}

func (g *Graph) hasEquivalentEdge(e *PanEdge) bool {
	for _, own := range g.edges {
		if own.equalUnderReversal(e.From, e.To, e.Orientation) {
			return true
		}
	}
	return false
}
