package pangraph

// RemoveLowCovgEdges deletes every edge whose coverage is at most thresh.
// Edges are collected before deletion so the pass is stable under the map
// mutation RemoveEdge performs.
func (g *Graph) RemoveLowCovgEdges(thresh float64) int {
	var victims []*PanEdge
	for _, e := range g.edges {
		if float64(e.Covg) <= thresh {
			victims = append(victims, e)
		}
	}
	for _, e := range victims {
		g.RemoveEdge(e)
	}
	g.infof("RemoveLowCovgEdges(%.3f): removed %d edges", thresh, len(victims))
	return len(victims)
}

// RemoveLowCovgNodes deletes every node whose coverage is at most thresh,
// along with its incident edges (via RemoveNode).
func (g *Graph) RemoveLowCovgNodes(thresh float64) int {
	var victims []*PanNode
	for _, n := range g.nodes {
		if float64(n.Covg) <= thresh {
			victims = append(victims, n)
		}
	}
	for _, n := range victims {
		g.RemoveNode(n)
	}
	g.infof("RemoveLowCovgNodes(%.3f): removed %d nodes", thresh, len(victims))
	return len(victims)
}

// ReadClean scans each read's consecutive edge pairs in order and, whenever
// both edges of a pair have coverage at most thresh, collapses them into a
// single shortcut edge via AddShortcutEdge. The scan position is not
// advanced past a successful collapse, so the shortcut it produces is
// immediately re-examined against its new neighbour — a read with a run of
// several consecutive low-coverage edges linearizes into one shortcut in a
// single pass, not one pair at a time.
func (g *Graph) ReadClean(thresh float64) int {
	collapsed := 0
	for _, r := range g.reads {
		i := 0
		for i+1 < len(r.Edges) {
			e1, ok1 := g.edges[r.Edges[i]]
			e2, ok2 := g.edges[r.Edges[i+1]]
			if !ok1 || !ok2 {
				i++
				continue
			}
			if float64(e1.Covg) > thresh || float64(e2.Covg) > thresh {
				i++
				continue
			}
			nodeID, ok := sharedNode(e1, e2)
			if !ok {
				i++
				continue
			}
			mid, ok := g.nodes[nodeID]
			if !ok {
				i++
				continue
			}
			g.AddShortcutEdge(mid, e1, e2)
			collapsed++
		}
	}
	g.infof("ReadClean(%.3f): collapsed %d consecutive low-covg edge pairs", thresh, collapsed)
	return collapsed
}

// sharedNode returns the node id common to e1 and e2 — the interior node a
// shortcut through them would remove — or false if the two edges share no
// endpoint.
func sharedNode(e1, e2 *PanEdge) (uint64, bool) {
	switch {
	case e1.From == e2.From || e1.From == e2.To:
		return e1.From, true
	case e1.To == e2.From || e1.To == e2.To:
		return e1.To, true
	default:
		return 0, false
	}
}

// SplitNodesByReads walks every node whose coverage exceeds nodeThresh
// and, for each pair of incident edges whose combined coverage exceeds
// edgeThresh but which no single read traverses together, calls
// SplitNodeByEdges to separate the two paths through the node into
// distinct node instances. This is the engine's mechanism for resolving
// repeat-induced node merges once enough read evidence disagrees with
// the merge.
func (g *Graph) SplitNodesByReads(nodeThresh, edgeThresh float64) int {
	splits := 0
	for _, n := range g.collectNodesAbove(nodeThresh) {
		splits += g.splitNodePairwise(n, edgeThresh)
	}
	g.infof("SplitNodesByReads(node>%.3f, edge>%.3f): performed %d splits", nodeThresh, edgeThresh, splits)
	return splits
}

func (g *Graph) collectNodesAbove(thresh float64) []*PanNode {
	var out []*PanNode
	for _, n := range g.nodes {
		if float64(n.Covg) > thresh {
			out = append(out, n)
		}
	}
	return out
}

// splitNodePairwise tries every pair of n's incident edges in turn; a
// pair is split when their combined coverage clears edgeThresh but no
// read threads both, since that is direct evidence the two edges
// represent genuinely distinct paths through a merged repeat instance.
func (g *Graph) splitNodePairwise(n *PanNode, edgeThresh float64) int {
	splits := 0
	handles := n.Edges()
	for i := 0; i < len(handles); i++ {
		e1, ok := g.edges[handles[i]]
		if !ok {
			continue
		}
		for j := i + 1; j < len(handles); j++ {
			e2, ok := g.edges[handles[j]]
			if !ok {
				continue
			}
			if float64(e1.Covg+e2.Covg) <= edgeThresh {
				continue
			}
			if sharesAnyRead(e1, e2) {
				continue
			}
			g.SplitNodeByEdges(n, e1, e2)
			splits++
			// The split removes e1 from the graph, so no further pair
			// involving it is incident to n.
			break
		}
	}
	return splits
}

func sharesAnyRead(e1, e2 *PanEdge) bool {
	for id := range e1.reads {
		if _, ok := e2.reads[id]; ok {
			return true
		}
	}
	return false
}

// Clean runs the fixed six-step cleaning schedule against an expected
// mean coverage. The schedule is deliberately not configurable: every
// threshold is derived from coverage and the empirically observed
// edge/node coverage ratio f, in the exact order below.
func (g *Graph) Clean(coverage float64) {
	edgeCovg, nodeCovg := g.sumCoverages()
	f := coverage
	if nodeCovg > 0 {
		f = coverage * edgeCovg / nodeCovg
	}
	g.infof("Clean(coverage=%.3f): edge_covg=%.3f node_covg=%.3f f=%.3f", coverage, edgeCovg, nodeCovg, f)

	g.ReadClean(0.025 * f)
	g.ReadClean(0.05 * f)
	g.ReadClean(0.1 * f)
	g.ReadClean(0.2 * f)
	g.SplitNodesByReads(1.5*coverage, f)
	g.ReadClean(0.2 * f)
	g.RemoveLowCovgEdges(0.2 * f)
	g.RemoveLowCovgNodes(0.05 * coverage)
}

// sumCoverages returns the summed edge coverage and summed node coverage
// across the whole graph — Σedge.covg and Σnode.covg, not an average of
// either — the two figures Clean divides to scale its thresholds to the
// data's actual depth.
func (g *Graph) sumCoverages() (edgeCovg, nodeCovg float64) {
	var edgeSum, nodeSum int
	for _, e := range g.edges {
		edgeSum += e.Covg
	}
	for _, n := range g.nodes {
		nodeSum += n.Covg
	}
	return float64(edgeSum), float64(nodeSum)
}
