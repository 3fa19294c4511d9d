package pangraph

import (
	"bufio"
	"fmt"
	"os"
	"sort"
)

// WriteGraph emits the sequence-graph description of §6 to path: a header
// line, one S (segment) line per node naming it and its coverage, and one
// L (link) line per edge naming its endpoints, orientation signs, and
// coverage. Nodes are written in node_id order; edges in insertion order,
// so writing the same graph twice produces byte-identical output.
func (g *Graph) WriteGraph(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return wrapIOErr("create", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)

	if _, err := fmt.Fprintf(w, "H\tVN:Z:1.0\n"); err != nil {
		return wrapIOErr("write", path, err)
	}

	ids := g.Nodes()
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		n := g.nodes[id]
		if _, err := fmt.Fprintf(w, "S\t%s\tN\tFC:i:%d\n", n.Name, n.Covg); err != nil {
			return wrapIOErr("write", path, err)
		}
	}

	for _, e := range g.Edges() {
		fromSign := e.Orientation.fromSign()
		toSign := e.Orientation.toSign()
		if _, err := fmt.Fprintf(w, "L\t%s\t%c\t%s\t%c\t0M\tRC:i:%d\n",
			g.nodeName(e.From), fromSign, g.nodeName(e.To), toSign, e.Covg); err != nil {
			return wrapIOErr("write", path, err)
		}
	}

	if err := w.Flush(); err != nil {
		return wrapIOErr("flush", path, err)
	}
	return nil
}

// nodeName looks up id's display name. An edge referencing a node absent
// from the graph is a contract violation: RemoveNode always takes its
// incident edges down with it.
func (g *Graph) nodeName(id uint64) string {
	n, ok := g.nodes[id]
	if !ok {
		g.fatalf("WriteGraph: edge references missing node %d", id)
		return ""
	}
	return n.Name
}

// SaveMatrix emits the §6 presence matrix to path: a header of a tab
// followed by sample names, then one row per node giving its name and,
// for each sample, the number of k-mer-path traversals that sample made
// through the node (0 if the locus is absent from that sample).
func (g *Graph) SaveMatrix(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return wrapIOErr("create", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)

	samples := g.Samples()
	sort.Strings(samples)

	for _, s := range samples {
		if _, err := fmt.Fprintf(w, "\t%s", s); err != nil {
			return wrapIOErr("write", path, err)
		}
	}
	if _, err := fmt.Fprint(w, "\n"); err != nil {
		return wrapIOErr("write", path, err)
	}

	ids := g.Nodes()
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		n := g.nodes[id]
		if _, err := fmt.Fprint(w, n.Name); err != nil {
			return wrapIOErr("write", path, err)
		}
		for _, s := range samples {
			count := 0
			if sample, ok := g.samples[s]; ok {
				count = len(sample.Paths[id])
			}
			if _, err := fmt.Fprintf(w, "\t%d", count); err != nil {
				return wrapIOErr("write", path, err)
			}
		}
		if _, err := fmt.Fprint(w, "\n"); err != nil {
			return wrapIOErr("write", path, err)
		}
	}

	if err := w.Flush(); err != nil {
		return wrapIOErr("flush", path, err)
	}
	return nil
}
