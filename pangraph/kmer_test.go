package pangraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bacpop/pangraph/pangraph"
)

func TestAddHitsToKmerGraphsAccumulatesCoverage(t *testing.T) {
	require := require.New(t)

	g := pangraph.New()
	hit := &pangraph.MinimizerHit{ReadID: 100, PRGID: 1, KNodeID: 0, Strand: true}
	g.AddNode(1, "locusA", 100, []*pangraph.MinimizerHit{hit})

	tmpl := &pangraph.KmerGraphTemplate{PRGID: 1, NumNodes: 3}
	g.AddHitsToKmerGraphs(map[uint64]*pangraph.KmerGraphTemplate{1: tmpl})

	n, _ := g.Node(1)
	require.NotNil(n.KmerGraph)
	require.Equal(uint32(1), n.KmerGraph.Covg[0][1])
	require.Equal(uint32(0), n.KmerGraph.Covg[0][0])
}

type recordingSink struct {
	tuples [][]uint64
}

func (s *recordingSink) AddTuple(path []uint64) {
	cp := make([]uint64, len(path))
	copy(cp, path)
	s.tuples = append(s.tuples, cp)
}

func TestConstructTupleGraphEmitsWindows(t *testing.T) {
	require := require.New(t)

	g := pangraph.New()
	g.AddEdgeForRead(1, 2, pangraph.OrientFwdFwd, 100)
	g.AddEdgeForRead(2, 3, pangraph.OrientFwdFwd, 100)

	sink := &recordingSink{}
	g.ConstructTupleGraph(2, sink)

	require.ElementsMatch([][]uint64{{1, 2}, {2, 3}}, sink.tuples)
}

func TestConstructTupleGraphRejectsTooSmallTupleSize(t *testing.T) {
	require := require.New(t)
	g := pangraph.New(pangraph.WithLogger(fatalPanicLogger{}))
	require.Panics(func() { g.ConstructTupleGraph(1, &recordingSink{}) })
}
