package pangraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/bacpop/pangraph/pangraph"
)

type EdgeSuite struct {
	suite.Suite
	g *pangraph.Graph
}

func (s *EdgeSuite) SetupTest() {
	s.g = pangraph.New()
}

func (s *EdgeSuite) TestAddEdgeDedupUnderReversal() {
	require := require.New(s.T())

	e1 := s.g.AddEdge(1, 2, pangraph.OrientFwdFwd)
	require.Equal(1, e1.Covg)

	// Same adjacency, same direction: bumps coverage, no new handle.
	e2 := s.g.AddEdge(1, 2, pangraph.OrientFwdFwd)
	require.Equal(e1.Handle, e2.Handle)
	require.Equal(2, e2.Covg)

	// Reversal-equivalent adjacency must dedup to the same edge.
	e3 := s.g.AddEdge(2, 1, pangraph.RevOrient(pangraph.OrientFwdFwd))
	require.Equal(e1.Handle, e3.Handle)
	require.Equal(3, e3.Covg)

	require.Equal(1, s.g.EdgeCount())
}

func (s *EdgeSuite) TestAddEdgeDistinctOrientationsAreDistinctEdges() {
	require := require.New(s.T())
	s.g.AddEdge(1, 2, pangraph.OrientFwdFwd)
	s.g.AddEdge(1, 2, pangraph.OrientRevRev)
	require.Equal(2, s.g.EdgeCount())
}

func (s *EdgeSuite) TestAddEdgeForReadThreadsRead() {
	require := require.New(s.T())
	e := s.g.AddEdgeForRead(1, 2, pangraph.OrientFwdFwd, 100)

	r, ok := s.g.Read(100)
	require.True(ok)
	require.Equal([]string{e.Handle}, r.Edges)
	require.Contains(e.Reads(), uint64(100))
}

func (s *EdgeSuite) TestRemoveEdgeDetachesFromNodesAndReads() {
	require := require.New(s.T())
	s.g.AddNode(1, "locusA", 100, nil)
	s.g.AddNode(2, "locusB", 100, nil)
	e := s.g.AddEdgeForRead(1, 2, pangraph.OrientFwdFwd, 100)

	s.g.RemoveEdge(e)

	_, ok := s.g.Edge(e.Handle)
	require.False(ok)
	n1, _ := s.g.Node(1)
	require.NotContains(n1.Edges(), e.Handle)
	r, _ := s.g.Read(100)
	require.NotContains(r.Edges, e.Handle)
}

func (s *EdgeSuite) TestAddShortcutEdgeCollapsesPath() {
	require := require.New(s.T())
	s.g.AddNode(1, "a", 100, nil)
	s.g.AddNode(2, "mid", 100, nil)
	s.g.AddNode(3, "b", 100, nil)

	e1 := s.g.AddEdgeForRead(1, 2, pangraph.OrientFwdFwd, 100)
	e2 := s.g.AddEdgeForRead(2, 3, pangraph.OrientFwdFwd, 100)
	mid, _ := s.g.Node(2)

	s.g.AddShortcutEdge(mid, e1, e2)

	_, ok := s.g.Edge(e1.Handle)
	require.False(ok, "e1 must be removed after shortcut")
	_, ok = s.g.Edge(e2.Handle)
	require.False(ok, "e2 must be removed after shortcut")

	var shortcut *pangraph.PanEdge
	for _, e := range s.g.Edges() {
		if (e.From == 1 && e.To == 3) || (e.From == 3 && e.To == 1) {
			shortcut = e
		}
	}
	require.NotNil(shortcut, "expected a direct 1->3 shortcut edge")
	// AddEdge(1,2,FwdFwd) + AddEdge(2,3,FwdFwd) through node 2 combine to
	// FwdFwd: both legs are traversed forward end to end.
	require.Equal(pangraph.OrientFwdFwd, shortcut.Orientation)
}

func (s *EdgeSuite) TestAddShortcutEdgeNoEvidenceDeletesBoth() {
	require := require.New(s.T())
	s.g.AddNode(1, "a", 100, nil)
	s.g.AddNode(2, "mid", 100, nil)
	s.g.AddNode(3, "b", 100, nil)

	e1 := s.g.AddEdge(1, 2, pangraph.OrientFwdFwd)
	e2 := s.g.AddEdge(2, 3, pangraph.OrientFwdFwd)
	mid, _ := s.g.Node(2)

	s.g.AddShortcutEdge(mid, e1, e2)

	require.Equal(0, s.g.EdgeCount())
}

func TestEdgeSuite(t *testing.T) {
	suite.Run(t, new(EdgeSuite))
}
