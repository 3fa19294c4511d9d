package pangraph_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bacpop/pangraph/pangraph"
)

func TestWriteGraphProducesStableOutput(t *testing.T) {
	require := require.New(t)

	g := pangraph.New()
	g.AddNode(1, "locusA", 100, nil)
	g.AddNode(2, "locusB", 100, nil)
	g.AddEdgeForRead(1, 2, pangraph.OrientFwdFwd, 100)

	path := filepath.Join(t.TempDir(), "graph.gfa")
	require.NoError(g.WriteGraph(path))

	content, err := os.ReadFile(path)
	require.NoError(err)
	require.Contains(string(content), "H\tVN:Z:1.0\n")
	require.Contains(string(content), "S\tlocusA\tN\tFC:i:1\n")
	require.Contains(string(content), "S\tlocusB\tN\tFC:i:1\n")
	require.Contains(string(content), "L\tlocusA\t+\tlocusB\t+\t0M\tRC:i:1\n")
}

func TestSaveMatrixListsPathTraversalCounts(t *testing.T) {
	require := require.New(t)

	tmpl := &pangraph.KmerGraphTemplate{PRGID: 1, NumNodes: 2}
	g := pangraph.New()
	g.AddNodeForSample(1, "locusA", "sampleX", pangraph.KmerPath{0, 1}, tmpl)
	g.AddNodeForSample(1, "locusA", "sampleX", pangraph.KmerPath{0, 1}, tmpl)

	path := filepath.Join(t.TempDir(), "matrix.tsv")
	require.NoError(g.SaveMatrix(path))

	content, err := os.ReadFile(path)
	require.NoError(err)
	require.Contains(string(content), "\tsampleX\n")
	require.Contains(string(content), "locusA\t2\n")
}
