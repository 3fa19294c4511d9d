package pangraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bacpop/pangraph/pangraph"
)

func TestRevOrientInvolution(t *testing.T) {
	require := require.New(t)
	for _, o := range []pangraph.Orientation{
		pangraph.OrientRevRev, pangraph.OrientFwdRev, pangraph.OrientRevFwd, pangraph.OrientFwdFwd,
	} {
		require.Equal(o, pangraph.RevOrient(pangraph.RevOrient(o)), "RevOrient must be an involution for %d", o)
	}
}

func TestRevOrientSwapsEndpoints(t *testing.T) {
	require := require.New(t)
	require.Equal(pangraph.OrientFwdFwd, pangraph.RevOrient(pangraph.OrientRevRev))
	require.Equal(pangraph.OrientRevRev, pangraph.RevOrient(pangraph.OrientFwdFwd))
	require.Equal(pangraph.OrientRevFwd, pangraph.RevOrient(pangraph.OrientFwdRev))
}

func TestCombineOrientationsAlwaysValid(t *testing.T) {
	require := require.New(t)
	for f := pangraph.OrientRevRev; f <= pangraph.OrientFwdFwd; f++ {
		for tt := pangraph.OrientRevRev; tt <= pangraph.OrientFwdFwd; tt++ {
			c := pangraph.CombineOrientations(f, tt)
			require.True(c.Valid(), "combine(%d,%d)=%d must be a valid 2-bit code", f, tt, c)
		}
	}
}
