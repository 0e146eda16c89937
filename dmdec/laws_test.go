package dmdec_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ringtrace/cascade"
	"github.com/katalvlaran/ringtrace/cluster"
	"github.com/katalvlaran/ringtrace/dmdec"
	"github.com/katalvlaran/ringtrace/txgraph"
)

// edgeText mixes a zero-mixin chain, an irreducible 2x2 block, a closed
// set with an external victim, and a free ring.
const edgeText = "0 0\n" +
	"1 0\n1 1\n" +
	"2 2\n2 3\n3 2\n3 3\n" +
	"4 2\n4 4\n" +
	"5 4\n5 5\n5 6\n"

func tracedSet(g *txgraph.Graph) map[int]bool {
	out := make(map[int]bool)
	for ki, ring := range g.Rings {
		if len(ring) == 1 {
			out[ki] = true
		}
	}
	return out
}

// TestAttackOrdering checks the containment law: the key images traced
// by DM decomposition contain those traced by cascade+clustering, which
// contain those traced by cascade alone, which contain the initial
// zero-mixin rings.
func TestAttackOrdering(t *testing.T) {
	el, err := txgraph.ParseEdges(strings.NewReader(edgeText))
	require.NoError(t, err)

	initial := tracedSet(txgraph.NewGraph(el))

	// Cascade only.
	gCascade := txgraph.NewGraph(el)
	opts := cascade.DefaultOptions()
	opts.MaxIterations = 1 << 16
	_, err = cascade.Run(gCascade, opts)
	require.NoError(t, err)
	afterCascade := tracedSet(gCascade)

	// Clustering seeded from the cascade output.
	gCluster := txgraph.NewGraph(el)
	_, err = cascade.Run(gCluster, opts)
	require.NoError(t, err)
	_, err = cluster.Run(gCluster, cluster.DefaultOptions())
	require.NoError(t, err)
	afterCluster := tracedSet(gCluster)

	// DM decomposition from scratch.
	gDM := txgraph.NewGraph(el)
	d, err := dmdec.Decompose(txgraph.NewMatrix(el))
	require.NoError(t, err)
	d.Apply(gDM)
	afterDM := tracedSet(gDM)

	for ki := range initial {
		require.True(t, afterCascade[ki], "cascade lost initially traceable ki %d", ki)
	}
	for ki := range afterCascade {
		require.True(t, afterCluster[ki], "clustering lost cascade-traced ki %d", ki)
	}
	for ki := range afterCluster {
		require.True(t, afterDM[ki], "DM lost cluster-traced ki %d", ki)
	}
}

// TestDMEquivalentToClusterFixpoint: on these graphs the one-shot
// decomposition reaches exactly the clustering fixpoint.
func TestDMEquivalentToClusterFixpoint(t *testing.T) {
	for _, text := range []string{
		edgeText,
		"0 0\n0 1\n1 0\n1 1\n2 0\n2 2\n",
		"0 0\n1 0\n1 1\n2 1\n2 2\n",
	} {
		el, err := txgraph.ParseEdges(strings.NewReader(text))
		require.NoError(t, err)

		gCluster := txgraph.NewGraph(el)
		opts := cascade.DefaultOptions()
		opts.MaxIterations = 1 << 16
		_, err = cascade.Run(gCluster, opts)
		require.NoError(t, err)
		_, err = cluster.Run(gCluster, cluster.DefaultOptions())
		require.NoError(t, err)

		gDM := txgraph.NewGraph(el)
		d, err := dmdec.Decompose(txgraph.NewMatrix(el))
		require.NoError(t, err)
		d.Apply(gDM)

		require.Equal(t, gCluster.RingSizes(), gDM.RingSizes(), "input %q", text)
	}
}
