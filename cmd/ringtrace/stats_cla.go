package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ringtrace/cmd/ringtrace/ui"
	"github.com/katalvlaran/ringtrace/stats"
	"github.com/katalvlaran/ringtrace/txgraph"
)

func statsClaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats-cla <edge_file> <post_cascade_rings> <post_cluster_rings>",
		Short: "Report statistics for the cascade and clustering attacks",
		Long: `Compare the initial transaction graph with the ring files produced
by the cascade and clustering attacks, reporting mixin histograms and
the number of rings each attack traced. The clustering run must have
been seeded from the cascade output.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatsCla(args[0], args[1], args[2])
		},
	}
}

func runStatsCla(edgeFile, cascadeRings, clusterRings string) error {
	start := time.Now()
	el, err := txgraph.ReadEdges(edgeFile)
	if err != nil {
		return err
	}
	fmt.Println(ui.Muted(fmt.Sprintf("edge file read in %v", time.Since(start))))

	initial := txgraph.NewGraph(el)
	initialSizes := initial.RingSizes()
	fmt.Print(ui.KeyValues(
		ui.KV("key images", initial.NumKI()),
		ui.KV("public keys", initial.NumPK),
	))
	fmt.Print(ui.HistogramTable("initial mixin histogram", stats.FromSizes(initialSizes)))

	postCascade, err := txgraph.ReadRings(cascadeRings)
	if err != nil {
		return err
	}
	cascadeSizes := postCascade.RingSizes()
	cascadeTraced, err := stats.TracedFrom(initialSizes, cascadeSizes)
	if err != nil {
		return err
	}
	fmt.Print(ui.HistogramTable("post-cascade mixin histogram", stats.FromSizes(cascadeSizes)))
	fmt.Print(ui.HistogramTable("pre-attack mixins of cascade-traced rings", cascadeTraced))
	fmt.Print(ui.KeyValues(ui.KV("rings traced by cascade attack", cascadeTraced.Total())))

	postCluster, err := txgraph.ReadRings(clusterRings)
	if err != nil {
		return err
	}
	clusterSizes := postCluster.RingSizes()
	clusterTraced, err := stats.TracedFrom(initialSizes, clusterSizes)
	if err != nil {
		return err
	}
	fmt.Print(ui.HistogramTable("post-cluster mixin histogram", stats.FromSizes(clusterSizes)))

	clusterOnly, err := clusterTraced.Sub(cascadeTraced)
	if err != nil {
		return fmt.Errorf("%w (was the clustering run seeded from this cascade output?)", err)
	}
	fmt.Print(ui.HistogramTable("pre-attack mixins of cluster-traced rings", clusterOnly))
	fmt.Print(ui.KeyValues(ui.KV("rings traced by clustering algorithm", clusterOnly.Total())))
	return nil
}
