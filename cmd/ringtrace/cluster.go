package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ringtrace/cluster"
	"github.com/katalvlaran/ringtrace/cmd/ringtrace/ui"
	"github.com/katalvlaran/ringtrace/stats"
	"github.com/katalvlaran/ringtrace/txgraph"
)

func clusterCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cluster <post_cascade_rings> <out_rings>",
		Short: "Run the closed set attack of Yu et al. (FC 2019)",
		Long: `Run the clustering algorithm implementing the closed set attack.
The input ring file should already have been subjected to the cascade
attack; the reduced rings are written to the output ring file.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCluster(args[0], args[1])
		},
	}
}

func runCluster(inRings, outRings string) error {
	start := time.Now()
	g, err := txgraph.ReadRings(inRings)
	if err != nil {
		return err
	}
	fmt.Println(ui.Muted(fmt.Sprintf("ring file read in %v", time.Since(start))))
	fmt.Print(ui.KeyValues(
		ui.KV("key images", g.NumKI()),
		ui.KV("public keys", g.NumPK),
		ui.KV("traceable rings", g.Traceable()),
	))

	preSizes := g.RingSizes()

	opts := cluster.DefaultOptions()
	opts.OnCluster = func(count, seed, size int) {
		fmt.Printf("%d: cluster of size %d found at key image %d\n", count, size, seed)
	}
	opts.OnPass = func(ps cluster.PassStats) {
		fmt.Print(ui.KeyValues(
			ui.KV("pass", ps.Pass),
			ui.KV("clusters found", ps.Clusters),
			ui.KV("traceable rings", ps.Traceable),
		))
	}

	res, err := cluster.Run(g, opts)
	if err != nil {
		return err
	}

	fmt.Print(ui.KeyValues(
		ui.KV("closed sets", len(res.ClosedSets)),
		ui.KV("singleton closed sets", res.Singletons()),
		ui.KV("non-singleton closed sets", len(res.ClosedSets)-res.Singletons()),
		ui.KV("public keys in closed sets", res.PubKeys()),
		ui.KV("public keys in non-singleton sets", res.NonSingletonPubKeys()),
	))
	fmt.Println(ui.Title("closed set size histogram"), ui.SizeHistogramLine(res.SizeHistogram()))

	fmt.Print(ui.HistogramTable("pre-attack mixin histogram", stats.FromSizes(preSizes)))
	fmt.Print(ui.HistogramTable("post-attack mixin histogram", stats.FromSizes(g.RingSizes())))

	return g.WriteRings(outRings)
}
