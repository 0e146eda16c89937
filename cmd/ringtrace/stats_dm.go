package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ringtrace/cmd/ringtrace/ui"
	"github.com/katalvlaran/ringtrace/stats"
	"github.com/katalvlaran/ringtrace/txgraph"
)

func statsDmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats-dm <edge_file> <pre_rings> <post_rings>",
		Short: "Report statistics for the DM decomposition attack",
		Long: `Compare the ring files written before and after the
Dulmage-Mendelsohn decomposition, reporting mixin histograms and the
pre-attack sizes of the rings the decomposition traced.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatsDm(args[0], args[1], args[2])
		},
	}
}

func runStatsDm(edgeFile, preRings, postRings string) error {
	start := time.Now()
	el, err := txgraph.ReadEdges(edgeFile)
	if err != nil {
		return err
	}
	fmt.Println(ui.Muted(fmt.Sprintf("edge file read in %v", time.Since(start))))
	fmt.Print(ui.KeyValues(
		ui.KV("key images", el.NumKI()),
		ui.KV("public keys", el.NumPK()),
	))

	pre, err := txgraph.ReadRings(preRings)
	if err != nil {
		return err
	}
	preSizes := pre.RingSizes()
	fmt.Print(ui.HistogramTable("pre-decomposition mixin histogram", stats.FromSizes(preSizes)))

	post, err := txgraph.ReadRings(postRings)
	if err != nil {
		return err
	}
	postSizes := post.RingSizes()
	traced, err := stats.TracedFrom(preSizes, postSizes)
	if err != nil {
		return err
	}
	fmt.Print(ui.HistogramTable("post-decomposition mixin histogram", stats.FromSizes(postSizes)))
	fmt.Print(ui.HistogramTable("pre-attack mixins of DM-traced rings", traced))
	fmt.Print(ui.KeyValues(ui.KV("rings traced by DM decomposition", traced.Total())))
	return nil
}
