package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ringtrace/cmd/ringtrace/ui"
	"github.com/katalvlaran/ringtrace/dmdec"
	"github.com/katalvlaran/ringtrace/txgraph"
)

func dmdecCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dmdec <edge_file> <pre_rings> <post_rings> <sizes_file> <fine_file>",
		Short: "Run the Dulmage-Mendelsohn fine decomposition attack",
		Long: `Compute the Dulmage-Mendelsohn decomposition of the transaction
graph described by the edge file. Writes the ring state before and
after the attack, the closed set sizes, and the fine decomposition
block listing.`,
		Args: cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDmdec(args[0], args[1], args[2], args[3], args[4])
		},
	}
}

func runDmdec(edgeFile, preRings, postRings, sizesFile, fineFile string) error {
	start := time.Now()
	el, err := txgraph.ReadEdges(edgeFile)
	if err != nil {
		return err
	}
	fmt.Println(ui.Muted(fmt.Sprintf("edge file read in %v", time.Since(start))))

	g := txgraph.NewGraph(el)
	fmt.Print(ui.KeyValues(
		ui.KV("key images", g.NumKI()),
		ui.KV("public keys", g.NumPK),
		ui.KV("edges", el.Len()),
	))
	if err := g.WriteRings(preRings); err != nil {
		return err
	}

	start = time.Now()
	d, err := dmdec.Decompose(txgraph.NewMatrix(el))
	if err != nil {
		return err
	}
	fmt.Println(ui.Muted(fmt.Sprintf("decomposition computed in %v", time.Since(start))))

	fmt.Print(ui.KeyValues(
		ui.KV("matched public keys", fmt.Sprintf("%d of %d", d.MatchedRows, g.NumPK)),
		ui.KV("unreachable public keys", d.UnreachablePKs()),
		ui.KV("unreachable key images", d.UnreachableKIs()),
		ui.KV("fine decomposition blocks", len(d.Blocks)),
		ui.KV("singletons (traceable key images)", d.Singletons()),
	))
	fmt.Println(ui.Title("closed set size histogram"), ui.SizeHistogramLine(d.SizeHistogram()))

	if err := d.WriteSizes(sizesFile); err != nil {
		return err
	}
	if err := d.WriteFine(fineFile); err != nil {
		return err
	}

	d.Apply(g)
	return g.WriteRings(postRings)
}
