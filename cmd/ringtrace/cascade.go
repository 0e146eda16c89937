package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ringtrace/cascade"
	"github.com/katalvlaran/ringtrace/cmd/ringtrace/ui"
	"github.com/katalvlaran/ringtrace/txgraph"
)

func cascadeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cascade <edge_file> <out_rings> [iterations]",
		Short: "Run the zero-mixin chain reaction attack",
		Long: `Run the Cascade Attack (zero-mixin chain reaction) on a CryptoNote
transaction graph. Each line of the edge file holds a key image index
and a public key index, non-negative decimal integers separated by a
space. The reduced rings are written to the output ring file. The
optional iteration count defaults to 1.`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			iterations := 1
			if len(args) == 3 {
				n, err := strconv.ParseUint(args[2], 10, 16)
				if err != nil {
					return fmt.Errorf("invalid iteration count %q: %w", args[2], err)
				}
				iterations = int(n)
			}
			return runCascade(args[0], args[1], iterations)
		},
	}
}

func runCascade(edgeFile, outRings string, iterations int) error {
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
		ui.KV("zero-mixin rings before attack", g.Traceable()),
	))

	opts := cascade.DefaultOptions()
	opts.MaxIterations = iterations
	iterStart := time.Now()
	opts.OnIteration = func(iter, traceable int) {
		fmt.Printf("zero-mixin rings after iteration %d = %d (%v)\n",
			iter, traceable, time.Since(iterStart))
		iterStart = time.Now()
	}

	res, err := cascade.Run(g, opts)
	if err != nil {
		return err
	}
	if res.Iterations < iterations {
		fmt.Println(ui.Muted("traceable count unchanged, cascade converged"))
	}
	fmt.Print(ui.KeyValues(
		ui.KV("iterations run", res.Iterations),
		ui.KV("traced key images", res.Traced.Count()),
		ui.KV("traceable rings", res.Traceable),
	))

	return g.WriteRings(outRings)
}
