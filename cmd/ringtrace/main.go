// Command ringtrace runs deanonymization attacks against CryptoNote
// ring-signature transaction graphs: the zero-mixin cascade, the
// closed-set clustering algorithm, and the Dulmage-Mendelsohn fine
// decomposition, plus the statistics reports comparing their results.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ringtrace/internal/logging"
)

func main() {
	var debug bool

	if err := logging.Configure(logging.LevelWarn); err != nil {
		_, _ = os.Stderr.WriteString("configure logger: " + err.Error() + "\n")
		os.Exit(1)
	}

	root := &cobra.Command{
		Use:           "ringtrace",
		Short:         "Deanonymization attacks on CryptoNote transaction graphs",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := logging.LevelWarn
			if debug {
				level = logging.LevelDebug
			}
			return logging.Configure(level)
		},
	}
	root.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	root.AddCommand(cascadeCmd())
	root.AddCommand(clusterCmd())
	root.AddCommand(dmdecCmd())
	root.AddCommand(statsClaCmd())
	root.AddCommand(statsDmCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
