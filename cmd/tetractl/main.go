// Command tetractl exercises the tetra codec and volume query engine
// from the shell: encoding and decoding TM-keys, and enumerating the
// key ranges a box of space maps to.
package main

import (
	"log"

	"github.com/spf13/cobra"
)

func main() {
	log.SetFlags(0)
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "tetractl",
		Short:         "Inspect tetrahedral space-filling-curve keys",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newEncodeCmd())
	root.AddCommand(newDecodeCmd())
	root.AddCommand(newRangeCmd())
	return root
}
