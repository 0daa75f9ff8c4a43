package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tetrakit/tetra"
)

func newDecodeCmd() *cobra.Command {
	var level int
	var low, high uint64

	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Decode a TM-key (level, low, high) back into a tet",
		RunE: func(cmd *cobra.Command, args []string) error {
			k := tetra.Extended(level, low, high)
			t := tetra.FromKey(k)
			fmt.Fprintf(cmd.OutOrStdout(), "%s  ->  %s\n", k, t)
			return nil
		},
	}

	cmd.Flags().IntVar(&level, "level", 0, "key level")
	cmd.Flags().Uint64Var(&low, "low", 0, "low 64 bits")
	cmd.Flags().Uint64Var(&high, "high", 0, "high 64 bits")
	return cmd
}
