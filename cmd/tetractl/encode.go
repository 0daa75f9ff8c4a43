package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tetrakit/tetra"
)

func newEncodeCmd() *cobra.Command {
	var x, y, z int64
	var level, typ int

	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Encode an (x,y,z,level,type) tet into its TM-key",
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := tetra.NewValidated(x, y, z, level, typ)
			if err != nil {
				return err
			}
			k := t.ToKey()
			fmt.Fprintf(cmd.OutOrStdout(), "%s  ->  %s\n", t, k)
			return nil
		},
	}

	cmd.Flags().Int64Var(&x, "x", 0, "anchor x coordinate")
	cmd.Flags().Int64Var(&y, "y", 0, "anchor y coordinate")
	cmd.Flags().Int64Var(&z, "z", 0, "anchor z coordinate")
	cmd.Flags().IntVar(&level, "level", 0, "refinement level")
	cmd.Flags().IntVar(&typ, "type", 0, "tet type 0-5")
	return cmd
}
