package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tetrakit/tetra"
)

func newRangeCmd() *cobra.Command {
	var minX, minY, minZ, maxX, maxY, maxZ float64
	var intersecting bool

	cmd := &cobra.Command{
		Use:   "range",
		Short: "Enumerate the merged TM-key ranges a box of space maps to",
		RunE: func(cmd *cobra.Command, args []string) error {
			bounds := tetra.VolumeBounds{
				MinX: minX, MinY: minY, MinZ: minZ,
				MaxX: maxX, MaxY: maxY, MaxZ: maxZ,
			}
			ranges := tetra.EnumerateRanges(bounds, intersecting)
			out := cmd.OutOrStdout()
			for _, r := range ranges {
				fmt.Fprintln(out, r)
			}
			fmt.Fprintf(out, "%d range(s)\n", len(ranges))
			return nil
		},
	}

	cmd.Flags().Float64Var(&minX, "min-x", 0, "box min x")
	cmd.Flags().Float64Var(&minY, "min-y", 0, "box min y")
	cmd.Flags().Float64Var(&minZ, "min-z", 0, "box min z")
	cmd.Flags().Float64Var(&maxX, "max-x", 0, "box max x")
	cmd.Flags().Float64Var(&maxY, "max-y", 0, "box max y")
	cmd.Flags().Float64Var(&maxZ, "max-z", 0, "box max z")
	cmd.Flags().BoolVar(&intersecting, "intersecting", false, "include tets that merely intersect the box, not just ones fully inside it")
	return cmd
}
