package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/strata/internal/app"
)

func (c *CLI) newFlattenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "flatten",
		Short: "Print every prim with its inherited state resolved",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			digest, _ := cmd.Flags().GetBool("digest")
			return c.app.Flatten(cmd.Context(), app.FlattenOptions{
				Options: readOptions(cmd),
				Digest:  digest,
			})
		},
	}
	addWalkFlags(cmd)
	cmd.Flags().Bool("digest", false, "Print a hash of the flattened scene instead of the scene")
	return cmd
}
