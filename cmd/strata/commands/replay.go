package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/strata/internal/app"
)

func (c *CLI) newReplayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replay",
		Short: "Apply the scene file edits and print the resulting notifications and scene",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			verify, _ := cmd.Flags().GetBool("verify")
			return c.app.Replay(cmd.Context(), app.ReplayOptions{
				Options: readOptions(cmd),
				Verify:  verify,
			})
		},
	}
	addWalkFlags(cmd)
	cmd.Flags().Bool("verify", false, "Check the incremental result against a fresh flatten")
	return cmd
}
