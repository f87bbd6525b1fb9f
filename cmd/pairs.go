package cmd

import (
	"github.com/spf13/cobra"

	"github.com/nwave-fx/fxpipe/internal/controller"
)

// pairsCmd represents the pairs command.
var pairsCmd = newPairsCmd()

func newPairsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pairs",
		Short: "Show detected source/destination pairs of a scene",
		Long: `Load the source and destination meshes saved in a scene snapshot, detect
pairs with the chosen mode and print both lists with their pair counts.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			conn, err := openConnector(cmd.Context(), cmd)
			if err != nil {
				return err
			}

			if err := ui.Start(controller.WithPairsMode()); err != nil {
				return err
			}
			defer ui.Close()

			return ui.DisplayPairs(controller.NewPairsView(conn.Session()))
		},
	}
	addPairingFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(pairsCmd)
}
