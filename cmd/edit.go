package cmd

import (
	"github.com/spf13/cobra"
)

// editCmd represents the edit command.
var editCmd = newEditCmd()

func newEditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit pairs interactively",
		Long: `Open the interactive pair editor on a scene snapshot. Pairs can be added
or removed by hand, modes changed and the result connected without leaving
the editor.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			conn, err := openConnector(cmd.Context(), cmd)
			if err != nil {
				return err
			}

			return ui.EditPairs(cmd.Context(), conn)
		},
	}
	addPairingFlags(cmd)
	addConnectionFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(editCmd)
}
