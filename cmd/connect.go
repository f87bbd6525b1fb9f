package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/nwave-fx/fxpipe/internal/controller"
	m "github.com/nwave-fx/fxpipe/internal/model"
)

// connectCmd represents the connect command.
var connectCmd = newConnectCmd()

var planFlag string
var dryRunFlag bool
var reportFlag string

func newConnectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "connect",
		Short: "Connect every detected pair of a scene",
		Long: `Detect pairs like the pairs command, then connect each source to its
destinations with the chosen connection mode. Pairs blocked by referenced or
locked attributes are reported and skipped; the others are still connected.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			conn, err := openConnector(cmd.Context(), cmd)
			if err != nil {
				return err
			}

			if planFlag != "" {
				plan, err := conn.ExportPlan(m.Path(planFlag), m.Path(sceneFlag))
				if err != nil {
					return err
				}

				if err := ui.DisplayPlan(plan, m.Path(planFlag)); err != nil {
					return err
				}
			}

			if dryRunFlag {
				return ui.DisplayPairs(controller.NewPairsView(conn.Session()))
			}

			results, err := conn.Connect(cmd.Context())

			if reportFlag != "" && len(results) > 0 {
				report := m.NewConnectReport(m.Path(sceneFlag), time.Now().UTC(), results)
				if saveErr := reportStore.SaveReport(m.Path(reportFlag), report); saveErr != nil {
					logger.Warn("connect report not written", "path", reportFlag, "error", saveErr)
				}
			}

			return ui.DisplayConnectResults(results, err)
		},
	}
	addPairingFlags(cmd)
	addConnectionFlags(cmd)
	cmd.Flags().StringVar(&planFlag, "plan", "", "write the resolved pairs to this YAML or JSON file")
	cmd.Flags().BoolVar(&dryRunFlag, "dry-run", false, "do not touch the scene")
	cmd.Flags().StringVar(&reportFlag, "report", "", "write the outcome of every pair to this YAML or JSON file")

	return cmd
}

func init() {
	rootCmd.AddCommand(connectCmd)
}
