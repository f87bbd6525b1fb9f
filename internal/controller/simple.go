package controller

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/nwave-fx/fxpipe/internal/domain"
	m "github.com/nwave-fx/fxpipe/internal/model"
)

// SimpleUI implements UI with plain text tables on the command output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(_ ...StartOption) error {
	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {}

// Wait returns immediately, nothing runs in the background.
func (s *SimpleUI) Wait() {}

// DisplayPairs prints one table per role.
func (s *SimpleUI) DisplayPairs(view PairsView) error {
	s.printf("%s\n", configSummary(view.Config))

	for _, role := range m.Roles {
		s.printf("\n%s", renderRowTable(role, view.Rows(role)))
	}

	s.printf("\n%s\n", connectLabel(view.CanConnect))

	return nil
}

func renderRowTable(role m.Role, rows []m.DisplayRow) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{role.String(), "Pairs", "State", "Override"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER,
	})

	paired := 0

	for _, row := range rows {
		table.Append([]string{
			row.DisplayName,
			fmt.Sprintf("%d", row.ConnectionCount),
			stateLabel(row.State()),
			overrideMark(row),
		})

		if row.ConnectionCount > 0 {
			paired++
		}
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total %d", len(rows)),
		fmt.Sprintf("%d", paired),
		"",
		"",
	})

	table.Render()

	return tableBuffer.String()
}

// DisplayConnectResults prints one row per realized pair followed by the
// warnings collected during the batch.
func (s *SimpleUI) DisplayConnectResults(results []m.ConnectResult, err error) error {
	if len(results) > 0 {
		var tableBuffer bytes.Buffer

		table := tablewriter.NewWriter(&tableBuffer)
		table.SetHeader([]string{"Source", "Destination", "Mode", "Status"})
		table.SetBorder(false)
		table.SetCenterSeparator("")

		for _, r := range results {
			table.Append([]string{
				r.Realization.Source.DisplayName,
				r.Realization.Destination.DisplayName,
				r.Realization.Mode.String(),
				string(r.Status),
			})
		}

		table.SetFooter([]string{
			fmt.Sprintf("Applied %d", countStatus(results, m.StatusApplied)),
			fmt.Sprintf("Skipped %d", countStatus(results, m.StatusSkipped)),
			fmt.Sprintf("Conflicts %d", countStatus(results, m.StatusConflict)),
			fmt.Sprintf("Errors %d", countStatus(results, m.StatusError)),
		})

		table.Render()
		s.printf("\n%s", tableBuffer.String())
	}

	for _, r := range results {
		if r.Failed() {
			s.errorf("warning: %s -> %s: %s\n",
				r.Realization.Source.DisplayName, r.Realization.Destination.DisplayName, r.Message)
		}
	}

	if err != nil {
		s.errorf("connect error: %v\n", err)

		return err
	}

	return nil
}

// DisplayPlan reports where a plan was written.
func (s *SimpleUI) DisplayPlan(plan m.Plan, path m.Path) error {
	s.printf("plan %s: %d pairs written to %s\n", plan.ID, len(plan.Pairs), path)

	return nil
}

// DisplayEncodeStart announces a conversion run.
func (s *SimpleUI) DisplayEncodeStart(seq m.ImageSequence, threads int) {
	s.printf("Encoding %s (shot %s, content %s) with %d worker(s)\n", seq.Name, seq.SeqShot, seq.Title, threads)
}

// DisplayEncodeProgress prints one line per converted frame.
func (s *SimpleUI) DisplayEncodeProgress(progress m.EncodeProgress) {
	s.printf("[%d/%d] %s converted\n", progress.Done, progress.Total, progress.Frame)
}

// DisplayEncodeDone prints the movie path or the failure.
func (s *SimpleUI) DisplayEncodeDone(movie m.Path, err error) {
	if err != nil {
		s.errorf("encode error: %v\n", err)

		return
	}

	s.printf("Movie written to %s\n", movie)
}

// PromptTitle reads the content title from the command input.
func (s *SimpleUI) PromptTitle() (string, error) {
	s.printf("Contents : ")

	return readLine(s.cmd.InOrStdin())
}

// EditPairs is not available without a terminal.
func (s *SimpleUI) EditPairs(_ context.Context, _ domain.Connector) error {
	return ErrInteractiveOnly
}

func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", fmt.Errorf("read input: %w", err)
	}

	return strings.TrimSpace(line), nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func (s *SimpleUI) errorf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.ErrOrStderr(), format, args...)
}
