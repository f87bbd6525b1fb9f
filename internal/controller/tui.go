package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nwave-fx/fxpipe/internal/domain"
	m "github.com/nwave-fx/fxpipe/internal/model"
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output io.Writer
	input  io.Reader

	mu      sync.Mutex
	program *tea.Program
	started bool
	done    chan struct{}
	runErr  error
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output, input: os.Stdin}
}

// Start runs the progress program for encode mode. Pair listings are
// rendered synchronously and need no program.
func (t *TUI) Start(options ...StartOption) error {
	cfg := &StartConfig{}
	for _, opt := range options {
		opt(cfg)
	}

	if cfg.mode == ModeEncode {
		return t.startWithModel(newEncodeModel())
	}

	return nil
}

func (t *TUI) startWithModel(model tea.Model) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.started {
		return nil
	}

	t.program = tea.NewProgram(model, tea.WithOutput(t.output), tea.WithInput(t.input))
	t.started = true
	t.done = make(chan struct{})

	go func() {
		_, err := t.program.Run()

		t.mu.Lock()
		t.runErr = err
		t.mu.Unlock()

		close(t.done)
	}()

	return nil
}

func (t *TUI) ensureStarted() {
	if t.started {
		return
	}

	_ = t.startWithModel(newEncodeModel())
}

func (t *TUI) send(msg tea.Msg) {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program == nil {
		return
	}

	program.Send(msg)
}

// Close stops the running program and waits for it.
func (t *TUI) Close() {
	t.mu.Lock()
	program, done := t.program, t.done
	t.mu.Unlock()

	if program == nil {
		return
	}

	program.Quit()
	<-done
}

// Wait blocks until the user closes the program.
func (t *TUI) Wait() {
	t.mu.Lock()
	done := t.done
	t.mu.Unlock()

	if done == nil {
		return
	}

	<-done
}

// DisplayPairs renders both role lists side by side.
func (t *TUI) DisplayPairs(view PairsView) error {
	_, err := fmt.Fprintln(t.output, renderPairsView(view, 0))

	return err
}

// DisplayConnectResults renders a summary of the connect batch.
func (t *TUI) DisplayConnectResults(results []m.ConnectResult, err error) error {
	_, _ = fmt.Fprintln(t.output, renderConnectSummary(results))

	warn := lipgloss.NewStyle().Foreground(lipgloss.Color("3"))

	for _, r := range results {
		if r.Failed() {
			_, _ = fmt.Fprintln(t.output, warn.Render(fmt.Sprintf("warning: %s -> %s: %s",
				r.Realization.Source.DisplayName, r.Realization.Destination.DisplayName, r.Message)))
		}
	}

	if err != nil {
		_, _ = fmt.Fprintf(t.output, "connect error: %v\n", err)

		return err
	}

	return nil
}

// DisplayPlan reports where a plan was written.
func (t *TUI) DisplayPlan(plan m.Plan, path m.Path) error {
	accent := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	_, err := fmt.Fprintf(t.output, "plan %s: %s pairs written to %s\n",
		plan.ID, accent.Render(fmt.Sprintf("%d", len(plan.Pairs))), path)

	return err
}

// DisplayEncodeStart announces a conversion run.
func (t *TUI) DisplayEncodeStart(seq m.ImageSequence, threads int) {
	t.ensureStarted()
	t.send(encodeStartMsg{seq: seq, threads: threads})
}

// DisplayEncodeProgress advances the progress bar.
func (t *TUI) DisplayEncodeProgress(progress m.EncodeProgress) {
	t.send(encodeProgressMsg{progress: progress})
}

// DisplayEncodeDone shows the final state and lets the program exit.
func (t *TUI) DisplayEncodeDone(movie m.Path, err error) {
	t.send(encodeDoneMsg{movie: movie, err: err})
}

// PromptTitle reads the content title before any program takes the terminal.
func (t *TUI) PromptTitle() (string, error) {
	_, _ = fmt.Fprint(t.output, lipgloss.NewStyle().Bold(true).Render("Contents : "))

	return readLine(t.input)
}

// EditPairs runs the interactive pair editor until the user quits.
func (t *TUI) EditPairs(ctx context.Context, conn domain.Connector) error {
	if err := t.startWithModel(newPairsModel(ctx, conn)); err != nil {
		return err
	}

	t.Wait()

	t.mu.Lock()
	defer t.mu.Unlock()

	return t.runErr
}
