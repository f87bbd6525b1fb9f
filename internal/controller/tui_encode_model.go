package controller

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/nwave-fx/fxpipe/internal/model"
)

const recentFrames = 5

// encodeModel shows conversion progress of the review movie encoder.
type encodeModel struct {
	width       int
	progressBar progress.Model
	seq         m.ImageSequence
	threads     int
	done        int
	total       int
	recent      []string
	started     bool
	finished    bool
	movie       m.Path
	err         error
}

func newEncodeModel() encodeModel {
	return encodeModel{
		progressBar: progress.New(
			progress.WithDefaultGradient(),
			progress.WithWidth(40),
			progress.WithoutPercentage(),
		),
	}
}

func (em encodeModel) Init() tea.Cmd {
	return nil
}

func (em encodeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		em.width = msg.Width
		em.progressBar.Width = max(10, min(60, msg.Width-4))

	case tea.KeyMsg:
		if msg.String() == "q" || msg.String() == "ctrl+c" {
			return em, tea.Quit
		}

	case encodeStartMsg:
		em.started = true
		em.seq = msg.seq
		em.threads = msg.threads

	case encodeProgressMsg:
		em.started = true
		em.done = msg.progress.Done
		em.total = msg.progress.Total

		em.recent = append(em.recent, filepath.Base(string(msg.progress.Frame)))
		if len(em.recent) > recentFrames {
			em.recent = em.recent[len(em.recent)-recentFrames:]
		}

	case encodeDoneMsg:
		em.finished = true
		em.movie = msg.movie
		em.err = msg.err

		return em, tea.Quit
	}

	return em, nil
}

func (em encodeModel) percent() float64 {
	if em.total == 0 {
		return 0
	}

	return float64(em.done) / float64(em.total)
}

func (em encodeModel) View() string {
	if !em.started && !em.finished {
		return "Reading sequence…\n"
	}

	accent := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	summary := summaryStyle.Render(fmt.Sprintf(
		"Shot: %s  •  Content: %s  •  Frames: %s / %s  •  Threads: %s",
		accent.Render(em.seq.SeqShot),
		accent.Render(em.seq.Title),
		accent.Render(fmt.Sprintf("%d", em.done)),
		accent.Render(fmt.Sprintf("%d", em.total)),
		accent.Render(fmt.Sprintf("%d", em.threads)),
	))

	parts := []string{
		titleStyle.Render("Review Movie " + em.seq.Name),
		summary,
		lipgloss.NewStyle().Padding(0, 2).Render(em.progressBar.ViewAs(em.percent())),
	}

	for _, frame := range em.recent {
		parts = append(parts, footerStyle.Render(frame+" converted"))
	}

	switch {
	case em.finished && em.err != nil:
		parts = append(parts, gateClosedStyle.Padding(1, 2).Render("encode failed: "+em.err.Error()))
	case em.finished:
		parts = append(parts, gateOpenStyle.Padding(1, 2).Render("movie written to "+string(em.movie)))
	default:
		parts = append(parts, footerStyle.Render("Press q to quit"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...) + "\n"
}
