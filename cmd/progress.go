package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/bnema/workiq-automation/internal/application"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type progressMsg struct {
	done  int
	total int
}

type workDoneMsg struct {
	err error
}

// progressModel shows a spinner with a "k/N <unit>" counter fed by the
// application's progress callbacks.
type progressModel struct {
	spinner  spinner.Model
	label    string
	unit     string
	done     int
	total    int
	work     tea.Cmd
	err      error
	finished bool
}

func newProgressModel(label, unit string, work tea.Cmd) progressModel {
	return progressModel{
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
		),
		label: label,
		unit:  unit,
		work:  work,
	}
}

func (m progressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.work)
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case progressMsg:
		// Batch workers finish out of order; never move the counter backwards.
		if msg.total != m.total || msg.done > m.done {
			m.done, m.total = msg.done, msg.total
		}
		return m, nil
	case workDoneMsg:
		m.finished = true
		m.err = msg.err
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m progressModel) View() string {
	if m.finished {
		return ""
	}
	if m.total == 0 {
		return fmt.Sprintf("%s %s", m.spinner.View(), m.label)
	}

	return fmt.Sprintf("%s %s %d/%d %s", m.spinner.View(), m.label, m.done, m.total, m.unit)
}

// runWithProgress runs work behind a spinner on output. work reports its
// progress through the callback it is handed.
func runWithProgress(ctx context.Context, output io.Writer, label, unit string, work func(context.Context, application.ProgressFunc) error) error {
	var p *tea.Program
	progress := func(done, total int) {
		p.Send(progressMsg{done: done, total: total})
	}
	workCmd := func() tea.Msg {
		return workDoneMsg{err: work(ctx, progress)}
	}

	p = tea.NewProgram(
		newProgressModel(label, unit, workCmd),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(progressModel)
	if !ok {
		return fmt.Errorf("unexpected final progress model type %T", finalModel)
	}

	return result.err
}
