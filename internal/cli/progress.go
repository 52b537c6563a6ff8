package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/alexanderramin/brdagent/internal/cli/formatter"
	"github.com/alexanderramin/brdagent/internal/service"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// processFunc runs one submission. It must honor ctx cancellation.
type processFunc func(ctx context.Context) (*service.ProcessResult, error)

type processDoneMsg struct {
	result *service.ProcessResult
	err    error
}

// progressModel shows a spinner while a submission is in flight. Ctrl+C or
// Esc cancels the request; the model still waits for the cancelled call to
// return so the caller always gets an outcome.
type progressModel struct {
	spinner  spinner.Model
	endpoint string
	run      processFunc

	ctx    context.Context
	cancel context.CancelFunc

	cancelling bool
	done       bool
	result     *service.ProcessResult
	err        error
}

func newProgressModel(ctx context.Context, endpoint string, run processFunc) progressModel {
	ctx, cancel := context.WithCancel(ctx)
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = formatter.StylePurple
	return progressModel{
		spinner:  s,
		endpoint: endpoint,
		run:      run,
		ctx:      ctx,
		cancel:   cancel,
	}
}

func (m progressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.process)
}

func (m progressModel) process() tea.Msg {
	res, err := m.run(m.ctx)
	return processDoneMsg{result: res, err: err}
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.cancelling = true
			m.cancel()
		}
		return m, nil

	case processDoneMsg:
		m.done = true
		m.result = msg.result
		m.err = msg.err
		m.cancel()
		return m, tea.Quit

	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m progressModel) View() string {
	if m.done {
		return ""
	}
	if m.cancelling {
		return fmt.Sprintf("  %s %s\n", m.spinner.View(), formatter.Dim("Cancelling..."))
	}
	return fmt.Sprintf("  %s %s\n", m.spinner.View(),
		formatter.Dim("Processing BRD through the orchestrator at "+m.endpoint+"..."))
}

// runWithProgress runs fn under a spinner drawn on out.
func runWithProgress(ctx context.Context, out io.Writer, endpoint string, fn processFunc) (*service.ProcessResult, error) {
	m := newProgressModel(ctx, endpoint, fn)
	final, err := tea.NewProgram(m, tea.WithOutput(out), tea.WithContext(ctx)).Run()
	if err != nil {
		m.cancel()
		return nil, fmt.Errorf("progress display: %w", err)
	}
	pm := final.(progressModel)
	return pm.result, pm.err
}
