package cli

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ovrica/sget/internal/media"
	"github.com/ovrica/sget/internal/platform"
	"github.com/ovrica/sget/internal/upstream"
)

var (
	fetchInfoStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	fetchDoneStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	fetchErrStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// fetchState holds fetch state shared with the background goroutine
type fetchState struct {
	mu     sync.RWMutex
	done   bool
	err    error
	result *media.Result
}

func (s *fetchState) setDone(result *media.Result) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.done = true
	s.result = result
}

func (s *fetchState) setError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
	s.done = true
}

func (s *fetchState) get() (bool, error, *media.Result) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.done, s.err, s.result
}

type fetchTickMsg time.Time

type fetchModel struct {
	spinner spinner.Model
	url     string
	state   *fetchState
}

func newFetchModel(url string, state *fetchState) fetchModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return fetchModel{
		spinner: s,
		url:     url,
		state:   state,
	}
}

func fetchTickCmd() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return fetchTickMsg(t)
	})
}

func (m fetchModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, fetchTickCmd())
}

func (m fetchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case fetchTickMsg:
		done, _, _ := m.state.get()
		if done {
			return m, tea.Quit
		}
		return m, fetchTickCmd()
	}

	return m, nil
}

func (m fetchModel) View() string {
	done, err, result := m.state.get()

	if err != nil {
		return fmt.Sprintf("\n  %s fetch failed: %v\n\n",
			fetchErrStyle.Render("✗"),
			err,
		)
	}

	if done && result != nil {
		return fmt.Sprintf("\n  %s %s  |  %d download link(s)\n\n",
			fetchDoneStyle.Render("✓"),
			fetchInfoStyle.Render(result.Title),
			len(result.Downloads),
		)
	}

	return fmt.Sprintf("\n  %s fetching: %s\n\n",
		m.spinner.View(),
		fetchInfoStyle.Render(m.url),
	)
}

// runFetchWithSpinner runs the fetch with a spinner TUI
func runFetchWithSpinner(ctx context.Context, client *upstream.Client, p platform.Platform, rawURL string, fallback bool) (*media.Result, error) {
	state := &fetchState{}

	// Fetch in background while the spinner runs
	go func() {
		result, err := resolve(ctx, client, p, rawURL, fallback)
		if err != nil {
			state.setError(err)
		} else {
			state.setDone(result)
		}
	}()

	model := newFetchModel(rawURL, state)
	prog := tea.NewProgram(model)
	if _, err := prog.Run(); err != nil {
		return nil, err
	}

	done, fetchErr, result := state.get()
	if fetchErr != nil {
		return nil, fetchErr
	}
	if !done {
		return nil, fmt.Errorf("fetch cancelled")
	}

	return result, nil
}
