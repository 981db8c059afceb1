package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/emoji-ontology/internal/core/domain"
)

// Progress view colours.
var (
	progressTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED"))
	progressMutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))
)

// progressMsg carries one update from the batch.
type progressMsg domain.Progress

// progressDoneMsg signals that the progress channel has closed.
type progressDoneMsg struct{}

// progressModel renders a progress bar fed by a batch's progress channel.
type progressModel struct {
	title    string
	updates  <-chan domain.Progress
	bar      progress.Model
	current  domain.Progress
	finished bool
}

func newProgressModel(title string, updates <-chan domain.Progress) progressModel {
	return progressModel{
		title:   title,
		updates: updates,
		bar:     progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
	}
}

// waitForProgress reads the next update as a message.
func waitForProgress(updates <-chan domain.Progress) tea.Cmd {
	return func() tea.Msg {
		p, ok := <-updates
		if !ok {
			return progressDoneMsg{}
		}
		return progressMsg(p)
	}
}

func (m progressModel) Init() tea.Cmd {
	return waitForProgress(m.updates)
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case progressMsg:
		m.current = domain.Progress(msg)
		return m, waitForProgress(m.updates)
	case progressDoneMsg:
		m.finished = true
		return m, tea.Quit
	case tea.KeyMsg:
		// The batch keeps running; only the view is closed.
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.bar.Width = min(40, max(10, msg.Width-len(m.title)-20))
	}
	return m, nil
}

func (m progressModel) View() string {
	var b strings.Builder
	b.WriteString(progressTitleStyle.Render(m.title))
	b.WriteString(" ")
	b.WriteString(m.bar.ViewAs(m.current.Fraction()))
	b.WriteString(" ")
	b.WriteString(progressMutedStyle.Render(fmt.Sprintf("%d/%d", m.current.Current, m.current.Total)))
	b.WriteString("\n")
	return b.String()
}

// runProgressView shows the interactive bar until updates is closed.
func runProgressView(out io.Writer, title string, updates <-chan domain.Progress) error {
	program := tea.NewProgram(newProgressModel(title, updates), tea.WithOutput(out))
	_, err := program.Run()
	return err
}

// printProgress writes a line each time the batch crosses another tenth.
func printProgress(out io.Writer, title string, updates <-chan domain.Progress) {
	lastTenth := -1
	for p := range updates {
		tenth := int(p.Fraction() * 10)
		if tenth == lastTenth && p.Current != p.Total {
			continue
		}
		lastTenth = tenth
		fmt.Fprintf(out, "%s %d/%d\n", title, p.Current, p.Total)
	}
}
