package cli

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ka2n/mado/view"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			PaddingLeft(2)

	pendingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// fetchModel is the interactive view around one controller. The call is
// triggered when the program starts (mount) and again on "r" (user action);
// state changes arrive as messages through the updates channel.
type fetchModel struct {
	title    string
	trigger  func()
	updates  <-chan stateMsg
	current  stateMsg
	spinner  spinner.Model
	viewport viewport.Model
	ready    bool
}

// NewFetchModel creates the interactive view model
func newFetchModel(title string, trigger func(), updates <-chan stateMsg) *fetchModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = pendingStyle
	return &fetchModel{
		title:   title,
		trigger: trigger,
		updates: updates,
		spinner: sp,
	}
}

// mount issues the call; the outcome arrives via waitUpdate
func (m *fetchModel) mount() tea.Cmd {
	return func() tea.Msg {
		m.trigger()
		return nil
	}
}

// waitUpdate blocks on the next state change
func (m *fetchModel) waitUpdate() tea.Cmd {
	return func() tea.Msg {
		return <-m.updates
	}
}

// Init initializes the model and triggers the mount-time call
func (m *fetchModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.mount(), m.waitUpdate())
}

// Update handles user input and state-change messages
func (m *fetchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		cmd  tea.Cmd
		cmds []tea.Cmd
	)

	switch msg := msg.(type) {
	case stateMsg:
		m.current = msg
		if m.ready {
			m.viewport.SetContent(m.current.content)
		}
		return m, m.waitUpdate()

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "r":
			return m, m.mount()
		case "j", "down":
			m.viewport.ScrollDown(1)
		case "k", "up":
			m.viewport.ScrollUp(1)
		case "g", "home":
			m.viewport.GotoTop()
		case "G", "end":
			m.viewport.GotoBottom()
		}

	case tea.WindowSizeMsg:
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-4)
			m.viewport.SetContent(m.current.content)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 4
		}

	case spinner.TickMsg:
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// View renders the current state of the model
func (m *fetchModel) View() string {
	if !m.ready {
		return "\nInitializing..."
	}

	header := titleStyle.Render(m.title)
	if m.current.status == view.StatusPending {
		header += "  " + m.spinner.View() + pendingStyle.Render("fetching...")
	}

	var errLine string
	if m.current.status == view.StatusFailed {
		errLine = errorStyle.Render("Error: "+m.current.errMsg) + "\n"
	}

	help := helpStyle.Render("r refresh • ↑/k up • ↓/j down • q quit")

	return header + "\n" + errLine + m.viewport.View() + "\n" + help
}
