package tui

import (
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ---------- messages sent from the session goroutine via program.Send() ----------

type readInputMsg struct{ prompt string }

type inputResult struct {
	text string
	err  error
}

type headingMsg struct{ text string }
type lineMsg struct{ text string }
type noticeMsg struct{ text string }
type tableMsg struct{ text string }
type ruleMsg struct{}
type statusMsg struct{ text string }
type sessionDoneMsg struct{ err error }

// ---------- styles ----------

var (
	statusBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("235")).
			Foreground(lipgloss.Color("252")).
			Padding(0, 1)

	headingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)

	noticeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("3")).
			Italic(true)

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true)

	answerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("2"))

	ruleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))
)

const statusBarHeight = 1
const inputHeight = 1

// TUIConfig carries static information shown by the TUI.
type TUIConfig struct {
	Version string
}

// Model is the bubbletea model: a scrolling output viewport, a status bar
// and a single-line answer input.
type Model struct {
	viewport  viewport.Model
	textinput textinput.Model
	width     int
	height    int

	lines     []string // accumulated output
	inputMode bool     // waiting for an answer
	prompt    string   // question currently being answered

	inputCh chan inputResult // send answers back to ReadInput()

	status   string
	version  string
	quitting bool
}

// NewModel creates the initial bubbletea model.
func NewModel(inputCh chan inputResult, cfg TUIConfig) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 256

	vp := viewport.New(80, 24)

	return Model{
		viewport:  vp,
		textinput: ti,
		inputCh:   inputCh,
		version:   cfg.Version,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		vpHeight := m.height - statusBarHeight - inputHeight
		if vpHeight < 1 {
			vpHeight = 1
		}
		m.viewport.Width = m.width
		m.viewport.Height = vpHeight
		m.textinput.Width = m.width - 4 // account for prompt

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "ctrl+d":
			if m.inputMode {
				m.inputCh <- inputResult{err: io.EOF}
				m.inputMode = false
				m.textinput.Blur()
			}
			m.quitting = true
			return m, tea.Quit
		case "enter":
			if m.inputMode {
				text := strings.TrimSpace(m.textinput.Value())
				m.textinput.SetValue("")
				m.lines = append(m.lines, promptStyle.Render(m.prompt)+" "+answerStyle.Render(text))
				m.inputCh <- inputResult{text: text}
				m.inputMode = false
				m.textinput.Blur()
			}
			m.refresh()
			return m, nil
		}

		if m.inputMode {
			var cmd tea.Cmd
			m.textinput, cmd = m.textinput.Update(msg)
			cmds = append(cmds, cmd)
			return m, tea.Batch(cmds...)
		}

	// ---------- custom messages from the session goroutine ----------

	case readInputMsg:
		m.prompt = msg.prompt
		m.inputMode = true
		m.textinput.Focus()
		cmds = append(cmds, textinput.Blink)

	case headingMsg:
		m.lines = append(m.lines, "", headingStyle.Render(msg.text), "")

	case lineMsg:
		m.lines = append(m.lines, msg.text)

	case noticeMsg:
		m.lines = append(m.lines, noticeStyle.Render(msg.text))

	case tableMsg:
		m.lines = append(m.lines, strings.TrimRight(msg.text, "\n"))

	case ruleMsg:
		m.lines = append(m.lines, ruleStyle.Render(strings.Repeat("-", RuleWidth)))

	case statusMsg:
		m.status = msg.text

	case sessionDoneMsg:
		m.quitting = true
		return m, tea.Quit
	}

	m.refresh()

	var vpCmd tea.Cmd
	m.viewport, vpCmd = m.viewport.Update(msg)
	cmds = append(cmds, vpCmd)

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	status := " bikeshare"
	if m.version != "" {
		status += " " + m.version
	}
	if m.status != "" {
		status += " | " + m.status
	}
	bar := statusBarStyle.Width(m.width).Render(status)

	var input string
	if m.inputMode {
		input = m.textinput.View()
	}

	return m.viewport.View() + "\n" + bar + "\n" + input
}

// refresh re-renders the viewport, keeping the pending question visible.
func (m *Model) refresh() {
	content := strings.Join(m.lines, "\n")
	if m.inputMode {
		content += "\n" + promptStyle.Render(m.prompt)
	}
	m.viewport.SetContent(content)
	m.viewport.GotoBottom()
}
