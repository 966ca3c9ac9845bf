package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

// TuiIO implements IO by sending messages to a bubbletea Program.
// All methods are safe to call from the session goroutine.
type TuiIO struct {
	program *tea.Program
	inputCh chan inputResult
	done    chan struct{} // closed when the program exits
}

var _ IO = (*TuiIO)(nil)

func (t *TuiIO) ReadInput(prompt string) (string, error) {
	t.program.Send(readInputMsg{prompt: prompt})

	// Block until the user submits or the TUI exits.
	select {
	case res := <-t.inputCh:
		if res.err != nil {
			return "", io.EOF
		}
		return res.text, nil
	case <-t.done:
		return "", io.EOF
	}
}

func (t *TuiIO) Heading(text string) {
	t.program.Send(headingMsg{text: text})
}

func (t *TuiIO) Println(text string) {
	t.program.Send(lineMsg{text: text})
}

func (t *TuiIO) Notice(text string) {
	t.program.Send(noticeMsg{text: text})
}

func (t *TuiIO) Table(header []string, rows [][]string) {
	t.program.Send(tableMsg{text: FormatTable(header, rows)})
}

func (t *TuiIO) Rule() {
	t.program.Send(ruleMsg{})
}

func (t *TuiIO) SetStatus(text string) {
	t.program.Send(statusMsg{text: text})
}
