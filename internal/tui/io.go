// Package tui defines the IO interface between the bikeshare session and the
// terminal, plus PlainIO (line-oriented), TuiIO (bubbletea) and BufferIO
// (scripted, used by tests and one-shot commands).
package tui

// IO is the contract between the session and the UI layer.
// The session never writes to stdout directly; every visible event goes
// through one of these methods.
type IO interface {
	// ReadInput shows prompt and blocks until the user submits a line.
	// The returned text is trimmed. Returns ("", io.EOF) when input ends
	// or the user quits.
	ReadInput(prompt string) (string, error)

	// Heading displays a section title such as "Calculating Trip Duration...".
	Heading(text string)

	// Println displays one line of report output.
	Println(text string)

	// Notice displays a validation or informational message.
	Notice(text string)

	// Table displays rows under header with aligned columns.
	Table(header []string, rows [][]string)

	// Rule displays the separator printed after each report section.
	Rule()

	// SetStatus updates the status area with the current selection.
	// Line-oriented implementations may ignore it.
	SetStatus(text string)
}

// RuleWidth is the number of dashes in a section separator.
const RuleWidth = 40
