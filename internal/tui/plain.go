package tui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// PlainIO implements IO with plain line-oriented terminal output.
// It is the default UI and the one used when stdout is not a terminal.
type PlainIO struct {
	scanner *bufio.Scanner
	out     io.Writer
}

var _ IO = (*PlainIO)(nil)

// NewPlainIO creates a PlainIO that reads from stdin and writes to stdout.
func NewPlainIO() *PlainIO {
	return NewPlainIOFrom(os.Stdin, os.Stdout)
}

// NewPlainIOFrom creates a PlainIO over arbitrary streams.
func NewPlainIOFrom(r io.Reader, w io.Writer) *PlainIO {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 64*1024), 1024*1024)
	return &PlainIO{scanner: s, out: w}
}

func (p *PlainIO) ReadInput(prompt string) (string, error) {
	fmt.Fprintf(p.out, "\n%s ", prompt)
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.scanner.Text()), nil
}

func (p *PlainIO) Heading(text string) {
	fmt.Fprintf(p.out, "\n%s\n\n", text)
}

func (p *PlainIO) Println(text string) {
	fmt.Fprintln(p.out, text)
}

func (p *PlainIO) Notice(text string) {
	fmt.Fprintf(p.out, "\n%s\n", text)
}

func (p *PlainIO) Table(header []string, rows [][]string) {
	fmt.Fprint(p.out, FormatTable(header, rows))
}

func (p *PlainIO) Rule() {
	fmt.Fprintln(p.out, strings.Repeat("-", RuleWidth))
}

func (p *PlainIO) SetStatus(_ string) {
	// Plain terminal: no status area.
}
