package tui

import (
	"io"
	"strings"
	"sync"
)

// BufferIO is a silent IO that answers prompts from a fixed script and
// captures everything that would have been displayed.
type BufferIO struct {
	mu      sync.Mutex
	buf     strings.Builder
	answers []string
	prompts []string
	status  string
}

var _ IO = (*BufferIO)(nil)

// NewBufferIO creates a BufferIO that replies to successive prompts with
// answers, then io.EOF.
func NewBufferIO(answers ...string) *BufferIO {
	return &BufferIO{answers: answers}
}

// Output returns all captured output.
func (b *BufferIO) Output() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// Prompts returns every prompt shown so far, in order.
func (b *BufferIO) Prompts() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.prompts...)
}

// Status returns the last status text.
func (b *BufferIO) Status() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.status
}

func (b *BufferIO) ReadInput(prompt string) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.prompts = append(b.prompts, prompt)
	if len(b.answers) == 0 {
		return "", io.EOF
	}
	next := b.answers[0]
	b.answers = b.answers[1:]
	return strings.TrimSpace(next), nil
}

func (b *BufferIO) Heading(text string) { b.write(text + "\n") }
func (b *BufferIO) Println(text string) { b.write(text + "\n") }
func (b *BufferIO) Notice(text string)  { b.write(text + "\n") }

func (b *BufferIO) Table(header []string, rows [][]string) {
	b.write(FormatTable(header, rows))
}

func (b *BufferIO) Rule() { b.write(strings.Repeat("-", RuleWidth) + "\n") }

func (b *BufferIO) SetStatus(text string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.status = text
}

func (b *BufferIO) write(s string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.buf.WriteString(s)
}
