package tui

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"
)

func TestFormatTable(t *testing.T) {
	got := FormatTable(
		[]string{"User Type", "Count"},
		[][]string{{"Customer", "12"}, {"Subscriber", "1234"}},
	)
	want := "User Type   Count\n" +
		"Customer    12\n" +
		"Subscriber  1234\n"
	if got != want {
		t.Errorf("FormatTable =\n%q\nwant\n%q", got, want)
	}
}

func TestFormatTableWideRunes(t *testing.T) {
	out := FormatTable(nil, [][]string{{"東京駅", "a"}, {"Loop", "b"}})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), out)
	}
	// The second column must start at the same cell offset on both lines.
	col := func(line string) int { return runewidth.StringWidth(line[:strings.LastIndex(line, "  ")+2]) }
	if col(lines[0]) != col(lines[1]) {
		t.Errorf("columns not aligned: %q", out)
	}
}

func TestFormatTableRaggedAndEmpty(t *testing.T) {
	if got := FormatTable(nil, nil); got != "" {
		t.Errorf("empty table = %q, want empty string", got)
	}
	got := FormatTable([]string{"a", "b", "c"}, [][]string{{"1"}})
	if got != "a  b  c\n1\n" {
		t.Errorf("ragged table = %q", got)
	}
}

func TestPlainIO(t *testing.T) {
	var out bytes.Buffer
	p := NewPlainIOFrom(strings.NewReader("  Chicago  \nsecond\n"), &out)

	got, err := p.ReadInput("Choose a city:")
	if err != nil {
		t.Fatalf("ReadInput: %v", err)
	}
	if got != "Chicago" {
		t.Errorf("ReadInput = %q, want trimmed %q", got, "Chicago")
	}
	if _, err := p.ReadInput("again:"); err != nil {
		t.Fatalf("second ReadInput: %v", err)
	}
	if _, err := p.ReadInput("eof:"); !errors.Is(err, io.EOF) {
		t.Errorf("expected io.EOF at end of input, got %v", err)
	}

	p.Heading("Calculating Trip Duration...")
	p.Println("Total travel time: 10")
	p.Rule()

	s := out.String()
	for _, want := range []string{"Choose a city: ", "\nCalculating Trip Duration...\n\n", "Total travel time: 10\n", strings.Repeat("-", RuleWidth) + "\n"} {
		if !strings.Contains(s, want) {
			t.Errorf("output missing %q:\n%s", want, s)
		}
	}
}

func TestBufferIO(t *testing.T) {
	b := NewBufferIO(" yes ", "no")

	if got, _ := b.ReadInput("first?"); got != "yes" {
		t.Errorf("first answer = %q, want yes", got)
	}
	if got, _ := b.ReadInput("second?"); got != "no" {
		t.Errorf("second answer = %q, want no", got)
	}
	if _, err := b.ReadInput("third?"); !errors.Is(err, io.EOF) {
		t.Errorf("expected io.EOF after script, got %v", err)
	}

	prompts := b.Prompts()
	if len(prompts) != 3 || prompts[2] != "third?" {
		t.Errorf("Prompts = %v", prompts)
	}

	b.Notice("Please enter a valid input.")
	b.SetStatus("chicago")
	if !strings.Contains(b.Output(), "Please enter a valid input.") {
		t.Errorf("notice not captured: %q", b.Output())
	}
	if b.Status() != "chicago" {
		t.Errorf("Status = %q", b.Status())
	}
}

func TestModelAnswersPrompt(t *testing.T) {
	inputCh := make(chan inputResult, 1)
	var m tea.Model = NewModel(inputCh, TUIConfig{Version: "test"})

	m, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 20})
	m, _ = m.Update(readInputMsg{prompt: "Choose a city:"})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("washington")})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	select {
	case res := <-inputCh:
		if res.err != nil || res.text != "washington" {
			t.Errorf("input = %+v, want washington", res)
		}
	default:
		t.Fatal("enter did not deliver the answer")
	}

	m, _ = m.Update(statusMsg{text: "city: washington"})
	if view := m.View(); !strings.Contains(view, "city: washington") {
		t.Errorf("status not shown in view:\n%s", view)
	}
}

func TestModelCtrlCEndsInput(t *testing.T) {
	inputCh := make(chan inputResult, 1)
	var m tea.Model = NewModel(inputCh, TUIConfig{})

	m, _ = m.Update(readInputMsg{prompt: "restart?"})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("ctrl+c should return a quit command")
	}

	res := <-inputCh
	if !errors.Is(res.err, io.EOF) {
		t.Errorf("pending ReadInput should receive io.EOF, got %+v", res)
	}
}
