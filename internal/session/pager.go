package session

import (
	"context"
	"fmt"
	"strconv"

	"github.com/bikeshare/bikeshare/internal/trips"
	"github.com/bikeshare/bikeshare/internal/tui"
)

// Pager texts.
const (
	ContinuePrompt = "Enter Yes to continue. Any other input will terminate scroll."
	NoMoreRows     = "No more rows to display."
)

// RawPrompt returns the opening pager question for a batch size.
func RawPrompt(size int) string {
	return fmt.Sprintf("If you would like to view raw data, %d lines at a time, enter yes or no:", size)
}

// Pager shows a table's rows in fixed-size batches on request.
type Pager struct {
	ui       tui.IO
	prompter *Prompter
	size     int
}

// NewPager creates a Pager printing size rows per batch.
func NewPager(ui tui.IO, size int) *Pager {
	if size <= 0 {
		size = 5
	}
	return &Pager{ui: ui, prompter: NewPrompter(ui), size: size}
}

// Run asks whether to show raw rows and then prints batches while the user
// answers exactly yes. Only input and context errors are returned.
func (p *Pager) Run(ctx context.Context, t *trips.Table) error {
	show, err := p.prompter.YesNo(ctx, RawPrompt(p.size))
	if err != nil || !show {
		return err
	}

	for offset := 0; ; offset += p.size {
		WriteRows(p.ui, t, offset, p.size)
		if offset+p.size >= t.Len() {
			p.ui.Notice(NoMoreRows)
			return nil
		}
		ans, err := p.prompter.Answer(ctx, ContinuePrompt)
		if err != nil {
			return err
		}
		if !IsYes(ans) {
			return nil
		}
	}
}

// WriteRows prints up to limit rows of t starting at offset, with each
// row's position in the first column. It returns the number printed.
func WriteRows(ui tui.IO, t *trips.Table, offset, limit int) int {
	rows := t.Rows(offset, limit)
	if len(rows) == 0 {
		return 0
	}
	out := make([][]string, len(rows))
	for i, r := range rows {
		out[i] = append([]string{strconv.Itoa(offset + i)}, r...)
	}
	ui.Table(append([]string{""}, t.Columns()...), out)
	return len(rows)
}
