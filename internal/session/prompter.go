// Package session drives the interactive exploration loop: it asks for the
// filters, prints the statistics, pages through raw rows and offers a
// restart.
package session

import (
	"context"
	"errors"
	"strings"

	"github.com/bikeshare/bikeshare/internal/trips"
	"github.com/bikeshare/bikeshare/internal/tui"
)

// Prompt texts.
const (
	CityPrompt    = "Choose a city: chicago, new york city or washington:"
	MonthPrompt   = "Choose a month, as an integer. (Example: All, january = 1, ... june = 6):"
	DayPrompt     = "Choose a day of the week (All, Sunday, Monday, etc.):"
	InvalidInput  = "Please enter a valid input."
	RestartPrompt = "Would you like to restart? Enter yes or no."
)

// Prompter asks questions over a tui.IO and re-asks until the answer is one
// of the accepted values.
type Prompter struct {
	ui tui.IO
}

// NewPrompter creates a Prompter reading from ui.
func NewPrompter(ui tui.IO) *Prompter {
	return &Prompter{ui: ui}
}

// Filter asks for city, month and day in that order. It returns only once
// all three answers are valid, or with the input error (io.EOF) or the
// context error.
func (p *Prompter) Filter(ctx context.Context) (trips.Filter, error) {
	city, err := p.ask(ctx, CityPrompt, trips.ParseCity)
	if err != nil {
		return trips.Filter{}, err
	}
	month, err := p.ask(ctx, MonthPrompt, trips.ParseMonth)
	if err != nil {
		return trips.Filter{}, err
	}
	day, err := p.ask(ctx, DayPrompt, trips.ParseDay)
	if err != nil {
		return trips.Filter{}, err
	}
	return trips.Filter{City: city, Month: month, Day: day}, nil
}

// YesNo asks prompt until the answer is yes or no.
func (p *Prompter) YesNo(ctx context.Context, prompt string) (bool, error) {
	ans, err := p.ask(ctx, prompt, parseYesNo)
	if err != nil {
		return false, err
	}
	return ans == "yes", nil
}

// Answer asks prompt once and returns the trimmed, lower-cased answer.
func (p *Prompter) Answer(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	ans, err := p.ui.ReadInput(prompt)
	if err != nil {
		return "", err
	}
	return strings.ToLower(strings.TrimSpace(ans)), nil
}

func (p *Prompter) ask(ctx context.Context, prompt string, parse func(string) (string, error)) (string, error) {
	for {
		ans, err := p.Answer(ctx, prompt)
		if err != nil {
			return "", err
		}
		v, err := parse(ans)
		if err == nil {
			return v, nil
		}
		p.ui.Notice(InvalidInput)
	}
}

var errNotYesNo = errors.New("expected yes or no")

func parseYesNo(s string) (string, error) {
	switch s {
	case "yes", "no":
		return s, nil
	}
	return "", errNotYesNo
}

// IsYes reports whether an answer is exactly "yes", ignoring case and
// surrounding space.
func IsYes(s string) bool {
	return strings.EqualFold(strings.TrimSpace(s), "yes")
}
