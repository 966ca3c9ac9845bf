package tui

import (
	"context"
	"fmt"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// RunTUI starts the bubbletea program in alt-screen mode and runs sessionFn
// concurrently. It blocks until either the session finishes or the user quits.
// The context passed to sessionFn is cancelled when the program exits or
// parent is cancelled.
func RunTUI(parent context.Context, cfg TUIConfig, sessionFn func(ctx context.Context, ui IO) error) error {
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	inputCh := make(chan inputResult, 1)
	model := NewModel(inputCh, cfg)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	tuiIO := &TuiIO{
		program: p,
		inputCh: inputCh,
		done:    make(chan struct{}),
	}

	var (
		sessionErr error
		wg         sync.WaitGroup
	)

	wg.Add(1)
	go func() {
		defer wg.Done()
		sessionErr = sessionFn(ctx, tuiIO)
		// Signal the TUI that the session is done
		p.Send(sessionDoneMsg{err: sessionErr})
	}()

	_, runErr := p.Run()
	cancel()
	close(tuiIO.done)

	// Wait for the session goroutine to finish after TUI exits
	wg.Wait()

	if runErr != nil && parent.Err() == nil {
		return fmt.Errorf("TUI error: %w", runErr)
	}
	return sessionErr
}
