package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bikeshare/bikeshare/internal/logging"
	"github.com/bikeshare/bikeshare/internal/session"
	"github.com/bikeshare/bikeshare/internal/tui"
)

// runExplore starts the interactive session.
func runExplore(cmd *cobra.Command) error {
	cfg, err := initConfig(cmd)
	if err != nil {
		return err
	}

	in, out := cmd.InOrStdin(), cmd.OutOrStdout()
	tuiMode := wantTUI(cfg, in, out)

	logger, err := logging.ForUI(cfg.Log, tuiMode)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if tuiMode {
		tuiCfg := tui.TUIConfig{Version: displayVersion()}
		// ctx is cancelled by RunTUI on program exit, or here on an OS signal.
		return tui.RunTUI(ctx, tuiCfg, func(ctx context.Context, ui tui.IO) error {
			return session.New(cfg, ui, logger).Run(ctx)
		})
	}

	// Plain IO mode (default). A blocked read cannot observe ctx, so the
	// session runs aside and a signal ends the command directly.
	ui := tui.NewPlainIOFrom(in, out)
	errCh := make(chan error, 1)
	go func() {
		errCh <- session.New(cfg, ui, logger).Run(ctx)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		fmt.Fprintln(out)
		logger.Debug("interrupted")
		return nil
	}
}
