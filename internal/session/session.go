package session

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/bikeshare/bikeshare/internal/config"
	"github.com/bikeshare/bikeshare/internal/stats"
	"github.com/bikeshare/bikeshare/internal/trips"
	"github.com/bikeshare/bikeshare/internal/tui"
)

// NoTrips is printed when the filters leave no rows.
const NoTrips = "No trips match the selected filters."

// Session is one interactive run: prompt, load, report, page, restart.
type Session struct {
	ui       tui.IO
	logger   *zap.Logger
	loader   *trips.Loader
	prompter *Prompter
	reporter *stats.Reporter
	pager    *Pager
}

// New wires a Session over ui. A nil logger disables logging.
func New(cfg *config.Config, ui tui.IO, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		ui:       ui,
		logger:   logger,
		loader:   trips.NewLoader(cfg, logger),
		prompter: NewPrompter(ui),
		reporter: stats.NewReporter(ui),
		pager:    NewPager(ui, cfg.PageSize),
	}
}

// Run repeats iterations until the user declines a restart. End of input
// and context cancellation end the session without error; dataset and
// column failures are returned.
func (s *Session) Run(ctx context.Context) error {
	s.ui.Heading("Hello! Let's explore some US bikeshare data!")
	for {
		again, err := s.iterate(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				s.logger.Debug("session ended", zap.Error(err))
				return nil
			}
			return err
		}
		if !again {
			return nil
		}
	}
}

func (s *Session) iterate(ctx context.Context) (bool, error) {
	log := s.logger.With(zap.String("iteration", uuid.NewString()[:8]))

	s.ui.SetStatus("choosing filters")
	f, err := s.prompter.Filter(ctx)
	if err != nil {
		return false, err
	}
	log.Info("filters selected", zap.String("city", f.City), zap.String("month", f.Month), zap.String("day", f.Day))
	s.ui.SetStatus(f.String())
	s.ui.Rule()

	table, err := s.loader.Load(ctx, f)
	if err != nil {
		log.Error("load failed", zap.Error(err))
		return false, fmt.Errorf("load %s: %w", f.City, err)
	}
	log.Debug("table ready", zap.Int("rows", table.Len()))

	if table.Len() == 0 {
		s.ui.Notice(NoTrips)
	} else {
		if err := s.reporter.All(table); err != nil {
			log.Error("statistics failed", zap.Error(err))
			return false, err
		}
		if err := s.pager.Run(ctx, table); err != nil {
			return false, err
		}
	}

	ans, err := s.prompter.Answer(ctx, RestartPrompt)
	if err != nil {
		return false, err
	}
	return IsYes(ans), nil
}
