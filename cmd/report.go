package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bikeshare/bikeshare/internal/config"
	"github.com/bikeshare/bikeshare/internal/logging"
	"github.com/bikeshare/bikeshare/internal/session"
	"github.com/bikeshare/bikeshare/internal/stats"
	"github.com/bikeshare/bikeshare/internal/trips"
	"github.com/bikeshare/bikeshare/internal/tui"
)

// filterFlags are the selection flags shared by report and query.
type filterFlags struct {
	city  string
	month string
	day   string
}

func (ff *filterFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&ff.city, "city", "", "city: "+strings.Join(config.Cities(), ", "))
	cmd.Flags().StringVar(&ff.month, "month", trips.All, "month 1-6 or all")
	cmd.Flags().StringVar(&ff.day, "day", trips.All, "weekday name or all")
	cmd.MarkFlagRequired("city")
}

func (ff *filterFlags) filter() (trips.Filter, error) {
	return trips.NewFilter(ff.city, ff.month, ff.day)
}

func newReportCmd() *cobra.Command {
	var (
		ff       filterFlags
		markdown bool
		raw      int
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the statistics for one selection non-interactively",
		Example: `  bikeshare report --city chicago --month 3 --day monday
  bikeshare report --city washington --markdown
  bikeshare report --city "new york city" --raw 10`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if raw < 0 {
				return fmt.Errorf("--raw must not be negative")
			}
			return runReport(cmd, ff, markdown, raw)
		},
	}

	ff.register(cmd)
	cmd.Flags().BoolVar(&markdown, "markdown", false, "render a markdown report")
	cmd.Flags().IntVar(&raw, "raw", 0, "also print the first N raw rows")

	return cmd
}

// runReport loads one selection and prints its statistics.
func runReport(cmd *cobra.Command, ff filterFlags, markdown bool, raw int) error {
	cfg, err := initConfig(cmd)
	if err != nil {
		return err
	}
	f, err := ff.filter()
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	table, err := trips.NewLoader(cfg, logger).Load(cmd.Context(), f)
	if err != nil {
		return fmt.Errorf("load %s: %w", f.City, err)
	}

	out := cmd.OutOrStdout()
	ui := tui.NewPlainIOFrom(strings.NewReader(""), out)

	if markdown {
		r, err := stats.Compute(f, table)
		if err != nil {
			return err
		}
		md := r.Markdown()
		if isTerminal(out) {
			md = tui.RenderMarkdown(md, terminalWidth(out), "")
		}
		fmt.Fprint(out, md)
	} else {
		ui.Println(f.String())
		if table.Len() == 0 {
			ui.Notice(session.NoTrips)
		} else if err := stats.NewReporter(ui).All(table); err != nil {
			return err
		}
	}

	if raw > 0 && table.Len() > 0 {
		ui.Println("")
		session.WriteRows(ui, table, 0, raw)
	}
	return nil
}
