package cmd

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/bikeshare/bikeshare/internal/logging"
	"github.com/bikeshare/bikeshare/internal/tripdb"
	"github.com/bikeshare/bikeshare/internal/trips"
	"github.com/bikeshare/bikeshare/internal/tui"
)

func newQueryCmd() *cobra.Command {
	var ff filterFlags

	cmd := &cobra.Command{
		Use:   "query SQL",
		Short: "Run a read-only SQL query against the selected trips",
		Long: "query loads the selection into an in-memory SQLite table named \"trips\"\n" +
			"and runs one statement against it. Column names with spaces must be quoted.",
		Example: `  bikeshare query --city chicago 'SELECT "User Type", COUNT(*) FROM trips GROUP BY 1'
  bikeshare query --city washington --month 6 'SELECT AVG("Trip Duration") FROM trips'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd, ff, args[0])
		},
	}

	ff.register(cmd)
	return cmd
}

// runQuery loads one selection into SQLite and prints the query result.
func runQuery(cmd *cobra.Command, ff filterFlags, query string) error {
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

	ctx := cmd.Context()
	table, err := trips.NewLoader(cfg, logger).Load(ctx, f)
	if err != nil {
		return fmt.Errorf("load %s: %w", f.City, err)
	}

	db, err := tripdb.Open(ctx, table)
	if err != nil {
		return err
	}
	defer db.Close()

	res, err := db.Query(ctx, query)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprint(out, tui.FormatTable(res.Columns, res.Rows))
	fmt.Fprintf(out, "(%s rows)\n", humanize.Comma(int64(len(res.Rows))))
	return nil
}
