package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/bikeshare/bikeshare/internal/config"
)

var (
	cfgFile  string
	dataDir  string
	useTUI   bool
	logLevel string

	// Package-level version info, set by Execute().
	appVersion string
	appCommit  string
	appDate    string
)

// Execute is the main entry point called from main.go.
func Execute(version, commit, date string) {
	if err := newRootCmd(version, commit, date).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd(version, commit, date string) *cobra.Command {
	appVersion = version
	appCommit = commit
	appDate = date

	rootCmd := &cobra.Command{
		Use:   "bikeshare",
		Short: "Explore US bikeshare trip data",
		Long: "bikeshare asks for a city, month and weekday, then prints descriptive\n" +
			"statistics of the matching trips and lets you page through the raw rows.",
		// Running bikeshare with no subcommand starts the interactive session.
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExplore(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path (default ~/.config/bikeshare/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&dataDir, "data-dir", "d", "", "directory holding the city CSV files")
	rootCmd.PersistentFlags().BoolVar(&useTUI, "tui", false, "use the full-screen bubbletea UI")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")

	// Subcommands
	rootCmd.AddCommand(newReportCmd())
	rootCmd.AddCommand(newQueryCmd())
	rootCmd.AddCommand(newCitiesCmd())
	rootCmd.AddCommand(newVersionCmd(version, commit, date))

	return rootCmd
}

// displayVersion returns a formatted version string for the status bar,
// e.g. "v0.1.0 (abc1234)".
func displayVersion() string {
	v := "v" + appVersion
	if appCommit != "" && appCommit != "none" {
		v += " (" + appCommit + ")"
	}
	return v
}

// initConfig loads configuration, applying CLI flag overrides.
func initConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	// CLI flags override config and environment values
	if dataDir != "" {
		cfg.DataDir = dataDir
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if cmd.Root().PersistentFlags().Changed("tui") {
		cfg.UI = config.UIPlain
		if useTUI {
			cfg.UI = config.UITUI
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// wantTUI resolves the configured UI mode. Auto picks the TUI only when
// both stdin and stdout are terminals.
func wantTUI(cfg *config.Config, in io.Reader, out io.Writer) bool {
	switch cfg.UI {
	case config.UITUI:
		return true
	case config.UIAuto:
		return isTerminal(in) && isTerminal(out)
	default:
		return false
	}
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// terminalWidth returns the width of out, or 0 when it is not a terminal.
func terminalWidth(out io.Writer) int {
	f, ok := out.(*os.File)
	if !ok {
		return 0
	}
	w, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return w
}
