package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bikeshare/bikeshare/internal/config"
	"github.com/bikeshare/bikeshare/internal/trips"
	"github.com/bikeshare/bikeshare/internal/tui"
)

func newCitiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cities",
		Short: "List the supported cities and the columns their files provide",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := initConfig(cmd)
			if err != nil {
				return err
			}
			loader := trips.NewLoader(cfg, nil)

			header := []string{"City", "File", "Gender", "Birth Year", "End Time"}
			var rows [][]string
			for _, city := range config.Cities() {
				cols, err := loader.Inspect(city)
				if err != nil {
					path, _ := cfg.CityPath(city)
					rows = append(rows, []string{city, path, "-", "-", "-"})
					continue
				}
				rows = append(rows, []string{city, cols.Path, yesNo(cols.Gender), yesNo(cols.BirthYear), yesNo(cols.EndTime)})
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.FormatTable(header, rows))
			return nil
		},
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
