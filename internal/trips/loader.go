package trips

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"go.uber.org/zap"

	"github.com/bikeshare/bikeshare/internal/config"
)

// nanValues are the cells treated as missing.
var nanValues = []string{"", "NA", "NaN", "<nil>"}

// Loader reads city datasets.
type Loader struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewLoader creates a Loader resolving city files through cfg.
func NewLoader(cfg *config.Config, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{cfg: cfg, logger: logger}
}

// Load reads the city's CSV, adds the month and day_of_week columns and
// applies the month and day filters. Any read or parse failure is returned;
// there is no retry.
func (l *Loader) Load(ctx context.Context, f Filter) (*Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path, err := l.cfg.CityPath(f.City)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	df, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	raw := df.Nrow()

	df, err = addTimeColumns(df)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if m := f.MonthNumber(); m != 0 {
		df = df.Filter(dataframe.F{Colname: ColMonth, Comparator: series.Eq, Comparando: m})
		if df.Err != nil {
			return nil, fmt.Errorf("filter month %d: %w", m, df.Err)
		}
	}
	if d := f.DayName(); d != "" {
		df = df.Filter(dataframe.F{Colname: ColDayOfWeek, Comparator: series.Eq, Comparando: d})
		if df.Err != nil {
			return nil, fmt.Errorf("filter day %s: %w", d, df.Err)
		}
	}

	l.logger.Debug("dataset loaded",
		zap.String("city", f.City),
		zap.String("path", path),
		zap.Int("raw_rows", raw),
		zap.Int("filtered_rows", df.Nrow()),
		zap.Duration("elapsed", time.Since(start)),
	)
	return NewTable(df), nil
}

// Columns describes which optional columns a city file provides.
type Columns struct {
	City      string
	Path      string
	Header    []string
	Gender    bool
	BirthYear bool
	EndTime   bool
}

// Inspect reads only the header row of the city's file.
func (l *Loader) Inspect(city string) (Columns, error) {
	path, err := l.cfg.CityPath(city)
	if err != nil {
		return Columns{}, err
	}
	fh, err := os.Open(path)
	if err != nil {
		return Columns{}, fmt.Errorf("open dataset: %w", err)
	}
	defer fh.Close()

	header, err := csv.NewReader(fh).Read()
	if err != nil {
		return Columns{}, fmt.Errorf("read header of %s: %w", path, err)
	}
	return Columns{
		City:      city,
		Path:      path,
		Header:    header,
		Gender:    slices.Contains(header, ColGender),
		BirthYear: slices.Contains(header, ColBirthYear),
		EndTime:   slices.Contains(header, ColEndTime),
	}, nil
}

func readCSV(path string) (dataframe.DataFrame, error) {
	fh, err := os.Open(path)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("open dataset: %w", err)
	}
	defer fh.Close()

	df := dataframe.ReadCSV(fh,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues(nanValues),
	)
	if df.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("read %s: %w", path, df.Err)
	}
	if !slices.Contains(df.Names(), ColStartTime) {
		return dataframe.DataFrame{}, fmt.Errorf("read %s: missing column %q", path, ColStartTime)
	}
	return df, nil
}

// addTimeColumns parses Start Time and appends the month number and weekday
// name columns.
func addTimeColumns(df dataframe.DataFrame) (dataframe.DataFrame, error) {
	t := NewTable(df)
	starts, err := t.StartTimes()
	if err != nil {
		return df, err
	}

	months := make([]int, len(starts))
	days := make([]string, len(starts))
	for i, ts := range starts {
		months[i] = int(ts.Month())
		days[i] = ts.Weekday().String()
	}

	df = df.Mutate(series.New(months, series.Int, ColMonth))
	if df.Err != nil {
		return df, fmt.Errorf("add %s column: %w", ColMonth, df.Err)
	}
	df = df.Mutate(series.New(days, series.String, ColDayOfWeek))
	if df.Err != nil {
		return df, fmt.Errorf("add %s column: %w", ColDayOfWeek, df.Err)
	}
	return df, nil
}
