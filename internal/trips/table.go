// Package trips loads a city's trip records into a dataframe, derives the
// month and weekday columns and applies the month/day filters.
package trips

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Column names read from the city files.
const (
	ColStartTime    = "Start Time"
	ColEndTime      = "End Time"
	ColStartStation = "Start Station"
	ColEndStation   = "End Station"
	ColTripDuration = "Trip Duration"
	ColUserType     = "User Type"
	ColGender       = "Gender"
	ColBirthYear    = "Birth Year"
)

// Derived columns added by the loader before filtering.
const (
	ColMonth     = "month"
	ColDayOfWeek = "day_of_week"
)

// Table is the filtered working set of one session iteration.
// It is never mutated after Load returns.
type Table struct {
	df dataframe.DataFrame
}

// NewTable wraps an already-built dataframe.
func NewTable(df dataframe.DataFrame) *Table {
	return &Table{df: df}
}

// DataFrame exposes the underlying dataframe.
func (t *Table) DataFrame() dataframe.DataFrame {
	return t.df
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return t.df.Nrow()
}

// Columns returns the column names in file order, derived columns last.
func (t *Table) Columns() []string {
	return t.df.Names()
}

// HasColumn reports whether the table has a column called name.
func (t *Table) HasColumn(name string) bool {
	return slices.Contains(t.df.Names(), name)
}

// Strings returns a column as strings; missing cells become "".
func (t *Table) Strings(name string) ([]string, error) {
	s, err := t.column(name)
	if err != nil {
		return nil, err
	}
	out := make([]string, s.Len())
	for i := range out {
		e := s.Elem(i)
		if e.IsNA() {
			continue
		}
		out[i] = e.String()
	}
	return out, nil
}

// Floats returns a column parsed as float64; missing or unparsable cells are NaN.
func (t *Table) Floats(name string) ([]float64, error) {
	s, err := t.column(name)
	if err != nil {
		return nil, err
	}
	return s.Float(), nil
}

// Ints returns an integer column such as ColMonth.
func (t *Table) Ints(name string) ([]int, error) {
	s, err := t.column(name)
	if err != nil {
		return nil, err
	}
	vals, err := s.Int()
	if err != nil {
		return nil, fmt.Errorf("column %q: %w", name, err)
	}
	return vals, nil
}

// StartTimes parses the Start Time column.
func (t *Table) StartTimes() ([]time.Time, error) {
	raw, err := t.Strings(ColStartTime)
	if err != nil {
		return nil, err
	}
	return parseTimes(raw)
}

// Rows returns up to limit rows starting at offset, as display strings.
// It returns nil once offset is past the end.
func (t *Table) Rows(offset, limit int) [][]string {
	n := t.Len()
	if offset < 0 || offset >= n || limit <= 0 {
		return nil
	}
	end := min(offset+limit, n)
	idx := make([]int, 0, end-offset)
	for i := offset; i < end; i++ {
		idx = append(idx, i)
	}
	records := t.df.Subset(idx).Records()
	if len(records) < 2 {
		return nil
	}
	return records[1:]
}

func (t *Table) column(name string) (series.Series, error) {
	if !t.HasColumn(name) {
		return series.Series{}, fmt.Errorf("missing column %q (have: %s)", name, strings.Join(t.df.Names(), ", "))
	}
	s := t.df.Col(name)
	if s.Err != nil {
		return series.Series{}, fmt.Errorf("column %q: %w", name, s.Err)
	}
	return s, nil
}

// timeLayouts are tried in order when parsing Start Time.
var timeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"1/2/2006 15:04",
	"2006-01-02",
}

// ParseTime parses one Start Time cell.
func ParseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised timestamp %q", s)
}

func parseTimes(raw []string) ([]time.Time, error) {
	out := make([]time.Time, len(raw))
	for i, s := range raw {
		ts, err := ParseTime(s)
		if err != nil {
			return nil, fmt.Errorf("row %d: %s: %w", i, ColStartTime, err)
		}
		out[i] = ts
	}
	return out, nil
}
