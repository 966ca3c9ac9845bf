// Package stats computes the descriptive statistics of a filtered trip table
// and prints them through a tui.IO.
//
// The Compute functions are pure: they read the table and never mutate it.
// Modes resolve ties to the value encountered first in table order.
package stats

import (
	"math"
	"sort"
	"strconv"
	"time"

	"github.com/bikeshare/bikeshare/internal/trips"
)

// TimeStats holds the most frequent times of travel.
type TimeStats struct {
	Month int    // 1..12
	Day   string // weekday name, title case
	Hour  int    // 0..23
}

// Pair is a (start station, end station) trip and how often it occurs.
type Pair struct {
	Start string
	End   string
	Count int
}

// StationStats holds the most popular stations and trip.
type StationStats struct {
	Start string
	End   string
	Pair  Pair
}

// DurationStats holds trip duration aggregates in seconds. A missing
// duration makes both values NaN.
type DurationStats struct {
	Total float64
	Mean  float64
}

// Count is one category of a value breakdown.
type Count struct {
	Value string
	Count int
}

// BirthYears summarises the Birth Year column over non-missing values.
type BirthYears struct {
	N        int
	Earliest float64
	Latest   float64
	Mean     float64
	Common   float64
}

// UserStats holds the user demographics. Genders is only meaningful when
// HasGender is set; BirthYears is nil when the column is absent.
type UserStats struct {
	UserTypes  []Count
	HasGender  bool
	Genders    []Count
	BirthYears *BirthYears
}

// ComputeTime returns the modal month, weekday and start hour.
func ComputeTime(t *trips.Table) (TimeStats, error) {
	months, err := t.Ints(trips.ColMonth)
	if err != nil {
		return TimeStats{}, err
	}
	days, err := t.Strings(trips.ColDayOfWeek)
	if err != nil {
		return TimeStats{}, err
	}
	starts, err := t.StartTimes()
	if err != nil {
		return TimeStats{}, err
	}
	hours := make([]int, len(starts))
	for i, ts := range starts {
		hours[i] = ts.Hour()
	}

	var ts TimeStats
	ts.Month, _ = Mode(months, nil)
	ts.Day, _ = Mode(days, isEmpty)
	ts.Hour, _ = Mode(hours, nil)
	return ts, nil
}

// ComputeStations returns the modal start and end stations and the most
// frequent start/end pair.
func ComputeStations(t *trips.Table) (StationStats, error) {
	starts, err := t.Strings(trips.ColStartStation)
	if err != nil {
		return StationStats{}, err
	}
	ends, err := t.Strings(trips.ColEndStation)
	if err != nil {
		return StationStats{}, err
	}

	var ss StationStats
	ss.Start, _ = Mode(starts, isEmpty)
	ss.End, _ = Mode(ends, isEmpty)

	type key struct{ start, end string }
	pairs := make([]key, 0, len(starts))
	for i := range starts {
		if starts[i] == "" || ends[i] == "" {
			continue
		}
		pairs = append(pairs, key{starts[i], ends[i]})
	}
	top, n := Mode(pairs, nil)
	ss.Pair = Pair{Start: top.start, End: top.end, Count: n}
	return ss, nil
}

// ComputeDuration returns the total and mean trip duration.
func ComputeDuration(t *trips.Table) (DurationStats, error) {
	vals, err := t.Floats(trips.ColTripDuration)
	if err != nil {
		return DurationStats{}, err
	}
	var ds DurationStats
	for _, v := range vals {
		ds.Total += v
	}
	if len(vals) > 0 {
		ds.Mean = ds.Total / float64(len(vals))
	} else {
		ds.Mean = math.NaN()
	}
	return ds, nil
}

// ComputeUsers returns the user-type, gender and birth-year breakdowns.
// Absent Gender or Birth Year columns are reported through HasGender and a
// nil BirthYears, never as errors.
func ComputeUsers(t *trips.Table) (UserStats, error) {
	types, err := t.Strings(trips.ColUserType)
	if err != nil {
		return UserStats{}, err
	}
	us := UserStats{UserTypes: CountValues(types)}

	if t.HasColumn(trips.ColGender) {
		genders, err := t.Strings(trips.ColGender)
		if err != nil {
			return UserStats{}, err
		}
		us.HasGender = true
		us.Genders = CountValues(genders)
	}

	if t.HasColumn(trips.ColBirthYear) {
		years, err := t.Floats(trips.ColBirthYear)
		if err != nil {
			return UserStats{}, err
		}
		us.BirthYears = summarizeYears(years)
	}
	return us, nil
}

// Mode returns the most frequent value and its count, skipping values for
// which skip reports true. Ties go to the value seen first. An empty input
// yields the zero value and 0.
func Mode[T comparable](values []T, skip func(T) bool) (T, int) {
	counts := make(map[T]int)
	var order []T
	for _, v := range values {
		if skip != nil && skip(v) {
			continue
		}
		if counts[v] == 0 {
			order = append(order, v)
		}
		counts[v]++
	}

	var best T
	bestN := 0
	for _, v := range order {
		if counts[v] > bestN {
			best, bestN = v, counts[v]
		}
	}
	return best, bestN
}

// CountValues counts each non-empty value, sorted by value.
func CountValues(values []string) []Count {
	counts := make(map[string]int)
	for _, v := range values {
		if v == "" {
			continue
		}
		counts[v]++
	}
	out := make([]Count, 0, len(counts))
	for v, n := range counts {
		out = append(out, Count{Value: v, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Value < out[j].Value })
	return out
}

func summarizeYears(years []float64) *BirthYears {
	by := &BirthYears{
		Earliest: math.Inf(1),
		Latest:   math.Inf(-1),
	}
	var sum float64
	for _, y := range years {
		if math.IsNaN(y) {
			continue
		}
		by.N++
		sum += y
		by.Earliest = math.Min(by.Earliest, y)
		by.Latest = math.Max(by.Latest, y)
	}
	if by.N == 0 {
		return &BirthYears{Earliest: math.NaN(), Latest: math.NaN(), Mean: math.NaN(), Common: math.NaN()}
	}
	by.Mean = sum / float64(by.N)
	by.Common, _ = Mode(years, func(y float64) bool { return math.IsNaN(y) })
	return by
}

func isEmpty(s string) bool { return s == "" }

// MonthName returns the English name of month n, or n itself when out of range.
func MonthName(n int) string {
	if n < 1 || n > 12 {
		return strconv.Itoa(n)
	}
	return time.Month(n).String()
}
