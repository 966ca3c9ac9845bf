package stats

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/bikeshare/bikeshare/internal/trips"
	"github.com/bikeshare/bikeshare/internal/tui"
)

// Reporter prints each statistics section with its compute time.
type Reporter struct {
	io  tui.IO
	now func() time.Time
}

// NewReporter creates a Reporter writing to io.
func NewReporter(io tui.IO) *Reporter {
	return &Reporter{io: io, now: time.Now}
}

// All prints the four sections in their fixed order.
func (r *Reporter) All(t *trips.Table) error {
	for _, section := range []func(*trips.Table) error{r.Time, r.Stations, r.Duration, r.Users} {
		if err := section(t); err != nil {
			return err
		}
	}
	return nil
}

// Time prints the most frequent times of travel.
func (r *Reporter) Time(t *trips.Table) error {
	r.io.Heading("Calculating The Most Frequent Times of Travel...")
	start := r.now()

	ts, err := ComputeTime(t)
	if err != nil {
		return fmt.Errorf("time stats: %w", err)
	}
	r.io.Println(fmt.Sprintf(" The most popular month: %d (%s)", ts.Month, MonthName(ts.Month)))
	r.io.Println(" The most popular day of the week: " + ts.Day)
	r.io.Println(fmt.Sprintf(" The most popular start hour: %d", ts.Hour))

	r.done(start)
	return nil
}

// Stations prints the most popular stations and trip.
func (r *Reporter) Stations(t *trips.Table) error {
	r.io.Heading("Calculating The Most Popular Stations and Trip...")
	start := r.now()

	ss, err := ComputeStations(t)
	if err != nil {
		return fmt.Errorf("station stats: %w", err)
	}
	r.io.Println("Most commonly used start station: " + ss.Start)
	r.io.Println("Most commonly used end station: " + ss.End)
	r.io.Println("Most common Start and End Station combination with count:")
	r.io.Table(nil, [][]string{{ss.Pair.Start, ss.Pair.End, strconv.Itoa(ss.Pair.Count)}})

	r.done(start)
	return nil
}

// Duration prints the total and mean trip duration.
func (r *Reporter) Duration(t *trips.Table) error {
	r.io.Heading("Calculating Trip Duration...")
	start := r.now()

	ds, err := ComputeDuration(t)
	if err != nil {
		return fmt.Errorf("trip duration stats: %w", err)
	}
	r.io.Println("Total travel time: " + FormatSeconds(ds.Total))
	r.io.Println("Average travel time: " + FormatSeconds(ds.Mean))

	r.done(start)
	return nil
}

// Users prints the user demographics. Absent Gender or Birth Year columns
// produce a notice instead of a section.
func (r *Reporter) Users(t *trips.Table) error {
	r.io.Heading("Calculating User Stats...")
	start := r.now()

	us, err := ComputeUsers(t)
	if err != nil {
		return fmt.Errorf("user stats: %w", err)
	}

	r.io.Println("Counts of user types:")
	r.io.Table([]string{"User Type", "Count"}, countRows(us.UserTypes))

	if us.HasGender {
		r.io.Println("")
		r.io.Println("Gender counts:")
		r.io.Table([]string{"Gender", "Count"}, countRows(us.Genders))
	} else {
		r.io.Println(NoGenderMessage)
	}

	switch by := us.BirthYears; {
	case by == nil:
		r.io.Println(NoBirthYearMessage)
	case by.N == 0:
		r.io.Println("No birth year values recorded for this selection.")
	default:
		r.io.Println(fmt.Sprintf("Earliest birth year: %.0f", by.Earliest))
		r.io.Println(fmt.Sprintf("Most recent birth year: %.0f", by.Latest))
		r.io.Println(fmt.Sprintf("Average birth year: %.2f", by.Mean))
		r.io.Println(fmt.Sprintf("Most common birth year: %.0f", by.Common))
	}

	r.done(start)
	return nil
}

// Messages printed when an optional column is absent from the city file.
const (
	NoGenderMessage    = "There is not a Gender column for this data frame."
	NoBirthYearMessage = "There is not a Birth Year column for this data frame."
)

func (r *Reporter) done(start time.Time) {
	r.io.Println("")
	r.io.Println(fmt.Sprintf("This took %.6f seconds.", r.now().Sub(start).Seconds()))
	r.io.Rule()
}

func countRows(counts []Count) [][]string {
	rows := make([][]string, len(counts))
	for i, c := range counts {
		rows[i] = []string{c.Value, humanize.Comma(int64(c.Count))}
	}
	return rows
}

// FormatSeconds renders a duration in seconds as "1,234.5 seconds (20m 34s)".
// NaN, from a missing trip duration, is rendered as is.
func FormatSeconds(secs float64) string {
	if math.IsNaN(secs) || math.IsInf(secs, 0) {
		return fmt.Sprintf("%v seconds", secs)
	}
	return fmt.Sprintf("%s seconds (%s)", humanize.CommafWithDigits(secs, 2), spell(secs))
}

// spell renders whole seconds as days, hours, minutes and seconds.
func spell(secs float64) string {
	total := int64(math.Round(secs))
	if total < 0 {
		return "-" + spell(-secs)
	}
	d := total / 86400
	h := total % 86400 / 3600
	m := total % 3600 / 60
	s := total % 60
	switch {
	case d > 0:
		return fmt.Sprintf("%dd %dh %dm %ds", d, h, m, s)
	case h > 0:
		return fmt.Sprintf("%dh %dm %ds", h, m, s)
	case m > 0:
		return fmt.Sprintf("%dm %ds", m, s)
	default:
		return fmt.Sprintf("%ds", s)
	}
}
