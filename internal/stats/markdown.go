package stats

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/bikeshare/bikeshare/internal/trips"
)

// Report bundles every statistic for one filtered table.
type Report struct {
	Filter   trips.Filter
	Trips    int
	Time     TimeStats
	Stations StationStats
	Duration DurationStats
	Users    UserStats
}

// Compute runs all four computations. An empty table yields a Report with
// Trips == 0 and zero-valued sections.
func Compute(f trips.Filter, t *trips.Table) (Report, error) {
	r := Report{Filter: f, Trips: t.Len()}
	if r.Trips == 0 {
		return r, nil
	}
	var err error
	if r.Time, err = ComputeTime(t); err != nil {
		return r, fmt.Errorf("time stats: %w", err)
	}
	if r.Stations, err = ComputeStations(t); err != nil {
		return r, fmt.Errorf("station stats: %w", err)
	}
	if r.Duration, err = ComputeDuration(t); err != nil {
		return r, fmt.Errorf("trip duration stats: %w", err)
	}
	if r.Users, err = ComputeUsers(t); err != nil {
		return r, fmt.Errorf("user stats: %w", err)
	}
	return r, nil
}

// Markdown renders the report as a markdown document.
func (r Report) Markdown() string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Bikeshare report: %s\n\n", r.Filter.City)
	fmt.Fprintf(&b, "Month: **%s**, day: **%s**, trips: **%s**\n\n", r.Filter.Month, r.Filter.Day, humanize.Comma(int64(r.Trips)))

	if r.Trips == 0 {
		b.WriteString("_No trips match the selected filters._\n")
		return b.String()
	}

	b.WriteString("## Most frequent times of travel\n\n")
	fmt.Fprintf(&b, "- Month: %s\n", MonthName(r.Time.Month))
	fmt.Fprintf(&b, "- Day of the week: %s\n", r.Time.Day)
	fmt.Fprintf(&b, "- Start hour: %d\n\n", r.Time.Hour)

	b.WriteString("## Most popular stations and trip\n\n")
	fmt.Fprintf(&b, "- Start station: %s\n", r.Stations.Start)
	fmt.Fprintf(&b, "- End station: %s\n", r.Stations.End)
	fmt.Fprintf(&b, "- Trip: %s → %s (%d trips)\n\n", r.Stations.Pair.Start, r.Stations.Pair.End, r.Stations.Pair.Count)

	b.WriteString("## Trip duration\n\n")
	fmt.Fprintf(&b, "- Total: %s\n", FormatSeconds(r.Duration.Total))
	fmt.Fprintf(&b, "- Average: %s\n\n", FormatSeconds(r.Duration.Mean))

	b.WriteString("## Users\n\n")
	writeCounts(&b, "User Type", r.Users.UserTypes)
	if r.Users.HasGender {
		writeCounts(&b, "Gender", r.Users.Genders)
	} else {
		b.WriteString("_" + NoGenderMessage + "_\n\n")
	}
	switch by := r.Users.BirthYears; {
	case by == nil:
		b.WriteString("_" + NoBirthYearMessage + "_\n")
	case by.N == 0:
		b.WriteString("_No birth year values recorded for this selection._\n")
	default:
		fmt.Fprintf(&b, "- Earliest birth year: %.0f\n", by.Earliest)
		fmt.Fprintf(&b, "- Most recent birth year: %.0f\n", by.Latest)
		fmt.Fprintf(&b, "- Average birth year: %.2f\n", by.Mean)
		fmt.Fprintf(&b, "- Most common birth year: %.0f\n", by.Common)
	}
	return b.String()
}

func writeCounts(b *strings.Builder, label string, counts []Count) {
	fmt.Fprintf(b, "| %s | Count |\n|---|---:|\n", label)
	for _, c := range counts {
		fmt.Fprintf(b, "| %s | %s |\n", c.Value, humanize.Comma(int64(c.Count)))
	}
	b.WriteString("\n")
}
