package stats_test

import (
	"context"
	"math"
	"strings"
	"testing"

	"github.com/bikeshare/bikeshare/internal/stats"
	"github.com/bikeshare/bikeshare/internal/trips"
	"github.com/bikeshare/bikeshare/internal/trips/tripstest"
	"github.com/bikeshare/bikeshare/internal/tui"
)

func load(t *testing.T, city, month, day string) (trips.Filter, *trips.Table) {
	t.Helper()
	f, err := trips.NewFilter(city, month, day)
	if err != nil {
		t.Fatal(err)
	}
	table, err := trips.NewLoader(tripstest.Config(t), nil).Load(context.Background(), f)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return f, table
}

func TestMode(t *testing.T) {
	tests := []struct {
		name  string
		in    []string
		want  string
		wantN int
	}{
		{"single winner", []string{"a", "b", "b"}, "b", 2},
		{"tie goes to first seen", []string{"x", "y", "y", "x"}, "x", 2},
		{"skips empty", []string{"", "", "z"}, "z", 1},
		{"empty input", nil, "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, n := stats.Mode(tt.in, func(s string) bool { return s == "" })
			if got != tt.want || n != tt.wantN {
				t.Errorf("Mode = (%q, %d), want (%q, %d)", got, n, tt.want, tt.wantN)
			}
		})
	}
}

func TestComputeTime(t *testing.T) {
	_, table := load(t, "chicago", "all", "all")
	ts, err := stats.ComputeTime(table)
	if err != nil {
		t.Fatal(err)
	}
	want := stats.TimeStats{Month: 3, Day: "Monday", Hour: 8}
	if ts != want {
		t.Errorf("ComputeTime = %+v, want %+v", ts, want)
	}
}

func TestComputeStations(t *testing.T) {
	_, table := load(t, "chicago", "all", "all")
	ss, err := stats.ComputeStations(table)
	if err != nil {
		t.Fatal(err)
	}
	if ss.Start != "Canal St" {
		t.Errorf("Start = %q, want Canal St", ss.Start)
	}
	// Clark St and Canal St both end two trips; Clark St is seen first.
	if ss.End != "Clark St" {
		t.Errorf("End = %q, want Clark St", ss.End)
	}
	want := stats.Pair{Start: "Canal St", End: "Clark St", Count: 2}
	if ss.Pair != want {
		t.Errorf("Pair = %+v, want %+v", ss.Pair, want)
	}
}

func TestComputeDuration(t *testing.T) {
	t.Run("complete column", func(t *testing.T) {
		_, table := load(t, "chicago", "all", "all")
		ds, err := stats.ComputeDuration(table)
		if err != nil {
			t.Fatal(err)
		}
		if ds.Total != 3350 || ds.Mean != 670 {
			t.Errorf("ComputeDuration = %+v, want {3350 670}", ds)
		}
	})

	t.Run("fractional seconds", func(t *testing.T) {
		_, table := load(t, "washington", "all", "all")
		ds, err := stats.ComputeDuration(table)
		if err != nil {
			t.Fatal(err)
		}
		if ds.Total != 1500.5 {
			t.Errorf("Total = %v, want 1500.5", ds.Total)
		}
	})

	t.Run("missing value propagates", func(t *testing.T) {
		_, table := load(t, "new york city", "all", "all")
		ds, err := stats.ComputeDuration(table)
		if err != nil {
			t.Fatal(err)
		}
		if !math.IsNaN(ds.Total) || !math.IsNaN(ds.Mean) {
			t.Errorf("ComputeDuration = %+v, want NaN", ds)
		}
	})
}

func TestComputeUsers(t *testing.T) {
	t.Run("all columns", func(t *testing.T) {
		_, table := load(t, "chicago", "all", "all")
		us, err := stats.ComputeUsers(table)
		if err != nil {
			t.Fatal(err)
		}
		wantTypes := []stats.Count{{Value: "Customer", Count: 2}, {Value: "Subscriber", Count: 3}}
		if !equalCounts(us.UserTypes, wantTypes) {
			t.Errorf("UserTypes = %v, want %v", us.UserTypes, wantTypes)
		}
		wantGenders := []stats.Count{{Value: "Female", Count: 1}, {Value: "Male", Count: 2}}
		if !us.HasGender || !equalCounts(us.Genders, wantGenders) {
			t.Errorf("Genders = %v (has=%v), want %v", us.Genders, us.HasGender, wantGenders)
		}
		by := us.BirthYears
		if by == nil {
			t.Fatal("BirthYears is nil")
		}
		if by.N != 4 || by.Earliest != 1980 || by.Latest != 1992 || by.Mean != 1986.75 || by.Common != 1990 {
			t.Errorf("BirthYears = %+v", *by)
		}
	})

	t.Run("absent columns", func(t *testing.T) {
		_, table := load(t, "washington", "all", "all")
		us, err := stats.ComputeUsers(table)
		if err != nil {
			t.Fatal(err)
		}
		if us.HasGender || us.BirthYears != nil {
			t.Errorf("washington users = %+v, want no gender or birth years", us)
		}
	})

	t.Run("only missing birth years", func(t *testing.T) {
		_, table := load(t, "chicago", "1", "all")
		us, err := stats.ComputeUsers(table)
		if err != nil {
			t.Fatal(err)
		}
		if us.BirthYears == nil || us.BirthYears.N != 0 {
			t.Errorf("BirthYears = %+v, want N=0", us.BirthYears)
		}
		if len(us.Genders) != 0 {
			t.Errorf("Genders = %v, want none", us.Genders)
		}
	})
}

func equalCounts(a, b []stats.Count) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestReporterAll(t *testing.T) {
	_, table := load(t, "chicago", "3", "monday")
	out := tui.NewBufferIO()
	if err := stats.NewReporter(out).All(table); err != nil {
		t.Fatal(err)
	}
	got := out.Output()

	for _, want := range []string{
		"Calculating The Most Frequent Times of Travel...",
		"The most popular month: 3 (March)",
		"The most popular day of the week: Monday",
		"The most popular start hour: 8",
		"Calculating The Most Popular Stations and Trip...",
		"Most commonly used start station: Canal St",
		"Calculating Trip Duration...",
		"Total travel time: 1,050 seconds (17m 30s)",
		"Average travel time: 525 seconds (8m 45s)",
		"Calculating User Stats...",
		"Subscriber  2",
		"Male    2",
		"Earliest birth year: 1990",
		"Most recent birth year: 1992",
		"Average birth year: 1991.00",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q\n%s", want, got)
		}
	}
	if n := strings.Count(got, "This took "); n != 4 {
		t.Errorf("timing lines = %d, want 4", n)
	}

	sections := []string{"Times of Travel", "Stations and Trip", "Trip Duration", "User Stats"}
	last := -1
	for _, s := range sections {
		i := strings.Index(got, s)
		if i <= last {
			t.Errorf("section %q out of order", s)
		}
		last = i
	}
}

func TestReporterAbsentColumns(t *testing.T) {
	_, table := load(t, "washington", "all", "all")
	out := tui.NewBufferIO()
	if err := stats.NewReporter(out).Users(table); err != nil {
		t.Fatal(err)
	}
	got := out.Output()
	for _, want := range []string{stats.NoGenderMessage, stats.NoBirthYearMessage, "Customer", "Subscriber"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q\n%s", want, got)
		}
	}
}

func TestFormatSeconds(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{45, "45 seconds (45s)"},
		{670, "670 seconds (11m 10s)"},
		{3723.5, "3,723.5 seconds (1h 2m 4s)"},
		{90061, "90,061 seconds (1d 1h 1m 1s)"},
		{math.NaN(), "NaN seconds"},
	}
	for _, tt := range tests {
		if got := stats.FormatSeconds(tt.in); got != tt.want {
			t.Errorf("FormatSeconds(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestReportMarkdown(t *testing.T) {
	f, table := load(t, "washington", "all", "all")
	r, err := stats.Compute(f, table)
	if err != nil {
		t.Fatal(err)
	}
	md := r.Markdown()
	for _, want := range []string{
		"# Bikeshare report: washington",
		"trips: **3**",
		"- Month: March",
		"| Subscriber | 2 |",
		stats.NoGenderMessage,
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q\n%s", want, md)
		}
	}

	f, empty := load(t, "chicago", "2", "all")
	r, err = stats.Compute(f, empty)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(r.Markdown(), "No trips match") {
		t.Errorf("empty report = %q", r.Markdown())
	}
}
