package trips

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/bikeshare/bikeshare/internal/config"
)

// All disables a month or day filter.
const All = "all"

// Months are the accepted month answers besides "all" (January..June).
var Months = []string{"1", "2", "3", "4", "5", "6"}

// Days are the accepted weekday answers besides "all".
var Days = []string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}

// Filter is one validated (city, month, day) selection. The zero value is
// not valid; build one with NewFilter or the Parse functions.
type Filter struct {
	City  string
	Month string
	Day   string
}

// NewFilter validates and normalises all three selections.
func NewFilter(city, month, day string) (Filter, error) {
	c, err := ParseCity(city)
	if err != nil {
		return Filter{}, err
	}
	m, err := ParseMonth(month)
	if err != nil {
		return Filter{}, err
	}
	d, err := ParseDay(day)
	if err != nil {
		return Filter{}, err
	}
	return Filter{City: c, Month: m, Day: d}, nil
}

// ParseCity accepts one of the supported city names, case-insensitively.
func ParseCity(s string) (string, error) {
	v := normalize(s)
	if slices.Contains(config.Cities(), v) {
		return v, nil
	}
	return "", fmt.Errorf("invalid city %q: choose %s", s, strings.Join(config.Cities(), ", "))
}

// ParseMonth accepts "all" or a month number from 1 to 6.
func ParseMonth(s string) (string, error) {
	v := normalize(s)
	if v == All || slices.Contains(Months, v) {
		return v, nil
	}
	return "", fmt.Errorf("invalid month %q: choose all or 1-6", s)
}

// ParseDay accepts "all" or a weekday name, case-insensitively.
func ParseDay(s string) (string, error) {
	v := normalize(s)
	if v == All || slices.Contains(Days, v) {
		return v, nil
	}
	return "", fmt.Errorf("invalid day %q: choose all or a weekday name", s)
}

// MonthNumber returns the selected month, or 0 when every month is selected.
func (f Filter) MonthNumber() int {
	if f.Month == All {
		return 0
	}
	n, _ := strconv.Atoi(f.Month)
	return n
}

// DayName returns the selected weekday in title case ("Monday"), or "" when
// every day is selected.
func (f Filter) DayName() string {
	if f.Day == All {
		return ""
	}
	return strings.ToUpper(f.Day[:1]) + f.Day[1:]
}

func (f Filter) String() string {
	return fmt.Sprintf("city: %s | month: %s | day: %s", f.City, f.Month, f.Day)
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
