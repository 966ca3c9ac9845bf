// Package tripstest provides small city datasets for tests.
package tripstest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bikeshare/bikeshare/internal/config"
)

// Chicago has every optional column plus the unnamed index column found in
// the real files. Rows 0 and 3 are Mondays in March; row 1 is a Tuesday in
// March; row 2 is a Monday in January; row 4 is a Monday in June.
const Chicago = `,Start Time,End Time,Trip Duration,Start Station,End Station,User Type,Gender,Birth Year
1423854,2017-03-06 08:00:00,2017-03-06 08:10:00,600,Canal St,Clark St,Subscriber,Male,1990
955915,2017-03-07 09:00:00,2017-03-07 09:05:00,300,Canal St,State St,Subscriber,Female,1985
9031,2017-01-02 17:30:00,2017-01-02 17:50:00,1200,Lake St,Canal St,Customer,,
304487,2017-03-13 08:15:00,2017-03-13 08:22:30,450,Clark St,Canal St,Subscriber,Male,1992
45207,2017-06-05 17:05:00,2017-06-05 17:18:20,800,Canal St,Clark St,Customer,,1980
`

// Washington lacks the Gender and Birth Year columns, like the real file.
const Washington = `Start Time,End Time,Trip Duration,Start Station,End Station,User Type
2017-03-06 07:00:00,2017-03-06 07:08:20,500.5,A St,B St,Subscriber
2017-03-06 07:30:00,2017-03-06 07:41:40,700,B St,A St,Customer
2017-04-04 18:00:00,2017-04-04 18:05:00,300,A St,B St,Subscriber
`

// NewYorkCity has a row with an empty Trip Duration.
const NewYorkCity = `Start Time,End Time,Trip Duration,Start Station,End Station,User Type,Gender,Birth Year
2017-02-01 12:00:00,2017-02-01 12:10:00,600,W 52 St,E 47 St,Subscriber,Female,1970
2017-02-02 12:00:00,2017-02-02 12:10:00,,E 47 St,W 52 St,Subscriber,Male,1971
`

// Config writes the three datasets into a temporary directory and returns
// a config pointing at it.
func Config(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"chicago.csv":       Chicago,
		"washington.csv":    Washington,
		"new_york_city.csv": NewYorkCity,
	}
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	cfg := config.DefaultConfig()
	cfg.DataDir = dir
	return cfg
}
