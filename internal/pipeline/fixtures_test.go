package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go-bikeshare/internal/model"
)

// Chicago-style export with gender and birth year
const chicagoCSV = `,Start Time,End Time,Trip Duration,Start Station,End Station,User Type,Gender,Birth Year
1,2017-01-01 09:07:57,2017-01-01 09:20:53,776,Canal St & Adams St,Clark St & Randolph St,Subscriber,Male,1990.0
2,2017-01-02 09:30:00,2017-01-02 09:45:00,900,Canal St & Adams St,Clark St & Randolph St,Subscriber,Female,1990.0
3,2017-03-06 17:10:00,2017-03-06 17:30:00,1200,Streeter Dr & Grand Ave,Lake Shore Dr & Monroe St,Customer,,
4,2017-03-05 17:45:00,2017-03-05 18:00:00,300,Streeter Dr & Grand Ave,Canal St & Adams St,Customer,,1985.0
5,2017-06-12 08:00:00,2017-06-12 08:10:00,600,Clark St & Randolph St,Canal St & Adams St,Subscriber,Male,1992.0
6,2017-06-13 17:05:00,2017-06-13 17:20:00,424,Canal St & Adams St,Streeter Dr & Grand Ave,Subscriber,Male,1985.0
`

// Washington-style export without gender and birth year
const washingtonCSV = `,Start Time,End Time,Trip Duration,Start Station,End Station,User Type
1,2017-06-21 08:36:34,2017-06-21 08:44:43,489.066,14th & Belmont St NW,15th & K St NW,Subscriber
2,2017-03-11 10:40:00,2017-03-11 10:46:00,402.549,Yuma St & Tenley Circle NW,Connecticut Ave & Yuma St NW,Subscriber
3,2017-05-30 01:02:59,2017-05-30 01:13:37,637.251,17th St & Massachusetts Ave NW,5th & K St NW,Customer
`

// readFixture parses csv text into a table
func readFixture(t *testing.T, csvText, city string) *model.Table {
	t.Helper()
	table, err := ReadTable(context.Background(), strings.NewReader(csvText), city)
	if err != nil {
		t.Fatalf("ReadTable failed: %v", err)
	}
	return table
}

// writeDataDir writes the fixtures to a temp dir and returns a loader over it
func writeDataDir(t *testing.T) *Loader {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"chicago.csv":    chicagoCSV,
		"washington.csv": washingtonCSV,
	}
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0644); err != nil {
			t.Fatalf("write fixture: %v", err)
		}
	}
	return NewLoader(dir, nil)
}

// tableOf builds a table directly from records
func tableOf(schema model.Schema, rows ...model.TripRecord) *model.Table {
	return &model.Table{City: model.CityChicago, Schema: schema, Rows: rows}
}

func at(s string) time.Time {
	ts, err := time.Parse(time.DateTime, s)
	if err != nil {
		panic(err)
	}
	return ts
}

func year(y int) *int { return &y }

func fullSchema() model.Schema {
	return model.NewSchema([]string{
		model.ColStartTime, model.ColTripDuration, model.ColStartStation, model.ColEndStation,
		model.ColUserType, model.ColGender, model.ColBirthYear,
	})
}
