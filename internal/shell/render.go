package shell

import (
	"fmt"
	"go-bikeshare/internal/model"
	"go-bikeshare/internal/pipeline"
	"go-bikeshare/pkg/utils"
	"io"
	"strings"
	"text/tabwriter"
	"time"
)

const rule = "----------------------------------------"

// RenderReport writes a human readable report to w
func RenderReport(w io.Writer, report *model.Report) {
	timing := make(map[string]time.Duration, len(report.Stages))
	for _, s := range report.Stages {
		timing[s.Stage] = s.Duration
	}
	footer := func(stage string) {
		fmt.Fprintf(w, "\nThis took %.2f seconds.\n%s\n", timing[stage].Seconds(), rule)
	}
	noData := func() { fmt.Fprintln(w, "No data available for the selected filters.") }

	fmt.Fprintf(w, "\nCalculating The Most Frequent Times of Travel...\n\n")
	if t := report.Time; t != nil {
		renderFrequencies(w, "month", t.Months, true)
		renderFrequencies(w, "day of week", t.Days, true)
		renderFrequencies(w, "start hour", t.Hours, false)
	} else {
		noData()
	}
	footer(pipeline.StageTime)

	fmt.Fprintf(w, "\nCalculating The Most Popular Stations and Trip...\n\n")
	if s := report.Stations; s != nil {
		renderFrequencies(w, "start station", s.StartStations, false)
		renderFrequencies(w, "end station", s.EndStations, false)
		for _, trip := range s.Trips {
			fmt.Fprintf(w, "The most common combination of stations is: %s to %s with %d trips.\n", trip.StartStation, trip.EndStation, trip.Count)
		}
	} else {
		noData()
	}
	footer(pipeline.StageStations)

	fmt.Fprintf(w, "\nCalculating Trip Duration...\n\n")
	if d := report.Duration; d != nil {
		fmt.Fprintf(w, "The total travel time is: %.2f hours\n", d.TotalHours())
		fmt.Fprintf(w, "The mean travel time is: %.2f minutes\n", d.MeanMinutes())
	} else {
		noData()
	}
	footer(pipeline.StageDuration)

	fmt.Fprintf(w, "\nCalculating User Stats...\n\n")
	renderUsers(w, report.Users)
	footer(pipeline.StageUsers)
}

func renderFrequencies(w io.Writer, title string, entries []model.Frequency, titleCase bool) {
	for _, f := range entries {
		value := f.Value
		if titleCase {
			value = utils.Title(value)
		}
		fmt.Fprintf(w, "The most common %s is: %s with %d trips.\n", title, value, f.Count)
	}
}

func renderUsers(w io.Writer, users model.DemographicsReport) {
	renderCounts(w, "User Type", users.UserTypes)

	if users.Gender.Available {
		renderCounts(w, "Gender", users.Gender.Counts)
	} else {
		fmt.Fprintln(w, "Gender data is not available for this city.")
	}

	by := users.BirthYear
	switch {
	case !by.Available:
		fmt.Fprintln(w, "Birth year data is not available for this city.")
	case by.Empty:
		fmt.Fprintln(w, "No birth year data for the selected filters.")
	default:
		fmt.Fprintf(w, "The earliest year of birth is: %d\n", by.Earliest)
		fmt.Fprintf(w, "The most recent year of birth is: %d\n", by.MostRecent)
		fmt.Fprintf(w, "The most common year of birth is: %d\n", by.MostCommon)
	}
}

func renderCounts(w io.Writer, title string, counts []model.CategoryCount) {
	if len(counts) == 0 {
		fmt.Fprintf(w, "No %s data for the selected filters.\n", strings.ToLower(title))
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\tCount\n", title)
	for _, c := range counts {
		fmt.Fprintf(tw, "%s\t%d\n", c.Value, c.Count)
	}
	tw.Flush()
	fmt.Fprintln(w)
}

// RenderRows writes trip records as an aligned table
func RenderRows(w io.Writer, rows []model.TripRecord) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(pipeline.RowHeader, "\t"))
	for _, rec := range rows {
		fmt.Fprintln(tw, strings.Join(pipeline.RowValues(rec), "\t"))
	}
	tw.Flush()
}
