package pipeline

import (
	"cmp"
	"fmt"
	"go-bikeshare/internal/model"
	"slices"
	"strconv"
)

// Groupable columns
const (
	ColumnMonth        = "month"
	ColumnDayOfWeek    = "day_of_week"
	ColumnHour         = "start_hour"
	ColumnStartStation = "start_station"
	ColumnEndStation   = "end_station"
	ColumnUserType     = "user_type"
	ColumnGender       = "gender"
)

// valueCount is a distinct value and how often it occurred
type valueCount[K comparable] struct {
	value K
	count int
}

// countValues counts every distinct key in one pass, keeping first-seen
// order. Rows for which key reports false are treated as missing.
func countValues[K comparable](rows []model.TripRecord, key func(model.TripRecord) (K, bool)) []valueCount[K] {
	pos := make(map[K]int)
	var counts []valueCount[K]
	for _, rec := range rows {
		k, ok := key(rec)
		if !ok {
			continue
		}
		if i, seen := pos[k]; seen {
			counts[i].count++
			continue
		}
		pos[k] = len(counts)
		counts = append(counts, valueCount[K]{value: k, count: 1})
	}
	return counts
}

// mostCommonBy returns every key tied for the maximum count, sorted by compare.
func mostCommonBy[K comparable](rows []model.TripRecord, key func(model.TripRecord) (K, bool), compare func(a, b K) int) ([]valueCount[K], error) {
	counts := countValues(rows, key)
	if len(counts) == 0 {
		return nil, model.ErrEmptyInput
	}

	maxCount := 0
	for _, vc := range counts {
		maxCount = max(maxCount, vc.count)
	}

	tied := make([]valueCount[K], 0, 1)
	for _, vc := range counts {
		if vc.count == maxCount {
			tied = append(tied, vc)
		}
	}
	slices.SortFunc(tied, func(a, b valueCount[K]) int { return compare(a.value, b.value) })
	return tied, nil
}

// textKey reads a text column; empty values count as missing
func textKey(get func(model.TripRecord) string) func(model.TripRecord) (string, bool) {
	return func(rec model.TripRecord) (string, bool) {
		v := get(rec)
		return v, v != ""
	}
}

// MostCommon returns every value of column that shares the maximum
// occurrence count, sorted ascending (numerically for the start hour).
// It returns model.ErrEmptyInput when there is nothing to count.
func MostCommon(table *model.Table, column string) (model.FrequencyResult, error) {
	result := model.FrequencyResult{Column: column}

	if column == ColumnHour {
		tied, err := mostCommonBy(table.Rows, func(rec model.TripRecord) (int, bool) {
			return rec.Hour(), true
		}, cmp.Compare[int])
		if err != nil {
			return result, err
		}
		for _, vc := range tied {
			result.Entries = append(result.Entries, model.Frequency{Value: strconv.Itoa(vc.value), Count: vc.count})
		}
		return result, nil
	}

	get, err := textColumn(table.Schema, column)
	if err != nil {
		return result, err
	}
	tied, err := mostCommonBy(table.Rows, textKey(get), cmp.Compare[string])
	if err != nil {
		return result, err
	}
	for _, vc := range tied {
		result.Entries = append(result.Entries, model.Frequency{Value: vc.value, Count: vc.count})
	}
	return result, nil
}

// MostCommonTrip returns every (start station, end station) pair tied for
// the maximum count, sorted by start station then end station.
func MostCommonTrip(table *model.Table) ([]model.TripFrequency, error) {
	type pair struct{ start, end string }

	tied, err := mostCommonBy(table.Rows, func(rec model.TripRecord) (pair, bool) {
		return pair{rec.StartStation, rec.EndStation}, rec.StartStation != "" && rec.EndStation != ""
	}, func(a, b pair) int {
		return cmp.Or(cmp.Compare(a.start, b.start), cmp.Compare(a.end, b.end))
	})
	if err != nil {
		return nil, err
	}

	trips := make([]model.TripFrequency, 0, len(tied))
	for _, vc := range tied {
		trips = append(trips, model.TripFrequency{StartStation: vc.value.start, EndStation: vc.value.end, Count: vc.count})
	}
	return trips, nil
}

// textColumn resolves a text column accessor, checking optional columns
// against the schema.
func textColumn(schema model.Schema, column string) (func(model.TripRecord) string, error) {
	switch column {
	case ColumnMonth:
		return model.TripRecord.Month, nil
	case ColumnDayOfWeek:
		return model.TripRecord.DayOfWeek, nil
	case ColumnStartStation:
		return func(r model.TripRecord) string { return r.StartStation }, nil
	case ColumnEndStation:
		return func(r model.TripRecord) string { return r.EndStation }, nil
	case ColumnUserType:
		return func(r model.TripRecord) string { return r.UserType }, nil
	case ColumnGender:
		if !schema.HasGender {
			return nil, fmt.Errorf("%w: %s", model.ErrMissingColumn, model.ColGender)
		}
		return func(r model.TripRecord) string { return r.Gender }, nil
	}
	return nil, fmt.Errorf("unknown column: %s", column)
}

// ------------------- Statistic bundles -------------------

// TimeStats computes the most frequent month, day of week and start hour
func TimeStats(table *model.Table) (*model.TimeStats, error) {
	stats := &model.TimeStats{}
	for _, target := range []struct {
		column string
		dst    *[]model.Frequency
	}{
		{ColumnMonth, &stats.Months},
		{ColumnDayOfWeek, &stats.Days},
		{ColumnHour, &stats.Hours},
	} {
		res, err := MostCommon(table, target.column)
		if err != nil {
			return nil, fmt.Errorf("most common %s: %w", target.column, err)
		}
		*target.dst = res.Entries
	}
	return stats, nil
}

// StationStats computes the most popular start station, end station and trip
func StationStats(table *model.Table) (*model.StationStats, error) {
	starts, err := MostCommon(table, ColumnStartStation)
	if err != nil {
		return nil, fmt.Errorf("most common start station: %w", err)
	}
	ends, err := MostCommon(table, ColumnEndStation)
	if err != nil {
		return nil, fmt.Errorf("most common end station: %w", err)
	}
	trips, err := MostCommonTrip(table)
	if err != nil {
		return nil, fmt.Errorf("most common trip: %w", err)
	}
	return &model.StationStats{
		StartStations: starts.Entries,
		EndStations:   ends.Entries,
		Trips:         trips,
	}, nil
}
