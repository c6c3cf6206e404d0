package pipeline

import (
	"fmt"
	"go-bikeshare/internal/model"
	"slices"
)

// CountValues counts each distinct non-empty value of a text column,
// ordered by descending count; ties keep first-seen order.
func CountValues(table *model.Table, column string) ([]model.CategoryCount, error) {
	get, err := textColumn(table.Schema, column)
	if err != nil {
		return nil, err
	}

	counts := countValues(table.Rows, textKey(get))
	out := make([]model.CategoryCount, 0, len(counts))
	for _, vc := range counts {
		out = append(out, model.CategoryCount{Value: vc.value, Count: vc.count})
	}
	slices.SortStableFunc(out, func(a, b model.CategoryCount) int { return b.Count - a.Count })
	return out, nil
}

// BirthYearStats computes earliest, most recent and most common birth
// year, dropping rows with a missing year. Ties for the mode resolve to
// the smallest year. A table without the column yields an unavailable
// section; a column with no values yields model.ErrEmptyInput.
func BirthYearStats(table *model.Table) (model.BirthYearStats, error) {
	if !table.Schema.HasBirthYear {
		return model.BirthYearStats{}, nil
	}
	stats := model.BirthYearStats{Available: true}

	counts := countValues(table.Rows, func(rec model.TripRecord) (int, bool) {
		if rec.BirthYear == nil {
			return 0, false
		}
		return *rec.BirthYear, true
	})
	if len(counts) == 0 {
		stats.Empty = true
		return stats, model.ErrEmptyInput
	}

	first := counts[0]
	stats.Earliest, stats.MostRecent = first.value, first.value
	mode := first
	for _, vc := range counts[1:] {
		stats.Earliest = min(stats.Earliest, vc.value)
		stats.MostRecent = max(stats.MostRecent, vc.value)
		if vc.count > mode.count || (vc.count == mode.count && vc.value < mode.value) {
			mode = vc
		}
	}
	stats.MostCommon = mode.value
	return stats, nil
}

// UserStats builds the demographics report. User type counts are always
// present. Gender and birth year sections are marked unavailable when
// the dataset has no such column.
//
// If the birth year column exists but holds no values, the returned
// report is complete apart from that section and the error wraps
// model.ErrEmptyInput.
func UserStats(table *model.Table) (model.DemographicsReport, error) {
	var report model.DemographicsReport

	userTypes, err := CountValues(table, ColumnUserType)
	if err != nil {
		return report, err
	}
	report.UserTypes = userTypes

	if table.Schema.HasGender {
		genders, err := CountValues(table, ColumnGender)
		if err != nil {
			return report, err
		}
		report.Gender = model.Breakdown{Available: true, Counts: genders}
	}

	report.BirthYear, err = BirthYearStats(table)
	if err != nil {
		return report, fmt.Errorf("birth year: %w", err)
	}
	return report, nil
}
