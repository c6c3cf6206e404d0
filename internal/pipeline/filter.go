package pipeline

import (
	"fmt"
	"go-bikeshare/internal/model"
)

// Filter returns a new table holding the rows whose derived month and
// day-of-week match. "all" disables the corresponding restriction. The
// input table is never modified.
func Filter(table *model.Table, month, day string) (*model.Table, error) {
	if table == nil {
		return nil, fmt.Errorf("filter: %w: nil table", model.ErrEmptyInput)
	}
	month, day = model.Normalize(month), model.Normalize(day)
	if !model.IsMonth(month) {
		return nil, fmt.Errorf("%w: month %q", model.ErrInvalidFilter, month)
	}
	if !model.IsDay(day) {
		return nil, fmt.Errorf("%w: day %q", model.ErrInvalidFilter, day)
	}

	// Single pass: a row passes if it matches every active restriction
	rows := make([]model.TripRecord, 0, table.Len())
	for _, rec := range table.Rows {
		if month != model.All && rec.Month() != month {
			continue
		}
		if day != model.All && rec.DayOfWeek() != day {
			continue
		}
		rows = append(rows, rec)
	}

	return table.Derive(rows), nil
}

// FilterCriteria applies the month and day of c to table
func FilterCriteria(table *model.Table, c model.FilterCriteria) (*model.Table, error) {
	return Filter(table, c.Month, c.Day)
}
