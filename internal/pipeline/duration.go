package pipeline

import (
	"go-bikeshare/internal/model"
)

// TotalDuration sums trip durations in seconds; zero for an empty table.
func TotalDuration(table *model.Table) float64 {
	var total float64
	for _, rec := range table.Rows {
		total += rec.Duration
	}
	return total
}

// MeanDuration averages trip durations in seconds.
// It returns model.ErrEmptyInput for an empty table.
func MeanDuration(table *model.Table) (float64, error) {
	n := table.Len()
	if n == 0 {
		return 0, model.ErrEmptyInput
	}
	return TotalDuration(table) / float64(n), nil
}

// DurationStats computes total and mean trip duration. On an empty table
// the summary carries a zero total and the error is model.ErrEmptyInput.
// Negative durations are not corrected.
func DurationStats(table *model.Table) (model.DurationSummary, error) {
	summary := model.DurationSummary{TotalSeconds: TotalDuration(table)}
	mean, err := MeanDuration(table)
	if err != nil {
		return summary, err
	}
	summary.MeanSeconds = mean
	return summary, nil
}
