package pipeline

import (
	"context"
	"errors"
	"fmt"
	"go-bikeshare/internal/model"
	"go-bikeshare/internal/store"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Stage names
const (
	StageLoad     = "load"
	StageTime     = "time_stats"
	StageStations = "station_stats"
	StageDuration = "duration_stats"
	StageUsers    = "user_stats"
)

// Runner loads, filters and aggregates a dataset for one set of criteria
type Runner struct {
	Loader *Loader
}

// NewRunner creates a runner backed by loader
func NewRunner(loader *Loader) *Runner {
	return &Runner{Loader: loader}
}

// ------------------- Pipeline Runner -------------------

// Run executes the full analysis and returns the report together with the
// filtered table for raw row inspection. Sections with no data are left
// out of the report and noted in its warnings.
func (r *Runner) Run(ctx context.Context, criteria model.FilterCriteria) (*model.Report, *model.Table, error) {
	if err := criteria.Validate(); err != nil {
		return nil, nil, err
	}

	runID := uuid.New().String()
	tracker := NewRunTracker(runID, criteria)
	report := &model.Report{RunID: runID, Criteria: criteria}

	if store.Ready() {
		if err := store.SaveRun(runID, criteria); err != nil {
			logrus.WithError(err).Warn("failed to save run")
		}
	}

	table, err := r.run(ctx, tracker, report)
	if err != nil {
		tracker.Fail(err)
		return nil, nil, err
	}

	report.Stages = tracker.Stages
	report.GeneratedAt = time.Now().UTC()
	if store.Ready() {
		if err := store.SaveRunReport(runID, report); err != nil {
			err = fmt.Errorf("save run report: %w", err)
			tracker.Fail(err)
			return nil, nil, err
		}
	}
	tracker.SetStatus(model.RunCompleted)

	logrus.WithFields(logrus.Fields{
		"run_id":   runID,
		"rows":     report.RowCount,
		"warnings": len(report.Warnings),
	}).Info("analysis completed")
	return report, table, nil
}

func (r *Runner) run(ctx context.Context, tracker *RunTracker, report *model.Report) (*model.Table, error) {
	c := report.Criteria

	tracker.SetStatus(model.RunLoading)
	var table *model.Table
	err := tracker.Stage(StageLoad, func() error {
		var err error
		table, err = r.Loader.Load(ctx, c.City, c.Month, c.Day)
		return err
	})
	if err != nil {
		return nil, err
	}
	report.RowCount = table.Len()

	tracker.SetStatus(model.RunAggregating)

	// noData turns an empty-input error into a report warning
	noData := func(section string, err error) error {
		if errors.Is(err, model.ErrEmptyInput) {
			msg := fmt.Sprintf("%s: no data for %s", section, c)
			report.Warnings = append(report.Warnings, msg)
			tracker.Warn(msg)
			return nil
		}
		return err
	}

	stages := []struct {
		name string
		fn   func() error
	}{
		{StageTime, func() error {
			stats, err := TimeStats(table)
			report.Time = stats
			return noData(StageTime, err)
		}},
		{StageStations, func() error {
			stats, err := StationStats(table)
			report.Stations = stats
			return noData(StageStations, err)
		}},
		{StageDuration, func() error {
			summary, err := DurationStats(table)
			if err == nil {
				report.Duration = &summary
			}
			return noData(StageDuration, err)
		}},
		{StageUsers, func() error {
			users, err := UserStats(table)
			report.Users = users
			return noData(StageUsers, err)
		}},
	}

	for _, s := range stages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := tracker.Stage(s.name, s.fn); err != nil {
			return nil, err
		}
	}
	return table, nil
}
