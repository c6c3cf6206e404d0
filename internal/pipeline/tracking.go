package pipeline

import (
	"go-bikeshare/internal/model"
	"go-bikeshare/internal/store"
	"time"

	"github.com/sirupsen/logrus"
)

// RunTracker records stage timings and status changes for one run
type RunTracker struct {
	RunID  string
	Stages []model.StageTiming
	log    *logrus.Entry
}

// NewRunTracker creates a tracker for runID
func NewRunTracker(runID string, criteria model.FilterCriteria) *RunTracker {
	return &RunTracker{
		RunID: runID,
		log: logrus.WithFields(logrus.Fields{
			"run_id": runID,
			"city":   criteria.City,
			"month":  criteria.Month,
			"day":    criteria.Day,
		}),
	}
}

// Stage times fn and records it under name
func (t *RunTracker) Stage(name string, fn func() error) error {
	start := time.Now()
	t.log.WithField("stage", name).Debug("stage started")

	err := fn()

	elapsed := time.Since(start)
	t.Stages = append(t.Stages, model.StageTiming{Stage: name, Duration: elapsed})
	entry := t.log.WithFields(logrus.Fields{"stage": name, "duration_ms": elapsed.Milliseconds()})
	if err != nil {
		entry.WithError(err).Warn("stage finished with error")
	} else {
		entry.Debug("stage completed")
	}
	return err
}

// SetStatus records a status change in the run store, when one is open
func (t *RunTracker) SetStatus(status string) {
	t.log.WithField("status", status).Debug("run status")
	if !store.Ready() {
		return
	}
	if err := store.UpdateRunStatus(t.RunID, status); err != nil {
		t.log.WithError(err).Warn("failed to update run status")
	}
}

// Fail records err against the run
func (t *RunTracker) Fail(err error) {
	t.log.WithError(err).Error("run failed")
	t.SetStatus(model.RunFailed)
	if store.Ready() {
		if e := store.SaveRunError(t.RunID, err); e != nil {
			t.log.WithError(e).Warn("failed to save run error")
		}
	}
}

// Warn records a recoverable condition
func (t *RunTracker) Warn(msg string) {
	t.log.Warn(msg)
}
