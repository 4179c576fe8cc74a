package services

import (
	"errors"
	"time"

	"judge/metrics"
	"judge/models"
)

// Sweeper enforces per-problem time limits on attempts the contestant never
// finished submitting. It only ever times attempts out; it never scores.
type Sweeper struct {
	Store AttemptStore
	Now   func() time.Time
}

func NewSweeper(store AttemptStore) *Sweeper {
	return &Sweeper{Store: store, Now: time.Now}
}

// Sweep scans every in-progress attempt and resolves those that have reached
// their problem's time limit as Incorrect / Time Limit Exceeded. An attempt
// exactly at the limit is timed out. The sweep is idempotent: a timed-out
// attempt is no longer in progress, so a second run finds nothing to do.
// A persistence failure on one attempt does not stop the rest of the sweep.
// Returns the number of attempts timed out.
func (s *Sweeper) Sweep() (int, error) {
	start := time.Now()
	defer func() {
		metrics.SweepDuration.Observe(time.Since(start).Seconds())
	}()

	attempts, err := s.Store.ListInProgress()
	if err != nil {
		return 0, err
	}

	now := s.Now()
	swept := 0
	var errs []error
	for i := range attempts {
		attempt := &attempts[i]
		if !attempt.TimedOut(now) {
			continue
		}
		attempt.Resolve(models.StatusIncorrect, models.ReasonTimeout, 0)
		if err := s.Store.Save(attempt); err != nil {
			errs = append(errs, err)
			continue
		}
		metrics.AttemptsTimedOut.Inc()
		swept++
	}

	return swept, errors.Join(errs...)
}
