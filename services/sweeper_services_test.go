package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"judge/models"
)

func newTimedAttempt(id string, createdAt time.Time, timeLimit int) *models.Attempt {
	return &models.Attempt{
		ID:        id,
		Status:    models.StatusInProgress,
		CreatedAt: createdAt,
		Part: &models.ProblemPart{
			Problem: &models.Problem{TimeLimit: timeLimit},
		},
	}
}

func fixedNow(now time.Time) func() time.Time {
	return func() time.Time { return now }
}

func TestSweepTimesOutExpiredAttempt(t *testing.T) {
	t0 := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	attempt := newTimedAttempt("a1", t0, 60)
	store := newFakeStore(attempt)

	sweeper := &Sweeper{Store: store, Now: fixedNow(t0.Add(61 * time.Second))}
	swept, err := sweeper.Sweep()
	require.NoError(t, err)
	assert.Equal(t, 1, swept)

	saved := store.attempts["a1"]
	assert.Equal(t, models.StatusIncorrect, saved.Status)
	require.NotNil(t, saved.Reason)
	assert.Equal(t, models.ReasonTimeout, *saved.Reason)
	assert.Equal(t, 0, saved.Score)
}

func TestSweepBoundaryExactlyAtLimit(t *testing.T) {
	t0 := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

	// Exactly at the limit times out.
	atLimit := newTimedAttempt("at-limit", t0, 60)
	store := newFakeStore(atLimit)
	sweeper := &Sweeper{Store: store, Now: fixedNow(t0.Add(60 * time.Second))}
	swept, err := sweeper.Sweep()
	require.NoError(t, err)
	assert.Equal(t, 1, swept)
	assert.Equal(t, models.StatusIncorrect, store.attempts["at-limit"].Status)

	// One second under does not.
	underLimit := newTimedAttempt("under-limit", t0, 60)
	store = newFakeStore(underLimit)
	sweeper = &Sweeper{Store: store, Now: fixedNow(t0.Add(59 * time.Second))}
	swept, err = sweeper.Sweep()
	require.NoError(t, err)
	assert.Equal(t, 0, swept)
	assert.Equal(t, models.StatusInProgress, store.attempts["under-limit"].Status)
	assert.Nil(t, store.attempts["under-limit"].Reason)
}

func TestSweepIsIdempotent(t *testing.T) {
	t0 := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	store := newFakeStore(
		newTimedAttempt("expired", t0, 30),
		newTimedAttempt("fresh", t0.Add(5*time.Minute), 600),
	)

	sweeper := &Sweeper{Store: store, Now: fixedNow(t0.Add(10 * time.Minute))}
	swept, err := sweeper.Sweep()
	require.NoError(t, err)
	assert.Equal(t, 1, swept)
	savesAfterFirst := store.saves

	// A second run right away finds nothing to do.
	swept, err = sweeper.Sweep()
	require.NoError(t, err)
	assert.Equal(t, 0, swept)
	assert.Equal(t, savesAfterFirst, store.saves)
}

func TestSweepNeverTouchesResolvedAttempts(t *testing.T) {
	t0 := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	resolved := newTimedAttempt("resolved", t0, 30)
	resolved.Resolve(models.StatusCorrect, models.ReasonAccepted, 10)

	store := newFakeStore(resolved)
	sweeper := &Sweeper{Store: store, Now: fixedNow(t0.Add(time.Hour))}
	swept, err := sweeper.Sweep()
	require.NoError(t, err)
	assert.Equal(t, 0, swept)
	assert.Equal(t, models.StatusCorrect, store.attempts["resolved"].Status)
	assert.Equal(t, 10, store.attempts["resolved"].Score)
}

func TestTimePassedIsClampedToTimeLimit(t *testing.T) {
	t0 := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	attempt := newTimedAttempt("a1", t0, 60)

	assert.Equal(t, 0, attempt.TimePassed(t0))
	assert.Equal(t, 42, attempt.TimePassed(t0.Add(42*time.Second)))
	assert.Equal(t, 60, attempt.TimePassed(t0.Add(60*time.Second)))
	assert.Equal(t, 60, attempt.TimePassed(t0.Add(2*time.Hour)))
}
