package services

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"judge/models"
)

// fakeAttemptStore is an in-memory AttemptStore for scorer and sweeper tests
type fakeAttemptStore struct {
	attempts map[string]*models.Attempt
	saves    int
	failSave bool
}

func newFakeStore(attempts ...*models.Attempt) *fakeAttemptStore {
	store := &fakeAttemptStore{attempts: make(map[string]*models.Attempt)}
	for _, attempt := range attempts {
		store.attempts[attempt.ID] = attempt
	}
	return store
}

func (s *fakeAttemptStore) Save(attempt *models.Attempt) error {
	if s.failSave {
		return errors.New("storage failure")
	}
	s.saves++
	copied := *attempt
	s.attempts[attempt.ID] = &copied
	return nil
}

func (s *fakeAttemptStore) ListInProgress() ([]models.Attempt, error) {
	var inProgress []models.Attempt
	for _, attempt := range s.attempts {
		if attempt.IsInProgress() {
			inProgress = append(inProgress, *attempt)
		}
	}
	return inProgress, nil
}

func TestCompareOutputs(t *testing.T) {
	const points = 25

	tests := []struct {
		name   string
		output []string
		oracle []string
		want   Verdict
	}{
		{
			name:   "exact match",
			output: []string{"4 5", "9"},
			oracle: []string{"4 5", "9"},
			want:   Verdict{Status: models.StatusCorrect, Reason: models.ReasonAccepted, Score: points},
		},
		{
			name:   "extra internal whitespace still matches",
			output: []string{"4  5", "9"},
			oracle: []string{"4 5", "9"},
			want:   Verdict{Status: models.StatusCorrect, Reason: models.ReasonAccepted, Score: points},
		},
		{
			name:   "tabs and leading whitespace still match",
			output: []string{"\t4\t 5  ", "  9"},
			oracle: []string{"4 5", "9"},
			want:   Verdict{Status: models.StatusCorrect, Reason: models.ReasonAccepted, Score: points},
		},
		{
			name:   "missing line is a bad submission",
			output: []string{"4 5"},
			oracle: []string{"4 5", "9"},
			want:   Verdict{Status: models.StatusIncorrect, Reason: models.ReasonBadSubmission, Score: 0},
		},
		{
			name:   "extra line is a bad submission even when the prefix matches",
			output: []string{"4 5", "9", "10"},
			oracle: []string{"4 5", "9"},
			want:   Verdict{Status: models.StatusIncorrect, Reason: models.ReasonBadSubmission, Score: 0},
		},
		{
			name:   "wrong value is a wrong answer",
			output: []string{"4 5", "10"},
			oracle: []string{"4 5", "9"},
			want:   Verdict{Status: models.StatusIncorrect, Reason: models.ReasonWrongAnswer, Score: 0},
		},
		{
			name:   "token count mismatch on a line is a wrong answer",
			output: []string{"4 5 6", "9"},
			oracle: []string{"4 5", "9"},
			want:   Verdict{Status: models.StatusIncorrect, Reason: models.ReasonWrongAnswer, Score: 0},
		},
		{
			name:   "comparison is case sensitive",
			output: []string{"Hello world"},
			oracle: []string{"hello world"},
			want:   Verdict{Status: models.StatusIncorrect, Reason: models.ReasonWrongAnswer, Score: 0},
		},
		{
			name:   "blank lines are insignificant in either file",
			output: []string{"", "4 5", "   ", "9", ""},
			oracle: []string{"4 5", "9", "", "\t"},
			want:   Verdict{Status: models.StatusCorrect, Reason: models.ReasonAccepted, Score: points},
		},
		{
			name:   "blank-only output against blank-only oracle is correct",
			output: []string{"", "  "},
			oracle: []string{"\t"},
			want:   Verdict{Status: models.StatusCorrect, Reason: models.ReasonAccepted, Score: points},
		},
		{
			name:   "line order matters",
			output: []string{"9", "4 5"},
			oracle: []string{"4 5", "9"},
			want:   Verdict{Status: models.StatusIncorrect, Reason: models.ReasonWrongAnswer, Score: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CompareOutputs(tt.output, tt.oracle, points)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCompareOutputsBlankLineInsertionIsIdempotent(t *testing.T) {
	oracle := []string{"1 2 3", "4"}
	output := []string{"1 2 3", "4"}
	base := CompareOutputs(output, oracle, 10)

	padded := []string{"", "1 2 3", "", "", "4", "   "}
	assert.Equal(t, base, CompareOutputs(padded, oracle, 10))
	assert.Equal(t, base, CompareOutputs(output, append([]string{""}, oracle...), 10))
}

func writeLines(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func newScoringAttempt(points int) *models.Attempt {
	return &models.Attempt{
		ID:     "attempt-1",
		Status: models.StatusInProgress,
		Part:   &models.ProblemPart{Points: points},
	}
}

func TestScoreAttemptAccepted(t *testing.T) {
	dir := t.TempDir()
	outputPath := writeLines(t, dir, "answer.out", "4  5\n9\n")
	oraclePath := writeLines(t, dir, "oracle.out", "4 5\n9\n")

	attempt := newScoringAttempt(30)
	store := newFakeStore(attempt)
	scorer := NewScorer(store, &FileStore{})

	verdict, err := scorer.ScoreAttempt(attempt, outputPath, oraclePath)
	require.NoError(t, err)

	assert.Equal(t, models.StatusCorrect, verdict.Status)
	assert.Equal(t, models.ReasonAccepted, verdict.Reason)
	assert.Equal(t, 30, verdict.Score)

	saved := store.attempts[attempt.ID]
	assert.Equal(t, models.StatusCorrect, saved.Status)
	require.NotNil(t, saved.Reason)
	assert.Equal(t, models.ReasonAccepted, *saved.Reason)
	assert.Equal(t, 30, saved.Score)
	assert.Equal(t, 1, store.saves)
}

func TestScoreAttemptWrongAnswer(t *testing.T) {
	dir := t.TempDir()
	outputPath := writeLines(t, dir, "answer.out", "4 5\n10\n")
	oraclePath := writeLines(t, dir, "oracle.out", "4 5\n9\n")

	attempt := newScoringAttempt(30)
	scorer := NewScorer(newFakeStore(attempt), &FileStore{})

	verdict, err := scorer.ScoreAttempt(attempt, outputPath, oraclePath)
	require.NoError(t, err)
	assert.Equal(t, Verdict{Status: models.StatusIncorrect, Reason: models.ReasonWrongAnswer, Score: 0}, verdict)
}

func TestScoreAttemptBadSubmissionSkipsComparison(t *testing.T) {
	dir := t.TempDir()
	outputPath := writeLines(t, dir, "answer.out", "4 5\n")
	oraclePath := writeLines(t, dir, "oracle.out", "4 5\n9\n")

	attempt := newScoringAttempt(30)
	scorer := NewScorer(newFakeStore(attempt), &FileStore{})

	verdict, err := scorer.ScoreAttempt(attempt, outputPath, oraclePath)
	require.NoError(t, err)
	assert.Equal(t, Verdict{Status: models.StatusIncorrect, Reason: models.ReasonBadSubmission, Score: 0}, verdict)
}

func TestScoreAttemptMissingFileLeavesAttemptUnmodified(t *testing.T) {
	dir := t.TempDir()
	oraclePath := writeLines(t, dir, "oracle.out", "4 5\n")

	attempt := newScoringAttempt(30)
	store := newFakeStore(attempt)
	scorer := NewScorer(store, &FileStore{})

	_, err := scorer.ScoreAttempt(attempt, filepath.Join(dir, "missing.out"), oraclePath)
	require.Error(t, err)

	var fileErr *FileError
	assert.ErrorAs(t, err, &fileErr)

	// No verdict was recorded: the attempt stays in progress and unsaved.
	assert.Equal(t, models.StatusInProgress, attempt.Status)
	assert.Nil(t, attempt.Reason)
	assert.Equal(t, 0, attempt.Score)
	assert.Equal(t, 0, store.saves)
}

func TestScoreAttemptMissingOracleLeavesAttemptUnmodified(t *testing.T) {
	dir := t.TempDir()
	outputPath := writeLines(t, dir, "answer.out", "4 5\n")

	attempt := newScoringAttempt(30)
	store := newFakeStore(attempt)
	scorer := NewScorer(store, &FileStore{})

	_, err := scorer.ScoreAttempt(attempt, outputPath, filepath.Join(dir, "missing.out"))
	require.Error(t, err)
	assert.Equal(t, models.StatusInProgress, attempt.Status)
	assert.Equal(t, 0, store.saves)
}

func TestScoreAttemptStorageFailurePropagates(t *testing.T) {
	dir := t.TempDir()
	outputPath := writeLines(t, dir, "answer.out", "4 5\n")
	oraclePath := writeLines(t, dir, "oracle.out", "4 5\n")

	attempt := newScoringAttempt(30)
	store := newFakeStore(attempt)
	store.failSave = true
	scorer := NewScorer(store, &FileStore{})

	_, err := scorer.ScoreAttempt(attempt, outputPath, oraclePath)
	require.Error(t, err)

	var fileErr *FileError
	assert.False(t, errors.As(err, &fileErr))
}

func TestScoreAttemptRejectsResolvedAttempt(t *testing.T) {
	attempt := newScoringAttempt(30)
	attempt.Resolve(models.StatusCorrect, models.ReasonAccepted, 30)

	scorer := NewScorer(newFakeStore(attempt), &FileStore{})
	_, err := scorer.ScoreAttempt(attempt, "unused", "unused")
	require.Error(t, err)
}
