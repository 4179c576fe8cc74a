package services

import (
	"fmt"
	"strings"
	"time"

	"judge/metrics"
	"judge/models"
)

// Verdict is the outcome of scoring one attempt. It is computed first and
// applied to the attempt in a single step, so a failed file read never leaves
// a half-written result behind.
type Verdict struct {
	Status models.AttemptStatus `json:"status"`
	Reason models.AttemptReason `json:"reason"`
	Score  int                  `json:"score"`
}

// Scorer judges a finalized attempt by comparing its uploaded output against
// the oracle's expected output
type Scorer struct {
	Store AttemptStore
	Files LineReader
}

func NewScorer(store AttemptStore, files LineReader) *Scorer {
	return &Scorer{Store: store, Files: files}
}

// ScoreAttempt reads the attempt's output and oracle files, decides the
// verdict and persists it. The attempt must still be in progress and have its
// Part loaded. On a file read or storage failure the attempt is left
// unmodified; a malformed or wrong submission is a normal verdict, not an
// error.
func (s *Scorer) ScoreAttempt(attempt *models.Attempt, outputPath, oraclePath string) (Verdict, error) {
	start := time.Now()
	defer func() {
		metrics.ScoringDuration.Observe(time.Since(start).Seconds())
	}()

	if !attempt.IsInProgress() {
		return Verdict{}, fmt.Errorf("attempt %s is already resolved", attempt.ID)
	}

	outputLines, err := s.Files.ReadLines(outputPath)
	if err != nil {
		return Verdict{}, err
	}
	oracleLines, err := s.Files.ReadLines(oraclePath)
	if err != nil {
		return Verdict{}, err
	}

	verdict := CompareOutputs(outputLines, oracleLines, attempt.Part.Points)

	attempt.Resolve(verdict.Status, verdict.Reason, verdict.Score)
	if err := s.Store.Save(attempt); err != nil {
		return Verdict{}, err
	}

	metrics.AttemptsScored.WithLabelValues(verdict.Reason.String()).Inc()
	return verdict, nil
}

// CompareOutputs judges a submitted output against the oracle's expected
// output. Blank lines are insignificant and dropped before comparison. A
// filtered line-count mismatch is a bad submission and short-circuits any
// content comparison. Otherwise lines are compared in order: two lines match
// iff their whitespace-delimited tokens are equal in sequence, so spacing is
// insignificant but token content is case-sensitive. Scoring is
// all-or-nothing: full points only when every line matches.
func CompareOutputs(outputLines, oracleLines []string, points int) Verdict {
	output := dropBlankLines(outputLines)
	oracle := dropBlankLines(oracleLines)

	if len(output) != len(oracle) {
		return Verdict{Status: models.StatusIncorrect, Reason: models.ReasonBadSubmission, Score: 0}
	}

	for i := range oracle {
		if !tokensEqual(output[i], oracle[i]) {
			return Verdict{Status: models.StatusIncorrect, Reason: models.ReasonWrongAnswer, Score: 0}
		}
	}

	return Verdict{Status: models.StatusCorrect, Reason: models.ReasonAccepted, Score: points}
}

func dropBlankLines(lines []string) []string {
	filtered := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			filtered = append(filtered, line)
		}
	}
	return filtered
}

func tokensEqual(a, b string) bool {
	ta := strings.Fields(a)
	tb := strings.Fields(b)
	if len(ta) != len(tb) {
		return false
	}
	for i := range ta {
		if ta[i] != tb[i] {
			return false
		}
	}
	return true
}
