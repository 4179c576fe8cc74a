package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"judge/models"
)

func newPathAttempt() *models.Attempt {
	return &models.Attempt{
		TestFileID: 2,
		Owner:      &models.User{Username: "alice"},
		Part: &models.ProblemPart{
			Name: "large",
			Problem: &models.Problem{
				Slug: "sorting",
				Contest: &models.Contest{
					ID:   "c-1",
					Slug: "spring-open",
				},
			},
		},
	}
}

func TestFileStorePaths(t *testing.T) {
	fs := &FileStore{SubmissionsDir: "/data/submissions", SecretDir: "/data/secret"}
	attempt := newPathAttempt()

	assert.Equal(t,
		filepath.Join("/data/submissions", "c-1-spring-open", "alice", "sorting_large-2.out"),
		fs.SubmissionPath(attempt, ".out"))
	assert.Equal(t,
		filepath.Join("/data/submissions", "c-1-spring-open", "alice", "sorting_large-2.py"),
		fs.SubmissionPath(attempt, ".py"))
	assert.Equal(t,
		filepath.Join("/data/secret", "inputs", "sorting", "large-2.in"),
		fs.OracleInputPath(attempt))
	assert.Equal(t,
		filepath.Join("/data/secret", "outputs", "sorting", "large-2.out"),
		fs.OracleOutputPath(attempt))
}

func TestFileStorePathsVaryPerTestFileID(t *testing.T) {
	fs := &FileStore{SecretDir: "/data/secret"}
	attempt := newPathAttempt()

	first := fs.OracleInputPath(attempt)
	attempt.TestFileID = 3
	second := fs.OracleInputPath(attempt)
	assert.NotEqual(t, first, second)
}

func TestReadLines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "oracle.out")
	require.NoError(t, os.WriteFile(path, []byte("4 5\n\n9\n"), 0o644))

	fs := &FileStore{}
	lines, err := fs.ReadLines(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"4 5", "", "9"}, lines)
}

func TestReadLinesNoTrailingNewline(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "answer.out")
	require.NoError(t, os.WriteFile(path, []byte("4 5\n9"), 0o644))

	fs := &FileStore{}
	lines, err := fs.ReadLines(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"4 5", "9"}, lines)
}

func TestReadLinesEmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.out")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	fs := &FileStore{}
	lines, err := fs.ReadLines(path)
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestReadLinesMissingFile(t *testing.T) {
	fs := &FileStore{}
	_, err := fs.ReadLines(filepath.Join(t.TempDir(), "missing.out"))
	require.Error(t, err)

	var fileErr *FileError
	require.ErrorAs(t, err, &fileErr)
	assert.Contains(t, fileErr.Path, "missing.out")
	assert.ErrorIs(t, err, os.ErrNotExist)
}
