package services

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"judge/models"
)

// FileError is an infrastructure failure reading a submission or oracle file.
// It is never turned into a verdict: the caller decides how to surface it.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// LineReader reads a text file as an ordered sequence of lines
type LineReader interface {
	ReadLines(path string) ([]string, error)
}

// FileStore resolves and reads the on-disk files belonging to attempts:
// uploaded submissions under SubmissionsDir, oracle inputs and expected
// outputs under SecretDir. Oracle files are provisioned out of band by
// contest administrators.
type FileStore struct {
	SubmissionsDir string
	SecretDir      string
}

// SubmissionPath returns where an attempt's uploaded file of the given
// extension is stored. The attempt's Owner and Part.Problem.Contest must be
// loaded.
func (fs *FileStore) SubmissionPath(attempt *models.Attempt, ext string) string {
	part := attempt.Part
	problem := part.Problem
	contest := problem.Contest
	return filepath.Join(fs.SubmissionsDir,
		fmt.Sprintf("%s-%s", contest.ID, contest.Slug), attempt.Owner.Username,
		fmt.Sprintf("%s_%s-%d%s", problem.Slug, part.Name, attempt.TestFileID, ext))
}

// OracleInputPath returns the path of the input file handed to the contestant
// for this attempt's test index
func (fs *FileStore) OracleInputPath(attempt *models.Attempt) string {
	return filepath.Join(fs.SecretDir, "inputs",
		attempt.Part.Problem.Slug,
		fmt.Sprintf("%s-%d.in", attempt.Part.Name, attempt.TestFileID))
}

// OracleOutputPath returns the path of the expected-output file the scorer
// compares against
func (fs *FileStore) OracleOutputPath(attempt *models.Attempt) string {
	return filepath.Join(fs.SecretDir, "outputs",
		attempt.Part.Problem.Slug,
		fmt.Sprintf("%s-%d.out", attempt.Part.Name, attempt.TestFileID))
}

// ReadLines reads every line of a text file, without trailing newlines
func (fs *FileStore) ReadLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &FileError{Path: path, Err: err}
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, &FileError{Path: path, Err: err}
	}
	return lines, nil
}
