package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// Result labels recorded in the Result column
const (
	ResultPending = "Pending"
	ResultSuccess = "Success"
)

// Layouts for the report file name and the per-row timestamps
const (
	fileTimeLayout = "20060102-150405"
	rowTimeLayout  = "2006-01-02 15:04:05"
)

// Entry is one repository's row in the audit report
type Entry struct {
	Timestamp  time.Time
	Project    string
	Repository string
	RepoID     string
	Action     string
	Result     string
}

// MarkProject returns a copy of entries where every Pending row of the given
// project carries the new action and result. Rows of other projects and rows
// already finalized come back unchanged; the input slice is never modified.
func MarkProject(entries []Entry, project, action, result string) []Entry {
	updated := make([]Entry, len(entries))
	copy(updated, entries)

	for i := range updated {
		if updated[i].Project == project && updated[i].Result == ResultPending {
			updated[i].Action = action
			updated[i].Result = result
		}
	}

	return updated
}

// FailureResult formats the result label recorded when a project's dispatch
// fails
func FailureResult(err error) string {
	return fmt.Sprintf("Failed: %v", err)
}

// Report collects the rows accumulated over one run
type Report struct {
	StartedAt time.Time
	Prefix    string
	Entries   []Entry
}

// New returns an empty report stamped with the run start time
func New(startedAt time.Time, prefix string) *Report {
	return &Report{
		StartedAt: startedAt,
		Prefix:    prefix,
	}
}

// Filename returns the timestamped CSV name for this run, e.g.
// codeql-enable-report-20240131-154502.csv
func (r *Report) Filename() string {
	return fmt.Sprintf("%s-%s.csv", r.Prefix, r.StartedAt.Format(fileTimeLayout))
}

// WriteFile serializes the report into dir and returns the full path of the
// created file
func (r *Report) WriteFile(dir string) (string, error) {
	path := filepath.Join(dir, r.Filename())

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create report file: %w", err)
	}
	defer file.Close()

	if err := r.Write(file); err != nil {
		return "", err
	}

	return path, nil
}

// Write serializes the report as CSV with one header row followed by one row
// per repository
func (r *Report) Write(w io.Writer) error {
	writer := csv.NewWriter(w)

	header := []string{"Timestamp", "Project", "Repository", "RepoId", "Action", "Result"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write report header: %w", err)
	}

	for _, entry := range r.Entries {
		record := []string{
			entry.Timestamp.Format(rowTimeLayout),
			entry.Project,
			entry.Repository,
			entry.RepoID,
			entry.Action,
			entry.Result,
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write report row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
