package processors

import (
	"fmt"
	"time"

	"github.com/pterm/pterm"

	"github.com/callmegreg/azdo-codeql-enable/internal/report"
	"github.com/callmegreg/azdo-codeql-enable/internal/types"
)

// SequentialProcessor drives project buckets one at a time, threading the
// report rows through each dispatch outcome
type SequentialProcessor struct {
	buckets       []types.ProjectBucket
	processor     ProjectProcessor
	pendingAction string
	successAction string
	progressBar   *pterm.ProgressbarPrinter
	now           func() time.Time
}

// NewSequentialProcessor creates a new sequential processor. pendingAction is
// the label rows are created with and keep on failure, successAction replaces
// it when a project's dispatch succeeds.
func NewSequentialProcessor(buckets []types.ProjectBucket, processor ProjectProcessor, pendingAction, successAction string) *SequentialProcessor {
	return &SequentialProcessor{
		buckets:       buckets,
		processor:     processor,
		pendingAction: pendingAction,
		successAction: successAction,
		now:           time.Now,
	}
}

// Process dispatches every bucket in order and returns the final report rows
// together with the per-project tallies. A failed project only marks its own
// rows; processing always continues with the next bucket.
func (sp *SequentialProcessor) Process() (entries []report.Entry, successCount, skippedCount, errorCount int) {
	totalProjects := len(sp.buckets)
	if totalProjects == 0 {
		return nil, 0, 0, 0
	}

	// Create progress bar
	progressBar, _ := pterm.DefaultProgressbar.WithTotal(totalProjects).WithTitle("Processing projects").Start()
	sp.progressBar = progressBar

	for _, bucket := range sp.buckets {
		sp.progressBar.UpdateTitle(fmt.Sprintf("Processing %s", bucket.Project))

		// Create the bucket's report rows before dispatching, so declined
		// and dry-run projects still show up as Pending
		preparedAt := sp.now()
		for _, repo := range bucket.Repositories {
			pterm.Debug.Printf("Prepared %s request for repository '%s'\n", sp.pendingAction, repo.Name)
			entries = append(entries, report.Entry{
				Timestamp:  preparedAt,
				Project:    bucket.Project,
				Repository: repo.Name,
				RepoID:     repo.ID,
				Action:     sp.pendingAction,
				Result:     report.ResultPending,
			})
		}

		result := sp.processor.ProcessProject(bucket)

		if result.Success {
			entries = report.MarkProject(entries, bucket.Project, sp.successAction, report.ResultSuccess)
			successCount++
			pterm.Success.Printf("Successfully processed project '%s' (%d repositories)\n", result.Project, result.RepoCount)
		} else if result.Skipped {
			skippedCount++
			// Skip reason already printed by the processor, rows stay Pending
		} else if result.Error != nil {
			entries = report.MarkProject(entries, bucket.Project, sp.pendingAction, report.FailureResult(result.Error))
			errorCount++
			pterm.Error.Printf("Failed to process project '%s': %v\n", result.Project, result.Error)
		}

		sp.progressBar.Increment()
	}

	progressBar.Stop()
	return entries, successCount, skippedCount, errorCount
}
