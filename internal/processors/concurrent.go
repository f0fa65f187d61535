package processors

import (
	"fmt"
	"sort"
	"sync"

	"github.com/pterm/pterm"

	"github.com/callmegreg/azdo-codeql-enable/internal/types"
)

// ConcurrentProcessor fans repository jobs across a bounded pool of workers.
// Reads are independent, so unlike the enablement dispatch they can run in
// parallel.
type ConcurrentProcessor struct {
	jobs        []types.RepositoryJob
	processor   RepositoryProcessor
	concurrency int
	progressBar *pterm.ProgressbarPrinter
}

// NewConcurrentProcessor creates a new concurrent processor
func NewConcurrentProcessor(jobs []types.RepositoryJob, processor RepositoryProcessor, concurrency int) *ConcurrentProcessor {
	return &ConcurrentProcessor{
		jobs:        jobs,
		processor:   processor,
		concurrency: concurrency,
	}
}

// Process executes every job and returns the results sorted by project and
// repository name
func (cp *ConcurrentProcessor) Process() []types.RepositoryResult {
	totalJobs := len(cp.jobs)
	if totalJobs == 0 {
		return nil
	}

	// Create progress bar
	progressBar, _ := pterm.DefaultProgressbar.WithTotal(totalJobs).WithTitle("Fetching enablement status").Start()
	cp.progressBar = progressBar

	// Create channels for work distribution and result collection
	jobChan := make(chan types.RepositoryJob, totalJobs)
	resultChan := make(chan types.RepositoryResult, totalJobs)

	// Send all jobs to the work channel
	for _, job := range cp.jobs {
		jobChan <- job
	}
	close(jobChan)

	// Start workers
	var wg sync.WaitGroup
	for i := 0; i < cp.concurrency; i++ {
		wg.Add(1)
		go cp.worker(&wg, jobChan, resultChan)
	}

	// Wait for all workers to complete
	go func() {
		wg.Wait()
		close(resultChan)
	}()

	// Collect results
	results := make([]types.RepositoryResult, 0, totalJobs)
	for result := range resultChan {
		cp.progressBar.UpdateTitle(fmt.Sprintf("Fetched %s", result.Job.Repository.Name))
		if result.Error != nil {
			pterm.Error.Printf("Failed to fetch status for repository '%s': %v\n", result.Job.Repository.Name, result.Error)
		}
		results = append(results, result)
		cp.progressBar.Increment()
	}

	progressBar.Stop()

	// Workers finish in arbitrary order, sort for stable output
	sort.Slice(results, func(i, j int) bool {
		if results[i].Job.Project != results[j].Job.Project {
			return results[i].Job.Project < results[j].Job.Project
		}
		return results[i].Job.Repository.Name < results[j].Job.Repository.Name
	})

	return results
}

// worker processes jobs from the channel
func (cp *ConcurrentProcessor) worker(wg *sync.WaitGroup, jobChan <-chan types.RepositoryJob, resultChan chan<- types.RepositoryResult) {
	defer wg.Done()

	for job := range jobChan {
		resultChan <- cp.processor.ProcessRepository(job)
	}
}
