package processors

import "github.com/callmegreg/azdo-codeql-enable/internal/types"

// ProjectProcessor defines the interface for dispatching one project bucket
type ProjectProcessor interface {
	ProcessProject(bucket types.ProjectBucket) types.ProcessingResult
}

// RepositoryProcessor defines the interface for per-repository work
type RepositoryProcessor interface {
	ProcessRepository(job types.RepositoryJob) types.RepositoryResult
}
