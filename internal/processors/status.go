package processors

import (
	"fmt"

	"github.com/callmegreg/azdo-codeql-enable/internal/types"
)

// StatusClient fetches the enablement state of one repository
type StatusClient interface {
	GetRepositoryEnablement(project, repositoryID string) (types.EnablementStatus, error)
}

// StatusProcessor implements RepositoryProcessor for the status command
type StatusProcessor struct {
	Client StatusClient
}

// ProcessRepository fetches the enablement state for one repository
func (sp *StatusProcessor) ProcessRepository(job types.RepositoryJob) types.RepositoryResult {
	status, err := sp.Client.GetRepositoryEnablement(job.Project, job.Repository.ID)
	if err != nil {
		return types.RepositoryResult{
			Job:   job,
			Error: fmt.Errorf("failed to fetch enablement for repository '%s': %w", job.Repository.Name, err),
		}
	}
	return types.RepositoryResult{Job: job, Status: status}
}
