package processors

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"github.com/callmegreg/azdo-codeql-enable/internal/types"
	"github.com/callmegreg/azdo-codeql-enable/internal/ui"
)

// maxSummaryNames caps how many repository names an action summary lists
// before collapsing the rest into a "+N more" suffix
const maxSummaryNames = 5

// EnablementClient issues the bulk enablement call for one project
type EnablementClient interface {
	UpdateRepositoryEnablement(project string, requests []types.EnablementRequest) error
}

// EnablementProcessor implements ProjectProcessor for the enable and disable
// commands. Enabled selects the direction all three feature flags are set to.
type EnablementProcessor struct {
	Client  EnablementClient
	Enabled bool
	DryRun  bool
	Confirm bool

	// ConfirmFunc presents the per-project gate. Tests replace it; when nil
	// the interactive prompt is used.
	ConfirmFunc func(summary string) (bool, error)
}

// ProcessProject builds the enablement payload for the bucket, applies the
// dry-run and confirmation gates, and dispatches the call
func (ep *EnablementProcessor) ProcessProject(bucket types.ProjectBucket) types.ProcessingResult {
	requests := BuildEnablementRequests(bucket.Repositories, ep.Enabled)
	summary := ActionSummary(ep.operation(), bucket)

	if ep.DryRun {
		pterm.Info.Printf("[dry-run] %s\n", summary)
		return types.ProcessingResult{Project: bucket.Project, RepoCount: len(requests), Skipped: true}
	}

	if ep.Confirm {
		approved, err := ep.gate(summary)
		if err != nil {
			return types.ProcessingResult{Project: bucket.Project, RepoCount: len(requests), Error: err}
		}
		if !approved {
			pterm.Info.Printf("Skipping project '%s': declined\n", bucket.Project)
			return types.ProcessingResult{Project: bucket.Project, RepoCount: len(requests), Skipped: true}
		}
	} else {
		pterm.Info.Println(summary)
	}

	if err := ep.Client.UpdateRepositoryEnablement(bucket.Project, requests); err != nil {
		return types.ProcessingResult{
			Project:   bucket.Project,
			RepoCount: len(requests),
			Error:     fmt.Errorf("failed to update enablement for project '%s': %w", bucket.Project, err),
		}
	}

	return types.ProcessingResult{Project: bucket.Project, RepoCount: len(requests), Success: true}
}

// PendingAction returns the action label rows carry until the dispatch
// resolves. Failed dispatches keep it, so a failure changes nothing but the
// result.
func (ep *EnablementProcessor) PendingAction() string {
	if ep.Enabled {
		return "Enablement"
	}
	return "Disablement"
}

// SuccessAction returns the action label recorded after a successful dispatch
func (ep *EnablementProcessor) SuccessAction() string {
	if ep.Enabled {
		return "Enabled"
	}
	return "Disabled"
}

// gate asks for per-project approval, defaulting to yes when enabling and no
// when disabling
func (ep *EnablementProcessor) gate(summary string) (bool, error) {
	if ep.ConfirmFunc != nil {
		return ep.ConfirmFunc(summary)
	}
	return ui.ConfirmProjectAction(summary, ep.Enabled)
}

// operation returns the verb shown in summaries and prompts
func (ep *EnablementProcessor) operation() string {
	if ep.Enabled {
		return "Enable CodeQL"
	}
	return "Disable CodeQL"
}

// BuildEnablementRequests creates the wire payload for a project's
// repositories, one entry per repository with all three feature flags set to
// enabled
func BuildEnablementRequests(repos []types.Repository, enabled bool) []types.EnablementRequest {
	requests := make([]types.EnablementRequest, 0, len(repos))
	for _, repo := range repos {
		requests = append(requests, types.EnablementRequest{
			RepositoryID:        repo.ID,
			AdvSecEnabled:       enabled,
			CodeScanningEnabled: enabled,
			CodeQLEnabled:       enabled,
		})
	}
	return requests
}

// ActionSummary renders the human-readable preview for one project bucket,
// listing at most maxSummaryNames repository names
func ActionSummary(operation string, bucket types.ProjectBucket) string {
	names := make([]string, 0, len(bucket.Repositories))
	for _, repo := range bucket.Repositories {
		names = append(names, repo.Name)
	}

	preview := names
	var suffix string
	if len(names) > maxSummaryNames {
		preview = names[:maxSummaryNames]
		suffix = fmt.Sprintf(", +%d more", len(names)-maxSummaryNames)
	}

	return fmt.Sprintf("%s for %d repositories in project '%s' (%s%s)",
		operation, len(bucket.Repositories), bucket.Project, strings.Join(preview, ", "), suffix)
}
