package ui

import (
	"github.com/pterm/pterm"

	"github.com/callmegreg/azdo-codeql-enable/internal/types"
)

// ShowRunSummary prints what the run is about to do before any project is
// dispatched
func ShowRunSummary(operation, organization, project, filter, pool string, repoCount, projectCount int, dryRun bool) {
	pterm.Println()
	pterm.DefaultHeader.WithFullWidth().WithBackgroundStyle(pterm.NewStyle(pterm.BgYellow)).WithTextStyle(pterm.NewStyle(pterm.FgBlack)).Println("Run Summary")

	pterm.Printf("Operation: %s\n", pterm.Yellow(operation))
	pterm.Printf("Organization: %s\n", pterm.Yellow(organization))
	if project != "" {
		pterm.Printf("Project scope: %s\n", pterm.Yellow(project))
	}
	if filter != "" {
		pterm.Printf("Repository filter: %s\n", pterm.Yellow(filter))
	}
	if pool != "" {
		pterm.Printf("Agent pool: %s\n", pterm.Yellow(pool))
	}
	pterm.Printf("Repositories: %d across %d projects\n", repoCount, projectCount)
	if dryRun {
		pterm.Printf("Mode: %s\n", pterm.Magenta("dry-run (no changes will be made)"))
	}
	pterm.Println()
}

// ShowFilterResults reports how many repositories the name filter retained
func ShowFilterResults(pattern string, matched, total int) {
	pterm.Info.Printf("Filter '%s' matched %d of %d repositories\n", pattern, matched, total)
}

// ShowNoRepositoriesWarning displays appropriate warning based on whether a
// filter was active
func ShowNoRepositoriesWarning(pattern string) {
	if pattern != "" {
		pterm.Warning.Printf("No repositories match filter '%s'. Nothing to do.\n", pattern)
	} else {
		pterm.Warning.Println("No repositories found. Nothing to do.")
	}
}

// ShowProcessingStart displays the start of processing
func ShowProcessingStart(projectCount int) {
	pterm.Info.Printf("Processing %d projects...\n", projectCount)
}

// ShowStatusTable renders the enablement state fetched by the status command
func ShowStatusTable(results []types.RepositoryResult) {
	tableData := pterm.TableData{
		{"Project", "Repository", "Advanced Security", "Code Scanning", "CodeQL"},
	}

	for _, result := range results {
		if result.Error != nil {
			tableData = append(tableData, []string{
				result.Job.Project,
				result.Job.Repository.Name,
				pterm.Red("error"),
				pterm.Red("error"),
				pterm.Red("error"),
			})
			continue
		}
		tableData = append(tableData, []string{
			result.Job.Project,
			result.Job.Repository.Name,
			enabledLabel(result.Status.AdvSecEnabled),
			enabledLabel(result.Status.CodeScanningEnabled),
			enabledLabel(result.Status.CodeQLEnabled),
		})
	}

	pterm.Println()
	_ = pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
}

// enabledLabel colors a feature flag for table display
func enabledLabel(enabled bool) string {
	if enabled {
		return pterm.Green("enabled")
	}
	return pterm.Red("disabled")
}
