package cmd

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/callmegreg/azdo-codeql-enable/internal/processors"
	"github.com/callmegreg/azdo-codeql-enable/internal/types"
	"github.com/callmegreg/azdo-codeql-enable/internal/ui"
	"github.com/callmegreg/azdo-codeql-enable/internal/utils"
)

const defaultStatusConcurrency = 4

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the Advanced Security enablement state of repositories",
	Long:  "Fetches the Advanced Security, code scanning and CodeQL feature flags of every matching repository and renders them as a table. Read-only.",
	RunE:  runStatus,
}

func init() {
	statusCmd.Flags().StringP("filter", "f", "", "Wildcard pattern applied to repository names (e.g., '*Service*')")
	statusCmd.Flags().Int("concurrency", defaultStatusConcurrency, "Number of concurrent status requests (1-20)")
}

func runStatus(cmd *cobra.Command, args []string) error {
	// Display header
	pterm.DefaultHeader.WithFullWidth().WithBackgroundStyle(pterm.NewStyle(pterm.BgCyan)).WithTextStyle(pterm.NewStyle(pterm.FgBlack)).Println("Azure DevOps CodeQL Status")
	pterm.Println()

	commonFlags := utils.ExtractCommonFlags()

	filter, err := cmd.Flags().GetString("filter")
	if err != nil {
		return err
	}
	concurrency, err := cmd.Flags().GetInt("concurrency")
	if err != nil {
		return err
	}
	if err := utils.ValidateConcurrency(concurrency); err != nil {
		return err
	}

	organization, err := ui.GetOrganizationInput(commonFlags.Organization)
	if err != nil {
		return err
	}
	if err := utils.ValidateOrganization(organization); err != nil {
		return err
	}

	token, err := ui.GetTokenInput(commonFlags.Token)
	if err != nil {
		return err
	}

	client := newClient(organization, token, commonFlags)

	pterm.Info.Printf("Fetching repositories from organization '%s'...\n", organization)
	repos, err := client.ListRepositories(commonFlags.Project)
	if err != nil {
		return fmt.Errorf("failed to list repositories: %w", err)
	}
	pterm.Success.Printf("Found %d repositories\n", len(repos))

	if len(repos) == 0 {
		ui.ShowNoRepositoriesWarning("")
		return nil
	}

	filtered, err := utils.FilterRepositories(repos, filter)
	if err != nil {
		return err
	}
	if filter != "" {
		ui.ShowFilterResults(filter, len(filtered), len(repos))
	}
	if len(filtered) == 0 {
		ui.ShowNoRepositoriesWarning(filter)
		return nil
	}

	buckets, skipped := processors.GroupByProject(filtered, commonFlags.Project)
	if len(skipped) > 0 {
		pterm.Warning.Printf("Skipped %d repositories with no resolvable project\n", len(skipped))
	}
	if len(buckets) == 0 {
		pterm.Warning.Println("No repositories with a resolvable project remain. Nothing to do.")
		return nil
	}

	var jobs []types.RepositoryJob
	for _, bucket := range buckets {
		for _, repo := range bucket.Repositories {
			jobs = append(jobs, types.RepositoryJob{Project: bucket.Project, Repository: repo})
		}
	}

	processor := &processors.StatusProcessor{Client: client}
	concurrent := processors.NewConcurrentProcessor(jobs, processor, concurrency)
	results := concurrent.Process()

	ui.ShowStatusTable(results)

	enabledCount, disabledCount, failedCount := tallyStatus(results)
	pterm.Println()
	pterm.Info.Printf("CodeQL enabled on %d of %d repositories (%d disabled, %d errors)\n",
		enabledCount, len(results), disabledCount, failedCount)

	showStatusReplication(organization, commonFlags, filter, concurrency)

	return nil
}

// tallyStatus counts results by CodeQL state
func tallyStatus(results []types.RepositoryResult) (enabledCount, disabledCount, failedCount int) {
	for _, result := range results {
		switch {
		case result.Error != nil:
			failedCount++
		case result.Status.CodeQLEnabled:
			enabledCount++
		default:
			disabledCount++
		}
	}
	return enabledCount, disabledCount, failedCount
}

// showStatusReplication prints the command that reruns this status check
func showStatusReplication(organization string, commonFlags *utils.CommonFlags, filter string, concurrency int) {
	replicationFlags := map[string]interface{}{
		"organization": organization,
		"project":      commonFlags.Project,
		"filter":       filter,
	}
	if concurrency != defaultStatusConcurrency {
		replicationFlags["concurrency"] = concurrency
	}

	utils.ShowReplicationCommand(utils.BuildReplicationCommand("status", replicationFlags))
}
