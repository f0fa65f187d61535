package cmd

import (
	"fmt"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/callmegreg/azdo-codeql-enable/internal/azdo"
	"github.com/callmegreg/azdo-codeql-enable/internal/processors"
	"github.com/callmegreg/azdo-codeql-enable/internal/report"
	"github.com/callmegreg/azdo-codeql-enable/internal/ui"
	"github.com/callmegreg/azdo-codeql-enable/internal/utils"
)

// Report file prefixes for the two pipeline directions
const (
	enableReportPrefix  = "codeql-enable-report"
	disableReportPrefix = "codeql-disable-report"
)

var enableCmd = &cobra.Command{
	Use:   "enable",
	Short: "Enable Advanced Security and CodeQL scanning on repositories",
	Long:  "Enables the Advanced Security, code scanning and CodeQL feature flags for every matching repository, batching one enablement call per project, and writes a CSV audit report",
	RunE:  runEnable,
}

func init() {
	addRunFlags(enableCmd)
}

// addRunFlags registers the flags shared by the enable and disable pipelines
func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("filter", "f", "", "Wildcard pattern applied to repository names (e.g., '*Service*')")
	cmd.Flags().String("pool", "", "Agent pool name recorded in the run summary for the surrounding pipeline setup")
	cmd.Flags().BoolP("dry-run", "n", false, "Preview every project action without calling the API")
	cmd.Flags().BoolP("confirm", "c", false, "Ask before dispatching each project's call")
	cmd.Flags().String("report-dir", ".", "Directory the CSV report is written to")
}

func runEnable(cmd *cobra.Command, args []string) error {
	// Display header
	pterm.DefaultHeader.WithFullWidth().WithBackgroundStyle(pterm.NewStyle(pterm.BgBlue)).WithTextStyle(pterm.NewStyle(pterm.FgWhite)).Println("Azure DevOps CodeQL Enablement")
	pterm.Println()

	return runEnablement(cmd, true)
}

// runEnablement is the list, filter, group, dispatch, report pipeline behind
// the enable and disable commands. enabled selects the direction the feature
// flags are set to.
func runEnablement(cmd *cobra.Command, enabled bool) error {
	startedAt := time.Now()

	commonFlags := utils.ExtractCommonFlags()
	runFlags, err := utils.ExtractRunFlags(cmd)
	if err != nil {
		return err
	}

	// Get organization and token, prompting for whatever the flags and
	// environment did not provide
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

	// List repositories, a failure here is fatal and no report is written
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

	// Filter by name
	filtered, err := utils.FilterRepositories(repos, runFlags.Filter)
	if err != nil {
		return err
	}
	if runFlags.Filter != "" {
		ui.ShowFilterResults(runFlags.Filter, len(filtered), len(repos))
	}
	if len(filtered) == 0 {
		ui.ShowNoRepositoriesWarning(runFlags.Filter)
		return nil
	}

	// Group into per-project buckets
	buckets, skipped := processors.GroupByProject(filtered, commonFlags.Project)
	if len(skipped) > 0 {
		pterm.Warning.Printf("Skipped %d repositories with no resolvable project\n", len(skipped))
	}
	if len(buckets) == 0 {
		pterm.Warning.Println("No repositories with a resolvable project remain. Nothing to do.")
		return nil
	}

	processor := &processors.EnablementProcessor{
		Client:  client,
		Enabled: enabled,
		DryRun:  runFlags.DryRun,
		Confirm: runFlags.Confirm,
	}

	operation := "Enable CodeQL"
	operationTitle := "CodeQL Enablement"
	commandName := "enable"
	reportPrefix := enableReportPrefix
	if !enabled {
		operation = "Disable CodeQL"
		operationTitle = "CodeQL Disablement"
		commandName = "disable"
		reportPrefix = disableReportPrefix
	}

	ui.ShowRunSummary(operation, organization, commonFlags.Project, runFlags.Filter, runFlags.Pool,
		len(filtered)-len(skipped), len(buckets), runFlags.DryRun)

	// Dispatch one bulk call per project
	ui.ShowProcessingStart(len(buckets))
	sequential := processors.NewSequentialProcessor(buckets, processor, processor.PendingAction(), processor.SuccessAction())
	entries, successCount, skippedCount, errorCount := sequential.Process()

	utils.PrintCompletionHeader(operationTitle, successCount, skippedCount, errorCount)

	// Write the audit report
	rep := report.New(startedAt, reportPrefix)
	rep.Entries = entries
	path, err := rep.WriteFile(runFlags.ReportDir)
	if err != nil {
		return err
	}
	pterm.Println()
	pterm.Success.Printf("Report written to %s\n", path)

	showEnablementReplication(commandName, organization, commonFlags, runFlags)

	return nil
}

// newClient builds the API client, applying any URL overrides from the flags
func newClient(organization, token string, commonFlags *utils.CommonFlags) *azdo.Client {
	client := azdo.NewClient(organization, token)
	if commonFlags.ServerURL != "" {
		client.ServerURL = commonFlags.ServerURL
	}
	if commonFlags.AdvSecURL != "" {
		client.AdvSecURL = commonFlags.AdvSecURL
	}
	return client
}

// showEnablementReplication prints the command that reruns this operation
// with the same targeting. Defaults are left out, the token always is.
func showEnablementReplication(commandName, organization string, commonFlags *utils.CommonFlags, runFlags *utils.RunFlags) {
	replicationFlags := map[string]interface{}{
		"organization": organization,
		"project":      commonFlags.Project,
		"filter":       runFlags.Filter,
		"pool":         runFlags.Pool,
		"dry-run":      runFlags.DryRun,
		"confirm":      runFlags.Confirm,
	}
	if commonFlags.ServerURL != azdo.DefaultServerURL {
		replicationFlags["server-url"] = commonFlags.ServerURL
	}
	if commonFlags.AdvSecURL != azdo.DefaultAdvSecURL {
		replicationFlags["advsec-url"] = commonFlags.AdvSecURL
	}
	if runFlags.ReportDir != "." {
		replicationFlags["report-dir"] = runFlags.ReportDir
	}

	utils.ShowReplicationCommand(utils.BuildReplicationCommand(commandName, replicationFlags))
}
