package utils

import (
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// CommonFlags carries the persistent flags shared by every command
type CommonFlags struct {
	Organization string
	Token        string
	Project      string
	ServerURL    string
	AdvSecURL    string
}

// ExtractCommonFlags reads the persistent flags through viper, which also
// honors matching environment variables
func ExtractCommonFlags() *CommonFlags {
	return &CommonFlags{
		Organization: strings.TrimSpace(viper.GetString("organization")),
		Token:        viper.GetString("token"),
		Project:      strings.TrimSpace(viper.GetString("project")),
		ServerURL:    strings.TrimRight(viper.GetString("server-url"), "/"),
		AdvSecURL:    strings.TrimRight(viper.GetString("advsec-url"), "/"),
	}
}

// RunFlags carries the per-command flags of the enable and disable pipelines
type RunFlags struct {
	Filter    string
	Pool      string
	DryRun    bool
	Confirm   bool
	ReportDir string
}

// ExtractRunFlags gets the pipeline flags from an enable or disable command
func ExtractRunFlags(cmd *cobra.Command) (*RunFlags, error) {
	filter, err := cmd.Flags().GetString("filter")
	if err != nil {
		return nil, err
	}

	pool, err := cmd.Flags().GetString("pool")
	if err != nil {
		return nil, err
	}

	dryRun, err := cmd.Flags().GetBool("dry-run")
	if err != nil {
		return nil, err
	}

	confirm, err := cmd.Flags().GetBool("confirm")
	if err != nil {
		return nil, err
	}

	reportDir, err := cmd.Flags().GetString("report-dir")
	if err != nil {
		return nil, err
	}

	return &RunFlags{
		Filter:    strings.TrimSpace(filter),
		Pool:      strings.TrimSpace(pool),
		DryRun:    dryRun,
		Confirm:   confirm,
		ReportDir: reportDir,
	}, nil
}

// PrintCompletionHeader prints the completion header with results
func PrintCompletionHeader(operation string, successCount, skippedCount, errorCount int) {
	pterm.DefaultHeader.WithFullWidth().WithBackgroundStyle(pterm.NewStyle(pterm.BgGreen)).WithTextStyle(pterm.NewStyle(pterm.FgBlack)).Printf("%s Complete! (Success: %d, Skipped: %d, Errors: %d)", operation, successCount, skippedCount, errorCount)
}
