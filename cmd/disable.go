package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var disableCmd = &cobra.Command{
	Use:   "disable",
	Short: "Disable Advanced Security and CodeQL scanning on repositories",
	Long:  "Turns off the Advanced Security, code scanning and CodeQL feature flags for every matching repository, batching one call per project, and writes a CSV audit report",
	RunE:  runDisable,
}

func init() {
	addRunFlags(disableCmd)
}

func runDisable(cmd *cobra.Command, args []string) error {
	// Display header
	pterm.DefaultHeader.WithFullWidth().WithBackgroundStyle(pterm.NewStyle(pterm.BgRed)).WithTextStyle(pterm.NewStyle(pterm.FgWhite)).Println("Azure DevOps CodeQL Disablement")
	pterm.Println()

	pterm.Warning.Println("WARNING: This operation turns off Advanced Security, code scanning and CodeQL for every matching repository.")
	pterm.Warning.Println("Existing alerts stop updating until the features are enabled again.")
	pterm.Println()

	return runEnablement(cmd, false)
}
