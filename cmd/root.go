package cmd

import (
	"os"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/callmegreg/azdo-codeql-enable/internal/azdo"
)

var rootCmd = &cobra.Command{
	Use:   "azdo-codeql-enable",
	Short: "Advanced Security CodeQL management for Azure DevOps repositories",
	Long:  "A CLI to enable, disable and audit the GitHub Advanced Security CodeQL feature across the repositories of an Azure DevOps organization",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if viper.GetBool("verbose") {
			pterm.EnableDebugMessages()
		}
	},
}

func init() {
	// Add persistent flags that are common to all commands
	rootCmd.PersistentFlags().StringP("organization", "o", "", "Azure DevOps organization name (e.g., contoso)")
	rootCmd.PersistentFlags().StringP("token", "t", "", "Personal access token (or set AZURE_DEVOPS_EXT_PAT)")
	rootCmd.PersistentFlags().StringP("project", "p", "", "Project to scope the run to, also the fallback for repositories listed without an owning project")
	rootCmd.PersistentFlags().StringP("server-url", "u", azdo.DefaultServerURL, "Base URL of the Azure DevOps instance")
	rootCmd.PersistentFlags().String("advsec-url", azdo.DefaultAdvSecURL, "Base URL of the Advanced Security management API")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Show per-repository debug output")

	// Persistent flags are read through viper so matching environment
	// variables work too
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		pterm.Error.Printf("Failed to bind flags: %v\n", err)
		os.Exit(1)
	}
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// Add subcommands
	rootCmd.AddCommand(enableCmd)
	rootCmd.AddCommand(disableCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		pterm.Error.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
