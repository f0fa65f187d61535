package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/pterm/pterm"
)

// TokenEnvVar is checked for a personal access token before prompting. It is
// the same variable the Azure DevOps CLI extension reads.
const TokenEnvVar = "AZURE_DEVOPS_EXT_PAT"

// GetOrganizationInput prompts for the organization name or uses provided value
func GetOrganizationInput(organizationFlag string) (string, error) {
	// If the organization is provided via flag, use it
	if strings.TrimSpace(organizationFlag) != "" {
		return strings.TrimSpace(organizationFlag), nil
	}

	// Otherwise, prompt for input
	organization, err := pterm.DefaultInteractiveTextInput.WithDefaultText("").WithMultiLine(false).Show("Enter the Azure DevOps organization name (e.g., contoso)")
	if err != nil {
		return "", err
	}

	if strings.TrimSpace(organization) == "" {
		return "", fmt.Errorf("organization name is required")
	}

	return strings.TrimSpace(organization), nil
}

// GetTokenInput resolves the personal access token from the flag, the
// environment, or a masked prompt, in that order
func GetTokenInput(tokenFlag string) (string, error) {
	// If the token is provided via flag, use it
	if tokenFlag != "" {
		return tokenFlag, nil
	}

	if token := os.Getenv(TokenEnvVar); token != "" {
		pterm.Info.Printf("Using personal access token from %s\n", TokenEnvVar)
		return token, nil
	}

	// Otherwise, prompt with masked input
	token, err := pterm.DefaultInteractiveTextInput.WithMask("*").Show("Enter a personal access token with Advanced Security manage permission")
	if err != nil {
		return "", err
	}

	if strings.TrimSpace(token) == "" {
		return "", fmt.Errorf("personal access token is required")
	}

	return token, nil
}
