package utils

import (
	"fmt"
	"strings"
)

// ValidateOrganization rejects names that cannot be an Azure DevOps
// organization
func ValidateOrganization(organization string) error {
	if strings.Contains(organization, " ") || strings.Contains(organization, "/") {
		return fmt.Errorf("invalid organization name format: %s", organization)
	}
	return nil
}

// ValidateConcurrency validates the concurrency flag value
func ValidateConcurrency(concurrency int) error {
	if concurrency < 1 || concurrency > 20 {
		return fmt.Errorf("concurrency must be between 1 and 20, got %d", concurrency)
	}
	return nil
}
