package types

import "fmt"

// APIError represents a non-success response from the Azure DevOps REST API
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("Azure DevOps API returned HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("Azure DevOps API returned HTTP %d: %s", e.StatusCode, e.Message)
}
