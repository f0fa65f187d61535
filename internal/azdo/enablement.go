package azdo

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/callmegreg/azdo-codeql-enable/internal/types"
)

// UpdateRepositoryEnablement issues the bulk enablement call for one project.
// The payload covers every repository in one request, so the outcome is
// atomic per project.
func (c *Client) UpdateRepositoryEnablement(project string, requests []types.EnablementRequest) error {
	patchURL := fmt.Sprintf("%s/%s/%s/_apis/management/repositories/enablement?api-version=%s",
		c.AdvSecURL, c.Organization, url.PathEscape(project), enablementAPIVersion)

	_, err := c.do(http.MethodPatch, patchURL, requests)
	return err
}

// GetRepositoryEnablement fetches the feature flags currently set on a
// repository
func (c *Client) GetRepositoryEnablement(project, repositoryID string) (types.EnablementStatus, error) {
	statusURL := fmt.Sprintf("%s/%s/%s/_apis/management/repositories/%s/enablement?api-version=%s",
		c.AdvSecURL, c.Organization, url.PathEscape(project), url.PathEscape(repositoryID), enablementAPIVersion)

	body, err := c.do(http.MethodGet, statusURL, nil)
	if err != nil {
		return types.EnablementStatus{}, err
	}

	var status types.EnablementStatus
	if err := json.Unmarshal(body, &status); err != nil {
		return types.EnablementStatus{}, fmt.Errorf("failed to parse enablement status: %w", err)
	}

	return status, nil
}
