package azdo

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/callmegreg/azdo-codeql-enable/internal/types"
)

// repositoryList mirrors the envelope the git repositories endpoint wraps
// results in
type repositoryList struct {
	Value []types.Repository `json:"value"`
	Count int                `json:"count"`
}

// ListRepositories returns every repository in the organization, or only
// those of the given project when a project scope is set
func (c *Client) ListRepositories(project string) ([]types.Repository, error) {
	var listURL string
	if project == "" {
		listURL = fmt.Sprintf("%s/%s/_apis/git/repositories?api-version=%s",
			c.ServerURL, c.Organization, gitAPIVersion)
	} else {
		listURL = fmt.Sprintf("%s/%s/%s/_apis/git/repositories?api-version=%s",
			c.ServerURL, c.Organization, url.PathEscape(project), gitAPIVersion)
	}

	body, err := c.do(http.MethodGet, listURL, nil)
	if err != nil {
		return nil, err
	}

	var list repositoryList
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, fmt.Errorf("failed to parse repository list: %w", err)
	}

	return list.Value, nil
}
