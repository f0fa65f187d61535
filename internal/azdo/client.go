package azdo

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/callmegreg/azdo-codeql-enable/internal/types"
)

const (
	// DefaultServerURL is the Azure DevOps Services host serving the core REST API
	DefaultServerURL = "https://dev.azure.com"
	// DefaultAdvSecURL is the host serving the Advanced Security management API
	DefaultAdvSecURL = "https://advsec.dev.azure.com"

	gitAPIVersion        = "7.1"
	enablementAPIVersion = "7.2-preview.1"
)

// Doer issues a single HTTP request. Tests substitute it to stub the transport.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to the Azure DevOps REST API for one organization. Requests
// authenticate with a personal access token over basic auth.
type Client struct {
	Organization string
	ServerURL    string
	AdvSecURL    string

	token      string
	httpClient Doer
}

// NewClient returns a Client for the organization authenticating with the
// given personal access token
func NewClient(organization, token string) *Client {
	return &Client{
		Organization: organization,
		ServerURL:    DefaultServerURL,
		AdvSecURL:    DefaultAdvSecURL,
		token:        token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// do executes a request against the API and returns the response body. Any
// non-2xx status is converted into a *types.APIError.
func (c *Client) do(method, requestURL string, body interface{}) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, requestURL, reader)
	if err != nil {
		return nil, err
	}

	// Azure DevOps expects basic auth with an empty user name, the token
	// alone identifies the caller
	req.SetBasicAuth("", c.token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &types.APIError{
			StatusCode: resp.StatusCode,
			Message:    errorMessage(respBody),
		}
	}

	return respBody, nil
}

// errorMessage extracts the "message" field Azure DevOps nests in error
// responses, falling back to a trimmed body snippet
func errorMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}

	snippet := strings.TrimSpace(string(body))
	if len(snippet) > 200 {
		snippet = snippet[:200]
	}
	return snippet
}
