package cindervolume

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/hashicorp/go-cleanhttp"

	"github.com/datera/ddct/pkg/util/jq"
	"github.com/datera/ddct/pkg/util/version"
)

// DefaultTagsURL lists the release tags of the upstream Cinder driver.
const DefaultTagsURL = "https://api.github.com/repos/Datera/cinder-driver/tags"

// VersionSource reports the latest released driver version.
type VersionSource interface {
	LatestVersion(ctx context.Context) (string, error)
}

// GitHubSource reads driver releases from the GitHub tags API.
type GitHubSource struct {
	URL    string
	Client *http.Client
}

// NewGitHubSource creates a source for DefaultTagsURL.
func NewGitHubSource() *GitHubSource {
	client := cleanhttp.DefaultClient()
	client.Timeout = 30 * time.Second

	return &GitHubSource{
		URL:    DefaultTagsURL,
		Client: client,
	}
}

// LatestVersion returns the highest semantic version among the tag names.
func (s *GitHubSource) LatestVersion(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return "", fmt.Errorf("building tags request: %w", err)
	}

	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := s.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching driver tags: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetching driver tags: unexpected status %s", resp.Status)
	}

	var doc any
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return "", fmt.Errorf("decoding driver tags: %w", err)
	}

	names, err := jq.QueryAll[string](doc, ".[].name")
	if err != nil {
		return "", fmt.Errorf("reading tag names: %w", err)
	}

	latest, err := version.Latest(names)
	if err != nil {
		return "", fmt.Errorf("selecting latest driver tag: %w", err)
	}

	return latest.String(), nil
}
