// Package repolist fetches the newline separated list of repositories to clone.
package repolist

import (
	"context"
	"fmt"
	"gtc/internal/gitrepo"
	"gtc/internal/log"
	"io"
	"net/http"
	"strings"

	"github.com/samber/lo"
)

type StatusError struct {
	URL        string
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("repository list request on %s failed with status: %s", e.URL, e.Status)
}

// Fetch downloads the list at url. Only 200 is accepted. Every non-blank line, trimmed, is a reference.
func Fetch(ctx context.Context, client *http.Client, url string) ([]gitrepo.Reference, error) {
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch repository list: %w", err)
	}
	defer func(body io.ReadCloser) {
		err := body.Close()
		if err != nil {
			logger.Log.Errorf("Failed to close response body: %v", err)
		}
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{URL: url, StatusCode: resp.StatusCode, Status: resp.Status}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read repository list: %w", err)
	}
	references := Parse(string(body))
	logger.Log.Infof("Fetched %d repositories from %s", len(references), url)
	return references, nil
}

func Parse(body string) []gitrepo.Reference {
	return lo.FilterMap(strings.Split(body, "\n"), func(line string, _ int) (gitrepo.Reference, bool) {
		line = strings.TrimSpace(line)
		return gitrepo.Reference(line), line != ""
	})
}
