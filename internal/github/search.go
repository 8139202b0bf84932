package github

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"sync"

	"github.com/firstmatch/gh-firstmatch/pkg/models"
)

// searchQualifiers restricts results to open issues, excluding pull requests
const searchQualifiers = "state:open type:issue"

// searchResponse is the GitHub search API response shape
type searchResponse struct {
	TotalCount int           `json:"total_count"`
	Items      []searchIssue `json:"items"`
}

// SearchIssues fetches candidate issues for every keyword concurrently and
// returns the merged set, deduplicated by issue URL. Failures are isolated
// per keyword: a keyword whose search fails contributes zero results. The
// method never returns an error; the worst case is an empty slice.
func (c *Client) SearchIssues(ctx context.Context, keywords []string, perKeyword int, token string) []*models.Issue {
	if len(keywords) == 0 {
		return nil
	}
	if perKeyword <= 0 {
		perKeyword = 5
	}

	rest, err := c.newREST(token)
	if err != nil {
		log.Printf("github: failed to create REST client: %v", err)
		return nil
	}

	// Fan out one search per keyword; results land in per-keyword slots so
	// completion order does not matter.
	perKeywordResults := make([][]*models.Issue, len(keywords))
	var wg sync.WaitGroup
	for i, keyword := range keywords {
		wg.Add(1)
		go func(i int, keyword string) {
			defer wg.Done()
			perKeywordResults[i] = c.searchKeyword(ctx, rest, keyword, perKeyword)
		}(i, keyword)
	}
	wg.Wait()

	// Merge and deduplicate by issue URL
	seen := make(map[string]bool)
	var unique []*models.Issue
	for _, issues := range perKeywordResults {
		for _, issue := range issues {
			if seen[issue.URL] {
				continue
			}
			seen[issue.URL] = true
			unique = append(unique, issue)
		}
	}

	log.Printf("github: fetched %d unique issues for %d keywords", len(unique), len(keywords))
	return unique
}

// searchKeyword runs a single keyword search with its own timeout. Any
// failure (non-2xx, rate limit, timeout) degrades to zero results.
func (c *Client) searchKeyword(ctx context.Context, rest restClient, keyword string, perKeyword int) []*models.Issue {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	params := url.Values{}
	params.Set("q", fmt.Sprintf("%s %s", keyword, searchQualifiers))
	params.Set("per_page", strconv.Itoa(perKeyword))
	endpoint := "search/issues?" + params.Encode()

	var resp searchResponse
	if err := rest.DoWithContext(ctx, http.MethodGet, endpoint, nil, &resp); err != nil {
		log.Printf("github: search failed for keyword %q: %v", keyword, err)
		return nil
	}

	items := resp.Items
	if len(items) > perKeyword {
		items = items[:perKeyword]
	}

	issues := make([]*models.Issue, 0, len(items))
	for i := range items {
		issues = append(issues, items[i].toModel())
	}

	log.Printf("github: found %d issues for keyword %q", len(issues), keyword)
	return issues
}
