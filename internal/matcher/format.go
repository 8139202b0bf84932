package matcher

import (
	"log"
	"regexp"
	"strings"

	"github.com/firstmatch/gh-firstmatch/pkg/models"
)

// shortDescriptionLimit is the length at which descriptions get truncated;
// a truncated description is this plus the 3-char ellipsis marker.
const shortDescriptionLimit = 120

var whitespaceRun = regexp.MustCompile(`\s+`)

// scoreFromDistance converts a raw index distance into the similarity score
// exposed to callers. The mapping is a fixed heuristic, deliberately not
// cosine similarity, and is not clamped: distant matches can score below
// zero and callers see that as-is.
func scoreFromDistance(distance float32) float64 {
	return 1.0 - float64(distance)/2.0
}

// formatMatches converts raw search hits into MatchResults. A position
// outside the candidate list is logged and skipped rather than failing the
// whole request.
func formatMatches(positions []int, distances []float32, candidates []*models.Issue) []models.MatchResult {
	results := make([]models.MatchResult, 0, len(positions))

	for i, pos := range positions {
		if pos < 0 || pos >= len(candidates) {
			log.Printf("matcher: invalid neighbor position %d (have %d candidates), skipping", pos, len(candidates))
			continue
		}
		issue := candidates[pos]
		log.Printf("matcher: matched issue %s (%s)", issue.UUID(), issue.URL)

		labels := issue.Labels
		if labels == nil {
			labels = []string{}
		}

		results = append(results, models.MatchResult{
			IssueID:          issue.ID,
			IssueURL:         issue.URL,
			RepoURL:          rewriteRepoURL(issue.RepoURL),
			Title:            issue.Title,
			CreatedAt:        issue.CreatedAt,
			UserLogin:        issue.Author,
			Labels:           labels,
			SimilarityScore:  scoreFromDistance(distances[i]),
			ShortDescription: shortDescription(issue.Body),
		})
	}

	return results
}

// shortDescription collapses whitespace runs to single spaces, trims, and
// truncates to 120 characters plus an ellipsis marker. The limit counts
// characters, not bytes, so multibyte text is never cut mid-rune.
func shortDescription(body string) string {
	cleaned := strings.TrimSpace(whitespaceRun.ReplaceAllString(body, " "))
	runes := []rune(cleaned)
	if len(runes) > shortDescriptionLimit {
		return string(runes[:shortDescriptionLimit]) + "..."
	}
	return cleaned
}

// rewriteRepoURL turns the API repository reference into the web URL
func rewriteRepoURL(repoURL string) string {
	return strings.ReplaceAll(repoURL, "api.github.com/repos", "github.com")
}
