// Package matcher implements the semantic issue-matching engine: it expands
// search keywords, fetches candidate issues, embeds them alongside the
// caller's query, and ranks candidates by vector similarity. The engine is
// fail-soft: every failure mode resolves to a well-formed MatchResponse and
// nothing escapes TopMatchedIssues.
package matcher

import (
	"context"
	"fmt"
	"log"

	"github.com/firstmatch/gh-firstmatch/internal/embedding"
	"github.com/firstmatch/gh-firstmatch/internal/vecindex"
	"github.com/firstmatch/gh-firstmatch/pkg/models"
	"github.com/google/uuid"
)

const (
	// DefaultTopK is the number of matches returned when the caller does
	// not ask for a specific count
	DefaultTopK = 10

	// defaultPerKeyword caps results fetched per search keyword
	defaultPerKeyword = 5

	msgSuccess  = "Successfully matched issues"
	msgNoIssues = "No issues found for the given keywords. Try adjusting your search criteria or check back later."
)

// Fetcher retrieves candidate issues for a keyword set. Implementations
// degrade failures to an empty result instead of returning an error.
type Fetcher interface {
	SearchIssues(ctx context.Context, keywords []string, perKeyword int, token string) []*models.Issue
}

// EmbedderSource hands out the process-wide embedding provider, loading it
// lazily. embedding.Loader implements this; tests inject fakes.
type EmbedderSource interface {
	Get() (embedding.Provider, error)
}

// Engine composes fetching, embedding, indexing and formatting into the
// single caller-facing matching operation
type Engine struct {
	fetcher    Fetcher
	embedders  EmbedderSource
	perKeyword int
}

// NewEngine creates a matching engine
func NewEngine(fetcher Fetcher, embedders EmbedderSource, perKeyword int) *Engine {
	if perKeyword <= 0 {
		perKeyword = defaultPerKeyword
	}
	return &Engine{
		fetcher:    fetcher,
		embedders:  embedders,
		perKeyword: perKeyword,
	}
}

// TopMatchedIssues returns the topK candidate issues most similar to
// queryText. It is safe to call with any combination of empty inputs and
// never returns an error or panics: internal failures come back as an
// envelope with an empty recommendation list and an explanatory message.
func (e *Engine) TopMatchedIssues(ctx context.Context, queryText string, keywords, languages []string, topK int, token string) (resp *models.MatchResponse) {
	reqID := uuid.NewString()[:8]

	defer func() {
		if r := recover(); r != nil {
			log.Printf("[%s] matcher: recovered from panic: %v", reqID, r)
			resp = errorResponse(fmt.Sprintf("%v", r))
		}
	}()

	if topK <= 0 {
		topK = DefaultTopK
	}

	// Attempt the provider load up front; a failure is remembered and the
	// request still proceeds to the fetch so the counts stay meaningful.
	provider, loadErr := e.embedders.Get()

	searchKeywords := expandKeywords(keywords, languages)
	log.Printf("[%s] matcher: search keywords: %v", reqID, searchKeywords)

	issues := e.fetcher.SearchIssues(ctx, searchKeywords, e.perKeyword, token)
	if len(issues) == 0 {
		log.Printf("[%s] matcher: no issues for expanded keywords, trying fallback set", reqID)
		issues = e.fetcher.SearchIssues(ctx, fallbackKeywords(), e.perKeyword, token)
	}
	if len(issues) == 0 {
		log.Printf("[%s] matcher: no issues found even with fallback keywords", reqID)
		return &models.MatchResponse{
			Recommendations: []models.MatchResult{},
			Message:         msgNoIssues,
		}
	}

	if loadErr != nil {
		log.Printf("[%s] matcher: embedding provider unavailable: %v", reqID, loadErr)
		return &models.MatchResponse{
			Recommendations: []models.MatchResult{},
			IssuesFetched:   len(issues),
			Message:         "Embedding model unavailable: " + loadErr.Error(),
		}
	}

	texts := make([]string, len(issues))
	for i, issue := range issues {
		texts[i] = embedding.PrepareIssueText(issue.Title, issue.Body)
	}

	vectors, err := provider.EmbedBatch(ctx, texts)
	if err != nil {
		log.Printf("[%s] matcher: embedding candidates failed: %v", reqID, err)
		return errorResponse(err.Error())
	}
	if len(vectors) != len(issues) {
		return errorResponse(fmt.Sprintf("embedding count mismatch: %d texts, %d vectors", len(issues), len(vectors)))
	}

	index, err := vecindex.NewFlatL2(len(vectors[0]))
	if err != nil {
		return errorResponse(err.Error())
	}
	if err := index.Add(vectors); err != nil {
		return errorResponse(err.Error())
	}
	log.Printf("[%s] matcher: indexed %d vectors of dimension %d", reqID, index.NTotal(), index.Dimension())

	queryVector, err := provider.Embed(ctx, queryText)
	if err != nil {
		log.Printf("[%s] matcher: embedding query failed: %v", reqID, err)
		return errorResponse(err.Error())
	}

	positions, distances, err := index.Search(queryVector, topK)
	if err != nil {
		return errorResponse(err.Error())
	}
	log.Printf("[%s] matcher: search distances: %v", reqID, distances)

	results := formatMatches(positions, distances, issues)

	return &models.MatchResponse{
		Recommendations: results,
		IssuesFetched:   len(issues),
		IssuesIndexed:   index.NTotal(),
		Message:         msgSuccess,
	}
}

// errorResponse is the terminal envelope for any internal failure
func errorResponse(msg string) *models.MatchResponse {
	return &models.MatchResponse{
		Recommendations: []models.MatchResult{},
		Message:         "Error matching issues: " + msg,
	}
}
