package models

import "time"

// MatchResult is one recommended issue in the externally visible shape
type MatchResult struct {
	IssueID          int64     `json:"issue_id"`
	IssueURL         string    `json:"issue_url"`
	RepoURL          string    `json:"repo_url"`
	Title            string    `json:"title"`
	CreatedAt        time.Time `json:"created_at"`
	UserLogin        string    `json:"user_login"`
	Labels           []string  `json:"labels"`
	SimilarityScore  float64   `json:"similarity_score"`
	ShortDescription string    `json:"short_description"`
}

// MatchResponse is the sole return contract of the matching engine. It is
// always well-formed: on any internal failure the recommendations list is
// empty and Message explains what happened.
type MatchResponse struct {
	Recommendations []MatchResult `json:"recommendations"`
	IssuesFetched   int           `json:"issues_fetched"`
	IssuesIndexed   int           `json:"issues_indexed"`
	Message         string        `json:"message"`
}
