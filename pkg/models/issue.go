package models

import (
	"time"

	"github.com/google/uuid"
)

// Issue represents a candidate GitHub issue fetched for a single match
// request. Candidates are never persisted; they live for one request only.
type Issue struct {
	ID        int64     `json:"id"`
	URL       string    `json:"url"`
	RepoURL   string    `json:"repo_url"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	State     string    `json:"state"` // "open" or "closed"
	Labels    []string  `json:"labels"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UUID generates a deterministic UUID based on the issue URL
func (i *Issue) UUID() string {
	return IssueUUID(i.URL)
}

// IssueUUID generates a deterministic UUID from an issue URL
func IssueUUID(url string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(url)).String()
}
