package embedding

import (
	"strings"
	"testing"
)

func TestPrepareIssueText(t *testing.T) {
	tests := []struct {
		name   string
		title  string
		body   string
		expect string
	}{
		{
			name:   "title and body",
			title:  "Fix login bug",
			body:   "Steps to reproduce",
			expect: "Fix login bug Steps to reproduce",
		},
		{
			name:   "empty body",
			title:  "Fix login bug",
			body:   "",
			expect: "Fix login bug ",
		},
		{
			name:   "empty title and body",
			title:  "",
			body:   "",
			expect: " ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := PrepareIssueText(tt.title, tt.body)
			if result != tt.expect {
				t.Errorf("PrepareIssueText() = %q, want %q", result, tt.expect)
			}
		})
	}
}

func TestPrepareIssueText_Truncates(t *testing.T) {
	body := strings.Repeat("x", 10000)
	result := PrepareIssueText("title", body)

	if len(result) != maxEmbedChars+3 {
		t.Errorf("truncated length = %d, want %d", len(result), maxEmbedChars+3)
	}
	if !strings.HasSuffix(result, "...") {
		t.Errorf("truncated text should end with ellipsis marker")
	}
}
