package models

import (
	"testing"
)

func TestIssueUUID(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{"plain", "https://github.com/myorg/myrepo/issues/123"},
		{"other repo", "https://github.com/other/repo/issues/456"},
		{"first issue", "https://github.com/test/test/issues/1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// UUID should be deterministic
			uuid1 := IssueUUID(tt.url)
			uuid2 := IssueUUID(tt.url)

			if uuid1 != uuid2 {
				t.Errorf("IssueUUID not deterministic: %v != %v", uuid1, uuid2)
			}

			// UUID should be valid format
			if len(uuid1) != 36 {
				t.Errorf("IssueUUID invalid length: %d", len(uuid1))
			}
		})
	}
}

func TestIssueUUID_Distinct(t *testing.T) {
	a := IssueUUID("https://github.com/myorg/myrepo/issues/1")
	b := IssueUUID("https://github.com/myorg/myrepo/issues/2")
	if a == b {
		t.Errorf("different URLs produced same UUID: %v", a)
	}
}

func TestIssue_UUID(t *testing.T) {
	issue := &Issue{URL: "https://github.com/myorg/myrepo/issues/7"}
	if issue.UUID() != IssueUUID(issue.URL) {
		t.Errorf("Issue.UUID() = %v, want %v", issue.UUID(), IssueUUID(issue.URL))
	}
}
