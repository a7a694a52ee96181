package github

import (
	"strings"
	"testing"

	"github.com/matzehuels/altlist/pkg/errors"
)

func TestValidateRepoRef(t *testing.T) {
	tests := []struct {
		name        string
		owner, repo string
		wantErr     bool
	}{
		{"simple", "mattermost", "mattermost", false},
		{"dash", "go-gitea", "gitea", false},
		{"dot", "socketio", "socket.io", false},
		{"underscore", "owner", "repo_name", false},
		{"empty owner", "", "repo", true},
		{"empty repo", "owner", "", true},
		{"leading hyphen", "-owner", "repo", true},
		{"underscore owner", "owner_name", "repo", true},
		{"long owner", strings.Repeat("a", 40), "repo", true},
		{"long repo", "owner", strings.Repeat("a", 101), true},
		{"space", "owner", "repo name", true},
		{"traversal", "owner", "../etc", true},
		{"dot element", "owner", ".", true},
		{"dot dot element", "owner", "..", true},
		{"query", "owner", "repo?tab=readme", true},
		{"fragment", "owner", "repo#readme", true},
		{"percent", "owner", "repo%2F", true},
		{"control char", "owner", "foo\x01bar", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRepoRef(tt.owner, tt.repo)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRepoRef(%q, %q) = %v, wantErr %v", tt.owner, tt.repo, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrCodeInvalidInput) {
				t.Errorf("code = %s, want %s", errors.GetCode(err), errors.ErrCodeInvalidInput)
			}
		})
	}
}
