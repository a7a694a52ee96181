//go:build integration

package github

import (
	"context"
	"os"
	"testing"
	"time"
)

func TestFetch_Integration(t *testing.T) {
	token := os.Getenv("GITHUB_TOKEN")
	if token == "" {
		t.Skip("GITHUB_TOKEN not set, skipping integration test")
	}

	client := NewClient(Options{Token: token})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	tests := []struct {
		name    string
		owner   string
		repo    string
		wantErr bool
	}{
		{"mattermost", "mattermost", "mattermost", false},
		{"nonexistent", "nonexistent-owner-12345", "nonexistent-repo", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats, _, err := client.Fetch(ctx, tt.owner, tt.repo, true)
			if (err != nil) != tt.wantErr {
				t.Errorf("Fetch(%q, %q) error = %v, wantErr %v", tt.owner, tt.repo, err, tt.wantErr)
				return
			}
			if !tt.wantErr {
				if stats.Stars <= 0 {
					t.Errorf("Stars = %d, want > 0", stats.Stars)
				}
				if _, err := time.Parse(time.RFC3339, stats.PushedAt); err != nil {
					t.Errorf("PushedAt %q is not RFC 3339: %v", stats.PushedAt, err)
				}
			}
		})
	}
}
