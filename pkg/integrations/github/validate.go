package github

import (
	"regexp"

	"github.com/matzehuels/altlist/pkg/errors"
)

var (
	// 1-39 alphanumerics or hyphens, no leading hyphen.
	validOwner = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9-]{0,38}$`)
	// 1-100 alphanumerics, hyphens, underscores or dots.
	validRepo = regexp.MustCompile(`^[a-zA-Z0-9._-]{1,100}$`)
)

// ValidateOwner checks that owner is a GitHub user or organization name.
func ValidateOwner(owner string) error {
	if owner == "" {
		return errors.New(errors.ErrCodeInvalidInput, "owner cannot be empty")
	}
	if !validOwner.MatchString(owner) {
		return errors.New(errors.ErrCodeInvalidInput, "invalid owner %q: 1-39 letters, digits or hyphens, no leading hyphen", owner)
	}
	return nil
}

// ValidateRepo checks that repo is a GitHub repository name that is safe to
// put in an API path.
func ValidateRepo(repo string) error {
	if repo == "" {
		return errors.New(errors.ErrCodeInvalidInput, "repo cannot be empty")
	}
	if repo == "." || repo == ".." {
		return errors.New(errors.ErrCodeInvalidInput, "repo cannot be a relative path element")
	}
	if !validRepo.MatchString(repo) {
		return errors.New(errors.ErrCodeInvalidInput, "invalid repo %q: 1-100 letters, digits, hyphens, underscores or dots", repo)
	}
	return nil
}

// ValidateRepoRef checks both halves of owner/repo. [Client.Fetch] and the
// enrichment eligibility check share it.
func ValidateRepoRef(owner, repo string) error {
	if err := ValidateOwner(owner); err != nil {
		return err
	}
	return ValidateRepo(repo)
}
