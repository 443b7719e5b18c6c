package repositories

import "errors"

var (
	// ErrContributorNotFound is returned when a login is not part of the
	// loaded snapshot
	ErrContributorNotFound = errors.New("contributor not found")

	// ErrMissingContributors is returned when the snapshot document has no
	// "contributors" key
	ErrMissingContributors = errors.New("snapshot is missing the contributors key")

	// ErrMissingPullRequests is returned when the snapshot document has no
	// "prs" key
	ErrMissingPullRequests = errors.New("snapshot is missing the prs key")
)
