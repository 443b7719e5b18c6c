package repositories

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/devimpact/impactboard/internal/models"
)

// SnapshotRepository provides read-only access to the loaded snapshot.
// The snapshot is immutable after load, so every method is safe to call
// concurrently from multiple request handlers without locking.
type SnapshotRepository struct {
	snapshot  *models.Snapshot
	usernames []string
}

// NewSnapshotRepository wraps an already-parsed snapshot
func NewSnapshotRepository(snapshot *models.Snapshot) *SnapshotRepository {
	usernames := make([]string, 0, len(snapshot.Contributors))
	for username := range snapshot.Contributors {
		usernames = append(usernames, username)
	}
	sort.Strings(usernames)

	return &SnapshotRepository{
		snapshot:  snapshot,
		usernames: usernames,
	}
}

// LoadSnapshotRepository reads the snapshot document from disk. A missing
// file, malformed JSON, or a document without the contributors/prs keys
// is a startup failure: there is no partial-load mode.
func LoadSnapshotRepository(path string) (*SnapshotRepository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot %s: %w", path, err)
	}

	var snapshot models.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot %s: %w", path, err)
	}

	// A nil map/slice means the key was absent; an empty document with
	// both keys present is still a valid snapshot.
	if snapshot.Contributors == nil {
		return nil, fmt.Errorf("snapshot %s: %w", path, ErrMissingContributors)
	}
	if snapshot.PRs == nil {
		return nil, fmt.Errorf("snapshot %s: %w", path, ErrMissingPullRequests)
	}

	return NewSnapshotRepository(&snapshot), nil
}

// GetContributor returns the stats for a single login
func (r *SnapshotRepository) GetContributor(username string) (*models.ContributorStats, error) {
	contributor, exists := r.snapshot.Contributors[username]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrContributorNotFound, username)
	}
	return contributor, nil
}

// Usernames returns every known login in lexical order. Ranking iterates
// this slice, which keeps tie order deterministic across processes.
func (r *SnapshotRepository) Usernames() []string {
	return r.usernames
}

// PullRequests returns the merged pull request corpus. Callers must not
// mutate the returned slice.
func (r *SnapshotRepository) PullRequests() []*models.PullRequest {
	return r.snapshot.PRs
}

// Repo returns the owner/repo the snapshot was fetched from
func (r *SnapshotRepository) Repo() string {
	return r.snapshot.Repo
}

// FetchedAt returns the snapshot's fetch timestamp metadata
func (r *SnapshotRepository) FetchedAt() string {
	return r.snapshot.FetchedAt
}
