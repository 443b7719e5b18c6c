package models

// Snapshot is the whole-document input produced by the fetcher. It is
// loaded once at startup and never mutated afterwards; a process restart
// is the only way to pick up new data.
type Snapshot struct {
	FetchedAt    string                       `json:"fetched_at"`
	Repo         string                       `json:"repo"`
	Contributors map[string]*ContributorStats `json:"contributors"`
	PRs          []*PullRequest               `json:"prs"`
}
