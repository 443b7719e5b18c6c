package models

// ContributorStats represents the aggregate counters for one GitHub login
// within the observation window. Built once per snapshot from the merged
// pull request corpus and read-only for the lifetime of the process.
type ContributorStats struct {
	Name                string  `json:"name"`
	AvatarURL           string  `json:"avatar_url"`
	PRsCreated          int     `json:"prs_created"`
	TotalFilesChanged   int     `json:"total_files_changed"`
	TotalAdditions      int     `json:"total_additions"`
	TotalDeletions      int     `json:"total_deletions"`
	AvgTimeToMergeHours float64 `json:"avg_time_to_merge_hours"`
	ReviewsGiven        int     `json:"reviews_given"`
	PRsReviewed         int     `json:"prs_reviewed"`
}
