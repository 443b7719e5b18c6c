package models

import (
	"time"
)

// PullRequest represents one merged GitHub pull request in the snapshot
type PullRequest struct {
	AuthorUsername   string     `json:"author_username"`
	Title            string     `json:"title"`
	FilesChanged     int        `json:"files_changed"`
	Additions        int        `json:"additions"`
	Deletions        int        `json:"deletions"`
	TimeToMergeHours float64    `json:"time_to_merge_hours"`
	CreatedAt        *time.Time `json:"created_at"`
	MergedAt         *time.Time `json:"merged_at"`
	CommentsCount    int        `json:"comments_count"`
	ReviewsCount     int        `json:"reviews_count"`
	Reviewers        []string   `json:"reviewers"`
}
