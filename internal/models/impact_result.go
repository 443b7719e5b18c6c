package models

// ImpactStats is the read-only stats view attached to an ImpactResult
// for display transparency
type ImpactStats struct {
	PRsCreated   int     `json:"prs_created"`
	ReviewsGiven int     `json:"reviews_given"`
	FilesChanged int     `json:"files_changed"`
	AvgMergeTime float64 `json:"avg_merge_time"`
}

// ImpactResult represents the scored record for one contributor. It is
// derived on every ranking request, never stored.
type ImpactResult struct {
	Username           string      `json:"username"`
	Name               string      `json:"name"`
	AvatarURL          string      `json:"avatar_url"`
	ImpactScore        float64     `json:"impact_score"`
	QualityScore       float64     `json:"quality_score"`
	VelocityScore      float64     `json:"velocity_score"`
	CollaborationScore float64     `json:"collaboration_score"`
	LeadershipScore    float64     `json:"leadership_score"`
	Stats              ImpactStats `json:"stats"`
}
