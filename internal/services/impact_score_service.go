package services

import (
	"math"

	"github.com/devimpact/impactboard/internal/models"
)

// Dimension weights for the overall impact score
const (
	qualityWeight       = 0.30
	velocityWeight      = 0.30
	collaborationWeight = 0.20
	leadershipWeight    = 0.20
)

// mergeTimeCeilingHours caps the merge time signal; anything slower than
// 3 days is treated as an outlier rather than pushing the score negative
const mergeTimeCeilingHours = 72.0

// assumedWindowMonths converts prs_created into PRs/month. The fetcher
// collects a fixed 90-day window, so this stays a constant instead of
// being derived from the timestamp span of the corpus.
const assumedWindowMonths = 3.0

// ImpactScoreService computes the per-dimension and overall impact
// scores for a contributor. All methods are pure: they read only the
// given stats and allocate new results, so they are safe to call
// concurrently.
type ImpactScoreService struct{}

func NewImpactScoreService() *ImpactScoreService {
	return &ImpactScoreService{}
}

// QualityScore scores how clean the contributor's code is, using merge
// time (faster approval as a proxy for cleaner code), PR size (sweet
// spot between 200 and 500 changed lines) and review activity.
func (s *ImpactScoreService) QualityScore(contributor *models.ContributorStats) float64 {
	// Fast merge time = quality (inverse relationship)
	mergeTime := math.Min(contributor.AvgTimeToMergeHours, mergeTimeCeilingHours)
	mergeScore := 100 * (1 - mergeTime/mergeTimeCeilingHours)

	// Reasonable PR size: [200, 500] changed lines scores the maximum,
	// below scales up from 50, above decays 1 point per 20 lines with a
	// floor at 50
	avgChange := float64(contributor.TotalAdditions+contributor.TotalDeletions) /
		math.Max(float64(contributor.PRsCreated), 1)

	var sizeScore float64
	switch {
	case avgChange >= 200 && avgChange <= 500:
		sizeScore = 100
	case avgChange < 200:
		sizeScore = 50 + (avgChange/200)*50
	default:
		sizeScore = math.Max(50, 100-(avgChange-500)/20)
	}

	// Active reviewers understand the quality bar; saturates at 20 reviews
	reviewActivity := math.Min(float64(contributor.ReviewsGiven)/20, 1) * 100

	return clampScore(0.50*mergeScore + 0.30*sizeScore + 0.20*reviewActivity)
}

// VelocityScore scores how much meaningful work the contributor ships:
// consistency (PRs per month, saturating at 10) and complexity (average
// files touched per PR, saturating at 15).
func (s *ImpactScoreService) VelocityScore(contributor *models.ContributorStats) float64 {
	prsPerMonth := float64(contributor.PRsCreated) / assumedWindowMonths
	consistencyScore := math.Min(prsPerMonth/10, 1) * 100

	avgFiles := float64(contributor.TotalFilesChanged) /
		math.Max(float64(contributor.PRsCreated), 1)
	complexityScore := math.Min(avgFiles/15, 1) * 100

	return clampScore(0.40*consistencyScore + 0.60*complexityScore)
}

// CollaborationScore scores how much the contributor helps the team
// through reviews: volume (saturating at 30 reviews) and depth (review
// events per distinct PR reviewed, saturating at 3).
func (s *ImpactScoreService) CollaborationScore(contributor *models.ContributorStats) float64 {
	reviewVolume := math.Min(float64(contributor.ReviewsGiven)/30, 1) * 100

	var reviewDepth float64
	if contributor.PRsReviewed > 0 {
		ratio := float64(contributor.ReviewsGiven) / float64(contributor.PRsReviewed)
		reviewDepth = math.Min(ratio/3, 1) * 100
	}

	return clampScore(0.70*reviewVolume + 0.30*reviewDepth)
}

// LeadershipScore scores whether the contributor is a go-to expert:
// code ownership (files touched, saturating at 200) and dual-role
// balance. Balance requires both authoring and reviewing; doing only
// one of the two scores zero on that sub-dimension.
func (s *ImpactScoreService) LeadershipScore(contributor *models.ContributorStats) float64 {
	ownership := math.Min(float64(contributor.TotalFilesChanged)/200, 1) * 100

	var balance float64
	if contributor.PRsCreated > 0 && contributor.ReviewsGiven > 0 {
		total := float64(contributor.PRsCreated + contributor.ReviewsGiven)
		balance = math.Min(total/40, 1) * 100
	}

	return clampScore(0.60*ownership + 0.40*balance)
}

// CalculateImpact combines the four dimension scores into the weighted
// overall score and assembles the result record for one contributor.
// It always succeeds: degenerate inputs (e.g. a reviewer who never
// authored a PR) are handled by the defensive denominators above.
func (s *ImpactScoreService) CalculateImpact(username string, contributor *models.ContributorStats) *models.ImpactResult {
	quality := s.QualityScore(contributor)
	velocity := s.VelocityScore(contributor)
	collaboration := s.CollaborationScore(contributor)
	leadership := s.LeadershipScore(contributor)

	impact := qualityWeight*quality +
		velocityWeight*velocity +
		collaborationWeight*collaboration +
		leadershipWeight*leadership

	return &models.ImpactResult{
		Username:           username,
		Name:               contributor.Name,
		AvatarURL:          contributor.AvatarURL,
		ImpactScore:        roundScore(clampScore(impact)),
		QualityScore:       roundScore(quality),
		VelocityScore:      roundScore(velocity),
		CollaborationScore: roundScore(collaboration),
		LeadershipScore:    roundScore(leadership),
		Stats: models.ImpactStats{
			PRsCreated:   contributor.PRsCreated,
			ReviewsGiven: contributor.ReviewsGiven,
			FilesChanged: contributor.TotalFilesChanged,
			AvgMergeTime: contributor.AvgTimeToMergeHours,
		},
	}
}

// clampScore defends the [0, 100] boundary after weighting
func clampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// roundScore rounds to one decimal place for display
func roundScore(score float64) float64 {
	return math.Round(score*10) / 10
}
