package services

import (
	"fmt"
	"sort"
	"time"

	"github.com/devimpact/impactboard/internal/models"
	"github.com/devimpact/impactboard/internal/repositories"
)

// TrendService buckets merged PR counts by ISO week and author into a
// chart-ready series for the top contributors.
type TrendService struct {
	snapshotRepo *repositories.SnapshotRepository
}

func NewTrendService(snapshotRepo *repositories.SnapshotRepository) *TrendService {
	return &TrendService{
		snapshotRepo: snapshotRepo,
	}
}

// GetWeeklyTrends returns the per-week merged PR counts for the given
// top contributors, in chronological week order. Weeks in which none of
// the top contributors merged anything are omitted; within a row every
// top contributor has an entry, zero included.
func (s *TrendService) GetWeeklyTrends(topEngineers []*models.ImpactResult) *models.TrendsResponse {
	topUsernames := make(map[string]bool, len(topEngineers))
	engineers := make([]models.TrendEngineer, 0, len(topEngineers))
	for _, engineer := range topEngineers {
		topUsernames[engineer.Username] = true
		engineers = append(engineers, models.TrendEngineer{
			Username: engineer.Username,
			Name:     engineer.Name,
		})
	}

	// Group qualifying PRs by ISO week key and author
	weekly := make(map[string]map[string]int)
	for _, pr := range s.snapshotRepo.PullRequests() {
		if !topUsernames[pr.AuthorUsername] {
			continue
		}
		if pr.MergedAt == nil {
			continue
		}

		key := isoWeekKey(*pr.MergedAt)
		if weekly[key] == nil {
			weekly[key] = make(map[string]int)
		}
		weekly[key][pr.AuthorUsername]++
	}

	// The keys are zero-padded "YYYY-Www" strings using the ISO week-year,
	// so a lexical sort is chronological even across year boundaries.
	weekKeys := make([]string, 0, len(weekly))
	for key := range weekly {
		weekKeys = append(weekKeys, key)
	}
	sort.Strings(weekKeys)

	series := make([]models.TrendRow, 0, len(weekKeys))
	for _, key := range weekKeys {
		row := models.TrendRow{
			Week:   isoWeekLabel(key),
			Counts: make(map[string]int, len(engineers)),
		}
		for _, engineer := range engineers {
			row.Counts[engineer.Username] = weekly[key][engineer.Username]
		}
		series = append(series, row)
	}

	return &models.TrendsResponse{
		Engineers: engineers,
		Series:    series,
	}
}

// isoWeekKey builds a lexically sortable week key from the ISO week-year
// and week number (weeks start Monday, week 1 contains the year's first
// Thursday). ISOWeek already returns the week-year, which keeps late
// December and early January weeks correctly ordered.
func isoWeekKey(t time.Time) string {
	year, week := t.UTC().ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}

// isoWeekLabel converts a week key into the human-readable label of the
// week's Monday, e.g. "Dec 29"
func isoWeekLabel(key string) string {
	var year, week int
	if _, err := fmt.Sscanf(key, "%d-W%d", &year, &week); err != nil {
		return key
	}
	return isoWeekMonday(year, week).Format("Jan 02")
}

// isoWeekMonday returns the Monday of the given ISO week. January 4th is
// always inside ISO week 1, so the Monday of week 1 is found by walking
// back from it.
func isoWeekMonday(year, week int) time.Time {
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	weekOneMonday := jan4.AddDate(0, 0, -((int(jan4.Weekday()) + 6) % 7))
	return weekOneMonday.AddDate(0, 0, (week-1)*7)
}
