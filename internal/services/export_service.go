package services

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ExportService writes the full impact ranking into an Excel workbook
// for offline analysis.
type ExportService struct {
	rankingService *RankingService
}

func NewExportService(rankingService *RankingService) *ExportService {
	return &ExportService{
		rankingService: rankingService,
	}
}

var exportHeaders = []string{
	"Username",
	"Name",
	"Impact Score",
	"Quality",
	"Velocity",
	"Collaboration",
	"Leadership",
	"PRs Created",
	"Reviews Given",
	"Files Changed",
	"Avg Merge Time (h)",
}

// ExportRanking builds an xlsx workbook with one row per ranked
// contributor, in ranking order.
func (s *ExportService) ExportRanking() (*excelize.File, error) {
	file := excelize.NewFile()

	const sheet = "Ranking"
	if err := file.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}

	for col, header := range exportHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, fmt.Errorf("failed to build header cell: %w", err)
		}
		if err := file.SetCellValue(sheet, cell, header); err != nil {
			return nil, fmt.Errorf("failed to write header %s: %w", header, err)
		}
	}

	for row, result := range s.rankingService.GetAllEngineers() {
		values := []interface{}{
			result.Username,
			result.Name,
			result.ImpactScore,
			result.QualityScore,
			result.VelocityScore,
			result.CollaborationScore,
			result.LeadershipScore,
			result.Stats.PRsCreated,
			result.Stats.ReviewsGiven,
			result.Stats.FilesChanged,
			result.Stats.AvgMergeTime,
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, fmt.Errorf("failed to build cell for %s: %w", result.Username, err)
			}
			if err := file.SetCellValue(sheet, cell, value); err != nil {
				return nil, fmt.Errorf("failed to write row for %s: %w", result.Username, err)
			}
		}
	}

	return file, nil
}
