package contests

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"judge/database"
	"judge/models"
)

// ExportContestAttemptsExcel exports every attempt of a contest as an XLSX file
// @Summary Export contest attempts
// @Description Export all attempts of the contest as an XLSX spreadsheet
// @Tags Contests
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path string true "Contest ID"
// @Success 200 {file} binary
// @Failure 404 {object} map[string]string
// @Router /contests/{id}/export [get]
// @Security Bearer
func ExportContestAttemptsExcel(c *gin.Context) {
	var contest models.Contest
	if err := database.DB.First(&contest, "id = ?", c.Param("id")).Error; err != nil {
		respondWithError(c, http.StatusNotFound, ErrContestNotFound)
		return
	}

	var attempts []models.Attempt
	err := database.DB.
		Joins("JOIN problem_parts ON problem_parts.id = attempts.part_id").
		Joins("JOIN problems ON problems.id = problem_parts.problem_id").
		Where("problems.contest_id = ?", contest.ID).
		Preload("Owner").
		Preload("Part.Problem").
		Order("attempts.created_at").
		Find(&attempts).Error
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedExport)
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	headers := []string{"Contestant", "Problem", "Part", "Created At", "Status", "Reason", "Score", "Test File"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, header)
	}

	for row, attempt := range attempts {
		reason := ""
		if attempt.Reason != nil {
			reason = attempt.Reason.String()
		}
		values := []interface{}{
			attempt.Owner.Username,
			attempt.Part.Problem.Name,
			attempt.Part.Name,
			attempt.CreatedAt.Format("2006-01-02 15:04:05"),
			attempt.Status.String(),
			reason,
			attempt.Score,
			attempt.TestFileID,
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, value)
		}
	}

	filename := fmt.Sprintf("%s-attempts.xlsx", contest.Slug)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(c.Writer); err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedExport)
	}
}
