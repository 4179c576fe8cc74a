package contests

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"judge/database"
	"judge/models"
	"judge/services"
)

// GetScoreboard returns the contest scoreboard, best scores first
// @Summary Get the contest scoreboard
// @Description Aggregate every contestant's best score per part, summed over the contest
// @Tags Contests
// @Produce json
// @Param id path string true "Contest ID"
// @Success 200 {array} services.ScoreboardRow
// @Failure 404 {object} map[string]string
// @Router /contests/{id}/scoreboard [get]
// @Security Bearer
func GetScoreboard(c *gin.Context) {
	contestID := c.Param("id")

	var count int64
	database.DB.Model(&models.Contest{}).Where("id = ?", contestID).Count(&count)
	if count == 0 {
		respondWithError(c, http.StatusNotFound, ErrContestNotFound)
		return
	}

	rows, err := services.GetScoreboard(c.Request.Context(), database.DB, contestID)
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedScoreboard)
		return
	}
	c.JSON(http.StatusOK, rows)
}
