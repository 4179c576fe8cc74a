package problems

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"judge/database"
	"judge/middleware"
	"judge/models"
)

// GetClarifications lists a problem's clarifications. Contestants see
// answered questions plus their own; administrators see everything.
// @Summary List clarifications
// @Description List the clarifications of a problem
// @Tags Clarifications
// @Produce json
// @Param id path string true "Problem ID"
// @Success 200 {array} models.Clarification
// @Failure 404 {object} map[string]string
// @Router /problems/{id}/clarifications [get]
// @Security Bearer
func GetClarifications(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	problemID := c.Param("id")
	var count int64
	database.DB.Model(&models.Problem{}).Where("id = ?", problemID).Count(&count)
	if count == 0 {
		respondWithError(c, http.StatusNotFound, ErrProblemNotFound)
		return
	}

	query := database.DB.Where("problem_id = ?", problemID).Preload("Owner")
	if !user.IsAdmin {
		query = query.Where("answer <> '' OR owner_id = ?", user.ID)
	}

	var clarifications []models.Clarification
	if err := query.Order("created_at DESC").Find(&clarifications).Error; err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedFetchClarifs)
		return
	}
	c.JSON(http.StatusOK, clarifications)
}

// CreateClarification asks a question about a problem
// @Summary Ask a clarification
// @Description Ask a question about a problem
// @Tags Clarifications
// @Accept json
// @Produce json
// @Param id path string true "Problem ID"
// @Param request body CreateClarificationRequest true "Question"
// @Success 201 {object} models.Clarification
// @Failure 404 {object} map[string]string
// @Router /problems/{id}/clarifications [post]
// @Security Bearer
func CreateClarification(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	var problem models.Problem
	if err := database.DB.First(&problem, "id = ?", c.Param("id")).Error; err != nil {
		respondWithError(c, http.StatusNotFound, ErrProblemNotFound)
		return
	}

	var req CreateClarificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	clarification := models.Clarification{
		OwnerID:   user.ID,
		ProblemID: problem.ID,
		Question:  req.Question,
	}
	if err := database.DB.Create(&clarification).Error; err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedCreateClarif)
		return
	}
	c.JSON(http.StatusCreated, clarification)
}

// AnswerClarification records an administrator's answer to a question
// @Summary Answer a clarification
// @Description Record the answer to a clarification
// @Tags Clarifications
// @Accept json
// @Produce json
// @Param clarification_id path string true "Clarification ID"
// @Param request body AnswerClarificationRequest true "Answer"
// @Success 200 {object} models.Clarification
// @Failure 404 {object} map[string]string
// @Router /problems/clarifications/{clarification_id}/answer [put]
// @Security Bearer
func AnswerClarification(c *gin.Context) {
	var clarification models.Clarification
	if err := database.DB.First(&clarification, "id = ?", c.Param("clarification_id")).Error; err != nil {
		respondWithError(c, http.StatusNotFound, ErrClarificationNotFound)
		return
	}

	var req AnswerClarificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	clarification.Answer = req.Answer
	if err := database.DB.Save(&clarification).Error; err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedAnswerClarif)
		return
	}
	c.JSON(http.StatusOK, clarification)
}
