package contests

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"judge/database"
	"judge/models"
)

// GetAllContests lists every contest with its derived state
// @Summary Get all contests
// @Description List all contests visible to the authenticated user
// @Tags Contests
// @Produce json
// @Success 200 {array} ContestResponse
// @Failure 401 {object} map[string]string
// @Router /contests [get]
// @Security Bearer
func GetAllContests(c *gin.Context) {
	var contests []models.Contest
	if err := database.DB.Order("begin_at DESC").Find(&contests).Error; err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedFetchContests)
		return
	}

	resp := make([]ContestResponse, 0, len(contests))
	for i := range contests {
		resp = append(resp, toContestResponse(&contests[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// GetContest fetches one contest with its problems and parts
// @Summary Get a contest
// @Description Get a contest by id, with its problems and their parts
// @Tags Contests
// @Produce json
// @Param id path string true "Contest ID"
// @Success 200 {object} models.Contest
// @Failure 404 {object} map[string]string
// @Router /contests/{id} [get]
// @Security Bearer
func GetContest(c *gin.Context) {
	var contest models.Contest
	err := database.DB.Preload("Problems.Parts").
		First(&contest, "id = ?", c.Param("id")).Error
	if err != nil {
		respondWithError(c, http.StatusNotFound, ErrContestNotFound)
		return
	}
	c.JSON(http.StatusOK, contest)
}

// CreateContest creates a contest
// @Summary Create a contest
// @Description Create a new contest
// @Tags Contests
// @Accept json
// @Produce json
// @Param request body CreateContestRequest true "Contest"
// @Success 201 {object} models.Contest
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /contests [post]
// @Security Bearer
func CreateContest(c *gin.Context) {
	var req CreateContestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	contest := models.Contest{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		BeginAt:     req.BeginAt,
		EndAt:       req.EndAt,
	}
	if err := database.DB.Create(&contest).Error; err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedCreateContest)
		return
	}
	c.JSON(http.StatusCreated, contest)
}

// UpdateContest updates a contest's editable fields
// @Summary Update a contest
// @Description Update a contest's name, description or schedule
// @Tags Contests
// @Accept json
// @Produce json
// @Param id path string true "Contest ID"
// @Param request body UpdateContestRequest true "Fields to update"
// @Success 200 {object} models.Contest
// @Failure 404 {object} map[string]string
// @Router /contests/{id} [put]
// @Security Bearer
func UpdateContest(c *gin.Context) {
	var contest models.Contest
	if err := database.DB.First(&contest, "id = ?", c.Param("id")).Error; err != nil {
		respondWithError(c, http.StatusNotFound, ErrContestNotFound)
		return
	}

	var req UpdateContestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	if req.Name != "" {
		contest.Name = req.Name
	}
	if req.Description != "" {
		contest.Description = req.Description
	}
	if req.BeginAt != nil {
		contest.BeginAt = *req.BeginAt
	}
	if req.EndAt != nil {
		contest.EndAt = *req.EndAt
	}

	if err := database.DB.Save(&contest).Error; err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedUpdateContest)
		return
	}
	c.JSON(http.StatusOK, contest)
}

// DeleteContest removes a contest
// @Summary Delete a contest
// @Description Delete a contest by id
// @Tags Contests
// @Produce json
// @Param id path string true "Contest ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /contests/{id} [delete]
// @Security Bearer
func DeleteContest(c *gin.Context) {
	result := database.DB.Delete(&models.Contest{}, "id = ?", c.Param("id"))
	if result.Error != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedDeleteContest)
		return
	}
	if result.RowsAffected == 0 {
		respondWithError(c, http.StatusNotFound, ErrContestNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Contest deleted"})
}

// AddContestant registers a user as a contestant of the contest
// @Summary Add a contestant
// @Description Register a user as a contestant of the contest
// @Tags Contests
// @Produce json
// @Param id path string true "Contest ID"
// @Param user_id path string true "User ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /contests/{id}/contestants/{user_id} [post]
// @Security Bearer
func AddContestant(c *gin.Context) {
	var contest models.Contest
	if err := database.DB.First(&contest, "id = ?", c.Param("id")).Error; err != nil {
		respondWithError(c, http.StatusNotFound, ErrContestNotFound)
		return
	}
	var user models.User
	if err := database.DB.First(&user, "id = ?", c.Param("user_id")).Error; err != nil {
		respondWithError(c, http.StatusNotFound, ErrUserNotFound)
		return
	}

	if err := database.DB.Model(&contest).Association("Contestants").Append(&user); err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedAddContestant)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Contestant added"})
}

// RemoveContestant unregisters a user from the contest
// @Summary Remove a contestant
// @Description Unregister a user from the contest
// @Tags Contests
// @Produce json
// @Param id path string true "Contest ID"
// @Param user_id path string true "User ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /contests/{id}/contestants/{user_id} [delete]
// @Security Bearer
func RemoveContestant(c *gin.Context) {
	var contest models.Contest
	if err := database.DB.First(&contest, "id = ?", c.Param("id")).Error; err != nil {
		respondWithError(c, http.StatusNotFound, ErrContestNotFound)
		return
	}
	var user models.User
	if err := database.DB.First(&user, "id = ?", c.Param("user_id")).Error; err != nil {
		respondWithError(c, http.StatusNotFound, ErrUserNotFound)
		return
	}

	if err := database.DB.Model(&contest).Association("Contestants").Delete(&user); err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedAddContestant)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Contestant removed"})
}

func toContestResponse(contest *models.Contest) ContestResponse {
	return ContestResponse{
		ID:          contest.ID,
		Name:        contest.Name,
		Slug:        contest.Slug,
		Description: contest.Description,
		BeginAt:     contest.BeginAt,
		EndAt:       contest.EndAt,
		State:       contest.State(),
	}
}
