package problems

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"judge/config"
	"judge/database"
	"judge/models"
)

// GetProblem fetches one problem with its parts
// @Summary Get a problem
// @Description Get a problem by id, with its parts
// @Tags Problems
// @Produce json
// @Param id path string true "Problem ID"
// @Success 200 {object} models.Problem
// @Failure 404 {object} map[string]string
// @Router /problems/{id} [get]
// @Security Bearer
func GetProblem(c *gin.Context) {
	var problem models.Problem
	err := database.DB.Preload("Parts", func(db *gorm.DB) *gorm.DB {
		return db.Order("order_index")
	}).First(&problem, "id = ?", c.Param("id")).Error
	if err != nil {
		respondWithError(c, http.StatusNotFound, ErrProblemNotFound)
		return
	}
	c.JSON(http.StatusOK, problem)
}

// CreateProblem creates a problem inside a contest
// @Summary Create a problem
// @Description Create a new problem inside a contest
// @Tags Problems
// @Accept json
// @Produce json
// @Param request body CreateProblemRequest true "Problem"
// @Success 201 {object} models.Problem
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /problems [post]
// @Security Bearer
func CreateProblem(c *gin.Context) {
	var req CreateProblemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	var contest models.Contest
	if err := database.DB.First(&contest, "id = ?", req.ContestID).Error; err != nil {
		respondWithError(c, http.StatusNotFound, ErrContestNotFound)
		return
	}

	problem := models.Problem{
		ContestID: contest.ID,
		Name:      req.Name,
		Order:     req.Order,
		Slug:      req.Slug,
		TimeLimit: req.TimeLimit,
	}
	if err := database.DB.Create(&problem).Error; err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedCreateProblem)
		return
	}
	c.JSON(http.StatusCreated, problem)
}

// UpdateProblem updates a problem's editable fields
// @Summary Update a problem
// @Description Update a problem's name, order label or time limit
// @Tags Problems
// @Accept json
// @Produce json
// @Param id path string true "Problem ID"
// @Param request body UpdateProblemRequest true "Fields to update"
// @Success 200 {object} models.Problem
// @Failure 404 {object} map[string]string
// @Router /problems/{id} [put]
// @Security Bearer
func UpdateProblem(c *gin.Context) {
	var problem models.Problem
	if err := database.DB.First(&problem, "id = ?", c.Param("id")).Error; err != nil {
		respondWithError(c, http.StatusNotFound, ErrProblemNotFound)
		return
	}

	var req UpdateProblemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	if req.Name != "" {
		problem.Name = req.Name
	}
	if req.Order != "" {
		problem.Order = req.Order
	}
	if req.TimeLimit != nil {
		problem.TimeLimit = *req.TimeLimit
	}

	if err := database.DB.Save(&problem).Error; err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedUpdateProblem)
		return
	}
	c.JSON(http.StatusOK, problem)
}

// DeleteProblem removes a problem
// @Summary Delete a problem
// @Description Delete a problem by id
// @Tags Problems
// @Produce json
// @Param id path string true "Problem ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /problems/{id} [delete]
// @Security Bearer
func DeleteProblem(c *gin.Context) {
	result := database.DB.Delete(&models.Problem{}, "id = ?", c.Param("id"))
	if result.Error != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedDeleteProblem)
		return
	}
	if result.RowsAffected == 0 {
		respondWithError(c, http.StatusNotFound, ErrProblemNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Problem deleted"})
}

// CreatePart adds a scored part to a problem
// @Summary Create a problem part
// @Description Add a scored part to a problem
// @Tags Problems
// @Accept json
// @Produce json
// @Param id path string true "Problem ID"
// @Param request body CreatePartRequest true "Part"
// @Success 201 {object} models.ProblemPart
// @Failure 404 {object} map[string]string
// @Router /problems/{id}/parts [post]
// @Security Bearer
func CreatePart(c *gin.Context) {
	var problem models.Problem
	if err := database.DB.First(&problem, "id = ?", c.Param("id")).Error; err != nil {
		respondWithError(c, http.StatusNotFound, ErrProblemNotFound)
		return
	}

	var req CreatePartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	part := models.ProblemPart{
		ProblemID: problem.ID,
		Name:      req.Name,
		Points:    req.Points,
		Order:     req.Order,
	}
	if err := database.DB.Create(&part).Error; err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedCreatePart)
		return
	}
	c.JSON(http.StatusCreated, part)
}

// UploadProblemFiles attaches the statement PDF and sample files to a problem
// @Summary Upload problem files
// @Description Upload the statement PDF and the sample input/output files
// @Tags Problems
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Problem ID"
// @Param pdf formData file false "Statement PDF"
// @Param sample_input formData file false "Sample input"
// @Param sample_output formData file false "Sample output"
// @Success 200 {object} models.Problem
// @Failure 404 {object} map[string]string
// @Router /problems/{id}/files [post]
// @Security Bearer
func UploadProblemFiles(c *gin.Context) {
	var problem models.Problem
	err := database.DB.Preload("Contest").First(&problem, "id = ?", c.Param("id")).Error
	if err != nil {
		respondWithError(c, http.StatusNotFound, ErrProblemNotFound)
		return
	}

	fields := map[string]*string{
		"pdf":           &problem.PDFFile,
		"sample_input":  &problem.SampleInput,
		"sample_output": &problem.SampleOutput,
	}
	for field, target := range fields {
		file, err := c.FormFile(field)
		if err != nil {
			continue
		}
		path := problemFilePath(&problem, file.Filename)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			respondWithError(c, http.StatusInternalServerError, ErrFailedSaveFile)
			return
		}
		if err := c.SaveUploadedFile(file, path); err != nil {
			respondWithError(c, http.StatusInternalServerError, ErrFailedSaveFile)
			return
		}
		*target = path
	}

	if err := database.DB.Save(&problem).Error; err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedUpdateProblem)
		return
	}
	c.JSON(http.StatusOK, problem)
}

// DownloadStatement serves the problem statement PDF
// @Summary Download the problem statement
// @Tags Problems
// @Produce application/pdf
// @Param id path string true "Problem ID"
// @Success 200 {file} binary
// @Failure 404 {object} map[string]string
// @Router /problems/{id}/statement [get]
// @Security Bearer
func DownloadStatement(c *gin.Context) {
	serveProblemFile(c, func(p *models.Problem) string { return p.PDFFile })
}

// DownloadSampleInput serves the problem's sample input file
// @Summary Download the sample input
// @Tags Problems
// @Produce text/plain
// @Param id path string true "Problem ID"
// @Success 200 {file} binary
// @Failure 404 {object} map[string]string
// @Router /problems/{id}/sample-input [get]
// @Security Bearer
func DownloadSampleInput(c *gin.Context) {
	serveProblemFile(c, func(p *models.Problem) string { return p.SampleInput })
}

// DownloadSampleOutput serves the problem's sample output file
// @Summary Download the sample output
// @Tags Problems
// @Produce text/plain
// @Param id path string true "Problem ID"
// @Success 200 {file} binary
// @Failure 404 {object} map[string]string
// @Router /problems/{id}/sample-output [get]
// @Security Bearer
func DownloadSampleOutput(c *gin.Context) {
	serveProblemFile(c, func(p *models.Problem) string { return p.SampleOutput })
}

func serveProblemFile(c *gin.Context, pick func(*models.Problem) string) {
	var problem models.Problem
	if err := database.DB.First(&problem, "id = ?", c.Param("id")).Error; err != nil {
		respondWithError(c, http.StatusNotFound, ErrProblemNotFound)
		return
	}
	path := pick(&problem)
	if path == "" {
		respondWithError(c, http.StatusNotFound, ErrFileNotProvisioned)
		return
	}
	c.FileAttachment(path, filepath.Base(path))
}

func problemFilePath(problem *models.Problem, filename string) string {
	contest := problem.Contest
	return filepath.Join(config.SubmissionsDir,
		fmt.Sprintf("%s-%s", contest.ID, contest.Slug), problem.Slug, filepath.Base(filename))
}
