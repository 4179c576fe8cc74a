package attempts

import (
	"errors"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	"judge/database"
	"judge/middleware"
	"judge/models"
	"judge/realtime"
	"judge/services"
)

// StartAttempt opens (or resumes) the caller's attempt against a problem part.
// The response carries the capability token used to download the input file.
// @Summary Start an attempt
// @Description Open a new attempt against a problem part, or resume the caller's in-progress one
// @Tags Attempts
// @Produce json
// @Param part_id path string true "Problem part ID"
// @Success 201 {object} AttemptResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /parts/{part_id}/attempts [post]
// @Security Bearer
func StartAttempt(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	var part models.ProblemPart
	err = database.DB.Preload("Problem.Contest").
		First(&part, "id = ?", c.Param("part_id")).Error
	if err != nil {
		respondWithError(c, http.StatusNotFound, ErrPartNotFound)
		return
	}

	if !part.Problem.Contest.IsOngoing() {
		respondWithError(c, http.StatusForbidden, ErrContestNotRunning)
		return
	}

	attempt, err := services.StartAttempt(database.DB, user.ID, part.ID)
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedStartAttempt)
		return
	}
	attempt.Part = &part

	realtime.BroadcastAttemptUpdate(realtime.AttemptUpdate{
		ContestID:  part.Problem.ContestID,
		Attempt:    attempt,
		UpdateType: "new",
	})

	c.JSON(http.StatusCreated, toAttemptResponse(&attempt))
}

// GetAttempt returns one of the caller's attempts
// @Summary Get an attempt
// @Description Get one of the caller's attempts, with its remaining time
// @Tags Attempts
// @Produce json
// @Param id path string true "Attempt ID"
// @Success 200 {object} AttemptResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /attempts/{id} [get]
// @Security Bearer
func GetAttempt(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	attempt, err := services.GetAttempt(database.DB, c.Param("id"))
	if err != nil {
		respondWithError(c, http.StatusNotFound, ErrAttemptNotFound)
		return
	}
	if attempt.OwnerID != user.ID && !user.IsAdmin {
		respondWithError(c, http.StatusUnauthorized, ErrNotAttemptOwner)
		return
	}

	c.JSON(http.StatusOK, toAttemptResponse(&attempt))
}

// SubmitAttempt attaches the uploaded output (and optional source) files to
// the attempt and scores it synchronously against the oracle.
// @Summary Submit an attempt
// @Description Upload the output and source files for an attempt; the verdict is computed immediately
// @Tags Attempts
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Attempt ID"
// @Param output formData file true "Computed output file"
// @Param source formData file false "Source code file"
// @Success 200 {object} VerdictResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /attempts/{id}/submit [put]
// @Security Bearer
func SubmitAttempt(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	attempt, err := services.GetAttempt(database.DB, c.Param("id"))
	if err != nil {
		respondWithError(c, http.StatusNotFound, ErrAttemptNotFound)
		return
	}
	if attempt.OwnerID != user.ID {
		respondWithError(c, http.StatusUnauthorized, ErrNotAttemptOwner)
		return
	}
	if !attempt.IsInProgress() {
		respondWithError(c, http.StatusConflict, ErrAttemptResolved)
		return
	}

	outputFile, err := c.FormFile("output")
	if err != nil {
		respondWithError(c, http.StatusBadRequest, ErrOutputFileMissing)
		return
	}
	outputPath := fileStore.SubmissionPath(&attempt, ".out")
	if err := saveUpload(c, outputFile, outputPath); err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedSaveFile)
		return
	}
	attempt.OutputFile = outputPath

	if sourceFile, err := c.FormFile("source"); err == nil {
		ext := filepath.Ext(sourceFile.Filename)
		if ext == "" {
			ext = ".src"
		}
		sourcePath := fileStore.SubmissionPath(&attempt, ext)
		if err := saveUpload(c, sourceFile, sourcePath); err != nil {
			respondWithError(c, http.StatusInternalServerError, ErrFailedSaveFile)
			return
		}
		attempt.SourceFile = sourcePath
	}

	// Record the attached files before scoring; a scoring failure must not
	// lose the upload.
	err = database.DB.Model(&models.Attempt{}).Where("id = ?", attempt.ID).
		Updates(map[string]interface{}{
			"output_file": attempt.OutputFile,
			"source_file": attempt.SourceFile,
		}).Error
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedScoreAttempt)
		return
	}

	verdict, err := scorer.ScoreAttempt(&attempt, attempt.OutputFile, fileStore.OracleOutputPath(&attempt))
	if err != nil {
		var fileErr *services.FileError
		if errors.As(err, &fileErr) {
			log.Printf("Scoring attempt %s failed: %v", attempt.ID, err)
		}
		respondWithError(c, http.StatusInternalServerError, ErrFailedScoreAttempt)
		return
	}

	contestID := attempt.Part.Problem.ContestID
	services.InvalidateScoreboard(c.Request.Context(), contestID)
	realtime.BroadcastAttemptUpdate(realtime.AttemptUpdate{
		ContestID:  contestID,
		Attempt:    attempt,
		UpdateType: "verdict",
	})

	c.JSON(http.StatusOK, VerdictResponse{
		Status: verdict.Status.String(),
		Reason: verdict.Reason.String(),
		Score:  verdict.Score,
		Points: attempt.Part.Points,
	})
}

// DownloadInputFile serves the attempt's oracle input file. Access requires
// both ownership and the attempt's capability token.
// @Summary Download the attempt's input file
// @Description Download the input file for the attempt's test index
// @Tags Attempts
// @Produce text/plain
// @Param id path string true "Attempt ID"
// @Param token query string true "Download capability token"
// @Success 200 {file} binary
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /attempts/{id}/input [get]
// @Security Bearer
func DownloadInputFile(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	attempt, err := services.GetAttempt(database.DB, c.Param("id"))
	if err != nil {
		respondWithError(c, http.StatusNotFound, ErrAttemptNotFound)
		return
	}
	if attempt.OwnerID != user.ID || c.Query("token") != attempt.Randomness {
		respondWithError(c, http.StatusUnauthorized, ErrNotAttemptOwner)
		return
	}

	path := fileStore.OracleInputPath(&attempt)
	if _, err := os.Stat(path); err != nil {
		respondWithError(c, http.StatusNotFound, ErrInputFileUnreadable)
		return
	}
	c.FileAttachment(path, "input.txt")
}

// ListMyAttempts lists the caller's attempts for a problem, newest first
// @Summary List my attempts
// @Description List the caller's attempts across all parts of a problem
// @Tags Attempts
// @Produce json
// @Param id path string true "Problem ID"
// @Success 200 {array} models.Attempt
// @Failure 401 {object} map[string]string
// @Router /problems/{id}/attempts [get]
// @Security Bearer
func ListMyAttempts(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	attempts, err := services.ListUserAttempts(database.DB, user.ID, c.Param("id"))
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedFetchAttempts)
		return
	}
	c.JSON(http.StatusOK, attempts)
}

// ScoreAttemptManually lets an administrator assign a score by hand
// @Summary Score an attempt manually
// @Description Assign an administrator-decided score to an attempt
// @Tags Attempts
// @Accept json
// @Produce json
// @Param id path string true "Attempt ID"
// @Param request body ManualScoreRequest true "Score"
// @Success 200 {object} models.Attempt
// @Failure 404 {object} map[string]string
// @Router /attempts/{id}/score [put]
// @Security Bearer
func ScoreAttemptManually(c *gin.Context) {
	attempt, err := services.GetAttempt(database.DB, c.Param("id"))
	if err != nil {
		respondWithError(c, http.StatusNotFound, ErrAttemptNotFound)
		return
	}

	var req ManualScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	store := services.NewAttemptStore(database.DB)
	if err := services.ScoreManually(store, &attempt, *req.Score); err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedScoreAttempt)
		return
	}

	contestID := attempt.Part.Problem.ContestID
	services.InvalidateScoreboard(c.Request.Context(), contestID)
	realtime.BroadcastAttemptUpdate(realtime.AttemptUpdate{
		ContestID:  contestID,
		Attempt:    attempt,
		UpdateType: "verdict",
	})

	c.JSON(http.StatusOK, attempt)
}

func toAttemptResponse(attempt *models.Attempt) AttemptResponse {
	return AttemptResponse{
		Attempt:       *attempt,
		StatusLabel:   attempt.Status.String(),
		DownloadToken: attempt.Randomness,
		TimePassed:    attempt.TimePassed(time.Now()),
		TimeLimit:     attempt.Part.Problem.TimeLimit,
	}
}

func saveUpload(c *gin.Context, file *multipart.FileHeader, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return c.SaveUploadedFile(file, path)
}
