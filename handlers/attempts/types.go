package attempts

import (
	"github.com/gin-gonic/gin"

	"judge/models"
)

// Constants for error messages
const (
	ErrPartNotFound        = "Problem part not found"
	ErrAttemptNotFound     = "Attempt not found"
	ErrNotAttemptOwner     = "You are not authorized to view this"
	ErrContestNotRunning   = "Contest is not running"
	ErrAttemptResolved     = "Attempt has already been resolved"
	ErrOutputFileMissing   = "Output file is required"
	ErrInvalidRequest      = "Invalid request data"
	ErrFailedStartAttempt  = "Failed to start attempt"
	ErrFailedSaveFile      = "Failed to save uploaded file"
	ErrFailedScoreAttempt  = "Failed to score attempt"
	ErrFailedFetchAttempts = "Failed to fetch attempts"
	ErrInputFileUnreadable = "Input file unavailable"
)

// AttemptResponse decorates an attempt with the fields only its owner may
// see: the capability token for the input download and the clamped time
// passed against the problem's limit
type AttemptResponse struct {
	Attempt       models.Attempt `json:"attempt"`
	StatusLabel   string         `json:"status_label"`
	DownloadToken string         `json:"download_token"`
	TimePassed    int            `json:"time_passed"`
	TimeLimit     int            `json:"time_limit"`
}

// VerdictResponse is returned to the contestant right after scoring
type VerdictResponse struct {
	Status string `json:"status"`
	Reason string `json:"reason"`
	Score  int    `json:"score"`
	Points int    `json:"points"`
}

// ManualScoreRequest model for administrator scoring
type ManualScoreRequest struct {
	Score *int `json:"score" binding:"required"`
}

// respondWithError sends a standardized error response
func respondWithError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}
