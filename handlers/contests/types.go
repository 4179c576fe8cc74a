package contests

import (
	"time"

	"github.com/gin-gonic/gin"
)

// Constants for error messages
const (
	ErrContestNotFound     = "Contest not found"
	ErrUserNotFound        = "User not found"
	ErrInvalidRequest      = "Invalid request data"
	ErrFailedFetchContests = "Failed to fetch contests"
	ErrFailedCreateContest = "Failed to create contest"
	ErrFailedUpdateContest = "Failed to update contest"
	ErrFailedDeleteContest = "Failed to delete contest"
	ErrFailedAddContestant = "Failed to add contestant to contest"
	ErrFailedScoreboard    = "Failed to compute scoreboard"
	ErrFailedExport        = "Failed to export contest data"
)

// CreateContestRequest model for creating a contest
type CreateContestRequest struct {
	Name        string    `json:"name" binding:"required"`
	Slug        string    `json:"slug" binding:"required"`
	Description string    `json:"description"`
	BeginAt     time.Time `json:"begin_at" binding:"required"`
	EndAt       time.Time `json:"end_at" binding:"required"`
}

// UpdateContestRequest model for updating a contest
type UpdateContestRequest struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	BeginAt     *time.Time `json:"begin_at"`
	EndAt       *time.Time `json:"end_at"`
}

// ContestResponse decorates a contest with its derived state label
type ContestResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	BeginAt     time.Time `json:"begin_at"`
	EndAt       time.Time `json:"end_at"`
	State       string    `json:"state"`
}

// respondWithError sends a standardized error response
func respondWithError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}
