package problems

import (
	"github.com/gin-gonic/gin"
)

// Constants for error messages
const (
	ErrProblemNotFound        = "Problem not found"
	ErrContestNotFound        = "Contest not found"
	ErrClarificationNotFound  = "Clarification not found"
	ErrInvalidRequest         = "Invalid request data"
	ErrFailedCreateProblem    = "Failed to create problem"
	ErrFailedUpdateProblem    = "Failed to update problem"
	ErrFailedDeleteProblem    = "Failed to delete problem"
	ErrFailedCreatePart       = "Failed to create problem part"
	ErrFailedSaveFile         = "Failed to save uploaded file"
	ErrFileNotProvisioned     = "File not provisioned for this problem"
	ErrFailedCreateClarif     = "Failed to create clarification"
	ErrFailedAnswerClarif     = "Failed to answer clarification"
	ErrFailedFetchClarifs     = "Failed to fetch clarifications"
)

// CreateProblemRequest model for creating a problem
type CreateProblemRequest struct {
	ContestID string `json:"contest_id" binding:"required"`
	Name      string `json:"name" binding:"required"`
	Order     string `json:"order" binding:"required"`
	Slug      string `json:"slug" binding:"required"`
	TimeLimit int    `json:"time_limit" binding:"required,min=1"`
}

// UpdateProblemRequest model for updating a problem
type UpdateProblemRequest struct {
	Name      string `json:"name"`
	Order     string `json:"order"`
	TimeLimit *int   `json:"time_limit"`
}

// CreatePartRequest model for adding a part to a problem
type CreatePartRequest struct {
	Name   string `json:"name" binding:"required"`
	Points int    `json:"points" binding:"required,min=1"`
	Order  int    `json:"order"`
}

// CreateClarificationRequest model for asking a question about a problem
type CreateClarificationRequest struct {
	Question string `json:"question" binding:"required,max=2048"`
}

// AnswerClarificationRequest model for answering a question
type AnswerClarificationRequest struct {
	Answer string `json:"answer" binding:"required,max=2048"`
}

// respondWithError sends a standardized error response
func respondWithError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}
