package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"judge/models"
)

// StartAttempt returns the user's in-progress attempt for the part, creating
// a fresh one when none exists. The test file index and download token are
// assigned once at creation and never change. This is what guarantees at most
// one in-progress attempt per (owner, part).
func StartAttempt(db *gorm.DB, userID, partID string) (models.Attempt, error) {
	var attempt models.Attempt
	err := db.Where("owner_id = ? AND part_id = ? AND status = ?",
		userID, partID, models.StatusInProgress).
		First(&attempt).Error
	if err == nil {
		return attempt, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Attempt{}, fmt.Errorf("look up in-progress attempt: %w", err)
	}

	attempt = models.Attempt{
		OwnerID: userID,
		PartID:  partID,
		Status:  models.StatusInProgress,
		Score:   0,
	}
	if err := db.Create(&attempt).Error; err != nil {
		return models.Attempt{}, fmt.Errorf("create attempt: %w", err)
	}
	return attempt, nil
}

// GetAttempt loads an attempt with the relations the scorer and file store
// need: owner, part, problem and contest
func GetAttempt(db *gorm.DB, attemptID string) (models.Attempt, error) {
	var attempt models.Attempt
	err := db.Preload("Owner").
		Preload("Part.Problem.Contest").
		First(&attempt, "id = ?", attemptID).Error
	if err != nil {
		return models.Attempt{}, err
	}
	return attempt, nil
}

// ListUserAttempts returns the user's attempts for all parts of a problem,
// newest first
func ListUserAttempts(db *gorm.DB, userID, problemID string) ([]models.Attempt, error) {
	var attempts []models.Attempt
	err := db.Joins("JOIN problem_parts ON problem_parts.id = attempts.part_id").
		Where("attempts.owner_id = ? AND problem_parts.problem_id = ?", userID, problemID).
		Preload("Part").
		Order("attempts.created_at DESC").
		Find(&attempts).Error
	if err != nil {
		return nil, fmt.Errorf("list attempts: %w", err)
	}
	return attempts, nil
}

// ScoreManually resolves an attempt with an administrator-assigned score. The
// score is clamped to the part's point value; full credit counts as correct.
func ScoreManually(store AttemptStore, attempt *models.Attempt, score int) error {
	if score < 0 {
		score = 0
	}
	if score > attempt.Part.Points {
		score = attempt.Part.Points
	}

	status := models.StatusIncorrect
	if score == attempt.Part.Points {
		status = models.StatusCorrect
	}
	attempt.Resolve(status, models.ReasonScoredManually, score)
	return store.Save(attempt)
}
