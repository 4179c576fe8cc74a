package services

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"judge/metrics"
	"judge/models"
)

// AttemptStore is the persistence boundary the scorer and the timeout sweeper
// depend on. Keeping it narrow lets both run against fakes in tests.
type AttemptStore interface {
	Save(attempt *models.Attempt) error
	ListInProgress() ([]models.Attempt, error)
}

// GormAttemptStore is the database-backed AttemptStore
type GormAttemptStore struct {
	DB *gorm.DB
}

func NewAttemptStore(db *gorm.DB) *GormAttemptStore {
	return &GormAttemptStore{DB: db}
}

// Save persists every field of the attempt in a single update
func (s *GormAttemptStore) Save(attempt *models.Attempt) error {
	start := time.Now()
	defer metrics.RecordDBOperation("save", "attempts", start)

	if err := s.DB.Save(attempt).Error; err != nil {
		return fmt.Errorf("save attempt %s: %w", attempt.ID, err)
	}
	return nil
}

// ListInProgress returns every unresolved attempt with its part and problem
// loaded, which the sweeper needs for time limits
func (s *GormAttemptStore) ListInProgress() ([]models.Attempt, error) {
	start := time.Now()
	defer metrics.RecordDBOperation("list_in_progress", "attempts", start)

	var attempts []models.Attempt
	err := s.DB.Where("status = ?", models.StatusInProgress).
		Preload("Part.Problem").
		Find(&attempts).Error
	if err != nil {
		return nil, fmt.Errorf("list in-progress attempts: %w", err)
	}
	return attempts, nil
}
