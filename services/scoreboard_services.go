package services

import (
	"context"
	"fmt"
	"log"

	"gorm.io/gorm"

	"judge/config"
	"judge/database"
	"judge/models"
)

// ScoreboardRow is one contestant's aggregate score in a contest
type ScoreboardRow struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Score    int    `json:"score"`
}

func scoreboardCacheKey(contestID string) string {
	return "scoreboard:" + contestID
}

// GetPartScore returns the user's best score for a part, 0 when unattempted
func GetPartScore(db *gorm.DB, userID, partID string) (int, error) {
	var score int
	err := db.Model(&models.Attempt{}).
		Select("COALESCE(MAX(score), 0)").
		Where("owner_id = ? AND part_id = ?", userID, partID).
		Scan(&score).Error
	if err != nil {
		return 0, fmt.Errorf("part score: %w", err)
	}
	return score, nil
}

// GetProblemScore returns the user's score for a problem: the sum of the best
// attempt per part
func GetProblemScore(db *gorm.DB, userID, problemID string) (int, error) {
	var score int
	err := db.Raw(`
		SELECT COALESCE(SUM(best.score), 0)
		FROM (
			SELECT MAX(a.score) AS score
			FROM attempts a
			JOIN problem_parts pp ON pp.id = a.part_id
			WHERE a.owner_id = ? AND pp.problem_id = ?
			GROUP BY a.part_id
		) best
	`, userID, problemID).Scan(&score).Error
	if err != nil {
		return 0, fmt.Errorf("problem score: %w", err)
	}
	return score, nil
}

// GetNextPart returns the first part of the problem the user has not yet
// fully solved, or nil when everything is at full points
func GetNextPart(db *gorm.DB, userID, problemID string) (*models.ProblemPart, error) {
	var parts []models.ProblemPart
	if err := db.Where("problem_id = ?", problemID).Order("order_index").Find(&parts).Error; err != nil {
		return nil, fmt.Errorf("load parts: %w", err)
	}
	for i := range parts {
		score, err := GetPartScore(db, userID, parts[i].ID)
		if err != nil {
			return nil, err
		}
		if score != parts[i].Points {
			return &parts[i], nil
		}
	}
	return nil, nil
}

// GetScoreboard aggregates every contestant's best-per-part scores for a
// contest, best first. Results are served from the cache when fresh.
func GetScoreboard(ctx context.Context, db *gorm.DB, contestID string) ([]ScoreboardRow, error) {
	var rows []ScoreboardRow
	if found, _ := database.GetFromCache(ctx, scoreboardCacheKey(contestID), &rows); found {
		return rows, nil
	}

	err := db.Raw(`
		SELECT u.id AS user_id, u.username, COALESCE(SUM(best.score), 0) AS score
		FROM users u
		JOIN contest_contestants cc ON cc.user_id = u.id AND cc.contest_id = ?
		LEFT JOIN (
			SELECT a.owner_id, a.part_id, MAX(a.score) AS score
			FROM attempts a
			JOIN problem_parts pp ON pp.id = a.part_id
			JOIN problems p ON p.id = pp.problem_id
			WHERE p.contest_id = ?
			GROUP BY a.owner_id, a.part_id
		) best ON best.owner_id = u.id
		GROUP BY u.id, u.username
		ORDER BY score DESC, u.username ASC
	`, contestID, contestID).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("scoreboard: %w", err)
	}

	if err := database.SetToCache(ctx, scoreboardCacheKey(contestID), rows, config.ScoreboardTTL); err != nil {
		log.Println("Failed to cache scoreboard: ", err)
	}
	return rows, nil
}

// InvalidateScoreboard drops the cached scoreboard after a verdict changes it
func InvalidateScoreboard(ctx context.Context, contestID string) {
	if err := database.DeleteFromCache(ctx, scoreboardCacheKey(contestID)); err != nil {
		log.Println("Failed to invalidate scoreboard cache: ", err)
	}
}
