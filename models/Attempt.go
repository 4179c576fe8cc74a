package models

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AttemptStatus is the lifecycle state of an attempt. StatusInProgress is the
// sole initial state; StatusCorrect and StatusIncorrect are terminal.
type AttemptStatus int

const (
	StatusInProgress AttemptStatus = iota + 1
	StatusCorrect
	StatusIncorrect
)

func (s AttemptStatus) String() string {
	switch s {
	case StatusInProgress:
		return "Pending"
	case StatusCorrect:
		return "Correct"
	case StatusIncorrect:
		return "Incorrect"
	}
	return "Unknown"
}

// AttemptReason explains a terminal status. It is only meaningful once the
// attempt has left StatusInProgress.
type AttemptReason int

const (
	ReasonAccepted AttemptReason = iota + 1
	ReasonWrongAnswer
	ReasonTimeout
	ReasonBadSubmission
	ReasonScoredManually
)

func (r AttemptReason) String() string {
	switch r {
	case ReasonAccepted:
		return "Accepted"
	case ReasonWrongAnswer:
		return "Wrong Answer"
	case ReasonTimeout:
		return "Time Limit Exceeded"
	case ReasonBadSubmission:
		return "Bad Submission"
	case ReasonScoredManually:
		return "Scored Manually"
	}
	return "Unknown"
}

const tokenAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// TokenLength is the length of the capability token gating input file downloads.
const TokenLength = 16

// Attempt is one submission instance by one contestant against one problem part
type Attempt struct {
	ID         string         `gorm:"type:uuid;primary_key" json:"id"`
	OwnerID    string         `gorm:"type:uuid;not null;column:owner_id;index:idx_attempts_owner_part" json:"owner_id"`
	PartID     string         `gorm:"type:uuid;not null;column:part_id;index:idx_attempts_owner_part" json:"part_id"`
	CreatedAt  time.Time      `json:"created_at"`
	Status     AttemptStatus  `gorm:"not null;default:1;index" json:"status"`
	Score      int            `gorm:"not null;default:0" json:"score"`
	Reason     *AttemptReason `json:"reason"`
	TestFileID int            `gorm:"not null;column:test_file_id" json:"test_file_id"`
	OutputFile string         `gorm:"type:varchar(512);column:output_file" json:"-"`
	SourceFile string         `gorm:"type:varchar(512);column:source_file" json:"-"`
	Randomness string         `gorm:"type:varchar(16);not null" json:"-"`
	Owner      *User          `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	Part       *ProblemPart   `gorm:"foreignKey:PartID" json:"part,omitempty"`
}

// BeforeCreate assigns the immutable per-attempt fields: the primary key, the
// test file index (count of prior attempts against the same part) and the
// download capability token. None of these are ever regenerated.
func (a *Attempt) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.TestFileID == 0 {
		var count int64
		if err := tx.Model(&Attempt{}).Where("part_id = ?", a.PartID).Count(&count).Error; err != nil {
			return err
		}
		a.TestFileID = int(count)
	}
	if a.Randomness == "" {
		a.Randomness = randomToken(TokenLength)
	}
	return nil
}

func randomToken(length int) string {
	token := make([]byte, length)
	for i := range token {
		token[i] = tokenAlphabet[rand.Intn(len(tokenAlphabet))]
	}
	return string(token)
}

// TimePassed returns the number of whole seconds the attempt has been open,
// clamped to the problem's time limit so progress displays never exceed it.
// Part.Problem must be loaded.
func (a *Attempt) TimePassed(now time.Time) int {
	limit := a.Part.Problem.TimeLimit
	elapsed := int(now.Sub(a.CreatedAt).Seconds())
	if elapsed > limit {
		return limit
	}
	return elapsed
}

// TimedOut reports whether the attempt has reached the problem's time limit.
// Part.Problem must be loaded.
func (a *Attempt) TimedOut(now time.Time) bool {
	return a.TimePassed(now) >= a.Part.Problem.TimeLimit
}

// IsInProgress reports whether the attempt has not yet been resolved
func (a *Attempt) IsInProgress() bool {
	return a.Status == StatusInProgress
}

// IsAccepted reports whether the attempt was judged correct
func (a *Attempt) IsAccepted() bool {
	return a.Status == StatusCorrect
}

// IsRejected reports whether the attempt was judged incorrect
func (a *Attempt) IsRejected() bool {
	return a.Status == StatusIncorrect
}

// Resolve moves the attempt into a terminal state. Score and reason are only
// ever written together with the status transition.
func (a *Attempt) Resolve(status AttemptStatus, reason AttemptReason, score int) {
	a.Status = status
	a.Reason = &reason
	a.Score = score
}
