package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Clarification is a contestant's question about a problem, optionally
// answered by an administrator
type Clarification struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	OwnerID   string    `gorm:"type:uuid;not null;column:owner_id" json:"owner_id"`
	ProblemID string    `gorm:"type:uuid;not null;column:problem_id;index" json:"problem_id"`
	CreatedAt time.Time `json:"created_at"`
	Question  string    `gorm:"type:varchar(2048);not null" json:"question"`
	Answer    string    `gorm:"type:varchar(2048)" json:"answer"`
	Owner     *User     `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	Problem   *Problem  `gorm:"foreignKey:ProblemID" json:"-"`
}

func (c *Clarification) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// IsAnswered reports whether an administrator has responded
func (c *Clarification) IsAnswered() bool {
	return c.Answer != ""
}
