package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Contest represents a programming contest with problems that registered contestants can attempt
type Contest struct {
	ID          string     `gorm:"type:uuid;primary_key" json:"id"`
	Name        string     `gorm:"type:varchar(256);not null" json:"name"`
	Slug        string     `gorm:"type:varchar(256);unique;not null" json:"slug"`
	Description string     `gorm:"type:text" json:"description"`
	BeginAt     time.Time  `gorm:"not null;column:begin_at" json:"begin_at"`
	EndAt       time.Time  `gorm:"not null;column:end_at" json:"end_at"`
	Contestants []*User    `gorm:"many2many:contest_contestants;" json:"contestants,omitempty"`
	Problems    []*Problem `gorm:"foreignKey:ContestID" json:"problems,omitempty"`
}

func (c *Contest) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// HasBegun reports whether the contest start time has passed
func (c *Contest) HasBegun() bool {
	return c.BeginAt.Before(time.Now())
}

// HasEnded reports whether the contest end time has passed
func (c *Contest) HasEnded() bool {
	return c.EndAt.Before(time.Now())
}

// IsOngoing reports whether the contest is currently running
func (c *Contest) IsOngoing() bool {
	return c.HasBegun() && !c.HasEnded()
}

// State returns a display label for the contest's current phase
func (c *Contest) State() string {
	switch {
	case c.HasEnded():
		return "Ended"
	case c.HasBegun():
		return "In Progress"
	default:
		return "Not Started"
	}
}
