package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProblemPart is a scored sub-component of a problem, carrying its own point
// value. Attempts are made against a single part.
type ProblemPart struct {
	ID        string     `gorm:"type:uuid;primary_key" json:"id"`
	ProblemID string     `gorm:"type:uuid;not null;column:problem_id;index" json:"problem_id"`
	Name      string     `gorm:"type:varchar(64);not null" json:"name"`
	Points    int        `gorm:"not null" json:"points"`
	Order     int        `gorm:"not null;column:order_index" json:"order"`
	Problem   *Problem   `gorm:"foreignKey:ProblemID" json:"-"`
	Attempts  []*Attempt `gorm:"foreignKey:PartID" json:"attempts,omitempty"`
}

func (p *ProblemPart) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
