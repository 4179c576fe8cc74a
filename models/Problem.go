package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Problem represents one problem of a contest. The time limit applies to each
// attempt from the moment its input file is handed out, in seconds.
type Problem struct {
	ID             string           `gorm:"type:uuid;primary_key" json:"id"`
	ContestID      string           `gorm:"type:uuid;not null;column:contest_id;index" json:"contest_id"`
	Name           string           `gorm:"type:varchar(256);not null" json:"name"`
	Order          string           `gorm:"type:varchar(2);not null;column:order_label" json:"order"`
	Slug           string           `gorm:"type:varchar(256);not null;index" json:"slug"`
	TimeLimit      int              `gorm:"not null;column:time_limit" json:"time_limit"`
	PDFFile        string           `gorm:"type:varchar(512);column:pdf_file" json:"-"`
	SampleInput    string           `gorm:"type:varchar(512);column:sample_input" json:"-"`
	SampleOutput   string           `gorm:"type:varchar(512);column:sample_output" json:"-"`
	Contest        *Contest         `gorm:"foreignKey:ContestID" json:"-"`
	Parts          []*ProblemPart   `gorm:"foreignKey:ProblemID" json:"parts,omitempty"`
	Clarifications []*Clarification `gorm:"foreignKey:ProblemID" json:"clarifications,omitempty"`
}

func (p *Problem) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// TotalPoints sums the point values of the problem's parts. Parts must be loaded.
func (p *Problem) TotalPoints() int {
	total := 0
	for _, part := range p.Parts {
		total += part.Points
	}
	return total
}
