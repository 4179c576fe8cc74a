package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents a contestant or an administrator of the judge
type User struct {
	ID            string     `gorm:"type:uuid;primary_key" json:"id"`
	Username      string     `gorm:"type:varchar(64);unique;not null" json:"username"`
	Email         string     `gorm:"type:varchar(255);unique;not null" json:"email"`
	Password      string     `gorm:"type:varchar(255);not null" json:"-"`
	IsAdmin       bool       `gorm:"not null;default:false;column:is_admin" json:"is_admin"`
	LastConnected *time.Time `gorm:"column:last_connected" json:"last_connected"`
	Contests      []*Contest `gorm:"many2many:contest_contestants;" json:"contests,omitempty"`
	Attempts      []*Attempt `gorm:"foreignKey:OwnerID" json:"attempts,omitempty"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
