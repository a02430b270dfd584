package model

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	Username     string         `json:"username" gorm:"not null;uniqueIndex"`
	Email        string         `json:"email"`
	PasswordHash string         `json:"-" gorm:"not null"`
	Surveys      []Survey       `json:"surveys,omitempty" gorm:"foreignKey:AuthorID"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}
