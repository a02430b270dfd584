package model

import (
	"time"

	"gorm.io/gorm"
)

type Survey struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	Title     string         `json:"title" gorm:"not null"`
	Active    bool           `json:"active" gorm:"not null;default:true"`
	AuthorID  uint           `json:"author_id" gorm:"not null;index"`
	Author    User           `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
	Questions []Question     `json:"questions,omitempty" gorm:"foreignKey:SurveyID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
