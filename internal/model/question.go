package model

import (
	"time"

	"gorm.io/gorm"
)

// QuestionType is the closed set of supported question kinds. Every consumer
// switches exhaustively over these values; an unknown type is a server error,
// never a silently accepted answer.
type QuestionType string

const (
	QuestionTypeSingleChoice QuestionType = "single_choice"
	QuestionTypeMultiChoice  QuestionType = "multi_choice"
	QuestionTypeText         QuestionType = "text"
	QuestionTypeRating       QuestionType = "rating"
	QuestionTypeYesNo        QuestionType = "yesno"
	QuestionTypeRanking      QuestionType = "ranking"
)

// HasChoices reports whether the type carries a choice list.
func (t QuestionType) HasChoices() bool {
	return t == QuestionTypeSingleChoice || t == QuestionTypeMultiChoice || t == QuestionTypeRanking
}

// Valid reports whether t is one of the supported question types.
func (t QuestionType) Valid() bool {
	switch t {
	case QuestionTypeSingleChoice, QuestionTypeMultiChoice, QuestionTypeText,
		QuestionTypeRating, QuestionTypeYesNo, QuestionTypeRanking:
		return true
	}
	return false
}

type Question struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	SurveyID  uint           `json:"survey_id" gorm:"not null;index"`
	Text      string         `json:"text" gorm:"not null"`
	Type      QuestionType   `json:"type" gorm:"not null"`
	Position  int            `json:"position" gorm:"not null"`
	Choices   []Choice       `json:"choices,omitempty" gorm:"foreignKey:QuestionID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// ChoiceByID looks up one of the question's own choices.
func (q *Question) ChoiceByID(id uint) (*Choice, bool) {
	for i := range q.Choices {
		if q.Choices[i].ID == id {
			return &q.Choices[i], true
		}
	}
	return nil, false
}
