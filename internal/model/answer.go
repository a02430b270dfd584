package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// ChoiceIDList is stored as a JSONB array of choice ids. Used for the
// multi-choice payload (a set) and the ranking payload (an ordered list).
type ChoiceIDList []uint

func (l ChoiceIDList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	return json.Marshal(l)
}

func (l *ChoiceIDList) Scan(value any) error {
	if value == nil {
		*l = nil
		return nil
	}
	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported type %T for ChoiceIDList", value)
	}
	return json.Unmarshal(raw, l)
}

// Answer is one respondent's recorded response to one question. Exactly one
// payload field is populated, matching the question's type. Rows are written
// once at submission time and never updated; the composite unique index on
// (user_id, question_id) is what makes concurrent duplicate submissions lose
// cleanly at the store level.
type Answer struct {
	ID            uint         `gorm:"primarykey" json:"id"`
	SurveyID      uint         `json:"survey_id" gorm:"not null;index"`
	QuestionID    uint         `json:"question_id" gorm:"not null;uniqueIndex:idx_answer_user_question"`
	UserID        uint         `json:"user_id" gorm:"not null;uniqueIndex:idx_answer_user_question"`
	Question      Question     `json:"question,omitempty" gorm:"foreignKey:QuestionID"`
	ChoiceID      *uint        `json:"choice_id,omitempty"`
	ChoiceIDs     ChoiceIDList `json:"choice_ids,omitempty" gorm:"type:jsonb"`
	TextAnswer    *string      `json:"text_answer,omitempty" gorm:"type:text"`
	RatingAnswer  *int         `json:"rating_answer,omitempty"`
	YesNoAnswer   *bool        `json:"yesno_answer,omitempty"`
	RankingAnswer ChoiceIDList `json:"ranking_answer,omitempty" gorm:"type:jsonb"`
	CreatedAt     time.Time    `json:"created_at"`
}
