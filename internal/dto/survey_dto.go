package dto

import "time"

// ChoiceCreateDTO is one selectable option within a question being authored.
type ChoiceCreateDTO struct {
	Text string `json:"text" binding:"required"`
}

// QuestionCreateDTO is used inside SurveyCreateDTO and SurveyUpdateDTO.
// Choices are required for the choice-bearing types and ignored otherwise;
// the service enforces that rule, the binding tag only closes the type set.
type QuestionCreateDTO struct {
	Text    string            `json:"text" binding:"required"`
	Type    string            `json:"type" binding:"required,oneof=single_choice multi_choice text rating yesno ranking"`
	Choices []ChoiceCreateDTO `json:"choices" binding:"omitempty,dive"`
}

// SurveyCreateDTO is for an author creating a survey with all its questions.
type SurveyCreateDTO struct {
	Title     string              `json:"title" binding:"required"`
	Active    *bool               `json:"active"`
	Questions []QuestionCreateDTO `json:"questions" binding:"required,min=1,dive"`
}

// SurveyUpdateDTO is for an author editing a survey. A non-nil Questions
// list fully replaces the existing questions (and drops recorded answers).
type SurveyUpdateDTO struct {
	Title     *string             `json:"title"`
	Active    *bool               `json:"active"`
	Questions []QuestionCreateDTO `json:"questions" binding:"omitempty,dive"`
}

// ChoiceDTO is the read view of a choice.
type ChoiceDTO struct {
	ID   uint   `json:"id"`
	Text string `json:"text"`
}

// QuestionDTO is the read view of a question with its choices.
type QuestionDTO struct {
	ID       uint        `json:"id"`
	SurveyID uint        `json:"survey_id"`
	Text     string      `json:"text"`
	Type     string      `json:"type"`
	Position int         `json:"position"`
	Choices  []ChoiceDTO `json:"choices,omitempty"`
}

// SurveyDTO is the full read view of a survey.
type SurveyDTO struct {
	ID        uint          `json:"id"`
	Title     string        `json:"title"`
	Active    bool          `json:"active"`
	AuthorID  uint          `json:"author_id"`
	Questions []QuestionDTO `json:"questions,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
}

// SurveySummaryDTO is used for survey listings.
type SurveySummaryDTO struct {
	ID            uint      `json:"id"`
	Title         string    `json:"title"`
	Active        bool      `json:"active"`
	AuthorID      uint      `json:"author_id"`
	QuestionCount int       `json:"question_count"`
	Submitted     bool      `json:"submitted"`
	CreatedAt     time.Time `json:"created_at"`
}

// ProfileDTO is the caller's profile with the surveys they participated in.
type ProfileDTO struct {
	User    UserDTO            `json:"user"`
	Surveys []SurveySummaryDTO `json:"surveys"`
}
