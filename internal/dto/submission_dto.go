package dto

import "time"

// AnswerSubmitDTO carries the raw submitted value(s) for one question.
// Which payload field is read depends on the question's type; the answer
// validator decides acceptance and normalization.
type AnswerSubmitDTO struct {
	QuestionID    uint    `json:"question" binding:"required"`
	ChoiceID      *uint   `json:"choice,omitempty"`
	ChoiceIDs     []uint  `json:"choices,omitempty"`
	TextAnswer    *string `json:"text_answer,omitempty"`
	RatingAnswer  *int    `json:"rating_answer,omitempty"`
	YesNoAnswer   *string `json:"yesno_answer,omitempty"`
	RankingAnswer []uint  `json:"ranking_answer,omitempty"`
}

// SurveySubmitDTO is the body for POST /surveys/{survey_id}/answers.
type SurveySubmitDTO struct {
	Answers []AnswerSubmitDTO `json:"answers" binding:"required,min=1,dive"`
}

// SubmissionReceiptDTO confirms a fully accepted submission.
type SubmissionReceiptDTO struct {
	SurveyID    uint      `json:"survey_id"`
	SurveyTitle string    `json:"survey_title"`
	AnswerCount int       `json:"answer_count"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// AnswerDTO is the read view of one recorded answer.
type AnswerDTO struct {
	ID            uint      `json:"id"`
	QuestionID    uint      `json:"question_id"`
	QuestionText  string    `json:"question_text,omitempty"`
	QuestionType  string    `json:"question_type,omitempty"`
	ChoiceID      *uint     `json:"choice_id,omitempty"`
	ChoiceIDs     []uint    `json:"choice_ids,omitempty"`
	TextAnswer    *string   `json:"text_answer,omitempty"`
	RatingAnswer  *int      `json:"rating_answer,omitempty"`
	YesNoAnswer   *bool     `json:"yesno_answer,omitempty"`
	RankingAnswer []uint    `json:"ranking_answer,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// QuestionResultsDTO groups the raw answers recorded for one question.
type QuestionResultsDTO struct {
	Question QuestionDTO `json:"question"`
	Answers  []AnswerDTO `json:"answers"`
}

// SurveyResultsDTO lists raw answers per question for the survey's author.
type SurveyResultsDTO struct {
	SurveyID  uint                 `json:"survey_id"`
	Title     string               `json:"title"`
	Questions []QuestionResultsDTO `json:"questions"`
}
