package service

import (
	"fmt"
	"strings"

	"github.com/pollhive/backend/internal/apperr"
	"github.com/pollhive/backend/internal/dto"
	"github.com/pollhive/backend/internal/model"
)

// Rating answers must fall in this closed range. This is the single source
// of truth for both the API and any future form path.
const (
	RatingMin = 1
	RatingMax = 10
)

// AnswerValidator decides whether a raw submitted value is an acceptable
// answer for a question and normalizes it into a typed Answer payload. It is
// a pure decision function: no side effects, only a read-only lookup of the
// question's preloaded choices.
type AnswerValidator interface {
	Validate(question model.Question, sub *dto.AnswerSubmitDTO) (model.Answer, error)
}

type answerValidator struct{}

func NewAnswerValidator() AnswerValidator {
	return &answerValidator{}
}

// Validate returns the normalized answer, or a *apperr.ValidationError naming
// the offending question. A nil sub means the submission carried no value for
// this question at all.
func (v *answerValidator) Validate(question model.Question, sub *dto.AnswerSubmitDTO) (model.Answer, error) {
	answer := model.Answer{QuestionID: question.ID, SurveyID: question.SurveyID}

	switch question.Type {
	case model.QuestionTypeSingleChoice:
		if sub == nil || sub.ChoiceID == nil {
			return answer, apperr.Validation(question.ID, question.Text, "select an option")
		}
		if _, ok := question.ChoiceByID(*sub.ChoiceID); !ok {
			return answer, apperr.Validation(question.ID, question.Text, "option %d is not one of the question's choices", *sub.ChoiceID)
		}
		answer.ChoiceID = sub.ChoiceID

	case model.QuestionTypeMultiChoice:
		if sub == nil || len(sub.ChoiceIDs) == 0 {
			return answer, apperr.Validation(question.ID, question.Text, "select at least one option")
		}
		seen := make(map[uint]bool, len(sub.ChoiceIDs))
		for _, id := range sub.ChoiceIDs {
			if _, ok := question.ChoiceByID(id); !ok {
				return answer, apperr.Validation(question.ID, question.Text, "option %d is not one of the question's choices", id)
			}
			if seen[id] {
				return answer, apperr.Validation(question.ID, question.Text, "each option may be selected only once")
			}
			seen[id] = true
		}
		answer.ChoiceIDs = model.ChoiceIDList(sub.ChoiceIDs)

	case model.QuestionTypeText:
		if sub == nil || sub.TextAnswer == nil || strings.TrimSpace(*sub.TextAnswer) == "" {
			return answer, apperr.Validation(question.ID, question.Text, "enter a text answer")
		}
		trimmed := strings.TrimSpace(*sub.TextAnswer)
		answer.TextAnswer = &trimmed

	case model.QuestionTypeRating:
		if sub == nil || sub.RatingAnswer == nil || *sub.RatingAnswer < RatingMin || *sub.RatingAnswer > RatingMax {
			return answer, apperr.Validation(question.ID, question.Text, "choose a rating between %d and %d", RatingMin, RatingMax)
		}
		answer.RatingAnswer = sub.RatingAnswer

	case model.QuestionTypeYesNo:
		if sub == nil || sub.YesNoAnswer == nil {
			return answer, apperr.Validation(question.ID, question.Text, `answer "yes" or "no"`)
		}
		switch *sub.YesNoAnswer {
		case "yes":
			yes := true
			answer.YesNoAnswer = &yes
		case "no":
			no := false
			answer.YesNoAnswer = &no
		default:
			return answer, apperr.Validation(question.ID, question.Text, `answer "yes" or "no"`)
		}

	case model.QuestionTypeRanking:
		if sub == nil || len(sub.RankingAnswer) != len(question.Choices) {
			return answer, apperr.Validation(question.ID, question.Text, "arrange all %d options", len(question.Choices))
		}
		seen := make(map[uint]bool, len(sub.RankingAnswer))
		for _, id := range sub.RankingAnswer {
			if _, ok := question.ChoiceByID(id); !ok {
				return answer, apperr.Validation(question.ID, question.Text, "option %d is not one of the question's choices", id)
			}
			if seen[id] {
				return answer, apperr.Validation(question.ID, question.Text, "each option may appear only once")
			}
			seen[id] = true
		}
		answer.RankingAnswer = model.ChoiceIDList(sub.RankingAnswer)

	default:
		return answer, fmt.Errorf("question %d has unsupported type %q", question.ID, question.Type)
	}

	return answer, nil
}
