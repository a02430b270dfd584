package service

import (
	"testing"

	"github.com/pollhive/backend/internal/apperr"
	"github.com/pollhive/backend/internal/dto"
	"github.com/pollhive/backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildQuestions(t *testing.T) {
	t.Run("assigns positions in request order", func(t *testing.T) {
		questions, err := buildQuestions([]dto.QuestionCreateDTO{
			{Text: "a", Type: "text"},
			{Text: "b", Type: "rating"},
			{Text: "c", Type: "yesno"},
		})
		require.NoError(t, err)
		require.Len(t, questions, 3)
		for i, q := range questions {
			assert.Equal(t, i+1, q.Position)
		}
		assert.Equal(t, model.QuestionTypeRating, questions[1].Type)
	})

	t.Run("keeps choices for choice-bearing types", func(t *testing.T) {
		questions, err := buildQuestions([]dto.QuestionCreateDTO{
			{Text: "pick", Type: "single_choice", Choices: []dto.ChoiceCreateDTO{{Text: "red"}, {Text: "blue"}}},
			{Text: "rank", Type: "ranking", Choices: []dto.ChoiceCreateDTO{{Text: "x"}, {Text: "y"}}},
		})
		require.NoError(t, err)
		require.Len(t, questions[0].Choices, 2)
		assert.Equal(t, "red", questions[0].Choices[0].Text)
		require.Len(t, questions[1].Choices, 2)
	})

	t.Run("rejects a choice-bearing type without choices", func(t *testing.T) {
		for _, qt := range []string{"single_choice", "multi_choice", "ranking"} {
			_, err := buildQuestions([]dto.QuestionCreateDTO{{Text: "q", Type: qt}})
			assert.Error(t, err, "type %s needs choices", qt)
		}
	})

	t.Run("discards choices supplied for non-choice types", func(t *testing.T) {
		questions, err := buildQuestions([]dto.QuestionCreateDTO{
			{Text: "q", Type: "text", Choices: []dto.ChoiceCreateDTO{{Text: "stray"}}},
		})
		require.NoError(t, err)
		assert.Empty(t, questions[0].Choices)
	})

	t.Run("rejects an unknown type", func(t *testing.T) {
		_, err := buildQuestions([]dto.QuestionCreateDTO{{Text: "q", Type: "matrix"}})
		assert.Error(t, err)
	})
}

func TestAuthorOwnershipChecks(t *testing.T) {
	survey := &model.Survey{ID: 1, Title: "t", Active: true, AuthorID: 10}
	svc := NewAuthorSurveyService(&fakeSurveyRepo{survey: survey}, &fakeAnswerRepo{})

	t.Run("delete by a non-owner is refused", func(t *testing.T) {
		err := svc.DeleteSurvey(1, 99)
		assert.ErrorIs(t, err, apperr.ErrNotAuthorized)
	})

	t.Run("update by a non-owner is refused", func(t *testing.T) {
		_, err := svc.UpdateSurvey(1, 99, dto.SurveyUpdateDTO{Title: strPtr("x")})
		assert.ErrorIs(t, err, apperr.ErrNotAuthorized)
	})

	t.Run("results for a non-owner are refused", func(t *testing.T) {
		_, err := svc.GetSurveyResults(1, 99)
		assert.ErrorIs(t, err, apperr.ErrNotAuthorized)
	})

	t.Run("missing survey reports not found", func(t *testing.T) {
		err := svc.DeleteSurvey(404, 10)
		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})

	t.Run("the owner may delete", func(t *testing.T) {
		assert.NoError(t, svc.DeleteSurvey(1, 10))
	})
}

func TestGetSurveyResultsGroupsAnswersByQuestion(t *testing.T) {
	survey := testSurvey()
	survey.AuthorID = 10
	answers := &fakeAnswerRepo{existing: []model.Answer{
		{ID: 1, SurveyID: 1, QuestionID: 11, UserID: 42, ChoiceID: uintPtr(101)},
		{ID: 2, SurveyID: 1, QuestionID: 11, UserID: 43, ChoiceID: uintPtr(102)},
		{ID: 3, SurveyID: 1, QuestionID: 12, UserID: 42, RatingAnswer: intPtr(8)},
	}}
	svc := NewAuthorSurveyService(&fakeSurveyRepo{survey: survey}, answers)

	results, err := svc.GetSurveyResults(1, 10)
	require.NoError(t, err)
	assert.Equal(t, uint(1), results.SurveyID)
	require.Len(t, results.Questions, 3)

	assert.Len(t, results.Questions[0].Answers, 2)
	assert.Len(t, results.Questions[1].Answers, 1)
	assert.Empty(t, results.Questions[2].Answers, "unanswered questions still appear, with no answers")
}
