package service

import (
	"testing"

	"github.com/pollhive/backend/internal/apperr"
	"github.com/pollhive/backend/internal/dto"
	"github.com/pollhive/backend/internal/model"
	"github.com/pollhive/backend/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeSurveyRepo serves a single in-memory survey.
type fakeSurveyRepo struct {
	survey *model.Survey
}

func (f *fakeSurveyRepo) Create(survey *model.Survey) error { return nil }
func (f *fakeSurveyRepo) Save(survey *model.Survey) error   { return nil }

func (f *fakeSurveyRepo) FindByID(id uint) (*model.Survey, error) {
	if f.survey == nil || f.survey.ID != id {
		return nil, gorm.ErrRecordNotFound
	}
	return f.survey, nil
}

func (f *fakeSurveyRepo) FindByIDWithQuestions(id uint) (*model.Survey, error) {
	return f.FindByID(id)
}

func (f *fakeSurveyRepo) FindAllWithQuestionCount() ([]repository.SurveyWithCount, error) {
	return nil, nil
}

func (f *fakeSurveyRepo) FindParticipatedByUser(userID uint) ([]repository.SurveyWithCount, error) {
	return nil, nil
}

func (f *fakeSurveyRepo) ReplaceQuestions(surveyID uint, questions []model.Question) error {
	return nil
}

func (f *fakeSurveyRepo) Delete(id uint) error { return nil }

// fakeAnswerRepo records CreateAll calls and can simulate prior submissions
// or a duplicate-key race at commit time.
type fakeAnswerRepo struct {
	existing  []model.Answer
	created   [][]model.Answer
	createErr error
}

func (f *fakeAnswerRepo) CreateAll(answers []model.Answer) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, answers)
	return nil
}

func (f *fakeAnswerRepo) ExistsBySurveyAndUser(surveyID, userID uint) (bool, error) {
	for _, a := range f.existing {
		if a.SurveyID == surveyID && a.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeAnswerRepo) FindBySurveyAndUser(surveyID, userID uint) ([]model.Answer, error) {
	var out []model.Answer
	for _, a := range f.existing {
		if a.SurveyID == surveyID && a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAnswerRepo) FindBySurvey(surveyID uint) ([]model.Answer, error) {
	return f.existing, nil
}

func testSurvey() *model.Survey {
	return &model.Survey{
		ID:     1,
		Title:  "Customer feedback",
		Active: true,
		Questions: []model.Question{
			{
				ID: 11, SurveyID: 1, Text: "pick one", Type: model.QuestionTypeSingleChoice, Position: 1,
				Choices: []model.Choice{{ID: 101, QuestionID: 11}, {ID: 102, QuestionID: 11}},
			},
			{ID: 12, SurveyID: 1, Text: "rate us", Type: model.QuestionTypeRating, Position: 2},
			{ID: 13, SurveyID: 1, Text: "comments", Type: model.QuestionTypeText, Position: 3},
		},
	}
}

func fullSubmission() dto.SurveySubmitDTO {
	return dto.SurveySubmitDTO{Answers: []dto.AnswerSubmitDTO{
		{QuestionID: 11, ChoiceID: uintPtr(102)},
		{QuestionID: 12, RatingAnswer: intPtr(7)},
		{QuestionID: 13, TextAnswer: strPtr("all good")},
	}}
}

func TestSubmitSuccess(t *testing.T) {
	surveys := &fakeSurveyRepo{survey: testSurvey()}
	answers := &fakeAnswerRepo{}
	svc := NewSubmissionService(surveys, answers, NewAnswerValidator())

	receipt, err := svc.Submit(1, 42, fullSubmission())
	require.NoError(t, err)
	assert.Equal(t, uint(1), receipt.SurveyID)
	assert.Equal(t, "Customer feedback", receipt.SurveyTitle)
	assert.Equal(t, 3, receipt.AnswerCount)
	assert.False(t, receipt.SubmittedAt.IsZero())

	// Everything lands in one CreateAll call, stamped with the respondent.
	require.Len(t, answers.created, 1)
	require.Len(t, answers.created[0], 3)
	for _, a := range answers.created[0] {
		assert.Equal(t, uint(42), a.UserID)
		assert.Equal(t, uint(1), a.SurveyID)
	}
	// Answers follow question order, not payload order.
	assert.Equal(t, uint(11), answers.created[0][0].QuestionID)
	assert.Equal(t, uint(12), answers.created[0][1].QuestionID)
	assert.Equal(t, uint(13), answers.created[0][2].QuestionID)
}

func TestSubmitSurveyNotFound(t *testing.T) {
	svc := NewSubmissionService(&fakeSurveyRepo{}, &fakeAnswerRepo{}, NewAnswerValidator())

	_, err := svc.Submit(99, 42, fullSubmission())
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestSubmitInactiveSurvey(t *testing.T) {
	survey := testSurvey()
	survey.Active = false
	svc := NewSubmissionService(&fakeSurveyRepo{survey: survey}, &fakeAnswerRepo{}, NewAnswerValidator())

	_, err := svc.Submit(1, 42, fullSubmission())
	assert.ErrorIs(t, err, apperr.ErrSurveyInactive)
}

func TestSubmitAlreadySubmitted(t *testing.T) {
	answers := &fakeAnswerRepo{existing: []model.Answer{{SurveyID: 1, UserID: 42, QuestionID: 11}}}
	svc := NewSubmissionService(&fakeSurveyRepo{survey: testSurvey()}, answers, NewAnswerValidator())

	_, err := svc.Submit(1, 42, fullSubmission())
	assert.ErrorIs(t, err, apperr.ErrAlreadySubmitted)
	assert.Empty(t, answers.created)

	// A different respondent is unaffected.
	_, err = svc.Submit(1, 43, fullSubmission())
	assert.NoError(t, err)
}

func TestSubmitFailFastPersistsNothing(t *testing.T) {
	answers := &fakeAnswerRepo{}
	svc := NewSubmissionService(&fakeSurveyRepo{survey: testSurvey()}, answers, NewAnswerValidator())

	// The second question's rating is out of range; the first already passed.
	req := fullSubmission()
	req.Answers[1].RatingAnswer = intPtr(11)

	_, err := svc.Submit(1, 42, req)
	ve, ok := apperr.AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, uint(12), ve.QuestionID)
	assert.Equal(t, "rate us", ve.QuestionText)
	assert.Empty(t, answers.created, "a rejected submission must write nothing")
}

func TestSubmitMissingAnswerNamesTheQuestion(t *testing.T) {
	answers := &fakeAnswerRepo{}
	svc := NewSubmissionService(&fakeSurveyRepo{survey: testSurvey()}, answers, NewAnswerValidator())

	req := dto.SurveySubmitDTO{Answers: []dto.AnswerSubmitDTO{
		{QuestionID: 11, ChoiceID: uintPtr(101)},
		{QuestionID: 13, TextAnswer: strPtr("skipping the rating")},
	}}

	_, err := svc.Submit(1, 42, req)
	ve, ok := apperr.AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, uint(12), ve.QuestionID)
	assert.Empty(t, answers.created)
}

func TestSubmitRejectsForeignQuestion(t *testing.T) {
	svc := NewSubmissionService(&fakeSurveyRepo{survey: testSurvey()}, &fakeAnswerRepo{}, NewAnswerValidator())

	req := fullSubmission()
	req.Answers = append(req.Answers, dto.AnswerSubmitDTO{QuestionID: 999, TextAnswer: strPtr("?")})

	_, err := svc.Submit(1, 42, req)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestSubmitRejectsDuplicateQuestionInPayload(t *testing.T) {
	svc := NewSubmissionService(&fakeSurveyRepo{survey: testSurvey()}, &fakeAnswerRepo{}, NewAnswerValidator())

	req := fullSubmission()
	req.Answers = append(req.Answers, dto.AnswerSubmitDTO{QuestionID: 11, ChoiceID: uintPtr(101)})

	_, err := svc.Submit(1, 42, req)
	ve, ok := apperr.AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, uint(11), ve.QuestionID)
}

func TestSubmitLosesDuplicateRace(t *testing.T) {
	// The eligibility check passed but the unique index fired at commit time.
	answers := &fakeAnswerRepo{createErr: apperr.ErrAlreadySubmitted}
	svc := NewSubmissionService(&fakeSurveyRepo{survey: testSurvey()}, answers, NewAnswerValidator())

	_, err := svc.Submit(1, 42, fullSubmission())
	assert.ErrorIs(t, err, apperr.ErrAlreadySubmitted)
}

func TestSubmitSurveyWithoutQuestions(t *testing.T) {
	survey := &model.Survey{ID: 1, Title: "empty", Active: true}
	svc := NewSubmissionService(&fakeSurveyRepo{survey: survey}, &fakeAnswerRepo{}, NewAnswerValidator())

	_, err := svc.Submit(1, 42, fullSubmission())
	require.Error(t, err)
	assert.NotErrorIs(t, err, apperr.ErrNotFound)
}

func TestGetUserAnswers(t *testing.T) {
	answers := &fakeAnswerRepo{existing: []model.Answer{
		{
			ID: 1, SurveyID: 1, QuestionID: 11, UserID: 42, ChoiceID: uintPtr(101),
			Question: model.Question{ID: 11, Text: "pick one", Type: model.QuestionTypeSingleChoice},
		},
		{
			ID: 2, SurveyID: 1, QuestionID: 12, UserID: 42, RatingAnswer: intPtr(9),
			Question: model.Question{ID: 12, Text: "rate us", Type: model.QuestionTypeRating},
		},
	}}
	svc := NewSubmissionService(&fakeSurveyRepo{survey: testSurvey()}, answers, NewAnswerValidator())

	dtos, err := svc.GetUserAnswers(1, 42)
	require.NoError(t, err)
	require.Len(t, dtos, 2)
	assert.Equal(t, "pick one", dtos[0].QuestionText)
	assert.Equal(t, "single_choice", dtos[0].QuestionType)
	require.NotNil(t, dtos[1].RatingAnswer)
	assert.Equal(t, 9, *dtos[1].RatingAnswer)
}

func TestGetUserAnswersSurveyNotFound(t *testing.T) {
	svc := NewSubmissionService(&fakeSurveyRepo{}, &fakeAnswerRepo{}, NewAnswerValidator())

	_, err := svc.GetUserAnswers(5, 42)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
