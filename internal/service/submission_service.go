package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/jinzhu/copier"
	"github.com/pollhive/backend/internal/apperr"
	"github.com/pollhive/backend/internal/dto"
	"github.com/pollhive/backend/internal/model"
	"github.com/pollhive/backend/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// SubmissionService processes one respondent's attempted submission for one
// survey as an all-or-nothing sequence: validate every question in order,
// fail fast on the first rejection, persist everything in one transaction
// only after the whole payload passed.
type SubmissionService interface {
	Submit(surveyID, userID uint, req dto.SurveySubmitDTO) (*dto.SubmissionReceiptDTO, error)
	GetUserAnswers(surveyID, userID uint) ([]dto.AnswerDTO, error)
}

type submissionService struct {
	surveyRepo repository.SurveyRepository
	answerRepo repository.AnswerRepository
	validator  AnswerValidator
}

func NewSubmissionService(
	surveyRepo repository.SurveyRepository,
	answerRepo repository.AnswerRepository,
	validator AnswerValidator,
) SubmissionService {
	return &submissionService{
		surveyRepo: surveyRepo,
		answerRepo: answerRepo,
		validator:  validator,
	}
}

func (s *submissionService) Submit(surveyID, userID uint, req dto.SurveySubmitDTO) (*dto.SubmissionReceiptDTO, error) {
	survey, err := s.surveyRepo.FindByIDWithQuestions(surveyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("survey %d: %w", surveyID, apperr.ErrNotFound)
		}
		log.Error().Err(err).Uint("surveyID", surveyID).Msg("Submit: failed to load survey")
		return nil, fmt.Errorf("loading survey %d: %w", surveyID, err)
	}

	if !survey.Active {
		return nil, fmt.Errorf("survey %d: %w", surveyID, apperr.ErrSurveyInactive)
	}
	if len(survey.Questions) == 0 {
		return nil, fmt.Errorf("survey %d has no questions, submission is not possible", surveyID)
	}

	// "Already submitted" is scoped per survey: any recorded answer blocks a
	// second attempt before anything new is written.
	submitted, err := s.answerRepo.ExistsBySurveyAndUser(surveyID, userID)
	if err != nil {
		log.Error().Err(err).Uint("surveyID", surveyID).Uint("userID", userID).Msg("Submit: eligibility check failed")
		return nil, fmt.Errorf("checking prior answers: %w", err)
	}
	if submitted {
		return nil, fmt.Errorf("survey %d: %w", surveyID, apperr.ErrAlreadySubmitted)
	}

	byQuestion := make(map[uint]*dto.AnswerSubmitDTO, len(req.Answers))
	for i := range req.Answers {
		sub := &req.Answers[i]
		if _, dup := byQuestion[sub.QuestionID]; dup {
			return nil, apperr.Validation(sub.QuestionID, "", "duplicate answer for question %d", sub.QuestionID)
		}
		byQuestion[sub.QuestionID] = sub
	}
	for questionID := range byQuestion {
		if _, ok := findQuestion(survey.Questions, questionID); !ok {
			return nil, fmt.Errorf("question %d does not belong to survey %d: %w", questionID, surveyID, apperr.ErrNotFound)
		}
	}

	// Buffer every normalized answer before touching the store. The first
	// rejection aborts the whole attempt with nothing persisted.
	answers := make([]model.Answer, 0, len(survey.Questions))
	for _, question := range survey.Questions {
		answer, err := s.validator.Validate(question, byQuestion[question.ID])
		if err != nil {
			return nil, err
		}
		answer.UserID = userID
		answers = append(answers, answer)
	}

	if err := s.answerRepo.CreateAll(answers); err != nil {
		if errors.Is(err, apperr.ErrAlreadySubmitted) {
			log.Warn().Uint("surveyID", surveyID).Uint("userID", userID).Msg("Submit: lost duplicate-submission race")
			return nil, fmt.Errorf("survey %d: %w", surveyID, err)
		}
		log.Error().Err(err).Uint("surveyID", surveyID).Uint("userID", userID).Msg("Submit: failed to persist answers")
		return nil, fmt.Errorf("persisting answers: %w", err)
	}

	log.Info().Uint("surveyID", surveyID).Uint("userID", userID).Int("answerCount", len(answers)).Msg("Submission accepted")
	return &dto.SubmissionReceiptDTO{
		SurveyID:    surveyID,
		SurveyTitle: survey.Title,
		AnswerCount: len(answers),
		SubmittedAt: time.Now(),
	}, nil
}

func (s *submissionService) GetUserAnswers(surveyID, userID uint) ([]dto.AnswerDTO, error) {
	if _, err := s.surveyRepo.FindByID(surveyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("survey %d: %w", surveyID, apperr.ErrNotFound)
		}
		return nil, fmt.Errorf("loading survey %d: %w", surveyID, err)
	}

	answers, err := s.answerRepo.FindBySurveyAndUser(surveyID, userID)
	if err != nil {
		log.Error().Err(err).Uint("surveyID", surveyID).Uint("userID", userID).Msg("GetUserAnswers: repository error")
		return nil, fmt.Errorf("fetching answers: %w", err)
	}

	dtos := make([]dto.AnswerDTO, len(answers))
	for i, answer := range answers {
		var out dto.AnswerDTO
		if err := copier.Copy(&out, &answer); err != nil {
			return nil, fmt.Errorf("preparing answer response: %w", err)
		}
		out.QuestionText = answer.Question.Text
		out.QuestionType = string(answer.Question.Type)
		dtos[i] = out
	}
	return dtos, nil
}

func findQuestion(questions []model.Question, id uint) (*model.Question, bool) {
	for i := range questions {
		if questions[i].ID == id {
			return &questions[i], true
		}
	}
	return nil, false
}
