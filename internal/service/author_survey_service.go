package service

import (
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/pollhive/backend/internal/apperr"
	"github.com/pollhive/backend/internal/dto"
	"github.com/pollhive/backend/internal/model"
	"github.com/pollhive/backend/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// AuthorSurveyService covers the authoring flows: create with nested
// questions/choices, edit (full question replacement), delete, and reading
// back the raw answers respondents recorded.
type AuthorSurveyService interface {
	CreateSurvey(authorID uint, req dto.SurveyCreateDTO) (*dto.SurveyDTO, error)
	UpdateSurvey(surveyID, authorID uint, req dto.SurveyUpdateDTO) (*dto.SurveyDTO, error)
	DeleteSurvey(surveyID, authorID uint) error
	GetSurveyResults(surveyID, authorID uint) (*dto.SurveyResultsDTO, error)
}

type authorSurveyService struct {
	surveyRepo repository.SurveyRepository
	answerRepo repository.AnswerRepository
}

func NewAuthorSurveyService(surveyRepo repository.SurveyRepository, answerRepo repository.AnswerRepository) AuthorSurveyService {
	return &authorSurveyService{surveyRepo: surveyRepo, answerRepo: answerRepo}
}

// buildQuestions validates authoring rules and converts the request into
// models. Choice-bearing types need at least one choice; choices supplied
// for the other types are discarded.
func buildQuestions(reqs []dto.QuestionCreateDTO) ([]model.Question, error) {
	questions := make([]model.Question, 0, len(reqs))
	for i, q := range reqs {
		qt := model.QuestionType(q.Type)
		if !qt.Valid() {
			return nil, fmt.Errorf("question %d: unsupported type %q", i+1, q.Type)
		}
		question := model.Question{
			Text:     q.Text,
			Type:     qt,
			Position: i + 1,
		}
		if qt.HasChoices() {
			if len(q.Choices) == 0 {
				return nil, fmt.Errorf("question %d (%s): at least one choice is required for type %q", i+1, q.Text, q.Type)
			}
			for _, c := range q.Choices {
				question.Choices = append(question.Choices, model.Choice{Text: c.Text})
			}
		}
		questions = append(questions, question)
	}
	return questions, nil
}

func (s *authorSurveyService) CreateSurvey(authorID uint, req dto.SurveyCreateDTO) (*dto.SurveyDTO, error) {
	questions, err := buildQuestions(req.Questions)
	if err != nil {
		return nil, err
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}
	survey := model.Survey{
		Title:     req.Title,
		Active:    active,
		AuthorID:  authorID,
		Questions: questions,
	}
	if err := s.surveyRepo.Create(&survey); err != nil {
		log.Error().Err(err).Uint("authorID", authorID).Msg("CreateSurvey: database error")
		return nil, fmt.Errorf("creating survey: %w", err)
	}

	created, err := s.surveyRepo.FindByIDWithQuestions(survey.ID)
	if err != nil {
		log.Error().Err(err).Uint("surveyID", survey.ID).Msg("CreateSurvey: failed to reload created survey")
		created = &survey
	}
	return surveyToDTO(created)
}

func (s *authorSurveyService) UpdateSurvey(surveyID, authorID uint, req dto.SurveyUpdateDTO) (*dto.SurveyDTO, error) {
	survey, err := s.ownedSurvey(surveyID, authorID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		survey.Title = *req.Title
	}
	if req.Active != nil {
		survey.Active = *req.Active
	}
	if err := s.surveyRepo.Save(survey); err != nil {
		log.Error().Err(err).Uint("surveyID", surveyID).Msg("UpdateSurvey: failed to save survey")
		return nil, fmt.Errorf("saving survey: %w", err)
	}

	if req.Questions != nil {
		questions, err := buildQuestions(req.Questions)
		if err != nil {
			return nil, err
		}
		if err := s.surveyRepo.ReplaceQuestions(surveyID, questions); err != nil {
			log.Error().Err(err).Uint("surveyID", surveyID).Msg("UpdateSurvey: failed to replace questions")
			return nil, fmt.Errorf("replacing questions: %w", err)
		}
	}

	updated, err := s.surveyRepo.FindByIDWithQuestions(surveyID)
	if err != nil {
		return nil, fmt.Errorf("reloading survey: %w", err)
	}
	return surveyToDTO(updated)
}

func (s *authorSurveyService) DeleteSurvey(surveyID, authorID uint) error {
	if _, err := s.ownedSurvey(surveyID, authorID); err != nil {
		return err
	}
	if err := s.surveyRepo.Delete(surveyID); err != nil {
		log.Error().Err(err).Uint("surveyID", surveyID).Msg("DeleteSurvey: database error")
		return fmt.Errorf("deleting survey: %w", err)
	}
	log.Info().Uint("surveyID", surveyID).Uint("authorID", authorID).Msg("Survey deleted")
	return nil
}

func (s *authorSurveyService) GetSurveyResults(surveyID, authorID uint) (*dto.SurveyResultsDTO, error) {
	survey, err := s.ownedSurvey(surveyID, authorID)
	if err != nil {
		return nil, err
	}
	full, err := s.surveyRepo.FindByIDWithQuestions(survey.ID)
	if err != nil {
		return nil, fmt.Errorf("loading survey questions: %w", err)
	}

	answers, err := s.answerRepo.FindBySurvey(surveyID)
	if err != nil {
		log.Error().Err(err).Uint("surveyID", surveyID).Msg("GetSurveyResults: failed to load answers")
		return nil, fmt.Errorf("loading answers: %w", err)
	}
	byQuestion := make(map[uint][]dto.AnswerDTO)
	for _, answer := range answers {
		var out dto.AnswerDTO
		if err := copier.Copy(&out, &answer); err != nil {
			return nil, fmt.Errorf("preparing results: %w", err)
		}
		byQuestion[answer.QuestionID] = append(byQuestion[answer.QuestionID], out)
	}

	results := dto.SurveyResultsDTO{SurveyID: full.ID, Title: full.Title}
	for _, question := range full.Questions {
		var qDTO dto.QuestionDTO
		if err := copier.Copy(&qDTO, &question); err != nil {
			return nil, fmt.Errorf("preparing results: %w", err)
		}
		results.Questions = append(results.Questions, dto.QuestionResultsDTO{
			Question: qDTO,
			Answers:  byQuestion[question.ID],
		})
	}
	return &results, nil
}

func (s *authorSurveyService) ownedSurvey(surveyID, authorID uint) (*model.Survey, error) {
	survey, err := s.surveyRepo.FindByID(surveyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("survey %d: %w", surveyID, apperr.ErrNotFound)
		}
		return nil, fmt.Errorf("loading survey %d: %w", surveyID, err)
	}
	if survey.AuthorID != authorID {
		return nil, fmt.Errorf("survey %d is not owned by user %d: %w", surveyID, authorID, apperr.ErrNotAuthorized)
	}
	return survey, nil
}

func surveyToDTO(survey *model.Survey) (*dto.SurveyDTO, error) {
	var out dto.SurveyDTO
	if err := copier.Copy(&out, survey); err != nil {
		return nil, fmt.Errorf("preparing survey response: %w", err)
	}
	return &out, nil
}
