package service

import (
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/pollhive/backend/internal/apperr"
	"github.com/pollhive/backend/internal/dto"
	"github.com/pollhive/backend/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// UserSurveyService covers the respondent-facing reads: listing surveys
// (with the caller's submitted flag), survey details for answering, and the
// caller's profile.
type UserSurveyService interface {
	GetAllSurveys(userID uint) ([]dto.SurveySummaryDTO, error)
	GetSurveyDetails(surveyID uint) (*dto.SurveyDTO, error)
	GetProfile(userID uint) (*dto.ProfileDTO, error)
}

type userSurveyService struct {
	surveyRepo repository.SurveyRepository
	answerRepo repository.AnswerRepository
	userRepo   repository.UserRepository
}

func NewUserSurveyService(
	surveyRepo repository.SurveyRepository,
	answerRepo repository.AnswerRepository,
	userRepo repository.UserRepository,
) UserSurveyService {
	return &userSurveyService{surveyRepo: surveyRepo, answerRepo: answerRepo, userRepo: userRepo}
}

func (s *userSurveyService) GetAllSurveys(userID uint) ([]dto.SurveySummaryDTO, error) {
	surveys, err := s.surveyRepo.FindAllWithQuestionCount()
	if err != nil {
		log.Error().Err(err).Msg("GetAllSurveys: repository error")
		return nil, fmt.Errorf("fetching surveys: %w", err)
	}

	participated, err := s.surveyRepo.FindParticipatedByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("fetching participation: %w", err)
	}
	submitted := make(map[uint]bool, len(participated))
	for _, p := range participated {
		submitted[p.ID] = true
	}

	dtos := make([]dto.SurveySummaryDTO, 0, len(surveys))
	for _, swc := range surveys {
		dtos = append(dtos, dto.SurveySummaryDTO{
			ID:            swc.ID,
			Title:         swc.Title,
			Active:        swc.Active,
			AuthorID:      swc.AuthorID,
			QuestionCount: swc.QuestionCount,
			Submitted:     submitted[swc.ID],
			CreatedAt:     swc.CreatedAt,
		})
	}
	return dtos, nil
}

func (s *userSurveyService) GetSurveyDetails(surveyID uint) (*dto.SurveyDTO, error) {
	survey, err := s.surveyRepo.FindByIDWithQuestions(surveyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("survey %d: %w", surveyID, apperr.ErrNotFound)
		}
		log.Error().Err(err).Uint("surveyID", surveyID).Msg("GetSurveyDetails: repository error")
		return nil, fmt.Errorf("loading survey %d: %w", surveyID, err)
	}

	var out dto.SurveyDTO
	if err := copier.Copy(&out, survey); err != nil {
		return nil, fmt.Errorf("preparing survey response: %w", err)
	}
	return &out, nil
}

func (s *userSurveyService) GetProfile(userID uint) (*dto.ProfileDTO, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %d: %w", userID, apperr.ErrNotFound)
		}
		return nil, fmt.Errorf("loading user %d: %w", userID, err)
	}

	participated, err := s.surveyRepo.FindParticipatedByUser(userID)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("GetProfile: failed to load participated surveys")
		return nil, fmt.Errorf("fetching participated surveys: %w", err)
	}

	profile := dto.ProfileDTO{
		User:    dto.UserDTO{ID: user.ID, Username: user.Username, Email: user.Email},
		Surveys: make([]dto.SurveySummaryDTO, 0, len(participated)),
	}
	for _, swc := range participated {
		profile.Surveys = append(profile.Surveys, dto.SurveySummaryDTO{
			ID:            swc.ID,
			Title:         swc.Title,
			Active:        swc.Active,
			AuthorID:      swc.AuthorID,
			QuestionCount: swc.QuestionCount,
			Submitted:     true,
			CreatedAt:     swc.CreatedAt,
		})
	}
	return &profile, nil
}
