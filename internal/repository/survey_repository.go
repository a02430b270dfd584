package repository

import (
	"github.com/pollhive/backend/internal/model"
	"gorm.io/gorm"
)

// SurveyWithCount is a survey row joined with its question count.
type SurveyWithCount struct {
	model.Survey
	QuestionCount int
}

type SurveyRepository interface {
	Create(survey *model.Survey) error
	Save(survey *model.Survey) error
	FindByID(id uint) (*model.Survey, error)
	FindByIDWithQuestions(id uint) (*model.Survey, error)
	FindAllWithQuestionCount() ([]SurveyWithCount, error)
	FindParticipatedByUser(userID uint) ([]SurveyWithCount, error)
	ReplaceQuestions(surveyID uint, questions []model.Question) error
	Delete(id uint) error
}

type surveyRepository struct {
	db *gorm.DB
}

func NewSurveyRepository(db *gorm.DB) SurveyRepository {
	return &surveyRepository{db: db}
}

func (r *surveyRepository) Create(survey *model.Survey) error {
	// GORM creates the associated questions and choices in one go.
	return r.db.Create(survey).Error
}

func (r *surveyRepository) Save(survey *model.Survey) error {
	return r.db.Omit("Questions").Save(survey).Error
}

func (r *surveyRepository) FindByID(id uint) (*model.Survey, error) {
	var survey model.Survey
	if err := r.db.First(&survey, id).Error; err != nil {
		return nil, err
	}
	return &survey, nil
}

func (r *surveyRepository) FindByIDWithQuestions(id uint) (*model.Survey, error) {
	var survey model.Survey
	err := r.db.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("questions.position ASC")
		}).
		Preload("Questions.Choices", func(db *gorm.DB) *gorm.DB {
			return db.Order("choices.id ASC")
		}).
		First(&survey, id).Error
	if err != nil {
		return nil, err
	}
	return &survey, nil
}

func (r *surveyRepository) FindAllWithQuestionCount() ([]SurveyWithCount, error) {
	var results []SurveyWithCount
	err := r.db.Model(&model.Survey{}).
		Select("surveys.*, (SELECT COUNT(*) FROM questions WHERE questions.survey_id = surveys.id AND questions.deleted_at IS NULL) as question_count").
		Where("surveys.deleted_at IS NULL").
		Order("surveys.created_at DESC").
		Scan(&results).Error
	return results, err
}

func (r *surveyRepository) FindParticipatedByUser(userID uint) ([]SurveyWithCount, error) {
	var results []SurveyWithCount
	err := r.db.Model(&model.Survey{}).
		Select("DISTINCT surveys.*, (SELECT COUNT(*) FROM questions WHERE questions.survey_id = surveys.id AND questions.deleted_at IS NULL) as question_count").
		Joins("JOIN answers ON answers.survey_id = surveys.id").
		Where("answers.user_id = ? AND surveys.deleted_at IS NULL", userID).
		Order("surveys.created_at DESC").
		Scan(&results).Error
	return results, err
}

// ReplaceQuestions swaps the survey's whole question set for a new one.
// Recorded answers reference the old questions and are dropped with them.
func (r *surveyRepository) ReplaceQuestions(surveyID uint, questions []model.Question) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var questionIDs []uint
		if err := tx.Model(&model.Question{}).Where("survey_id = ?", surveyID).Pluck("id", &questionIDs).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("survey_id = ?", surveyID).Delete(&model.Answer{}).Error; err != nil {
			return err
		}
		if len(questionIDs) > 0 {
			if err := tx.Where("question_id IN ?", questionIDs).Delete(&model.Choice{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("survey_id = ?", surveyID).Delete(&model.Question{}).Error; err != nil {
			return err
		}
		for i := range questions {
			questions[i].SurveyID = surveyID
		}
		if len(questions) > 0 {
			if err := tx.Create(&questions).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete removes the survey and cascades to questions, choices and answers.
func (r *surveyRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var questionIDs []uint
		if err := tx.Model(&model.Question{}).Where("survey_id = ?", id).Pluck("id", &questionIDs).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("survey_id = ?", id).Delete(&model.Answer{}).Error; err != nil {
			return err
		}
		if len(questionIDs) > 0 {
			if err := tx.Where("question_id IN ?", questionIDs).Delete(&model.Choice{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("survey_id = ?", id).Delete(&model.Question{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Survey{}, id).Error
	})
}
