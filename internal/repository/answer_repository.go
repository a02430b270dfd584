package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pollhive/backend/internal/apperr"
	"github.com/pollhive/backend/internal/model"
	"gorm.io/gorm"
)

const pgUniqueViolation = "23505"

type AnswerRepository interface {
	CreateAll(answers []model.Answer) error
	ExistsBySurveyAndUser(surveyID, userID uint) (bool, error)
	FindBySurveyAndUser(surveyID, userID uint) ([]model.Answer, error)
	FindBySurvey(surveyID uint) ([]model.Answer, error)
}

type answerRepository struct {
	db *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) AnswerRepository {
	return &answerRepository{db: db}
}

// CreateAll persists a whole submission in one transaction: either every
// answer lands or none does. A unique violation on (user_id, question_id)
// means a concurrent duplicate submission won the race; it surfaces as
// ErrAlreadySubmitted, never as a raw driver error.
func (r *answerRepository) CreateAll(answers []model.Answer) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&answers).Error
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperr.ErrAlreadySubmitted
		}
		return err
	}
	return nil
}

func (r *answerRepository) ExistsBySurveyAndUser(surveyID, userID uint) (bool, error) {
	var count int64
	err := r.db.Model(&model.Answer{}).
		Where("survey_id = ? AND user_id = ?", surveyID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *answerRepository) FindBySurveyAndUser(surveyID, userID uint) ([]model.Answer, error) {
	var answers []model.Answer
	err := r.db.Preload("Question").
		Joins("JOIN questions ON questions.id = answers.question_id").
		Where("answers.survey_id = ? AND answers.user_id = ?", surveyID, userID).
		Order("questions.position ASC").
		Find(&answers).Error
	return answers, err
}

func (r *answerRepository) FindBySurvey(surveyID uint) ([]model.Answer, error) {
	var answers []model.Answer
	err := r.db.Where("survey_id = ?", surveyID).
		Order("question_id ASC, created_at ASC").
		Find(&answers).Error
	return answers, err
}
