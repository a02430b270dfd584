package user

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pollhive/backend/internal/controller"
	"github.com/pollhive/backend/internal/dto"
	"github.com/pollhive/backend/internal/middleware"
	"github.com/pollhive/backend/internal/service"
	"github.com/rs/zerolog/log"
)

// UserSurveyController exposes the respondent-facing endpoints, including
// the answer submission route driving the orchestrator.
type UserSurveyController struct {
	userService       service.UserSurveyService
	submissionService service.SubmissionService
}

func NewUserSurveyController(userService service.UserSurveyService, submissionService service.SubmissionService) *UserSurveyController {
	return &UserSurveyController{userService: userService, submissionService: submissionService}
}

// GetAllSurveys godoc
// @Summary List surveys
// @Description All surveys with question counts and the caller's submitted flag.
// @Tags Surveys & Answers
// @Produce json
// @Success 200 {array} dto.SurveySummaryDTO
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /surveys [get]
func (c *UserSurveyController) GetAllSurveys(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "authentication required"})
		return
	}

	surveys, err := c.userService.GetAllSurveys(userID)
	if err != nil {
		controller.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, surveys)
}

// GetSurveyDetails godoc
// @Summary Get one survey with its questions
// @Tags Surveys & Answers
// @Produce json
// @Param survey_id path int true "Survey ID"
// @Success 200 {object} dto.SurveyDTO
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /surveys/{survey_id} [get]
func (c *UserSurveyController) GetSurveyDetails(ctx *gin.Context) {
	surveyID, ok := surveyIDParam(ctx)
	if !ok {
		return
	}

	survey, err := c.userService.GetSurveyDetails(surveyID)
	if err != nil {
		controller.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, survey)
}

// SubmitAnswers godoc
// @Summary Submit answers for a whole survey
// @Description Validates every question in order and persists all answers in one transaction. The first rejection aborts the attempt with nothing written.
// @Tags Surveys & Answers
// @Accept json
// @Produce json
// @Param survey_id path int true "Survey ID"
// @Param submission body dto.SurveySubmitDTO true "One raw answer per question"
// @Success 201 {object} dto.SubmissionReceiptDTO
// @Failure 400 {object} dto.ErrorResponse "Validation rejection naming the question"
// @Failure 403 {object} dto.ErrorResponse "Survey is not active"
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Already submitted"
// @Security BearerAuth
// @Router /surveys/{survey_id}/answers [post]
func (c *UserSurveyController) SubmitAnswers(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "authentication required"})
		return
	}
	surveyID, ok := surveyIDParam(ctx)
	if !ok {
		return
	}

	var req dto.SurveySubmitDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("SubmitAnswers: failed to bind body")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "invalid request body", Details: []string{err.Error()}})
		return
	}

	receipt, err := c.submissionService.Submit(surveyID, userID, req)
	if err != nil {
		controller.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, receipt)
}

// GetMyAnswers godoc
// @Summary Get the caller's recorded answers for a survey
// @Tags Surveys & Answers
// @Produce json
// @Param survey_id path int true "Survey ID"
// @Success 200 {array} dto.AnswerDTO
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /surveys/{survey_id}/my-answers [get]
func (c *UserSurveyController) GetMyAnswers(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "authentication required"})
		return
	}
	surveyID, ok := surveyIDParam(ctx)
	if !ok {
		return
	}

	answers, err := c.submissionService.GetUserAnswers(surveyID, userID)
	if err != nil {
		controller.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, answers)
}

// GetProfile godoc
// @Summary Get the caller's profile
// @Description The caller plus the surveys they have participated in.
// @Tags Surveys & Answers
// @Produce json
// @Success 200 {object} dto.ProfileDTO
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /profile [get]
func (c *UserSurveyController) GetProfile(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "authentication required"})
		return
	}

	profile, err := c.userService.GetProfile(userID)
	if err != nil {
		controller.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, profile)
}

func surveyIDParam(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("survey_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "invalid survey id"})
		return 0, false
	}
	return uint(id), true
}
