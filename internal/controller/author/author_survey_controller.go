package author

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

// AuthorSurveyController exposes the authoring endpoints. Every operation is
// owner-checked by the service layer.
type AuthorSurveyController struct {
	authorService service.AuthorSurveyService
}

func NewAuthorSurveyController(authorService service.AuthorSurveyService) *AuthorSurveyController {
	return &AuthorSurveyController{authorService: authorService}
}

// CreateSurvey godoc
// @Summary (Author) Create a survey
// @Description Create a survey with its questions and choices in one request.
// @Tags Author - Surveys
// @Accept json
// @Produce json
// @Param survey body dto.SurveyCreateDTO true "Survey with questions"
// @Success 201 {object} dto.SurveyDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid body or authoring rules violated"
// @Security BearerAuth
// @Router /surveys [post]
func (c *AuthorSurveyController) CreateSurvey(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "authentication required"})
		return
	}

	var req dto.SurveyCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("CreateSurvey: failed to bind body")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "invalid request body", Details: []string{err.Error()}})
		return
	}

	survey, err := c.authorService.CreateSurvey(userID, req)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, survey)
}

// UpdateSurvey godoc
// @Summary (Author) Update a survey
// @Description Update title/active flag; a questions list, when present, replaces the existing questions and drops recorded answers.
// @Tags Author - Surveys
// @Accept json
// @Produce json
// @Param survey_id path int true "Survey ID"
// @Param survey body dto.SurveyUpdateDTO true "Fields to update"
// @Success 200 {object} dto.SurveyDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse "Not the survey's author"
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /surveys/{survey_id} [put]
func (c *AuthorSurveyController) UpdateSurvey(ctx *gin.Context) {
	userID, surveyID, ok := surveyRequest(ctx)
	if !ok {
		return
	}

	var req dto.SurveyUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "invalid request body", Details: []string{err.Error()}})
		return
	}

	survey, err := c.authorService.UpdateSurvey(surveyID, userID, req)
	if err != nil {
		controller.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, survey)
}

// DeleteSurvey godoc
// @Summary (Author) Delete a survey
// @Description Delete a survey; cascades to questions, choices and answers.
// @Tags Author - Surveys
// @Produce json
// @Param survey_id path int true "Survey ID"
// @Success 204 "Deleted"
// @Failure 403 {object} dto.ErrorResponse "Not the survey's author"
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /surveys/{survey_id} [delete]
func (c *AuthorSurveyController) DeleteSurvey(ctx *gin.Context) {
	userID, surveyID, ok := surveyRequest(ctx)
	if !ok {
		return
	}

	if err := c.authorService.DeleteSurvey(surveyID, userID); err != nil {
		controller.WriteError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// GetSurveyResults godoc
// @Summary (Author) List raw answers per question
// @Description Raw recorded answers grouped by question; no aggregation.
// @Tags Author - Surveys
// @Produce json
// @Param survey_id path int true "Survey ID"
// @Success 200 {object} dto.SurveyResultsDTO
// @Failure 403 {object} dto.ErrorResponse "Not the survey's author"
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /surveys/{survey_id}/results [get]
func (c *AuthorSurveyController) GetSurveyResults(ctx *gin.Context) {
	userID, surveyID, ok := surveyRequest(ctx)
	if !ok {
		return
	}

	results, err := c.authorService.GetSurveyResults(surveyID, userID)
	if err != nil {
		controller.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, results)
}

// surveyRequest extracts the caller id and the survey_id path parameter,
// writing the error response itself when either is missing.
func surveyRequest(ctx *gin.Context) (userID, surveyID uint, ok bool) {
	userID, ok = middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "authentication required"})
		return 0, 0, false
	}
	id, err := strconv.ParseUint(ctx.Param("survey_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "invalid survey id"})
		return 0, 0, false
	}
	return userID, uint(id), true
}
