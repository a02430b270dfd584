// Package controller holds the HTTP error mapping shared by the auth,
// author and user controllers.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pollhive/backend/internal/apperr"
	"github.com/pollhive/backend/internal/dto"
)

// WriteError translates a service error into the uniform JSON error body.
// Validation rejections carry the offending question id; store-level
// uniqueness violations were already translated by the repository layer and
// arrive here as ErrAlreadySubmitted.
func WriteError(ctx *gin.Context, err error) {
	if ve, ok := apperr.AsValidation(err); ok {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Message:  ve.Reason,
			Question: ve.QuestionID,
			Details:  []string{ve.Error()},
		})
		return
	}

	switch {
	case errors.Is(err, apperr.ErrNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
	case errors.Is(err, apperr.ErrNotAuthorized), errors.Is(err, apperr.ErrSurveyInactive):
		ctx.JSON(http.StatusForbidden, dto.ErrorResponse{Message: err.Error()})
	case errors.Is(err, apperr.ErrAlreadySubmitted):
		ctx.JSON(http.StatusConflict, dto.ErrorResponse{Message: err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "internal server error", Details: []string{err.Error()}})
	}
}
