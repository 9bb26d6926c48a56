package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	apperrors "catalog-service/pkg/errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const internalErrorMessage = "Internal server error."

func respond(c *gin.Context, status int, message string, data any) {
	c.JSON(status, gin.H{"success": true, "message": message, "data": data})
}

// respondError maps a service error onto its HTTP status
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := internalErrorMessage

	switch {
	case errors.Is(err, apperrors.ErrInvalidInput), errors.Is(err, apperrors.ErrInvalidID):
		status, message = http.StatusBadRequest, err.Error()
	case errors.Is(err, apperrors.ErrNotFound):
		status, message = http.StatusNotFound, err.Error()
	case errors.Is(err, apperrors.ErrAlreadyExists):
		status, message = http.StatusConflict, err.Error()
	default:
		slog.Error("request failed", "method", c.Request.Method, "path", c.FullPath(), "error", err)
	}

	c.JSON(status, gin.H{"success": false, "error": message})
}

func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": bindErrorMessage(err)})
}

// bindErrorMessage reports the first failed field by its wire name
func bindErrorMessage(err error) string {
	if errors.Is(err, apperrors.ErrInvalidInput) {
		return err.Error()
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "invalid request body"
	}

	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "objectid":
		return fmt.Sprintf("%s must be a valid id", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
