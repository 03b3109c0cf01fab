package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"rishabgems/invoicegen/services"
	"rishabgems/invoicegen/utils"
)

// HandleError writes err as a JSON error body with a matching status code.
func HandleError(c *gin.Context, err error) {
	var (
		appErr  *utils.AppError
		verr    *services.ValidationError
		lineErr *utils.LineItemError
	)

	switch {
	case errors.As(err, &appErr):
	case errors.As(err, &verr):
		appErr = utils.NewValidationError("Please fix these errors before generating the invoice", verr.Problems)
	case errors.Is(err, services.ErrNoLineItems):
		appErr = utils.NewValidationError(err.Error(), nil)
	case errors.As(err, &lineErr):
		appErr = utils.NewBadRequestError("invalid line item amount", err)
		appErr.Details = []string{lineErr.Error()}
	case errors.Is(err, utils.ErrInvalidAmount),
		errors.Is(err, utils.ErrUnsupportedMagnitude),
		errors.Is(err, services.ErrUnknownFormat):
		appErr = utils.NewBadRequestError(err.Error(), nil)
	case errors.Is(err, services.ErrUploadDisabled):
		appErr = &utils.AppError{Code: http.StatusServiceUnavailable, Message: err.Error()}
	default:
		appErr = utils.NewInternalError("internal server error", err)
	}

	if appErr.Code >= http.StatusInternalServerError {
		slog.Error("request failed", "path", c.Request.URL.Path, "error", err)
	}

	body := gin.H{"error": appErr.Message}
	if len(appErr.Details) > 0 {
		body["details"] = appErr.Details
	}
	c.AbortWithStatusJSON(appErr.Code, body)
}
