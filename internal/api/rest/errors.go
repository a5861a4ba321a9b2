package rest

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/feral-file/invoice-lottery/internal/api/shared/errors"
	"github.com/feral-file/invoice-lottery/internal/logger"
)

// statusCodes maps error codes to HTTP status codes
var statusCodes = map[errors.ErrorCode]int{
	errors.ErrCodeBadRequest:       http.StatusBadRequest,
	errors.ErrCodeValidationFailed: http.StatusBadRequest,
	errors.ErrCodeUnauthorized:     http.StatusUnauthorized,
	errors.ErrCodeForbidden:        http.StatusForbidden,
	errors.ErrCodeNotFound:         http.StatusNotFound,
	errors.ErrCodeConflict:         http.StatusConflict,
	errors.ErrCodeServiceError:     http.StatusBadGateway,
	errors.ErrCodeDatabaseError:    http.StatusInternalServerError,
	errors.ErrCodeInternalError:    http.StatusInternalServerError,
}

// respondError classifies err and writes the matching status and body
func respondError(c *gin.Context, err error, message string) {
	apiErr := errors.FromError(err, message)

	status, ok := statusCodes[apiErr.Code]
	if !ok {
		status = http.StatusInternalServerError
	}

	if apiErr.IsServerError() {
		cause := stderrors.Unwrap(apiErr)
		if cause == nil {
			cause = apiErr
		}
		logger.ErrorCtx(c.Request.Context(), cause,
			zap.String("message", apiErr.Message),
			zap.String("path", c.Request.URL.Path))
	}

	c.JSON(status, apiErr)
}

// respondBadRequest responds with a bad request error
func respondBadRequest(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusBadRequest, errors.NewBadRequestError(message, details...))
}

// respondNotFound responds with a not found error
func respondNotFound(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusNotFound, errors.NewNotFoundError(message, details...))
}
